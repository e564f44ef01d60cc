package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barakatna/platform/backend/internal/audit"
	"github.com/barakatna/platform/backend/internal/metrics"
	"github.com/barakatna/platform/backend/internal/models"
	"github.com/barakatna/platform/backend/internal/services"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// filterFromQuery builds a FilterSpec from the console's query parameters.
// Absent parameters stay zero, which the engine treats the same as "all".
func filterFromQuery(c *gin.Context) audit.FilterSpec {
	return audit.FilterSpec{
		SearchTerm: c.Query("search"),
		Module:     c.Query("module"),
		Action:     c.Query("action"),
		Outcome:    c.Query("outcome"),
		EntityType: c.Query("entity_type"),
		Severity:   c.Query("severity"),
		ActorID:    c.Query("actor"),
		From:       c.Query("from"),
		To:         c.Query("to"),
	}
}

type CreateAuditRecordRequest struct {
	Timestamp        string                `json:"timestamp"`
	ActorID          string                `json:"actor_id" binding:"required"`
	ActorName        string                `json:"actor_name"`
	Action           string                `json:"action" binding:"required"`
	Module           string                `json:"module" binding:"required"`
	EntityType       string                `json:"entity_type"`
	EntityID         string                `json:"entity_id"`
	Details          string                `json:"details"`
	SourceAddress    string                `json:"source_address"`
	UserAgent        string                `json:"user_agent"`
	Outcome          string                `json:"outcome" binding:"required"`
	Severity         string                `json:"severity"`
	RelatedRecordIDs []string              `json:"related_record_ids"`
	CustodyChain     []models.CustodyEntry `json:"custody_chain"`
}

// Create ingests one audit record.
func (h *AuditHandler) Create(c *gin.Context) {
	var req CreateAuditRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := models.AuditRecord{
		Timestamp:        req.Timestamp,
		ActorID:          req.ActorID,
		ActorName:        req.ActorName,
		Action:           req.Action,
		Module:           req.Module,
		EntityType:       req.EntityType,
		EntityID:         req.EntityID,
		Details:          req.Details,
		SourceAddress:    req.SourceAddress,
		UserAgent:        req.UserAgent,
		Outcome:          req.Outcome,
		Severity:         req.Severity,
		RelatedRecordIDs: req.RelatedRecordIDs,
		CustodyChain:     req.CustodyChain,
	}

	if err := h.service.Log(&rec); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingActor),
			errors.Is(err, services.ErrInvalidOutcome),
			errors.Is(err, services.ErrInvalidSeverity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store audit record"})
		}
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// List returns the records matching the query parameters, in insertion
// order.
func (h *AuditHandler) List(c *gin.Context) {
	filter := filterFromQuery(c)
	records, err := h.service.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query audit records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(records),
		"records": records,
	})
}

// Get returns one record with its resolved cross-references and custody
// chain.
func (h *AuditHandler) Get(c *gin.Context) {
	uuid := c.Param("uuid")

	rec, err := h.service.Get(uuid)
	if err != nil {
		if errors.Is(err, services.ErrAuditRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audit record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load audit record"})
		return
	}

	related, err := h.service.Related(uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve related records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":        rec,
		"related":       related,
		"custody_chain": audit.Custody(*rec),
	})
}

// Related returns only the resolved cross-references of a record.
func (h *AuditHandler) Related(c *gin.Context) {
	entries, err := h.service.Related(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, services.ErrAuditRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audit record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve related records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"related": entries})
}

// Timelines returns the per-actor activity timelines for the full set.
func (h *AuditHandler) Timelines(c *gin.Context) {
	timelines, err := h.service.Timelines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build timelines"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timelines": timelines})
}

// FilterOptions returns the distinct values for the console's filter
// dropdowns.
func (h *AuditHandler) FilterOptions(c *gin.Context) {
	options, err := h.service.FilterOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// Export streams the filtered set as csv or json, applying the same query
// parameters as List.
func (h *AuditHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
		return
	}

	filter := filterFromQuery(c)
	records, err := h.service.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query audit records"})
		return
	}

	metrics.IncAuditExport(format)
	stamp := time.Now().UTC().Format("20060102-150405")

	if format == "json" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=audit-%s.json", stamp))
		c.JSON(http.StatusOK, audit.Envelope(records, filter))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=audit-%s.csv", stamp))
	c.Status(http.StatusOK)
	if err := audit.WriteCSV(c.Writer, records); err != nil {
		// Headers are already written, so just attach the error for the logger.
		_ = c.Error(err)
	}
}
