package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/audit"
	"github.com/barakatna/platform/backend/internal/metrics"
	"github.com/barakatna/platform/backend/internal/models"
)

var (
	ErrAuditRecordNotFound = errors.New("audit record not found")
	ErrInvalidOutcome      = errors.New("invalid outcome")
	ErrInvalidSeverity     = errors.New("invalid severity")
	ErrMissingActor        = errors.New("actor id is required")
)

// AuditService stores audit records and answers console queries through the
// audit engine. Records are append-only; the service never updates or
// deletes them.
type AuditService struct {
	db       *gorm.DB
	notifier *NotificationService
}

// NewAuditService returns an AuditService using the provided DB. notifier
// may be nil when external alerting is not configured.
func NewAuditService(db *gorm.DB, notifier *NotificationService) *AuditService {
	return &AuditService{db: db, notifier: notifier}
}

// Log appends one record. A missing timestamp defaults to now; the uuid is
// assigned on create. Critical failures raise a notification.
func (s *AuditService) Log(rec *models.AuditRecord) error {
	if rec == nil || rec.ActorID == "" {
		return ErrMissingActor
	}
	if !models.ValidOutcome(rec.Outcome) {
		return ErrInvalidOutcome
	}
	if !models.ValidSeverity(rec.Severity) {
		return ErrInvalidSeverity
	}
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("store audit record: %w", err)
	}
	metrics.IncAuditRecord()

	if s.notifier != nil && rec.Severity == models.SeverityCritical {
		title := fmt.Sprintf("Critical audit event in %s", rec.Module)
		message := fmt.Sprintf("%s: %s by %s (%s)", rec.Action, rec.Details, rec.ActorName, rec.SourceAddress)
		s.notifier.Notify(models.NotificationTypeError, "audit_critical", title, message)
	}
	return nil
}

// Snapshot loads the full record set in insertion order. The returned slice
// is an immutable snapshot from the engine's perspective: filtering and
// aggregation never write to it.
func (s *AuditService) Snapshot() ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load audit records: %w", err)
	}
	return records, nil
}

// Query returns the records matching f, preserving insertion order.
func (s *AuditService) Query(f audit.FilterSpec) ([]models.AuditRecord, error) {
	records, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	metrics.IncAuditQuery()
	return audit.Apply(records, f), nil
}

// Get returns one record by its uuid.
func (s *AuditService) Get(uuid string) (*models.AuditRecord, error) {
	var rec models.AuditRecord
	if err := s.db.Where("uuid = ?", uuid).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Related resolves a record's cross-references against the full set.
func (s *AuditService) Related(uuid string) ([]audit.RelatedEntry, error) {
	rec, err := s.Get(uuid)
	if err != nil {
		return nil, err
	}
	records, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return audit.ResolveRelated(*rec, records), nil
}

// Timelines aggregates the full record set into per-actor timelines.
func (s *AuditService) Timelines() (map[string]audit.ActorTimeline, error) {
	records, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return audit.Timelines(records), nil
}

// FilterOptions returns the distinct dropdown values present in the set.
func (s *AuditService) FilterOptions() (audit.FilterOptions, error) {
	records, err := s.Snapshot()
	if err != nil {
		return audit.FilterOptions{}, err
	}
	return audit.Distinct(records), nil
}
