package audit

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/barakatna/platform/backend/internal/models"
)

// csvHeader fixes the export column order. Free-text fields are
// double-quote escaped by the csv writer.
var csvHeader = []string{
	"timestamp", "actor", "action", "module", "entity_type", "entity_id",
	"details", "source_address", "outcome", "severity",
}

// WriteCSV writes records to w as delimited text, one line per record after
// the header row.
func WriteCSV(w io.Writer, records []models.AuditRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp, rec.ActorName, rec.Action, rec.Module,
			rec.EntityType, rec.EntityID, rec.Details, rec.SourceAddress,
			rec.Outcome, rec.Severity,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportEnvelope wraps a filtered record set with metadata about the export
// for the structured (JSON) encoding.
type ExportEnvelope struct {
	ExportedAt  time.Time            `json:"exported_at"`
	RecordCount int                  `json:"record_count"`
	Filter      FilterSpec           `json:"filter"`
	Records     []models.AuditRecord `json:"records"`
}

// Envelope builds the structured export for a filtered set and the filter
// that produced it.
func Envelope(records []models.AuditRecord, f FilterSpec) ExportEnvelope {
	return ExportEnvelope{
		ExportedAt:  time.Now().UTC(),
		RecordCount: len(records),
		Filter:      f,
		Records:     records,
	}
}
