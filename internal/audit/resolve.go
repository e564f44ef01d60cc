package audit

import (
	"github.com/barakatna/platform/backend/internal/models"
)

// RelatedEntry is a materialized cross-reference, built from the referenced
// record's fields for display in the detail view.
type RelatedEntry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	ActorName string `json:"actor_name"`
	Details   string `json:"details"`
}

// ResolveRelated materializes rec's related-record ids against the full
// record set, one entry per declared id in declared order. Ids with no
// match are silently omitted — this is a display convenience, not a
// referential-integrity check. Duplicate ids and self-references each
// resolve independently.
func ResolveRelated(rec models.AuditRecord, all []models.AuditRecord) []RelatedEntry {
	entries := make([]RelatedEntry, 0, len(rec.RelatedRecordIDs))
	if len(rec.RelatedRecordIDs) == 0 {
		return entries
	}

	byUUID := make(map[string]models.AuditRecord, len(all))
	for _, r := range all {
		byUUID[r.UUID] = r
	}

	for _, id := range rec.RelatedRecordIDs {
		target, ok := byUUID[id]
		if !ok {
			continue
		}
		entries = append(entries, RelatedEntry{
			Timestamp: target.Timestamp,
			Action:    target.Action,
			ActorName: target.ActorName,
			Details:   target.Details,
		})
	}
	return entries
}

// Custody returns rec's embedded custody chain in insertion order. Entries
// are self-contained, so no lookup happens; the chain is never re-sorted.
func Custody(rec models.AuditRecord) []models.CustodyEntry {
	if rec.CustodyChain == nil {
		return []models.CustodyEntry{}
	}
	return rec.CustodyChain
}
