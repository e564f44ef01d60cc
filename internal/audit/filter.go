package audit

import (
	"strings"

	"github.com/barakatna/platform/backend/internal/models"
)

// MatchAll is the sentinel dropdown value that disables a predicate.
// An empty predicate behaves the same way.
const MatchAll = "all"

// FilterSpec is one query against the audit record set. All active
// predicates combine conjunctively; an unset predicate always matches.
type FilterSpec struct {
	// SearchTerm matches case-insensitively as a substring of the actor
	// display name, details, source address or entity id (OR within).
	SearchTerm string `json:"search_term,omitempty"`

	// Exact-match predicates. Empty or "all" matches every record.
	Module     string `json:"module,omitempty"`
	Action     string `json:"action,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
	Severity   string `json:"severity,omitempty"`
	ActorID    string `json:"actor_id,omitempty"`

	// Inclusive timestamp bounds; either side optional. A record or bound
	// that fails to parse never matches the range (fail closed).
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// IsZero reports whether no predicate is active.
func (f FilterSpec) IsZero() bool {
	return !active(f.SearchTerm) && !active(f.Module) && !active(f.Action) &&
		!active(f.Outcome) && !active(f.EntityType) && !active(f.Severity) &&
		!active(f.ActorID) && f.From == "" && f.To == ""
}

func active(v string) bool {
	return v != "" && v != MatchAll
}

// Apply returns the ordered subsequence of records satisfying every active
// predicate of f. The input is never mutated; the result is a new slice
// preserving the original relative order. Same inputs always produce the
// same output.
func Apply(records []models.AuditRecord, f FilterSpec) []models.AuditRecord {
	out := make([]models.AuditRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches evaluates a single record against every active predicate of f.
func Matches(rec models.AuditRecord, f FilterSpec) bool {
	if active(f.Module) && rec.Module != f.Module {
		return false
	}
	if active(f.Action) && rec.Action != f.Action {
		return false
	}
	if active(f.Outcome) && rec.Outcome != f.Outcome {
		return false
	}
	if active(f.EntityType) && rec.EntityType != f.EntityType {
		return false
	}
	if active(f.Severity) && rec.Severity != f.Severity {
		return false
	}
	if active(f.ActorID) && rec.ActorID != f.ActorID {
		return false
	}
	if active(f.SearchTerm) && !matchesSearch(rec, f.SearchTerm) {
		return false
	}
	return matchesRange(rec.Timestamp, f.From, f.To)
}

func matchesSearch(rec models.AuditRecord, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{rec.ActorName, rec.Details, rec.SourceAddress, rec.EntityID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesRange applies the inclusive [from, to] bounds. An absent bound
// matches unconditionally on that side. When a bound is present and either
// it or the record timestamp is unparseable, the record does not match.
func matchesRange(ts, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	rt, ok := ParseTime(ts)
	if !ok {
		return false
	}
	if from != "" {
		ft, ok := ParseTime(from)
		if !ok || rt.Before(ft) {
			return false
		}
	}
	if to != "" {
		tt, ok := ParseTime(to)
		if !ok || rt.After(tt) {
			return false
		}
	}
	return true
}
