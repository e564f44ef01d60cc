package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outcome values accepted on audit records.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Severity values accepted on audit records, ordered by ascending urgency.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// CustodyEntry is one provenance note embedded in an audit record's custody
// chain. Entries are self-contained and never referenced independently.
type CustodyEntry struct {
	Timestamp string `json:"timestamp"`
	ActorName string `json:"actor_name"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// AuditRecord is an immutable log entry describing one action taken by an
// actor on an entity. Records are append-only: there is no update or delete
// surface, and filtering/aggregation never mutate them.
//
// Action, Module and EntityType are open-ended string vocabularies, not
// enums — new values coming from other platform modules must not break
// filtering. Timestamp is stored as ISO-8601 text and parsed lazily.
type AuditRecord struct {
	ID               uint           `json:"-" gorm:"primaryKey"`
	UUID             string         `json:"id" gorm:"uniqueIndex"`
	Timestamp        string         `json:"timestamp"`
	ActorID          string         `json:"actor_id" gorm:"index"`
	ActorName        string         `json:"actor_name"`
	Action           string         `json:"action" gorm:"index"`
	Module           string         `json:"module" gorm:"index"`
	EntityType       string         `json:"entity_type"`
	EntityID         string         `json:"entity_id"`
	Details          string         `json:"details" gorm:"type:text"`
	SourceAddress    string         `json:"source_address"`
	UserAgent        string         `json:"user_agent,omitempty"`
	Outcome          string         `json:"outcome"`
	Severity         string         `json:"severity,omitempty"`
	RelatedRecordIDs []string       `json:"related_record_ids,omitempty" gorm:"serializer:json"`
	CustodyChain     []CustodyEntry `json:"custody_chain,omitempty" gorm:"serializer:json"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (r *AuditRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return
}

// ValidOutcome reports whether s is a known outcome value.
func ValidOutcome(s string) bool {
	return s == OutcomeSuccess || s == OutcomeFailure
}

// ValidSeverity reports whether s is a known severity value. The empty
// string is valid because severity is optional.
func ValidSeverity(s string) bool {
	switch s {
	case "", SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// SeverityRank maps a severity to its urgency order for display sorting.
// Unknown or empty severities rank lowest.
func SeverityRank(s string) int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}
