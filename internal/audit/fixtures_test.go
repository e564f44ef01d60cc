package audit

import (
	"github.com/barakatna/platform/backend/internal/models"
)

// fixtureRecords returns the ten-record set used across the package tests,
// modeled on one afternoon of console activity: a login chain for u3 from
// 192.168.1.3, a client update by u1 referencing the view that preceded it,
// and a scheduled system backup.
func fixtureRecords() []models.AuditRecord {
	return []models.AuditRecord{
		{
			UUID: "1", Timestamp: "2023-10-15T14:30:00",
			ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "login", Module: "auth", EntityType: "session", EntityID: "s-501",
			Details: "Signed in to the console", SourceAddress: "10.0.0.5",
			Outcome: models.OutcomeSuccess,
		},
		{
			UUID: "2", Timestamp: "2023-10-15T14:35:00",
			ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "view", Module: "clients", EntityType: "client", EntityID: "c-100",
			Details: "Opened client record", SourceAddress: "10.0.0.5",
			Outcome: models.OutcomeSuccess,
		},
		{
			UUID: "3", Timestamp: "2023-10-15T14:40:00",
			ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "update", Module: "clients", EntityType: "client", EntityID: "c-100",
			Details: "Updated guardianship details", SourceAddress: "10.0.0.5",
			Outcome:          models.OutcomeSuccess,
			RelatedRecordIDs: []string{"2"},
			CustodyChain: []models.CustodyEntry{
				{Timestamp: "2023-10-15T14:40:00", ActorName: "Fatima Al-Sayed", Action: "edited", Details: "Changed guardian name"},
				{Timestamp: "2023-10-15T14:41:00", ActorName: "Fatima Al-Sayed", Action: "saved", Details: "Committed revision 2"},
			},
		},
		{
			UUID: "4", Timestamp: "2023-10-15T15:05:00",
			ActorID: "u2", ActorName: "Omar Hassan",
			Action: "create", Module: "assessments", EntityType: "assessment", EntityID: "a-220",
			Details: "Created home assessment", SourceAddress: "10.0.0.9",
			Outcome: models.OutcomeSuccess,
		},
		{
			UUID: "5", Timestamp: "2023-10-15T15:20:00",
			ActorID: "u2", ActorName: "Omar Hassan",
			Action: "export", Module: "reports", EntityType: "report", EntityID: "r-17",
			Details: "Exported monthly caseload report", SourceAddress: "10.0.0.9",
			Outcome: models.OutcomeSuccess, Severity: models.SeverityMedium,
		},
		{
			UUID: "6", Timestamp: "2023-10-15T15:45:00",
			ActorID: "u3", ActorName: "Layla Ibrahim",
			Action: "login", Module: "auth", EntityType: "session", EntityID: "s-502",
			Details: "Failed sign-in attempt", SourceAddress: "192.168.1.3",
			Outcome: models.OutcomeFailure, Severity: models.SeverityHigh,
		},
		{
			UUID: "7", Timestamp: "2023-10-15T15:50:00",
			ActorID: "u3", ActorName: "Layla Ibrahim",
			Action: "login", Module: "auth", EntityType: "session", EntityID: "s-503",
			Details: "Signed in after failed attempt", SourceAddress: "192.168.1.3",
			Outcome:          models.OutcomeSuccess,
			RelatedRecordIDs: []string{"6"},
		},
		{
			UUID: "8", Timestamp: "2023-10-15T16:10:00",
			ActorID: "u2", ActorName: "Omar Hassan",
			Action: "delete", Module: "clients", EntityType: "client", EntityID: "c-103",
			Details: "Deleted duplicate client record", SourceAddress: "10.0.0.9",
			Outcome: models.OutcomeFailure, Severity: models.SeverityCritical,
		},
		{
			UUID: "9", Timestamp: "2023-10-15T16:30:00",
			ActorID: "u1", ActorName: "Fatima Al-Sayed",
			Action: "update", Module: "rules", EntityType: "business_rule", EntityID: "br-9",
			Details: "Raised priority of eligibility rule", SourceAddress: "10.0.0.5",
			Outcome: models.OutcomeSuccess,
		},
		{
			UUID: "10", Timestamp: "2023-10-15T17:00:00",
			ActorID: "u4", ActorName: "System Scheduler",
			Action: "backup", Module: "system", EntityType: "database", EntityID: "primary",
			Details: "Nightly database backup", SourceAddress: "127.0.0.1",
			Outcome: models.OutcomeSuccess, Severity: models.SeverityLow,
		},
	}
}

func uuids(records []models.AuditRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.UUID
	}
	return out
}
