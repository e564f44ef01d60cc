package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barakatna/platform/backend/internal/models"
)

func TestDistinct_CollectsSortedVocabularies(t *testing.T) {
	opts := Distinct(fixtureRecords())

	assert.Equal(t, []string{"assessments", "auth", "clients", "reports", "rules", "system"}, opts.Modules)
	assert.Equal(t, []string{"backup", "create", "delete", "export", "login", "update", "view"}, opts.Actions)
	assert.Equal(t, []string{"assessment", "business_rule", "client", "database", "report", "session"}, opts.EntityTypes)

	assert.Equal(t, []ActorOption{
		{ActorID: "u1", ActorName: "Fatima Al-Sayed"},
		{ActorID: "u2", ActorName: "Omar Hassan"},
		{ActorID: "u3", ActorName: "Layla Ibrahim"},
		{ActorID: "u4", ActorName: "System Scheduler"},
	}, opts.Actors)
}

func TestDistinct_SkipsEmptyFieldsAndDedupes(t *testing.T) {
	records := []models.AuditRecord{
		{UUID: "a", ActorID: "u1", ActorName: "Fatima", Module: "auth", Action: "login"},
		{UUID: "b", ActorID: "u1", ActorName: "Renamed Later", Module: "auth", Action: "login"},
		{UUID: "c", Module: "", Action: ""},
	}

	opts := Distinct(records)
	assert.Equal(t, []string{"auth"}, opts.Modules)
	assert.Equal(t, []string{"login"}, opts.Actions)
	assert.Empty(t, opts.EntityTypes)
	assert.Equal(t, []ActorOption{{ActorID: "u1", ActorName: "Fatima"}}, opts.Actors)
}

func TestDistinct_EmptyInput(t *testing.T) {
	opts := Distinct(nil)
	assert.Empty(t, opts.Modules)
	assert.Empty(t, opts.Actions)
	assert.Empty(t, opts.EntityTypes)
	assert.Empty(t, opts.Actors)
}
