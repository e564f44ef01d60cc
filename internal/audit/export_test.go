package audit

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakatna/platform/backend/internal/models"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fixtureRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 11)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "2023-10-15T14:30:00", rows[1][0])
	assert.Equal(t, "Fatima Al-Sayed", rows[1][1])
	assert.Equal(t, "success", rows[1][8])
}

func TestWriteCSV_EscapesFreeText(t *testing.T) {
	records := []models.AuditRecord{{
		UUID: "q", Timestamp: "2023-10-15T14:30:00",
		ActorID: "u1", ActorName: `Fatima "Umm Ali"`,
		Action: "update", Module: "clients",
		Details: "changed name, address\nand phone", Outcome: "success",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	out := buf.String()
	assert.Contains(t, out, `"Fatima ""Umm Ali"""`)

	// Round-trips through a CSV reader intact.
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `Fatima "Umm Ali"`, rows[1][1])
	assert.Equal(t, "changed name, address\nand phone", rows[1][6])
}

func TestWriteCSV_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestEnvelope_Metadata(t *testing.T) {
	records := fixtureRecords()
	f := FilterSpec{Module: "auth", Outcome: "failure"}
	filtered := Apply(records, f)

	env := Envelope(filtered, f)
	assert.Equal(t, len(filtered), env.RecordCount)
	assert.Equal(t, f, env.Filter)
	assert.Equal(t, filtered, env.Records)
	assert.False(t, env.ExportedAt.IsZero())

	// Serializes with the filter embedded for replay.
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"module":"auth"`)
	assert.Contains(t, string(raw), `"record_count":1`)
}
