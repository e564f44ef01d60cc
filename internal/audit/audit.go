// Package audit implements the in-memory query engine behind the console's
// audit-log screen: conjunctive filtering, cross-reference resolution and
// per-actor timeline aggregation over immutable record snapshots.
//
// Every function here is a pure (or read-only) transformation of its inputs:
// no I/O, no shared state, safe to call concurrently against the same
// snapshot. Malformed data never aborts evaluation — bad timestamps fail
// closed on range predicates and dangling references are omitted.
package audit

import (
	"time"
)

// Timestamp layouts accepted on records and filter bounds, tried in order.
// The platform writes RFC 3339; older fixtures carry second-precision
// timestamps without a zone.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp as stored on audit records.
// ok is false when the value matches no accepted layout; callers treat
// that as non-matching (range predicates) or minimal (timeline ordering),
// never as an error.
func ParseTime(s string) (t time.Time, ok bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
