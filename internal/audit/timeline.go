package audit

import (
	"sort"

	"github.com/barakatna/platform/backend/internal/models"
)

// Activity is one lightweight timeline entry derived from an audit record.
type Activity struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Module    string `json:"module"`
	Details   string `json:"details"`
}

// ActorTimeline is the reverse-chronological activity list for one actor.
type ActorTimeline struct {
	ActorID    string     `json:"actor_id"`
	ActorName  string     `json:"actor_name"`
	Activities []Activity `json:"activities"`
}

// Timelines partitions records by actor id and builds one reverse-
// chronological timeline per actor present. The display name is captured
// from the actor's first record. Activities sort descending by timestamp
// with a stable sort, so records sharing a timestamp keep their original
// relative order; unparseable timestamps sort last. Actors with no records
// never appear. The computation is a full pass per call — callers decide
// when to recompute.
func Timelines(records []models.AuditRecord) map[string]ActorTimeline {
	type keyed struct {
		act Activity
		at  sortKey
	}
	buckets := make(map[string][]keyed)
	names := make(map[string]string)
	order := make([]string, 0)

	for _, rec := range records {
		if _, seen := buckets[rec.ActorID]; !seen {
			names[rec.ActorID] = rec.ActorName
			order = append(order, rec.ActorID)
		}
		buckets[rec.ActorID] = append(buckets[rec.ActorID], keyed{
			act: Activity{
				Timestamp: rec.Timestamp,
				Action:    rec.Action,
				Module:    rec.Module,
				Details:   rec.Details,
			},
			at: newSortKey(rec.Timestamp),
		})
	}

	out := make(map[string]ActorTimeline, len(buckets))
	for _, actorID := range order {
		entries := buckets[actorID]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].at.after(entries[j].at)
		})
		activities := make([]Activity, len(entries))
		for i, e := range entries {
			activities[i] = e.act
		}
		out[actorID] = ActorTimeline{
			ActorID:    actorID,
			ActorName:  names[actorID],
			Activities: activities,
		}
	}
	return out
}

// sortKey orders parsed timestamps before unparseable ones.
type sortKey struct {
	t  int64
	ok bool
}

func newSortKey(ts string) sortKey {
	t, ok := ParseTime(ts)
	if !ok {
		return sortKey{}
	}
	return sortKey{t: t.UnixNano(), ok: true}
}

func (k sortKey) after(o sortKey) bool {
	if k.ok != o.ok {
		return k.ok
	}
	return k.t > o.t
}
