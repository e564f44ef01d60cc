package audit

import (
	"sort"

	"github.com/barakatna/platform/backend/internal/models"
)

// ActorOption pairs an actor id with its display name for dropdowns.
type ActorOption struct {
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name"`
}

// FilterOptions lists the distinct values present in a record set for the
// open-ended vocabularies. The filter dropdowns derive their choices from
// these rather than a fixed enumeration, so new actions and modules appear
// without a release.
type FilterOptions struct {
	Modules     []string      `json:"modules"`
	Actions     []string      `json:"actions"`
	EntityTypes []string      `json:"entity_types"`
	Actors      []ActorOption `json:"actors"`
}

// Distinct collects the distinct modules, actions, entity types and actors
// present in records, sorted ascending for deterministic output.
func Distinct(records []models.AuditRecord) FilterOptions {
	modules := map[string]struct{}{}
	actions := map[string]struct{}{}
	entityTypes := map[string]struct{}{}
	actorNames := map[string]string{}

	for _, rec := range records {
		if rec.Module != "" {
			modules[rec.Module] = struct{}{}
		}
		if rec.Action != "" {
			actions[rec.Action] = struct{}{}
		}
		if rec.EntityType != "" {
			entityTypes[rec.EntityType] = struct{}{}
		}
		if rec.ActorID != "" {
			if _, seen := actorNames[rec.ActorID]; !seen {
				actorNames[rec.ActorID] = rec.ActorName
			}
		}
	}

	actors := make([]ActorOption, 0, len(actorNames))
	for id, name := range actorNames {
		actors = append(actors, ActorOption{ActorID: id, ActorName: name})
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].ActorID < actors[j].ActorID })

	return FilterOptions{
		Modules:     sortedKeys(modules),
		Actions:     sortedKeys(actions),
		EntityTypes: sortedKeys(entityTypes),
		Actors:      actors,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
