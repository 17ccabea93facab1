package usecase

import "github.com/m-mizutani/drover/pkg/domain/model"

// ResolveImpact maps a changed-path set to the units affected by it.
//
// A unit is affected when any changed path starts with its path prefix. If
// any changed path falls under the shared prefix, every unit is affected:
// shared code fans out to the full registry and supersedes partial matches.
// Inclusion is boolean per unit; the result keeps registry order.
func ResolveImpact(changes model.ChangeSet, registry *model.Registry) []model.Unit {
	if changes.AnyUnder(registry.SharedPrefix) {
		return append([]model.Unit(nil), registry.Units...)
	}

	var affected []model.Unit
	for _, unit := range registry.Units {
		if changes.AnyUnder(unit.Path) {
			affected = append(affected, unit)
		}
	}

	return affected
}
