// Package query provides read-only predicates over a derived game state.
package query

import (
	"sort"

	"github.com/louisbranch/hexfall/internal/game/domain"
)

// ActiveUnits returns the units of a side that are neither destroyed nor
// piloted by an unconscious pilot, sorted by unit ID.
func ActiveUnits(state domain.GameState, side domain.Side) []domain.UnitState {
	var units []domain.UnitState
	for _, unit := range state.Units {
		if unit.Side != side || unit.Destroyed || !unit.PilotConscious {
			continue
		}
		units = append(units, unit)
	}
	sortUnits(units)
	return units
}

// UnitsAwaitingAction returns the non-destroyed units that have not yet
// declared an action this phase, sorted by unit ID.
func UnitsAwaitingAction(state domain.GameState) []domain.UnitState {
	var units []domain.UnitState
	for _, unit := range state.Units {
		if unit.Destroyed || unit.LockState != domain.LockPending {
			continue
		}
		units = append(units, unit)
	}
	sortUnits(units)
	return units
}

// AllUnitsLocked reports whether every non-destroyed, conscious unit has
// committed or resolved its action this phase.
func AllUnitsLocked(state domain.GameState) bool {
	for _, unit := range state.Units {
		if unit.Destroyed || !unit.PilotConscious {
			continue
		}
		if unit.LockState != domain.LockLocked && unit.LockState != domain.LockResolved {
			return false
		}
	}
	return true
}

// IsGameOver reports whether the game reached a terminal status.
func IsGameOver(state domain.GameState) bool {
	return state.Terminal()
}

func sortUnits(units []domain.UnitState) {
	sort.Slice(units, func(i, j int) bool {
		return units[i].ID < units[j].ID
	})
}
