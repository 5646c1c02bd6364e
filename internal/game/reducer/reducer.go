package reducer

import (
	"encoding/json"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

// Apply folds one event into the state and returns the next state. It is
// pure and total: the input state is never mutated, recognized events
// produce a fresh value, and everything else — unknown event types,
// malformed payloads, references to missing or destroyed units, events
// arriving after the game is terminal — returns the input state unchanged.
//
// Every event that takes effect is appended to TurnEvents; turn.started
// hard-resets the list to contain only itself.
func Apply(state domain.GameState, evt event.Event) domain.GameState {
	if state.Terminal() {
		return state
	}

	next, applied := dispatch(state, evt)
	if !applied {
		return state
	}

	if evt.Type == event.TypeTurnStarted {
		next.TurnEvents = []event.Event{evt}
	} else {
		next.TurnEvents = append(next.TurnEvents, evt)
	}
	return next
}

func dispatch(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	switch evt.Type {
	case event.TypeGameCreated:
		return applyGameCreated(state, evt)
	case event.TypeGameStarted:
		return applyGameStarted(state, evt)
	case event.TypeGameEnded:
		return applyGameEnded(state, evt)
	case event.TypeTurnStarted:
		return applyTurnStarted(state, evt)
	case event.TypePhaseChanged:
		return applyPhaseChanged(state, evt)
	case event.TypeInitiativeRolled:
		return applyInitiativeRolled(state, evt)
	case event.TypeMovementDeclared:
		return applyMovementDeclared(state, evt)
	case event.TypeMovementLocked:
		return applyMovementLocked(state, evt)
	case event.TypeAttackDeclared:
		return applyAttackDeclared(state, evt)
	case event.TypeAttackLocked:
		return applyAttackLocked(state, evt)
	case event.TypeDamageApplied:
		return applyDamageApplied(state, evt)
	case event.TypeHeatGenerated, event.TypeHeatDissipated:
		return applyHeatUpdated(state, evt)
	case event.TypePilotHit:
		return applyPilotHit(state, evt)
	case event.TypeUnitDestroyed:
		return applyUnitDestroyed(state, evt)
	case event.TypeCriticalHitResolved:
		return applyCriticalHitResolved(state, evt)
	case event.TypePSRTriggered:
		return applyPSRTriggered(state, evt)
	case event.TypePSRResolved:
		return applyPSRResolved(state, evt)
	case event.TypeUnitFell:
		return applyUnitFell(state, evt)
	case event.TypePhysicalAttackDeclared:
		return applyPhysicalAttackDeclared(state, evt)
	case event.TypePhysicalAttackResolved:
		return applyPhysicalAttackResolved(state, evt)
	case event.TypeShutdownCheck:
		return applyShutdownCheck(state, evt)
	case event.TypeStartupAttempt:
		return applyStartupAttempt(state, evt)
	case event.TypeAmmoConsumed:
		return applyAmmoConsumed(state, evt)
	default:
		// Informational, legacy, and forward-incompatible types
		// (turn.ended, initiative.order_set, attacks.revealed,
		// attack.resolved, heat.effect_applied, critical.hit,
		// facing.changed, ammo.explosion, anything unrecognized)
		// carry no state mutations.
		return state, false
	}
}

// decode unmarshals an event payload. It reports false on malformed JSON
// so the caller degrades to a no-op instead of aborting the fold.
func decode[T any](evt event.Event) (T, bool) {
	var payload T
	if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
		return payload, false
	}
	return payload, true
}

// updateUnit clones the state and applies mutate to the named unit. It
// reports false when the unit is missing or already destroyed, leaving the
// input state untouched.
func updateUnit(state domain.GameState, unitID string, mutate func(*domain.UnitState)) (domain.GameState, bool) {
	unit, ok := state.Units[unitID]
	if !ok || unit.Destroyed {
		return state, false
	}

	next := state.Clone()
	unit = next.Units[unitID]
	mutate(&unit)
	next.Units[unitID] = unit
	return next, true
}

// appendUnique appends values that are not already present, preserving
// insertion order.
func appendUnique(list []string, values ...string) []string {
	for _, value := range values {
		exists := false
		for _, existing := range list {
			if existing == value {
				exists = true
				break
			}
		}
		if !exists {
			list = append(list, value)
		}
	}
	return list
}
