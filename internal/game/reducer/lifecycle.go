package reducer

import (
	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

// Default deployment map dimensions, in hexes, used when game.created does
// not carry explicit ones. Matches a standard single mapsheet.
const (
	defaultMapWidth  = 15
	defaultMapHeight = 17
)

// applyGameCreated seeds the unit roster. Player units deploy along the
// north edge facing south, opponent units along the south edge facing
// north, each unit in its own column.
func applyGameCreated(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.GameCreatedPayload](evt)
	if !ok {
		return state, false
	}

	width := payload.MapWidth
	if width <= 0 {
		width = defaultMapWidth
	}
	height := payload.MapHeight
	if height <= 0 {
		height = defaultMapHeight
	}

	next := state.Clone()
	next.Status = domain.GameStatusSetup

	playerColumn := 0
	opponentColumn := 0
	for _, descriptor := range payload.Units {
		if descriptor.UnitID == "" {
			continue
		}
		side := domain.ParseSide(descriptor.Side)

		var position event.Hex
		var facing domain.Facing
		switch side {
		case domain.SideOpponent:
			position = event.Hex{Q: deployColumn(opponentColumn, width), R: height - 1}
			facing = domain.FacingNorth
			opponentColumn++
		default:
			position = event.Hex{Q: deployColumn(playerColumn, width), R: 0}
			facing = domain.FacingSouth
			playerColumn++
		}

		next.Units[descriptor.UnitID] = domain.NewUnitState(descriptor, position, facing)
	}

	return next, true
}

// deployColumn spreads units two columns apart along their map edge.
func deployColumn(index, width int) int {
	return (1 + 2*index) % width
}

func applyGameStarted(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.GameStartedPayload](evt)
	if !ok {
		return state, false
	}

	next := state.Clone()
	next.Status = domain.GameStatusActive
	next.Turn = 1
	next.Phase = domain.PhaseInitiative
	next.FirstMover = domain.ParseSide(payload.FirstMover)
	next.TurnEvents = nil
	return next, true
}

func applyGameEnded(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.GameEndedPayload](evt)
	if !ok {
		return state, false
	}

	next := state.Clone()
	next.Status = domain.GameStatusCompleted
	next.Result = &domain.Result{
		Winner: domain.ParseSide(payload.Winner),
		Reason: domain.EndReason(payload.Reason),
	}
	return next, true
}

// applyTurnStarted resets per-turn tracking. TurnEvents is reset by Apply,
// which seeds it with this event.
func applyTurnStarted(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.TurnStartedPayload](evt)
	if !ok {
		return state, false
	}

	next := state.Clone()
	next.Turn = payload.Turn
	next.Phase = domain.PhaseInitiative
	next.ActivationIndex = 0
	for id, unit := range next.Units {
		if unit.Destroyed {
			continue
		}
		unit.WeaponsFiredThisTurn = nil
		next.Units[id] = unit
	}
	return next, true
}

// applyPhaseChanged resets per-phase unit tracking, plus per-turn movement
// tracking when the new phase is movement.
func applyPhaseChanged(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PhaseChangedPayload](evt)
	if !ok {
		return state, false
	}
	phase := domain.ParsePhase(payload.ToPhase)
	if phase == domain.PhaseUnspecified {
		return state, false
	}

	next := state.Clone()
	next.Phase = phase
	next.ActivationIndex = 0
	for id, unit := range next.Units {
		if unit.Destroyed {
			continue
		}
		unit.LockState = domain.LockPending
		unit.PendingAction = nil
		unit.DamageThisPhase = 0
		if phase == domain.PhaseMovement {
			unit.MovementThisTurn = domain.MovementStationary
			unit.HexesMovedThisTurn = 0
		}
		next.Units[id] = unit
	}
	return next, true
}

func applyInitiativeRolled(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.InitiativeRolledPayload](evt)
	if !ok {
		return state, false
	}

	next := state.Clone()
	next.InitiativeWinner = domain.ParseSide(payload.Winner)
	next.FirstMover = domain.ParseSide(payload.FirstMover)
	return next, true
}
