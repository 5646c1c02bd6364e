package reducer

import (
	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

func applyMovementDeclared(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.MovementDeclaredPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.Position = payload.To
		if facing, valid := domain.ParseFacing(payload.Facing); valid {
			unit.Facing = facing
		}
		unit.MovementThisTurn = domain.ParseMovementType(payload.MovementType)
		unit.HexesMovedThisTurn = payload.HexesMoved
		unit.Heat += payload.HeatGenerated
		unit.LockState = domain.LockPlanning
		unit.PendingAction = &domain.PendingAction{Type: domain.ActionMove}
	})
}

func applyMovementLocked(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.MovementLockedPayload](evt)
	if !ok {
		return state, false
	}

	next, applied := updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.LockState = domain.LockLocked
	})
	if !applied {
		return state, false
	}
	next.ActivationIndex++
	return next, true
}
