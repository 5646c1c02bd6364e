package reducer

import (
	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

func applyAttackDeclared(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.AttackDeclaredPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.AttackerID, func(unit *domain.UnitState) {
		unit.LockState = domain.LockPlanning
		unit.PendingAction = &domain.PendingAction{
			Type:      domain.ActionAttack,
			TargetID:  payload.TargetID,
			WeaponIDs: append([]string(nil), payload.WeaponIDs...),
		}
		unit.WeaponsFiredThisTurn = appendUnique(unit.WeaponsFiredThisTurn, payload.WeaponIDs...)
	})
}

func applyAttackLocked(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.AttackLockedPayload](evt)
	if !ok {
		return state, false
	}

	next, applied := updateUnit(state, payload.AttackerID, func(unit *domain.UnitState) {
		unit.LockState = domain.LockLocked
	})
	if !applied {
		return state, false
	}
	next.ActivationIndex++
	return next, true
}

// applyDamageApplied records already-resolved damage. Armor and structure
// values are authoritative remainders, not deltas. Destroying a side torso
// (front or rear facing) also destroys the arm on that side.
func applyDamageApplied(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.DamageAppliedPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.TargetID, func(unit *domain.UnitState) {
		unit.Armor[payload.Location] = payload.ArmorRemaining
		unit.Structure[payload.Location] = payload.StructureRemaining
		unit.DamageThisPhase += payload.Damage

		if payload.LocationDestroyed {
			unit.DestroyedLocations = appendUnique(unit.DestroyedLocations, domain.BaseLocation(payload.Location))
			if arm := domain.DependentArm(payload.Location); arm != "" {
				unit.Armor[arm] = 0
				unit.Structure[arm] = 0
				unit.DestroyedLocations = appendUnique(unit.DestroyedLocations, arm)
			}
		}
		unit.DestroyedEquipment = appendUnique(unit.DestroyedEquipment, payload.CriticalHits...)
	})
}

// applyHeatUpdated handles both heat.generated and heat.dissipated; the
// payload's new total is authoritative for either direction.
func applyHeatUpdated(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.HeatUpdatedPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		total := payload.NewTotal
		if total < 0 {
			total = 0
		}
		unit.Heat = total
	})
}

func applyPilotHit(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PilotHitPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.PilotWounds = payload.TotalWounds
		if payload.ConsciousnessCheckRequired {
			unit.PilotConscious = payload.RemainedConscious
		}
	})
}

func applyUnitDestroyed(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.UnitDestroyedPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.Destroyed = true
	})
}

func applyCriticalHitResolved(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.CriticalHitResolvedPayload](evt)
	if !ok {
		return state, false
	}

	switch payload.ComponentType {
	case "engine", "gyro", "sensor", "sensors", "life_support", "cockpit",
		"weapon", "heat_sink", "jump_jet", "actuator":
	default:
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		switch payload.ComponentType {
		case "engine":
			unit.ComponentDamage.EngineHits++
		case "gyro":
			unit.ComponentDamage.GyroHits++
		case "sensor", "sensors":
			unit.ComponentDamage.SensorHits++
		case "life_support":
			unit.ComponentDamage.LifeSupportHits++
		case "cockpit":
			unit.ComponentDamage.CockpitHit = true
		case "weapon":
			unit.ComponentDamage.WeaponsDestroyed = appendUnique(unit.ComponentDamage.WeaponsDestroyed, payload.ComponentName)
		case "heat_sink":
			unit.ComponentDamage.HeatSinksDestroyed++
		case "jump_jet":
			unit.ComponentDamage.JumpJetsDestroyed++
		case "actuator":
			unit.ComponentDamage.Actuators[payload.ComponentName] = true
		}
	})
}

func applyPSRTriggered(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PSRTriggeredPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.PendingPSRs = append(unit.PendingPSRs, domain.PendingPSR{
			Reason:             payload.Reason,
			AdditionalModifier: payload.AdditionalModifier,
			TriggerSource:      payload.TriggerSource,
		})
	})
}

// applyPSRResolved removes the first queued roll matching the resolved
// reason; the roll outcome itself arrives as separate events (unit.fell,
// damage.applied).
func applyPSRResolved(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PSRResolvedPayload](evt)
	if !ok {
		return state, false
	}

	unit, exists := state.Units[payload.UnitID]
	if !exists || unit.Destroyed {
		return state, false
	}
	match := -1
	for i, pending := range unit.PendingPSRs {
		if pending.Reason == payload.Reason {
			match = i
			break
		}
	}
	if match < 0 {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.PendingPSRs = append(unit.PendingPSRs[:match], unit.PendingPSRs[match+1:]...)
	})
}

// applyUnitFell marks the unit prone and clears its PSR queue; whatever
// checks were pending are moot once the unit is down.
func applyUnitFell(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.UnitFellPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.Prone = true
		if facing, valid := domain.ParseFacing(payload.NewFacing); valid {
			unit.Facing = facing
		}
		unit.PendingPSRs = nil
	})
}

func applyPhysicalAttackDeclared(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PhysicalAttackDeclaredPayload](evt)
	if !ok {
		return state, false
	}

	return updateUnit(state, payload.AttackerID, func(unit *domain.UnitState) {
		unit.LockState = domain.LockPlanning
		unit.PendingAction = &domain.PendingAction{
			Type:     domain.ActionPhysical,
			TargetID: payload.TargetID,
		}
	})
}

func applyPhysicalAttackResolved(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.PhysicalAttackResolvedPayload](evt)
	if !ok {
		return state, false
	}
	if !payload.Hit {
		return state, false
	}

	return updateUnit(state, payload.TargetID, func(unit *domain.UnitState) {
		unit.DamageThisPhase += payload.Damage
	})
}

func applyShutdownCheck(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.ShutdownCheckPayload](evt)
	if !ok {
		return state, false
	}
	if !payload.ShutdownOccurred {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.Shutdown = true
	})
}

func applyStartupAttempt(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.StartupAttemptPayload](evt)
	if !ok {
		return state, false
	}
	if !payload.Success {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.Shutdown = false
	})
}

func applyAmmoConsumed(state domain.GameState, evt event.Event) (domain.GameState, bool) {
	payload, ok := decode[event.AmmoConsumedPayload](evt)
	if !ok {
		return state, false
	}

	unit, exists := state.Units[payload.UnitID]
	if !exists || unit.Destroyed {
		return state, false
	}
	if _, tracked := unit.AmmoState[payload.BinID]; !tracked {
		return state, false
	}

	return updateUnit(state, payload.UnitID, func(unit *domain.UnitState) {
		unit.AmmoState[payload.BinID] = payload.RoundsRemaining
	})
}
