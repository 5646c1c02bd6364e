package event

import (
	"strings"
	"time"
)

// Type identifies the type of a combat event.
type Type string

// Game lifecycle events.
const (
	// TypeGameCreated records the creation of a game and its starting forces.
	TypeGameCreated Type = "game.created"
	// TypeGameStarted records the transition from setup to active play.
	TypeGameStarted Type = "game.started"
	// TypeGameEnded records the final outcome of a game.
	TypeGameEnded Type = "game.ended"
)

// Turn and phase events.
const (
	// TypeTurnStarted records the beginning of a game turn.
	TypeTurnStarted Type = "turn.started"
	// TypeTurnEnded records the end of a game turn.
	TypeTurnEnded Type = "turn.ended"
	// TypePhaseChanged records a phase transition within a turn.
	TypePhaseChanged Type = "phase.changed"
	// TypeInitiativeRolled records the initiative roll outcome for a turn.
	TypeInitiativeRolled Type = "initiative.rolled"
	// TypeInitiativeOrderSet records the resolved activation order.
	TypeInitiativeOrderSet Type = "initiative.order_set"
)

// Movement events.
const (
	// TypeMovementDeclared records a unit's declared movement for the turn.
	TypeMovementDeclared Type = "movement.declared"
	// TypeMovementLocked records a unit committing its declared movement.
	TypeMovementLocked Type = "movement.locked"
	// TypeFacingChanged records a standalone facing change.
	TypeFacingChanged Type = "facing.changed"
)

// Weapon attack events.
const (
	// TypeAttackDeclared records a unit declaring weapon fire at a target.
	TypeAttackDeclared Type = "attack.declared"
	// TypeAttackLocked records a unit committing its declared attacks.
	TypeAttackLocked Type = "attack.locked"
	// TypeAttacksRevealed records the simultaneous reveal of locked attacks.
	TypeAttacksRevealed Type = "attacks.revealed"
	// TypeAttackResolved records the to-hit outcome of a declared attack.
	TypeAttackResolved Type = "attack.resolved"
	// TypeDamageApplied records damage applied to a unit location.
	TypeDamageApplied Type = "damage.applied"
)

// Heat events.
const (
	// TypeHeatGenerated records heat gained by a unit.
	TypeHeatGenerated Type = "heat.generated"
	// TypeHeatDissipated records heat shed by a unit.
	TypeHeatDissipated Type = "heat.dissipated"
	// TypeHeatEffectApplied records a heat-scale effect taking hold.
	TypeHeatEffectApplied Type = "heat.effect_applied"
	// TypeShutdownCheck records the outcome of an overheating shutdown check.
	TypeShutdownCheck Type = "shutdown.check"
	// TypeStartupAttempt records an attempt to restart a shutdown unit.
	TypeStartupAttempt Type = "startup.attempt"
)

// Pilot and unit condition events.
const (
	// TypePilotHit records wounds taken by a unit's pilot.
	TypePilotHit Type = "pilot.hit"
	// TypeUnitDestroyed records the destruction of a unit.
	TypeUnitDestroyed Type = "unit.destroyed"
	// TypeUnitFell records a unit falling prone.
	TypeUnitFell Type = "unit.fell"
	// TypeCriticalHitResolved records a resolved critical component hit.
	TypeCriticalHitResolved Type = "critical.resolved"
	// TypeCriticalHit records a rolled critical slot before resolution.
	// Retained for older journals; resolution arrives as critical.resolved.
	TypeCriticalHit Type = "critical.hit"
	// TypePSRTriggered records a queued piloting skill roll.
	TypePSRTriggered Type = "psr.triggered"
	// TypePSRResolved records the resolution of a queued piloting skill roll.
	TypePSRResolved Type = "psr.resolved"
)

// Physical attack events.
const (
	// TypePhysicalAttackDeclared records a declared punch, kick, or charge.
	TypePhysicalAttackDeclared Type = "physical.declared"
	// TypePhysicalAttackResolved records the outcome of a physical attack.
	TypePhysicalAttackResolved Type = "physical.resolved"
)

// Ammunition events.
const (
	// TypeAmmoConsumed records rounds expended from an ammo bin.
	TypeAmmoConsumed Type = "ammo.consumed"
	// TypeAmmoExplosion records an ammunition explosion.
	TypeAmmoExplosion Type = "ammo.explosion"
)

// Hex is an axial hex-grid coordinate.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Event represents an immutable entry in a game's event journal.
type Event struct {
	// GameID is the game this event belongs to.
	GameID string
	// Seq is the event sequence number within the game (starts at 1).
	// Assigned by storage on append.
	Seq uint64
	// Turn is the game turn the event occurred in (0 during setup).
	Turn int
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Type identifies the kind of event.
	Type Type
	// EntityID is the primary unit the event concerns (empty for
	// game-scoped events).
	EntityID string
	// PayloadJSON holds event-specific data as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Domain returns the domain prefix of the event type (e.g., "game", "attack").
func (t Type) Domain() string {
	for i, c := range t {
		if c == '.' {
			return string(t[:i])
		}
	}
	return string(t)
}
