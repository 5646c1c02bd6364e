package domain

import (
	"strings"

	"github.com/louisbranch/hexfall/internal/game/event"
)

// Side identifies which force a unit belongs to.
type Side int

const (
	// SideUnspecified represents an invalid or neutral side value.
	SideUnspecified Side = iota
	// SidePlayer is the player force.
	SidePlayer
	// SideOpponent is the opposing force.
	SideOpponent
)

// String returns the lowercase label for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unspecified"
	}
}

// ParseSide maps a side label to its Side value. Unknown labels map to
// SideUnspecified.
func ParseSide(value string) Side {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "player":
		return SidePlayer
	case "opponent":
		return SideOpponent
	default:
		return SideUnspecified
	}
}

// Facing is one of the six hex directions, clockwise from north.
type Facing int

const (
	// FacingNorth faces the top map edge.
	FacingNorth Facing = iota
	// FacingNortheast faces the upper-right map edge.
	FacingNortheast
	// FacingSoutheast faces the lower-right map edge.
	FacingSoutheast
	// FacingSouth faces the bottom map edge.
	FacingSouth
	// FacingSouthwest faces the lower-left map edge.
	FacingSouthwest
	// FacingNorthwest faces the upper-left map edge.
	FacingNorthwest
)

// String returns the lowercase label for the facing.
func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "north"
	case FacingNortheast:
		return "northeast"
	case FacingSoutheast:
		return "southeast"
	case FacingSouth:
		return "south"
	case FacingSouthwest:
		return "southwest"
	case FacingNorthwest:
		return "northwest"
	default:
		return "unspecified"
	}
}

// ParseFacing maps a facing label to its Facing value. It reports false for
// unknown labels so callers can keep the current facing.
func ParseFacing(value string) (Facing, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "north":
		return FacingNorth, true
	case "northeast":
		return FacingNortheast, true
	case "southeast":
		return FacingSoutheast, true
	case "south":
		return FacingSouth, true
	case "southwest":
		return FacingSouthwest, true
	case "northwest":
		return FacingNorthwest, true
	default:
		return FacingNorth, false
	}
}

// MovementType describes how a unit moved this turn.
type MovementType int

const (
	// MovementStationary indicates no movement.
	MovementStationary MovementType = iota
	// MovementWalk indicates walking movement.
	MovementWalk
	// MovementRun indicates running movement.
	MovementRun
	// MovementJump indicates jump-jet movement.
	MovementJump
)

// String returns the lowercase label for the movement type.
func (m MovementType) String() string {
	switch m {
	case MovementWalk:
		return "walk"
	case MovementRun:
		return "run"
	case MovementJump:
		return "jump"
	default:
		return "stationary"
	}
}

// ParseMovementType maps a movement label to its MovementType value.
// Unknown labels map to MovementStationary.
func ParseMovementType(value string) MovementType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "walk":
		return MovementWalk
	case "run":
		return MovementRun
	case "jump":
		return MovementJump
	default:
		return MovementStationary
	}
}

// LockState tracks whether a unit's current-phase action is editable,
// committed, or resolved.
type LockState int

const (
	// LockPending indicates no action has been declared this phase.
	LockPending LockState = iota
	// LockPlanning indicates an action is declared but still editable.
	LockPlanning
	// LockLocked indicates the action is committed.
	LockLocked
	// LockResolved indicates the action has been fully resolved.
	LockResolved
)

// String returns the lowercase label for the lock state.
func (l LockState) String() string {
	switch l {
	case LockPlanning:
		return "planning"
	case LockLocked:
		return "locked"
	case LockResolved:
		return "resolved"
	default:
		return "pending"
	}
}

// ActionType categorizes a declared pending action.
type ActionType string

const (
	// ActionMove is a declared movement.
	ActionMove ActionType = "move"
	// ActionAttack is a declared weapon attack.
	ActionAttack ActionType = "attack"
	// ActionPhysical is a declared physical attack.
	ActionPhysical ActionType = "physical"
)

// PendingAction records a declared but not yet resolved action.
type PendingAction struct {
	Type      ActionType
	TargetID  string
	WeaponIDs []string
}

// PendingPSR is a queued piloting skill roll awaiting resolution.
type PendingPSR struct {
	Reason             string
	AdditionalModifier int
	TriggerSource      string
}

// ComponentDamage tracks accumulated critical damage to a unit's internals.
type ComponentDamage struct {
	EngineHits         int
	GyroHits           int
	SensorHits         int
	LifeSupportHits    int
	CockpitHit         bool
	WeaponsDestroyed   []string
	HeatSinksDestroyed int
	JumpJetsDestroyed  int
	Actuators          map[string]bool
}

// Clone returns a deep copy of the component damage record.
func (c ComponentDamage) Clone() ComponentDamage {
	out := c
	out.WeaponsDestroyed = append([]string(nil), c.WeaponsDestroyed...)
	out.Actuators = make(map[string]bool, len(c.Actuators))
	for part, hit := range c.Actuators {
		out.Actuators[part] = hit
	}
	return out
}

// UnitState is the complete derived state of a single unit.
type UnitState struct {
	// ID identifies the unit within the game.
	ID string
	// Name is a human-facing label.
	Name string
	// Side is the force the unit belongs to.
	Side Side
	// Position is the unit's axial hex coordinate.
	Position event.Hex
	// Facing is the unit's hex facing.
	Facing Facing
	// Armor maps location ID to remaining armor points.
	Armor map[string]int
	// Structure maps location ID to remaining internal structure points.
	Structure map[string]int
	// Heat is the unit's current heat level.
	Heat int
	// MovementThisTurn is the declared movement mode for the turn.
	MovementThisTurn MovementType
	// HexesMovedThisTurn counts hexes entered this turn.
	HexesMovedThisTurn int
	// PilotWounds counts accumulated pilot wounds.
	PilotWounds int
	// PilotConscious reports whether the pilot is conscious.
	PilotConscious bool
	// Destroyed marks the unit as out of the game. Once set, no later
	// event alters any other field.
	Destroyed bool
	// DestroyedLocations lists destroyed location IDs without duplicates.
	DestroyedLocations []string
	// DestroyedEquipment lists destroyed equipment IDs without duplicates.
	DestroyedEquipment []string
	// PendingPSRs is the ordered queue of unresolved piloting skill rolls.
	PendingPSRs []PendingPSR
	// WeaponsFiredThisTurn lists weapons declared fired this turn.
	WeaponsFiredThisTurn []string
	// JammedWeapons lists currently jammed weapons.
	JammedWeapons []string
	// ComponentDamage tracks critical component damage.
	ComponentDamage ComponentDamage
	// Prone reports whether the unit has fallen.
	Prone bool
	// Shutdown reports whether the unit's reactor is shut down.
	Shutdown bool
	// LockState tracks the unit's current-phase action commitment.
	LockState LockState
	// PendingAction is the declared but unresolved action, if any.
	PendingAction *PendingAction
	// DamageThisPhase accumulates damage taken during the current phase.
	DamageThisPhase int
	// AmmoState maps ammo bin ID to remaining rounds.
	AmmoState map[string]int
}

// Clone returns a deep copy of the unit state.
func (u UnitState) Clone() UnitState {
	out := u
	out.Armor = cloneIntMap(u.Armor)
	out.Structure = cloneIntMap(u.Structure)
	out.DestroyedLocations = append([]string(nil), u.DestroyedLocations...)
	out.DestroyedEquipment = append([]string(nil), u.DestroyedEquipment...)
	out.PendingPSRs = append([]PendingPSR(nil), u.PendingPSRs...)
	out.WeaponsFiredThisTurn = append([]string(nil), u.WeaponsFiredThisTurn...)
	out.JammedWeapons = append([]string(nil), u.JammedWeapons...)
	out.ComponentDamage = u.ComponentDamage.Clone()
	if u.PendingAction != nil {
		action := *u.PendingAction
		action.WeaponIDs = append([]string(nil), u.PendingAction.WeaponIDs...)
		out.PendingAction = &action
	}
	out.AmmoState = cloneIntMap(u.AmmoState)
	return out
}

func cloneIntMap(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
