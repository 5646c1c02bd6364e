package domain

import "github.com/louisbranch/hexfall/internal/game/event"

// NewGameState returns the zero-value state a journal fold starts from:
// setup status, turn 0, initiative phase, no units, no turn events.
func NewGameState(gameID string) GameState {
	return GameState{
		GameID: gameID,
		Status: GameStatusSetup,
		Turn:   0,
		Phase:  PhaseInitiative,
		Units:  map[string]UnitState{},
	}
}

// NewUnitState builds a fresh unit at full health from a descriptor: heat
// zero, stationary, conscious, lock pending, every damage and tracking
// collection empty.
func NewUnitState(descriptor event.UnitDescriptor, position event.Hex, facing Facing) UnitState {
	armor := make(map[string]int, len(descriptor.Armor))
	for location, points := range descriptor.Armor {
		armor[location] = points
	}
	structure := make(map[string]int, len(descriptor.Structure))
	for location, points := range descriptor.Structure {
		structure[location] = points
	}
	ammo := make(map[string]int, len(descriptor.Ammo))
	for bin, rounds := range descriptor.Ammo {
		ammo[bin] = rounds
	}

	return UnitState{
		ID:               descriptor.UnitID,
		Name:             descriptor.Name,
		Side:             ParseSide(descriptor.Side),
		Position:         position,
		Facing:           facing,
		Armor:            armor,
		Structure:        structure,
		Heat:             0,
		MovementThisTurn: MovementStationary,
		PilotConscious:   true,
		ComponentDamage: ComponentDamage{
			Actuators: map[string]bool{},
		},
		LockState: LockPending,
		AmmoState: ammo,
	}
}
