package domain

import (
	"strings"

	"github.com/louisbranch/hexfall/internal/game/event"
)

// GameStatus describes the lifecycle stage of a game.
type GameStatus int

const (
	// GameStatusUnspecified represents an invalid status value.
	GameStatusUnspecified GameStatus = iota
	// GameStatusSetup indicates forces are placed but play has not begun.
	GameStatusSetup
	// GameStatusActive indicates the game is in progress.
	GameStatusActive
	// GameStatusCompleted indicates the game ended with a recorded result.
	GameStatusCompleted
	// GameStatusAbandoned indicates the game ended without a result.
	GameStatusAbandoned
)

// String returns the lowercase label for the status.
func (s GameStatus) String() string {
	switch s {
	case GameStatusSetup:
		return "setup"
	case GameStatusActive:
		return "active"
	case GameStatusCompleted:
		return "completed"
	case GameStatusAbandoned:
		return "abandoned"
	default:
		return "unspecified"
	}
}

// Phase describes a sub-step of a game turn. Phases are ordered; the zero
// value is invalid.
type Phase int

const (
	// PhaseUnspecified represents an invalid phase value.
	PhaseUnspecified Phase = iota
	// PhaseInitiative is the initiative roll phase.
	PhaseInitiative
	// PhaseMovement is the movement declaration phase.
	PhaseMovement
	// PhaseWeaponAttack is the weapon fire phase.
	PhaseWeaponAttack
	// PhasePhysicalAttack is the melee phase.
	PhasePhysicalAttack
	// PhaseHeat is the heat accounting phase.
	PhaseHeat
	// PhaseEnd is the turn cleanup phase.
	PhaseEnd
)

// String returns the snake_case label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitiative:
		return "initiative"
	case PhaseMovement:
		return "movement"
	case PhaseWeaponAttack:
		return "weapon_attack"
	case PhasePhysicalAttack:
		return "physical_attack"
	case PhaseHeat:
		return "heat"
	case PhaseEnd:
		return "end"
	default:
		return "unspecified"
	}
}

// ParsePhase maps a phase label to its Phase value. Unknown labels map to
// PhaseUnspecified.
func ParsePhase(value string) Phase {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "initiative":
		return PhaseInitiative
	case "movement":
		return PhaseMovement
	case "weapon_attack":
		return PhaseWeaponAttack
	case "physical_attack":
		return PhasePhysicalAttack
	case "heat":
		return PhaseHeat
	case "end":
		return PhaseEnd
	default:
		return PhaseUnspecified
	}
}

// EndReason describes why a game ended.
type EndReason string

const (
	// ReasonElimination indicates one side lost every unit.
	ReasonElimination EndReason = "elimination"
	// ReasonMutualDestruction indicates both sides lost every unit.
	ReasonMutualDestruction EndReason = "mutual_destruction"
	// ReasonTurnLimit indicates the configured turn limit was reached.
	ReasonTurnLimit EndReason = "turn_limit"
	// ReasonAbandoned indicates the game was abandoned.
	ReasonAbandoned EndReason = "abandoned"
)

// Result records the outcome of a completed game. Winner is SideUnspecified
// for a draw.
type Result struct {
	Winner Side
	Reason EndReason
}

// GameState is the complete derived state of a game at a point in its
// journal. Values are immutable: the reducer returns fresh copies and never
// alters its input.
type GameState struct {
	// GameID identifies the game.
	GameID string
	// Status is the lifecycle stage.
	Status GameStatus
	// Turn is the current game turn (0 during setup).
	Turn int
	// Phase is the current phase within the turn.
	Phase Phase
	// ActivationIndex counts units that have locked an action this phase.
	ActivationIndex int
	// InitiativeWinner is the side that won the current turn's initiative.
	InitiativeWinner Side
	// FirstMover is the side that activates first this turn.
	FirstMover Side
	// Units maps unit ID to unit state.
	Units map[string]UnitState
	// TurnEvents holds the events applied since the last turn start.
	TurnEvents []event.Event
	// Result is set once Status is GameStatusCompleted.
	Result *Result
}

// Terminal reports whether no further event may alter the state.
func (s GameState) Terminal() bool {
	return s.Status == GameStatusCompleted || s.Status == GameStatusAbandoned
}

// Clone returns a deep copy of the state. Mutating the copy, including its
// units, turn events, and result, never affects the receiver.
func (s GameState) Clone() GameState {
	out := s
	out.Units = make(map[string]UnitState, len(s.Units))
	for id, unit := range s.Units {
		out.Units[id] = unit.Clone()
	}
	out.TurnEvents = append([]event.Event(nil), s.TurnEvents...)
	if s.Result != nil {
		result := *s.Result
		out.Result = &result
	}
	return out
}
