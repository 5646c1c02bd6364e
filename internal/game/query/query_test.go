package query

import (
	"testing"

	"github.com/louisbranch/hexfall/internal/game/domain"
)

func testState() domain.GameState {
	state := domain.NewGameState("game-1")
	state.Status = domain.GameStatusActive
	state.Units = map[string]domain.UnitState{
		"hammer-2": {ID: "hammer-2", Side: domain.SidePlayer, PilotConscious: true, LockState: domain.LockPending},
		"hammer-1": {ID: "hammer-1", Side: domain.SidePlayer, PilotConscious: true, LockState: domain.LockLocked},
		"anvil-1":  {ID: "anvil-1", Side: domain.SideOpponent, PilotConscious: true, LockState: domain.LockResolved},
		"anvil-2":  {ID: "anvil-2", Side: domain.SideOpponent, PilotConscious: false, LockState: domain.LockPending},
		"anvil-3":  {ID: "anvil-3", Side: domain.SideOpponent, PilotConscious: true, Destroyed: true},
	}
	return state
}

func TestActiveUnits(t *testing.T) {
	state := testState()

	player := ActiveUnits(state, domain.SidePlayer)
	if len(player) != 2 {
		t.Fatalf("expected 2 active player units, got %d", len(player))
	}
	if player[0].ID != "hammer-1" || player[1].ID != "hammer-2" {
		t.Fatalf("expected units sorted by id, got %s, %s", player[0].ID, player[1].ID)
	}

	// Destroyed and unconscious units are not active.
	opponent := ActiveUnits(state, domain.SideOpponent)
	if len(opponent) != 1 || opponent[0].ID != "anvil-1" {
		t.Fatalf("expected only anvil-1 active, got %d units", len(opponent))
	}
}

func TestUnitsAwaitingAction(t *testing.T) {
	state := testState()

	waiting := UnitsAwaitingAction(state)
	if len(waiting) != 2 {
		t.Fatalf("expected 2 units awaiting action, got %d", len(waiting))
	}
	if waiting[0].ID != "anvil-2" || waiting[1].ID != "hammer-2" {
		t.Fatalf("expected anvil-2 and hammer-2, got %s, %s", waiting[0].ID, waiting[1].ID)
	}
}

func TestAllUnitsLocked(t *testing.T) {
	state := testState()
	if AllUnitsLocked(state) {
		t.Fatal("expected not all units locked while hammer-2 is pending")
	}

	unit := state.Units["hammer-2"]
	unit.LockState = domain.LockLocked
	state.Units["hammer-2"] = unit

	// anvil-2 is unconscious and anvil-3 destroyed; neither blocks the phase.
	if !AllUnitsLocked(state) {
		t.Fatal("expected all actionable units locked")
	}
}

func TestIsGameOver(t *testing.T) {
	state := testState()
	if IsGameOver(state) {
		t.Fatal("expected active game not over")
	}

	state.Status = domain.GameStatusCompleted
	if !IsGameOver(state) {
		t.Fatal("expected completed game over")
	}

	state.Status = domain.GameStatusAbandoned
	if !IsGameOver(state) {
		t.Fatal("expected abandoned game over")
	}
}
