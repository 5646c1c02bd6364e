package bbolt

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestPutAndGetSnapshot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	state := domain.NewGameState("game-1")
	state.Status = domain.GameStatusActive
	state.Turn = 3
	state.Phase = domain.PhaseHeat
	state.Units["hammer-1"] = domain.UnitState{
		ID: "hammer-1", Side: domain.SidePlayer, PilotConscious: true,
		Armor:     map[string]int{domain.LocationHead: 9},
		Structure: map[string]int{domain.LocationHead: 3},
		AmmoState: map[string]int{"ac10_bin_lt": 7},
	}

	snapshot := storage.Snapshot{
		GameID:  "game-1",
		Seq:     42,
		Turn:    3,
		TakenAt: time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC),
		State:   state,
	}
	if err := store.PutSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}

	got, err := store.GetSnapshot(ctx, "game-1")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.Seq != 42 || got.Turn != 3 {
		t.Fatalf("unexpected snapshot checkpoint: seq=%d turn=%d", got.Seq, got.Turn)
	}
	if got.State.Status != domain.GameStatusActive || got.State.Phase != domain.PhaseHeat {
		t.Fatalf("unexpected snapshot state: %+v", got.State)
	}
	if !reflect.DeepEqual(got.State.Units["hammer-1"].AmmoState, map[string]int{"ac10_bin_lt": 7}) {
		t.Fatalf("unexpected unit state: %+v", got.State.Units["hammer-1"])
	}
}

func TestPutSnapshotReplacesPrevious(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSnapshot(ctx, storage.Snapshot{GameID: "game-1", Seq: 10}); err != nil {
		t.Fatalf("put first snapshot: %v", err)
	}
	if err := store.PutSnapshot(ctx, storage.Snapshot{GameID: "game-1", Seq: 20}); err != nil {
		t.Fatalf("put second snapshot: %v", err)
	}

	got, err := store.GetSnapshot(ctx, "game-1")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.Seq != 20 {
		t.Fatalf("expected latest snapshot at seq 20, got %d", got.Seq)
	}
}

func TestGetSnapshotNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetSnapshot(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutSnapshotRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if err := store.PutSnapshot(context.Background(), storage.Snapshot{}); err == nil {
		t.Fatal("expected error for missing game id")
	}
}
