package derive

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
	"github.com/louisbranch/hexfall/internal/game/reducer"
	"github.com/louisbranch/hexfall/internal/game/scenario"
)

func demoEvents(t *testing.T) []event.Event {
	t.Helper()
	events, err := scenario.Demo("game-1")
	if err != nil {
		t.Fatalf("build demo events: %v", err)
	}
	return events
}

func TestStateIsDeterministic(t *testing.T) {
	events := demoEvents(t)

	first := State("game-1", events)
	second := State("game-1", events)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical journals to derive deeply equal states")
	}
}

func TestStateDerivesDemoJournal(t *testing.T) {
	state := State("game-1", demoEvents(t))

	if state.Status != domain.GameStatusActive {
		t.Fatalf("expected active status, got %v", state.Status)
	}
	if state.Turn != 1 || state.Phase != domain.PhaseEnd {
		t.Fatalf("expected end of turn 1, got turn %d phase %v", state.Turn, state.Phase)
	}
	if len(state.Units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(state.Units))
	}
	if got := state.Units["hammer-1"].Heat; got != 1 {
		t.Fatalf("expected hammer-1 heat 1 after dissipation, got %d", got)
	}
	if got := state.Units["anvil-1"].Armor[domain.LocationCenterTorso]; got != 8 {
		t.Fatalf("expected anvil-1 center torso armor 8, got %d", got)
	}
	if got := state.Units["hammer-1"].AmmoState["ac10_bin_lt"]; got != 9 {
		t.Fatalf("expected hammer-1 ammo bin at 9 rounds, got %d", got)
	}
}

func TestStateAtSequenceResumesCleanly(t *testing.T) {
	events := demoEvents(t)
	mid := uint64(len(events) / 2)

	partial := StateAtSequence("game-1", events, mid)
	for _, evt := range events {
		if evt.Seq <= mid {
			continue
		}
		partial = reducer.Apply(partial, evt)
	}

	full := State("game-1", events)
	if !reflect.DeepEqual(partial, full) {
		t.Fatal("expected a resumed fold to equal the full fold")
	}
}

func TestStateAtTurnExcludesLaterTurns(t *testing.T) {
	events := demoEvents(t)
	extra := event.Event{
		GameID: "game-1", Seq: uint64(len(events) + 1), Turn: 2,
		Type: event.TypeTurnStarted, PayloadJSON: []byte(`{"turn":2}`),
	}

	state := StateAtTurn("game-1", append(events, extra), 1)
	if state.Turn != 1 {
		t.Fatalf("expected state at turn 1, got turn %d", state.Turn)
	}
}

type memStore struct {
	events []event.Event
	calls  int
}

func (m *memStore) ListEvents(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Event, error) {
	m.calls++
	var page []event.Event
	for _, evt := range m.events {
		if evt.GameID != gameID || evt.Seq <= afterSeq {
			continue
		}
		page = append(page, evt)
		if len(page) == limit {
			break
		}
	}
	return page, nil
}

func TestReplayMatchesInMemoryFold(t *testing.T) {
	events := demoEvents(t)
	store := &memStore{events: events}

	result, err := Replay(context.Background(), store, "game-1", Options{PageSize: 5})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.Applied != len(events) {
		t.Fatalf("expected %d applied events, got %d", len(events), result.Applied)
	}
	if result.LastSeq != uint64(len(events)) {
		t.Fatalf("expected last seq %d, got %d", len(events), result.LastSeq)
	}
	if store.calls < 2 {
		t.Fatalf("expected paging across multiple store calls, got %d", store.calls)
	}

	if !reflect.DeepEqual(result.State, State("game-1", events)) {
		t.Fatal("expected replay to equal the in-memory fold")
	}
}

func TestReplayUntilSeq(t *testing.T) {
	events := demoEvents(t)
	store := &memStore{events: events}

	result, err := Replay(context.Background(), store, "game-1", Options{UntilSeq: 4})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.Applied != 4 || result.LastSeq != 4 {
		t.Fatalf("expected 4 events up to seq 4, got applied=%d lastSeq=%d", result.Applied, result.LastSeq)
	}
	if !reflect.DeepEqual(result.State, StateAtSequence("game-1", events, 4)) {
		t.Fatal("expected bounded replay to equal the bounded fold")
	}
}

func TestReplayUntilTurn(t *testing.T) {
	events := demoEvents(t)
	extra := event.Event{
		GameID: "game-1", Seq: uint64(len(events) + 1), Turn: 2,
		Type: event.TypeTurnStarted, PayloadJSON: []byte(`{"turn":2}`),
	}
	store := &memStore{events: append(events, extra)}

	result, err := Replay(context.Background(), store, "game-1", Options{UntilTurn: 1})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.State.Turn != 1 {
		t.Fatalf("expected state at turn 1, got %d", result.State.Turn)
	}
	if result.Applied != len(events) {
		t.Fatalf("expected %d applied events, got %d", len(events), result.Applied)
	}
}

func TestReplayResumesFromSnapshot(t *testing.T) {
	events := demoEvents(t)
	mid := uint64(len(events) / 2)
	store := &memStore{events: events}

	checkpoint, err := Replay(context.Background(), store, "game-1", Options{UntilSeq: mid})
	if err != nil {
		t.Fatalf("replay to checkpoint: %v", err)
	}

	resumed, err := Replay(context.Background(), store, "game-1", Options{
		AfterSeq: checkpoint.LastSeq,
		Initial:  &checkpoint.State,
	})
	if err != nil {
		t.Fatalf("resume replay: %v", err)
	}

	full, err := Replay(context.Background(), store, "game-1", Options{})
	if err != nil {
		t.Fatalf("full replay: %v", err)
	}
	if !reflect.DeepEqual(resumed.State, full.State) {
		t.Fatal("expected snapshot resume to equal the full replay")
	}
	if resumed.LastSeq != full.LastSeq {
		t.Fatalf("expected last seq %d, got %d", full.LastSeq, resumed.LastSeq)
	}
}

func TestReplaySequenceGap(t *testing.T) {
	events := demoEvents(t)
	gapped := append([]event.Event(nil), events[0], events[2])
	store := &memStore{events: gapped}

	_, err := Replay(context.Background(), store, "game-1", Options{})
	if err == nil {
		t.Fatal("expected sequence gap error")
	}
	if !strings.Contains(err.Error(), "sequence gap") {
		t.Fatalf("expected sequence gap error, got %v", err)
	}
}

func TestReplayGuards(t *testing.T) {
	if _, err := Replay(context.Background(), nil, "game-1", Options{}); !errors.Is(err, ErrEventStoreRequired) {
		t.Fatalf("expected ErrEventStoreRequired, got %v", err)
	}
	if _, err := Replay(context.Background(), &memStore{}, "  ", Options{}); !errors.Is(err, ErrGameIDRequired) {
		t.Fatalf("expected ErrGameIDRequired, got %v", err)
	}
}

func TestReplayHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &memStore{events: demoEvents(t)}
	if _, err := Replay(ctx, store, "game-1", Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
