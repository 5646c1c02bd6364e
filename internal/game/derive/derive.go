// Package derive reconstructs game state by folding event journals.
//
// The in-memory folds (State, StateAtSequence, StateAtTurn) are pure and
// deterministic: identical inputs always produce deeply equal states.
// Replay pages events out of an event store, which lets callers derive
// long matches without loading the whole journal at once.
package derive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
	"github.com/louisbranch/hexfall/internal/game/reducer"
)

const defaultPageSize = 200

var (
	// ErrEventStoreRequired indicates a missing event store.
	ErrEventStoreRequired = errors.New("event store is required")
	// ErrGameIDRequired indicates a missing game id.
	ErrGameIDRequired = errors.New("game id is required")
)

// EventStore lists events for store-backed replay.
type EventStore interface {
	ListEvents(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Event, error)
}

// State folds the full event list into a game state. The caller guarantees
// ascending sequence order.
func State(gameID string, events []event.Event) domain.GameState {
	state := domain.NewGameState(gameID)
	for _, evt := range events {
		state = reducer.Apply(state, evt)
	}
	return state
}

// StateAtSequence folds only events with sequence at or below maxSeq,
// reconstructing the state as of that point in the journal.
func StateAtSequence(gameID string, events []event.Event, maxSeq uint64) domain.GameState {
	state := domain.NewGameState(gameID)
	for _, evt := range events {
		if evt.Seq > maxSeq {
			continue
		}
		state = reducer.Apply(state, evt)
	}
	return state
}

// StateAtTurn folds only events with turn at or below maxTurn.
func StateAtTurn(gameID string, events []event.Event, maxTurn int) domain.GameState {
	state := domain.NewGameState(gameID)
	for _, evt := range events {
		if evt.Turn > maxTurn {
			continue
		}
		state = reducer.Apply(state, evt)
	}
	return state
}

// Options configures store-backed replay behavior.
type Options struct {
	// AfterSeq skips events at or below this sequence.
	AfterSeq uint64
	// UntilSeq stops replay after this sequence when nonzero.
	UntilSeq uint64
	// UntilTurn stops replay before events of later turns when nonzero.
	UntilTurn int
	// PageSize bounds how many events are fetched per store call.
	PageSize int
	// Initial resumes folding from a snapshot state instead of the
	// zero state. AfterSeq should match the snapshot's sequence.
	Initial *domain.GameState
}

// Result captures a store-backed replay outcome.
type Result struct {
	State   domain.GameState
	LastSeq uint64
	Applied int
}

// Replay derives a game's state from its stored journal, paging events in
// ascending order. A gap in the sequence is a store contract violation and
// aborts with an error; the partial result is still returned.
func Replay(ctx context.Context, store EventStore, gameID string, options Options) (Result, error) {
	if store == nil {
		return Result{}, ErrEventStoreRequired
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return Result{}, ErrGameIDRequired
	}

	ctx, span := otel.Tracer("hexfall/derive").Start(ctx, "derive.Replay")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", gameID))

	state := domain.NewGameState(gameID)
	if options.Initial != nil {
		state = options.Initial.Clone()
	}
	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	result := Result{State: state, LastSeq: options.AfterSeq}
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		events, err := store.ListEvents(ctx, gameID, result.LastSeq, pageSize)
		if err != nil {
			return result, err
		}
		if len(events) == 0 {
			span.SetAttributes(attribute.Int("events.applied", result.Applied))
			return result, nil
		}
		for _, evt := range events {
			if options.UntilSeq > 0 && evt.Seq > options.UntilSeq {
				return result, nil
			}
			if options.UntilTurn > 0 && evt.Turn > options.UntilTurn {
				return result, nil
			}
			expectedSeq := result.LastSeq + 1
			if evt.Seq != expectedSeq {
				return result, fmt.Errorf("event sequence gap: expected %d got %d", expectedSeq, evt.Seq)
			}
			result.State = reducer.Apply(result.State, evt)
			result.LastSeq = evt.Seq
			result.Applied++
		}
	}
}
