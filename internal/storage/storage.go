package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// EventStore persists game events and lists them in ascending sequence
// order. AppendEvent assigns the sequence number.
type EventStore interface {
	AppendEvent(ctx context.Context, evt event.Event) (event.Event, error)
	ListEvents(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Event, error)
}

// Snapshot captures a derived game state at a journal position so replay
// can resume from it instead of folding from sequence zero.
type Snapshot struct {
	GameID  string
	Seq     uint64
	Turn    int
	TakenAt time.Time
	State   domain.GameState
}

// SnapshotStore persists the latest snapshot per game.
type SnapshotStore interface {
	PutSnapshot(ctx context.Context, snapshot Snapshot) error
	GetSnapshot(ctx context.Context, gameID string) (Snapshot, error)
}
