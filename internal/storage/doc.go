// Package storage defines the persistence interfaces for the engine.
//
// The event journal is the source of truth; snapshots are an optimization
// for resuming long replays. Implementations live in subpackages: sqlite
// backs the event journal, bbolt backs snapshots.
package storage
