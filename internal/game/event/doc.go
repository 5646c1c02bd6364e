// Package event defines the combat event journal model.
//
// Events are immutable facts emitted by the rules layer and persisted in
// ascending sequence order by the event store. State is never stored
// directly; it is derived by folding a game's journal through the reducer.
package event
