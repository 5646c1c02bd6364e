// Package reducer folds combat events into game state.
//
// Apply is the single mutation point for the whole engine: every state
// transition in a match is one event passed through its dispatch. Handlers
// operate on deep copies, so any state value handed out remains stable no
// matter how many further events are folded.
package reducer
