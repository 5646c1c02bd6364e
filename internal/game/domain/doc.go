// Package domain holds the immutable game and unit state value types the
// reducer folds events into, together with their enums and factories.
package domain
