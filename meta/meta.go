// Package meta holds the game constants the config defaults mirror.
package meta

// DEFAULT_DIMENSION is the board dimension used when the player just presses Enter.
const DEFAULT_DIMENSION = 3

// WARN_DIMENSION is the largest dimension played without a performance warning.
const WARN_DIMENSION = 20

// MAX_DEPTH is the searcher's depth cutoff; deeper nodes score as a tie.
const MAX_DEPTH = 5
