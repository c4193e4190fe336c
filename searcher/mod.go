package searcher

import "tictactoe/meta"

// Scores are from X's point of view: a win by X is game.X.Weight(), a win by
// O is game.O.Weight() and anything undecided scores TIE.
const TIE = 0

// MaxCutoff is the default depth past which nodes stop being expanded.
const MaxCutoff = meta.MAX_DEPTH

// NoPosition is the position reported by terminal nodes.
const NoPosition = -1
