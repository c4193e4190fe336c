package searcher

import (
	"math"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Result is the outcome of searching one node.
type Result struct {
	Position int
	Score    int
}

// Minimax is a depth-limited minimax search with alpha-beta pruning. X is the
// maximizing side and O the minimizing side.
type Minimax struct {
	cutoff  int
	metrics metrics.Collector
}

func WithCutoff(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		cutoff:  MaxCutoff,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Cutoff() int {
	return m.cutoff
}

// FindMove returns the best position for mover on a non-terminal board. The
// board is used as scratch space and is left exactly as it was passed in.
func (m *Minimax) FindMove(board *game.Board, mover game.Mark) (int, metrics.SearchMetric) {
	m.metrics.Start(m.cutoff)
	result := m.Search(board, mover == game.X, 0, math.MinInt, math.MaxInt)
	metric := m.metrics.Complete()

	log.Debug().
		Str("mover", mover.String()).
		Int("position", result.Position).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Int("prunes", metric.Prunes).
		Dur("duration", metric.Duration).
		Msg("search completed")

	return result.Position, metric
}

// Search scores the board for the side to move. Terminal checks come first
// (X wins, O wins, full board, depth cutoff), then every available position is
// tried in ascending order. Only a strictly better score replaces the current
// best, so ties resolve to the lowest position.
func (m *Minimax) Search(board *game.Board, maximizing bool, depth, alpha, beta int) Result {
	m.metrics.AddNode()

	switch {
	case board.Winner(game.X):
		return Result{Position: NoPosition, Score: game.X.Weight()}
	case board.Winner(game.O):
		return Result{Position: NoPosition, Score: game.O.Weight()}
	case board.IsFull():
		return Result{Position: NoPosition, Score: TIE}
	case depth > m.cutoff:
		m.metrics.AddCutoff()
		return Result{Position: NoPosition, Score: TIE}
	}

	mover := game.O
	best := Result{Position: NoPosition, Score: math.MaxInt}
	if maximizing {
		mover = game.X
		best.Score = math.MinInt
	}

	for _, position := range board.AvailablePositions() {
		board.Occupy(position, mover)
		score := m.Search(board, !maximizing, depth+1, alpha, beta).Score
		board.Undo(position)

		if maximizing {
			if score > best.Score {
				best = Result{Position: position, Score: score}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Position: position, Score: score}
			}
			beta = min(beta, best.Score)
		}

		if beta <= alpha {
			m.metrics.AddPrune()
			break
		}
	}

	return best
}
