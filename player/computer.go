package player

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

type computer struct {
	mark     game.Mark
	rng      *rand.Rand
	searcher *searcher.Minimax
	last     metrics.SearchMetric
}

// NewComputer returns a minimax player. Its opening move on an empty board is
// random since every first move is symmetric.
func NewComputer(mark game.Mark, rng *rand.Rand, s *searcher.Minimax) Player {
	return &computer{mark: mark, rng: rng, searcher: s}
}

func (c *computer) Mark() game.Mark {
	return c.mark
}

func (c *computer) SelectMove(board *game.Board) (int, error) {
	c.last = metrics.SearchMetric{}
	if board.IsEmpty() {
		return sample(board.AvailablePositions(), c.rng)
	}
	if board.IsFull() {
		return 0, ErrNoMoves
	}

	position, metric := c.searcher.FindMove(board, c.mark)
	c.last = metric
	if position == searcher.NoPosition {
		return 0, ErrNoMoves
	}
	return position, nil
}

// LastSearch returns the statistics of the most recent search, zero when the
// last move was not searched.
func (c *computer) LastSearch() metrics.SearchMetric {
	return c.last
}
