package player

import (
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type random struct {
	mark game.Mark
	rng  *rand.Rand
}

// NewRandom returns a player that picks uniformly among the free cells.
func NewRandom(mark game.Mark, rng *rand.Rand) Player {
	return &random{mark: mark, rng: rng}
}

func (r *random) Mark() game.Mark {
	return r.mark
}

func (r *random) SelectMove(board *game.Board) (int, error) {
	return sample(board.AvailablePositions(), r.rng)
}

func sample(positions []int, rng *rand.Rand) (int, error) {
	if len(positions) == 0 {
		return 0, ErrNoMoves
	}
	return positions[rng.Intn(len(positions))], nil
}
