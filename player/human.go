package player

import (
	"errors"
	"fmt"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

type human struct {
	mark    game.Mark
	console Console
}

func NewHuman(mark game.Mark, console Console) Player {
	return &human{mark: mark, console: console}
}

func (h *human) Mark() game.Mark {
	return h.mark
}

// SelectMove asks until the console yields a valid, free position. Bad input
// is reported and asked again; only a console failure (e.g. EOF) is returned.
func (h *human) SelectMove(board *game.Board) (int, error) {
	prompt := fmt.Sprintf("Player %s, choose a position (0-%d): ", h.mark, board.Size()-1)
	for {
		input, err := h.console.Ask(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		position, err := ParseMove(input, board)
		if err == nil {
			return position, nil
		}
		log.Debug().Err(err).Str("mark", h.mark.String()).Msg("rejected move input")

		switch {
		case errors.Is(err, ErrNotNumeric):
			h.console.Println("Invalid input: please enter a number.")
		case errors.Is(err, ErrOutOfRange):
			h.console.Println(fmt.Sprintf("Position out of range: choose between 0 and %d.", board.Size()-1))
		case errors.Is(err, ErrOccupied):
			h.console.Println(fmt.Sprintf("Position %d is already occupied. Try again.", position))
		}
	}
}
