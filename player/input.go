package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"tictactoe/game"
)

var (
	ErrNotNumeric = errors.New("input is not a number")
	ErrOutOfRange = errors.New("position out of range")
	ErrOccupied   = errors.New("position already occupied")
	ErrNoMoves    = errors.New("no available positions")
)

// ParseMove validates raw text typed by a human against the board. For range
// and occupancy errors the parsed number is still returned.
func ParseMove(input string, board *game.Board) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, input)
	}
	if position < 0 || position >= board.Size() {
		return position, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, position, board.Size()-1)
	}
	if !board.IsAvailable(position) {
		return position, fmt.Errorf("%w: %d", ErrOccupied, position)
	}
	return position, nil
}
