package engine

import (
	"errors"
	"time"
)

var ErrIllegalMove = errors.New("illegal move")

// Display is the output collaborator that shows the board between turns.
type Display interface {
	Println(a ...any)
	Pause(d time.Duration)
}

type Option func(e *Engine)

// WithDisplay prints the board before every turn and once the game is over,
// pausing for pacing after each print.
func WithDisplay(display Display, pacing time.Duration) Option {
	return func(e *Engine) {
		if display != nil {
			e.display = display
			e.pacing = pacing
		}
	}
}

type noDisplay struct{}

func (noDisplay) Println(a ...any)      {}
func (noDisplay) Pause(d time.Duration) {}
