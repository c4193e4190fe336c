package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

// Player chooses moves for one mark. SelectMove only proposes a position; the
// engine is the single place that applies it to the board.
type Player interface {
	Mark() game.Mark
	// SelectMove returns one of board.AvailablePositions().
	SelectMove(board *game.Board) (int, error)
}

// Console is the input/output collaborator a human player talks through.
type Console interface {
	Ask(prompt string) (string, error)
	Println(a ...any)
}

type Kind int

const (
	Human Kind = iota + 1
	Random
	Computer
)

var ErrUnknownKind = errors.New("unknown player kind")

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Random:
		return "random"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// ParseKind accepts the menu number (1, 2, 3) or the kind name.
func ParseKind(input string) (Kind, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, k := range []Kind{Human, Random, Computer} {
		if input == k.String() || input == strconv.Itoa(int(k)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, input)
}

// Deps carries what the player variants need. Console is required for
// humans, Rand for random and computer players, Searcher for computers.
type Deps struct {
	Console  Console
	Rand     *rand.Rand
	Searcher *searcher.Minimax
}

func New(kind Kind, mark game.Mark, deps Deps) (Player, error) {
	switch kind {
	case Human:
		if deps.Console == nil {
			return nil, errors.New("human player needs a console")
		}
		return NewHuman(mark, deps.Console), nil
	case Random:
		if deps.Rand == nil {
			return nil, errors.New("random player needs a random source")
		}
		return NewRandom(mark, deps.Rand), nil
	case Computer:
		if deps.Rand == nil || deps.Searcher == nil {
			return nil, errors.New("computer player needs a random source and a searcher")
		}
		return NewComputer(mark, deps.Rand, deps.Searcher), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}
