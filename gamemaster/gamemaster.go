package gamemaster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
	"tictactoe/utils"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Console is everything the game master needs from the terminal.
type Console interface {
	Ask(prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Pause(d time.Duration)
}

// GameMaster runs the interactive session: it asks for the players and the
// board, plays a game and offers a rematch.
type GameMaster struct {
	console Console
	config  *config.Config
	rng     *rand.Rand
}

func NewGameMaster(console Console, cfg *config.Config, rng *rand.Rand) *GameMaster {
	return &GameMaster{
		console: console,
		config:  cfg,
		rng:     rng,
	}
}

// Run loops over games until the player declines another one. Invalid answers
// are asked again; only console failures are returned.
func (gm *GameMaster) Run() error {
	gm.console.Println("\nWelcome to tic-tac-toe!")
	gm.console.Pause(gm.config.Pacing.Intro)

	for {
		first, err := gm.AskPlayerKind(true)
		if err != nil {
			return err
		}
		gm.console.Pause(gm.config.Pacing.Prompt)

		second, err := gm.AskPlayerKind(false)
		if err != nil {
			return err
		}
		gm.console.Pause(gm.config.Pacing.Prompt)

		dim, err := gm.AskDimension()
		if err != nil {
			return err
		}
		gm.console.Pause(gm.config.Pacing.Prompt)

		outcome, err := gm.PlayGame([2]player.Kind{first, second}, dim)
		if err != nil {
			return err
		}
		gm.console.Println(outcome.Message())
		gm.console.Pause(gm.config.Pacing.Outcome)

		again, err := gm.AskPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// PlayGame builds a fresh board and players and runs one game to the end.
func (gm *GameMaster) PlayGame(kinds [2]player.Kind, dim int) (game.Outcome, error) {
	board, err := game.NewBoard(dim)
	if err != nil {
		return game.InProgress, err
	}

	deps := player.Deps{
		Console:  gm.console,
		Rand:     gm.rng,
		Searcher: searcher.NewMinimax(searcher.WithCutoff(gm.config.Search.Cutoff), searcher.WithMetrics()),
	}
	players := make([]player.Player, 0, len(kinds))
	for i, kind := range kinds {
		mark := game.X
		if i == 1 {
			mark = game.O
		}
		p, err := player.New(kind, mark, deps)
		if err != nil {
			return game.InProgress, err
		}
		players = append(players, p)
	}

	log.Info().Msgf("new game: X=%s O=%s dimension=%d", kinds[0], kinds[1], dim)

	e := engine.LocalEngine(board, players, engine.WithDisplay(gm.console, gm.config.Pacing.Turn))
	outcome, _, _, err := e.Run()
	return outcome, err
}

func (gm *GameMaster) AskPlayerKind(first bool) (player.Kind, error) {
	seat, mark := 1, game.X
	if !first {
		seat, mark = 2, game.O
	}

	for {
		gm.console.Println()
		gm.console.Println("1 - Human player")
		gm.console.Println("2 - Random player (chooses random positions)")
		gm.console.Println("3 - Computer player (based on Minimax algorithm)")
		input, err := gm.console.Ask(fmt.Sprintf("Choose the type for player %d ('%s'): ", seat, mark))
		if err != nil {
			return 0, err
		}

		kind, err := ParsePlayerKind(input)
		if err == nil {
			return kind, nil
		}
		gm.console.Println("\nInvalid choice. Try again.")
	}
}

func (gm *GameMaster) AskDimension() (int, error) {
	for {
		gm.console.Println()
		input, err := gm.console.Ask(fmt.Sprintf("Choose the dimension N for a NxN board (default = %d): ", gm.config.Board.DefaultDimension))
		if err != nil {
			return 0, err
		}

		dim, err := ParseDimension(input, gm.config.Board.DefaultDimension)
		if err != nil {
			gm.console.Println("\nInvalid choice. Try again.")
			continue
		}
		if dim > gm.config.Board.WarnDimension {
			gm.console.Println("Warning: the game might not be optimized for this dimension.")
		}
		return dim, nil
	}
}

func (gm *GameMaster) AskPlayAgain() (bool, error) {
	for {
		gm.console.Println()
		input, err := gm.console.Ask("Do you want to play again? (y/n): ")
		if err != nil {
			return false, err
		}

		again, err := ParsePlayAgain(input)
		if err == nil {
			return again, nil
		}
		gm.console.Println("Invalid choice. Try again.")
	}
}

// ParsePlayerKind accepts only the menu numbers 1, 2 and 3.
func ParsePlayerKind(input string) (player.Kind, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, input)
	}
	kind, err := player.ParseKind(strconv.Itoa(choice))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidChoice, err)
	}
	return kind, nil
}

// ParseDimension returns def for blank input and rejects anything that is not
// a positive integer.
func ParseDimension(input string, def int) (int, error) {
	if input == "" {
		return def, nil
	}
	dim, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, input)
	}
	if dim <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidChoice, game.ErrInvalidDimension)
	}
	return dim, nil
}

var (
	yesAnswers = []string{"y", "yes"}
	noAnswers  = []string{"n", "no"}
)

func ParsePlayAgain(input string) (bool, error) {
	answer := strings.ToLower(strings.TrimSpace(input))
	switch {
	case utils.Contains(yesAnswers, answer):
		return true, nil
	case utils.Contains(noAnswers, answer):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidChoice, input)
	}
}
