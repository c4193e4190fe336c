package experiments

import (
	"errors"
	"fmt"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrHumanPlayer = errors.New("experiments cannot seat a human player")

// Config describes a batch of self-play games between two non-human players.
type Config struct {
	Name      string
	Games     int
	Dimension int
	Players   [2]player.Kind // X first
	Cutoff    int
	Seed      uint64 // 0 seeds from the clock
	Root      string // Directory the records are written under
}

type Summary struct {
	ID    string
	Dir   string
	XWins int
	OWins int
	Ties  int
}

// Run plays the configured games and stores one game record per game and one
// move record per move as CSV files.
func Run(config Config) (Summary, error) {
	for _, kind := range config.Players {
		if kind == player.Human {
			return Summary{}, ErrHumanPlayer
		}
	}
	if config.Games <= 0 {
		return Summary{}, fmt.Errorf("number of games must be positive, got %d", config.Games)
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	summary := Summary{ID: uuid.NewString()}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment %s: %s vs %s on %dx%d, %d games...",
		config.Name, summary.ID, config.Players[0], config.Players[1], config.Dimension, config.Dimension, config.Games)

	for i := 0; i < config.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, config.Games)

		outcome, gameMetric, moveMetrics, err := runGame(config, rng)
		if err != nil {
			return summary, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		switch outcome {
		case game.XWins:
			summary.XWins++
		case game.OWins:
			summary.OWins++
		case game.Tie:
			summary.Ties++
		}

		id := uuid.NewString()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			PlayerX:    config.Players[0].String(),
			PlayerO:    config.Players[1].String(),
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with outcome: %s", i+1, outcome)
	}

	log.Info().Msgf("completed %s experiment: X wins=%d O wins=%d ties=%d", config.Name, summary.XWins, summary.OWins, summary.Ties)

	// Store experiment results
	writer, err := metrics.NewWriter(config.Root, config.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game on a fresh board
func runGame(config Config, rng *rand.Rand) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(config.Dimension)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}

	deps := player.Deps{
		Rand:     rng,
		Searcher: searcher.NewMinimax(searcher.WithCutoff(config.Cutoff), searcher.WithMetrics()),
	}
	x, err := player.New(config.Players[0], game.X, deps)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}
	o, err := player.New(config.Players[1], game.O, deps)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(board, []player.Player{x, o})
	return e.Run()
}
