package engine

import (
	"fmt"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine alternates two players over one board until a line is completed or
// the board is full.
type Engine struct {
	Board   *game.Board
	Players [2]player.Player
	Status  game.Outcome

	display Display
	pacing  time.Duration
}

// searchReporter is implemented by players that search for their moves.
type searchReporter interface {
	LastSearch() metrics.SearchMetric
}

// LocalEngine sets up a game between exactly two players. By convention the
// first player holds X and the second holds O.
func LocalEngine(board *game.Board, players []player.Player, options ...Option) *Engine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	if players[0].Mark() != game.X || players[1].Mark() != game.O {
		panic("first player must be X and second player must be O")
	}

	eng := &Engine{
		Board:   board,
		Players: [2]player.Player{players[0], players[1]},
		Status:  game.InProgress,
		display: noDisplay{},
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run executes the entire game loop until the game reaches a terminal outcome.
// Only an input failure or a player proposing an unavailable position stops it
// early, in which case the status stays InProgress.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Dimension: e.Board.Dim(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting a %dx%d game", e.Board.Dim(), e.Board.Dim())

	current := 0
	for step := 1; e.Status == game.InProgress; step++ {
		if e.Board.IsFull() {
			e.Status = game.Tie
			break
		}
		e.show()

		p := e.Players[current]
		moveStart := time.Now()
		position, err := p.SelectMove(e.Board)
		if err != nil {
			return e.Status, gameMetric, moveMetrics, fmt.Errorf("player %s failed to select a move: %w", p.Mark(), err)
		}
		if !e.Board.IsAvailable(position) {
			return e.Status, gameMetric, moveMetrics, fmt.Errorf("%w: player %s chose position %d", ErrIllegalMove, p.Mark(), position)
		}
		e.Board.Occupy(position, p.Mark())

		moveMetric := metrics.MoveMetric{
			Step:     step,
			Mark:     p.Mark().String(),
			Position: position,
			Duration: time.Since(moveStart),
		}
		if reporter, ok := p.(searchReporter); ok {
			moveMetric.SearchMetric = reporter.LastSearch()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Int("step", step).Str("mark", p.Mark().String()).Int("position", position).Msg("move played")

		switch {
		case e.Board.Winner(p.Mark()):
			e.Status = game.OutcomeFor(p.Mark())
		case e.Board.IsFull():
			e.Status = game.Tie
		default:
			current = 1 - current
		}
	}
	e.show()

	gameMetric.Outcome = e.Status.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, e.Status)

	return e.Status, gameMetric, moveMetrics, nil
}

func (e *Engine) show() {
	e.display.Println(e.Board.String())
	e.display.Pause(e.pacing)
}
