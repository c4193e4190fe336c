package searcher

import (
	"math"
	"math/rand/v2"
	"testing"
	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

const (
	x = game.X
	o = game.O
)

/**
Tests minimax with alpha-beta pruning
- terminal nodes: X win, O win, full board -> no position, weight of the winner or tie
- decisions: take an immediate win, block an immediate loss, lowest index on ties
- board is restored after every search
- pruning never changes the root decision compared to a plain minimax
- depth cutoff scores unexplored nodes as a tie
*/

func newBoard(t *testing.T, cells ...game.Mark) *game.Board {
	t.Helper()
	dim := int(math.Sqrt(float64(len(cells))))
	require.Equal(t, dim*dim, len(cells), "cells must form a square board")

	b, err := game.NewBoard(dim)
	require.NoError(t, err)
	for i, m := range cells {
		if m != game.None {
			b.Occupy(i, m)
		}
	}
	return b
}

func search(m *Minimax, b *game.Board, maximizing bool) Result {
	return m.Search(b, maximizing, 0, math.MinInt, math.MaxInt)
}

func TestSearchTerminal(t *testing.T) {
	t.Run("X has won", func(t *testing.T) {
		b := newBoard(t,
			x, x, x,
			o, o, 0,
			0, 0, 0,
		)

		got := search(NewMinimax(), b, false)

		require.Equal(t, Result{Position: NoPosition, Score: 1}, got)
	})

	t.Run("O has won", func(t *testing.T) {
		b := newBoard(t,
			x, x, o,
			x, o, 0,
			o, 0, 0,
		)

		got := search(NewMinimax(), b, true)

		require.Equal(t, Result{Position: NoPosition, Score: -1}, got)
	})

	t.Run("full board without a line", func(t *testing.T) {
		b := newBoard(t,
			x, o, x,
			x, o, o,
			o, x, x,
		)

		got := search(NewMinimax(), b, true)

		require.Equal(t, Result{Position: NoPosition, Score: TIE}, got)
	})
}

func TestSearchDecisions(t *testing.T) {
	t.Run("X completes the top row", func(t *testing.T) {
		b := newBoard(t,
			x, x, 0,
			0, o, 0,
			0, 0, 0,
		)

		got := search(NewMinimax(), b, true)

		require.Equal(t, 2, got.Position, "X should take the winning cell")
		require.Equal(t, 1, got.Score)

		b.Occupy(got.Position, game.X)
		require.True(t, b.Winner(game.X))
	})

	t.Run("O blocks the top row", func(t *testing.T) {
		b := newBoard(t,
			x, x, 0,
			0, o, 0,
			0, 0, 0,
		)

		got := search(NewMinimax(), b, false)

		require.Equal(t, 2, got.Position, "O should block X's winning cell")
	})

	t.Run("O prefers winning over blocking", func(t *testing.T) {
		b := newBoard(t,
			x, x, 0,
			o, o, 0,
			x, 0, 0,
		)

		got := search(NewMinimax(), b, false)

		require.Equal(t, 5, got.Position)
		require.Equal(t, -1, got.Score)
	})

	t.Run("ties resolve to the lowest position", func(t *testing.T) {
		b := newBoard(t,
			0, 0, 0,
			0, 0, 0,
			0, 0, 0,
		)

		got := search(NewMinimax(WithCutoff(9)), b, true)

		require.Equal(t, Result{Position: 0, Score: TIE}, got, "every opening draws with best play")
	})
}

func TestSearchRestoresBoard(t *testing.T) {
	b := newBoard(t,
		x, 0, 0,
		0, o, 0,
		0, 0, x,
	)
	before := b.Cells()

	search(NewMinimax(), b, false)

	require.Equal(t, before, b.Cells(), "Search should undo every speculative move")
}

func TestSearchMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 200; i++ {
		b, mover := randomPosition(t, rng, 3)
		if b.Winner(game.X) || b.Winner(game.O) || b.IsFull() {
			continue
		}
		cutoff := 1 + rng.IntN(9)
		before := b.Cells()

		got := search(NewMinimax(WithCutoff(cutoff)), b, mover == game.X)
		want := plainMinimax(b, mover == game.X, 0, cutoff)

		require.Equal(t, want, got, "pruning should not change the decision on %v (cutoff %d)", before, cutoff)
		require.Contains(t, b.AvailablePositions(), got.Position, "position should be available")
		require.Equal(t, before, b.Cells())
	}
}

func TestFindMove(t *testing.T) {
	t.Run("position is always available", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 5))
		m := NewMinimax()

		for i := 0; i < 50; i++ {
			b, mover := randomPosition(t, rng, 4)
			if b.Winner(game.X) || b.Winner(game.O) || b.IsFull() {
				continue
			}

			got, _ := m.FindMove(b, mover)

			require.Contains(t, b.AvailablePositions(), got)
		}
	})

	t.Run("collects metrics when enabled", func(t *testing.T) {
		b := newBoard(t,
			x, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		)
		m := NewMinimax(WithMetrics(), WithCutoff(2))

		_, metric := m.FindMove(b, game.O)

		require.Equal(t, 2, metric.Cutoff)
		require.Greater(t, metric.Nodes, 1)
		require.Greater(t, metric.Cutoffs, 0, "nodes past depth 2 should be cut off")
		require.Greater(t, metric.Prunes, 0)
	})

	t.Run("metrics are empty by default", func(t *testing.T) {
		b := newBoard(t, x, 0, 0, 0)

		_, metric := NewMinimax().FindMove(b, game.O)

		require.Zero(t, metric.Nodes)
	})
}

func TestWithCutoff(t *testing.T) {
	require.Equal(t, MaxCutoff, NewMinimax().Cutoff())
	require.Equal(t, 3, NewMinimax(WithCutoff(3)).Cutoff())
	require.Equal(t, MaxCutoff, NewMinimax(WithCutoff(0)).Cutoff(), "non-positive cutoffs keep the default")
}

// randomPosition plays a random number of random moves starting with X.
func randomPosition(t *testing.T, rng *rand.Rand, dim int) (*game.Board, game.Mark) {
	t.Helper()
	b, err := game.NewBoard(dim)
	require.NoError(t, err)

	mover := game.X
	moves := 1 + rng.IntN(dim*dim-1)
	for i := 0; i < moves; i++ {
		positions := b.AvailablePositions()
		b.Occupy(positions[rng.IntN(len(positions))], mover)
		mover = mover.Opponent()
	}
	return b, mover
}

// plainMinimax is the unpruned reference search with the same tie-break.
func plainMinimax(b *game.Board, maximizing bool, depth, cutoff int) Result {
	switch {
	case b.Winner(game.X):
		return Result{Position: NoPosition, Score: 1}
	case b.Winner(game.O):
		return Result{Position: NoPosition, Score: -1}
	case b.IsFull() || depth > cutoff:
		return Result{Position: NoPosition, Score: TIE}
	}

	mover := game.O
	best := Result{Position: NoPosition, Score: math.MaxInt}
	if maximizing {
		mover = game.X
		best.Score = math.MinInt
	}
	for _, p := range b.AvailablePositions() {
		b.Occupy(p, mover)
		score := plainMinimax(b, !maximizing, depth+1, cutoff).Score
		b.Undo(p)
		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Position: p, Score: score}
		}
	}
	return best
}
