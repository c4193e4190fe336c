package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"tictactoe/player"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("random versus random writes one record per game and move", func(t *testing.T) {
		root := t.TempDir()

		summary, err := Run(Config{
			Name:      "random",
			Games:     5,
			Dimension: 3,
			Players:   [2]player.Kind{player.Random, player.Random},
			Cutoff:    5,
			Seed:      17,
			Root:      root,
		})

		require.NoError(t, err)
		require.NotEmpty(t, summary.ID)
		require.Equal(t, 5, summary.XWins+summary.OWins+summary.Ties)
		require.Equal(t, filepath.Join(root, "random"), filepath.Dir(summary.Dir))

		games := readCSV(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.Len(t, games, 6, "header plus one row per game")
		require.Equal(t, "id", games[0][0])
		totalMoves := 0
		for _, row := range games[1:] {
			require.Equal(t, "random", row[1])
			require.Equal(t, "3", row[3])
			require.Contains(t, []string{"x_wins", "o_wins", "tie"}, row[4])
			moves, err := strconv.Atoi(row[8])
			require.NoError(t, err)
			require.GreaterOrEqual(t, moves, 5, "no game ends before five moves on 3x3")
			totalMoves += moves
		}

		moves := readCSV(t, filepath.Join(summary.Dir, "move_records.csv"))
		require.Len(t, moves, totalMoves+1)
		require.Equal(t, games[1][0], moves[1][0], "move rows reference their game")
		require.Equal(t, "1", moves[1][1])
		require.Equal(t, "X", moves[1][2])
	})

	t.Run("computer versus computer always ties on 3x3", func(t *testing.T) {
		summary, err := Run(Config{
			Name:      "minimax",
			Games:     3,
			Dimension: 3,
			Players:   [2]player.Kind{player.Computer, player.Computer},
			Cutoff:    5,
			Seed:      5,
			Root:      t.TempDir(),
		})

		require.NoError(t, err)
		require.Equal(t, 3, summary.Ties)
	})

	t.Run("rejects human seats", func(t *testing.T) {
		_, err := Run(Config{
			Name:      "human",
			Games:     1,
			Dimension: 3,
			Players:   [2]player.Kind{player.Computer, player.Human},
			Root:      t.TempDir(),
		})

		require.ErrorIs(t, err, ErrHumanPlayer)
	})

	t.Run("requires at least one game", func(t *testing.T) {
		root := t.TempDir()

		_, err := Run(Config{
			Name:      "empty",
			Dimension: 3,
			Players:   [2]player.Kind{player.Random, player.Random},
			Root:      root,
		})

		require.Error(t, err)
		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Empty(t, entries, "nothing is written for a rejected experiment")
	})

	t.Run("invalid dimension fails the first game", func(t *testing.T) {
		_, err := Run(Config{
			Name:      "flat",
			Games:     1,
			Dimension: 0,
			Players:   [2]player.Kind{player.Random, player.Random},
			Root:      t.TempDir(),
		})

		require.Error(t, err)
	})
}
