package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	t.Run("reads one line per prompt", func(t *testing.T) {
		var out bytes.Buffer
		c := New(strings.NewReader("first\r\n\nthird"), &out)

		first, err := c.Ask("a? ")
		require.NoError(t, err)
		second, err := c.Ask("b? ")
		require.NoError(t, err)
		third, err := c.Ask("c? ")
		require.NoError(t, err)

		require.Equal(t, "first", first)
		require.Equal(t, "", second, "blank lines are valid answers")
		require.Equal(t, "third", third)
		require.Equal(t, "a? b? c? ", out.String())
	})

	t.Run("returns EOF once input is exhausted", func(t *testing.T) {
		c := New(strings.NewReader(""), io.Discard)

		_, err := c.Ask("a? ")

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Println("It's a tie!")
	c.Printf("%s wins the game!\n", "X")
	c.Pause(0)

	require.Equal(t, "It's a tie!\nX wins the game!\n", out.String())
}
