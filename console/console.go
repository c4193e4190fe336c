package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Console reads answers line by line from in and writes everything the
// players see to out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask writes prompt and returns the next input line without its line ending.
// It returns io.EOF once the input is exhausted.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Pause slows the output down so a human can follow it.
func (c *Console) Pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
