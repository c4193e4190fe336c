package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDimension = errors.New("board dimension must be positive")

// Board is a square grid of cells addressed by flat row-major indices
// 0..n²-1. It is mutated in place; the searcher relies on Occupy/Undo pairs to
// explore speculative moves without copying.
type Board struct {
	dim   int
	cells []Mark // Row-major, None for an empty cell
}

// NewBoard returns an empty dim×dim board.
func NewBoard(dim int) (*Board, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	return &Board{
		dim:   dim,
		cells: make([]Mark, dim*dim),
	}, nil
}

func (b *Board) Dim() int {
	return b.dim
}

// Size returns the number of cells on the board.
func (b *Board) Size() int {
	return len(b.cells)
}

func (b *Board) Cell(index int) Mark {
	b.mustBeInRange(index)
	return b.cells[index]
}

// Cells returns a copy of the grid in row-major order.
func (b *Board) Cells() []Mark {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) IsAvailable(index int) bool {
	return index >= 0 && index < len(b.cells) && b.cells[index] == None
}

// Occupy places mark on an empty cell. Callers must only pass indices taken
// from AvailablePositions; anything else is a bug and panics.
func (b *Board) Occupy(index int, mark Mark) {
	b.mustBeInRange(index)
	if mark == None {
		panic("cannot occupy a cell with no mark")
	}
	if b.cells[index] != None {
		panic(fmt.Sprintf("cell %d is already occupied by %s", index, b.cells[index]))
	}
	b.cells[index] = mark
}

// Undo clears a cell previously filled by Occupy.
func (b *Board) Undo(index int) {
	b.mustBeInRange(index)
	if b.cells[index] == None {
		panic(fmt.Sprintf("cell %d is not occupied", index))
	}
	b.cells[index] = None
}

// AvailablePositions returns the indices of empty cells in ascending order.
func (b *Board) AvailablePositions() []int {
	positions := make([]int, 0, len(b.cells))
	for i, cell := range b.cells {
		if cell == None {
			positions = append(positions, i)
		}
	}
	return positions
}

func (b *Board) OccupiedCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell != None {
			count++
		}
	}
	return count
}

func (b *Board) IsEmpty() bool {
	for _, cell := range b.cells {
		if cell != None {
			return false
		}
	}
	return true
}

func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == None {
			return false
		}
	}
	return true
}

// Winner reports whether mark fully occupies a row, a column or one of the
// two main diagonals. Lines are checked in that order.
func (b *Board) Winner(mark Mark) bool {
	if mark == None {
		return false
	}
	n := b.dim

	for row := 0; row < n; row++ {
		if b.line(row*n, 1, mark) {
			return true
		}
	}
	for col := 0; col < n; col++ {
		if b.line(col, n, mark) {
			return true
		}
	}
	if b.line(0, n+1, mark) {
		return true
	}
	return b.line(n-1, n-1, mark)
}

// line checks the n cells start, start+step, ... for mark.
func (b *Board) line(start, step int, mark Mark) bool {
	for i, index := 0, start; i < b.dim; i, index = i+1, index+step {
		if b.cells[index] != mark {
			return false
		}
	}
	return true
}

// String renders one row per line. Empty cells show their index so players
// know what to type; columns are padded so indices of any width line up.
func (b *Board) String() string {
	width := b.cellWidth()

	var sb strings.Builder
	for row := 0; row < b.dim; row++ {
		sb.WriteString("| ")
		for col := 0; col < b.dim; col++ {
			if col > 0 {
				sb.WriteString(" | ")
			}
			index := row*b.dim + col
			label := strconv.Itoa(index)
			if b.cells[index] != None {
				label = b.cells[index].String()
			}
			sb.WriteString(center(label, width))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

func (b *Board) cellWidth() int {
	size := len(b.cells)
	switch {
	case size < 10:
		return 1
	case size <= 100:
		return 2
	default:
		return 3
	}
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func (b *Board) mustBeInRange(index int) {
	if index < 0 || index >= len(b.cells) {
		panic(fmt.Sprintf("cell index %d out of range [0, %d]", index, len(b.cells)-1))
	}
}
