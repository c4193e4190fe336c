package game

// Mark is the symbol a player puts on the board. Its numeric value doubles as
// the utility weight used by the searcher: X scores +1, O scores -1.
type Mark int8

const (
	None Mark = 0
	X    Mark = 1
	O    Mark = -1
)

// Weight returns the terminal utility of a win by this mark.
func (m Mark) Weight() int {
	return int(m)
}

func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}
