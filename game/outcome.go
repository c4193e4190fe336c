package game

// Outcome is the state of a game. Every value except InProgress is terminal.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Tie
)

// OutcomeFor returns the winning outcome of the given mark.
func OutcomeFor(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

// Message is the sentence shown to players once the game is over.
func (o Outcome) Message() string {
	switch o {
	case XWins:
		return "X wins the game!"
	case OWins:
		return "O wins the game!"
	case Tie:
		return "It's a tie!"
	default:
		return ""
	}
}
