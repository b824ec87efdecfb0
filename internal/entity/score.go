package entity

// Score - finished rounds of the current session.
type Score struct {
	XWins int
	OWins int
	Draws int
}

func (that *Score) Add(result Result) {
	switch {
	case result.Status == StatusDraw:
		that.Draws++
	case result.Status == StatusWon && result.Winner == X:
		that.XWins++
	case result.Status == StatusWon && result.Winner == O:
		that.OWins++
	}
}

func (that Score) Rounds() int {
	return that.XWins + that.OWins + that.Draws
}
