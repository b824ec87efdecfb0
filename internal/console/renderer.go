package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	ansiReset       = "\x1b[0m"
	ansiRed         = "\x1b[31m"
	ansiYellow      = "\x1b[33m"
	ansiBlue        = "\x1b[34m"
	ansiWhite       = "\x1b[37m"
	ansiClearScreen = "\x1b[H\x1b[2J"

	rowSeparator = "---+---+---"
	colSeparator = "|"
)

type Renderer struct {
	out         io.Writer
	color       bool
	clearScreen bool
}

func NewRenderer(out io.Writer, color, clearScreen bool) *Renderer {
	return &Renderer{
		out:         out,
		color:       color,
		clearScreen: clearScreen,
	}
}

func (that *Renderer) Clear() {
	if that.clearScreen {
		that.write(ansiClearScreen)
	}
}

func (that *Renderer) Turn(mark entity.Cell) {
	that.write(fmt.Sprintf("Current turn: %s\n\n", that.paint(ansiYellow, mark.String())))
}

// Board - draws the grid followed by a blank line.
func (that *Renderer) Board(board *entity.Board) {
	var sb strings.Builder

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			sb.WriteString(" " + that.cell(board.At(row, col)) + " ")

			if col < entity.Size-1 {
				sb.WriteString(that.paint(ansiWhite, colSeparator))
			}
		}
		sb.WriteString("\n")

		if row < entity.Size-1 {
			sb.WriteString(that.paint(ansiWhite, rowSeparator) + "\n")
		}
	}
	sb.WriteString("\n")

	that.write(sb.String())
}

func (that *Renderer) Winner(mark entity.Cell) {
	that.write(fmt.Sprintf("The winner is... %s!\n", mark))
}

func (that *Renderer) Draw() {
	that.write("This game ended in a draw.\n")
}

func (that *Renderer) Occupied() {
	that.write("That slot is already filled! Try again.\n")
}

func (that *Renderer) Scoreboard(score entity.Score) {
	that.write(fmt.Sprintf("\nRounds: %d | X wins: %d | O wins: %d | Draws: %d\n",
		score.Rounds(), score.XWins, score.OWins, score.Draws))
}

func (that *Renderer) GameOver() {
	that.write("\n☆  Game Over ☆\n")
}

func (that *Renderer) cell(mark entity.Cell) string {
	switch mark {
	case entity.X:
		return that.paint(ansiRed, mark.String())
	case entity.O:
		return that.paint(ansiBlue, mark.String())
	default:
		return mark.String()
	}
}

func (that *Renderer) paint(color, s string) string {
	if !that.color {
		return s
	}

	return color + s + ansiReset
}

func (that *Renderer) write(s string) {
	_, _ = io.WriteString(that.out, s)
}
