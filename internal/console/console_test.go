package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadRowAndColumn(t *testing.T) {
	ctx := context.Background()

	t.Run("Converts 1-based input to 0-based", func(t *testing.T) {
		for input, expected := range map[string]int{"1\n": 0, "2\n": 1, " 3 \n": 2, "3": 2} {
			// Given: a valid answer
			out := &bytes.Buffer{}
			prompter := NewPrompter(strings.NewReader(input), out)

			// When: reading a row
			row, err := prompter.ReadRow(ctx)

			// Then: the 0-based value is returned after a single prompt
			require.NoError(t, err)
			assert.Equal(t, expected, row)
			assert.Equal(t, "Insert the row: ", out.String())
		}
	})

	t.Run("Re-prompts on non-numeric and out of range input", func(t *testing.T) {
		// Given: three bad answers followed by a good one
		out := &bytes.Buffer{}
		prompter := NewPrompter(strings.NewReader("a\n0\n4\n\n2\n"), out)

		// When: reading a column
		col, err := prompter.ReadColumn(ctx)

		// Then: each bad answer is met with the retry prompt
		require.NoError(t, err)
		assert.Equal(t, 1, col)
		assert.Equal(t, "Insert the column: "+strings.Repeat("Invalid input. Insert the column (1, 2, or 3): ", 4), out.String())
	})

	t.Run("Returns ErrInputClosed at end of input", func(t *testing.T) {
		prompter := NewPrompter(strings.NewReader("x\n"), &bytes.Buffer{})

		_, err := prompter.ReadRow(ctx)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		prompter := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})

		_, err := prompter.ReadRow(canceled)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPrompter_ReadSymbol(t *testing.T) {
	// Given: an invalid mark followed by a lowercase o
	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("z\no\n"), out)

	// When: reading the starting symbol
	mark, err := prompter.ReadSymbol(context.Background())

	// Then: O is returned after one retry
	require.NoError(t, err)
	assert.Equal(t, entity.O, mark)
	assert.Contains(t, out.String(), "Invalid input. Insert X or O: ")
}

func TestPrompter_ReadReplay(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "upper yes", input: "YES\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "blank means no", input: "\n", expected: false},
		{name: "retry then yes", input: "maybe\ny\n", expected: true},
		{name: "words starting with n are asked again", input: "nope\nno\n", expected: false},
		{name: "words starting with y are asked again", input: "yeah\nyes\n", expected: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prompter := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})

			replay, err := prompter.ReadReplay(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tc.expected, replay)
		})
	}
}

func TestRenderer_Board(t *testing.T) {
	t.Run("Plain grid", func(t *testing.T) {
		// Given: a renderer without colors
		out := &bytes.Buffer{}
		renderer := NewRenderer(out, false, false)
		board := entity.Board{entity.X, entity.Empty, entity.O}

		// When: drawing the board
		renderer.Board(&board)

		// Then: cells and separators are laid out row by row
		expected := " X |   | O \n" +
			"---+---+---\n" +
			"   |   |   \n" +
			"---+---+---\n" +
			"   |   |   \n\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Colored marks", func(t *testing.T) {
		out := &bytes.Buffer{}
		renderer := NewRenderer(out, true, false)
		board := entity.Board{entity.X, entity.O}

		renderer.Board(&board)

		assert.Contains(t, out.String(), ansiRed+"X"+ansiReset)
		assert.Contains(t, out.String(), ansiBlue+"O"+ansiReset)
		assert.Contains(t, out.String(), ansiWhite+rowSeparator+ansiReset)
	})
}

func TestRenderer_Messages(t *testing.T) {
	out := &bytes.Buffer{}
	renderer := NewRenderer(out, false, true)

	renderer.Clear()
	renderer.Turn(entity.X)
	renderer.Winner(entity.O)
	renderer.Draw()
	renderer.Occupied()
	renderer.Scoreboard(entity.Score{XWins: 2, Draws: 1})
	renderer.GameOver()

	expected := ansiClearScreen +
		"Current turn: X\n\n" +
		"The winner is... O!\n" +
		"This game ended in a draw.\n" +
		"That slot is already filled! Try again.\n" +
		"\nRounds: 3 | X wins: 2 | O wins: 0 | Draws: 1\n" +
		"\n☆  Game Over ☆\n"
	assert.Equal(t, expected, out.String())
}
