package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rowLabel    = "row"
	columnLabel = "column"
)

// Prompter reads player answers line by line and re-prompts until the answer is valid.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadRow - asks for a 1-based row and returns it 0-based.
func (that *Prompter) ReadRow(ctx context.Context) (int, error) {
	return that.readCoordinate(ctx, rowLabel)
}

// ReadColumn - asks for a 1-based column and returns it 0-based.
func (that *Prompter) ReadColumn(ctx context.Context) (int, error) {
	return that.readCoordinate(ctx, columnLabel)
}

func (that *Prompter) readCoordinate(ctx context.Context, label string) (int, error) {
	retry := fmt.Sprintf("Invalid input. Insert the %s (1, 2, or 3): ", label)

	return ask(ctx, that, fmt.Sprintf("Insert the %s: ", label), retry, parseCoordinate)
}

// ReadSymbol - asks which mark moves first.
func (that *Prompter) ReadSymbol(ctx context.Context) (entity.Cell, error) {
	return ask(ctx, that, "Which symbol would you like to use first? (X or O) ", "Invalid input. Insert X or O: ", entity.ParseCell)
}

// ReadReplay - asks whether to play again. A blank answer means no.
// Only y, yes, n and no are accepted; anything else, "yeah" or "nope"
// included, is asked again.
func (that *Prompter) ReadReplay(ctx context.Context) (bool, error) {
	return ask(ctx, that, "Would you like to play again? [y/N] ", "Invalid input. Please, insert only 'y' or 'n': ", parseReplay)
}

func ask[T any](ctx context.Context, p *Prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	var zero T

	p.print(prompt)

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		line, err := p.readLine()
		if err != nil {
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, apperror.ErrInvalidInput) {
			return zero, err
		}

		p.print(retry)
	}
}

func (that *Prompter) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (that *Prompter) print(s string) {
	_, _ = io.WriteString(that.out, s)
}

func parseCoordinate(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > entity.Size {
		return 0, fmt.Errorf("%w: %q is not between 1 and %d", apperror.ErrInvalidInput, s, entity.Size)
	}

	return n - 1, nil
}

func parseReplay(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	case "", "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not y or n", apperror.ErrInvalidInput, s)
	}
}
