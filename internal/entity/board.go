package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the mark that moves after this one.
func (that Cell) Opponent() Cell {
	if that == X {
		return O
	}
	return X
}

// ParseCell - converts user input into a player mark.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q is not a mark", apperror.ErrInvalidInput, s)
	}
}

// Board is a 3x3 grid stored row by row.
type Board [Size * Size]Cell

func Index(row, col int) int {
	return row*Size + col
}

func InRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (that *Board) At(row, col int) Cell {
	return that[Index(row, col)]
}

func (that *Board) Place(row, col int, mark Cell) error {
	if !InRange(row, col) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, col)
	}

	if that[Index(row, col)] != Empty {
		return apperror.ErrCellOccupied
	}

	that[Index(row, col)] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}
