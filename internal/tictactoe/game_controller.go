package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places the mark of the player to move and updates the game result.
func MakeTurn(gameInstance *entity.Game, row, col int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := gameInstance.Board.Place(row, col, gameInstance.Turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Moves++
	updateGameStatus(gameInstance, row, col)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, row, col int) {
	gameInstance.Result = CheckResult(&gameInstance.Board, row, col)

	if !gameInstance.Result.IsFinished() {
		gameInstance.Turn = gameInstance.Turn.Opponent()
	}
}

// CheckResult - evaluates the board after a move at (row, col).
// Only lines through the moved cell can have changed.
func CheckResult(board *entity.Board, row, col int) entity.Result {
	if winner, ok := IsRowUniform(board, row); ok {
		return entity.Won(winner)
	}

	if winner, ok := IsColumnUniform(board, col); ok {
		return entity.Won(winner)
	}

	if winner, ok := IsDiagonalUniform(board); ok {
		return entity.Won(winner)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

func IsRowUniform(board *entity.Board, row int) (entity.Cell, bool) {
	first := board.At(row, 0)
	if first == entity.Empty {
		return entity.Empty, false
	}

	for col := 1; col < entity.Size; col++ {
		if board.At(row, col) != first {
			return entity.Empty, false
		}
	}

	return first, true
}

func IsColumnUniform(board *entity.Board, col int) (entity.Cell, bool) {
	first := board.At(0, col)
	if first == entity.Empty {
		return entity.Empty, false
	}

	for row := 1; row < entity.Size; row++ {
		if board.At(row, col) != first {
			return entity.Empty, false
		}
	}

	return first, true
}

// IsDiagonalUniform - checks the main diagonal first, then the anti-diagonal.
func IsDiagonalUniform(board *entity.Board) (entity.Cell, bool) {
	last := entity.Size - 1

	mainFirst := board.At(0, 0)
	antiFirst := board.At(0, last)

	mainUniform := mainFirst != entity.Empty
	antiUniform := antiFirst != entity.Empty

	for i := 1; i < entity.Size; i++ {
		if board.At(i, i) != mainFirst {
			mainUniform = false
		}
		if board.At(i, last-i) != antiFirst {
			antiUniform = false
		}
	}

	switch {
	case mainUniform:
		return mainFirst, true
	case antiUniform:
		return antiFirst, true
	default:
		return entity.Empty, false
	}
}
