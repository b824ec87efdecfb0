package entity

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result - outcome of a game. Winner is set only for StatusWon.
type Result struct {
	Status Status
	Winner Cell
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func Won(winner Cell) Result {
	return Result{Status: StatusWon, Winner: winner}
}

func Draw() Result {
	return Result{Status: StatusDraw}
}

func (that Result) IsFinished() bool {
	return that.Status != StatusInProgress
}

type Game struct {
	ID     string
	Board  Board
	Turn   Cell
	Result Result
	Moves  int
}

func NewGame(id string, first Cell) *Game {
	return &Game{
		ID:     id,
		Turn:   first,
		Result: InProgress(),
	}
}

// Reset - clears the board for a replay under a new id.
func (that *Game) Reset(id string, first Cell) {
	that.ID = id
	that.Board.Reset()
	that.Turn = first
	that.Result = InProgress()
	that.Moves = 0
}

func (that *Game) IsFinished() bool {
	return that.Result.IsFinished()
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
