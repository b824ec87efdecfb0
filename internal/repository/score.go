package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrRoundNotFinished = errors.New("round is not finished")

type ScoreRepository interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (entity.Score, error)
}

// memScore keeps the tally for the lifetime of the process only.
type memScore struct {
	mu    sync.Mutex
	score entity.Score
}

func NewScoreRepository() ScoreRepository {
	return &memScore{}
}

func (that *memScore) Record(ctx context.Context, result entity.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !result.IsFinished() {
		return ErrRoundNotFinished
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.score.Add(result)

	return nil
}

func (that *memScore) Get(ctx context.Context) (entity.Score, error) {
	if err := ctx.Err(); err != nil {
		return entity.Score{}, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.score, nil
}
