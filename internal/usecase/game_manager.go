package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type prompter interface {
	ReadRow(ctx context.Context) (int, error)
	ReadColumn(ctx context.Context) (int, error)
	ReadSymbol(ctx context.Context) (entity.Cell, error)
	ReadReplay(ctx context.Context) (bool, error)
}

type renderer interface {
	Clear()
	Turn(mark entity.Cell)
	Board(board *entity.Board)
	Winner(mark entity.Cell)
	Draw()
	Occupied()
	Scoreboard(score entity.Score)
	GameOver()
}

type scoreRepo interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (entity.Score, error)
}

type GameManager struct {
	logger *slog.Logger

	prompter  prompter
	renderer  renderer
	scoreRepo scoreRepo

	// firstPlayer is asked before every round when Empty.
	firstPlayer entity.Cell
}

func NewGameManager(logger *slog.Logger, prompter prompter, renderer renderer, scoreRepo scoreRepo, firstPlayer entity.Cell) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		prompter:    prompter,
		renderer:    renderer,
		scoreRepo:   scoreRepo,
		firstPlayer: firstPlayer,
	}
}

// Play - runs rounds until the players decline a replay.
func (that *GameManager) Play(ctx context.Context) error {
	game := &entity.Game{}

	for {
		first, err := that.firstMark(ctx)
		if err != nil {
			return fmt.Errorf("failed to choose first player: %w", err)
		}

		game.Reset(uuid.NewString(), first)

		if err = that.PlayRound(ctx, game); err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		if err = that.scoreRepo.Record(ctx, game.Result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		replay, err := that.prompter.ReadReplay(ctx)
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}

		if !replay {
			return that.finish(ctx)
		}
	}
}

// PlayRound - turn loop for a single game, returns once the game is won or drawn.
func (that *GameManager) PlayRound(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "PlayRound", "game_id", game.ID)
	log.Info("round started", "first", game.Turn.String())

	for !game.IsFinished() {
		that.renderer.Clear()
		that.renderer.Turn(game.Turn)
		that.renderer.Board(&game.Board)

		if err := that.makeTurn(ctx, log, game); err != nil {
			return err
		}
	}

	that.renderer.Clear()
	that.renderer.Board(&game.Board)

	switch game.Result.Status {
	case entity.StatusWon:
		that.renderer.Winner(game.Result.Winner)
	case entity.StatusDraw:
		that.renderer.Draw()
	}

	attrs := []any{"status", game.Result.Status.String(), "moves", game.Moves}
	if game.Result.Status == entity.StatusWon {
		attrs = append(attrs, "winner", game.Result.Winner.String())
	}
	log.Info("round finished", attrs...)

	return nil
}

// makeTurn - reads coordinates until they point at a free cell.
func (that *GameManager) makeTurn(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	for {
		row, err := that.prompter.ReadRow(ctx)
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		col, err := that.prompter.ReadColumn(ctx)
		if err != nil {
			return fmt.Errorf("failed to read column: %w", err)
		}

		mark := game.Turn

		err = tictactoe.MakeTurn(game, row, col)
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("cell occupied", "row", row, "col", col)
			that.renderer.Occupied()

			continue
		}

		if err != nil {
			return fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("turn made", "mark", mark.String(), "row", row, "col", col)

		return nil
	}
}

func (that *GameManager) firstMark(ctx context.Context) (entity.Cell, error) {
	if that.firstPlayer != entity.Empty {
		return that.firstPlayer, nil
	}

	mark, err := that.prompter.ReadSymbol(ctx)
	if err != nil {
		return entity.Empty, fmt.Errorf("failed to read symbol: %w", err)
	}

	return mark, nil
}

func (that *GameManager) finish(ctx context.Context) error {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get score: %w", err)
	}

	that.renderer.Scoreboard(score)
	that.renderer.GameOver()

	that.logger.Info("session finished", "rounds", score.Rounds())

	return nil
}
