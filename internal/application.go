package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the game session on the given console streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	firstPlayer := entity.Empty
	if conf.FirstPlayer != "" {
		mark, err := entity.ParseCell(conf.FirstPlayer)
		if err != nil {
			return fmt.Errorf("invalid first player: %w", err)
		}
		firstPlayer = mark
	}

	scoreRepo := repository.NewScoreRepository()
	prompter := console.NewPrompter(in, out)
	renderer := console.NewRenderer(out, conf.Color, conf.ClearScreen)
	gameManager := usecase.NewGameManager(logger, prompter, renderer, scoreRepo, firstPlayer)

	log.Debug("starting session", "first_player", firstPlayer.String())

	// a blocked console read cannot observe ctx, so the session runs aside
	errCh := make(chan error, 1)
	go func() {
		errCh <- gameManager.Play(ctx)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("input closed, shutting down")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("received signal, shutting down")
		return nil
	default:
		return fmt.Errorf("game session failed: %w", err)
	}
}
