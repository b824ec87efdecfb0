// Package cli defines the cobra command that starts a console game session.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type options struct {
	configPath string
	first      string
	noColor    bool
	logLevel   string
}

// NewRootCommand creates the tictactoe command with its flags.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: `tictactoe runs a two-player game on a 3x3 board.
Players take turns entering a row and a column (1-3). After a win or a draw
you can start another round; the session score is shown on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger := initLogger(conf, cmd.ErrOrStderr())

			return application.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yml", "path to the config file")
	rootCmd.Flags().StringVar(&opts.first, "first", "", "mark that moves first (X or O); asked every round when empty")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	return rootCmd
}

// Execute runs the root command and exits with 1 on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig - reads the config file and applies flags given on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("first") {
		if _, err = entity.ParseCell(opts.first); err != nil {
			return nil, fmt.Errorf("invalid --first: %w", err)
		}
		conf.FirstPlayer = opts.first
	}

	if opts.noColor {
		conf.Color = false
	}

	if opts.logLevel != "" {
		conf.LogLevel = opts.logLevel
	}

	return conf, nil
}

// initLogger - JSON logs go to stderr so they never mix with the board.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
