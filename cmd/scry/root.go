package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-deck/internal/config"
	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/domain/srs"
	"github.com/phrazzld/scry-deck/internal/platform/jsonfile"
	"github.com/phrazzld/scry-deck/internal/platform/logger"
	"github.com/spf13/cobra"
)

const rootLongDesc string = `Scry schedules flashcards with the SM-2 spaced repetition algorithm.

Cards live in a JSON deck file. Typical use:
  scry import --input notes/ --deck deck.json   Extract cards from markdown notes
  scry review deck.json                         Review the cards due today
  scry stats --deck deck.json                   Summarize the deck's schedule`

const rootShortDesc string = "Scry - spaced repetition flashcards"

// app carries the state shared by every subcommand once configuration is loaded.
type app struct {
	configFile string
	logLevel   string
	logFormat  string
	deckPath   string

	now    func() time.Time
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	cmd := &cobra.Command{
		Use:           "scry",
		Short:         rootShortDesc,
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a config file (default: scry.yaml in . or $HOME/.config/scry)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: json or text")
	cmd.PersistentFlags().StringVar(&a.deckPath, "deck", "", "Path to the deck file")

	// Add subcommands
	cmd.AddCommand(newReviewCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initialize loads configuration, applies flag overrides and sets up logging.
// Flags take precedence over environment variables, which take precedence
// over the config file.
func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("deck") {
		cfg.Deck.Path = a.deckPath
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.Setup(cfg.Log, cmd.ErrOrStderr())

	a.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"deck", cfg.Deck.Path,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format)

	return nil
}

// deckStore opens the deck at path, or at the configured default when path is empty.
func (a *app) deckStore(path string) *jsonfile.DeckStore {
	if path == "" {
		path = a.cfg.Deck.Path
	}
	return jsonfile.NewDeckStore(path, a.logger)
}

// srsService builds the scheduler from the configured SM-2 parameters.
func (a *app) srsService() (srs.Service, error) {
	params, err := srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:     a.cfg.SRS.MinEaseFactor,
		InitialEaseFactor: a.cfg.SRS.InitialEaseFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid scheduling parameters: %w", err)
	}

	return srs.NewServiceWithParams(params)
}

// noArgs rejects positional arguments with domain.ErrInvalidInput.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", domain.ErrInvalidInput, cmd.Name(), args)
	}
	return nil
}
