package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Flappy Bird.

Controls:
  Space/Up/W/Enter/Click  - Flap (restart once the bird has come to rest)
  P/Esc                   - Pause
  Tab                     - Scoreboard
  Ctrl+S                  - Save a screenshot
  Q/Ctrl+C                - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --store gdata
  flappy play --config ./my-flappy.yaml --log ~/.flappy/flappy.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	backend := openBackend(logger)

	game := flappy.New(
		flappy.WithConfig(gameCfg),
		flappy.WithStore(backend),
		flappy.WithLogger(logger),
	)

	runErr := tui.Run(game, historyOf(backend), cfg, logger)

	// Close store before potential exit
	if err := backend.Close(); err != nil {
		logger.Warn("failed to close score store", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
