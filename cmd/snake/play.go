package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Pause/resume
  Enter        - Start, resume, or play again after game over
  R            - Reset
  ?            - Show all keys
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Presets:
  easy   - 24x24 board, 300ms per tick
  normal - 20x20 board, 200ms per tick
  hard   - 16x16 board, 120ms per tick

Without --preset a menu asks for one.

Examples:
  snake play
  snake play --preset easy
  snake play --seed 42 --log-file snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	// Validate the file and flags before taking over the terminal.
	src, err := loadSource()
	if err != nil {
		return err
	}
	if _, err := src.Resolve(preset); err != nil {
		return err
	}

	rt := runtimeConfig()

	if preset == "" {
		chosen, selErr := tui.RunPresetSelector(src, rt)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if chosen == nil {
			return nil
		}
		preset = *chosen
	}

	cfg, err := src.Resolve(preset)
	if err != nil {
		return err
	}

	if !render.Fits(cfg.BoardSize, rt.ScreenW, rt.ScreenH) {
		w, h := render.RequiredSize(cfg.BoardSize)
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, a %dx%d board needs at least %dx%d\n",
			rt.ScreenW, rt.ScreenH, cfg.BoardSize, cfg.BoardSize, w, h)
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:  flagLogFile,
		Level: flagLogLevel,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting game",
		"preset", preset,
		"board_size", cfg.BoardSize,
		"tick", cfg.TickInterval,
		"max_score", cfg.MaxScore,
		"seed", rt.Seed,
	)

	return tui.Run(cfg, rt, logger)
}
