// snake is a single-player grid snake game for the terminal.
//
// Usage:
//
//	snake                - Play (same as "snake play")
//	snake play           - Play a game in this terminal
//	snake serve          - Start SSH server for remote play
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--preset <name>      - easy, normal or hard (skips the preset menu)
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagConfig    string
	flagPreset    string
	flagSeed      int64
	flagLogFile   string
	flagLogLevel  string
	flagBoardSize int
	flagTick      time.Duration
	flagMaxScore  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a single-player grid game. Steer the snake to the food,
grow by one segment per meal and avoid the walls and your own body.
Reach the target score to win.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake --preset hard
  snake play --board-size 30 --tick 150ms
  snake serve --ssh :2222
  snake config --default`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: easy, normal, hard (empty = choose in menu)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagBoardSize, "board-size", 0, "Board side length in cells (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval, e.g. 150ms (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxScore, "max-score", 0, "Winning score (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSource loads the config file and collects the flag overrides.
func loadSource() (config.Source, error) {
	base, err := config.Load(flagConfig)
	if err != nil {
		return config.Source{}, err
	}
	return config.Source{
		Base: base,
		Overrides: config.Overrides{
			BoardSize:    flagBoardSize,
			TickInterval: flagTick,
			MaxScore:     flagMaxScore,
		},
	}, nil
}

// loadGameConfig loads the config file and applies the preset and flag overrides.
// Overrides win over the preset so "--preset hard --board-size 30" works.
func loadGameConfig(preset config.Preset) (config.GameConfig, error) {
	src, err := loadSource()
	if err != nil {
		return config.GameConfig{}, err
	}
	return src.Resolve(preset)
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}
