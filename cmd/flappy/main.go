// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play the game
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the best runs
//	flappy config            - Print the effective configuration
//	flappy stores            - List score storage backends
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.flappy/scores.db)
//	--store <name>   - Score backend: sqlite, gdata, memory (default: sqlite)
//	--config <path>  - Path to a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "flappy"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap through the walls in your terminal",
	Long: `Flappy is a terminal take on Flappy Bird. Tap to flap, pass through
the slits between the walls and don't touch anything.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration
  stores   - List score storage backends

Examples:
  flappy play
  flappy play --seed 42 --store memory
  flappy serve --ssh :2222
  flappy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Score storage backend (see 'flappy stores')")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(storesCmd)
}
