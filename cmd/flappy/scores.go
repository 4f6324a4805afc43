package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best score and the top runs of the score store.

Only the sqlite and memory stores keep a run history; the gdata store keeps
just the best score.

Examples:
  flappy scores
  flappy scores -n 25
  flappy scores -i
  flappy scores --store gdata
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the best score and the run history")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

// clearer is implemented by backends that can wipe their scores.
type clearer interface {
	Clear() error
}

func runScores(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagStore) {
		fmt.Fprintf(os.Stderr, "Error: unknown store %q\n", flagStore)
		fmt.Fprintln(os.Stderr, "Run 'flappy stores' to see available stores.")
		os.Exit(1)
	}

	backend, err := registry.Open(flagStore, registry.Options{
		Path:    flagDBPath,
		AppName: appName,
		GameID:  flappy.GameID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	if flagClear {
		clearScores(backend)
		return
	}

	best, err := backend.GetBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		return
	}
	history := historyOf(backend)

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(flappy.New().Title(), best, history, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	printScores(best, history)
}

func clearScores(backend registry.Backend) {
	c, ok := backend.(clearer)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: store %q cannot be cleared\n", flagStore)
		return
	}
	if err := c.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		return
	}
	fmt.Printf("Scores cleared from the %s store.\n", flagStore)
}

func printScores(best int, history tui.History) {
	fmt.Printf("High Scores - %s\n", flappy.New().Title())
	fmt.Println()
	fmt.Printf("Best Score:%d\n", best)

	if history == nil {
		fmt.Println()
		fmt.Printf("The %s store keeps no run history.\n", flagStore)
		return
	}

	scores, err := history.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if src, ok := history.(tui.StatsSource); ok {
		stats, statsErr := src.Stats()
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
		} else {
			writeStats(os.Stdout, stats)
		}
	}

	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
}

// writeStats prints the run summary below the best score.
func writeStats(w io.Writer, stats *storage.GameStats) {
	fmt.Fprintf(w, "Runs: %d\n", stats.GamesCount)
	if stats.GamesCount == 0 {
		return
	}
	fmt.Fprintf(w, "Average: %.1f\n", stats.AvgScore)
	fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
