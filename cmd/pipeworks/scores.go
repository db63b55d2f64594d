package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipeworks/internal/platform/tui"
	"github.com/vovakirdan/tui-pipeworks/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the high-score table and flow statistics.

Opens an interactive scoreboard; use --plain for a non-interactive
printout suitable for pipes and scripts.

Examples:
  pipeworks scores
  pipeworks scores --plain
  pipeworks scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores without the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlainScores || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store)
		return
	}

	// Interactive scoreboard
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top 10 scores and flow statistics to stdout.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Pipeworks")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pipeworks play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Stage, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(); err == nil && highScore > 0 {
		fmt.Printf("Best: %d\n", highScore)
	}

	// Show flow statistics
	if stats, err := store.GetFlowStats(); err == nil && stats.Attempts > 0 {
		fmt.Printf("Flows: %d | Targets reached: %d | Best path: %d | Avg path: %.1f\n",
			stats.Attempts, stats.Achieved, stats.BestTraversed, stats.AvgTraversed)
	}
}
