package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slice/internal/games/fruitslice"
	"github.com/vovakirdan/fruit-slice/internal/registry"
	"github.com/vovakirdan/fruit-slice/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a game mode",
	Long: `Display the top high scores across all profiles for a game mode.
The mode defaults to the classic game.

Examples:
  fruitslice scores
  fruitslice scores fruitslice_challenge --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := fruitslice.ModeClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fruitslice list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println("Play 'fruitslice play' to set the first high score!")
		return
	}

	t := newTextTable("Rank", "Score", "Player", "Date")
	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.Profile, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Rounds: %d  |  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
