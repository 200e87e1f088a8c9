// fruitslice is a fruit slicing arcade game for the terminal.
//
// Usage:
//
//	fruitslice play            - Play a round (drag the mouse to slice)
//	fruitslice menu            - Mode picker with shop and scoreboard
//	fruitslice list            - List game modes
//	fruitslice scores <mode>   - Show high scores for a mode
//	fruitslice progress        - Show coins, trails, streaks and best runs
//	fruitslice shop            - Browse and equip blade trails
//	fruitslice buy <item>      - Buy a trail
//	fruitslice select <item>   - Equip an owned trail
//	fruitslice serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/fruitslice.db)
//	--profile <name>   - Progression profile (default: local)
//	--backend <name>   - Progression backend: sqlite or gdata
//	--log <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/fruit-slice/internal/games/fruitslice"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
	flagBackend string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitslice",
	Short: "Fruit Slice - slice fruit in your terminal",
	Long: `Fruit Slice is an arcade reflex game for the terminal. Fruit, coins and
bombs are tossed into the air; drag the mouse across them to slice.
Chain slices for combo multipliers, collect coins for blade trails.

Available commands:
  play      - Play a round
  menu      - Interactive mode picker
  list      - Show game modes
  scores    - View high scores
  progress  - Show your coins, trails and achievements
  shop      - Browse blade trails
  buy       - Buy a blade trail
  select    - Equip a blade trail
  serve     - Start SSH server for remote play

Examples:
  fruitslice play
  fruitslice play --challenge
  fruitslice menu --profile ann
  fruitslice buy trail_neon
  fruitslice serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/fruitslice.db", "Path to scores and progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Progression profile name")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendSQLite, "Progression backend: sqlite, gdata")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(selectCmd)
}
