package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slice/internal/platform/tui"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the profile's progression",
	Long: `Show coins, owned trails, streaks, achievements, today's slice count and
the profile's best runs.

Examples:
  fruitslice progress
  fruitslice progress --profile ann --backend gdata`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func runProgress(_ *cobra.Command, _ []string) {
	env := mustEnv()
	defer env.Close()

	rec := env.prog.Record()
	fmt.Printf("Profile: %s (%s)\n", flagProfile, flagBackend)
	fmt.Println()
	fmt.Printf("  Coins:        %d\n", rec.Coins)
	fmt.Printf("  Trail:        %s\n", progress.TrailStyle(rec.Selected))
	owned := append([]string{progress.DefaultCosmetic}, rec.Purchased...)
	fmt.Printf("  Owned:        %s\n", strings.Join(owned, ", "))
	mode := "classic"
	if rec.ChallengeMode {
		mode = "challenge"
	}
	fmt.Printf("  Mode:         %s\n", mode)
	fmt.Printf("  Best streak:  %d\n", rec.BestStreak)
	if rec.Daily.Date != "" {
		fmt.Printf("  Today:        %d slices on %s\n", rec.Daily.Slices, rec.Daily.Date)
	}

	fmt.Println()
	fmt.Println("Achievements:")
	for _, a := range progress.Achievements {
		mark := "[ ]"
		if rec.HasAchievement(a.ID) {
			mark = "[x]"
		}
		fmt.Printf("  %s %-14s %3d in a row  +%d coins\n", mark, a.Name, a.Streak, a.Coins)
	}

	fmt.Println()
	if len(rec.Leaderboard) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	fmt.Println("Best runs:")
	for i, e := range rec.Leaderboard {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.At.Local().Format("2006-01-02 15:04"))
	}
}

var flagShopList bool

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and equip blade trails",
	Long: `Open the trail shop. Use --list to print the catalog instead.

Examples:
  fruitslice shop
  fruitslice shop --list`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

func init() {
	shopCmd.Flags().BoolVar(&flagShopList, "list", false, "Print the catalog and exit")
}

func runShop(_ *cobra.Command, _ []string) {
	env := mustEnv()
	defer env.Close()

	if !flagShopList {
		cfg := runtimeConfig()
		if _, err := tui.RunShop(env.prog, nil, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	rec := env.prog.Record()
	fmt.Printf("Coins: %d\n", rec.Coins)
	t := newTextTable("ID", "Name", "Price", "Status")
	for _, it := range progress.Catalog {
		status := "locked"
		switch {
		case rec.Selected == it.ID:
			status = "equipped"
		case rec.Owns(it.ID):
			status = "owned"
		}
		t.Row(it.ID, it.Name, strconv.Itoa(it.Price), status)
	}
	fmt.Println(t)
}

var buyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy a blade trail",
	Long: `Spend coins on a trail from the catalog.

Examples:
  fruitslice buy trail_neon`,
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func runBuy(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	id := args[0]
	if err := env.prog.PurchaseItem(id); err != nil {
		switch {
		case errors.Is(err, progress.ErrInsufficientCoins):
			return fmt.Errorf("not enough coins: %w", err)
		case errors.Is(err, progress.ErrAlreadyOwned):
			fmt.Printf("You already own %s.\n", id)
			return nil
		}
		return err
	}
	item, _ := progress.Lookup(id)
	fmt.Printf("Bought %s for %d coins. %d coins left.\n", item.Name, item.Price, env.prog.Coins())
	fmt.Printf("Run 'fruitslice select %s' to equip it.\n", id)
	return nil
}

var selectCmd = &cobra.Command{
	Use:   "select <item>",
	Short: "Equip an owned blade trail",
	Long: `Make an owned trail the active one. Use "default" for the classic blade.

Examples:
  fruitslice select trail_rainbow
  fruitslice select default`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.prog.SelectCosmetic(args[0]); err != nil {
		if errors.Is(err, progress.ErrNotPurchased) {
			return fmt.Errorf("buy it first with 'fruitslice buy %s': %w", args[0], err)
		}
		return err
	}
	fmt.Printf("Equipped %s.\n", progress.TrailStyle(args[0]))
	return nil
}
