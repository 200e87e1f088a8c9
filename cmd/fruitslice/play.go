package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slice/internal/audio"
	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/games/fruitslice"
	"github.com/vovakirdan/fruit-slice/internal/platform/tui"
	"github.com/vovakirdan/fruit-slice/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagChallenge  bool
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Fruit Slice.

Controls:
  Left mouse drag    - Slice
  Right mouse hold   - Open hand; hold for half a second to quit
  P/Space            - Pause
  R                  - Restart (after game over)
  M                  - Mute/unmute
  B/Esc              - Back (when paused or over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Challenge mode tosses more fruit and more bombs; the choice is remembered
for the profile until changed.

Examples:
  fruitslice play
  fruitslice play --challenge
  fruitslice play --difficulty easy --mute
  fruitslice play --config ./my-fruitslice.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
		c.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	}
	playCmd.Flags().BoolVar(&flagChallenge, "challenge", false, "Play challenge mode")
}

// newAudio opens the speaker. Failure only disables sound.
func newAudio(env *localEnv) *audio.Player {
	player := audio.NewPlayer(audio.WithVolume(flagVolume), audio.WithMuted(flagMute))
	if err := player.Init(); err != nil {
		env.logger.Warn("audio disabled", "error", err)
	}
	return player
}

func applyTuningFlags() {
	fruitslice.SetConfigPath(flagConfig)
	fruitslice.SetDifficultyPreset(flagDifficulty)
}

func runPlay(cmd *cobra.Command, _ []string) {
	env := mustEnv()
	applyTuningFlags()

	if cmd.Flags().Changed("challenge") {
		env.prog.SetChallengeMode(flagChallenge)
	}
	gameID := fruitslice.ModeClassic
	if env.prog.ChallengeMode() {
		gameID = fruitslice.ModeChallenge
	}

	game, err := registry.Create(gameID)
	if err != nil {
		env.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	player := newAudio(env)
	session := tui.Session{Scores: env.scores, Progress: env.prog, Audio: player, Profile: flagProfile}

	env.logger.Info("round starting", "mode", gameID, "seed", flagSeed)
	_, runErr := tui.Run(game, session, runtimeConfig())
	env.logger.Info("round finished", "mode", gameID, "score", game.State().Score)

	player.Close()
	env.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start Fruit Slice in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play.
After a round ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the highlighted mode
  S            - Trail shop
  Tab          - High scores
  Q            - Quit

Examples:
  fruitslice menu
  fruitslice menu --profile ann`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	env := mustEnv()
	defer env.Close()
	applyTuningFlags()

	player := newAudio(env)
	defer player.Close()

	cfg := runtimeConfig()
	session := tui.Session{Scores: env.scores, Progress: env.prog, Audio: player, Profile: flagProfile}

	for {
		menuResult, err := tui.RunMenu(env.scores, env.prog, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(env.scores, env.prog, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case menuResult.WantsShop:
			goBack, shopErr := tui.RunShop(env.prog, player, cfg.ScreenW, cfg.ScreenH)
			if shopErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", shopErr)
			}
			if !goBack {
				return
			}

		default:
			if !playOnce(env, session, menuResult.GameID, cfg) {
				return
			}
		}
	}
}

// playOnce runs one round and reports whether to return to the menu.
func playOnce(env *localEnv, session tui.Session, gameID string, cfg core.RuntimeConfig) bool {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return true
	}
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	env.logger.Info("round starting", "mode", gameID)
	back, err := tui.Run(game, session, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return false
	}
	env.logger.Info("round finished", "mode", gameID, "score", game.State().Score)
	return back
}
