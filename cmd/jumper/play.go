package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCharacter  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Sky Hopper.

Controls:
  A/Left, D/Right - Steer
  P               - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Platform shrinking and movers arrive later
  normal - Default pacing
  hard   - Platform shrinking and movers arrive sooner
  fixed  - No progression at all

Examples:
  jumper play
  jumper play --character tank
  jumper play --difficulty hard --seed 42
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Character to play (see 'jumper characters')")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Resolve the character up front so typos fail before the UI starts.
	char, known := jumper.CharacterByID(flagCharacter)
	if flagCharacter != "" && !known {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", flagCharacter)
		fmt.Fprintln(os.Stderr, "Run 'jumper characters' to see the available ones.")
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

	// Options are applied at creation, so set them before the registry call.
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)
	jumper.SetCharacter(char.ID)

	game, err := registry.Create("jumper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, char.ID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
