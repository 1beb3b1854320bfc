// jumper is Sky Hopper, an endless vertical platform jumper for the terminal.
//
// Usage:
//
//	jumper play              - Play a round
//	jumper characters        - List playable characters
//	jumper scores            - Show the best recorded runs
//	jumper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set render tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible platform generation
//	--db <path>     - Set database path (default: ~/.jumper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Sky Hopper - an endless platform jumper in your terminal",
	Long: `Sky Hopper is a terminal game: bounce from platform to platform,
climb as high as you can, and grab power-ups on the way up.

Available commands:
  play        - Start a round
  characters  - Show the playable characters and their stats
  scores      - View the best recorded runs
  serve       - Start SSH server for remote play

Examples:
  jumper play
  jumper play --character wisp --difficulty hard
  jumper scores --tui
  jumper serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
