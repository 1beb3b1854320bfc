package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List playable characters",
	Long:  `Shows the playable characters and their movement stats.`,
	Run:   runCharacters,
}

func runCharacters(cmd *cobra.Command, args []string) {
	chars := jumper.Characters()

	fmt.Println("Playable characters:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-8s  %-8s  %s\n", "ID", "Name", "Jump", "Gravity", "Speed")
	fmt.Printf("  %-8s  %-10s  %-8s  %-8s  %s\n", "--", "----", "----", "-------", "-----")

	for _, c := range chars {
		fmt.Printf("  %-8s  %-10s  %-8.1f  %-8.2f  %.1f\n",
			c.ID, c.Name, -c.JumpImpulse, c.Gravity, c.MoveSpeed)
	}

	fmt.Println()
	fmt.Println("Run 'jumper play --character <id>' to pick one.")
}
