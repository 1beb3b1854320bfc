package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Character holds the per-variant base stats chosen at round start.
// Stats are immutable during a round; every physics step reads them directly.
type Character struct {
	ID          string
	Name        string
	JumpImpulse float64 // vy applied on landing (negative = up)
	Gravity     float64 // vy added per fixed step while airborne
	MoveSpeed   float64 // vx added per fixed step while a direction is held
	Glyph       rune
	Color       core.Color
}

// characterTable is the static variant table. The first entry is the default.
var characterTable = []Character{
	{
		ID:          "scout",
		Name:        "Scout",
		JumpImpulse: -15,
		Gravity:     0.5,
		MoveSpeed:   1.0,
		Glyph:       '@',
		Color:       core.ColorBrightGreen,
	},
	{
		ID:          "tank",
		Name:        "Tank",
		JumpImpulse: -17,
		Gravity:     0.65,
		MoveSpeed:   0.8,
		Glyph:       '#',
		Color:       core.ColorBrightRed,
	},
	{
		ID:          "wisp",
		Name:        "Wisp",
		JumpImpulse: -14,
		Gravity:     0.4,
		MoveSpeed:   1.3,
		Glyph:       '*',
		Color:       core.ColorBrightCyan,
	},
}

// Characters returns a copy of the character table.
func Characters() []Character {
	out := make([]Character, len(characterTable))
	copy(out, characterTable)
	return out
}

// CharacterByID looks up a character variant. Returns the default character
// and false if the ID is unknown or empty.
func CharacterByID(id string) (Character, bool) {
	for _, c := range characterTable {
		if c.ID == id {
			return c, true
		}
	}
	return characterTable[0], false
}
