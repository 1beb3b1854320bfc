package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Tier is a score bracket defining a color and a scroll-reward multiplier.
type Tier struct {
	Threshold  int
	Multiplier int
	Name       string
	Color      core.Color
}

// tierTable is ordered by ascending threshold. Lookup scans from the highest
// threshold downward and returns the first bracket at or below the score.
var tierTable = []Tier{
	{Threshold: 0, Multiplier: 1, Name: "Bronze", Color: core.ColorYellow},
	{Threshold: 1000, Multiplier: 1, Name: "Silver", Color: core.ColorWhite},
	{Threshold: 2500, Multiplier: 2, Name: "Gold", Color: core.ColorBrightYellow},
	{Threshold: 5000, Multiplier: 3, Name: "Sky", Color: core.ColorBrightCyan},
	{Threshold: 8000, Multiplier: 4, Name: "Star", Color: core.ColorBrightMagenta},
}

// TierFor returns the tier bracket matching the given score.
func TierFor(score int) Tier {
	for i := len(tierTable) - 1; i > 0; i-- {
		if score >= tierTable[i].Threshold {
			return tierTable[i]
		}
	}
	return tierTable[0]
}

// TierCount returns the number of tiers (used for random color picks).
func TierCount() int {
	return len(tierTable)
}

// TierAt returns the tier at the given index, clamped into range.
func TierAt(i int) Tier {
	if i < 0 {
		i = 0
	}
	if i >= len(tierTable) {
		i = len(tierTable) - 1
	}
	return tierTable[i]
}
