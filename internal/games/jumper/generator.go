package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// scrollAndGenerate runs once per fixed step, after collision resolution.
// When the player has risen above the vertical midline the world scrolls
// down instead of a camera moving up: the player snaps back to the midline
// and every entity shifts by the overshoot. Score is awarded for the shifted
// height, expired platforms are dropped, and at most one new platform is
// synthesized at the top.
func (g *Game) scrollAndGenerate() {
	mid := g.conf.World.Height / 2
	p := &g.player
	if p.Y >= mid {
		return
	}

	diff := mid - p.Y
	p.Y = mid

	for i := range g.platforms {
		g.platforms[i].Y += diff
	}
	for i := range g.particles {
		g.particles[i].Y += diff
	}
	for i := range g.ripples {
		g.ripples[i].Y += diff
	}

	// Score gain uses the tier matching the score before this gain.
	tier := TierFor(g.score)
	mult := 1
	if g.powers.Active(PowerScoreX2) {
		mult = 2
	}
	gain := int(math.Floor(diff * float64(mult) * float64(tier.Multiplier)))
	if gain > 0 {
		g.score += gain
		g.emit(core.Event{Type: core.EventScore, Value: g.score})
		g.sink.ScoreChanged(g.score)
	}

	// Drop platforms that scrolled below the visible world.
	kept := g.platforms[:0]
	for _, pl := range g.platforms {
		if pl.Y <= g.conf.World.Height {
			kept = append(kept, pl)
		}
	}
	g.platforms = kept

	// The reference platform is the most recently appended survivor; when it
	// clears the near-top threshold there is room for exactly one more.
	if len(g.platforms) > 0 {
		ref := g.platforms[len(g.platforms)-1]
		if ref.Y > g.conf.Platforms.NearTopThreshold {
			g.spawnPlatform(ref)
		}
	}
}

// scaledThreshold applies the difficulty preset to a generator score
// threshold. With difficulty disabled thresholds are unreachable, freezing
// generation at its easiest form.
func (g *Game) scaledThreshold(base int) int {
	d := g.conf.Difficulty
	if !d.Enabled {
		return math.MaxInt
	}
	scale := d.ThresholdScale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(base) * scale)
}

// spawnPlatform synthesizes one platform above the reference platform.
// All randomness draws from the seeded generation RNG in a fixed order, so a
// given seed always produces the same platform sequence.
func (g *Game) spawnPlatform(ref Platform) {
	pc := g.conf.Platforms
	gc := g.conf.Generator
	worldW := g.conf.World.Width

	y := ref.Y - (pc.GapMin + g.rng.Float64()*(pc.GapMax-pc.GapMin))

	w := pc.BaseWidth * (0.8 + g.rng.Float64()*0.4)
	if g.score > g.scaledThreshold(gc.ShrinkStartScore) {
		over := float64(g.score - g.scaledThreshold(gc.ShrinkStartScore))
		shrink := math.Min(over/float64(gc.ShrinkRange), gc.MaxShrink)
		w *= 1 - shrink
		if w > pc.BaseWidth {
			w = pc.BaseWidth
		}
		if w < pc.MinWidth {
			w = pc.MinWidth
		}
	}

	x := ref.X + (g.rng.Float64()*2-1)*pc.HorizontalJitter
	x = core.ClampF(x, 0, worldW-w)

	pl := Platform{
		ID:   g.rng.Int63(),
		X:    x,
		Y:    y,
		W:    w,
		H:    pc.Height,
		Tier: 0, // static platforms always show the lowest tier's color
	}

	if g.score > g.scaledThreshold(gc.MovingMinScore) {
		chance := gc.MovingChance
		speed := gc.MovingSpeed
		if g.score > g.scaledThreshold(gc.FastMinScore) {
			chance = gc.FastMovingChance
			speed = gc.FastMovingSpeed
		}
		if g.rng.Float64() < chance {
			pl.Moving = true
			if g.rng.Float64() < 0.5 {
				speed = -speed
			}
			pl.Speed = speed
			pl.HalfRange = gc.RangeMin + g.rng.Float64()*(gc.RangeMax-gc.RangeMin)

			// Movers re-randomize width once, clamped against the pre-reroll base.
			base := pl.W
			pl.W = core.ClampF(base*(0.7+g.rng.Float64()*0.6), 40, 1.5*base)

			// Keep the full oscillation on-screen by adjusting the center,
			// not the range.
			maxX := worldW - pl.W
			lo, hi := pl.HalfRange, maxX-pl.HalfRange
			if lo > hi {
				pl.CenterX = maxX / 2
			} else {
				pl.CenterX = core.ClampF(pl.X, lo, hi)
			}
			pl.X = core.ClampF(pl.X, pl.CenterX-pl.HalfRange, pl.CenterX+pl.HalfRange)
			pl.X = core.ClampF(pl.X, 0, maxX)

			// Movers telegraph nothing about score: their color tier is
			// uniformly random.
			pl.Tier = g.rng.Intn(TierCount())
		}
	}

	if g.rng.Float64() < g.conf.PowerUps.SpawnChance {
		pl.HasPower = true
		pl.Power = PowerUpKind(g.rng.Intn(int(powerKindCount)))
	}

	g.platforms = append(g.platforms, pl)
}

// buildInitialWorld lays out the starting platform field: a full-width-ish
// base under the player and a ladder of platforms up to the near-top
// threshold.
func (g *Game) buildInitialWorld() {
	pc := g.conf.Platforms
	worldW := g.conf.World.Width
	worldH := g.conf.World.Height

	g.platforms = g.platforms[:0]

	base := Platform{
		ID:   g.rng.Int63(),
		X:    (worldW - pc.BaseWidth*1.5) / 2,
		Y:    worldH - 60,
		W:    pc.BaseWidth * 1.5,
		H:    pc.Height,
		Tier: 0,
	}
	g.platforms = append(g.platforms, base)

	for {
		ref := g.platforms[len(g.platforms)-1]
		if ref.Y <= pc.NearTopThreshold {
			break
		}
		g.spawnPlatform(ref)
	}

	p := &g.player
	p.X = base.X + base.W/2 - p.W/2
	p.Y = base.Y - p.H
	p.VX = 0
	p.VY = p.JumpImpulse // opening bounce off the base platform
}
