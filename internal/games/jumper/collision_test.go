package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// landingFixture puts a falling player directly above a single platform.
func landingFixture(seed int64) *Game {
	g := newTestGame(seed)
	g.phase = PhaseRunning
	g.platforms = []Platform{{ID: 1, X: 150, Y: 585, W: 100, H: 15}}
	g.player.X = 180
	g.player.Y = 550 // bottom at 590, inside the landing band below the top
	g.player.VX = 4
	g.player.VY = 5
	return g
}

func TestLandingBounce(t *testing.T) {
	g := landingFixture(1)
	g.resolveCollisions()

	p := &g.player
	if p.VY != p.JumpImpulse {
		t.Errorf("vy after landing = %v, want jump impulse %v", p.VY, p.JumpImpulse)
	}
	if p.Y != 585-p.H {
		t.Errorf("y after landing = %v, want %v (snapped onto the top)", p.Y, 585-p.H)
	}
	if p.VX != 4*landingDampVX {
		t.Errorf("vx after landing = %v, want %v (damped)", p.VX, 4*landingDampVX)
	}
	if len(g.particles) != 4 {
		t.Errorf("landing dust particles = %d, want 4", len(g.particles))
	}

	found := false
	for _, e := range g.events {
		if e.Type == core.EventLanded {
			found = true
		}
	}
	if !found {
		t.Error("no EventLanded emitted")
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	g := landingFixture(1)
	g.player.VY = -5
	g.resolveCollisions()

	if g.player.VY != -5 {
		t.Errorf("vy changed while rising: %v", g.player.VY)
	}
	if g.player.Y != 550 {
		t.Errorf("y changed while rising: %v", g.player.Y)
	}
}

func TestNoLandingWhileBoosting(t *testing.T) {
	// The booster carries the player through platforms even with vy > 0.
	g := landingFixture(1)
	g.powers.Activate(PowerBooster, g.clock)
	g.resolveCollisions()

	if g.player.VY != 5 {
		t.Errorf("vy changed while boosting: %v", g.player.VY)
	}
}

func TestLandingInsetNarrowsTheBand(t *testing.T) {
	// Horizontal overlap uses the player box narrowed by the inset on each
	// side: a graze that only overlaps within the inset does not land.
	g := landingFixture(1)
	g.player.X = 250 - landingInset + 0.5 // inset-adjusted left edge just past the platform
	g.resolveCollisions()
	if g.player.VY != 5 {
		t.Errorf("grazing contact landed: vy = %v", g.player.VY)
	}

	g2 := landingFixture(1)
	g2.player.X = 250 - landingInset - 0.5 // barely inside
	g2.resolveCollisions()
	if g2.player.VY != g2.player.JumpImpulse {
		t.Errorf("edge contact missed: vy = %v", g2.player.VY)
	}
}

func TestLandingBandVertical(t *testing.T) {
	// Bottom below top+band means the player already passed through.
	g := landingFixture(1)
	g.player.Y = 585 + landingBand + 1 - g.player.H
	g.resolveCollisions()
	if g.player.VY != 5 {
		t.Errorf("landed from below the band: vy = %v", g.player.VY)
	}
}

func TestPickupRadius(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseRunning
	anchor := g.conf.PowerUps.PickupSize

	// Token anchor sits at (200, 585-anchor); radius equals the player width.
	place := func(dist float64) *Game {
		gg := newTestGame(1)
		gg.phase = PhaseRunning
		gg.platforms = []Platform{{
			ID: 1, X: 150, Y: 585, W: 100, H: 15,
			HasPower: true, Power: PowerScoreX2,
		}}
		gg.player.X = 200 - gg.player.W/2
		gg.player.Y = (585 - anchor - dist) - gg.player.H/2
		gg.player.VY = -1 // rising, so no landing interferes
		return gg
	}

	g = place(g.player.W - 1)
	g.resolveCollisions()
	if g.platforms[0].HasPower {
		t.Error("token inside the radius not collected")
	}
	if !g.powers.Active(PowerScoreX2) {
		t.Error("collected multiplier not active")
	}

	g = place(g.player.W + 1)
	g.resolveCollisions()
	if !g.platforms[0].HasPower {
		t.Error("token outside the radius was collected")
	}
}

func TestBoostingWidensPickupRadius(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseRunning
	anchor := g.conf.PowerUps.PickupSize
	dist := g.player.W * 1.2 // beyond the normal radius, inside the boosted one

	g.platforms = []Platform{{
		ID: 1, X: 150, Y: 585, W: 100, H: 15,
		HasPower: true, Power: PowerGiant,
	}}
	g.player.X = 200 - g.player.W/2
	g.player.Y = (585 - anchor - dist) - g.player.H/2

	g.resolveCollisions()
	if !g.platforms[0].HasPower {
		t.Fatal("token collected without the boosted radius")
	}

	g.powers.Activate(PowerBooster, g.clock)
	g.resolveCollisions()
	if g.platforms[0].HasPower {
		t.Error("token inside the boosted radius not collected")
	}
}

func TestPickupConsumesToken(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseRunning
	g.platforms = []Platform{{
		ID: 1, X: 150, Y: 585, W: 100, H: 15,
		HasPower: true, Power: PowerBooster,
	}}
	g.player.X = 200 - g.player.W/2
	g.player.Y = (585 - g.conf.PowerUps.PickupSize) - g.player.H/2

	g.resolveCollisions()
	if g.platforms[0].HasPower {
		t.Fatal("token not consumed")
	}
	until := g.powers.until[PowerBooster]

	// Touching the same platform again must not re-grant anything.
	g.resolveCollisions()
	if g.powers.until[PowerBooster] != until {
		t.Error("consumed token granted a second activation")
	}
}

func TestShieldConvertsFallIntoBounce(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseRunning
	g.platforms = nil
	g.player.Shield = 1
	g.player.Y = g.conf.World.Height + 50
	g.player.VY = 12

	g.resolveCollisions()

	p := &g.player
	if g.phase != PhaseRunning {
		t.Fatal("round ended despite an available shield charge")
	}
	if p.Shield != 0 {
		t.Errorf("shield charges = %d, want 0 (consumed)", p.Shield)
	}
	if p.Y != g.conf.World.Height {
		t.Errorf("y after shield bounce = %v, want %v", p.Y, g.conf.World.Height)
	}
	if want := shieldBounceMult * p.JumpImpulse; p.VY != want {
		t.Errorf("vy after shield bounce = %v, want %v", p.VY, want)
	}

	// Second fall with no charge left ends the round.
	p.Y = g.conf.World.Height + 50
	p.VY = 12
	g.resolveCollisions()
	if g.phase != PhaseEnded {
		t.Error("round did not end on the uncovered fall")
	}
}

func TestFallThroughEndsRound(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseRunning
	g.platforms = nil
	g.player.Y = g.conf.World.Height + 1

	g.resolveCollisions()
	if g.phase != PhaseEnded {
		t.Fatal("round did not end on fall-through")
	}

	found := false
	for _, e := range g.events {
		if e.Type == core.EventDeath {
			found = true
		}
	}
	if !found {
		t.Error("no EventDeath emitted")
	}
}
