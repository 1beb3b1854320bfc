package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Landing tolerances. The generous vertical band allows a landing to register
// even after partial overlap between 60fps steps.
const (
	landingInset     = 5.0  // horizontal band narrows this much on each side
	landingBand      = 20.0 // player bottom must lie within [top, top+band]
	landingDampVX    = 0.5
	shieldBounceMult = 1.5 // shield converts a fall into this × jump impulse
)

// resolveCollisions handles platform landings, power-up pickups, and the
// fall-through check. Runs once per fixed step, after integration.
func (g *Game) resolveCollisions() {
	p := &g.player
	boosting := g.powers.Active(PowerBooster)

	// Captured once: every platform sees the same falling state, so several
	// overlapping platforms can all trigger in iteration order (last one
	// wins for the final vy/y).
	falling := p.VY > 0 && !boosting

	radius := p.W
	if boosting {
		radius *= g.conf.PowerUps.BoostRadiusScale
	}

	for i := range g.platforms {
		pl := &g.platforms[i]

		if falling {
			left := p.X + landingInset
			right := p.X + p.W - landingInset
			bottom := p.Bottom()
			if right > pl.X && left < pl.X+pl.W &&
				bottom >= pl.Top() && bottom <= pl.Top()+landingBand {
				p.VY = p.JumpImpulse
				p.Y = pl.Top() - p.H
				p.VX *= landingDampVX
				p.Jumping = true
				g.spawnLandingDust(pl)
				g.emit(core.Event{Type: core.EventLanded})
				g.sink.Landed()
			}
		}

		// Pickup is independent of the falling state and checked every step.
		if pl.HasPower {
			dx := p.CenterX() - (pl.X + pl.W/2)
			dy := p.CenterY() - (pl.Top() - g.conf.PowerUps.PickupSize)
			if math.Hypot(dx, dy) <= radius {
				kind := pl.Power
				pl.HasPower = false
				g.collectPowerUp(kind, pl)
			}
		}
	}

	// Fall-through: shield converts the fall, otherwise the round ends.
	if p.Y > g.conf.World.Height {
		if p.Shield > 0 {
			p.Shield--
			p.Y = g.conf.World.Height
			p.VY = shieldBounceMult * p.JumpImpulse
			g.emit(core.Event{Type: core.EventShieldUsed})
			g.sink.ShieldConsumed()
		} else {
			g.endRound()
		}
	}
}

// collectPowerUp applies a picked-up token and emits the pickup events.
func (g *Game) collectPowerUp(kind PowerUpKind, pl *Platform) {
	switch kind {
	case PowerShield:
		// Re-collection while a charge is held sets it back to exactly 1.
		g.player.Shield = 1
	case PowerGiant:
		if g.powers.Activate(PowerGiant, g.clock) {
			g.growGiant()
		}
	default:
		g.powers.Activate(kind, g.clock)
	}

	g.ripples = append(g.ripples, Ripple{
		X:      pl.X + pl.W/2,
		Y:      pl.Top() - g.conf.PowerUps.PickupSize,
		Radius: 4,
		Life:   18,
	})
	g.emit(core.Event{Type: core.EventPickup, Value: int(kind)})
	g.sink.PowerUpCollected(kind)
}

// growGiant doubles the player box, shifting the position so growth expands
// from the visual center. Applied only on the inactive→active transition.
func (g *Game) growGiant() {
	p := &g.player
	dw := p.W // box doubles, so the delta equals the old size
	dh := p.H
	p.W *= 2
	p.H *= 2
	p.X -= dw / 2
	p.Y -= dh
}

// shrinkGiant is the exact inverse of growGiant, applied on expiry.
func (g *Game) shrinkGiant() {
	p := &g.player
	p.W /= 2
	p.H /= 2
	p.X += p.W / 2
	p.Y += p.H
}

// spawnLandingDust emits a fixed fan of dust particles from the landing
// point. Deliberately deterministic: visual effects never draw from the
// generation RNG.
func (g *Game) spawnLandingDust(pl *Platform) {
	cx := g.player.CenterX()
	y := pl.Top()
	fan := []struct{ vx, vy float64 }{
		{-1.6, -0.8},
		{-0.6, -1.2},
		{0.6, -1.2},
		{1.6, -0.8},
	}
	for _, f := range fan {
		g.particles = append(g.particles, Particle{
			X: cx, Y: y, VX: f.vx, VY: f.vy, Life: 14,
		})
	}
}
