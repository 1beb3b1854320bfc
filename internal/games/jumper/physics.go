package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// stepPhysics advances the world by one fixed step. The order is load-bearing:
// moving platforms first, then horizontal input, friction, horizontal
// integration with wall clamp, then vertical integration.
func (g *Game) stepPhysics(in core.InputFrame) {
	g.stepPlatforms()

	p := &g.player

	// Horizontal input; both directions may be held in the same step.
	if in.Has(core.ActionLeft) {
		p.VX -= p.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		p.VX += p.MoveSpeed
	}

	// Exponential friction, applied every step.
	p.VX *= g.conf.Physics.Friction

	// Integrate x; walls are inelastic.
	p.X += p.VX
	maxX := g.conf.World.Width - p.W
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	} else if p.X > maxX {
		p.X = maxX
		p.VX = 0
	}

	// Vertical: the booster overrides gravity entirely for its duration.
	if g.powers.Active(PowerBooster) {
		p.VY = g.boostVY
	} else {
		p.VY += p.Gravity
	}
	p.Y += p.VY
}

// stepPlatforms advances moving platforms by their signed speed, reflecting
// at the oscillation bounds. The hard clamp at world edges takes precedence
// over the oscillation bound.
func (g *Game) stepPlatforms() {
	worldW := g.conf.World.Width
	for i := range g.platforms {
		pl := &g.platforms[i]
		if !pl.Moving {
			continue
		}
		pl.X += pl.Speed

		maxX := worldW - pl.W
		switch {
		case pl.X < 0:
			pl.X = 0
			pl.Speed = -pl.Speed
		case pl.X > maxX:
			pl.X = maxX
			pl.Speed = -pl.Speed
		case pl.X < pl.CenterX-pl.HalfRange || pl.X > pl.CenterX+pl.HalfRange:
			pl.Speed = -pl.Speed
		}
	}
}

// stepEffects ages particles and ripples. Purely visual; runs after the
// simulation so scroll offsets from this step are already applied.
func (g *Game) stepEffects() {
	alive := g.particles[:0]
	for _, pt := range g.particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += 0.2 // dust falls gently
		pt.Life--
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	g.particles = alive

	ripples := g.ripples[:0]
	for _, rp := range g.ripples {
		rp.Radius += 2
		rp.Life--
		if rp.Life > 0 {
			ripples = append(ripples, rp)
		}
	}
	g.ripples = ripples
}
