package jumper

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestFrictionDecaysVelocity(t *testing.T) {
	g := newTestGame(1)
	g.platforms = nil // isolate the player
	g.player.X = 100
	g.player.Y = 200
	g.player.VX = 10

	in := core.NewInputFrame()
	prev := math.Abs(g.player.VX)
	for i := 0; i < 10; i++ {
		g.stepPhysics(in)
		cur := math.Abs(g.player.VX)
		if cur >= prev {
			t.Fatalf("step %d: |vx| did not decay: %v -> %v", i, prev, cur)
		}
		want := prev * g.conf.Physics.Friction
		if math.Abs(cur-want) > 1e-9 {
			t.Fatalf("step %d: |vx| = %v, want %v", i, cur, want)
		}
		prev = cur
	}
}

func TestInputAcceleratesPlayer(t *testing.T) {
	g := newTestGame(1)
	g.platforms = nil
	g.player.X = 100
	g.player.Y = 200

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.stepPhysics(right)

	// One step: vx = (0 + moveSpeed) × friction.
	want := g.player.MoveSpeed * g.conf.Physics.Friction
	if math.Abs(g.player.VX-want) > 1e-9 {
		t.Errorf("vx after one right step = %v, want %v", g.player.VX, want)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g2 := newTestGame(1)
	g2.platforms = nil
	g2.player.X = 100
	g2.player.Y = 200
	g2.stepPhysics(left)
	if g2.player.VX != -want {
		t.Errorf("vx after one left step = %v, want %v", g2.player.VX, -want)
	}
}

func TestGravityAccumulates(t *testing.T) {
	g := newTestGame(1)
	g.platforms = nil
	g.player.X = 100
	g.player.Y = 50
	g.player.VY = 0

	in := core.NewInputFrame()
	for i := 1; i <= 5; i++ {
		g.stepPhysics(in)
		want := float64(i) * g.player.Gravity
		if math.Abs(g.player.VY-want) > 1e-9 {
			t.Fatalf("vy after %d steps = %v, want %v", i, g.player.VY, want)
		}
	}
}

func TestWallClampIsInelastic(t *testing.T) {
	g := newTestGame(1)
	g.platforms = nil
	maxX := g.conf.World.Width - g.player.W

	in := core.NewInputFrame()

	g.player.X = maxX - 1
	g.player.Y = 200
	g.player.VX = 50
	g.stepPhysics(in)
	if g.player.X != maxX {
		t.Errorf("x after right-wall hit = %v, want %v", g.player.X, maxX)
	}
	if g.player.VX != 0 {
		t.Errorf("vx after right-wall hit = %v, want 0", g.player.VX)
	}

	g.player.X = 1
	g.player.VX = -50
	g.stepPhysics(in)
	if g.player.X != 0 {
		t.Errorf("x after left-wall hit = %v, want 0", g.player.X)
	}
	if g.player.VX != 0 {
		t.Errorf("vx after left-wall hit = %v, want 0", g.player.VX)
	}
}

func TestBoosterOverridesGravity(t *testing.T) {
	g := newTestGame(1)
	g.platforms = nil
	g.player.X = 100
	g.player.Y = 400
	g.player.VY = 7 // falling fast; booster must override, not blend

	g.powers.Activate(PowerBooster, g.clock)

	in := core.NewInputFrame()
	for i := 0; i < 5; i++ {
		g.stepPhysics(in)
		if g.player.VY != g.boostVY {
			t.Fatalf("step %d: vy = %v, want boost ascent %v", i, g.player.VY, g.boostVY)
		}
	}
	if g.boostVY >= 0 {
		t.Errorf("boost ascent velocity = %v, want negative (upward)", g.boostVY)
	}
}

func TestMoverReflectsAtOscillationBound(t *testing.T) {
	g := newTestGame(1)
	g.platforms = []Platform{{
		X: 250, Y: 300, W: 80, H: 15,
		Moving: true, Speed: 1.5, CenterX: 200, HalfRange: 50,
	}}

	g.stepPlatforms()
	pl := g.platforms[0]
	if pl.Speed != -1.5 {
		t.Errorf("speed after crossing the range bound = %v, want -1.5", pl.Speed)
	}
	if pl.X != 251.5 {
		t.Errorf("x after crossing the range bound = %v, want 251.5", pl.X)
	}
}

func TestMoverReflectsAtWorldEdge(t *testing.T) {
	g := newTestGame(1)
	maxX := g.conf.World.Width - 80
	g.platforms = []Platform{{
		X: maxX - 1, Y: 300, W: 80, H: 15,
		Moving: true, Speed: 3, CenterX: maxX, HalfRange: 100,
	}}

	g.stepPlatforms()
	pl := g.platforms[0]
	if pl.X != maxX {
		t.Errorf("x after world-edge hit = %v, want clamp at %v", pl.X, maxX)
	}
	if pl.Speed != -3 {
		t.Errorf("speed after world-edge hit = %v, want -3", pl.Speed)
	}
}

func TestStaticPlatformsDoNotMove(t *testing.T) {
	g := newTestGame(1)
	g.platforms = []Platform{{X: 150, Y: 300, W: 100, H: 15}}

	g.stepPlatforms()
	if g.platforms[0].X != 150 {
		t.Errorf("static platform moved to %v", g.platforms[0].X)
	}
}

func TestEffectsAgeAndExpire(t *testing.T) {
	g := newTestGame(1)
	g.particles = []Particle{{X: 10, Y: 10, VX: 1, VY: -1, Life: 2}}
	g.ripples = []Ripple{{X: 20, Y: 20, Radius: 4, Life: 1}}

	g.stepEffects()
	if len(g.particles) != 1 {
		t.Fatalf("particle expired early")
	}
	if len(g.ripples) != 0 {
		t.Errorf("ripple survived past its life")
	}

	g.stepEffects()
	if len(g.particles) != 0 {
		t.Errorf("particle survived past its life")
	}
}
