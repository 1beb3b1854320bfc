// Package jumper implements Sky Hopper, an endless vertical platform jumper.
// The simulation is a fixed-timestep engine: the platform layer reports
// measured wall time each frame and the engine drains it in 1/60s steps, so
// trajectories are independent of the render rate. All generation randomness
// flows through one seeded RNG; physics never draws from it.
package jumper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Phase is the driver state machine.
type Phase int

const (
	PhaseIdle    Phase = iota // before the first reset
	PhaseReady                // pre-round delay, no physics
	PhaseRunning              // steps draining
	PhaseEnded                // terminal until reset
)

// Timing constants. The step duration is locked: display refresh rate never
// changes simulation speed.
const (
	stepsPerSecond  = 60
	stepDuration    = time.Second / stepsPerSecond
	maxFrameTime    = 250 * time.Millisecond // a stall never bursts more than this
	maxStepsPerTick = 240                    // excess accumulated time is discarded
	readyDelay      = 1500 * time.Millisecond
)

// Package-level options applied at creation, set by the CLI before the
// registry instantiates the game.
var (
	configPath       string
	difficultyPreset string
	characterID      string
)

// SetConfigPath sets a custom config file path for new game instances.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset sets the difficulty preset for new game instances.
func SetDifficultyPreset(preset string) { difficultyPreset = preset }

// SetCharacter selects the character variant for new game instances.
func SetCharacter(id string) { characterID = id }

// Game implements the Sky Hopper simulation.
type Game struct {
	conf config.JumperConfig
	rt   core.RuntimeConfig
	char Character

	player    Player
	platforms []Platform
	particles []Particle
	ripples   []Ripple

	powers  *powerUpState
	rng     *rand.Rand
	boostVY float64

	sink   EventSink
	events []core.Event

	phase   Phase
	paused  bool
	clock   time.Duration // engine wall clock, advanced by clamped frame time
	readyAt time.Duration
	acc     time.Duration
	score   int
	steps   uint64
}

// New creates a new Sky Hopper instance using the package-level options.
func New() *Game {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	config.ApplyJumperPreset(&cfg, config.DifficultyPreset(difficultyPreset))

	char, _ := CharacterByID(characterID)

	return &Game{
		conf: cfg,
		char: char,
		sink: NopSink{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hopper"
}

// SetSink installs an external event sink. Pass nil to restore the no-op
// sink. Sink calls are best-effort; the simulation never depends on them.
func (g *Game) SetSink(s EventSink) {
	if s == nil {
		g.sink = NopSink{}
		return
	}
	g.sink = s
}

// Character returns the variant selected for this instance.
func (g *Game) Character() Character {
	return g.char
}

// Phase returns the current driver phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// ReadyRemaining returns how much of the pre-round delay is left.
func (g *Game) ReadyRemaining() time.Duration {
	if g.phase != PhaseReady {
		return 0
	}
	left := g.readyAt - g.clock
	if left < 0 {
		return 0
	}
	return left
}

// Reset initializes or restarts the round. Pending power-up expiries are
// cancelled before any state is rebuilt, so a stale timer from the previous
// round can never clear a flag on the new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg

	if g.powers == nil {
		g.powers = newPowerUpState(
			g.conf.PowerUps.MultiplierMS,
			g.conf.PowerUps.GiantMS,
			g.conf.PowerUps.BoosterMS,
		)
	}
	g.powers.Reset()

	g.rng = rand.New(rand.NewSource(cfg.Seed))

	size := g.conf.World.PlayerSize
	g.player = Player{
		W:           size,
		H:           size,
		JumpImpulse: g.char.JumpImpulse,
		Gravity:     g.char.Gravity,
		MoveSpeed:   g.char.MoveSpeed,
	}
	g.boostVY = -g.conf.PowerUps.BoostAscentScale * absF(g.char.JumpImpulse)

	g.particles = g.particles[:0]
	g.ripples = g.ripples[:0]
	g.events = g.events[:0]
	g.score = 0
	g.steps = 0
	g.paused = false
	g.clock = 0
	g.acc = 0
	g.readyAt = readyDelay
	g.phase = PhaseReady

	g.buildInitialWorld()
}

// Advance moves the simulation forward by the measured wall time since the
// previous frame. A missing or negative delta runs zero steps; a stall is
// clamped so catch-up work stays bounded, with the excess discarded.
func (g *Game) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.phase == PhaseRunning && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.phase == PhaseIdle || g.phase == PhaseEnded || g.paused {
		return g.result()
	}

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}

	prev := g.clock
	g.clock += elapsed

	// Expiry timers run on the engine clock, independent of physics steps:
	// a power-up can lapse during the ready phase with zero steps draining.
	for _, kind := range g.powers.Expire(g.clock) {
		g.onPowerExpired(kind)
	}

	switch g.phase {
	case PhaseReady:
		if g.clock < g.readyAt {
			return g.result()
		}
		g.phase = PhaseRunning
		g.emit(core.Event{Type: core.EventGo})
		g.sink.RoundStarted()
		// Only the slice of this frame past the deadline accumulates.
		start := g.readyAt
		if prev > start {
			start = prev
		}
		g.acc += g.clock - start
	case PhaseRunning:
		g.acc += elapsed
	}

	steps := int(g.acc / stepDuration)
	if steps > maxStepsPerTick {
		steps = maxStepsPerTick
		g.acc = 0 // intentional lossy truncation, not carried forward
	} else {
		g.acc -= time.Duration(steps) * stepDuration
	}

	for i := 0; i < steps; i++ {
		g.step(in)
		if g.phase == PhaseEnded {
			break
		}
	}

	return g.result()
}

// step runs one fixed simulation step: physics, then collision resolution,
// then scroll and generation, then visual effect aging.
func (g *Game) step(in core.InputFrame) {
	g.steps++
	g.stepPhysics(in)
	g.resolveCollisions()
	if g.phase == PhaseEnded {
		return
	}
	g.scrollAndGenerate()
	g.stepEffects()
}

// onPowerExpired applies the one-shot side effect of a timed power-up
// lapsing. Only Giant has one: the box shrinks back with the inverse of the
// growth correction.
func (g *Game) onPowerExpired(kind PowerUpKind) {
	if kind == PowerGiant {
		g.shrinkGiant()
	}
}

// endRound terminates the simulation until the next reset.
func (g *Game) endRound() {
	g.phase = PhaseEnded
	g.emit(core.Event{Type: core.EventDeath, Value: g.score})
	g.sink.RoundEnded(g.score)
}

// emit queues an event for the platform layer; drained once per Advance.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result snapshots the state and drains queued events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = make([]core.Event, len(g.events))
		copy(res.Events, g.events)
		g.events = g.events[:0]
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnded,
		Paused:   g.paused,
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Register the game with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
