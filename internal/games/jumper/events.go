package jumper

// EventSink receives fire-and-forget notifications from the simulation.
// Implementations must be cheap and must never mutate game state; the engine
// does not depend on them for correctness. Audio and external scoreboards
// attach here.
type EventSink interface {
	// RoundStarted fires once when the ready delay elapses and play begins.
	RoundStarted()

	// Landed fires on every platform bounce.
	Landed()

	// PowerUpCollected fires when a token is picked up.
	PowerUpCollected(kind PowerUpKind)

	// ShieldConsumed fires when a shield charge converts a fall into a bounce.
	ShieldConsumed()

	// ScoreChanged fires with the new cumulative total whenever it changes.
	ScoreChanged(total int)

	// RoundEnded fires exactly once when the player falls without a shield.
	// No further physics steps run until the next reset.
	RoundEnded(final int)
}

// NopSink is an EventSink that ignores everything.
type NopSink struct{}

func (NopSink) RoundStarted()                 {}
func (NopSink) Landed()                       {}
func (NopSink) PowerUpCollected(PowerUpKind)  {}
func (NopSink) ShieldConsumed()               {}
func (NopSink) ScoreChanged(int)              {}
func (NopSink) RoundEnded(int)                {}
