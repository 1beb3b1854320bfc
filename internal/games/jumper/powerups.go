package jumper

import (
	"container/heap"
	"time"
)

// PowerUpKind identifies one of the four power-up token types.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota // charge-based, consumed on fall-through
	PowerScoreX2                   // doubles scroll score gain
	PowerGiant                     // doubles the player box
	PowerBooster                   // forces constant ascent, widens pickup radius
	powerKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "Shield"
	case PowerScoreX2:
		return "Score x2"
	case PowerGiant:
		return "Giant"
	case PowerBooster:
		return "Booster"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerShield:
		return 'S'
	case PowerScoreX2:
		return '2'
	case PowerGiant:
		return 'G'
	case PowerBooster:
		return 'B'
	default:
		return '?'
	}
}

// expiryEvent is a scheduled deactivation. gen ties the event to the
// activation that scheduled it: a refresh bumps the kind's generation, so a
// stale event popping later cannot clear the refreshed state.
type expiryEvent struct {
	at   time.Duration
	kind PowerUpKind
	gen  uint64
}

// expiryQueue is a min-heap ordered by expiry time.
type expiryQueue []expiryEvent

func (q expiryQueue) Len() int            { return len(q) }
func (q expiryQueue) Less(i, j int) bool  { return q[i].at < q[j].at }
func (q expiryQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *expiryQueue) Push(x any)         { *q = append(*q, x.(expiryEvent)) }
func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// powerUpState tracks the three timed power-ups (ScoreX2, Giant, Booster).
// Shield is charge-based and lives on the Player. Expiry runs on the engine
// clock, not on physics steps, so power-ups can lapse during the ready phase
// or while no steps are draining.
type powerUpState struct {
	active    [powerKindCount]bool
	until     [powerKindCount]time.Duration
	gen       [powerKindCount]uint64
	seq       uint64
	queue     expiryQueue
	durations [powerKindCount]time.Duration
}

func newPowerUpState(multiplierMS, giantMS, boosterMS int) *powerUpState {
	s := &powerUpState{}
	s.durations[PowerScoreX2] = time.Duration(multiplierMS) * time.Millisecond
	s.durations[PowerGiant] = time.Duration(giantMS) * time.Millisecond
	s.durations[PowerBooster] = time.Duration(boosterMS) * time.Millisecond
	return s
}

// Active reports whether a timed power-up is currently in effect.
func (s *powerUpState) Active(kind PowerUpKind) bool {
	return s.active[kind]
}

// Remaining returns how long a timed power-up has left at the given clock.
func (s *powerUpState) Remaining(kind PowerUpKind, now time.Duration) time.Duration {
	if !s.active[kind] {
		return 0
	}
	left := s.until[kind] - now
	if left < 0 {
		return 0
	}
	return left
}

// Activate starts or refreshes a timed power-up at the given clock time.
// A refresh adds the remaining time onto a fresh full duration rather than
// resetting it. Returns true only on the inactive→active transition, which is
// when one-shot side effects (the Giant resize) must apply.
func (s *powerUpState) Activate(kind PowerUpKind, now time.Duration) bool {
	dur := s.durations[kind]
	fresh := !s.active[kind]
	if fresh {
		s.until[kind] = now + dur
	} else {
		carry := s.until[kind] - now
		if carry < 0 {
			carry = 0
		}
		s.until[kind] = now + dur + carry
	}
	s.active[kind] = true

	// Replace the scheduled expiry: the old event stays queued but its
	// generation no longer matches, so it is ignored when it surfaces.
	s.seq++
	s.gen[kind] = s.seq
	heap.Push(&s.queue, expiryEvent{at: s.until[kind], kind: kind, gen: s.seq})
	return fresh
}

// Expire drains every due expiry event at the given clock time and returns
// the kinds that actually deactivated, in expiry order. Stale events from
// superseded activations are discarded silently.
func (s *powerUpState) Expire(now time.Duration) []PowerUpKind {
	var expired []PowerUpKind
	for len(s.queue) > 0 && s.queue[0].at <= now {
		e := heap.Pop(&s.queue).(expiryEvent)
		if !s.active[e.kind] || e.gen != s.gen[e.kind] {
			continue
		}
		s.active[e.kind] = false
		expired = append(expired, e.kind)
	}
	return expired
}

// Reset cancels all pending expiries and clears every flag. Called before a
// round reinitializes so a stale event cannot clear state on the new round.
func (s *powerUpState) Reset() {
	for k := range s.active {
		s.active[k] = false
		s.until[k] = 0
		s.gen[k] = 0
	}
	s.queue = s.queue[:0]
}
