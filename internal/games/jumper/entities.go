package jumper

// Player is the single simulated character. Position is the top-left corner
// of the bounding box in world units; y grows downward.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64 // PlayerSize, or exactly 2× while Giant

	// Base stats copied from the character table at reset.
	JumpImpulse float64
	Gravity     float64
	MoveSpeed   float64

	Jumping bool // set on every bounce; purely decorative
	Shield  int  // charges; gameplay caps at 1
}

// CenterX returns the horizontal center of the bounding box.
func (p *Player) CenterX() float64 {
	return p.X + p.W/2
}

// CenterY returns the vertical center of the bounding box.
func (p *Player) CenterY() float64 {
	return p.Y + p.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (p *Player) Bottom() float64 {
	return p.Y + p.H
}

// Platform is a bounce surface. Moving platforms oscillate horizontally
// around CenterX within ±HalfRange, reflecting at world edges.
type Platform struct {
	ID   int64 // generation draws a random id; uniqueness not guaranteed
	X, Y float64
	W, H float64

	Moving    bool
	Speed     float64 // signed; flips on bounce
	CenterX   float64
	HalfRange float64

	HasPower bool
	Power    PowerUpKind

	Tier int // color tier index, visual only
}

// Top returns the landing surface y-coordinate.
func (p *Platform) Top() float64 {
	return p.Y
}

// Particle is a short-lived landing dust fleck. Visual only; the engine owns
// its lifecycle so scrolling shifts it with the world.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // remaining fixed steps
}

// Ripple is an expanding pickup ring. Visual only.
type Ripple struct {
	X, Y   float64
	Radius float64
	Life   int // remaining fixed steps
}
