package game

import (
	"math"

	"ballattax/internal/gfx"
)

type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindBall
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBall:
		return "ball"
	default:
		return "none"
	}
}

// Body is a circle in play-area coordinates. Velocities are in pixels per
// second. Fixed bodies act as infinite mass in collisions.
type Body struct {
	Kind         Kind
	X, Y         float64
	PrevX, PrevY float64
	Radius       float64
	VX, VY       float64
	Color        gfx.RGBA
	Fixed        bool
}

func NewPlayer(x, y, radius float64) *Body {
	return &Body{
		Kind:   KindPlayer,
		X:      x,
		Y:      y,
		PrevX:  x,
		PrevY:  y,
		Radius: radius,
		Color:  gfx.Palette.Player,
	}
}

// Move integrates the velocity over dt, remembering where the body was.
func (b *Body) Move(dt float64) {
	b.PrevX, b.PrevY = b.X, b.Y
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Intersects reports overlap. Bodies of KindNone never collide.
func (b *Body) Intersects(o *Body) bool {
	if b.Kind == KindNone || o.Kind == KindNone {
		return false
	}
	dx := o.X - b.X
	dy := o.Y - b.Y
	r := b.Radius + o.Radius
	return dx*dx+dy*dy < r*r
}

func (b *Body) Distance(o *Body) float64 {
	return math.Hypot(o.X-b.X, o.Y-b.Y)
}

// Pan maps the body's x in a play area of the given size to [-1,1].
func (b *Body) Pan(size float64) float64 { return panAt(b.X, size) }
