package game

// Collide resolves contact between a and b as a 1D elastic exchange along
// the centre line, with mass proportional to radius squared. Tangential
// velocity is untouched and overlap is split inversely to mass. A fixed
// body gives its partner zero effective mass on its side, so only the
// partner moves. It reports false when nothing was resolved: coincident
// centres, or both bodies fixed.
func Collide(a, b *Body) bool {
	if a.Fixed && b.Fixed {
		return false
	}
	dist := a.Distance(b)
	if dist == 0 {
		return false
	}
	nx := (b.X - a.X) / dist
	ny := (b.Y - a.Y) / dist

	var m1, m2 float64
	if !b.Fixed {
		m1 = a.Radius * a.Radius
	}
	if !a.Fixed {
		m2 = b.Radius * b.Radius
	}
	total := m1 + m2
	if total == 0 {
		return false
	}

	v1n := a.VX*nx + a.VY*ny
	v2n := b.VX*nx + b.VY*ny
	v1t := a.VX*-ny + a.VY*nx
	v2t := b.VX*-ny + b.VY*nx

	u1 := (v1n*(m1-m2) + 2*m2*v2n) / total
	u2 := (v2n*(m2-m1) + 2*m1*v1n) / total

	a.VX = u1*nx - v1t*ny
	a.VY = u1*ny + v1t*nx
	b.VX = u2*nx - v2t*ny
	b.VY = u2*ny + v2t*nx

	if overlap := a.Radius + b.Radius - dist; overlap > 0 {
		k := overlap / total
		a.X -= nx * k * m2
		a.Y -= ny * k * m2
		b.X += nx * k * m1
		b.Y += ny * k * m1
	}
	return true
}

// ballStep is the outcome of advancing one ball by a frame.
type ballStep int

const (
	ballInPlay ballStep = iota
	ballSaved           // left through the top while rising
	ballMissed          // fell past the bottom
)

// stepBall moves a ball, reflecting it off the side walls. bounced reports
// a side-wall reflection this frame.
func stepBall(b *Body, dt, size float64) (res ballStep, bounced bool) {
	b.Move(dt)
	if (b.X < b.Radius && b.VX < 0) || (b.X >= size-b.Radius && b.VX > 0) {
		b.VX = -b.VX
		bounced = true
	}
	switch {
	case b.Y <= -b.Radius && b.VY < 0:
		return ballSaved, bounced
	case b.Y >= size+b.Radius:
		return ballMissed, bounced
	}
	return ballInPlay, bounced
}
