package game

// ViewportUnits is the number of scale units across the square play area.
const ViewportUnits = 30

// Viewport is the square play area inside the window. Simulation runs in
// local coordinates [0, Size) on both axes; OX/OY place it on screen.
type Viewport struct {
	OX, OY float64 // window-pixel offset of the local origin
	Size   float64 // side length in pixels
	Unit   float64 // Size / ViewportUnits
}

// FitViewport centres the largest square that fits a winW x winH window.
func FitViewport(winW, winH int) Viewport {
	w := float64(max(winW, 0))
	h := float64(max(winH, 0))
	size := min(w, h)
	return Viewport{
		OX:   (w - size) / 2,
		OY:   (h - size) / 2,
		Size: size,
		Unit: size / ViewportUnits,
	}
}

// Pan maps a local x to a stereo position in [-1,1].
func (v Viewport) Pan(x float64) float64 { return panAt(x, v.Size) }

// ToScreen converts local coordinates to window pixels.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return v.OX + x, v.OY + y
}

// Clamp keeps b fully inside the play area.
func (v Viewport) Clamp(b *Body) {
	b.X = clampF(b.X, b.Radius, v.Size-b.Radius)
	b.Y = clampF(b.Y, b.Radius, v.Size-b.Radius)
}
