// Package gfx holds the drawing collaborator used by scenes. The host
// implements Surface; scenes only issue draw calls against it.
package gfx

// Align selects the horizontal anchor of FillText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is an immediate-mode drawing target in window pixel coordinates.
type Surface interface {
	SetColor(c RGBA)
	FillRect(x, y, w, h float64)
	FillCircle(x, y, radius float64)
	// FillText draws text with its baseline at y. scale multiplies the
	// host's base glyph size.
	FillText(x, y float64, text string, scale float64, align Align)
}
