package gfx

// RGBA is an 8-bit per channel colour with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Hex unpacks a 0xRRGGBBAA value.
func Hex(v uint32) RGBA {
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// Uint32 packs the colour back into 0xRRGGBBAA.
func (c RGBA) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Floats returns the channels normalized to [0,1] for GL uploads.
func (c RGBA) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

var Palette = struct {
	Black     RGBA
	White     RGBA
	MenuBG    RGBA
	MenuDim   RGBA
	TitleTint RGBA
	HighScore RGBA
	Score     RGBA
	Ball      RGBA
	Player    RGBA
}{
	Black:     Hex(0x000000FF),
	White:     Hex(0xFFFFFFFF),
	MenuBG:    Hex(0x4080FFFF),
	MenuDim:   Hex(0xFFFFFF80),
	TitleTint: Hex(0xFFFFFF55),
	HighScore: Hex(0xFFFFFF55),
	Score:     Hex(0xFFFFFFAA),
	Ball:      Hex(0x000000FF),
	Player:    Hex(0xFFFFFFFF),
}
