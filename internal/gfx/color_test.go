package gfx

import "testing"

func TestHexRoundTrip(t *testing.T) {
	c := Hex(0x4080FFAA)
	if c.R != 0x40 || c.G != 0x80 || c.B != 0xFF || c.A != 0xAA {
		t.Fatalf("unexpected channels: %+v", c)
	}
	if got := c.Uint32(); got != 0x4080FFAA {
		t.Fatalf("pack mismatch: got=%#08x", got)
	}
}

func TestFloatsNormalized(t *testing.T) {
	r, g, b, a := Hex(0xFF00807F).Floats()
	if r != 1 || g != 0 {
		t.Fatalf("r/g off: %f %f", r, g)
	}
	if b < 0.5 || b > 0.51 || a < 0.49 || a > 0.5 {
		t.Fatalf("b/a off: %f %f", b, a)
	}
}
