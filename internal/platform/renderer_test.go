package platform

import (
	"testing"

	"ballattax/internal/gfx"
)

func TestAppendQuadCoversRect(t *testing.T) {
	buf := appendQuad(nil, 10, 20, 30, 40, -1, -1, 1, 1, gfx.Hex(0xFF000080))
	if len(buf) != 6*vertexFloats {
		t.Fatalf("vertex floats: got %d", len(buf))
	}
	minX, minY, maxX, maxY := buf[0], buf[1], buf[0], buf[1]
	for i := 0; i < len(buf); i += vertexFloats {
		minX, maxX = min(minX, buf[i]), max(maxX, buf[i])
		minY, maxY = min(minY, buf[i+1]), max(maxY, buf[i+1])
		if buf[i+4] != 1 || buf[i+5] != 0 || buf[i+7] != float32(0x80)/255 {
			t.Fatalf("vertex %d colour: %v", i/vertexFloats, buf[i+4:i+8])
		}
	}
	if minX != 10 || minY != 20 || maxX != 40 || maxY != 60 {
		t.Fatalf("bounds: (%f,%f)-(%f,%f)", minX, minY, maxX, maxY)
	}
	// The first vertex is the top-left corner of the local disc square.
	if buf[2] != -1 || buf[3] != -1 {
		t.Fatalf("local coordinate: %v", buf[2:4])
	}
}

func TestTextOriginAlignment(t *testing.T) {
	w := TextWidth("abcd", 2)
	if w != 4*FontCellW*2 {
		t.Fatalf("width: got %f", w)
	}
	x, y := textOrigin(100, 50, "abcd", 2, gfx.AlignLeft)
	if x != 100 || y != 50-FontAscent*2 {
		t.Fatalf("left: (%f,%f)", x, y)
	}
	if x, _ := textOrigin(100, 50, "abcd", 2, gfx.AlignCenter); x != 100-w/2 {
		t.Fatalf("center: %f", x)
	}
	if x, _ := textOrigin(100, 50, "abcd", 2, gfx.AlignRight); x != 100-w {
		t.Fatalf("right: %f", x)
	}
}

func TestAppendTextSkipsSpaces(t *testing.T) {
	buf := appendText(nil, 0, 20, "a b", 1, gfx.AlignLeft, gfx.Palette.White)
	if len(buf) != 2*6*vertexFloats {
		t.Fatalf("quads: got %d floats", len(buf))
	}
	// "b" starts two cells right of "a".
	if buf[6*vertexFloats] != 2*FontCellW {
		t.Fatalf("second glyph x: %f", buf[6*vertexFloats])
	}
}

func TestFontAtlasHasGlyphs(t *testing.T) {
	atlas := buildFontAtlas()
	if b := atlas.Bounds(); b.Dx() != FontAtlasW || b.Dy() != FontAtlasH {
		t.Fatalf("atlas size: %v", b)
	}
	lit := func(ch rune) int {
		x0, y0 := glyphCell(ch)
		n := 0
		for y := y0; y < y0+FontCellH; y++ {
			for x := x0; x < x0+FontCellW; x++ {
				if atlas.NRGBAAt(x, y).A != 0 {
					n++
				}
			}
		}
		return n
	}
	if lit(' ') != 0 {
		t.Fatalf("space cell is not empty")
	}
	for _, ch := range "BALLATTAX09" {
		if lit(ch) == 0 {
			t.Fatalf("glyph %q is empty", ch)
		}
	}
}
