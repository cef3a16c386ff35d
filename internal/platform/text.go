package platform

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"ballattax/internal/gfx"
)

// Font atlas layout: printable ASCII in a 16-column grid of fixed cells.
const (
	FontCols   = 16
	FontFirst  = 32
	FontLast   = 126
	FontCellW  = 7
	FontCellH  = 13
	FontAscent = 11
	FontRows   = (FontLast - FontFirst + FontCols) / FontCols
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// buildFontAtlas rasterizes basicfont's 7x13 face into a white-on-clear
// atlas, one glyph per cell.
func buildFontAtlas() *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for ch := rune(FontFirst); ch <= FontLast; ch++ {
		x, y := glyphCell(ch)
		d.Dot = fixed.P(x, y+FontAscent)
		d.DrawString(string(ch))
	}
	return atlas
}

// glyphCell returns the top-left pixel of ch's atlas cell.
func glyphCell(ch rune) (int, int) {
	i := int(ch) - FontFirst
	return (i % FontCols) * FontCellW, (i / FontCols) * FontCellH
}

// TextWidth returns the width in pixels of a single line at scale.
func TextWidth(text string, scale float64) float64 {
	n := 0
	for range text {
		n++
	}
	return float64(n*FontCellW) * scale
}

// textOrigin returns the top-left of a line whose anchor is (x, baseline).
func textOrigin(x, baseline float64, text string, scale float64, align gfx.Align) (float64, float64) {
	switch align {
	case gfx.AlignCenter:
		x -= TextWidth(text, scale) / 2
	case gfx.AlignRight:
		x -= TextWidth(text, scale)
	}
	return x, baseline - FontAscent*scale
}
