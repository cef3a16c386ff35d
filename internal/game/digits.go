package game

import (
	"strconv"

	"ballattax/internal/gfx"
)

// digitGlyphs is a 4x5 dot matrix for 0-9. Each glyph is 4 columns wide
// (3 lit plus a spacer).
var digitGlyphs = [5]string{
	"*** **  *** *** * * *** *   *** *** *** ",
	"* *  *    *   * * * *   *     * * * * * ",
	"* *  *  *** *** *** *** ***   * *** *** ",
	"* *  *  *     *   *   * * *   * * *   * ",
	"***  *  *** ***   * *** ***   * ***   * ",
}

const glyphWidth = 4

// DrawNumber draws n as dot-matrix digits with its top-left at (x, y). Each
// dot is a (unit-1) square on a unit grid. Non-digit characters leave a gap.
func DrawNumber(s gfx.Surface, x, y, unit float64, n int) {
	dot := max(unit-1, 1)
	for _, ch := range strconv.Itoa(n) {
		if ch >= '0' && ch <= '9' {
			base := glyphWidth * int(ch-'0')
			for row, line := range digitGlyphs {
				for col := 0; col < glyphWidth; col++ {
					if line[base+col] != ' ' {
						s.FillRect(x+float64(col)*unit, y+float64(row)*unit, dot, dot)
					}
				}
			}
		}
		x += glyphWidth * unit
	}
}
