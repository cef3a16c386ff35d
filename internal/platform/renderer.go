package platform

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"ballattax/internal/gfx"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Every vertex is pos(2) + local-or-uv(2) + color(4).
const (
	vertexFloats = 8
	vertexStride = vertexFloats * 4
	initialVerts = 4096
)

type batchKind int

const (
	batchNone batchKind = iota
	batchShapes
	batchText
)

// Renderer implements gfx.Surface on top of two streaming triangle batches,
// one for flat shapes and one for text. Switching between them flushes the
// pending batch so draw order is kept.
type Renderer struct {
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	shapeURes int32
	shapeBuf  []float32

	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	pending batchKind
	color   gfx.RGBA
	winW    int
	winH    int
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	r := &Renderer{shapeProg: shapeProg, color: gfx.Palette.White}
	r.shapeVAO, r.shapeVBO = newStreamBuffer()
	gl.UseProgram(shapeProg)
	r.shapeURes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))

	if err := r.initFont(); err != nil {
		r.Destroy()
		return nil, err
	}
	gl.BindVertexArray(0)
	return r, nil
}

// newStreamBuffer allocates a VAO/VBO pair for the shared vertex layout.
func newStreamBuffer() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, initialVerts*vertexStride, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aLocal / aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, vertexStride, glOffset(4*4))
	return vao, vbo
}

// initFont uploads the glyph atlas and sets up the text pipeline.
func (r *Renderer) initFont() error {
	atlas := buildFontAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	r.textVAO, r.textVBO = newStreamBuffer()
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer. Draw calls are in window pixels
// (winW x winH); the framebuffer may be larger on high-DPI displays.
func (r *Renderer) BeginFrame(winW, winH, fbW, fbH int, clear gfx.RGBA) {
	r.winW, r.winH = winW, winH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb, ca := clear.Floats()
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// EndFrame draws whatever is still batched.
func (r *Renderer) EndFrame() {
	r.flush()
	gl.Disable(gl.BLEND)
}

func (r *Renderer) SetColor(c gfx.RGBA) { r.color = c }

func (r *Renderer) FillRect(x, y, w, h float64) {
	r.switchTo(batchShapes)
	r.shapeBuf = appendQuad(r.shapeBuf, x, y, w, h, 0, 0, 0, 0, r.color)
}

func (r *Renderer) FillCircle(x, y, radius float64) {
	if radius <= 0 {
		return
	}
	r.switchTo(batchShapes)
	r.shapeBuf = appendQuad(r.shapeBuf, x-radius, y-radius, 2*radius, 2*radius, -1, -1, 1, 1, r.color)
}

func (r *Renderer) FillText(x, y float64, text string, scale float64, align gfx.Align) {
	if scale <= 0 || text == "" {
		return
	}
	r.switchTo(batchText)
	r.textBuf = appendText(r.textBuf, x, y, text, scale, align, r.color)
}

func (r *Renderer) switchTo(k batchKind) {
	if r.pending != k {
		r.flush()
		r.pending = k
	}
}

func (r *Renderer) flush() {
	switch r.pending {
	case batchShapes:
		r.drawBatch(r.shapeProg, r.shapeVAO, r.shapeVBO, r.shapeURes, r.shapeBuf)
		r.shapeBuf = r.shapeBuf[:0]
	case batchText:
		gl.ActiveTexture(gl.TEXTURE2)
		gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
		r.drawBatch(r.textProg, r.textVAO, r.textVBO, r.textURes, r.textBuf)
		gl.ActiveTexture(gl.TEXTURE0)
		r.textBuf = r.textBuf[:0]
	}
	r.pending = batchNone
}

func (r *Renderer) drawBatch(prog, vao, vbo uint32, uRes int32, buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(prog)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.Uniform2f(uRes, float32(r.winW), float32(r.winH))
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/vertexFloats))
	gl.BindVertexArray(0)
}

// appendQuad adds two triangles covering (x,y,w,h). (u0,v0)-(u1,v1) is the
// second attribute across the quad: texture coordinates for text, the local
// disc coordinate for circles.
func appendQuad(buf []float32, x, y, w, h, u0, v0, u1, v1 float64, c gfx.RGBA) []float32 {
	cr, cg, cb, ca := c.Floats()
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	s0, t0, s1, t1 := float32(u0), float32(v0), float32(u1), float32(v1)
	// Two triangles: TL, TR, BL then TR, BR, BL.
	return append(buf,
		x0, y0, s0, t0, cr, cg, cb, ca,
		x1, y0, s1, t0, cr, cg, cb, ca,
		x0, y1, s0, t1, cr, cg, cb, ca,
		x1, y0, s1, t0, cr, cg, cb, ca,
		x1, y1, s1, t1, cr, cg, cb, ca,
		x0, y1, s0, t1, cr, cg, cb, ca,
	)
}

// appendText lays out one line of glyph quads. Characters outside the atlas
// still advance the pen.
func appendText(buf []float32, x, baseline float64, text string, scale float64, align gfx.Align, c gfx.RGBA) []float32 {
	px, py := textOrigin(x, baseline, text, scale, align)
	w := FontCellW * scale
	h := FontCellH * scale
	for _, ch := range text {
		if ch > FontFirst && ch <= FontLast {
			cx, cy := glyphCell(ch)
			u0 := float64(cx) / FontAtlasW
			v0 := float64(cy) / FontAtlasH
			u1 := float64(cx+FontCellW) / FontAtlasW
			v1 := float64(cy+FontCellH) / FontAtlasH
			buf = appendQuad(buf, px, py, w, h, u0, v0, u1, v1, c)
		}
		px += w
	}
	return buf
}
