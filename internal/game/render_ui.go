package game

import (
	"fmt"
	"image"
	"image/draw"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fontAtlas rasterizes basicfont's 7x13 face into a FontCols x FontRows grid.
func fontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{Dst: img, Src: image.White, Face: basicfont.Face7x13}
	for c := 32; c < 127; c++ {
		d.Dot = fixed.P(cellOrigin(c).X, cellOrigin(c).Y+basicfont.Face7x13.Ascent)
		d.DrawString(string(rune(c)))
	}
	p := cellOrigin(SolidGlyph)
	draw.Draw(img, image.Rect(p.X, p.Y, p.X+FontCellW, p.Y+FontCellH), image.White, image.Point{}, draw.Src)
	return img
}

func cellOrigin(c int) image.Point {
	return image.Pt((c%FontCols)*FontCellW, (c/FontCols)*FontCellH)
}

// atlasUV returns the texture rectangle of atlas cell c.
func atlasUV(c int) (u0, v0, u1, v1 float32) {
	p := cellOrigin(c)
	u0 = float32(p.X) / FontAtlasW
	v0 = float32(p.Y) / FontAtlasH
	u1 = float32(p.X+FontCellW) / FontAtlasW
	v1 = float32(p.Y+FontCellH) / FontAtlasH
	return
}

// Text vertex layout: pos(2) uv(2) color(4).
const textVertexFloats = 8

var textAttribs = []struct{ size, offset int32 }{
	{2, 0}, // aPos
	{2, 2}, // aUV
	{4, 4}, // aColor
}

func uploadTexture(img *image.NRGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	for _, p := range [][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

// InitFont uploads the font atlas and builds the text program and vertex buffer.
func (r *Renderer) InitFont() error {
	r.fontTex = uploadTexture(fontAtlas())

	prog, err := linkProgram("text", textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 0)

	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride := int32(textVertexFloats * 4)
	for i, a := range textAttribs {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), a.size, gl.FLOAT, false, stride, glOffset(int(a.offset)*4))
	}
	gl.BindVertexArray(0)
	return nil
}

// glyphQuad queues atlas cell c stretched over the screen rectangle (sx, sy, w, h).
func (r *Renderer) glyphQuad(c int, sx, sy, w, h float32, col RGB, alpha float32) {
	u0, v0, u1, v1 := atlasUV(c)
	cr, cg, cb := col.Float()
	vertex := func(x, y, u, v float32) {
		r.textBuf = append(r.textBuf, x, y, u, v, cr, cg, cb, alpha)
	}
	vertex(sx, sy, u0, v0)
	vertex(sx+w, sy, u1, v0)
	vertex(sx, sy+h, u0, v1)
	vertex(sx+w, sy, u1, v0)
	vertex(sx+w, sy+h, u1, v1)
	vertex(sx, sy+h, u0, v1)
}

// DrawString queues one line of text with its top-left at (sx, sy).
// Runes outside printable ASCII are skipped but still advance.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB, alpha float32) {
	w, h := FontCellW*scale, FontCellH*scale
	x := float32(sx)
	for _, ch := range text {
		if ch >= 32 && ch < 127 {
			r.glyphQuad(int(ch), x, float32(sy), w, h, col, alpha)
		}
		x += w
	}
}

// DrawRect queues a filled rectangle using the atlas's solid cell.
func (r *Renderer) DrawRect(sx, sy, w, h int, col RGB, alpha float32) {
	r.glyphQuad(SolidGlyph, float32(sx), float32(sy), float32(w), float32(h), col, alpha)
}

// TextWidth is the width in pixels of a line drawn by DrawString.
func TextWidth(text string, scale float32) int {
	return int(float32(utf8.RuneCountInString(text)*FontCellW) * scale)
}

// FlushText draws the queued quads in order over the scene and empties the queue.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/textVertexFloats))
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
	r.textBuf = r.textBuf[:0]
}
