package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"raindrop/internal/drop"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Scene program: one fullscreen quad shaded from the game uniforms.
	sceneProg uint32
	quadVAO   uint32
	quadVBO   uint32

	uTime             int32
	uResolution       int32
	uColorA           int32
	uColorB           int32
	uWaterLevel       int32
	uTargetWaterLevel int32
	uLastImpactTime   int32
	uJustHitWater     int32
	uMouseClick       int32
	uClickTime        int32
	uDropBurst        int32
	uBurstY           int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	sceneProg, err := linkProgram("scene", sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	r := &Renderer{sceneProg: sceneProg}

	// Two triangles covering clip space.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	quadVerts := [12]float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = vao
	r.quadVBO = vbo

	gl.UseProgram(sceneProg)
	loc := func(name string) int32 {
		return gl.GetUniformLocation(sceneProg, gl.Str(name+"\x00"))
	}
	r.uTime = loc("uTime")
	r.uResolution = loc("uResolution")
	r.uColorA = loc("uColorA")
	r.uColorB = loc("uColorB")
	r.uWaterLevel = loc("uWaterLevel")
	r.uTargetWaterLevel = loc("uTargetWaterLevel")
	r.uLastImpactTime = loc("uLastImpactTime")
	r.uJustHitWater = loc("uJustHitWater")
	r.uMouseClick = loc("uMouseClick")
	r.uClickTime = loc("uClickTime")
	r.uDropBurst = loc("uDropBurst")
	r.uBurstY = loc("uBurstY")

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sceneProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// DrawScene uploads the uniforms and shades the whole framebuffer.
func (r *Renderer) DrawScene(u drop.Uniforms, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.sceneProg)
	gl.BindVertexArray(r.quadVAO)

	gl.Uniform1f(r.uTime, u.Time)
	gl.Uniform2f(r.uResolution, u.Resolution[0], u.Resolution[1])
	gl.Uniform3f(r.uColorA, u.ColorA[0], u.ColorA[1], u.ColorA[2])
	gl.Uniform3f(r.uColorB, u.ColorB[0], u.ColorB[1], u.ColorB[2])
	gl.Uniform1f(r.uWaterLevel, u.WaterLevel)
	gl.Uniform1f(r.uTargetWaterLevel, u.TargetWaterLevel)
	gl.Uniform1f(r.uLastImpactTime, u.LastImpactTime)
	gl.Uniform1f(r.uJustHitWater, u.JustHitWater)
	gl.Uniform2f(r.uMouseClick, u.MouseClick[0], u.MouseClick[1])
	gl.Uniform1f(r.uClickTime, u.ClickTime)
	gl.Uniform1f(r.uDropBurst, u.DropBurst)
	gl.Uniform1f(r.uBurstY, u.BurstY)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
