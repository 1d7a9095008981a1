package tui

import (
	"math"

	"raindrop/internal/drop"
)

// Color is a linear RGB triple in 0..1.
type Color struct{ R, G, B float64 }

func mix(a, b Color, t float64) Color {
	return Color{a.R + (b.R-a.R)*t, a.G + (b.G-a.G)*t, a.B + (b.B-a.B)*t}
}

var (
	waterColor = Color{0.2, 0.4, 0.8}
	dropColor  = Color{0.7, 0.8, 0.9}
)

// DropSize is the drop radius in normalized height; terminal pixels are
// coarse so it is larger than the desktop shader's.
const DropSize = 0.06

// Shader evaluates the scene at normalized points for one frame of uniforms.
type Shader struct {
	u         drop.Uniforms
	t         float64
	waterLine float64
	dropY     float64
	aspect    float64 // width / height of the surface
}

func NewShader(u drop.Uniforms) *Shader {
	t := float64(u.Time)
	level := lerp(float64(u.WaterLevel), float64(u.TargetWaterLevel),
		drop.Smoothstep(0, 1, (t-float64(u.LastImpactTime))*drop.WaterEaseRate))
	aspect := 1.0
	if u.Resolution[1] > 0 {
		aspect = float64(u.Resolution[0]) / float64(u.Resolution[1])
	}
	return &Shader{
		u:         u,
		t:         t,
		waterLine: drop.BaseWaterPixels/float64(u.Resolution[1]) + level,
		dropY:     drop.DropY(t),
		aspect:    aspect,
	}
}

// WaterLine is the animated water line used for this frame.
func (s *Shader) WaterLine() float64 { return s.waterLine }

// At returns the color at normalized (x, y), origin bottom-left.
func (s *Shader) At(x, y float64) Color {
	noise := math.Sin(y*10+s.t) * 0.1
	a, b := s.u.ColorA, s.u.ColorB
	sky := mix(Color{float64(a[0]), float64(a[1]), float64(a[2])},
		Color{float64(b[0]), float64(b[1]), float64(b[2])}, y+noise)
	col := mix(waterColor, sky, s.surface(x, y))
	return mix(col, dropColor, clamp01(s.raindrop(x, y)))
}

func (s *Shader) surface(x, y float64) float64 {
	wave := s.curve(x, 6, 0.005) + s.curve(x, 12, 0.003) + s.curve(x, 18, 0.002)
	return drop.Smoothstep(0, 0.002, y-s.waterLine-wave)
}

func (s *Shader) curve(x, frequency, amplitude float64) float64 {
	return math.Sin(x*frequency+s.t) * amplitude
}

func (s *Shader) raindrop(x, y float64) float64 {
	dropY := s.dropY
	landed := dropY < s.waterLine

	if !landed && s.u.DropBurst > 0.5 {
		return s.burst(x, y, float64(s.u.MouseClick[0]), float64(s.u.BurstY), DropSize*1.5, s.t-float64(s.u.ClickTime))
	}
	if landed {
		dropY = s.waterLine
	}

	// Horizontal distances are stretched by the aspect so the drop stays round.
	px := (x - 0.5) * s.aspect / DropSize
	py := (y - dropY) / DropSize
	dist := dropY - s.waterLine
	if dist > 0 && dist < 0.1 {
		k := 1 - dist*10
		py *= 1 - k*0.3
		px *= 1 + k*0.4
	}

	var shape float64
	if py < 0 {
		shape = math.Hypot(px, py)
	} else {
		width := math.Max(1-py*0.8, 0.1)
		shape = math.Abs(px)/width + py
	}

	splash := 0.0
	if s.u.JustHitWater > 0.5 || (landed && dist > -0.001) {
		splash = s.burst(x, y, 0.5, s.waterLine, DropSize, s.t-float64(s.u.LastImpactTime))
	}
	body := 0.0
	if !landed {
		body = drop.Smoothstep(1, 0.8, shape)
	}
	return body + splash
}

// burst is twelve particles fanning upward from (cx, cy) over half a second.
func (s *Shader) burst(x, y, cx, cy, size, since float64) float64 {
	if since < 0 || since >= 0.5 {
		return 0
	}
	phase := since * 2
	fade := 1 - drop.Smoothstep(0, 1, phase)
	b := 0.0
	for i := 0.0; i < 12; i++ {
		angle := i/12*6.28 + phase*2
		ox := math.Cos(angle) * phase * 0.2
		oy := math.Abs(math.Sin(angle)) * 0.5 * phase * 0.2
		d := math.Hypot((x-cx-ox)*s.aspect, y-cy-oy)
		b += drop.Smoothstep(size*0.3, size*0.24, d) * fade
	}
	return b
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
