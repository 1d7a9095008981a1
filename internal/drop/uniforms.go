package drop

// Gradient colors (#4a90e2 and #87ceeb).
var (
	ColorA = [3]float32{0x4a / 255.0, 0x90 / 255.0, 0xe2 / 255.0}
	ColorB = [3]float32{0x87 / 255.0, 0xce / 255.0, 0xeb / 255.0}
)

// Uniforms is the per-frame input of a raindrop renderer.
type Uniforms struct {
	Time             float32
	Resolution       [2]float32
	ColorA, ColorB   [3]float32
	WaterLevel       float32
	TargetWaterLevel float32
	LastImpactTime   float32
	JustHitWater     float32 // 0 or 1
	MouseClick       [2]float32
	ClickTime        float32
	DropBurst        float32 // 0 or 1
	BurstY           float32
}

// Uniforms snapshots the state for the renderer.
func (s *State) Uniforms() Uniforms {
	return Uniforms{
		Time:             float32(s.time),
		Resolution:       [2]float32{float32(s.width), float32(s.height)},
		ColorA:           ColorA,
		ColorB:           ColorB,
		WaterLevel:       float32(s.waterLevel),
		TargetWaterLevel: float32(s.targetWaterLevel),
		LastImpactTime:   float32(s.lastImpactTime),
		JustHitWater:     flag(s.justHitWater),
		MouseClick:       [2]float32{float32(s.clickX), float32(s.clickY)},
		ClickTime:        float32(s.burstStartTime),
		DropBurst:        flag(s.burstActive),
		BurstY:           float32(s.burstY),
	}
}

// Map keys the uniforms by their GLSL names.
func (u Uniforms) Map() map[string]any {
	return map[string]any{
		"uTime":             u.Time,
		"uResolution":       []any{u.Resolution[0], u.Resolution[1]},
		"uColorA":           []any{u.ColorA[0], u.ColorA[1], u.ColorA[2]},
		"uColorB":           []any{u.ColorB[0], u.ColorB[1], u.ColorB[2]},
		"uWaterLevel":       u.WaterLevel,
		"uTargetWaterLevel": u.TargetWaterLevel,
		"uLastImpactTime":   u.LastImpactTime,
		"uJustHitWater":     u.JustHitWater,
		"uMouseClick":       []any{u.MouseClick[0], u.MouseClick[1]},
		"uClickTime":        u.ClickTime,
		"uDropBurst":        u.DropBurst,
		"uBurstY":           u.BurstY,
	}
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
