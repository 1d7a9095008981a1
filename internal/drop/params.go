package drop

// Fall cycle.
const (
	CyclePeriod = 1.4 // cycle length in cycle units
	SpeedFactor = 0.5 // cycle units per second
	DropStartY  = 1.2 // drop height at cycle start (normalized, above the top edge)
	ResetWindow = 0.1 // cycle time below which a wrap counts as a new fall
)

// Water.
const (
	BaseWaterPixels   = 50.0 // resting water line height in framebuffer pixels
	WaterRisePerDrop  = 0.05 // target level increase per landed drop
	WaterEaseRate     = 2.0  // 1/WaterEaseRate seconds to ease toward the target
	GameOverWaterLine = 0.9
)

// Catch region, oversized relative to the drop on purpose.
const (
	HitRadiusX = 0.4
	HitRadiusY = 0.3
	HitCenterX = 0.5
)

// Defaults for the render surface until the frontend reports its size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// None marks unset time and position fields.
const None = -1.0
