package drop

// State is one game session. It is not safe for concurrent use: the frame
// callback and the input handler must run on the same goroutine.
type State struct {
	// Water.
	waterLevel       float64
	targetWaterLevel float64
	lastImpactTime   float64
	justHitWater     bool

	// Catch.
	burstActive    bool
	burstStartTime float64
	burstY         float64
	burstCycle     int // cycle index of the catch
	clickX, clickY float64

	score    int
	gameOver bool

	// Edge detection memory from the previous frame.
	lastDropY     float64
	lastCycleTime float64

	time          float64
	width, height float64

	// Bus receives splash, catch and game over notifications. May be nil.
	Bus *EventBus
}

// NewState returns a fresh session with empty water and zero score.
func NewState(bus *EventBus) *State {
	return &State{
		lastImpactTime: None,
		burstStartTime: None,
		burstY:         None,
		clickX:         None,
		clickY:         None,
		lastDropY:      DropStartY,
		width:          DefaultWidth,
		height:         DefaultHeight,
		Bus:            bus,
	}
}

// Resize records the render surface size in pixels. The base water line
// is a fixed pixel height, so it moves in normalized space with the height.
func (s *State) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = float64(width)
	s.height = float64(height)
}

func (s *State) Score() int                { return s.score }
func (s *State) GameOver() bool            { return s.gameOver }
func (s *State) WaterLevel() float64       { return s.waterLevel }
func (s *State) TargetWaterLevel() float64 { return s.targetWaterLevel }
func (s *State) LastImpactTime() float64   { return s.lastImpactTime }
func (s *State) JustHitWater() bool        { return s.justHitWater }
func (s *State) BurstActive() bool         { return s.burstActive }
func (s *State) BurstY() float64           { return s.burstY }
func (s *State) BurstStartTime() float64   { return s.burstStartTime }

// Time is the last frame time. It stops advancing at game over.
func (s *State) Time() float64 { return s.time }

// Resolution returns the render surface size in pixels.
func (s *State) Resolution() (float64, float64) { return s.width, s.height }

func (s *State) emit(e Event) {
	if s.Bus != nil {
		s.Bus.Emit(e)
	}
}
