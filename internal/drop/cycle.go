package drop

import "math"

// CycleTime is the phase of the fall cycle at time t, in [0, CyclePeriod).
func CycleTime(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	c := math.Mod(t*SpeedFactor, CyclePeriod)
	if c < 0 || c >= CyclePeriod {
		c = 0
	}
	return c
}

// cycleIndex counts completed cycles at time t, consistent with CycleTime
// at the wrap.
func cycleIndex(t float64) int {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	return int(math.Round((t*SpeedFactor - CycleTime(t)) / CyclePeriod))
}

// DropY is the drop's normalized height at time t.
func DropY(t float64) float64 {
	return DropStartY - CycleTime(t)
}

// BaseWaterLine is the empty water line in normalized height.
func (s *State) BaseWaterLine() float64 {
	return BaseWaterPixels / s.height
}

// AnimatedWaterLevel eases from waterLevel to targetWaterLevel after the last impact.
func (s *State) AnimatedWaterLevel(t float64) float64 {
	k := Smoothstep(0, 1, (t-s.lastImpactTime)*WaterEaseRate)
	return lerp(s.waterLevel, s.targetWaterLevel, k)
}

// WaterLineY is the normalized height below which the drop has landed.
func (s *State) WaterLineY(t float64) float64 {
	return s.BaseWaterLine() + s.AnimatedWaterLevel(t)
}

// Frame advances the drop cycle to time t. It is called once per rendered frame.
func (s *State) Frame(t float64) {
	if s.gameOver {
		return
	}
	s.time = t

	cycleTime := CycleTime(t)
	dropY := DropStartY - cycleTime
	waterLine := s.WaterLineY(t)

	if waterLine > GameOverWaterLine {
		s.gameOver = true
		s.emit(Event{Type: EventGameOver, Time: t, Y: waterLine, Score: s.score})
		return
	}

	// New fall: the phase wrapped from late in the cycle back to its start.
	// A catch timestamped after the wrap belongs to the new fall and stays.
	if cycleTime < ResetWindow && s.lastCycleTime > ResetWindow {
		if s.burstActive && s.burstCycle < cycleIndex(t) {
			s.burstActive = false
			s.burstStartTime = None
			s.burstY = None
			s.clickX, s.clickY = None, None
		}
		s.justHitWater = false
	}

	if dropY < waterLine && s.lastDropY >= waterLine && !s.burstActive {
		s.lastImpactTime = t
		s.justHitWater = true
		s.waterLevel = s.targetWaterLevel
		s.targetWaterLevel += WaterRisePerDrop
		s.emit(Event{Type: EventSplash, Time: t, Y: waterLine, Score: s.score})
	}

	s.lastDropY = dropY
	s.lastCycleTime = cycleTime
}
