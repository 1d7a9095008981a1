package drop

import "math"

// Hit handles a pointer event at normalized (x, y), origin bottom-left, at
// time t. It reports whether the drop was caught. Misses change nothing.
func (s *State) Hit(x, y, t float64) bool {
	if s.gameOver || s.burstActive {
		return false
	}
	x, y = unit(x), unit(y)

	dropY := DropY(t)
	if dropY <= s.WaterLineY(t) {
		return false
	}
	if math.Abs(x-HitCenterX) >= HitRadiusX || math.Abs(y-dropY) >= HitRadiusY {
		return false
	}

	s.burstActive = true
	s.burstStartTime = t
	s.burstY = dropY
	s.burstCycle = cycleIndex(t)
	s.clickX, s.clickY = HitCenterX, dropY
	s.score++
	s.emit(Event{Type: EventCatch, Time: t, Y: dropY, Score: s.score})
	return true
}
