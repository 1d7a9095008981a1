package drop

import (
	"math"
	"math/rand"
	"testing"
)

func TestHitCatchesAirborneDrop(t *testing.T) {
	bus := NewEventBus()
	s := NewState(bus)
	var caught []Event
	bus.Subscribe(EventCatch, func(e Event) { caught = append(caught, e) })

	runFrames(s, 0, 60)
	tm := 1.0
	y := DropY(tm)
	if !s.Hit(0.5, y, tm) {
		t.Fatalf("hit at the drop was rejected")
	}
	if !s.BurstActive() || s.Score() != 1 {
		t.Fatalf("burst %v score %d, want true 1", s.BurstActive(), s.Score())
	}
	if !near(s.BurstY(), y) || s.BurstStartTime() != tm {
		t.Fatalf("burst at y=%v t=%v, want y=%v t=%v", s.BurstY(), s.BurstStartTime(), y, tm)
	}
	if s.TargetWaterLevel() != 0 {
		t.Fatalf("catch changed target water to %v", s.TargetWaterLevel())
	}
	if len(caught) != 1 || caught[0].Score != 1 {
		t.Fatalf("catch events = %+v", caught)
	}
}

func TestHitAcceptedOncePerCycle(t *testing.T) {
	s := NewState(nil)
	runFrames(s, 0, 60)
	if !s.Hit(0.5, DropY(1.0), 1.0) {
		t.Fatalf("first hit rejected")
	}
	if s.Hit(0.5, DropY(1.1), 1.1) {
		t.Fatalf("second hit in the same cycle accepted")
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}

	// The caught drop never lands.
	runFrames(s, 61, 167)
	if s.TargetWaterLevel() != 0 || s.LastImpactTime() != None {
		t.Fatalf("caught drop raised the water: target %v impact %v", s.TargetWaterLevel(), s.LastImpactTime())
	}

	// Next cycle starts at t=2.8.
	runFrames(s, 168, 180)
	if s.BurstActive() {
		t.Fatalf("burst not cleared by the new cycle")
	}
	if !s.Hit(0.5, 1.0, 3.0) {
		t.Fatalf("hit in the next cycle rejected")
	}
	if s.Score() != 2 {
		t.Fatalf("score = %d, want 2", s.Score())
	}
}

func TestCatchAfterWrapSurvivesResetFrame(t *testing.T) {
	s := NewState(nil)
	runFrames(s, 0, 167) // last frame at t=2.783, just before the wrap at 2.8
	target := s.TargetWaterLevel()

	// Input timestamped after the wrap arrives before the next frame.
	if !s.Hit(0.5, 1, 2.81) {
		t.Fatalf("hit on the new drop rejected")
	}
	s.Frame(169.0 / frameRate)
	if !s.BurstActive() {
		t.Fatalf("reset frame cleared a catch from the same cycle")
	}
	if s.Hit(0.5, 1, 2.83) {
		t.Fatalf("same drop caught twice")
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}

	// The caught drop does not land; the following cycle clears the burst.
	runFrames(s, 170, 335)
	if s.TargetWaterLevel() != target {
		t.Fatalf("caught drop raised the water: target %v, want %v", s.TargetWaterLevel(), target)
	}
	runFrames(s, 336, 345)
	if s.BurstActive() {
		t.Fatalf("burst not cleared by the next cycle")
	}
}

func TestCycleIndexMatchesWrap(t *testing.T) {
	cases := []struct {
		t    float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{2.79, 0},
		{2.81, 1},
		{5.59, 1},
		{5.61, 2},
	}
	for _, c := range cases {
		if got := cycleIndex(c.t); got != c.want {
			t.Errorf("cycleIndex(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestHitMisses(t *testing.T) {
	cases := []struct {
		name    string
		x, y, t float64
	}{
		{"far below", 0.5, 0.1, 1.0},
		{"far above", 0.5, 1.0, 2.0},
		{"left edge", 0.05, 0.7, 1.0},
		{"right edge", 0.95, 0.7, 1.0},
		{"off screen left", -5, 0.7, 1.0},
		{"nan y", 0.5, math.NaN(), 1.0},
		{"drop under water", 0.5, 0.0, 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(nil)
			runFrames(s, 0, int(c.t*frameRate))
			before := *s
			if s.Hit(c.x, c.y, c.t) {
				t.Fatalf("Hit(%v, %v, %v) accepted", c.x, c.y, c.t)
			}
			if *s != before {
				t.Fatalf("miss changed state")
			}
		})
	}
}

func TestHitClampsCoordinates(t *testing.T) {
	s := NewState(nil)
	// Drop is at 1.2 at t=0; y=5 clamps to 1, within the vertical radius.
	if !s.Hit(0.5, 5, 0) {
		t.Fatalf("clamped hit rejected")
	}
}

func TestInvariantsUnderRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	s := NewState(nil)
	lastTarget, lastScore := 0.0, 0
	for i := 0; i < 20000 && !s.GameOver(); i++ {
		tm := float64(i) / frameRate
		s.Frame(tm)
		if r.Intn(40) == 0 {
			s.Hit(r.Float64()*1.2-0.1, r.Float64()*1.2-0.1, tm)
		}
		if s.WaterLevel() > s.TargetWaterLevel() {
			t.Fatalf("t=%v: water %v above target %v", tm, s.WaterLevel(), s.TargetWaterLevel())
		}
		if s.TargetWaterLevel() < lastTarget {
			t.Fatalf("t=%v: target decreased", tm)
		}
		if d := s.TargetWaterLevel() - lastTarget; d != 0 && !near(d, WaterRisePerDrop) {
			t.Fatalf("t=%v: target rose by %v", tm, d)
		}
		if s.Score() < lastScore || s.Score() > lastScore+1 {
			t.Fatalf("t=%v: score jumped from %d to %d", tm, lastScore, s.Score())
		}
		lastTarget, lastScore = s.TargetWaterLevel(), s.Score()
	}
}
