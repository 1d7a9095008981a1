// Package web adapts the drop state to a browser host that drives it with
// requestAnimationFrame timestamps.
package web

import (
	"math"

	"raindrop/internal/drop"
	"raindrop/internal/log"
)

// Callbacks are optional host notifications.
type Callbacks struct {
	Score    func(score int)
	GameOver func(score int)
}

// Session converts host milliseconds into session seconds and forwards
// drop events to the host. The host calls it from a single thread.
type Session struct {
	state    *drop.State
	cb       Callbacks
	log      *log.Logger
	originMs float64
	width    int
	height   int
}

func NewSession(cb Callbacks, logger *log.Logger) *Session {
	s := &Session{cb: cb, log: logger, width: drop.DefaultWidth, height: drop.DefaultHeight}
	s.Reset()
	return s
}

// Reset starts a new session; its clock starts at the next Frame or Hit.
func (s *Session) Reset() {
	bus := drop.NewEventBus()
	bus.Subscribe(drop.EventCatch, func(e drop.Event) {
		if s.cb.Score != nil {
			s.cb.Score(e.Score)
		}
	})
	bus.Subscribe(drop.EventGameOver, func(e drop.Event) {
		s.log.Infof("game over: score %d", e.Score)
		if s.cb.GameOver != nil {
			s.cb.GameOver(e.Score)
		}
	})
	s.state = drop.NewState(bus)
	s.state.Resize(s.width, s.height)
	s.originMs = drop.None
}

func (s *Session) seconds(ms float64) float64 {
	if s.originMs == drop.None {
		s.originMs = ms
	}
	return (ms - s.originMs) / 1000
}

// Frame advances to host time ms and returns the uniforms keyed by GLSL name.
// A non-finite ms leaves the state where it is.
func (s *Session) Frame(ms float64) map[string]any {
	if finite(ms) {
		s.state.Frame(s.seconds(ms))
	}
	return s.state.Uniforms().Map()
}

// Hit tests a click at normalized (x, y), origin bottom-left. Missing
// coordinates (NaN) clamp to 0; a missing timestamp uses the last frame time.
func (s *Session) Hit(x, y, ms float64) bool {
	t := s.state.Time()
	if finite(ms) {
		t = s.seconds(ms)
	}
	return s.state.Hit(x, y, t)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Resize records the canvas size; it survives Reset.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.width, s.height = w, h
	s.state.Resize(w, h)
}

func (s *Session) State() *drop.State { return s.state }
