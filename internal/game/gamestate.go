package game

import (
	"raindrop/internal/drop"
	"raindrop/internal/log"
	"raindrop/internal/sfx"
)

type GameState int

const (
	StatePlaying  GameState = iota // drop cycle running
	StateGameOver                  // water reached the top, modal shown
)

// GameSession wraps one drop.State with the presentation timers the HUD
// needs. Restart replaces the drop state; nothing carries over.
type GameSession struct {
	State GameState
	Drop  *drop.State
	Score int

	ScorePopAt float64 // frame time of the last catch, drop.None if none
	GameOverAt float64 // frame time of game over, drop.None while playing
	Restarts   int

	// Now is the frame clock; Frame and Hit use it so HUD timers share the drop's time base.
	Now float64

	log    *log.Logger
	sound  func(sfx.Kind)
	width  int
	height int
}

// NewGameSession starts a session. sound may be nil.
func NewGameSession(logger *log.Logger, sound func(sfx.Kind)) *GameSession {
	s := &GameSession{log: logger, sound: sound, width: drop.DefaultWidth, height: drop.DefaultHeight}
	s.reset()
	return s
}

func (s *GameSession) reset() {
	bus := drop.NewEventBus()
	bus.Subscribe(drop.EventSplash, func(e drop.Event) {
		s.log.Debugf("splash at t=%.2f water line %.3f", e.Time, e.Y)
		s.play(sfx.Splash)
	})
	bus.Subscribe(drop.EventCatch, func(e drop.Event) {
		s.Score = e.Score
		s.ScorePopAt = s.Now
		s.log.Debugf("catch at t=%.2f y=%.3f score %d", e.Time, e.Y, e.Score)
		s.play(sfx.Catch)
	})
	bus.Subscribe(drop.EventGameOver, func(e drop.Event) {
		s.State = StateGameOver
		s.GameOverAt = s.Now
		s.log.Infof("game over: score %d", e.Score)
		s.play(sfx.GameOver)
	})

	s.Drop = drop.NewState(bus)
	s.Drop.Resize(s.width, s.height)
	s.State = StatePlaying
	s.Score = 0
	s.ScorePopAt = drop.None
	s.GameOverAt = drop.None
}

// Restart begins a fresh session after game over.
func (s *GameSession) Restart() {
	if s.State != StateGameOver {
		return
	}
	s.Restarts++
	s.log.Infof("restart #%d", s.Restarts)
	s.reset()
}

// Resize forwards the framebuffer size to the drop state.
func (s *GameSession) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	s.Drop.Resize(width, height)
}

// Frame advances the session to time now (seconds).
func (s *GameSession) Frame(now float64) {
	s.Now = now
	s.Drop.Frame(now)
}

// Hit forwards a click at normalized (x, y) at the current frame time.
func (s *GameSession) Hit(x, y float64) bool {
	return s.Drop.Hit(x, y, s.Now)
}

// ScoreScale is the HUD score size multiplier, popping briefly after a catch.
func (s *GameSession) ScoreScale() float32 {
	if s.ScorePopAt != drop.None && s.Now-s.ScorePopAt < ScorePopDuration {
		return ScorePopScale
	}
	return 1
}

// ModalProgress is 0 when game over begins and 1 once the panel has settled.
func (s *GameSession) ModalProgress() float64 {
	if s.State != StateGameOver {
		return 0
	}
	return clampF((s.Now-s.GameOverAt)/ModalDuration, 0, 1)
}

func (s *GameSession) play(kind sfx.Kind) {
	if s.sound != nil {
		s.sound(kind)
	}
}
