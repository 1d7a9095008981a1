package game

import (
	"io"
	"testing"

	"raindrop/internal/drop"
	"raindrop/internal/log"
	"raindrop/internal/sfx"
)

func newTestSession(played *[]sfx.Kind) *GameSession {
	return NewGameSession(log.New(io.Discard, log.LevelDebug), func(k sfx.Kind) {
		*played = append(*played, k)
	})
}

func TestSessionCatchUpdatesScoreAndPops(t *testing.T) {
	var played []sfx.Kind
	s := newTestSession(&played)
	s.Frame(1.0)
	if !s.Hit(0.5, drop.DropY(1.0)) {
		t.Fatalf("catch rejected")
	}
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	if s.ScoreScale() != ScorePopScale {
		t.Fatalf("score should pop right after a catch")
	}
	s.Frame(1.0 + ScorePopDuration + 0.01)
	if s.ScoreScale() != 1 {
		t.Fatalf("score pop did not settle")
	}
	if len(played) != 1 || played[0] != sfx.Catch {
		t.Fatalf("sounds = %v, want [catch]", played)
	}
}

func TestSessionGameOverAndRestart(t *testing.T) {
	var played []sfx.Kind
	s := newTestSession(&played)
	s.Restart()
	if s.Restarts != 0 {
		t.Fatalf("restart allowed while playing")
	}

	now := 0.0
	for i := 0; i < 100000 && s.State == StatePlaying; i++ {
		now = float64(i) / 60
		s.Frame(now)
	}
	if s.State != StateGameOver {
		t.Fatalf("game never ended")
	}
	if s.GameOverAt != now {
		t.Fatalf("GameOverAt = %v, want %v", s.GameOverAt, now)
	}
	if played[len(played)-1] != sfx.GameOver {
		t.Fatalf("last sound = %v, want game over", played[len(played)-1])
	}
	if s.ModalProgress() != 0 {
		t.Fatalf("modal progress at game over = %v", s.ModalProgress())
	}
	s.Now = now + ModalDuration/2
	if p := s.ModalProgress(); p <= 0 || p >= 1 {
		t.Fatalf("modal progress midway = %v", p)
	}
	s.Now = now + ModalDuration*2
	if s.ModalProgress() != 1 {
		t.Fatalf("modal did not settle")
	}

	old := s.Drop
	s.Restart()
	if s.State != StatePlaying || s.Drop == old || s.Drop.GameOver() || s.Score != 0 || s.Restarts != 1 {
		t.Fatalf("restart did not produce a fresh session: %+v", s)
	}
}

func TestSessionResize(t *testing.T) {
	var played []sfx.Kind
	s := newTestSession(&played)
	s.Resize(1280, 720)
	if w, h := s.Drop.Resolution(); w != 1280 || h != 720 {
		t.Fatalf("resolution = %vx%v", w, h)
	}
	s.Resize(0, 0)
	if w, h := s.Drop.Resolution(); w != 1280 || h != 720 {
		t.Fatalf("zero resize applied: %vx%v", w, h)
	}

	// Size survives a restart.
	s.State = StateGameOver
	s.Restart()
	if w, h := s.Drop.Resolution(); w != 1280 || h != 720 {
		t.Fatalf("resolution after restart = %vx%v", w, h)
	}
}
