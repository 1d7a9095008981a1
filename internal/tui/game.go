// Package tui runs the raindrop game in a terminal with tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"raindrop/internal/config"
	"raindrop/internal/drop"
	"raindrop/internal/log"
	"raindrop/internal/sfx"
)

const scorePopDuration = 0.1

// Game owns the drop state. All methods must be called from the loop goroutine.
type Game struct {
	screen tcell.Screen
	state  *drop.State
	audio  *Audio
	log    *log.Logger
	clock  func() float64 // monotonic seconds

	origin float64 // clock reading at the first tick of the session, drop.None before it
	now    float64 // seconds since origin
	popAt  float64
	mouse  tcell.ButtonMask
}

func NewGame(screen tcell.Screen, audio *Audio, logger *log.Logger, clock func() float64) *Game {
	g := &Game{screen: screen, audio: audio, log: logger, clock: clock}
	g.reset()
	return g
}

func (g *Game) reset() {
	bus := drop.NewEventBus()
	bus.Subscribe(drop.EventSplash, func(drop.Event) {
		g.audio.Play(sfx.Splash)
	})
	bus.Subscribe(drop.EventCatch, func(e drop.Event) {
		g.popAt = g.now
		g.log.Debugf("catch at t=%.2f score %d", e.Time, e.Score)
		g.audio.Play(sfx.Catch)
	})
	bus.Subscribe(drop.EventGameOver, func(e drop.Event) {
		g.log.Infof("game over: score %d", e.Score)
		g.audio.Play(sfx.GameOver)
	})
	g.state = drop.NewState(bus)
	g.origin = drop.None
	g.now = 0
	g.popAt = drop.None
	g.resize()
}

func (g *Game) resize() {
	w, h := g.screen.Size()
	g.state.Resize(w*CellPixelW, h*CellPixelH)
}

// State exposes the current session for inspection.
func (g *Game) State() *drop.State { return g.state }

// HandleEvent applies one terminal event and reports whether the game should quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && g.state.GameOver():
			g.log.Infof("restart")
			g.reset()
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && g.mouse&tcell.Button1 == 0
		g.mouse = buttons
		if pressed {
			w, h := g.screen.Size()
			cx, cy := ev.Position()
			x, y := CellToNormalized(cx, cy, w, h)
			g.state.Hit(x, y, g.sessionTime())
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	}
	return false
}

// sessionTime reads the clock relative to the session start. Session time
// starts at zero on the first reading after a (re)start and freezes at game over.
func (g *Game) sessionTime() float64 {
	if g.state.GameOver() {
		return g.now
	}
	c := g.clock()
	if g.origin == drop.None {
		g.origin = c
	}
	g.now = c - g.origin
	return g.now
}

// Tick advances the game to the current clock reading and redraws.
func (g *Game) Tick() {
	g.sessionTime()
	g.state.Frame(g.now)

	DrawScene(g.screen, NewShader(g.state.Uniforms()))
	DrawHUD(g.screen, g.state.Score(), g.popAt != drop.None && g.now-g.popAt < scorePopDuration)
	if g.state.GameOver() {
		DrawGameOver(g.screen, g.state.Score())
	}
	g.screen.Show()
}

// Run opens the terminal and plays until the user quits.
func Run(cfg config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var audio *Audio
	if cfg.Audio {
		if audio, err = NewAudio(cfg.Volume); err != nil {
			logger.Warnf("audio init failed (continuing without sound): %v", err)
			audio = nil
		}
	}
	defer audio.Close()

	start := time.Now()
	g := NewGame(screen, audio, logger, func() float64 { return time.Since(start).Seconds() })

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}
