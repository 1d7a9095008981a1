package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raindrop/internal/config"
	"raindrop/internal/log"
)

// RunDesktop opens the game window and runs until it is closed.
func RunDesktop(cfg config.Config, logger *log.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var audio *AudioSystem
	if cfg.Audio {
		audio, err = NewAudioSystem(cfg.Volume)
		if err != nil {
			logger.Warnf("audio init failed (continuing without sound): %v", err)
			audio = nil
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	session := NewGameSession(logger, audio.Play)
	input := NewInput()
	logger.Infof("desktop session started (%dx%d)", cfg.WindowWidth, cfg.WindowHeight)

	// Game time starts at zero with the first frame and stalls are clamped.
	now := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		t := glfw.GetTime()
		dt := t - last
		last = t
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}
		now += dt

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		session.Resize(fbW, fbH)

		clicked := input.JustClicked(window, glfw.MouseButtonLeft)
		space := input.JustPressed(window, glfw.KeySpace)

		switch session.State {
		case StatePlaying:
			session.Frame(now)
			if clicked {
				x, y := CursorNormalized(window)
				session.Hit(x, y)
			}

		case StateGameOver:
			session.Now = now
			if (clicked || space) && session.ModalProgress() >= 1 {
				now = 0
				session.Restart()
				session.Frame(now)
			}
		}

		rend.DrawScene(session.Drop.Uniforms(), fbW, fbH)
		RenderHUD(rend, session, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
