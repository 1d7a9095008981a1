package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input turns polled glfw button state into press edges.
type Input struct {
	keys    map[glfw.Key]bool
	buttons map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		keys:    make(map[glfw.Key]bool),
		buttons: make(map[glfw.MouseButton]bool),
	}
}

// pressEdge records down for k and reports an up-to-down transition.
func pressEdge[K comparable](held map[K]bool, k K, down bool) bool {
	was := held[k]
	held[k] = down
	return down && !was
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	return pressEdge(in.keys, key, window.GetKey(key) == glfw.Press)
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	return pressEdge(in.buttons, btn, window.GetMouseButton(btn) == glfw.Press)
}

// CursorNormalized returns the cursor in 0..1 coordinates with origin bottom-left.
func CursorNormalized(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	return normalizeCursor(cx, cy, winW, winH)
}

// normalizeCursor maps window pixels (origin top-left) to 0..1 (origin
// bottom-left). Window coordinates are used rather than framebuffer ones so
// HiDPI scaling cancels out.
func normalizeCursor(cx, cy float64, winW, winH int) (float64, float64) {
	if winW <= 0 || winH <= 0 {
		return -1, -1
	}
	x := cx / float64(winW)
	y := 1 - cy/float64(winH)
	return x, y
}
