//go:build js && wasm

// Command raindrop-wasm exposes the raindrop state machine to a browser renderer.
package main

import (
	"math"
	"os"
	"syscall/js"

	"raindrop/internal/log"
	"raindrop/internal/web"
)

func main() {
	logger := log.New(os.Stdout, log.LevelInfo)
	session := web.NewSession(web.Callbacks{
		Score:    notify("onRaindropScore"),
		GameOver: notify("onRaindropGameOver"),
	}, logger)

	global := js.Global()
	global.Set("raindropFrame", js.FuncOf(func(this js.Value, args []js.Value) any {
		return session.Frame(number(args, 0))
	}))
	global.Set("raindropHit", js.FuncOf(func(this js.Value, args []js.Value) any {
		return session.Hit(number(args, 0), number(args, 1), number(args, 2))
	}))
	global.Set("raindropResize", js.FuncOf(func(this js.Value, args []js.Value) any {
		w, h := number(args, 0), number(args, 1)
		if w >= 1 && h >= 1 && w <= math.MaxInt32 && h <= math.MaxInt32 {
			session.Resize(int(w), int(h))
		}
		return nil
	}))
	global.Set("raindropReset", js.FuncOf(func(this js.Value, args []js.Value) any {
		session.Reset()
		return nil
	}))

	logger.Infof("wasm module loaded")
	select {}
}

// number reads args[i] as a float. Missing or non-numeric values (a touch
// without a point, undefined, null) read as NaN instead of panicking.
func number(args []js.Value, i int) float64 {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return math.NaN()
	}
	return args[i].Float()
}

// notify calls the named global JS function when the page defines one.
func notify(name string) func(int) {
	return func(score int) {
		if fn := js.Global().Get(name); fn.Type() == js.TypeFunction {
			fn.Invoke(score)
		}
	}
}
