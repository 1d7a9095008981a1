package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"raindrop/internal/sfx"
)

// Audio plays sfx buffers through the beep speaker.
type Audio struct {
	volume float64
	cache  map[sfx.Kind][]float64
}

// NewAudio initializes the speaker with a 100ms buffer.
func NewAudio(volume float64) (*Audio, error) {
	sr := beep.SampleRate(sfx.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Audio{volume: volume, cache: make(map[sfx.Kind][]float64)}, nil
}

// Play queues kind on the speaker mixer. Safe on a nil *Audio.
func (a *Audio) Play(kind sfx.Kind) {
	if a == nil || a.volume <= 0 {
		return
	}
	samples, ok := a.cache[kind]
	if !ok {
		samples = sfx.Generate(kind)
		a.cache[kind] = samples
	}
	speaker.Play(monoStreamer(samples, a.volume))
}

func (a *Audio) Close() {
	if a != nil {
		speaker.Close()
	}
}

// monoStreamer plays samples on both channels once, scaled by gain.
func monoStreamer(samples []float64, gain float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(out, samples[pos:], gain)
		pos += n
		return n, true
	})
}

func copy2(out [][2]float64, in []float64, gain float64) int {
	n := min(len(out), len(in))
	for i := 0; i < n; i++ {
		v := in[i] * gain
		out[i] = [2]float64{v, v}
	}
	return n
}
