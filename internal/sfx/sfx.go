// Package sfx synthesizes the game's sound effects as mono float samples.
// Playback lives with each frontend's audio backend.
package sfx

import (
	"math"
)

const SampleRate = 44100

// Kind identifies a sound effect.
type Kind int

const (
	Splash   Kind = iota // drop lands in the water
	Catch                // drop popped mid-air
	GameOver             // water reached the top
)

func (k Kind) String() string {
	switch k {
	case Splash:
		return "splash"
	case Catch:
		return "catch"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Generate returns the samples for kind in [-1,1], or nil for an unknown kind.
func Generate(kind Kind) []float64 {
	switch kind {
	case Splash:
		return genSplash()
	case Catch:
		return genCatch()
	case GameOver:
		return genGameOver()
	}
	return nil
}

// genSplash: downward "plop" sweep over a short burst of lowpassed noise.
func genSplash() []float64 {
	n := int(0.32 * SampleRate)
	out := make([]float64, n)
	seed := uint64(0x5B1A54)
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 900*math.Exp(-p*9) + 140
		phase += 2 * math.Pi * freq / SampleRate
		plop := math.Sin(phase) * math.Exp(-p*10) * 0.55
		lp = lp*0.8 + lcg(&seed)*0.2
		spray := lp * adsr(p, 0.02, 0.3, 0.25, 0.5) * 0.5
		out[i] = softSat(plop + spray)
	}
	return out
}

// genCatch: bright rising bubble pop with a bell partial.
func genCatch() []float64 {
	n := int(0.12 * SampleRate)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.45, 0.0, 0.1)
		freq := 620 + 900*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.07
		out[i] = softSat(s)
	}
	return out
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []float64 {
	n := int(0.9 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.16}, // C4
		{220.00, 0.32}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// EncodeStereoF32 interleaves samples into little-endian float32 stereo frames.
func EncodeStereoF32(samples []float64, gain float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(float32(s * gain))
		for ch := 0; ch < 2; ch++ {
			o := i*8 + ch*4
			buf[o] = byte(v)
			buf[o+1] = byte(v >> 8)
			buf[o+2] = byte(v >> 16)
			buf[o+3] = byte(v >> 24)
		}
	}
	return buf
}

// softSat applies gentle saturation with no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
