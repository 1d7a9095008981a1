package sfx

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGenerateBounded(t *testing.T) {
	for _, k := range []Kind{Splash, Catch, GameOver} {
		s := Generate(k)
		if len(s) == 0 {
			t.Fatalf("%v: no samples", k)
		}
		peak := 0.0
		for i, v := range s {
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Fatalf("%v: sample %d = %v out of range", k, i, v)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		if peak < 0.05 {
			t.Fatalf("%v: peak %v, effectively silent", k, peak)
		}
	}
	if Generate(Kind(99)) != nil {
		t.Fatalf("unknown kind should give nil")
	}
}

func TestGameOverIsLongest(t *testing.T) {
	if len(Generate(GameOver)) <= len(Generate(Splash)) || len(Generate(Splash)) <= len(Generate(Catch)) {
		t.Fatalf("durations out of order")
	}
}

func TestEncodeStereoF32(t *testing.T) {
	buf := EncodeStereoF32([]float64{0.5, -1}, 0.5)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	want := []float32{0.25, 0.25, -0.5, -0.5}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Fatalf("frame value %d = %v, want %v", i, got, w)
		}
	}
}

func TestADSR(t *testing.T) {
	if v := adsr(0.005, 0.01, 0.5, 0, 0.1); math.Abs(v-0.5) > 1e-9 {
		t.Fatalf("attack midpoint = %v", v)
	}
	if v := adsr(1, 0.01, 0.2, 0.5, 0.1); math.Abs(v) > 1e-9 {
		t.Fatalf("release end = %v", v)
	}
}
