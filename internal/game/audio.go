package game

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"raindrop/internal/sfx"
)

const (
	ChannelCount = 2
	AudioFormat  = oto.FormatFloat32LE
)

// AudioSystem plays sfx buffers through an oto context.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[sfx.Kind][]byte
}

// NewAudioSystem opens the output device. volume is 0..1.
func NewAudioSystem(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, ChannelCount, AudioFormat)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{
		ctx:    ctx,
		ready:  ready,
		volume: clampF(volume, 0, 1),
		cache:  make(map[sfx.Kind][]byte),
	}, nil
}

// Play starts kind in the background. Sounds requested before the device is ready are dropped.
func (a *AudioSystem) Play(kind sfx.Kind) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	data := a.samples(kind)
	if len(data) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (a *AudioSystem) samples(kind sfx.Kind) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	data, ok := a.cache[kind]
	if !ok {
		data = sfx.EncodeStereoF32(sfx.Generate(kind), 1)
		a.cache[kind] = data
	}
	return data
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
