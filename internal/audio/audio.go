// Package audio plays short synthesized cues for game events. Everything is
// generated at startup from oscillators; there are no asset files. If the
// speaker cannot be opened the player degrades to silence rather than
// failing the game.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/game"
)

// Config controls playback. Zero values are replaced by defaults.
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // 0..1 master gain
}

// Player synthesizes and plays cues. It implements game.Notifier.
type Player struct {
	sampleRate int
	volume     float64
	cache      map[game.Sound]floatBuffer
	disabled   atomic.Bool
	log        *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 0.5
	}

	p := &Player{
		sampleRate: cfg.SampleRate,
		volume:     cfg.Volume,
		log:        log,
	}
	p.cache = buildCues(cfg.SampleRate)

	if !cfg.Enabled {
		p.disabled.Store(true)
		return p
	}

	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		p.disabled.Store(true)
		log.Warn("audio backend unavailable, running silent", zap.Error(err))
	}
	return p
}

// Notify plays the cue for a game event, fire-and-forget.
func (p *Player) Notify(s game.Sound) {
	if p.disabled.Load() {
		return
	}
	buf, ok := p.cache[s]
	if !ok {
		return
	}
	speaker.Play(&bufferStreamer{buf: buf, gain: p.volume})
}

// bufferStreamer streams a mono buffer into both channels once.
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos] * b.gain
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// buildCues renders every cue once up front.
func buildCues(sr int) map[game.Sound]floatBuffer {
	return map[game.Sound]floatBuffer{
		game.SoundClick:        tone(sr, waveSquare, 1200, 0.03),
		game.SoundShoot:        tone(sr, waveSquare, 880, 0.06),
		game.SoundEnemyHit:     tone(sr, waveSquare, 220, 0.08),
		game.SoundEnemyExplode: tone(sr, waveNoise, 0, 0.2),
		game.SoundPlayerHit:    tone(sr, waveSaw, 110, 0.25),
		game.SoundCorrect:      arpeggio(sr, 0.09, 660, 880),
		game.SoundIncorrect:    tone(sr, waveSaw, 100, 0.3),
		game.SoundLevelUp:      arpeggio(sr, 0.08, 523, 659, 784),
		game.SoundGameOver:     arpeggio(sr, 0.15, 440, 330, 220),
	}
}
