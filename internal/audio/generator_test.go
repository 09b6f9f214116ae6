package audio

import (
	"math"
	"testing"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/game"
)

const testRate = 44100

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []int{waveSine, waveSquare, waveSaw, waveNoise} {
		buf := oscillator(testRate, wave, 440, 1000)
		if len(buf) != 1000 {
			t.Fatalf("wave %d: got %d samples, want 1000", wave, len(buf))
		}
		for i, v := range buf {
			if math.Abs(v) > 1.0 {
				t.Fatalf("wave %d: sample %d = %f exceeds unity gain", wave, i, v)
			}
		}
	}
}

func TestApplyEnvelopeTapersEnds(t *testing.T) {
	buf := make(floatBuffer, 1000)
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, testRate, 0.005, 0.005) // 220 samples each side

	if buf[0] != 0 {
		t.Errorf("attack start = %f, want 0", buf[0])
	}
	if buf[len(buf)-1] > 0.01 {
		t.Errorf("release end = %f, want near 0", buf[len(buf)-1])
	}
	if buf[500] != 1.0 {
		t.Errorf("sustain = %f, want untouched 1.0", buf[500])
	}
}

func TestArpeggioConcatenates(t *testing.T) {
	buf := arpeggio(testRate, 0.1, 440, 880)
	want := 2 * int(0.1*testRate)
	if len(buf) != want {
		t.Fatalf("arpeggio length = %d, want %d", len(buf), want)
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.5, -0.5, 1.0}, gain: 0.5}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("first stream = (%d, %v), want (2, true)", n, ok)
	}
	if out[0][0] != 0.25 || out[0][1] != 0.25 {
		t.Fatalf("gain not applied to both channels: %v", out[0])
	}

	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("second stream = (%d, %v), want (1, true)", n, ok)
	}
	n, ok = s.Stream(out)
	if n != 0 || ok {
		t.Fatalf("drained stream = (%d, %v), want (0, false)", n, ok)
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error %v", s.Err())
	}
}

func TestBuildCuesCoversEverySound(t *testing.T) {
	cues := buildCues(testRate)
	sounds := []game.Sound{
		game.SoundClick, game.SoundShoot, game.SoundEnemyHit,
		game.SoundEnemyExplode, game.SoundPlayerHit, game.SoundCorrect,
		game.SoundIncorrect, game.SoundLevelUp, game.SoundGameOver,
	}
	for _, snd := range sounds {
		if len(cues[snd]) == 0 {
			t.Errorf("no cue rendered for sound %d", snd)
		}
	}
}

func TestDisabledPlayerIsSilentNoOp(t *testing.T) {
	p := New(Config{Enabled: false}, nil)
	// must not panic or touch the speaker
	p.Notify(game.SoundShoot)
	p.Notify(game.Sound(999))
}
