package audio

import (
	"math"
	"math/rand"
)

// waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain.
type floatBuffer []float64

// oscillator renders raw waveform samples at the given frequency.
func oscillator(sampleRate, waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer with a linear attack and release, in place.
func applyEnvelope(buf floatBuffer, sampleRate int, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

func concatBuffers(bufs ...floatBuffer) floatBuffer {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	out := make(floatBuffer, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// tone is a convenience wrapper: one oscillator burst with a short envelope.
func tone(sampleRate, waveType int, freq, durSec float64) floatBuffer {
	buf := oscillator(sampleRate, waveType, freq, int(durSec*float64(sampleRate)))
	applyEnvelope(buf, sampleRate, 0.005, durSec*0.4)
	return buf
}

// arpeggio concatenates short notes at the given frequencies.
func arpeggio(sampleRate int, noteSec float64, freqs ...float64) floatBuffer {
	notes := make([]floatBuffer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(sampleRate, waveSine, f, noteSec)
	}
	return concatBuffers(notes...)
}
