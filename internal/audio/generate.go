package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone generates a sine wave with a linear decay envelope.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a decaying sine streamer for generated UI sounds.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		envelope := 1 - float64(t.position)/float64(t.duration)
		value := math.Sin(2*math.Pi*t.phase) * envelope

		samples[i][0] = value
		samples[i][1] = value

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// GeneratedSample renders a decaying tone into a replayable Sample.
func GeneratedSample(name string, freq float64, duration time.Duration, rate beep.SampleRate) *Sample {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: 2,
		Precision:   2,
	})
	buffer.Append(NewTone(freq, duration, rate))
	return &Sample{Name: name, Buffer: buffer, Volume: 1}
}
