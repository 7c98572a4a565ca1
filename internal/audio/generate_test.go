package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestGeneratedSampleLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	sample := GeneratedSample("test", 440, 100*time.Millisecond, rate)

	if sample.Buffer == nil {
		t.Fatal("expected a buffered sample")
	}
	if got, want := sample.Buffer.Len(), rate.N(100*time.Millisecond); got != want {
		t.Errorf("expected %d frames, got %d", want, got)
	}
	if sample.Volume != 1 {
		t.Errorf("expected unit base volume, got %f", sample.Volume)
	}
}

func TestToneStaysWithinAmplitudeBounds(t *testing.T) {
	rate := beep.SampleRate(8000)
	streamer := NewTone(440, 50*time.Millisecond, rate)

	frames := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(frames)
		for _, frame := range frames[:n] {
			for channel := 0; channel < 2; channel++ {
				if frame[channel] < -1 || frame[channel] > 1 {
					t.Fatalf("sample %f out of [-1,1]", frame[channel])
				}
			}
		}
		if !ok {
			break
		}
	}
}

func TestToneDecaysToSilence(t *testing.T) {
	rate := beep.SampleRate(8000)
	duration := 50 * time.Millisecond
	streamer := NewTone(440, duration, rate)

	total := rate.N(duration)
	frames := make([][2]float64, total)
	n, _ := streamer.Stream(frames)
	if n != total {
		t.Fatalf("expected %d frames, got %d", total, n)
	}

	var earlyPeak, latePeak float64
	for i, frame := range frames {
		value := frame[0]
		if value < 0 {
			value = -value
		}
		if i < total/4 && value > earlyPeak {
			earlyPeak = value
		}
		if i >= total*3/4 && value > latePeak {
			latePeak = value
		}
	}
	if latePeak >= earlyPeak {
		t.Errorf("expected decay: early peak %f, late peak %f", earlyPeak, latePeak)
	}
}
