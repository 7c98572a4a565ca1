package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// DefaultSampleRate is the playback rate all samples are resampled to.
const DefaultSampleRate = beep.SampleRate(44100)

const speakerBufferLength = 100 * time.Millisecond

// Sample is a fully decoded, replayable audio clip.
type Sample struct {
	Name   string
	Buffer *beep.Buffer
	// Volume is the per-sample gain in [0,1], applied on top of the master volume.
	Volume float64
}

// Bank owns the speaker and mixes sample playback through a master volume.
type Bank struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewBank creates a sample bank playing at the given rate.
func NewBank(rate beep.SampleRate) *Bank {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	mixer := &beep.Mixer{}
	return &Bank{
		rate:  rate,
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   0,
		},
	}
}

// Initialize opens the speaker and starts the mixer.
func (bank *Bank) Initialize() error {
	bank.mu.Lock()
	defer bank.mu.Unlock()

	if bank.initialized {
		return nil
	}
	if err := speaker.Init(bank.rate, bank.rate.N(speakerBufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(bank.master)
	bank.initialized = true
	return nil
}

// SampleRate returns the bank playback rate.
func (bank *Bank) SampleRate() beep.SampleRate {
	return bank.rate
}

// SetMasterVolume sets the linear master gain in [0,1].
func (bank *Bank) SetMasterVolume(volume float64) {
	bank.mu.Lock()
	defer bank.mu.Unlock()

	if volume <= 0 {
		bank.master.Silent = true
		return
	}
	if volume > 1 {
		volume = 1
	}
	bank.master.Silent = false
	bank.master.Volume = math.Log2(volume)
}

// Play mixes a one-shot playback of the sample. Nil samples are ignored.
func (bank *Bank) Play(sample *Sample) {
	if sample == nil || sample.Buffer == nil {
		return
	}

	bank.mu.Lock()
	defer bank.mu.Unlock()

	if !bank.initialized {
		return
	}

	streamer := beep.Streamer(sample.Buffer.Streamer(0, sample.Buffer.Len()))
	if sample.Volume > 0 && sample.Volume < 1 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   math.Log2(sample.Volume),
		}
	}
	bank.mixer.Add(streamer)
}

// Close silences the mixer. The speaker itself has no close call in beep.
func (bank *Bank) Close() {
	bank.mu.Lock()
	defer bank.mu.Unlock()

	if !bank.initialized {
		return
	}
	bank.mixer.Clear()
	bank.initialized = false
}

// LoadWAV decodes a wav file into a Sample resampled to the given rate.
func LoadWAV(path string, rate beep.SampleRate) (*Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer file.Close()

	streamer, format, err := wav.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != rate {
		source = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: 2,
		Precision:   2,
	})
	buffer.Append(source)

	return &Sample{Name: path, Buffer: buffer, Volume: 1}, nil
}
