package model

import "time"

// HoldConfig contains runtime settings for the hold-to-confirm controller.
type HoldConfig struct {
	ActivationDelay    time.Duration
	ReleasePause       time.Duration
	ReverseDuration    time.Duration
	AllowMultipleFires bool
}

// AudioConfig contains runtime settings for sample playback.
type AudioConfig struct {
	MasterVolume float64
	Muted        bool
}

// SkinConfig selects the active skin and its search directory.
type SkinConfig struct {
	Directory string
	Selected  string
}
