package preferences

import (
	"time"

	"beatline/internal/core/model"
	"beatline/internal/skin"
)

// Settings defines editable user preferences.
type Settings struct {
	HoldDelay        time.Duration
	HoldReleasePause time.Duration
	SkinName         string
	MasterVolume     float64
	Fullscreen       bool
}

// DefaultSettings returns default settings for Beatline.
func DefaultSettings() Settings {
	return Settings{
		HoldDelay:        400 * time.Millisecond,
		HoldReleasePause: 200 * time.Millisecond,
		SkinName:         skin.DefaultSkinName,
		MasterVolume:     0.8,
		Fullscreen:       false,
	}
}

// HoldConfig converts settings to the hold controller configuration.
func (settings Settings) HoldConfig() model.HoldConfig {
	return model.HoldConfig{
		ActivationDelay: settings.HoldDelay,
		ReleasePause:    settings.HoldReleasePause,
		ReverseDuration: 300 * time.Millisecond,
	}
}

// AudioConfig converts settings to the audio configuration.
func (settings Settings) AudioConfig() model.AudioConfig {
	return model.AudioConfig{
		MasterVolume: settings.MasterVolume,
		Muted:        settings.MasterVolume <= 0,
	}
}
