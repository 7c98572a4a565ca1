package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"beatline/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	HoldDelayMillis    int     `yaml:"hold_delay_millis"`
	ReleasePauseMillis int     `yaml:"release_pause_millis"`
	SkinName           string  `yaml:"skin_name"`
	MasterVolume       float64 `yaml:"master_volume"`
	Fullscreen         bool    `yaml:"fullscreen"`
}

// LoadSettings reads user preferences from YAML in the user config dir.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from a specific YAML file.
func LoadSettingsFile(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in the user config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to a specific YAML file.
func SaveSettingsFile(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		HoldDelayMillis:    int(settings.HoldDelay / time.Millisecond),
		ReleasePauseMillis: int(settings.HoldReleasePause / time.Millisecond),
		SkinName:           settings.SkinName,
		MasterVolume:       settings.MasterVolume,
		Fullscreen:         settings.Fullscreen,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SkinDirectory returns the per-user skin search directory.
func SkinDirectory(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, "skins"), nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	// Delays outside 100ms..5s would make confirmation either twitchy or
	// unreachable; out-of-range values keep the defaults.
	if fileData.HoldDelayMillis >= 100 && fileData.HoldDelayMillis <= 5000 {
		settings.HoldDelay = time.Duration(fileData.HoldDelayMillis) * time.Millisecond
	}
	if fileData.ReleasePauseMillis >= 0 && fileData.ReleasePauseMillis <= 2000 {
		settings.HoldReleasePause = time.Duration(fileData.ReleasePauseMillis) * time.Millisecond
	}
	if fileData.SkinName != "" {
		settings.SkinName = fileData.SkinName
	}
	if fileData.MasterVolume >= 0 && fileData.MasterVolume <= 1 {
		settings.MasterVolume = fileData.MasterVolume
	}
	settings.Fullscreen = fileData.Fullscreen
}
