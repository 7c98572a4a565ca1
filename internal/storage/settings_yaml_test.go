package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"beatline/internal/storage"
	"beatline/internal/ui/preferences"

	"gotest.tools/v3/assert"
)

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	saved := preferences.Settings{
		HoldDelay:        650 * time.Millisecond,
		HoldReleasePause: 150 * time.Millisecond,
		SkinName:         "Neon Night",
		MasterVolume:     0.35,
		Fullscreen:       true,
	}
	assert.NilError(t, storage.SaveSettingsFile(path, saved))

	loaded, err := storage.LoadSettingsFile(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, saved)
}

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	t.Parallel()
	loaded, err := storage.LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, preferences.DefaultSettings())
}

func TestLoadSettingsFileClampsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "hold_delay_millis: 10\nrelease_pause_millis: 9000\nmaster_volume: 4.2\nskin_name: \"\"\n"
	assert.NilError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := storage.LoadSettingsFile(path)
	assert.NilError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, loaded.HoldDelay, defaults.HoldDelay)
	assert.Equal(t, loaded.HoldReleasePause, defaults.HoldReleasePause)
	assert.Equal(t, loaded.MasterVolume, defaults.MasterVolume)
	assert.Equal(t, loaded.SkinName, defaults.SkinName)
}

func TestLoadSettingsFileRejectsBadYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(": ["), 0o644))

	_, err := storage.LoadSettingsFile(path)
	assert.Assert(t, err != nil)
}
