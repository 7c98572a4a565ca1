package skin_test

import (
	"os"
	"path/filepath"
	"testing"

	"beatline/internal/skin"

	"gotest.tools/v3/assert"
)

func TestLoadDirectoryTextures(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	manifest := "name: Textured\ntextures:\n  menu/play: play.png\nconfig:\n  combo/burst_count: \"16\"\n"
	assert.NilError(t, os.WriteFile(filepath.Join(dir, skin.ManifestFileName), []byte(manifest), 0o644))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "play.png"), []byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	loaded, err := skin.LoadDirectory(dir, 0)
	assert.NilError(t, err)

	texture := loaded.Texture(skin.TextureMenuPlay)
	assert.Assert(t, texture != nil)
	assert.Equal(t, texture.Name(), "play.png")

	value, ok := loaded.ConfigValue("combo/burst_count")
	assert.Assert(t, ok)
	assert.Equal(t, value, "16")

	assert.Assert(t, loaded.Texture("menu/other") == nil)
}

func TestLoadDirectoryMissingFiles(t *testing.T) {
	t.Parallel()

	t.Run("no manifest", func(t *testing.T) {
		t.Parallel()
		_, err := skin.LoadDirectory(t.TempDir(), 0)
		assert.Assert(t, err != nil)
	})

	t.Run("texture file absent", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		manifest := "name: Broken\ntextures:\n  menu/play: gone.png\n"
		assert.NilError(t, os.WriteFile(filepath.Join(dir, skin.ManifestFileName), []byte(manifest), 0o644))
		_, err := skin.LoadDirectory(dir, 0)
		assert.Assert(t, err != nil)
	})

	t.Run("sample file absent", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		manifest := "name: Broken\nsamples:\n  gesture/confirm: gone.wav\n"
		assert.NilError(t, os.WriteFile(filepath.Join(dir, skin.ManifestFileName), []byte(manifest), 0o644))
		_, err := skin.LoadDirectory(dir, 0)
		assert.Assert(t, err != nil)
	})
}
