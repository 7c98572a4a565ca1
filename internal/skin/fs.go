package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"beatline/internal/audio"

	"fyne.io/fyne/v2"
	"github.com/gopxl/beep"
)

// ErrNotFound indicates no skin with the requested name exists.
var ErrNotFound = errors.New("skin not found")

// LoadDirectory loads a skin from a directory containing skin.yaml plus
// the texture and sample files the manifest names. Samples are decoded
// at the given playback rate.
func LoadDirectory(dir string, rate beep.SampleRate) (*Skin, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("read skin manifest: %w", err)
	}
	manifest, err := ParseManifest(raw)
	if err != nil {
		return nil, err
	}

	loaded, err := New(manifest)
	if err != nil {
		return nil, err
	}

	for name, file := range manifest.Textures {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("skin %q texture %q: %w", manifest.Name, name, err)
		}
		loaded.SetTexture(name, fyne.NewStaticResource(file, data))
	}

	for name, file := range manifest.Samples {
		sample, err := audio.LoadWAV(filepath.Join(dir, file), rate)
		if err != nil {
			return nil, fmt.Errorf("skin %q sample %q: %w", manifest.Name, name, err)
		}
		sample.Name = name
		loaded.SetSample(name, sample)
	}

	return loaded, nil
}

// Discover lists the manifests of all skins under the search directory.
// A missing directory yields an empty list.
func Discover(dir string) ([]Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read skin directory: %w", err)
	}

	var manifests []Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name(), ManifestFileName))
		if err != nil {
			// Directories without a manifest are not skins.
			continue
		}
		manifest, err := ParseManifest(raw)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

func findSkinDir(dir, name string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return "", fmt.Errorf("read skin directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name(), ManifestFileName))
		if err != nil {
			continue
		}
		manifest, err := ParseManifest(raw)
		if err == nil && manifest.Name == name {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}
