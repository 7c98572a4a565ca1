package skin

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the descriptor file every skin directory carries.
const ManifestFileName = "skin.yaml"

// Manifest describes a skin: identity plus its named colours, config
// values and resource files.
type Manifest struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Author  string `yaml:"author"`
	Version string `yaml:"version"`

	// Colours maps lookup names to hex strings, e.g. "#ff66aa".
	Colours map[string]string `yaml:"colours"`
	// Config maps lookup keys to raw string values.
	Config map[string]string `yaml:"config"`
	// Samples and Textures map lookup names to file names relative to
	// the skin directory.
	Samples  map[string]string `yaml:"samples"`
	Textures map[string]string `yaml:"textures"`
}

// ParseManifest decodes and validates a yaml skin descriptor.
// A missing id is filled with a fresh one.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse skin yaml: %w", err)
	}

	if manifest.Name == "" {
		return Manifest{}, fmt.Errorf("skin manifest: name is required")
	}
	if manifest.ID == "" {
		manifest.ID = uuid.NewString()
	} else if _, err := uuid.Parse(manifest.ID); err != nil {
		return Manifest{}, fmt.Errorf("skin manifest %q: invalid id: %w", manifest.Name, err)
	}

	return manifest, nil
}

// DecodedColours converts the manifest's hex colour table.
func (manifest Manifest) DecodedColours() (map[string]color.Color, error) {
	colours := make(map[string]color.Color, len(manifest.Colours))
	for name, hex := range manifest.Colours {
		decoded, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("skin %q colour %q: %w", manifest.Name, name, err)
		}
		r, g, b := decoded.RGB255()
		colours[name] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return colours, nil
}
