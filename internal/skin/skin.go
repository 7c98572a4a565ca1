package skin

import (
	"image/color"

	"beatline/internal/audio"

	"fyne.io/fyne/v2"
)

// Skin is a manifest-backed static source. Its lookup tables are filled
// at load time and never change, so it carries no change notification.
type Skin struct {
	manifest  Manifest
	colours   map[string]color.Color
	samples   map[string]*audio.Sample
	textures  map[string]fyne.Resource
	drawables map[Component]func() fyne.CanvasObject
}

// New builds a skin from a manifest, decoding its colour table.
func New(manifest Manifest) (*Skin, error) {
	colours, err := manifest.DecodedColours()
	if err != nil {
		return nil, err
	}
	return &Skin{
		manifest:  manifest,
		colours:   colours,
		samples:   make(map[string]*audio.Sample),
		textures:  make(map[string]fyne.Resource),
		drawables: make(map[Component]func() fyne.CanvasObject),
	}, nil
}

// Manifest returns the skin descriptor.
func (s *Skin) Manifest() Manifest {
	return s.manifest
}

// Name returns the skin display name.
func (s *Skin) Name() string {
	return s.manifest.Name
}

// SetSample registers a decoded sample under a lookup name.
func (s *Skin) SetSample(name string, sample *audio.Sample) {
	s.samples[name] = sample
}

// SetTexture registers an image resource under a lookup name.
func (s *Skin) SetTexture(name string, texture fyne.Resource) {
	s.textures[name] = texture
}

// SetDrawable registers a factory for a themable component.
func (s *Skin) SetDrawable(component Component, factory func() fyne.CanvasObject) {
	s.drawables[component] = factory
}

// Drawable builds a fresh canvas object for the component, or nil.
func (s *Skin) Drawable(component Component) fyne.CanvasObject {
	factory, ok := s.drawables[component]
	if !ok {
		return nil
	}
	return factory()
}

// Texture returns a named image resource, or nil.
func (s *Skin) Texture(name string) fyne.Resource {
	return s.textures[name]
}

// Sample returns a named audio clip, or nil.
func (s *Skin) Sample(name string) *audio.Sample {
	return s.samples[name]
}

// ConfigValue returns a raw skin configuration value.
func (s *Skin) ConfigValue(key string) (string, bool) {
	value, ok := s.manifest.Config[key]
	return value, ok
}

// Colour returns a named skin colour.
func (s *Skin) Colour(name string) (color.Color, bool) {
	value, ok := s.colours[name]
	return value, ok
}
