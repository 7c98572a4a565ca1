package skin

import (
	"image/color"

	"beatline/internal/audio"

	"fyne.io/fyne/v2"
)

// Component identifies a themable drawable slot in the client UI.
type Component string

const (
	ComponentHitCircle    Component = "gameplay/hit_circle"
	ComponentApproachRing Component = "gameplay/approach_ring"
	ComponentComboCounter Component = "gameplay/combo_counter"
	ComponentCursor       Component = "gameplay/cursor"
	ComponentMenuLogo     Component = "menu/logo"
)

// Well-known sample lookup names.
const (
	SampleHoldConfirm = "gesture/confirm"
	SampleMenuClick   = "menu/click"
	SampleHitNormal   = "gameplay/hit_normal"
)

// Well-known colour lookup names.
const (
	ColourAccent         = "accent"
	ColourBackground     = "background"
	ColourText           = "text"
	ColourHoldFill       = "hold/fill"
	ColourHoldBackground = "hold/background"
)

// Well-known texture lookup names.
const (
	TextureMenuPlay     = "menu/play"
	TextureMenuSettings = "menu/settings"
)

// Source provides themed drawables, textures, samples, config values
// and colours. Every lookup returns its zero result on a miss.
type Source interface {
	// Drawable builds a fresh canvas object for the component, or nil.
	Drawable(component Component) fyne.CanvasObject
	// Texture returns a named image resource, or nil.
	Texture(name string) fyne.Resource
	// Sample returns a named audio clip, or nil.
	Sample(name string) *audio.Sample
	// ConfigValue returns a named skin configuration value.
	ConfigValue(key string) (string, bool)
	// Colour returns a named skin colour.
	Colour(name string) (color.Color, bool)
}

// Notifier is implemented by sources whose results can change after
// creation. Handlers fire on every change until unsubscribed.
type Notifier interface {
	OnChange(handler func()) (unsubscribe func())
}
