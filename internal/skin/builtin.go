package skin

import (
	"image/color"
	"time"

	"beatline/internal/audio"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/gopxl/beep"
)

// DefaultSkinName is the display name of the built-in skin.
const DefaultSkinName = "Beatline Classic"

// builtinSkinID is fixed so the default skin keeps one identity across runs.
const builtinSkinID = "6f1f3a52-9f0d-4f6e-93f2-6f3f1fbe51aa"

// DefaultSkin builds the built-in skin every chain bottoms out on.
// Its samples are generated tones, so it needs no asset files.
func DefaultSkin(rate beep.SampleRate) *Skin {
	manifest := Manifest{
		ID:     builtinSkinID,
		Name:   DefaultSkinName,
		Author: "beatline",
		Colours: map[string]string{
			ColourAccent:         "#e8be42",
			ColourBackground:     "#14141e",
			ColourText:           "#f2f2f2",
			ColourHoldFill:       "#e8be42",
			ColourHoldBackground: "#2a2a38",
		},
		Config: map[string]string{
			"cursor/expand":     "true",
			"combo/burst_count": "30",
		},
	}

	builtin, err := New(manifest)
	if err != nil {
		// The built-in colour table is fixed; a decode failure here is a
		// programming error.
		panic(err)
	}

	accent := mustColour(builtin, ColourAccent)
	text := mustColour(builtin, ColourText)

	builtin.SetDrawable(ComponentHitCircle, func() fyne.CanvasObject {
		circle := canvas.NewCircle(color.Transparent)
		circle.StrokeColor = accent
		circle.StrokeWidth = 4
		return circle
	})
	builtin.SetDrawable(ComponentApproachRing, func() fyne.CanvasObject {
		ring := canvas.NewCircle(color.Transparent)
		ring.StrokeColor = text
		ring.StrokeWidth = 2
		return ring
	})
	builtin.SetDrawable(ComponentCursor, func() fyne.CanvasObject {
		return canvas.NewCircle(accent)
	})
	builtin.SetDrawable(ComponentComboCounter, func() fyne.CanvasObject {
		counter := canvas.NewText("0x", text)
		counter.TextStyle = fyne.TextStyle{Bold: true}
		return counter
	})
	builtin.SetDrawable(ComponentMenuLogo, func() fyne.CanvasObject {
		logo := canvas.NewText("beatline", accent)
		logo.TextStyle = fyne.TextStyle{Bold: true}
		logo.TextSize = 36
		return logo
	})

	builtin.SetTexture(TextureMenuPlay, theme.MediaPlayIcon())
	builtin.SetTexture(TextureMenuSettings, theme.SettingsIcon())

	builtin.SetSample(SampleHoldConfirm, audio.GeneratedSample(SampleHoldConfirm, 880, 180*time.Millisecond, rate))
	builtin.SetSample(SampleMenuClick, audio.GeneratedSample(SampleMenuClick, 440, 60*time.Millisecond, rate))
	builtin.SetSample(SampleHitNormal, audio.GeneratedSample(SampleHitNormal, 660, 90*time.Millisecond, rate))

	return builtin
}

func mustColour(source Source, name string) color.Color {
	value, ok := source.Colour(name)
	if !ok {
		panic("missing builtin colour " + name)
	}
	return value
}
