package holdconfirm

import (
	"image/color"
	"sync"
	"time"

	"beatline/internal/audio"
	"beatline/internal/skin"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const frameInterval = 16 * time.Millisecond

// Widget is a hold-to-confirm button. While pressed it fills with the
// skinned progress colour; completing the hold fires the confirm
// handler and the skinned confirm sample.
type Widget struct {
	widget.BaseWidget

	mu          sync.Mutex
	controller  *Controller
	label       string
	skins       skin.Source
	bank        *audio.Bank
	onConfirmed func()
	frameStop   chan struct{}
	skinUnsub   func()
}

// NewWidget creates a hold-to-confirm button resolving its colours and
// confirm sample through the given skin source.
func NewWidget(label string, controller *Controller, skins skin.Source, bank *audio.Bank) *Widget {
	hold := &Widget{
		controller: controller,
		label:      label,
		skins:      skins,
		bank:       bank,
	}
	hold.ExtendBaseWidget(hold)

	controller.SetOnConfirm(hold.handleConfirm)

	if notifier, ok := skins.(skin.Notifier); ok {
		hold.skinUnsub = notifier.OnChange(func() {
			fyne.Do(hold.Refresh)
		})
	}
	return hold
}

// SetOnConfirmed sets the handler fired on the UI thread when a hold
// completes.
func (hold *Widget) SetOnConfirmed(handler func()) {
	hold.mu.Lock()
	defer hold.mu.Unlock()
	hold.onConfirmed = handler
}

// Controller returns the gesture state machine driving the widget.
func (hold *Widget) Controller() *Controller {
	return hold.controller
}

// MouseDown begins the hold.
func (hold *Widget) MouseDown(_ *desktop.MouseEvent) {
	hold.controller.Begin()
	hold.startFrameLoop()
}

// MouseUp releases the hold.
func (hold *Widget) MouseUp(_ *desktop.MouseEvent) {
	hold.controller.Release()
	hold.startFrameLoop()
}

// CreateRenderer builds the custom renderer.
func (hold *Widget) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(hold.colour(skin.ColourHoldBackground, theme.ColorNameInputBackground))
	fill := canvas.NewRectangle(hold.colour(skin.ColourHoldFill, theme.ColorNamePrimary))
	label := canvas.NewText(hold.label, hold.colour(skin.ColourText, theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &widgetRenderer{
		hold:       hold,
		background: background,
		fill:       fill,
		label:      label,
	}
}

func (hold *Widget) handleConfirm() {
	if hold.bank != nil {
		hold.bank.Play(hold.skins.Sample(skin.SampleHoldConfirm))
	}

	hold.mu.Lock()
	handler := hold.onConfirmed
	hold.mu.Unlock()
	if handler != nil {
		fyne.Do(handler)
	}
}

func (hold *Widget) colour(name string, fallback fyne.ThemeColorName) color.Color {
	if value, ok := hold.skins.Colour(name); ok {
		return value
	}
	return theme.Color(fallback)
}

// startFrameLoop drives the controller at frame rate until it settles.
func (hold *Widget) startFrameLoop() {
	hold.mu.Lock()
	if hold.frameStop != nil {
		hold.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	hold.frameStop = stop
	hold.mu.Unlock()

	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				hold.controller.Advance(now.Sub(last))
				last = now
				fyne.Do(hold.Refresh)

				if state := hold.controller.State(); state == StateIdle || state == StateConfirmed {
					hold.stopFrameLoop()
					return
				}
			}
		}
	}()
}

func (hold *Widget) stopFrameLoop() {
	hold.mu.Lock()
	if hold.frameStop != nil {
		close(hold.frameStop)
		hold.frameStop = nil
	}
	hold.mu.Unlock()
}

type widgetRenderer struct {
	hold       *Widget
	background *canvas.Rectangle
	fill       *canvas.Rectangle
	label      *canvas.Text
}

func (renderer *widgetRenderer) Layout(size fyne.Size) {
	renderer.background.Resize(size)
	renderer.background.Move(fyne.NewPos(0, 0))

	width := size.Width * float32(renderer.hold.controller.Progress())
	renderer.fill.Resize(fyne.NewSize(width, size.Height))
	renderer.fill.Move(fyne.NewPos(0, 0))

	labelSize := renderer.label.MinSize()
	renderer.label.Resize(labelSize)
	renderer.label.Move(fyne.NewPos((size.Width-labelSize.Width)/2, (size.Height-labelSize.Height)/2))
}

func (renderer *widgetRenderer) MinSize() fyne.Size {
	labelSize := renderer.label.MinSize()
	return fyne.NewSize(labelSize.Width+40, labelSize.Height+16)
}

func (renderer *widgetRenderer) Refresh() {
	renderer.background.FillColor = renderer.hold.colour(skin.ColourHoldBackground, theme.ColorNameInputBackground)
	renderer.fill.FillColor = renderer.hold.colour(skin.ColourHoldFill, theme.ColorNamePrimary)
	renderer.label.Color = renderer.hold.colour(skin.ColourText, theme.ColorNameForeground)
	renderer.label.Text = renderer.hold.label

	size := renderer.hold.Size()
	width := size.Width * float32(renderer.hold.controller.Progress())
	renderer.fill.Resize(fyne.NewSize(width, size.Height))

	canvas.Refresh(renderer.background)
	canvas.Refresh(renderer.fill)
	canvas.Refresh(renderer.label)
}

func (renderer *widgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.background, renderer.fill, renderer.label}
}

func (renderer *widgetRenderer) Destroy() {
	renderer.hold.stopFrameLoop()
	renderer.hold.mu.Lock()
	release := renderer.hold.skinUnsub
	renderer.hold.skinUnsub = nil
	renderer.hold.mu.Unlock()
	if release != nil {
		release()
	}
}
