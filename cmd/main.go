package main

import (
	"image/color"
	"log"

	"beatline/internal/audio"
	"beatline/internal/platform"
	"beatline/internal/skin"
	"beatline/internal/storage"
	"beatline/internal/ui/holdconfirm"
	"beatline/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appName = "Beatline"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.beatline.app")

	bank := audio.NewBank(audio.DefaultSampleRate)
	if err := bank.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer bank.Close()
	bank.SetMasterVolume(settings.MasterVolume)

	skinDir, err := storage.SkinDirectory(appName)
	if err != nil {
		log.Printf("skin directory: %v", err)
	}
	manager := skin.NewManager(skin.ManagerConfig{
		Directory:  skinDir,
		SampleRate: bank.SampleRate(),
	})
	if err := manager.Select(settings.SkinName); err != nil {
		log.Printf("select skin %q: %v", settings.SkinName, err)
	}

	window := fyneApp.NewWindow(appName)
	window.SetFullScreen(settings.Fullscreen)

	// The scene gets its own chain link so gameplay scenes can layer
	// scene-local sources on top of the selected skin later.
	sceneSkins := skin.NewContainer(skin.ContainerConfig{Fallback: manager.Root()})
	defer sceneSkins.Close()

	controller := holdconfirm.New(settings.HoldConfig())
	quit := holdconfirm.NewWidget("Hold to exit", controller, sceneSkins, bank)
	quit.SetOnConfirmed(fyneApp.Quit)

	background := canvas.NewRectangle(backgroundColour(sceneSkins))
	logoHolder := container.NewCenter(sceneLogo(sceneSkins))

	prefsWindow := preferences.New(fyneApp, settings, skinNames(manager), func(updated preferences.Settings) {
		settings = updated
		controller.UpdateConfig(settings.HoldConfig())
		bank.SetMasterVolume(settings.MasterVolume)
		window.SetFullScreen(settings.Fullscreen)
		if err := manager.Select(settings.SkinName); err != nil {
			log.Printf("select skin %q: %v", settings.SkinName, err)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	settingsButton := widget.NewButton("Settings", func() {
		bank.Play(sceneSkins.Sample(skin.SampleMenuClick))
		prefsWindow.SetSkinNames(skinNames(manager))
		prefsWindow.Show()
	})

	unsubscribe := sceneSkins.OnChange(func() {
		fyne.Do(func() {
			background.FillColor = backgroundColour(sceneSkins)
			canvas.Refresh(background)
			logoHolder.Objects = []fyne.CanvasObject{sceneLogo(sceneSkins)}
			logoHolder.Refresh()
		})
	})
	defer unsubscribe()

	menu := container.NewVBox(logoHolder, settingsButton, quit)
	window.SetContent(container.NewStack(background, container.NewCenter(menu)))
	window.Resize(fyne.NewSize(900, 600))
	window.ShowAndRun()
}

func backgroundColour(skins skin.Source) color.Color {
	if value, ok := skins.Colour(skin.ColourBackground); ok {
		return value
	}
	return color.NRGBA{R: 20, G: 20, B: 30, A: 255}
}

func sceneLogo(skins skin.Source) fyne.CanvasObject {
	if logo := skins.Drawable(skin.ComponentMenuLogo); logo != nil {
		return logo
	}
	return widget.NewLabelWithStyle(appName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func skinNames(manager *skin.Manager) []string {
	available, err := manager.Available()
	if err != nil {
		log.Printf("list skins: %v", err)
		return []string{skin.DefaultSkinName}
	}
	names := make([]string, 0, len(available))
	for _, manifest := range available {
		names = append(names, manifest.Name)
	}
	return names
}
