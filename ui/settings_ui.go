package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/blaster/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the pause panel: audio and display settings plus the way
// back into the game or out to the menu.
type SettingsUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume func()
	OnQuit   func()

	musicLabel       *widget.Label
	sfxLabel         *widget.Label
	muteButton       *widget.Button
	fullscreenButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the pause panel with ebitenui
func NewSettingsUI(onResume, onQuit func()) *SettingsUI {
	sui := &SettingsUI{
		OnResume: onResume,
		OnQuit:   onQuit,
	}

	sui.loadFonts()
	sui.buildUI()
	sui.UpdateUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root container leaves the world visible behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 150})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(10)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	sui.musicLabel = sui.label()
	panel.AddChild(sui.volumeRow("Music", sui.musicLabel, systems.StepMusicVolume))

	sui.sfxLabel = sui.label()
	panel.AddChild(sui.volumeRow("Effects", sui.sfxLabel, systems.StepSFXVolume))

	toggles := sui.row()
	sui.muteButton = sui.button("", 110, func() {
		systems.ToggleMute()
		sui.UpdateUI()
	})
	sui.fullscreenButton = sui.button("", 110, func() {
		systems.ToggleFullscreen()
		sui.UpdateUI()
	})
	toggles.AddChild(sui.muteButton)
	toggles.AddChild(sui.fullscreenButton)
	panel.AddChild(toggles)

	actions := sui.row()
	actions.AddChild(sui.button("Resume", 110, func() {
		if sui.OnResume != nil {
			sui.OnResume()
		}
	}))
	actions.AddChild(sui.button("Quit to Menu", 110, func() {
		if sui.OnQuit != nil {
			sui.OnQuit()
		}
	}))
	panel.AddChild(actions)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) volumeRow(name string, value *widget.Label, step func(direction int)) *widget.Container {
	row := sui.row()
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 220, 255},
		}),
	))
	row.AddChild(sui.button("-", 24, func() {
		step(-1)
		sui.UpdateUI()
	}))
	row.AddChild(value)
	row.AddChild(sui.button("+", 24, func() {
		step(1)
		sui.UpdateUI()
	}))
	return row
}

func (sui *SettingsUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (sui *SettingsUI) label() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

func (sui *SettingsUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 20),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes labels from the live settings.
func (sui *SettingsUI) UpdateUI() {
	s := systems.CurrentSettings()

	sui.musicLabel.Label = systems.FormatVolumeBar(s.MusicVolume)
	sui.sfxLabel.Label = systems.FormatVolumeBar(s.SFXVolume)

	if textWidget := sui.muteButton.Text(); textWidget != nil {
		textWidget.Label = "Mute: " + systems.FormatToggle(s.Muted)
	}
	if textWidget := sui.fullscreenButton.Text(); textWidget != nil {
		textWidget.Label = "Fullscreen: " + systems.FormatToggle(s.Fullscreen)
	}
}

// Update runs the widgets for one tick.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
}

// Draw renders the panel on top of the screen.
func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
