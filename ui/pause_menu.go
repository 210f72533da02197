// Package ui builds the ebitenui overlays shown on top of a level.
package ui

import (
	"image/color"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseMenu is the overlay shown while a level is paused.
type PauseMenu struct {
	UI *ebitenui.UI

	OnResume func()
	OnSave   func()
	OnQuit   func()

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPauseMenu builds the menu. Any callback may be nil.
func NewPauseMenu(onResume, onSave, onQuit func()) *PauseMenu {
	m := &PauseMenu{
		OnResume:   onResume,
		OnSave:     onSave,
		OnQuit:     onQuit,
		titleFace:  fonts.Title.Get(),
		normalFace: fonts.Bold.Get(),
		smallFace:  fonts.Small.Get(),
	}
	m.buildUI()
	return m
}

func (m *PauseMenu) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(24)
	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &m.titleFace, &widget.LabelColor{
			Idle: config.White,
		}),
	))

	content.AddChild(m.button("Resume", func() { call(m.OnResume) }))
	content.AddChild(m.button("Save", func() { call(m.OnSave) }))
	content.AddChild(m.button("Quit to map", func() { call(m.OnQuit) }))

	m.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &m.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	content.AddChild(m.statusLabel)

	root.AddChild(content)
	m.UI = &ebitenui.UI{Container: root}
}

func (m *PauseMenu) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.UI.MenuWidth, config.UI.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &m.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{220, 220, 220, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// SetStatus shows a one-line message under the buttons.
func (m *PauseMenu) SetStatus(s string) {
	m.statusLabel.Label = s
}

func (m *PauseMenu) Update() {
	m.UI.Update()
}

func (m *PauseMenu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
