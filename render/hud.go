package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/fonts"
	"github.com/automoto/betrothed/stats"
	"github.com/automoto/betrothed/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var barBackground = color.RGBA{R: 40, G: 40, B: 40, A: 200}

// bar is one HUD gauge.
type bar struct {
	label string
	ratio float64
	fill  color.RGBA
}

// hudBars lists the gauges for p, top to bottom.
func hudBars(p stats.Snapshot) []bar {
	return []bar{
		{"HP", ratio(p.Health, p.MaxHealth), config.Green},
		{"EN", ratio(float64(p.Energy), float64(p.MaxEnergy)), config.Yellow},
		{"OV", ratio(float64(p.EnergyOverflow), float64(p.MaxEnergyOverflow)), config.Orange},
		{"ST", ratio(p.Stamina, p.MaxStamina), config.LightBlue},
	}
}

func ratio(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	return max(0, min(1, v/m))
}

// weaponLine summarizes the equipped weapons and what they have left.
func weaponLine(l *weapon.Loadout) string {
	var parts []string
	if w := l.Selected(weapon.Melee); w != nil && w.Melee != nil {
		parts = append(parts, fmt.Sprintf("%s %d", w.Name, w.Melee.Durability))
	}
	if w := l.Selected(weapon.Ranged); w != nil && w.Ranged != nil {
		parts = append(parts, fmt.Sprintf("%s %d", w.Ranged.Projectile.Name, w.Ranged.Projectile.Count))
	}
	if w := l.Selected(weapon.Magical); w != nil && w.Magical != nil {
		parts = append(parts, fmt.Sprintf("%s %.0f/%.0f", w.Name, w.Magical.Power, w.Magical.MaxPower))
	}
	return strings.Join(parts, "  |  ")
}

// DrawHUD renders the pools in the top-left corner and the loadout under
// them. title is shown in the top-right corner.
func DrawHUD(screen *ebiten.Image, p stats.Snapshot, l *weapon.Loadout, title string) {
	ui := config.UI
	face := fonts.Small.Get()
	y := ui.HUDMargin

	for _, b := range hudBars(p) {
		x := ui.HUDMargin + 36
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(ui.BarWidth), float32(ui.BarHeight), barBackground, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(ui.BarWidth*b.ratio), float32(ui.BarHeight), b.fill, false)
		drawText(screen, b.label, face, ui.HUDMargin, y-2, config.White)
		y += ui.BarHeight + ui.BarSpacing
	}

	if l != nil {
		drawText(screen, weaponLine(l), face, ui.HUDMargin, y+ui.BarSpacing, config.White)
	}
	if title != "" {
		w, _ := text.Measure(title, fonts.Bold.Get(), 0)
		drawText(screen, title, fonts.Bold.Get(), float64(config.Screen.Width)-ui.HUDMargin-w, ui.HUDMargin, config.White)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
