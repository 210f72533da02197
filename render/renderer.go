// Package render draws levels, the HUD and debug overlays with ebiten.
package render

import (
	"image/color"
	"math"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/level"
	"github.com/automoto/betrothed/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	baseSize       = 16
	mountainWidth  = 320
	mountainFactor = 0.25 // Mountains scroll at this share of the camera
)

var tileColors = map[layout.Category]color.RGBA{
	layout.Background: {R: 70, G: 90, B: 110, A: 255},
	layout.Buildings:  {R: 150, G: 120, B: 90, A: 255},
	layout.Roofs:      {R: 160, G: 60, B: 50, A: 255},
	layout.Roots:      {R: 110, G: 80, B: 50, A: 255},
	layout.Terrain:    {R: 120, G: 90, B: 60, A: 255},
	layout.Grass:      {R: 70, G: 170, B: 70, A: 255},
	layout.Trees:      {R: 40, G: 120, B: 50, A: 255},
	layout.Decoration: {R: 200, G: 190, B: 150, A: 255},
	layout.Barriers:   {R: 90, G: 90, B: 100, A: 255},
}

var energyColors = map[int]color.RGBA{
	1:  config.Yellow,
	5:  config.Orange,
	10: config.Purple,
}

// playerAnims lists the atlas range per status. Airborne poses hold on
// their last frame until the status changes.
var playerAnims = map[config.StateID]struct {
	first, last int
	rate        float64
	hold        bool
}{
	config.Idle:    {0, 1, 0.05, false},
	config.Running: {2, 5, 0.15, false},
	config.Jump:    {6, 7, 0.2, true},
	config.Fall:    {8, 9, 0.2, true},
}

const playerAtlasFrames = 10

// Renderer implements level.Renderer on an ebiten image. Set the target
// with SetTarget before each Draw.
type Renderer struct {
	ShowBoxes bool

	screen    *ebiten.Image
	base      *ebiten.Image
	player    *Atlas
	particles map[config.ParticleKind]*Atlas
	anims     map[config.StateID]*Animation
	status    config.StateID
	op        ebiten.DrawImageOptions
}

func NewRenderer() *Renderer {
	base := ebiten.NewImage(baseSize, baseSize)
	base.Fill(color.White)

	r := &Renderer{
		base: base,
		player: placeholderAtlas(playerAtlasFrames, int(config.Player.FrameWidth), int(config.Player.FrameHeight), func(i int) color.Color {
			if i%2 == 0 {
				return config.Blue
			}
			return config.DarkBlue
		}),
		particles: map[config.ParticleKind]*Atlas{},
		anims:     map[config.StateID]*Animation{},
		ShowBoxes: config.Debug.ShowBoxes,
	}
	for kind, pc := range config.Particles {
		r.particles[kind] = placeholderAtlas(pc.Frames, int(pc.Width), int(pc.Height), fading(config.White, pc.Frames))
	}
	for status, pa := range playerAnims {
		r.anims[status] = NewAnimation(pa.first, pa.last, pa.rate, pa.hold)
	}
	return r
}

func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

// Tick advances the player animation by step 60 Hz ticks.
func (r *Renderer) Tick(step float64) {
	if a, ok := r.anims[r.status]; ok {
		a.Advance(step)
	}
}

func (r *Renderer) DrawBackdrop(b *level.Backdrop, cameraX float64) {
	r.screen.Fill(config.Backdrop.SkyColor)
	if b == nil {
		return
	}
	w := float32(config.Screen.Width)
	h := float32(config.Screen.Height)

	if b.Mountains {
		off := math.Mod(cameraX*mountainFactor, mountainWidth)
		for i := -1; float64(i)*mountainWidth-off < float64(w); i++ {
			x := float64(i)*mountainWidth - off
			peak := 120 + 60*float64((i%3+3)%3)
			vector.DrawFilledRect(r.screen, float32(x), float32(b.Horizon-peak), mountainWidth*0.8, float32(peak),
				color.RGBA{R: 100, G: 110, B: 140, A: 255}, false)
		}
	}

	for _, c := range b.Clouds {
		x := c.X - cameraX*config.Backdrop.CloudParallax
		if b.Width > 0 {
			x = math.Mod(x, b.Width)
			if x < 0 {
				x += b.Width
			}
		}
		radius := float32(16 + 8*c.Size)
		vector.DrawFilledCircle(r.screen, float32(x), float32(c.Y), radius, color.RGBA{R: 250, G: 250, B: 255, A: 220}, true)
		vector.DrawFilledCircle(r.screen, float32(x)+radius, float32(c.Y)+4, radius*0.8, color.RGBA{R: 250, G: 250, B: 255, A: 220}, true)
	}

	if b.Water {
		top := float32(b.Horizon)
		vector.DrawFilledRect(r.screen, 0, top, w, h-top, config.Backdrop.WaterColor, false)
	}
}

func (r *Renderer) DrawSprite(s level.Sprite) {
	rect := s.Rect
	if s.Scale > 0 && s.Scale != 1 {
		rect = scaled(rect, s.Scale)
	}
	alpha := float32(1)
	if s.Blink {
		alpha = 0.5
	}

	switch s.Kind {
	case level.SpriteTile:
		c, ok := tileColors[s.Category]
		if !ok {
			c = config.White
		}
		r.fill(rect, c)
	case level.SpriteEnergy:
		c, ok := energyColors[s.Variant]
		if !ok {
			c = config.Yellow
		}
		vector.DrawFilledCircle(r.screen, float32(rect.CenterX()), float32(rect.CenterY()),
			float32(min(rect.W, rect.H)/2), c, true)
	case level.SpriteEnemy:
		r.drawEnemy(s, rect)
	case level.SpriteEndMarker:
		r.fill(rect, config.Green)
		vector.StrokeRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, config.White, false)
	case level.SpritePlayer:
		r.drawPlayer(s, rect, alpha)
	case level.SpriteMelee:
		r.fill(rect, color.RGBA{R: 255, G: 255, B: 255, A: 120})
	case level.SpriteProjectile:
		c := color.RGBA{R: 140, G: 100, B: 60, A: 255}
		if weapon.Kind(s.Variant) == weapon.Magical {
			c = config.LightBlue
		}
		r.fill(rect, c)
	case level.SpriteParticle:
		if a, ok := r.particles[config.ParticleKind(s.Variant)]; ok {
			r.drawImage(a.Frame(s.Frame), rect, s.FlipX, alpha)
		}
	}

	if r.ShowBoxes && s.Kind != level.SpriteTile {
		vector.StrokeRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 1, config.Red, false)
	}
}

func (r *Renderer) drawEnemy(s level.Sprite, rect geom.Rect) {
	tint := config.Enemies[s.Variant].TintColor
	if TintShader == nil {
		r.fill(rect, tint)
		return
	}
	var fade float32
	if s.Blink {
		fade = 0.5
	}
	op := &ebiten.DrawRectShaderOptions{}
	if s.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(baseSize, 0)
	}
	op.GeoM.Scale(rect.W/baseSize, rect.H/baseSize)
	op.GeoM.Translate(rect.X, rect.Y)
	op.Images[0] = r.base
	op.Uniforms = tintUniforms(tint, fade)
	r.screen.DrawRectShader(baseSize, baseSize, TintShader, op)
}

func (r *Renderer) drawPlayer(s level.Sprite, rect geom.Rect, alpha float32) {
	if s.Status != r.status {
		r.status = s.Status
		if a, ok := r.anims[s.Status]; ok {
			a.Restart()
		}
	}
	frame := 0
	if a, ok := r.anims[s.Status]; ok {
		frame = a.Frame()
	}
	r.drawImage(r.player.Frame(frame), rect, s.FlipX, alpha)
}

func (r *Renderer) fill(rect geom.Rect, c color.Color) {
	vector.DrawFilledRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// drawImage stretches img over rect.
func (r *Renderer) drawImage(img *ebiten.Image, rect geom.Rect, flip bool, alpha float32) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r.op.GeoM.Reset()
	if flip {
		r.op.GeoM.Scale(-1, 1)
		r.op.GeoM.Translate(float64(b.Dx()), 0)
	}
	r.op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	r.op.GeoM.Translate(rect.X, rect.Y)
	r.op.ColorScale.Reset()
	r.op.ColorScale.ScaleAlpha(alpha)
	r.screen.DrawImage(img, &r.op)
}

// scaled grows rect by k around its center.
func scaled(rect geom.Rect, k float64) geom.Rect {
	w, h := rect.W*k, rect.H*k
	return geom.Rect{X: rect.CenterX() - w/2, Y: rect.CenterY() - h/2, W: w, H: h}
}
