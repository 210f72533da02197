package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/tags"
	"github.com/automoto/betrothed/weapon"
	"github.com/yohamta/donburi"
)

// Draw emits the frame back to front in screen space: backdrop, tile
// layers, pickups, enemies, the goal, the player and its swing,
// projectiles and particles.
func (l *Level) Draw(r Renderer) {
	r.DrawBackdrop(l.backdrop, l.cameraX)

	for _, layer := range l.layers {
		for _, e := range layer {
			t := components.Tile.Get(e)
			if !l.visible(t.Rect) {
				continue
			}
			r.DrawSprite(Sprite{
				Kind:     SpriteTile,
				Category: t.Category,
				Variant:  t.Code,
				Rect:     l.toScreen(t.Rect),
				Scale:    1,
			})
		}
	}

	tags.Energy.Each(l.world, func(e *donburi.Entry) {
		en := components.Energy.Get(e)
		rect := components.Object.Get(e).Rect().Offset(0, en.Offset)
		if l.visible(rect) {
			r.DrawSprite(Sprite{Kind: SpriteEnergy, Variant: en.Value, Rect: l.toScreen(rect), Scale: 1})
		}
	})

	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		rect := components.Object.Get(e).Rect()
		if l.visible(rect) {
			r.DrawSprite(Sprite{
				Kind:    SpriteEnemy,
				Variant: en.Type,
				Rect:    l.toScreen(rect),
				FlipX:   en.Speed < 0,
				Blink:   en.Invincible,
				Scale:   1,
			})
		}
	})

	if l.end != nil {
		m := components.EndMarker.Get(l.end)
		rect := components.Object.Get(l.end).Rect()
		if l.visible(rect) {
			r.DrawSprite(Sprite{Kind: SpriteEndMarker, Rect: l.toScreen(rect), Scale: m.Scale})
		}
	}

	l.drawPlayer(r)

	tags.Projectile.Each(l.world, func(e *donburi.Entry) {
		pr := components.Projectile.Get(e)
		rect := components.Object.Get(e).Rect()
		r.DrawSprite(Sprite{
			Kind:    SpriteProjectile,
			Variant: int(pr.Weapon.Kind),
			Rect:    l.toScreen(rect),
			FlipX:   pr.Facing < 0,
			Scale:   1,
		})
	})

	tags.Particle.Each(l.world, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		r.DrawSprite(Sprite{
			Kind:    SpriteParticle,
			Variant: int(p.Kind),
			Rect:    l.toScreen(p.Rect),
			Frame:   int(p.Frame),
			FlipX:   p.FlipX,
			Scale:   1,
		})
	})
}

// drawPlayer draws the sprite frame around the collider. During a swing the
// frame widens by the weapon range; facing left it grows leftwards so the
// body does not appear to slide.
func (l *Level) drawPlayer(r Renderer) {
	p := components.Player.Get(l.player)
	rect := l.PlayerRect().Inset(-config.Player.CollisionInset)

	hit, swinging := l.meleeRect()
	if swinging {
		rect.W += hit.W
		if p.Facing < 0 {
			rect.X -= hit.W
		}
	}

	r.DrawSprite(Sprite{
		Kind:   SpritePlayer,
		Rect:   l.toScreen(rect),
		FlipX:  p.Facing < 0,
		Status: p.Status,
		Blink:  p.Invincible,
		Scale:  1,
	})

	if swinging {
		r.DrawSprite(Sprite{
			Kind:    SpriteMelee,
			Variant: int(weapon.Melee),
			Rect:    l.toScreen(hit),
			FlipX:   p.Facing < 0,
			Scale:   1,
		})
	}
}

// Tiles returns the drawn tiles of category c for debug views.
func (l *Level) Tiles(c layout.Category) []components.TileData {
	var out []components.TileData
	for _, layer := range l.layers {
		for _, e := range layer {
			if t := components.Tile.Get(e); t.Category == c {
				out = append(out, *t)
			}
		}
	}
	return out
}

func (l *Level) toScreen(r geom.Rect) geom.Rect {
	return r.Offset(-l.cameraX, 0)
}

func (l *Level) visible(r geom.Rect) bool {
	return r.Right() > l.cameraX && r.Left() < l.cameraX+float64(config.Screen.Width)
}
