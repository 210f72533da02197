package level

import (
	"fmt"

	"github.com/automoto/betrothed/archetypes"
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/rules"
	"github.com/automoto/betrothed/tags"
	"github.com/automoto/betrothed/weapon"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	energySize = 32
	bobHeight  = 8
	bobSeconds = 0.8
	endPulse   = 1.25
)

type archetypeSpawner interface {
	Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry
}

// build spawns every entity of the level from its layouts.
func (l *Level) build() error {
	terrain := l.layouts[layout.Terrain]
	for _, c := range visualLayers {
		var layer []*donburi.Entry
		for _, t := range BuildTileGroup(l.layouts[c], c) {
			switch {
			case c != layout.Terrain:
				layer = append(layer, l.createDecoration(t))
			case !l.keepInternal && InternalTerrain(terrain, t.Col, t.Row):
				layer = append(layer, l.createInternalTerrain(t))
			default:
				layer = append(layer, l.createSolid(archetypes.Terrain, t))
			}
		}
		l.layers = append(l.layers, layer)
	}

	for _, t := range BuildTileGroup(l.layouts[layout.Barriers], layout.Barriers) {
		l.createSolid(archetypes.Barrier, t)
	}
	for _, t := range BuildTileGroup(l.layouts[layout.Borders], layout.Borders) {
		l.createBorder(t)
	}
	for _, t := range BuildTileGroup(l.layouts[layout.Enemies], layout.Enemies) {
		if err := l.createEnemy(t); err != nil {
			return err
		}
	}
	if !l.farmed {
		for _, t := range BuildTileGroup(l.layouts[layout.Energy], layout.Energy) {
			if err := l.createEnergy(t); err != nil {
				return err
			}
		}
	}
	for _, t := range BuildTileGroup(l.layouts[layout.Setup], layout.Setup) {
		switch t.Code {
		case layout.SetupPlayer:
			l.player = l.createPlayer(t)
		case layout.SetupEnd:
			l.end = l.createEndMarker(t)
		default:
			return fmt.Errorf("%w: setup code %d at %d,%d", ErrUnknownCode, t.Code, t.Col, t.Row)
		}
	}
	if l.player == nil {
		return fmt.Errorf("%w: no player spawn", layout.ErrMalformedLayout)
	}
	return nil
}

func (l *Level) createDecoration(t Tile) *donburi.Entry {
	e := archetypes.Decoration.Spawn(l.world)
	components.Tile.SetValue(e, tileData(t, false))
	return e
}

func (l *Level) createInternalTerrain(t Tile) *donburi.Entry {
	e := archetypes.InternalTerrain.Spawn(l.world)
	components.Tile.SetValue(e, tileData(t, true))
	return e
}

// createSolid spawns a terrain or barrier tile that blocks movement.
func (l *Level) createSolid(a archetypeSpawner, t Tile) *donburi.Entry {
	e := a.Spawn(l.world)
	components.Tile.SetValue(e, tileData(t, false))
	obj := newObject(t.Rect, e, tags.ResolvSolid)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)
	return e
}

func (l *Level) createBorder(t Tile) *donburi.Entry {
	e := archetypes.Border.Spawn(l.world)
	components.Tile.SetValue(e, tileData(t, false))
	obj := newObject(t.Rect, e, tags.ResolvBorder)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)
	return e
}

func (l *Level) createPlayer(t Tile) *donburi.Entry {
	e := archetypes.Player.Spawn(l.world)

	w := config.Player.FrameWidth - 2*config.Player.CollisionInset
	h := config.Player.FrameHeight - 2*config.Player.CollisionInset
	r := geom.Rect{W: w, H: h}
	r.X = t.Rect.CenterX() - w/2
	r.SetBottom(t.Rect.Bottom())

	obj := newObject(r, e, tags.ResolvPlayer)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)

	components.Player.SetValue(e, components.PlayerData{
		Facing:    config.DirectionRight,
		Status:    config.Idle,
		LastSafeX: r.X,
		LastSafeY: r.Y,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Speed:    config.Player.Speed,
		OnGround: true,
	})
	return e
}

func (l *Level) createEnemy(t Tile) error {
	typ, ok := config.Enemies[t.Code]
	if !ok {
		return fmt.Errorf("%w: enemy type %d at %d,%d", ErrUnknownCode, t.Code, t.Col, t.Row)
	}
	e := archetypes.Enemy.Spawn(l.world)

	r := geom.Rect{W: typ.FrameWidth, H: typ.FrameHeight}
	r.X = t.Rect.CenterX() - r.W/2
	r.SetBottom(t.Rect.Bottom())
	obj := newObject(r, e, tags.ResolvEnemy)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)

	toughness := rules.RollToughness(l.rng)
	components.Enemy.SetValue(e, components.EnemyData{
		Type:        t.Code,
		TypeConfig:  &typ,
		Speed:       rules.RandomSpeed(l.rng, typ.MinSpeed, typ.MaxSpeed),
		Health:      rules.ToughenHealth(typ.Health, toughness),
		Damage:      rules.ToughenDamage(typ.Damage, toughness),
		Energy:      typ.Energy,
		Toughness:   toughness,
		Resistances: typ.Resistances,
	})
	return nil
}

func (l *Level) createEnergy(t Tile) error {
	value, ok := config.Economy.EnergyValues[t.Code]
	if !ok {
		return fmt.Errorf("%w: energy code %d at %d,%d", ErrUnknownCode, t.Code, t.Col, t.Row)
	}
	e := archetypes.Energy.Spawn(l.world)

	r := geom.Rect{W: energySize, H: energySize}
	r.X = t.Rect.CenterX() - r.W/2
	r.Y = t.Rect.CenterY() - r.H/2
	obj := newObject(r, e, tags.ResolvEnergy)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)

	components.Energy.SetValue(e, components.EnergyData{
		Value:  value,
		Bob:    gween.New(0, -bobHeight, bobSeconds, ease.InOutSine),
		Rising: true,
	})
	return nil
}

func (l *Level) createEndMarker(t Tile) *donburi.Entry {
	e := archetypes.EndMarker.Spawn(l.world)
	obj := newObject(t.Rect, e, tags.ResolvEnd)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)
	components.EndMarker.SetValue(e, components.EndMarkerData{Scale: 1})
	return e
}

// createProjectile launches w from the point x, y. traveled is distance
// already counted against the weapon range.
func (l *Level) createProjectile(w *weapon.Weapon, x, y, facing, traveled float64, replicate bool) *donburi.Entry {
	e := archetypes.Projectile.Spawn(l.world)

	r := geom.Rect{W: config.Combat.ProjectileWidth, H: config.Combat.ProjectileHeight}
	r.X = x - r.W/2
	r.Y = y - r.H/2
	obj := newObject(r, e, tags.ResolvProjectile)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	l.space.Add(obj)

	var speed float64
	switch w.Kind {
	case weapon.Ranged:
		speed = w.Ranged.Speed
	case weapon.Magical:
		speed = w.Magical.Speed
	}
	components.Projectile.SetValue(e, components.ProjectileData{
		Weapon:    w,
		Speed:     speed,
		Facing:    facing,
		StartX:    x - traveled*facing,
		Replicate: replicate,
	})
	return e
}

// createParticle plays kind once, centred horizontally on x with its
// bottom at y.
func (l *Level) createParticle(kind config.ParticleKind, x, y float64, flip bool) *donburi.Entry {
	pc := config.Particles[kind]
	e := archetypes.Particle.Spawn(l.world)
	r := geom.Rect{W: pc.Width, H: pc.Height}
	r.X = x - r.W/2
	r.SetBottom(y)
	components.Particle.SetValue(e, components.ParticleData{
		Kind:   kind,
		Rect:   r,
		Frames: pc.Frames,
		Rate:   pc.FrameRate,
		FlipX:  flip,
	})
	return e
}

func tileData(t Tile, internal bool) components.TileData {
	return components.TileData{
		Category: t.Category,
		Code:     t.Code,
		Col:      t.Col,
		Row:      t.Row,
		Rect:     t.Rect,
		Internal: internal,
	}
}

func newPulse() *gween.Tween {
	return gween.New(1, endPulse, 0.5, ease.InOutSine)
}
