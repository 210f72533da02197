package archetypes

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/tags"
	"github.com/yohamta/donburi"
)

var (
	Terrain = newArchetype(
		tags.Terrain,
		components.Tile,
		components.Object,
	)
	// InternalTerrain is drawn but never collides.
	InternalTerrain = newArchetype(
		tags.Terrain,
		components.Tile,
	)
	Barrier = newArchetype(
		tags.Barrier,
		components.Tile,
		components.Object,
	)
	Border = newArchetype(
		tags.Border,
		components.Tile,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Tile,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.MeleeAttack,
		components.Cooldown,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Energy = newArchetype(
		tags.Energy,
		components.Energy,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	EndMarker = newArchetype(
		tags.EndMarker,
		components.EndMarker,
		components.Object,
	)
	MapNode = newArchetype(
		tags.MapNode,
		components.MapNode,
	)
	MapCursor = newArchetype(
		components.MapCursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
