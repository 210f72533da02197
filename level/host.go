package level

import (
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
)

// Host is everything a level may ask of its owner. The persistent resource
// pools live behind it, as do the transitions out of the level.
type Host interface {
	UpdateHealth(amount float64, damage bool)
	UpdateEnergy(amount int, add bool)
	ResetEnergyOverflow()
	UpdateStamina(amount float64, add bool)
	Stamina() float64
	// ClearEnergyRestriction lifts the reduced rewards applied after loading a save.
	ClearEnergyRestriction()
	// CreateWorld leaves the level for the world map.
	CreateWorld(current, unlocked int)
	Save() error
}

// Intent is the player's input for one frame.
type Intent struct {
	MoveX   float64 // -1 left, 1 right, 0 none
	Jump    bool
	Run     bool
	Melee   bool
	Ranged  bool
	Magical bool
}

// InputSource yields the intent for the current frame.
type InputSource interface {
	Intent() Intent
}

// IntentFunc adapts a function to InputSource.
type IntentFunc func() Intent

func (f IntentFunc) Intent() Intent { return f() }

// SpriteKind says what a Sprite depicts.
type SpriteKind int

const (
	SpriteTile SpriteKind = iota
	SpriteEnergy
	SpriteEnemy
	SpriteEndMarker
	SpritePlayer
	SpriteMelee
	SpriteProjectile
	SpriteParticle
)

// Sprite is one draw call in screen space.
type Sprite struct {
	Kind     SpriteKind
	Category layout.Category // Tiles only
	Variant  int             // Cell code, enemy type, weapon kind or particle kind
	Rect     geom.Rect
	Frame    int
	FlipX    bool
	Status   config.StateID // Player only
	Blink    bool           // Drawn faded while invincible
	Scale    float64
}

// Cloud is one backdrop cloud in world space.
type Cloud struct {
	X, Y  float64
	Speed float64
	Size  int
}

// Backdrop is the sky behind the tiles.
type Backdrop struct {
	Horizon   float64 // Y of the horizon line
	Water     bool
	Mountains bool
	Clouds    []Cloud
	Width     float64
}

// Renderer receives draw calls, back to front.
type Renderer interface {
	DrawBackdrop(b *Backdrop, cameraX float64)
	DrawSprite(s Sprite)
}
