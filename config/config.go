package config

import (
	"image/color"
	"time"
)

// ScreenConfig describes the logical viewport.
type ScreenConfig struct {
	Width  int
	Height int
	Title  string
}

// TilesConfig contains static geometry settings
type TilesConfig struct {
	Size          int     // Edge length of one grid cell in pixels
	YTiles        int     // Rows a level is expected to have
	BarrierOffset float64 // Barriers sit this far above their cell for head clearance
	TreeOffset    float64 // Trees are drawn this far above their cell
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, pixels per 60 Hz frame
	Speed      float64
	RunSpeed   float64
	JumpHeight float64 // Negative: up is -y

	// Stamina per 60 Hz frame
	StaminaDrain float64
	StaminaRegen float64

	// Invincibility
	HurtInvincibility  time.Duration
	StompInvincibility time.Duration

	// Dimensions
	FrameWidth      float64
	FrameHeight     float64
	CollisionInset  float64 // Trimmed from each side of the frame to avoid seam catching
	OnGroundEpsilon float64 // vy above this means falling
}

// PhysicsConfig contains global simulation values
type PhysicsConfig struct {
	Gravity float64 // Added to vy every 60 Hz frame
}

// CombatConfig contains combat tuning values
type CombatConfig struct {
	StompMargin        float64 // Max gap between enemy center and player feet
	StompMinFall       float64 // Player vy must exceed this to stomp
	StompDamage        float64
	StompBackfireOdds  float64 // Chance the stomp still hurts the player
	StompBackfireShare float64 // Share of enemy damage taken on backfire
	EnemyHitReact      time.Duration
	StunBandLow        float64 // Stun lower bound as a fraction of cooldown
	StunBandHigh       float64 // Stun upper bound as a fraction of cooldown
	ToughnessWeights   [3]int  // Weights for toughness 0, 1 and 2
	ToughnessDamage    float64 // Damage multiplier added per toughness point
	ProjectileWidth    float64
	ProjectileHeight   float64
	MagicRegen         float64 // Power restored per second
}

// EconomyConfig contains resource pool defaults and energy rules
type EconomyConfig struct {
	MaxHealth          float64
	MaxEnergy          int
	MaxEnergyOverflow  int
	MaxStamina         float64
	OverflowResetShare float64 // Spending below max*(1-share) clears overflow
	FarmedRewardDiv    int
	EnergyValues       map[int]int // Energy pickup cell code -> value
	FallDamage         float64
	FallEnergyLossMin  int
	FallEnergyLossMax  int
	CompletionHeal     float64
	DeathEnergyKeep    float64 // Share of energy kept after dying
}

// CameraConfig contains dead-zone scroll settings
type CameraConfig struct {
	DeadZone float64 // Fraction of the viewport on each side where the camera takes over
}

// LevelFlowConfig contains orchestrator timings
type LevelFlowConfig struct {
	MaxStep          float64 // Largest dt simulated in one update, seconds
	FallDeathScreens float64 // Fall death when rect top passes this many screen heights
	CompletionDelay  time.Duration
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string
	Health      float64
	Damage      float64
	Energy      int
	MinSpeed    int
	MaxSpeed    int
	Resistances [3]int // Melee, ranged, magical on a 0-5 scale

	FrameWidth  float64
	FrameHeight float64

	TintColor color.RGBA
}

// ParticleConfig describes one particle effect
type ParticleConfig struct {
	Frames    int
	FrameRate float64 // Frames advanced per 60 Hz frame
	Width     float64
	Height    float64
}

// BackdropConfig contains sky decoration settings
type BackdropConfig struct {
	Clouds        int
	CloudMinY     float64
	CloudMaxY     float64
	CloudParallax float64
	WaterHeight   float64
	SkyColor      color.RGBA
	WaterColor    color.RGBA
}

// UIConfig contains HUD and menu styling
type UIConfig struct {
	HUDMargin    float64
	BarWidth     float64
	BarHeight    float64
	BarSpacing   float64
	FontSize     float64
	TitleSize    float64
	MenuWidth    int
	ButtonHeight int
}

// InputConfig contains device-independent input tuning
type InputConfig struct {
	AnalogDeadzone float64 // Stick deflection below this is ignored, 0-1
}

// DebugConfig contains command-line overrides
type DebugConfig struct {
	Slot      string
	Level     int    // Level to enter on start, -1 to open the world map
	WatchDir  string // Layout directory to hot reload, empty to disable
	ShowBoxes bool
	Seed      uint64
}

// Global configuration instances
var Screen ScreenConfig
var Tiles TilesConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Economy EconomyConfig
var Camera CameraConfig
var LevelFlow LevelFlowConfig
var Enemies map[int]EnemyTypeConfig
var Particles map[ParticleKind]ParticleConfig
var Backdrop BackdropConfig
var UI UIConfig
var Input InputConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green        = color.RGBA{R: 40, G: 200, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Screen = ScreenConfig{
		Width:  1280,
		Height: 704,
		Title:  "The Betrothed",
	}

	Tiles = TilesConfig{
		Size:          64,
		YTiles:        11,
		BarrierOffset: 16,
		TreeOffset:    64,
	}

	Physics = PhysicsConfig{
		Gravity: 0.8,
	}

	Player = PlayerConfig{
		Speed:      6,
		RunSpeed:   9,
		JumpHeight: -16,

		StaminaDrain: 1,
		StaminaRegen: 0.5,

		HurtInvincibility:  time.Second,
		StompInvincibility: 300 * time.Millisecond,

		FrameWidth:      48,
		FrameHeight:     64,
		CollisionInset:  2,
		OnGroundEpsilon: 1,
	}

	Combat = CombatConfig{
		StompMargin:        40,
		StompMinFall:       1,
		StompDamage:        1,
		StompBackfireOdds:  0.25,
		StompBackfireShare: 0.25,
		EnemyHitReact:      400 * time.Millisecond,
		StunBandLow:        0.75,
		StunBandHigh:       1.5,
		ToughnessWeights:   [3]int{6, 3, 1},
		ToughnessDamage:    0.25,
		ProjectileWidth:    24,
		ProjectileHeight:   8,
		MagicRegen:         2,
	}

	Economy = EconomyConfig{
		MaxHealth:          20,
		MaxEnergy:          100,
		MaxEnergyOverflow:  25,
		MaxStamina:         1800,
		OverflowResetShare: 0.1,
		FarmedRewardDiv:    3,
		EnergyValues:       map[int]int{0: 1, 1: 5, 2: 10},
		FallDamage:         3,
		FallEnergyLossMin:  5,
		FallEnergyLossMax:  15,
		CompletionHeal:     2,
		DeathEnergyKeep:    0.5,
	}

	Camera = CameraConfig{
		DeadZone: 0.25,
	}

	LevelFlow = LevelFlowConfig{
		MaxStep:          1.0 / 12,
		FallDeathScreens: 3,
		CompletionDelay:  1500 * time.Millisecond,
	}

	Enemies = map[int]EnemyTypeConfig{
		0: {
			Name:        "Skeleton",
			Health:      2,
			Damage:      1,
			Energy:      2,
			MinSpeed:    3,
			MaxSpeed:    6,
			Resistances: [3]int{0, 0, 1},
			FrameWidth:  44,
			FrameHeight: 64,
			TintColor:   color.RGBA{R: 230, G: 230, B: 210, A: 255},
		},
		1: {
			Name:        "Zombie",
			Health:      3,
			Damage:      2,
			Energy:      3,
			MinSpeed:    2,
			MaxSpeed:    4,
			Resistances: [3]int{0, 3, 1},
			FrameWidth:  44,
			FrameHeight: 64,
			TintColor:   color.RGBA{R: 90, G: 160, B: 90, A: 255},
		},
		2: {
			Name:        "Wraith",
			Health:      2,
			Damage:      1.5,
			Energy:      4,
			MinSpeed:    4,
			MaxSpeed:    7,
			Resistances: [3]int{2, 5, 0},
			FrameWidth:  40,
			FrameHeight: 56,
			TintColor:   color.RGBA{R: 150, G: 150, B: 220, A: 200},
		},
	}

	Particles = map[ParticleKind]ParticleConfig{
		ParticleJump:       {Frames: 6, FrameRate: 0.25, Width: 48, Height: 32},
		ParticleLand:       {Frames: 6, FrameRate: 0.25, Width: 64, Height: 24},
		ParticleEnemyDeath: {Frames: 8, FrameRate: 0.2, Width: 64, Height: 64},
	}

	Backdrop = BackdropConfig{
		Clouds:        12,
		CloudMinY:     32,
		CloudMaxY:     240,
		CloudParallax: 0.5,
		WaterHeight:   96,
		SkyColor:      color.RGBA{R: 120, G: 180, B: 235, A: 255},
		WaterColor:    color.RGBA{R: 40, G: 90, B: 170, A: 220},
	}

	UI = UIConfig{
		HUDMargin:    16,
		BarWidth:     240,
		BarHeight:    14,
		BarSpacing:   6,
		FontSize:     20,
		TitleSize:    40,
		MenuWidth:    320,
		ButtonHeight: 48,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}

	Debug = DebugConfig{
		Slot:  "slot0",
		Level: -1,
		Seed:  0,
	}
}
