package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every scene draws on.
const Default ecs.LayerID = iota

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per tick.
type PlayerConfig struct {
	// Movement
	RunningSpeed     float64 // force applied per unit of horizontal input
	RunningDrag      float64 // horizontal velocity multiplier per tick
	InitialJumpSpeed float64 // negative is up

	// Shooting
	ShotReloadTime     time.Duration
	BulletSpawnOffsetX float64 // from the body center when facing right
	BulletSpawnOffsetY float64
	BulletSpeed        float64

	// Damage
	Health            int
	KnockbackSpeed    float64
	DamageRecovery    time.Duration
	InvincibilityTime time.Duration
	DeathWait         time.Duration

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
	GroundLeeway    float64 // probe depth under the feet, pixels
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxStepSpeed float64 // vertical movement per tick, either direction
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Width    float64
	Height   float64
	Damage   int
	Lifetime int // frames
	Color    color.RGBA
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	PatrolLegSeconds float32 // time to walk one way
	HitFlashFrames   int
	Color            color.RGBA
	FlashColor       color.RGBA
}

// HealthPickUpConfig contains pickup drawing values
type HealthPickUpConfig struct {
	Color color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DefaultOffsetX float64
	DefaultOffsetY float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	PlayerDamageIntensity float64 // pixels
	PlayerDamageDuration  int     // frames
}

// ScreenFadeConfig contains the level transition veil configuration
type ScreenFadeConfig struct {
	Color       color.RGBA
	FadeSeconds float32
}

// LevelConfig lists where levels are found
type LevelConfig struct {
	Dir string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// UIConfig contains HUD values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	GroundColor     color.RGBA
	LevelClearColor color.RGBA
	BackgroundColor color.RGBA
	PlayerColor     color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	LevelIndex int  // Level to start on when skipping the menu
	Hitboxes   bool // Outline collision objects and show controller state
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Bullet BulletConfig
var Enemy EnemyConfig
var HealthPickUp HealthPickUpConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var ScreenFade ScreenFadeConfig
var Level LevelConfig
var Pause PauseConfig
var Menu MenuConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Black        = color.RGBA{A: 255}
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
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 10.0,
		MaxStepSpeed: 16.0,
	}

	Player = PlayerConfig{
		RunningSpeed:     1.0,
		RunningDrag:      0.8,
		InitialJumpSpeed: -9.0,

		ShotReloadTime:     250 * time.Millisecond,
		BulletSpawnOffsetX: 10,
		BulletSpawnOffsetY: -2,
		BulletSpeed:        7,

		Health:            5,
		KnockbackSpeed:    4,
		DamageRecovery:    250 * time.Millisecond,
		InvincibilityTime: 1500 * time.Millisecond,
		DeathWait:         2 * time.Second,

		CollisionWidth:  14,
		CollisionHeight: 28,
		GroundLeeway:    1,
	}

	Bullet = BulletConfig{
		Width:    6,
		Height:   3,
		Damage:   1,
		Lifetime: 120,
		Color:    Yellow,
	}

	Enemy = EnemyConfig{
		PatrolLegSeconds: 2,
		HitFlashFrames:   6,
		Color:            LightRed,
		FlashColor:       White,
	}

	HealthPickUp = HealthPickUpConfig{
		Color: BrightGreen,
	}

	Camera = CameraConfig{
		DefaultOffsetX: 32,
		DefaultOffsetY: -24,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerDamageIntensity: 4,
		PlayerDamageDuration:  15,
	}

	ScreenFade = ScreenFadeConfig{
		Color:       Black,
		FadeSeconds: 0.75,
	}

	Level = LevelConfig{
		Dir: "levels",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "BLASTER",
		TitleY:            110,
		MenuStartY:        180,
		MenuItemHeight:    24,
		MenuItemGap:       8,
	}

	UI = UIConfig{
		HealthBarWidth:  130,
		HealthBarHeight: 13,
		HealthBarMargin: 10,
		HealthBarBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFg:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		GroundColor:     color.RGBA{R: 90, G: 80, B: 110, A: 255},
		LevelClearColor: color.RGBA{R: 255, G: 215, B: 0, A: 160},
		BackgroundColor: color.RGBA{R: 24, G: 28, B: 44, A: 255},
		PlayerColor:     color.RGBA{R: 120, G: 200, B: 255, A: 255},
	}
}
