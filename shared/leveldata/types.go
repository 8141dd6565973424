// Package leveldata parses TMX levels into plain data. It has no dependencies
// on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/blaster/shared/gamemath"

// Level holds everything a scene needs to populate a world from a TMX file.
type Level struct {
	Name   string
	Width  int // pixels
	Height int // pixels

	Solids         []Rect
	PlayerSpawn    Point
	Enemies        []EnemySpawn
	HealthPickUps  []HealthPickUp
	CameraTriggers []CameraTrigger
	LevelClears    []Rect
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// EnemySpawn is an enemy standing on Rect. Patrol is the distance walked to
// the right and back; zero means it stands still.
type EnemySpawn struct {
	Rect
	AttackPower int
	Health      int
	Patrol      float64
}

type HealthPickUp struct {
	Rect
	HealAmount int
}

// CameraTrigger replaces the camera rig while the player overlaps it.
type CameraTrigger struct {
	Rect
	Rig gamemath.CameraRig
}
