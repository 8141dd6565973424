package systems

import (
	"math"

	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player through the active rig, then adds shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if playerEntry, _, ok := GetPlayer(e); ok {
		obj := components.Object.Get(playerEntry)
		camera.Position.X, camera.Position.Y = camera.Rig.Follow(obj.X+obj.W/2, obj.Y+obj.H/2)
	}

	updateScreenShake(cameraEntry, camera)
}

// DefaultCameraRig is the rig a level starts with: the configured offset,
// limited so the view never leaves the level.
func DefaultCameraRig(levelWidth, levelHeight int) gamemath.CameraRig {
	rig := gamemath.CameraRig{
		MinX:    math.Inf(-1),
		MinY:    math.Inf(-1),
		MaxX:    math.Inf(1),
		MaxY:    math.Inf(1),
		OffsetX: config.Camera.DefaultOffsetX,
		OffsetY: config.Camera.DefaultOffsetY,
	}
	return rig.Constrain(float64(config.C.Width), float64(config.C.Height), float64(levelWidth), float64(levelHeight))
}

// SetNewCameraAttributes replaces the follow limits and offset. The limits
// are still kept inside the level.
func SetNewCameraAttributes(e *ecs.ECS, rig gamemath.CameraRig) {
	camera, ok := GetCamera(e)
	if !ok {
		return
	}
	if level, ok := GetLevel(e); ok && level.CurrentLevel != nil {
		rig = rig.Constrain(float64(config.C.Width), float64(config.C.Height),
			float64(level.CurrentLevel.Width), float64(level.CurrentLevel.Height))
	}
	camera.Rig = rig
}

// GetCamera returns the camera singleton, if the scene has one.
func GetCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
