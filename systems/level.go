package systems

import (
	"image/color"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level singleton, if the scene has one.
func GetLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	e, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(e), true
}

// StartLevel fades the world in and hands control to the player once the
// veil is gone.
func StartLevel(ecs *ecs.ECS) {
	InitiateScreenFade(ecs, false, cfg.ScreenFade.FadeSeconds, func() {
		_, player, ok := GetPlayer(ecs)
		if !ok || player.Controller == nil {
			return
		}
		// Fails only if the player died during the fade; the restart is
		// already on its way then.
		_ = player.Controller.SetState(playercontrol.Controllable)
	})
	if cfg.Audio.PlayMusic {
		PlayMusic(ecs, cfg.MusicLevelTheme)
	}
}

// RestartLevel fades out and asks the scene to rebuild the current level.
func RestartLevel(ecs *ecs.ECS) {
	beginLevelChange(ecs, components.LevelChangeRestart)
}

// CompleteLevel freezes the player and moves on to the next level, or back
// to the menu after the last one.
func CompleteLevel(ecs *ecs.ECS) {
	level, ok := GetLevel(ecs)
	if !ok || level.Transitioning {
		return
	}

	if _, player, ok := GetPlayer(ecs); ok && player.Controller != nil {
		_ = player.Controller.SetState(playercontrol.Uncontrollable)
	}

	next := level.LevelIndex + 1
	if next < len(level.Levels) {
		_ = SaveGameProgress(next)
		beginLevelChange(ecs, components.LevelChangeNext)
		return
	}
	_ = ClearGameProgress()
	beginLevelChange(ecs, components.LevelChangeMenu)
}

func beginLevelChange(ecs *ecs.ECS, change components.LevelChange) {
	level, ok := GetLevel(ecs)
	if !ok || level.Transitioning {
		return
	}
	level.Transitioning = true
	InitiateScreenFade(ecs, true, cfg.ScreenFade.FadeSeconds, func() {
		level.Pending = change
	})
}

// PendingLevelChange reports a finished transition for the scene to act on.
func PendingLevelChange(ecs *ecs.ECS) (components.LevelChange, int) {
	level, ok := GetLevel(ecs)
	if !ok {
		return components.LevelChangeNone, 0
	}
	return level.Pending, level.LevelIndex
}

// DrawLevel renders solids and the level exit.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := GetCamera(ecs)
	if !ok {
		return
	}

	screen.Fill(cfg.UI.BackgroundColor)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawWorldRect(screen, camera, obj.X, obj.Y, obj.W, obj.H, cfg.UI.GroundColor)
	})

	tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !obj.HasTags(tags.ResolvLevelClearTrigger) {
			return
		}
		drawWorldRect(screen, camera, obj.X, obj.Y, obj.W, obj.H, cfg.UI.LevelClearColor)
	})
}

// drawWorldRect fills a world-space rectangle through the camera.
func drawWorldRect(screen *ebiten.Image, camera *components.CameraData, x, y, w, h float64, clr color.Color) {
	sx, sy := worldToScreen(screen, camera, x, y)
	vector.FillRect(screen, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

// worldToScreen centers the camera position on screen.
func worldToScreen(screen *ebiten.Image, camera *components.CameraData, x, y float64) (float64, float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return x - camera.Position.X + float64(width)/2, y - camera.Position.Y + float64(height)/2
}
