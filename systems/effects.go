package systems

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenFade(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// TriggerHitFlash flashes an entity for the configured number of frames.
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.Get(entry).Duration = cfg.Enemy.HitFlashFrames
}

// InitiateScreenFade starts the veil towards opaque (fadeOut) or clear.
// onDone runs once, on the tick the fade finishes. A new fade replaces the
// running one without calling its onDone.
func InitiateScreenFade(ecs *ecs.ECS, fadeOut bool, seconds float32, onDone func()) {
	fade := getOrCreateScreenFade(ecs)
	from, to := float32(1), float32(0)
	if fadeOut {
		from, to = 0, 1
	}
	fade.Alpha = float64(from)
	fade.Tween = gween.New(from, to, seconds, ease.Linear)
	fade.OnDone = onDone
}

func updateScreenFade(ecs *ecs.ECS) {
	fade := getOrCreateScreenFade(ecs)
	if fade.Tween == nil {
		return
	}

	alpha, done := fade.Tween.Update(1 / float32(ebiten.TPS()))
	fade.Alpha = float64(alpha)
	if !done {
		return
	}

	fade.Tween = nil
	onDone := fade.OnDone
	fade.OnDone = nil
	if onDone != nil {
		onDone()
	}
}

// IsFading reports whether a fade is still running.
func IsFading(ecs *ecs.ECS) bool {
	return getOrCreateScreenFade(ecs).Tween != nil
}

// DrawScreenFade draws the veil over everything but the pause overlay.
func DrawScreenFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fade := getOrCreateScreenFade(ecs)
	if fade.Alpha <= 0 {
		return
	}

	clr := cfg.ScreenFade.Color
	clr.A = uint8(float64(clr.A) * min(fade.Alpha, 1))
	// vector takes premultiplied alpha
	clr.R = uint8(float64(clr.R) * min(fade.Alpha, 1))
	clr.G = uint8(float64(clr.G) * min(fade.Alpha, 1))
	clr.B = uint8(float64(clr.B) * min(fade.Alpha, 1))

	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), clr, false)
}

func getOrCreateScreenFade(ecs *ecs.ECS) *components.ScreenFadeData {
	entry, ok := components.ScreenFade.First(ecs.World)
	if !ok {
		entry = archetypes.ScreenFade.Spawn(ecs)
	}
	return components.ScreenFade.Get(entry)
}
