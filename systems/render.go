package systems

import (
	"image/color"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewBounds returns the world-space rectangle visible through the camera,
// padded for culling.
func viewBounds(screen *ebiten.Image, camera *components.CameraData) (minX, minY, maxX, maxY float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 64.0
	minX = camera.Position.X - float64(width)/2 - padding
	maxX = camera.Position.X + float64(width)/2 + padding
	minY = camera.Position.Y - float64(height)/2 - padding
	maxY = camera.Position.Y + float64(height)/2 + padding
	return
}

// DrawEntities draws pickups, enemies, bullets and the player as rectangles.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := GetCamera(ecs)
	if !ok {
		return
	}
	minX, minY, maxX, maxY := viewBounds(screen, camera)
	visible := func(o *resolv.Object) bool {
		return o.X+o.W >= minX && o.X <= maxX && o.Y+o.H >= minY && o.Y <= maxY
	}

	tags.HealthPickUp.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if visible(o.Object) {
			drawWorldRect(screen, camera, o.X, o.Y, o.W, o.H, cfg.HealthPickUp.Color)
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o.Object) {
			return
		}
		clr := cfg.Enemy.Color
		if components.Flash.Get(e).Duration > 0 {
			clr = cfg.Enemy.FlashColor
		}
		drawWorldRect(screen, camera, o.X, o.Y, o.W, o.H, clr)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if visible(o.Object) {
			drawWorldRect(screen, camera, o.X, o.Y, o.W, o.H, cfg.Bullet.Color)
		}
	})

	if e, player, ok := GetPlayer(ecs); ok {
		o := components.Object.Get(e)
		clr := cfg.UI.PlayerColor
		now := components.Clock.Get(GetOrCreateClock(ecs)).Now()
		if player.Status.InvincibleAt(now) {
			clr = halfAlpha(clr)
		}
		drawWorldRect(screen, camera, o.X, o.Y, o.W, o.H, clr)
		drawFacing(screen, camera, o.Object, player)
	}
}

// drawFacing marks the side the player is facing, where bullets leave.
func drawFacing(screen *ebiten.Image, camera *components.CameraData, o *resolv.Object, player *components.PlayerData) {
	if player.Controller == nil {
		return
	}
	x := o.X + o.W - 4
	if player.Controller.Facing() < 0 {
		x = o.X
	}
	drawWorldRect(screen, camera, x, o.Y+6, 4, 4, cfg.White)
}

// halfAlpha halves a straight-alpha color into premultiplied form.
func halfAlpha(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A / 2}
}

// DrawHealthBars draws a bar over every damaged enemy.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := GetCamera(ecs)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current >= hp.Max || hp.Max <= 0 {
			return
		}
		o := components.Object.Get(e)

		barWidth := 20.0
		barHeight := 3.0
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4

		healthPercentage := float64(hp.Current) / float64(hp.Max)
		drawX, drawY := worldToScreen(screen, camera, barX, barY)

		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth*healthPercentage), float32(barHeight), cfg.BrightGreen, false)
	})
}
