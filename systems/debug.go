package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in view and prints the player
// controller's state. Enabled with -hitboxes.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	camera, ok := GetCamera(ecs)
	if !ok {
		return // No camera yet
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in world coordinates
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	viewX := camera.Position.X - width/2
	viewY := camera.Position.Y - height/2

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < viewX || obj.X > viewX+width || obj.Y+obj.H < viewY || obj.Y > viewY+height {
			continue
		}

		x, y := worldToScreen(screen, camera, obj.X, obj.Y)
		c := debugColor(obj.HasTags)

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	_, player, ok := GetPlayer(ecs)
	if !ok || player.Controller == nil {
		return
	}
	ctrl := player.Controller
	line := fmt.Sprintf("%s ground=%t shoot=%t facing=%+.0f",
		ctrl.State(), ctrl.TouchingGround(), ctrl.CanShoot(), ctrl.Facing())
	text.Draw(screen, line, fonts.Small.Get(), 4, int(height)-4, cfg.Yellow)
}

func debugColor(hasTags func(...string) bool) color.Color {
	switch {
	case hasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255} // Grey
	case hasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case hasTags(tags.ResolvEnemy):
		return color.RGBA{255, 0, 0, 255} // Red
	case hasTags(tags.ResolvBullet):
		return color.RGBA{0, 255, 0, 255} // Green
	}
	return color.RGBA{0, 255, 255, 255} // Cyan for triggers
}
