package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the player's health bar and the level name in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	_, player, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	status := player.Status
	margin := float32(cfg.UI.HealthBarMargin)
	barW, barH := float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight)

	vector.FillRect(screen, margin, margin, barW, barH, cfg.UI.HealthBarBg, false)

	ratio := float32(0)
	if status.MaxHP > 0 {
		ratio = float32(max(status.HP, 0)) / float32(status.MaxHP)
	}
	vector.FillRect(screen, margin, margin, barW*ratio, barH, cfg.UI.HealthBarFg, false)

	face := fonts.Small.Get()
	label := fmt.Sprintf("HP %d/%d", max(status.HP, 0), status.MaxHP)
	text.Draw(screen, label, face, int(margin)+4, int(margin+barH)-3, cfg.White)

	if level, ok := GetLevel(ecs); ok && level.CurrentLevel != nil {
		name := level.CurrentLevel.Name
		width := float64(screen.Bounds().Dx())
		x := int(width) - int(margin) - font.MeasureString(face, name).Ceil()
		text.Draw(screen, name, face, x, int(margin+barH)-3, cfg.White)
	}
}

// centerTextX returns the x coordinate that centers str on a screen of the given width.
func centerTextX(str string, face font.Face, width float64) int {
	textWidth := font.MeasureString(face, str).Ceil()
	return int((width - float64(textWidth)) / 2)
}

// drawCentered draws str horizontally centered at baseline y.
func drawCentered(screen *ebiten.Image, str string, face font.Face, y int, clr color.Color) {
	x := centerTextX(str, face, float64(screen.Bounds().Dx()))
	text.Draw(screen, str, face, x, y, clr)
}
