package systems

import (
	"os"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// createWorld receives the level index to start from.
func NewUpdateMenu(sceneChanger SceneChanger, createWorld func(levelIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}

		PlaySFX(e, cfg.SoundPlayerShoot)
		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuStart:
			// Failures are logged; a stale save only brings CONTINUE back.
			_ = ClearGameProgress()
			StopMusic(e)
			sceneChanger.ChangeScene(createWorld(0))
		case components.MainMenuContinue:
			index := 0
			if progress, err := LoadGameProgress(); err == nil && progress != nil {
				index = progress.LevelIndex
			}
			StopMusic(e)
			sceneChanger.ChangeScene(createWorld(index))
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		drawCentered(screen, getOptionLabel(option), menuFont, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "START"
	case components.MainMenuContinue:
		return "CONTINUE"
	case components.MainMenuExit:
		return "EXIT"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := []components.MainMenuOption{components.MainMenuStart}
		if HasSaveGame() {
			visibleOptions = append(visibleOptions, components.MainMenuContinue)
		}
		visibleOptions = append(visibleOptions, components.MainMenuExit)

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
