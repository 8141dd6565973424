package systems

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and drives the pause panel.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}

	if pause.IsPaused && pause.Panel != nil {
		pause.Panel.Update()
	}
}

// SetPaused freezes or resumes gameplay along with the music.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		PauseMusic(ecs)
	} else {
		ResumeMusic(ecs)
	}
}

// DrawPause renders the overlay and the pause panel on top of the world.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	if pause.Panel != nil {
		pause.Panel.Draw(screen)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "Mouse: Adjust   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// SetPausePanel installs the overlay drawn while paused.
func SetPausePanel(ecs *ecs.ECS, panel components.PausePanel) {
	GetOrCreatePause(ecs).Panel = panel
}
