package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/systems"
	"github.com/automoto/blaster/systems/factory"
	"github.com/automoto/blaster/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a scene playing the level at levelIndex.
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	change, index := systems.PendingLevelChange(ps.ecs)
	switch change {
	case components.LevelChangeRestart:
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, index))
	case components.LevelChangeNext:
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, index+1))
	case components.LevelChangeMenu:
		systems.StopMusic(ps.ecs)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Render sounds up front so the first shot doesn't stall a frame
	systems.PreloadAudio()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawScreenFade)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	systems.SetPausePanel(ps.ecs, ui.NewSettingsUI(
		func() { systems.SetPaused(ps.ecs, false) },
		func() {
			systems.StopMusic(ps.ecs)
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		},
	))

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(ps.ecs, ps.levelIndex)
	levelData := components.Level.Get(level)
	current := levelData.CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ps.ecs, current.Width, current.Height, 16, 16)

	for _, solid := range current.Solids {
		factory.CreateWall(ps.ecs, solid.X, solid.Y, solid.W, solid.H)
	}
	for _, spawn := range current.Enemies {
		factory.CreateEnemy(ps.ecs, spawn)
	}
	for _, pickUp := range current.HealthPickUps {
		factory.CreateHealthPickUp(ps.ecs, pickUp)
	}
	for _, trigger := range current.CameraTriggers {
		factory.CreateCameraTrigger(ps.ecs, trigger)
	}
	for _, exit := range current.LevelClears {
		factory.CreateLevelClear(ps.ecs, exit)
	}

	spawn := current.PlayerSpawn
	player := factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y)
	if err := systems.AttachPlayerController(ps.ecs, player); err != nil {
		log.Fatalf("Failed to create player controller: %v", err)
	}

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y, systems.DefaultCameraRig(current.Width, current.Height))

	systems.StartLevel(ps.ecs)
}
