package systems

import (
	"fmt"
	"time"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/automoto/blaster/shared/triggers"
	"github.com/automoto/blaster/systems/factory"
	"github.com/automoto/blaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this frame's input to the controller and steps it.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		player.Controller.OnFrame(PlayerIntent(input))
		player.Controller.OnTick()
	})
}

// AttachPlayerController builds the player's controller around its body in
// the world.
func AttachPlayerController(ecs *ecs.ECS, e *donburi.Entry) error {
	c, err := playercontrol.New(cfg.PlayerControlConfig(), playercontrol.Deps{
		Body:     playerBody{e},
		Ground:   groundSensor{e},
		Position: positioner{e},
		Events:   &playerEvents{ecs: ecs},
		Clock:    worldClock{GetOrCreateClock(ecs)},
	})
	if err != nil {
		return fmt.Errorf("failed to create player controller: %w", err)
	}
	components.Player.Get(e).Controller = c
	return nil
}

// playerBody exposes the physics component with unit mass: a force is an
// immediate change in velocity.
type playerBody struct{ e *donburi.Entry }

func (b playerBody) Velocity() playercontrol.Vec {
	p := components.Physics.Get(b.e)
	return playercontrol.Vec{X: p.SpeedX, Y: p.SpeedY}
}

func (b playerBody) SetVelocity(v playercontrol.Vec) {
	p := components.Physics.Get(b.e)
	p.SpeedX, p.SpeedY = v.X, v.Y
}

func (b playerBody) ApplyForce(f playercontrol.Vec) {
	p := components.Physics.Get(b.e)
	p.SpeedX += f.X
	p.SpeedY += f.Y
}

func (b playerBody) SetKinematic(kinematic bool) {
	components.Physics.Get(b.e).Kinematic = kinematic
}

type groundSensor struct{ e *donburi.Entry }

func (g groundSensor) IsTouchingGround() bool {
	return touchingGround(components.Object.Get(g.e).Object, cfg.Player.GroundLeeway)
}

// touchingGround probes a thin box under obj's feet against solids.
func touchingGround(obj *resolv.Object, leeway float64) bool {
	check := obj.Check(0, leeway, tags.ResolvSolid)
	if check == nil {
		return false
	}
	probe := triggers.GroundProbe(obj.X, obj.Y, obj.W, obj.H, leeway)
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if probe.Overlaps(solid.X, solid.Y, solid.W, solid.H) {
			return true
		}
	}
	return false
}

type positioner struct{ e *donburi.Entry }

func (p positioner) Position() playercontrol.Vec {
	obj := components.Object.Get(p.e)
	return playercontrol.Vec{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

type playerEvents struct {
	ecs *ecs.ECS
}

func (ev *playerEvents) PlaySound(id playercontrol.SoundID) {
	PlaySFX(ev.ecs, cfg.SoundID(id))
}

func (ev *playerEvents) SpawnProjectile(position, velocity playercontrol.Vec) {
	factory.CreateBullet(ev.ecs, position.X, position.Y, velocity.X, velocity.Y)
}

func (ev *playerEvents) RequestLevelRestart() {
	RestartLevel(ev.ecs)
}

// worldClock reads the clock singleton through its entry so it keeps
// working if the entry's storage moves.
type worldClock struct{ e *donburi.Entry }

func (c worldClock) Now() time.Duration {
	return components.Clock.Get(c.e).Now()
}

// GetPlayer returns the player entry and its data, if one exists.
func GetPlayer(ecs *ecs.ECS) (*donburi.Entry, *components.PlayerData, bool) {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return e, components.Player.Get(e), true
}
