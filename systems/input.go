package systems

import (
	"strings"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// The stick drives movement in play and the cursor in menus
	if actions, gpID := analogActions(gamepadIDs); len(actions) > 0 {
		for _, id := range actions {
			input.Current[id] = true
		}
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// analogActions maps the left stick of every gamepad past the deadzone to
// directional actions.
func analogActions(gamepads []ebiten.GamepadID) (actions []cfg.ActionID, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		before := len(actions)

		switch {
		case horizontal < -deadzone:
			actions = append(actions, cfg.ActionMoveLeft)
		case horizontal > deadzone:
			actions = append(actions, cfg.ActionMoveRight)
		}
		switch {
		case vertical < -deadzone:
			actions = append(actions, cfg.ActionMenuUp)
		case vertical > deadzone:
			actions = append(actions, cfg.ActionMenuDown)
		}

		if len(actions) > before {
			activeGpID = gpID
		}
	}

	return actions, activeGpID
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PlayerIntent translates the current actions into the controller's input
// sample.
func PlayerIntent(input *components.InputData) playercontrol.Intent {
	jump := GetAction(input, cfg.ActionJump)
	intent := playercontrol.Intent{
		JumpPressed:  jump.JustPressed,
		JumpReleased: jump.JustReleased,
		ShootHeld:    GetAction(input, cfg.ActionShoot).Pressed,
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		intent.Horizontal--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		intent.Horizontal++
	}
	return intent
}
