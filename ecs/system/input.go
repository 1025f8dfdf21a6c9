package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// ButtonSource reports the buttons held this frame.
type ButtonSource interface {
	Buttons() character.Buttons
}

// InputSystem copies the buttons from its source into every Input
// component. Edges are derived later by each component's sampler.
type InputSystem struct {
	source ButtonSource
}

func NewInputSystem(source ButtonSource) *InputSystem {
	if source == nil {
		source = KeyboardGamepad{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	buttons := i.source.Buttons()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Buttons = buttons
	})
}

// KeyboardGamepad reads the keyboard and the first standard gamepad.
type KeyboardGamepad struct{}

func (KeyboardGamepad) Buttons() character.Buttons {
	const stickDeadzone = 0.2

	var b character.Buttons
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		b.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		b.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		b.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		b.MoveY -= 1
	}
	b.Run = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	b.Crouch = ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyC)
	b.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	b.Attack = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	b.AimUp = ebiten.IsKeyPressed(ebiten.KeyI)
	b.AimDown = ebiten.IsKeyPressed(ebiten.KeyK)
	b.AngleUp = ebiten.IsKeyPressed(ebiten.KeyU)
	b.AngleDown = ebiten.IsKeyPressed(ebiten.KeyO)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			return b
		}
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			b.MoveX = leftX
		}
		// Stick Y is positive downwards.
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			b.MoveY = -leftY
		}

		b.Jump = b.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		b.Attack = b.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		b.Run = b.Run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		b.Crouch = b.Crouch || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		b.AimUp = b.AimUp || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		b.AimDown = b.AimDown || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		b.AngleUp = b.AngleUp || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		b.AngleDown = b.AngleDown || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
	}
	return b
}
