package input

import (
	"github.com/automoto/betrothed/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the keys and gamepad buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its default controls.
var Bindings = map[config.ActionID]Binding{
	config.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	config.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	config.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
		// A / Cross
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	config.ActionRun: {
		Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		// Right bumper
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontTopRight,
		},
	},
	config.ActionMelee: {
		Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
		// X / Square
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	config.ActionRanged: {
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
		// B / Circle
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
	config.ActionMagical: {
		Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyL},
		// Y / Triangle
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightTop,
		},
	},
	config.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	config.ActionMenuUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	config.ActionMenuDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	config.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	config.ActionMenuBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
}
