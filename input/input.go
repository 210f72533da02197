// Package input polls the keyboard and gamepads into logical actions and
// turns them into level intents.
package input

import (
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// State holds this frame's and last frame's action flags.
type State struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	gamepads []ebiten.GamepadID
}

// Update swaps the buffers and polls every device. Call it once per tick,
// before anything reads the state.
func (s *State) Update() {
	s.Previous = s.Current
	s.Current = [config.ActionCount]bool{}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[action] = true
			}
		}
		for _, gp := range s.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					s.Current[action] = true
				}
			}
		}
	}
	s.mergeAnalog()
}

// mergeAnalog folds the left sticks into the directional actions.
func (s *State) mergeAnalog() {
	deadzone := config.Input.AnalogDeadzone
	for _, gp := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone {
			s.Current[config.ActionMoveLeft] = true
		}
		if h > deadzone {
			s.Current[config.ActionMoveRight] = true
		}
		if v < -deadzone {
			s.Current[config.ActionMenuUp] = true
		}
		if v > deadzone {
			s.Current[config.ActionMenuDown] = true
		}
	}
}

func (s *State) Pressed(a config.ActionID) bool {
	return s.Current[a]
}

func (s *State) JustPressed(a config.ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}

func (s *State) JustReleased(a config.ActionID) bool {
	return !s.Current[a] && s.Previous[a]
}

// Intent reports the held actions as a level intent. Pressing both
// directions cancels out.
func (s *State) Intent() level.Intent {
	var move float64
	if s.Pressed(config.ActionMoveLeft) {
		move--
	}
	if s.Pressed(config.ActionMoveRight) {
		move++
	}
	return level.Intent{
		MoveX:   move,
		Jump:    s.Pressed(config.ActionJump),
		Run:     s.Pressed(config.ActionRun),
		Melee:   s.Pressed(config.ActionMelee),
		Ranged:  s.Pressed(config.ActionRanged),
		Magical: s.Pressed(config.ActionMagical),
	}
}
