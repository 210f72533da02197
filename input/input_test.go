package input

import (
	"testing"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/level"
	"github.com/stretchr/testify/assert"
)

func TestIntent(t *testing.T) {
	tests := []struct {
		name    string
		pressed []config.ActionID
		want    level.Intent
	}{
		{"idle", nil, level.Intent{}},
		{"left", []config.ActionID{config.ActionMoveLeft}, level.Intent{MoveX: -1}},
		{"right and run", []config.ActionID{config.ActionMoveRight, config.ActionRun}, level.Intent{MoveX: 1, Run: true}},
		{"both directions cancel", []config.ActionID{config.ActionMoveLeft, config.ActionMoveRight}, level.Intent{}},
		{
			"attacks",
			[]config.ActionID{config.ActionJump, config.ActionMelee, config.ActionRanged, config.ActionMagical},
			level.Intent{Jump: true, Melee: true, Ranged: true, Magical: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			for _, a := range tt.pressed {
				s.Current[a] = true
			}
			assert.Equal(t, tt.want, s.Intent())
		})
	}
}

func TestEdges(t *testing.T) {
	var s State
	s.Current[config.ActionPause] = true
	assert.True(t, s.JustPressed(config.ActionPause))

	s.Previous = s.Current
	assert.True(t, s.Pressed(config.ActionPause))
	assert.False(t, s.JustPressed(config.ActionPause))

	s.Current[config.ActionPause] = false
	assert.True(t, s.JustReleased(config.ActionPause))
}

func TestEveryActionIsBound(t *testing.T) {
	for a := config.ActionMoveLeft; a < config.ActionCount; a++ {
		b, ok := Bindings[a]
		assert.True(t, ok, a.String())
		assert.NotEmpty(t, b.Keys, a.String())
	}
}
