package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 0.5, false)
	var frames []int
	for range 8 {
		a.Advance(1)
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0, 1}, frames)

	a.Restart()
	assert.Equal(t, 0, a.Frame())
}

func TestAnimationLongStepSkipsFrames(t *testing.T) {
	a := NewAnimation(2, 5, 0.5, false)
	a.Advance(2)
	assert.Equal(t, 3, a.Frame())
	a.Advance(4)
	assert.Equal(t, 5, a.Frame())
	a.Advance(2)
	assert.Equal(t, 2, a.Frame())
}

func TestAnimationHolds(t *testing.T) {
	a := NewAnimation(3, 5, 1, true)
	var frames []int
	for range 4 {
		a.Advance(1)
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{4, 5, 5, 5}, frames)

	a.Restart()
	assert.Equal(t, 3, a.Frame())
}
