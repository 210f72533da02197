package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	c.SetTime(start)
	assert.Equal(t, start, c.Now())
}

func TestSystemMovesForward(t *testing.T) {
	var c Clock = System{}
	a := c.Now()
	assert.False(t, c.Now().Before(a))
}
