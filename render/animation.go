package render

import "math"

// Animation plays atlas frames First through Last. Rate is in frames per
// 60 Hz tick, the time base the level advances particles in, so a clamped
// long update skips frames instead of slowing down.
type Animation struct {
	First int
	Last  int
	Rate  float64
	Hold  bool // Stay on Last once reached

	pos float64
}

func NewAnimation(first, last int, rate float64, hold bool) *Animation {
	return &Animation{First: first, Last: last, Rate: rate, Hold: hold}
}

func (a *Animation) span() float64 {
	return float64(a.Last - a.First + 1)
}

// Advance moves the animation on by step 60 Hz ticks.
func (a *Animation) Advance(step float64) {
	a.pos += a.Rate * step
	if a.Hold {
		a.pos = min(a.pos, a.span()-1)
		return
	}
	a.pos = math.Mod(a.pos, a.span())
}

func (a *Animation) Frame() int {
	return a.First + int(a.pos)
}

func (a *Animation) Restart() {
	a.pos = 0
}
