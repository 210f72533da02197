package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	Direction Vector  // X is the move intent in [-1, 1], Y the vertical velocity
	Speed     float64 // Horizontal speed this frame
	OnGround  bool
	Jumping   bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
