package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EnergyData struct {
	Value  int
	Bob    *gween.Tween
	Rising bool
	Offset float64 // Current draw offset from the bob
}

var Energy = donburi.NewComponentType[EnergyData]()
