package components

import (
	"github.com/automoto/betrothed/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the collider bounds.
func (o *ObjectData) Rect() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves the collider and refreshes its space cells.
func (o *ObjectData) SetRect(r geom.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
