package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// probeParking keeps the query object outside every cell of the space.
const probeParking = -10000

// newSpace builds the collision space for a level of w by h pixels.
func newSpace(w, h float64, cell int) (*resolv.Space, *resolv.Object) {
	space := resolv.NewSpace(int(w), int(h), cell, cell)
	probe := resolv.NewObject(probeParking, probeParking, 1, 1)
	space.Add(probe)
	return space, probe
}

// newObject returns a rectangle collider for r carrying the owning entry.
func newObject(r geom.Rect, e *donburi.Entry, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = e
	return obj
}

// query returns the colliders with tag whose bounds strictly overlap r.
// The probe is widened by a pixel so the cell lookup never misses an
// object sitting on a cell edge; the exact test is done on the bounds.
func (l *Level) query(r geom.Rect, tag string) []*resolv.Object {
	pad := r.Inset(-1)
	l.probe.X, l.probe.Y, l.probe.W, l.probe.H = pad.X, pad.Y, pad.W, pad.H
	check := l.probe.Check(0, 0, tag)
	l.probe.X, l.probe.Y = probeParking, probeParking
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	seen := make(map[*resolv.Object]bool, len(check.Objects))
	for _, obj := range check.Objects {
		if seen[obj] {
			continue
		}
		seen[obj] = true
		if r.Overlaps(geom.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			out = append(out, obj)
		}
	}
	return out
}

// solids returns the terrain and barrier rectangles overlapping r.
func (l *Level) solids(r geom.Rect) []geom.Rect {
	objs := l.query(r, tags.ResolvSolid)
	out := make([]geom.Rect, 0, len(objs))
	for _, obj := range objs {
		out = append(out, geom.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	}
	return out
}

// entries returns the live entities with tag overlapping r.
func (l *Level) entries(r geom.Rect, tag string) []*donburi.Entry {
	var out []*donburi.Entry
	for _, obj := range l.query(r, tag) {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// remove drops e from the world and its collider from the space.
func (l *Level) remove(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			l.space.Remove(obj.Object)
		}
	}
	l.world.Remove(e.Entity())
}
