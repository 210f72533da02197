// Package geom holds the axis-aligned rectangle shared by collision and rendering.
package geom

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r *Rect) SetLeft(v float64)   { r.X = v }
func (r *Rect) SetRight(v float64)  { r.X = v - r.W }
func (r *Rect) SetTop(v float64)    { r.Y = v }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.H }

// Overlaps reports whether r and o share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns r shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
