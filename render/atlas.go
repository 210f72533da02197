package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Atlas slices a sprite sheet into equally sized frames, left to right
// then top to bottom.
type Atlas struct {
	sheet  *ebiten.Image
	frames []*ebiten.Image
	w, h   int
}

// NewAtlas cuts sheet into frames of w by h pixels. Partial frames at the
// right and bottom edges are dropped.
func NewAtlas(sheet *ebiten.Image, w, h int) *Atlas {
	a := &Atlas{sheet: sheet, w: w, h: h}
	for _, r := range frameRects(sheet.Bounds(), w, h) {
		a.frames = append(a.frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return a
}

// frameRects lists the frame rectangles of a sheet with the given bounds.
func frameRects(b image.Rectangle, w, h int) []image.Rectangle {
	if w <= 0 || h <= 0 {
		return nil
	}
	var rects []image.Rectangle
	for y := b.Min.Y; y+h <= b.Max.Y; y += h {
		for x := b.Min.X; x+w <= b.Max.X; x += w {
			rects = append(rects, image.Rect(x, y, x+w, y+h))
		}
	}
	return rects
}

// Frame returns frame i, wrapping around the sheet.
func (a *Atlas) Frame(i int) *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	i %= len(a.frames)
	if i < 0 {
		i += len(a.frames)
	}
	return a.frames[i]
}

func (a *Atlas) Len() int { return len(a.frames) }

func (a *Atlas) Size() (int, int) { return a.w, a.h }

// placeholderAtlas draws a sheet of n frames where frame i is a filled
// block shaded by shade(i). It stands in for art that has not been drawn.
func placeholderAtlas(n, w, h int, shade func(i int) color.Color) *Atlas {
	sheet := ebiten.NewImage(w*n, h)
	for i := range n {
		x := float32(i * w)
		vector.DrawFilledRect(sheet, x, 0, float32(w), float32(h), shade(i), false)
		vector.StrokeRect(sheet, x+0.5, 0.5, float32(w)-1, float32(h)-1, 1, color.RGBA{0, 0, 0, 96}, false)
	}
	return NewAtlas(sheet, w, h)
}

// fading returns shade functions that dim base over n frames.
func fading(base color.RGBA, n int) func(i int) color.Color {
	return func(i int) color.Color {
		k := 1 - float64(i)/float64(max(n, 1))
		return color.RGBA{
			R: uint8(float64(base.R) * k),
			G: uint8(float64(base.G) * k),
			B: uint8(float64(base.B) * k),
			A: uint8(float64(base.A) * k),
		}
	}
}
