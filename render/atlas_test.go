package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/betrothed/geom"
	"github.com/stretchr/testify/assert"
)

func TestFrameRects(t *testing.T) {
	rects := frameRects(image.Rect(0, 0, 100, 64), 32, 32)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 32, 32),
		image.Rect(32, 0, 64, 32),
		image.Rect(64, 0, 96, 32),
		image.Rect(0, 32, 32, 64),
		image.Rect(32, 32, 64, 64),
		image.Rect(64, 32, 96, 64),
	}, rects)

	assert.Empty(t, frameRects(image.Rect(0, 0, 10, 10), 32, 32))
	assert.Empty(t, frameRects(image.Rect(0, 0, 10, 10), 0, 5))
}

func TestFading(t *testing.T) {
	shade := fading(color.RGBA{200, 100, 50, 255}, 4)
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, shade(0))
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, shade(2))
}

func TestScaledKeepsCenter(t *testing.T) {
	r := scaled(geom.Rect{X: 10, Y: 20, W: 40, H: 20}, 1.5)
	assert.Equal(t, geom.Rect{X: 0, Y: 15, W: 60, H: 30}, r)
}
