package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 64, H: 64}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial", Rect{X: 32, Y: 32, W: 64, H: 64}, true},
		{"touching right edge", Rect{X: 64, Y: 0, W: 64, H: 64}, false},
		{"touching bottom edge", Rect{X: 0, Y: 64, W: 64, H: 64}, false},
		{"disjoint", Rect{X: 200, Y: 200, W: 10, H: 10}, false},
		{"contained", Rect{X: 10, Y: 10, W: 4, H: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestEdgeSetters(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	r.SetRight(104)
	assert.Equal(t, 104.0, r.Right())
	assert.Equal(t, 74.0, r.Left())

	r.SetBottom(128)
	assert.Equal(t, 128.0, r.Bottom())
	assert.Equal(t, 88.0, r.Top())

	assert.Equal(t, Rect{X: 76, Y: 90, W: 26, H: 36}, r.Inset(2))
	assert.Equal(t, 89.0, r.CenterX())
	assert.Equal(t, 108.0, r.CenterY())
}
