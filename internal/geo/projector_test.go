package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjector_Corners(t *testing.T) {
	p := DefaultProjector()

	tests := []struct {
		name     string
		lat, lng float64
		want     Point
	}{
		{"origin maps to canvas center", 0, 0, Point{X: 400, Y: 200}},
		{"north-west corner", 90, -180, Point{X: 0, Y: 0}},
		{"south-east corner", -90, 180, Point{X: 800, Y: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Project(tt.lat, tt.lng))
		})
	}
}

func TestProjector_Extrapolates(t *testing.T) {
	p := DefaultProjector()
	got := p.Project(-100, 200)
	assert.InDelta(t, 844.44, got.X, 0.01)
	assert.InDelta(t, 422.22, got.Y, 0.01)
}

func TestProjector_CustomCanvas(t *testing.T) {
	p := Projector{Width: 360, Height: 180}
	assert.Equal(t, Point{X: 190, Y: 80}, p.Project(10, 10))
}
