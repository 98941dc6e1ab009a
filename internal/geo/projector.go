// Package geo lays scenario events onto a flat map: an equirectangular
// projector and the greedy clusterer used for rendering.
package geo

const (
	DefaultWidth  = 800.0
	DefaultHeight = 400.0
)

// Point is a planar map coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projector maps latitude/longitude onto a Width×Height canvas.
type Projector struct {
	Width  float64
	Height float64
}

// DefaultProjector returns the 800×400 projector used by the map view.
func DefaultProjector() Projector {
	return Projector{Width: DefaultWidth, Height: DefaultHeight}
}

// Project converts (lat, lng) to canvas coordinates. Out-of-range input is
// not rejected; the mapping is linear and extrapolates.
func (p Projector) Project(lat, lng float64) Point {
	return Point{
		X: (lng + 180) * (p.Width / 360),
		Y: (90 - lat) * (p.Height / 180),
	}
}
