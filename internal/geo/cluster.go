package geo

import (
	"math"

	"github.com/alexanderramin/chronos/internal/domain"
)

// DefaultThreshold is the clustering distance on the default canvas.
const DefaultThreshold = 30.0

// Cluster groups events whose projected positions landed near each other.
type Cluster struct {
	ID       string            `json:"id"`
	Centroid Point             `json:"centroid"`
	Members  []domain.WarEvent `json:"members"`
	IsSingle bool              `json:"isSingle"`

	points []Point
}

// Len returns the number of member events.
func (c *Cluster) Len() int { return len(c.Members) }

// Clusterer groups projected events. It holds no state between calls.
type Clusterer struct {
	Projector Projector
}

// NewClusterer returns a Clusterer using the given projector.
func NewClusterer(p Projector) Clusterer {
	return Clusterer{Projector: p}
}

// Cluster groups events in a single greedy pass. Each event joins the first
// cluster (in creation order) whose current centroid is closer than
// threshold, after which that centroid is recomputed as the member mean.
// Results depend on input order; centroids drift as members are added.
func (c Clusterer) Cluster(events []domain.WarEvent, threshold float64) []*Cluster {
	clusters := make([]*Cluster, 0, len(events))

	for _, ev := range events {
		pt := c.Projector.Project(ev.Latitude, ev.Longitude)

		var target *Cluster
		for _, cl := range clusters {
			if Distance(cl.Centroid, pt) < threshold {
				target = cl
				break
			}
		}

		if target == nil {
			clusters = append(clusters, &Cluster{
				ID:       "cluster-" + ev.ID,
				Centroid: pt,
				Members:  []domain.WarEvent{ev},
				IsSingle: true,
				points:   []Point{pt},
			})
			continue
		}

		target.Members = append(target.Members, ev)
		target.points = append(target.points, pt)
		target.Centroid = mean(target.points)
		target.IsSingle = false
	}

	return clusters
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// mean sums in member order so repeated runs agree bit for bit.
func mean(points []Point) Point {
	sumX, sumY := 0.0, 0.0
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}
