package geo

import (
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitProjector maps one degree to one canvas unit so test positions are exact.
var unitProjector = Projector{Width: 360, Height: 180}

// ev builds an event that projects to (x, y) on unitProjector.
func ev(id string, x, y float64) domain.WarEvent {
	return domain.WarEvent{
		ID:        id,
		Longitude: x - 180,
		Latitude:  90 - y,
	}
}

func memberIDs(c *Cluster) []string {
	ids := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestCluster_Empty(t *testing.T) {
	got := NewClusterer(unitProjector).Cluster(nil, DefaultThreshold)
	assert.Empty(t, got)
}

func TestCluster_NearbyEventsMerge(t *testing.T) {
	events := []domain.WarEvent{ev("a", 100, 100), ev("b", 110, 100)}

	got := NewClusterer(unitProjector).Cluster(events, DefaultThreshold)

	require.Len(t, got, 1)
	assert.Equal(t, "cluster-a", got[0].ID)
	assert.False(t, got[0].IsSingle)
	assert.Equal(t, []string{"a", "b"}, memberIDs(got[0]))
	assert.InDelta(t, 105, got[0].Centroid.X, 1e-9)
	assert.InDelta(t, 100, got[0].Centroid.Y, 1e-9)
}

func TestCluster_DistantEventsStaySingle(t *testing.T) {
	events := []domain.WarEvent{ev("a", 100, 100), ev("b", 200, 100), ev("c", 100, 300)}

	got := NewClusterer(unitProjector).Cluster(events, DefaultThreshold)

	require.Len(t, got, 3)
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, "cluster-"+id, got[i].ID)
		assert.True(t, got[i].IsSingle)
		assert.Equal(t, 1, got[i].Len())
	}
}

func TestCluster_ThresholdIsStrict(t *testing.T) {
	events := []domain.WarEvent{ev("a", 100, 100), ev("b", 130, 100)}

	got := NewClusterer(unitProjector).Cluster(events, 30)

	assert.Len(t, got, 2)
}

func TestCluster_JoinsFirstMatchInCreationOrder(t *testing.T) {
	// c is within range of both a and b; it must join a, the older cluster.
	events := []domain.WarEvent{ev("a", 100, 100), ev("b", 140, 100), ev("c", 120, 100)}

	got := NewClusterer(unitProjector).Cluster(events, 25)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "c"}, memberIDs(got[0]))
	assert.Equal(t, []string{"b"}, memberIDs(got[1]))
}

func TestCluster_CentroidDriftCapturesLaterEvent(t *testing.T) {
	// d is 36 units from a's seed but within 30 of the drifted centroid.
	events := []domain.WarEvent{
		ev("a", 100, 100),
		ev("b", 120, 100),
		ev("c", 125, 100),
		ev("d", 136, 100),
	}

	got := NewClusterer(unitProjector).Cluster(events, 30)

	require.Len(t, got, 1)
	assert.Equal(t, "cluster-a", got[0].ID)
	assert.Equal(t, []string{"a", "b", "c", "d"}, memberIDs(got[0]))
	assert.InDelta(t, 120.25, got[0].Centroid.X, 1e-9)
}

func TestCluster_OrderDependent(t *testing.T) {
	a, b, c := ev("a", 100, 100), ev("b", 120, 100), ev("c", 145, 100)
	cl := NewClusterer(unitProjector)

	forward := cl.Cluster([]domain.WarEvent{a, b, c}, 30)
	middleFirst := cl.Cluster([]domain.WarEvent{b, c, a}, 30)

	require.Len(t, forward, 2)
	assert.Equal(t, []string{"a", "b"}, memberIDs(forward[0]))
	assert.Equal(t, []string{"c"}, memberIDs(forward[1]))

	require.Len(t, middleFirst, 2)
	assert.Equal(t, "cluster-b", middleFirst[0].ID)
	assert.Equal(t, []string{"b", "c"}, memberIDs(middleFirst[0]))
	assert.Equal(t, []string{"a"}, memberIDs(middleFirst[1]))
}

func TestCluster_Deterministic(t *testing.T) {
	events := []domain.WarEvent{
		{ID: "1", Latitude: 48.85, Longitude: 2.35},
		{ID: "2", Latitude: 50.85, Longitude: 4.35},
		{ID: "3", Latitude: 52.52, Longitude: 13.40},
		{ID: "4", Latitude: 41.90, Longitude: 12.49},
		{ID: "5", Latitude: 51.50, Longitude: -0.12},
	}
	cl := NewClusterer(DefaultProjector())

	first := cl.Cluster(events, DefaultThreshold)
	second := cl.Cluster(events, DefaultThreshold)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Centroid, second[i].Centroid)
		assert.Equal(t, memberIDs(first[i]), memberIDs(second[i]))
	}
}

func TestCluster_DoesNotMutateInput(t *testing.T) {
	events := []domain.WarEvent{ev("a", 100, 100), ev("b", 105, 100)}
	before := append([]domain.WarEvent(nil), events...)

	NewClusterer(unitProjector).Cluster(events, DefaultThreshold)

	assert.Equal(t, before, events)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
}
