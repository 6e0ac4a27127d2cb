package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	// identity
	assert.Equal(t, 0.0, DistanceKm(36.75, 3.05, 36.75, 3.05))
	assert.Equal(t, 0.0, DistanceKm(-33.9, 151.2, -33.9, 151.2))

	// symmetry
	points := [][4]float64{
		{36.75, 3.05, 36.7538, 3.0588},
		{36.7119, 3.1895, 36.7838, 3.0688},
		{-33.86, 151.21, 51.5, -0.12},
		{0, 179.9, 0, -179.9},
	}
	for _, p := range points {
		assert.InDelta(t, DistanceKm(p[0], p[1], p[2], p[3]), DistanceKm(p[2], p[3], p[0], p[1]), 1e-9)
	}

	// one degree of latitude on a 6371 km sphere
	assert.InDelta(t, 111.195, DistanceKm(0, 0, 1, 0), 0.001)
	// across the antimeridian stays short
	assert.InDelta(t, 22.239, DistanceKm(0, 179.9, 0, -179.9), 0.001)
	assert.InDelta(t, 0.8906, DistanceKm(36.75, 3.05, 36.7538, 3.0588), 0.001)
}

func TestCategorizeDistance(t *testing.T) {
	cases := []struct {
		km   float64
		band DistanceBand
	}{
		{0, DistanceVeryNear},
		{0.49, DistanceVeryNear},
		{0.5, DistanceNear},
		{1.99, DistanceNear},
		{2, DistanceMedium},
		{4.999, DistanceMedium},
		{5, DistanceFar},
		{9.99, DistanceFar},
		{10, DistanceVeryFar},
		{250, DistanceVeryFar},
	}

	for _, c := range cases {
		assert.Equal(t, c.band, CategorizeDistance(c.km).Band, "distance %v", c.km)
	}

	assert.Equal(t, "✅", CategorizeDistance(0.1).Emoji)
	assert.Equal(t, "⚠️", CategorizeDistance(3).Emoji)
	assert.Equal(t, "❌", CategorizeDistance(12).Emoji)
}

func TestCatalogNearest(t *testing.T) {
	catalog := DefaultCatalog()

	{
		tower, dist, ok := catalog.Nearest(36.75, 3.05, OperatorMobilis)
		require.True(t, ok)
		assert.Equal(t, "BTS-Center", tower.Name)
		assert.InDelta(t, 0.89, dist, 0.01)
	}

	{
		// only Djezzy towers are candidates even though BTS-West is closer
		tower, _, ok := catalog.Nearest(36.7431, 3.0372, OperatorDjezzy)
		require.True(t, ok)
		assert.Equal(t, "BTS-South", tower.Name)
	}

	{
		// unknown operator falls back to the whole catalog
		tower, dist, ok := catalog.Nearest(36.7119, 3.1895, Operator("Unknown"))
		require.True(t, ok)
		assert.Equal(t, "BTS-East", tower.Name)
		assert.Equal(t, 0.0, dist)
	}
}

func TestCatalogNearest_TieKeepsCatalogOrder(t *testing.T) {
	catalog := Catalog{
		{Name: "first", Latitude: 36.0, Longitude: 3.0, Operator: OperatorMobilis},
		{Name: "second", Latitude: 36.0, Longitude: 3.0, Operator: OperatorMobilis},
	}

	tower, _, ok := catalog.Nearest(36.1, 3.1, OperatorMobilis)
	require.True(t, ok)
	assert.Equal(t, "first", tower.Name)
}

func TestCatalogNearest_Empty(t *testing.T) {
	_, _, ok := Catalog{}.Nearest(36.75, 3.05, OperatorMobilis)
	assert.False(t, ok)

	_, _, ok = Catalog(nil).Nearest(36.75, 3.05, OperatorMobilis)
	assert.False(t, ok)
}
