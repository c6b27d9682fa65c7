package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/geo"
	"github.com/vitalio/triage-api/schema"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := schema.Location{Latitude: 19.0596, Longitude: 72.8295}

	assert.Equal(t, float64(0), geo.Distance(p, p), "distance to itself should be zero")
}

func TestDistanceSymmetry(t *testing.T) {
	a := schema.Location{Latitude: 19.0596, Longitude: 72.8295}
	b := schema.Location{Latitude: 19.0760, Longitude: 72.8777}

	assert.Equal(t, geo.Distance(a, b), geo.Distance(b, a), "distance should be symmetric")
	assert.True(t, geo.Distance(a, b) > 0, "distance between distinct points should be positive")
}

func TestDistanceKnownPair(t *testing.T) {
	// Bandra to Apollo Hospital, roughly 5.4 km apart
	bandra := schema.Location{Latitude: 19.0596, Longitude: 72.8295}
	apollo := schema.Location{Latitude: 19.0760, Longitude: 72.8777}

	d := geo.Distance(bandra, apollo)
	assert.InDelta(t, 5.4, d, 0.3, "wrong great-circle distance")
}

func TestDistanceAntipodal(t *testing.T) {
	a := schema.Location{Latitude: 0, Longitude: 0}
	b := schema.Location{Latitude: 0, Longitude: 180}

	// half the Earth circumference with r = 6371
	assert.InDelta(t, 20015.1, geo.Distance(a, b), 0.5)
}
