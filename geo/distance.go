package geo

import (
	"math"

	"github.com/vitalio/triage-api/schema"
)

// earth radius in kilometers
const earthRadiusKM = 6371.0

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs using the haversine formula. Behavior for coordinates
// outside the valid degree ranges is undefined; callers validate upstream.
func Distance(from, to schema.Location) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lon1 := from.Longitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	lon2 := to.Longitude * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}
