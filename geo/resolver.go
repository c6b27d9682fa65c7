package geo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/vitalio/triage-api/schema"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

const resolverTimeout = 5 * time.Second

// LocationResolver resolves a free-text location into coordinates.
type LocationResolver interface {
	Resolve(address string) (schema.Location, error)
}

// GeocodingLocationResolver resolves locations through the Google Maps
// geocoding API.
type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) Resolve(address string) (schema.Location, error) {
	log.WithFields(log.Fields{
		"prefix":  "geo",
		"address": address,
	}).Info("resolve location")

	ctx, cancel := context.WithTimeout(context.Background(), resolverTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
	if nil != err {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrNoGeoInfoFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}
