package match_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/external/mocks"
	"github.com/vitalio/triage-api/match"
	"github.com/vitalio/triage-api/schema"
)

// Bandra, Mumbai
var origin = schema.Location{Latitude: 19.0596, Longitude: 72.8295}

func provider(id string, lat, lon, rating float64) schema.ProviderRecord {
	return schema.ProviderRecord{
		ID:        id,
		Name:      "Dr. " + id,
		Specialty: "Cardiology",
		Latitude:  lat,
		Longitude: lon,
		Rating:    rating,
		Available: true,
	}
}

func TestFindNearbySortsByDistanceThenRating(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	repo := mocks.NewMockProviderRepository(ctl)
	repo.EXPECT().Query(gomock.Any(), "", true).Return([]schema.ProviderRecord{
		provider("far", 19.1334, 72.8267, 4.9),
		provider("near-low", 19.0760, 72.8777, 4.2),
		provider("near-high", 19.0760, 72.8777, 4.8), // same spot, better rating
	}, nil)

	matches, live := match.NewMatcher(repo).FindNearby(context.Background(), origin, "", 50, true)
	assert.True(t, live)
	assert.Len(t, matches, 3)

	assert.Equal(t, "near-high", matches[0].Provider.ID, "equal distance ties break by rating")
	assert.Equal(t, "near-low", matches[1].Provider.ID)
	assert.Equal(t, "far", matches[2].Provider.ID)

	for i := 1; i < len(matches); i++ {
		assert.True(t, matches[i-1].DistanceKM <= matches[i].DistanceKM, "distances must be non-decreasing")
	}
}

func TestFindNearbyMaxDistanceFilter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	repo := mocks.NewMockProviderRepository(ctl)
	repo.EXPECT().Query(gomock.Any(), "", true).Return([]schema.ProviderRecord{
		provider("near", 19.0760, 72.8777, 4.8),   // ~5.4km
		provider("remote", 18.5204, 73.8567, 5.0), // Pune, >100km
	}, nil)

	matches, live := match.NewMatcher(repo).FindNearby(context.Background(), origin, "", 25, true)
	assert.True(t, live)
	assert.Len(t, matches, 1)
	assert.Equal(t, "near", matches[0].Provider.ID)
	assert.True(t, matches[0].DistanceKM <= 25)
}

func TestFindNearbyEmptyResultIsValid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	repo := mocks.NewMockProviderRepository(ctl)
	repo.EXPECT().Query(gomock.Any(), "dermatology", true).Return([]schema.ProviderRecord{}, nil)

	matches, live := match.NewMatcher(repo).FindNearby(context.Background(), origin, "dermatology", 25, true)
	assert.True(t, live)
	assert.Empty(t, matches, "no candidates is a valid state, not an error")
}

func TestFindNearbyFallsBackOnRepositoryFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	repo := mocks.NewMockProviderRepository(ctl)
	repo.EXPECT().Query(gomock.Any(), "cardiology", true).
		Return(nil, fmt.Errorf("connection refused"))

	matches, live := match.NewMatcher(repo).FindNearby(context.Background(), origin, "cardiology", 50, true)
	assert.False(t, live, "fallback must be reported out of band")
	assert.Len(t, matches, 1, "only the cardiology catalog entry survives the filter")
	assert.Equal(t, "D001", matches[0].Provider.ID)
	assert.True(t, matches[0].DistanceKM > 0)
}

func TestFindNearbyFallbackWithoutSpecialty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	repo := mocks.NewMockProviderRepository(ctl)
	repo.EXPECT().Query(gomock.Any(), "", true).
		Return(nil, fmt.Errorf("connection refused"))

	matches, live := match.NewMatcher(repo).FindNearby(context.Background(), origin, "", 50, true)
	assert.False(t, live)
	assert.Len(t, matches, 2, "full catalog spans two specialties")
	for i := 1; i < len(matches); i++ {
		assert.True(t, matches[i-1].DistanceKM <= matches[i].DistanceKM)
	}
}
