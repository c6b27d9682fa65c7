package match

import (
	"context"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vitalio/triage-api/geo"
	"github.com/vitalio/triage-api/schema"
)

const logPrefix = "match"

// ProviderRepository is the live provider source. Availability and
// specialty filtering are delegated to the repository; distance filtering
// and ranking stay with the matcher.
type ProviderRepository interface {
	Query(ctx context.Context, specialty string, availableOnly bool) ([]schema.ProviderRecord, error)
}

// Matcher filters and ranks providers by distance, specialty, and
// availability. When the repository is unreachable it answers from a
// static built-in catalog instead of failing.
type Matcher struct {
	repo    ProviderRepository
	catalog []schema.ProviderRecord
}

func NewMatcher(repo ProviderRepository) *Matcher {
	return &Matcher{
		repo:    repo,
		catalog: FallbackCatalog(),
	}
}

// FindNearby returns providers within maxDistanceKM of the origin, sorted
// ascending by distance with ties broken by descending rating. Ordering
// among providers with equal distance and rating is repository order. The
// second return value reports whether the live repository served the
// query; callers may log a fallback but must not treat it as fatal. An
// empty result is a valid outcome, not an error.
func (m *Matcher) FindNearby(ctx context.Context, origin schema.Location, specialty string, maxDistanceKM float64, requireAvailable bool) ([]schema.ProviderMatch, bool) {
	live := true

	candidates, err := m.repo.Query(ctx, specialty, requireAvailable)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"specialty": specialty,
		}).WithError(err).Warn("provider repository unreachable, using fallback catalog")

		live = false
		candidates = filterCatalog(m.catalog, specialty)
	}

	matches := make([]schema.ProviderMatch, 0, len(candidates))
	for _, p := range candidates {
		d := geo.Distance(origin, p.Coordinates())
		if d > maxDistanceKM {
			continue
		}
		matches = append(matches, schema.ProviderMatch{
			Provider:   p,
			DistanceKM: d,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceKM != matches[j].DistanceKM {
			return matches[i].DistanceKM < matches[j].DistanceKM
		}
		return matches[i].Provider.Rating > matches[j].Provider.Rating
	})

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"matched": len(matches),
		"max_km":  maxDistanceKM,
		"live":    live,
	}).Debug("provider matching done")

	return matches, live
}

// filterCatalog applies the specialty filter to the static catalog. The
// fallback deliberately ignores the availability flag: catalog entries are
// a last resort and are always offered.
func filterCatalog(catalog []schema.ProviderRecord, specialty string) []schema.ProviderRecord {
	filtered := make([]schema.ProviderRecord, 0, len(catalog))
	for _, p := range catalog {
		if specialty != "" && !strings.Contains(strings.ToLower(p.Specialty), strings.ToLower(specialty)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
