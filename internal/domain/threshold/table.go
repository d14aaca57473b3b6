// Package threshold provides the static jurisdiction-to-income-threshold
// lookup table used by income classification.
package threshold

import (
	"fmt"
	"strings"

	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// jurisdictionKey identifies a (country, subregion) pair.
type jurisdictionKey struct {
	country   string
	subregion string
}

// Table is the process-wide, read-only threshold lookup. It is built once
// by Load at startup and never mutated afterward.
type Table struct {
	global     valueobject.ThresholdSet
	countries  map[string]valueobject.ThresholdSet
	subregions map[jurisdictionKey]valueobject.ThresholdSet
}

// Load builds and validates the threshold table. A malformed entry
// (non-ascending or non-positive boundaries) is a configuration error that
// must abort process start.
func Load() (*Table, error) {
	if err := globalDefault.Validate(); err != nil {
		return nil, fmt.Errorf("invalid global default thresholds: %w", err)
	}

	countries := make(map[string]valueobject.ThresholdSet, len(countryThresholds))
	for country, set := range countryThresholds {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("invalid thresholds for country %q: %w", country, err)
		}
		countries[country] = set
	}

	subregions := make(map[jurisdictionKey]valueobject.ThresholdSet, len(subregionThresholds))
	for key, set := range subregionThresholds {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("invalid thresholds for %s/%s: %w", key.country, key.subregion, err)
		}
		subregions[key] = set
	}

	return &Table{
		global:     globalDefault,
		countries:  countries,
		subregions: subregions,
	}, nil
}

// Lookup returns the threshold set for the given jurisdiction. It prefers
// an exact (country, subregion) entry, falls back to the country default,
// and finally to the global default. It never fails: an unknown
// jurisdiction silently maps to a broader default.
func (t *Table) Lookup(country, subregion string) valueobject.ThresholdSet {
	country = normalizeJurisdiction(country)
	subregion = normalizeJurisdiction(subregion)

	if subregion != "" {
		if set, ok := t.subregions[jurisdictionKey{country: country, subregion: subregion}]; ok {
			return set
		}
	}
	if set, ok := t.countries[country]; ok {
		return set
	}
	return t.global
}

func normalizeJurisdiction(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
