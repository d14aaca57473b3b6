// Package plan contains the daily budget plan builder.
package plan

import (
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// Default habit-weight profiles per income tier, used when a profile
// declares no explicit weights. Higher tiers bias toward discretionary
// categories; lower tiers keep most of the budget on essentials.

func weights(pairs map[string]int64) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal, len(pairs))
	for category, weight := range pairs {
		result[category] = decimal.NewFromInt(weight)
	}
	return result
}

var defaultHabitProfiles = map[entity.IncomeTier]map[string]decimal.Decimal{
	entity.IncomeTierLow: weights(map[string]int64{
		"groceries": 6,
		"transport": 2,
		"household": 1,
		"other":     1,
	}),
	entity.IncomeTierLowerMiddle: weights(map[string]int64{
		"groceries":     5,
		"transport":     2,
		"household":     1,
		"entertainment": 1,
		"other":         1,
	}),
	entity.IncomeTierMiddle: weights(map[string]int64{
		"groceries":     4,
		"transport":     2,
		"dining":        2,
		"entertainment": 1,
		"other":         1,
	}),
	entity.IncomeTierUpperMiddle: weights(map[string]int64{
		"groceries":     3,
		"transport":     2,
		"dining":        2,
		"entertainment": 2,
		"shopping":      1,
		"other":         1,
	}),
	entity.IncomeTierHigh: weights(map[string]int64{
		"groceries":     2,
		"transport":     1,
		"dining":        3,
		"entertainment": 2,
		"shopping":      2,
		"travel":        2,
		"other":         1,
	}),
}

// DefaultHabitWeights returns the default habit-weight profile for a tier.
// Unknown tiers fall back to the middle profile.
func DefaultHabitWeights(tier entity.IncomeTier) map[string]decimal.Decimal {
	profile, ok := defaultHabitProfiles[tier]
	if !ok {
		profile = defaultHabitProfiles[entity.IncomeTierMiddle]
	}
	clone := make(map[string]decimal.Decimal, len(profile))
	for category, weight := range profile {
		clone[category] = weight
	}
	return clone
}
