// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// ThresholdSet holds the four ascending annual-income boundaries that split
// a jurisdiction's income range into five tiers. Boundary values belong to
// the lower tier: annual <= T1 is low, annual <= T2 is lower_middle, and
// so on; anything above T4 is high.
type ThresholdSet struct {
	T1 decimal.Decimal
	T2 decimal.Decimal
	T3 decimal.Decimal
	T4 decimal.Decimal
}

// NewThresholdSet builds a ThresholdSet from whole-unit annual boundaries.
func NewThresholdSet(t1, t2, t3, t4 float64) ThresholdSet {
	return ThresholdSet{
		T1: decimal.NewFromFloat(t1),
		T2: decimal.NewFromFloat(t2),
		T3: decimal.NewFromFloat(t3),
		T4: decimal.NewFromFloat(t4),
	}
}

// Validate checks that the boundaries are positive and strictly increasing.
// A violation is a configuration error, detected at table-load time.
func (s ThresholdSet) Validate() error {
	if !s.T1.IsPositive() {
		return fmt.Errorf("first threshold must be positive, got %s", s.T1)
	}
	boundaries := []decimal.Decimal{s.T1, s.T2, s.T3, s.T4}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i].LessThanOrEqual(boundaries[i-1]) {
			return fmt.Errorf("thresholds must be strictly increasing, got %s after %s",
				boundaries[i], boundaries[i-1])
		}
	}
	return nil
}

// TierFor classifies an annual income against the boundaries. Negative and
// zero incomes classify as low.
func (s ThresholdSet) TierFor(annual decimal.Decimal) entity.IncomeTier {
	switch {
	case annual.LessThanOrEqual(s.T1):
		return entity.IncomeTierLow
	case annual.LessThanOrEqual(s.T2):
		return entity.IncomeTierLowerMiddle
	case annual.LessThanOrEqual(s.T3):
		return entity.IncomeTierMiddle
	case annual.LessThanOrEqual(s.T4):
		return entity.IncomeTierUpperMiddle
	default:
		return entity.IncomeTierHigh
	}
}
