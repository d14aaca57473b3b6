// Package entity defines the core business entities for the domain layer.
package entity

// IncomeTier represents one of the five ordinal income classes.
// Ordering is significant: low < lower_middle < middle < upper_middle < high.
type IncomeTier string

const (
	IncomeTierLow         IncomeTier = "low"
	IncomeTierLowerMiddle IncomeTier = "lower_middle"
	IncomeTierMiddle      IncomeTier = "middle"
	IncomeTierUpperMiddle IncomeTier = "upper_middle"
	IncomeTierHigh        IncomeTier = "high"
)

var tierRanks = map[IncomeTier]int{
	IncomeTierLow:         0,
	IncomeTierLowerMiddle: 1,
	IncomeTierMiddle:      2,
	IncomeTierUpperMiddle: 3,
	IncomeTierHigh:        4,
}

// Rank returns the ordinal position of the tier (low = 0 .. high = 4).
func (t IncomeTier) Rank() int {
	return tierRanks[t]
}

// Less reports whether t is strictly below other in the tier ordering.
func (t IncomeTier) Less(other IncomeTier) bool {
	return t.Rank() < other.Rank()
}

// IsValid reports whether the tier is one of the five known values.
func (t IncomeTier) IsValid() bool {
	_, ok := tierRanks[t]
	return ok
}
