// Package threshold provides the static jurisdiction-to-income-threshold
// lookup table used by income classification.
package threshold

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("expected table to load, got error: %v", err)
	}
	if table == nil {
		t.Fatal("expected non-nil table")
	}
}

func TestTable_Lookup(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("failed to load table: %v", err)
	}

	t.Run("returns subregion entry when present", func(t *testing.T) {
		set := table.Lookup("US", "CA")
		if !set.T1.Equal(decimal.NewFromInt(44935)) {
			t.Errorf("expected US/CA first boundary 44935, got %s", set.T1)
		}
	})

	t.Run("falls back to country for unknown subregion", func(t *testing.T) {
		set := table.Lookup("US", "ZZ")
		country := table.Lookup("US", "")
		if !set.T1.Equal(country.T1) {
			t.Errorf("expected country fallback %s, got %s", country.T1, set.T1)
		}
	})

	t.Run("falls back to global default for unknown country", func(t *testing.T) {
		set := table.Lookup("XX", "")
		if !set.T1.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected global default first boundary 12000, got %s", set.T1)
		}
	})

	t.Run("falls back to global default for empty country", func(t *testing.T) {
		set := table.Lookup("", "")
		if !set.T1.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected global default first boundary 12000, got %s", set.T1)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		exact := table.Lookup("US", "CA")
		sloppy := table.Lookup(" us ", "ca")
		if !exact.T1.Equal(sloppy.T1) {
			t.Errorf("expected normalized lookup to match, got %s vs %s", exact.T1, sloppy.T1)
		}
	})

	t.Run("subregion without matching country entry falls through", func(t *testing.T) {
		// No (XX, CA) entry exists, and no XX country entry either.
		set := table.Lookup("XX", "CA")
		if !set.T1.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected global default, got %s", set.T1)
		}
	})
}
