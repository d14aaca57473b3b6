// Package classification contains income classification use cases.
package classification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/threshold"
)

// stubProfileRepository returns a fixed profile or a fixed error.
type stubProfileRepository struct {
	profile *entity.FinancialProfile
	err     error
}

func (s *stubProfileRepository) Upsert(_ context.Context, _ *entity.FinancialProfile) error {
	return nil
}

func (s *stubProfileRepository) FindByUserID(_ context.Context, _ uuid.UUID) (*entity.FinancialProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func mustLoadTable(t *testing.T) *threshold.Table {
	t.Helper()
	table, err := threshold.Load()
	if err != nil {
		t.Fatalf("failed to load threshold table: %v", err)
	}
	return table
}

func TestClassify(t *testing.T) {
	table := mustLoadTable(t)

	tests := []struct {
		name      string
		monthly   string
		country   string
		subregion string
		want      entity.IncomeTier
	}{
		{"monthly on the boundary stays in the lower tier", "3000", "US", "", entity.IncomeTierLow},
		{"one cent above the boundary moves up a tier", "3000.01", "US", "", entity.IncomeTierLowerMiddle},
		{"negative income classifies as low", "-500", "US", "", entity.IncomeTierLow},
		{"zero income classifies as low", "0", "US", "", entity.IncomeTierLow},
		{"same income is low in a high-cost subregion", "3500", "US", "CA", entity.IncomeTierLow},
		{"same income is lower_middle in a low-cost subregion", "3500", "US", "MS", entity.IncomeTierLowerMiddle},
		{"unknown jurisdiction uses the global default", "3500", "XX", "", entity.IncomeTierMiddle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := decimal.RequireFromString(tt.monthly)
			got := Classify(table, monthly, tt.country, tt.subregion)
			if got != tt.want {
				t.Errorf("Classify(%s, %s, %s) = %s, want %s",
					tt.monthly, tt.country, tt.subregion, got, tt.want)
			}
		})
	}
}

func TestClassifyIncomeUseCase_Execute(t *testing.T) {
	table := mustLoadTable(t)
	userID := uuid.New()

	t.Run("classifies from the stored profile", func(t *testing.T) {
		repo := &stubProfileRepository{
			profile: &entity.FinancialProfile{
				UserID:        userID,
				MonthlyIncome: decimal.NewFromInt(3500),
				Country:       "US",
				Subregion:     "MS",
			},
		}
		uc := NewClassifyIncomeUseCase(repo, table, "US")

		output, err := uc.Execute(context.Background(), ClassifyIncomeInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Tier != entity.IncomeTierLowerMiddle {
			t.Errorf("expected lower_middle, got %s", output.Tier)
		}
		if !output.AnnualIncome.Equal(decimal.NewFromInt(42000)) {
			t.Errorf("expected annual income 42000, got %s", output.AnnualIncome)
		}
		if output.Country != "US" || output.Subregion != "MS" {
			t.Errorf("expected profile jurisdiction, got %s/%s", output.Country, output.Subregion)
		}
	})

	t.Run("input overrides replace profile values", func(t *testing.T) {
		repo := &stubProfileRepository{
			profile: &entity.FinancialProfile{
				UserID:        userID,
				MonthlyIncome: decimal.NewFromInt(3500),
				Country:       "US",
				Subregion:     "MS",
			},
		}
		uc := NewClassifyIncomeUseCase(repo, table, "US")

		income := decimal.NewFromInt(20000)
		output, err := uc.Execute(context.Background(), ClassifyIncomeInput{
			UserID:        userID,
			MonthlyIncome: &income,
			Country:       "DE",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Country != "DE" {
			t.Errorf("expected country override DE, got %s", output.Country)
		}
		if !output.MonthlyIncome.Equal(income) {
			t.Errorf("expected overridden income, got %s", output.MonthlyIncome)
		}
	})

	t.Run("full override skips the profile entirely", func(t *testing.T) {
		repo := &stubProfileRepository{err: domainerror.ErrProfileNotFound}
		uc := NewClassifyIncomeUseCase(repo, table, "US")

		income := decimal.NewFromInt(3000)
		output, err := uc.Execute(context.Background(), ClassifyIncomeInput{
			UserID:        userID,
			MonthlyIncome: &income,
			Country:       "US",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Tier != entity.IncomeTierLow {
			t.Errorf("expected low, got %s", output.Tier)
		}
	})

	t.Run("missing profile without overrides fails", func(t *testing.T) {
		repo := &stubProfileRepository{err: domainerror.ErrProfileNotFound}
		uc := NewClassifyIncomeUseCase(repo, table, "US")

		_, err := uc.Execute(context.Background(), ClassifyIncomeInput{UserID: userID})
		if err == nil {
			t.Fatal("expected error when no profile and no overrides")
		}
	})

	t.Run("empty country falls back to the configured default", func(t *testing.T) {
		repo := &stubProfileRepository{
			profile: &entity.FinancialProfile{
				UserID:        userID,
				MonthlyIncome: decimal.NewFromInt(3000),
			},
		}
		uc := NewClassifyIncomeUseCase(repo, table, "US")

		output, err := uc.Execute(context.Background(), ClassifyIncomeInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Country != "US" {
			t.Errorf("expected default country US, got %s", output.Country)
		}
	})
}
