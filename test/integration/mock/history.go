package mock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// HistoryRepository is an in-memory adapter.RedistributionRepository. The
// real repository depends on a postgres array column, so scenarios record
// redistribution history here instead.
type HistoryRepository struct {
	mu      sync.Mutex
	records []*entity.RedistributionRecord
}

// NewHistoryRepository creates an empty in-memory history repository.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Append stores a redistribution record.
func (r *HistoryRepository) Append(_ context.Context, record *entity.RedistributionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// FindByUserAndMonth returns the records for one user and month.
func (r *HistoryRepository) FindByUserAndMonth(
	_ context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) ([]*entity.RedistributionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.RedistributionRecord
	for _, record := range r.records {
		if record.UserID == userID && record.Year == year && record.Month == month {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Clear drops all stored records.
func (r *HistoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
