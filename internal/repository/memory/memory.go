package memory

import (
	"context"
	"sort"

	"github.com/quakeapi/server/internal/domain"
)

// MemoryRepository implements domain.EarthquakeRepository for testing/demo mode.
// It is immutable after construction.
type MemoryRepository struct {
	quakes []domain.Earthquake
	byID   map[int]domain.Earthquake
}

// NewMemoryRepository creates a repository holding a copy of quakes.
// Later duplicates of an id replace earlier ones.
func NewMemoryRepository(quakes []domain.Earthquake) *MemoryRepository {
	byID := make(map[int]domain.Earthquake, len(quakes))
	for _, q := range quakes {
		byID[q.ID] = q
	}

	sorted := make([]domain.Earthquake, 0, len(byID))
	for _, q := range byID {
		sorted = append(sorted, q)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &MemoryRepository{quakes: sorted, byID: byID}
}

// FindByID looks up a single earthquake
func (r *MemoryRepository) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	q, ok := r.byID[id]
	if !ok {
		return domain.Earthquake{}, domain.ErrNotFound
	}
	return q, nil
}

// FindByMinMagnitude scans the id-ordered slice
func (r *MemoryRepository) FindByMinMagnitude(ctx context.Context, threshold float64) ([]domain.Earthquake, error) {
	results := make([]domain.Earthquake, 0)
	for _, q := range r.quakes {
		if q.Magnitude >= threshold {
			results = append(results, q)
		}
	}
	return results, nil
}

// Health always returns nil in memory mode
func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op in memory mode
func (r *MemoryRepository) Close() error {
	return nil
}
