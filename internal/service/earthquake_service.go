package service

import (
	"context"

	"github.com/quakeapi/server/internal/domain"
)

// EarthquakeService answers earthquake queries from a repository
type EarthquakeService struct {
	repo EarthquakeRepository
}

// NewEarthquakeService creates a new earthquake service
func NewEarthquakeService(repo EarthquakeRepository) *EarthquakeService {
	return &EarthquakeService{repo: repo}
}

// GetByID returns a single earthquake; domain.ErrNotFound passes through unwrapped
func (s *EarthquakeService) GetByID(ctx context.Context, id int) (domain.Earthquake, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByMinMagnitude returns all earthquakes with magnitude >= threshold, ordered by id
func (s *EarthquakeService) GetByMinMagnitude(ctx context.Context, threshold float64) (domain.QuakeList, error) {
	quakes, err := s.repo.FindByMinMagnitude(ctx, threshold)
	if err != nil {
		return domain.QuakeList{}, err
	}
	return domain.NewQuakeList(quakes), nil
}

// Health checks the underlying store
func (s *EarthquakeService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
