package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no earthquake matches the requested id.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("earthquake not found")

// EarthquakeRepository defines the read-only queries the API needs.
// The domain owns the interface; storage backends implement it.
type EarthquakeRepository interface {
	// FindByID returns the earthquake with the given primary key or ErrNotFound
	FindByID(ctx context.Context, id int) (Earthquake, error)

	// FindByMinMagnitude returns every earthquake with magnitude >= threshold,
	// ordered by ascending id. No matches is an empty slice, not an error.
	FindByMinMagnitude(ctx context.Context, threshold float64) ([]Earthquake, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}
