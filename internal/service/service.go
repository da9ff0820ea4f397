package service

import (
	"github.com/quakeapi/server/internal/domain"
)

// EarthquakeRepository is re-exported from domain for convenience
type EarthquakeRepository = domain.EarthquakeRepository
