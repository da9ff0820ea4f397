package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quakeapi/server/internal/domain"
)

// PostgresRepository implements domain.EarthquakeRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Open creates a pool for databaseURL and verifies the connection
func Open(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: failed to connect: %w", err)
	}
	return NewPostgresRepository(pool), nil
}

// FindByID retrieves a single earthquake by primary key
func (r *PostgresRepository) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	query := `
		SELECT id, magnitude, location, year
		FROM earthquakes
		WHERE id = $1
	`

	var q domain.Earthquake
	err := r.pool.QueryRow(ctx, query, id).Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Earthquake{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Earthquake{}, fmt.Errorf("postgres: failed to query earthquake %d: %w", id, err)
	}

	return q, nil
}

// FindByMinMagnitude retrieves earthquakes at or above threshold
func (r *PostgresRepository) FindByMinMagnitude(ctx context.Context, threshold float64) ([]domain.Earthquake, error) {
	query := `
		SELECT id, magnitude, location, year
		FROM earthquakes
		WHERE magnitude >= $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query earthquakes: %w", err)
	}
	defer rows.Close()

	results := make([]domain.Earthquake, 0)
	for rows.Next() {
		var q domain.Earthquake
		if err := rows.Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan earthquake row: %w", err)
		}
		results = append(results, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read earthquake rows: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// EnsureSchema creates the earthquakes table if it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS earthquakes (
			id        SERIAL PRIMARY KEY,
			magnitude DOUBLE PRECISION NOT NULL,
			location  TEXT NOT NULL,
			year      INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// Reset removes every earthquake row
func (r *PostgresRepository) Reset(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE earthquakes RESTART IDENTITY`); err != nil {
		return fmt.Errorf("postgres: failed to reset earthquakes: %w", err)
	}
	return nil
}

// Insert persists quakes in a single batch
func (r *PostgresRepository) Insert(ctx context.Context, quakes []domain.Earthquake) error {
	query := `
		INSERT INTO earthquakes (id, magnitude, location, year)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, q := range quakes {
		batch.Queue(query, q.ID, q.Magnitude, q.Location, q.Year)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to insert earthquakes: %w", err)
	}

	// Explicit ids leave the serial sequence behind
	_, err := r.pool.Exec(ctx, `
		SELECT setval(pg_get_serial_sequence('earthquakes', 'id'), COALESCE(MAX(id), 1))
		FROM earthquakes
	`)
	if err != nil {
		return fmt.Errorf("postgres: failed to advance id sequence: %w", err)
	}

	return nil
}

// Close releases the connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
