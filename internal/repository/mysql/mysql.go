package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/quakeapi/server/internal/domain"
)

// MySQLRepository implements domain.EarthquakeRepository
type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository wraps an open database handle
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Open connects to MySQL using dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*MySQLRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open: %w", err)
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: failed to connect: %w", err)
	}
	return NewMySQLRepository(db), nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	query := `SELECT id, magnitude, location, year FROM earthquakes WHERE id = ?`

	var q domain.Earthquake
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Earthquake{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Earthquake{}, fmt.Errorf("mysql: failed to query earthquake %d: %w", id, err)
	}
	return q, nil
}

func (r *MySQLRepository) FindByMinMagnitude(ctx context.Context, threshold float64) ([]domain.Earthquake, error) {
	query := `
		SELECT id, magnitude, location, year
		FROM earthquakes
		WHERE magnitude >= ?
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to query earthquakes: %w", err)
	}
	defer rows.Close()

	results := make([]domain.Earthquake, 0)
	for rows.Next() {
		var q domain.Earthquake
		if err := rows.Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year); err != nil {
			return nil, fmt.Errorf("mysql: failed to scan earthquake row: %w", err)
		}
		results = append(results, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mysql: failed to read earthquake rows: %w", err)
	}
	return results, nil
}

func (r *MySQLRepository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("mysql: health check failed: %w", err)
	}
	return nil
}

// EnsureSchema creates the earthquakes table if it does not exist
func (r *MySQLRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS earthquakes (
			id        INT AUTO_INCREMENT PRIMARY KEY,
			magnitude DOUBLE       NOT NULL,
			location  VARCHAR(255) NOT NULL,
			year      INT          NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("mysql: failed to create schema: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM earthquakes`); err != nil {
		return fmt.Errorf("mysql: failed to reset earthquakes: %w", err)
	}
	return nil
}

// Insert writes quakes inside one transaction
func (r *MySQLRepository) Insert(ctx context.Context, quakes []domain.Earthquake) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mysql: failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	for _, q := range quakes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO earthquakes (id, magnitude, location, year) VALUES (?, ?, ?, ?)`,
			q.ID, q.Magnitude, q.Location, q.Year,
		)
		if err != nil {
			return fmt.Errorf("mysql: failed to insert earthquake %d: %w", q.ID, err)
		}
	}

	return tx.Commit()
}

func (r *MySQLRepository) Close() error {
	return r.db.Close()
}
