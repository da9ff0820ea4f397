package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quakeapi/server/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteRepository implements domain.EarthquakeRepository on an embedded database file
type SQLiteRepository struct {
	db         *sql.DB
	byIDStmt   *sql.Stmt
	minMagStmt *sql.Stmt
}

// Open opens (creating if needed) the database at dbPath and prepares the read queries
func Open(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: failed to create db path: %w", err)
	}

	// busy_timeout waits on locks held by the seeder; WAL lets readers run alongside it
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := EnsureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	byID, err := db.Prepare(`
		SELECT id, magnitude, location, year
		FROM earthquakes
		WHERE id = ?
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to prepare id query: %w", err)
	}

	minMag, err := db.Prepare(`
		SELECT id, magnitude, location, year
		FROM earthquakes
		WHERE magnitude >= ?
		ORDER BY id ASC
	`)
	if err != nil {
		_ = byID.Close()
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to prepare magnitude query: %w", err)
	}

	return &SQLiteRepository{db: db, byIDStmt: byID, minMagStmt: minMag}, nil
}

// EnsureSchema creates the earthquakes table if it does not exist
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS earthquakes (
			id        INTEGER PRIMARY KEY,
			magnitude REAL    NOT NULL,
			location  TEXT    NOT NULL,
			year      INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to create schema: %w", err)
	}
	return nil
}

// Close releases the prepared statements and the database handle
func (r *SQLiteRepository) Close() error {
	if r.byIDStmt != nil {
		_ = r.byIDStmt.Close()
	}
	if r.minMagStmt != nil {
		_ = r.minMagStmt.Close()
	}
	return r.db.Close()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int) (domain.Earthquake, error) {
	var q domain.Earthquake
	err := r.byIDStmt.QueryRowContext(ctx, id).Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Earthquake{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Earthquake{}, fmt.Errorf("sqlite: failed to query earthquake %d: %w", id, err)
	}
	return q, nil
}

func (r *SQLiteRepository) FindByMinMagnitude(ctx context.Context, threshold float64) ([]domain.Earthquake, error) {
	rows, err := r.minMagStmt.QueryContext(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query earthquakes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Earthquake, 0)
	for rows.Next() {
		var q domain.Earthquake
		if err := rows.Scan(&q.ID, &q.Magnitude, &q.Location, &q.Year); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan earthquake row: %w", err)
		}
		out = append(out, q)
	}

	return out, rows.Err()
}

func (r *SQLiteRepository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: health check failed: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	return EnsureSchema(ctx, r.db)
}

func (r *SQLiteRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM earthquakes`); err != nil {
		return fmt.Errorf("sqlite: failed to reset earthquakes: %w", err)
	}
	return nil
}

// Insert writes quakes inside one transaction
func (r *SQLiteRepository) Insert(ctx context.Context, quakes []domain.Earthquake) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO earthquakes (id, magnitude, location, year)
		VALUES (?,?,?,?)
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range quakes {
		if _, err := stmt.ExecContext(ctx, q.ID, q.Magnitude, q.Location, q.Year); err != nil {
			return fmt.Errorf("sqlite: failed to insert earthquake %d: %w", q.ID, err)
		}
	}

	return tx.Commit()
}
