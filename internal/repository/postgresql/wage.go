package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
)

type wageRepository struct {
	db *database.DB
}

func NewWageRepository(db *database.DB) wage.WageRepository {
	return &wageRepository{db: db}
}

// CreateWindow implements wage.WageRepository.
func (r *wageRepository) CreateWindow(ctx context.Context, w wage.WageWindow) (wage.WageWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_windows (worker_id, wage, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, w.WorkerID, w.Wage, w.StartDate, w.EndDate).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return wage.WageWindow{}, fmt.Errorf("failed to create wage window: %w", err)
	}
	return w, nil
}

// ListWindowsByWorker implements wage.WageRepository.
func (r *wageRepository) ListWindowsByWorker(ctx context.Context, workerID int64) ([]wage.WageWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, wage, start_date, end_date, created_at, updated_at
		FROM wage_windows
		WHERE worker_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage windows: %w", err)
	}
	defer rows.Close()

	var windows []wage.WageWindow
	for rows.Next() {
		var w wage.WageWindow
		if err := rows.Scan(&w.ID, &w.WorkerID, &w.Wage, &w.StartDate, &w.EndDate, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wage window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// FindApplicableWindow implements wage.WageRepository. Overlapping windows
// resolve to the one opened most recently.
func (r *wageRepository) FindApplicableWindow(ctx context.Context, workerID int64, date time.Time) (*wage.WageWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, wage, start_date, end_date, created_at, updated_at
		FROM wage_windows
		WHERE worker_id = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date DESC
		LIMIT 1
	`

	var w wage.WageWindow
	err := q.QueryRow(ctx, query, workerID, date).
		Scan(&w.ID, &w.WorkerID, &w.Wage, &w.StartDate, &w.EndDate, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find applicable wage window: %w", err)
	}
	return &w, nil
}

// CreateDefault implements wage.WageRepository.
func (r *wageRepository) CreateDefault(ctx context.Context, d wage.DefaultWage) (wage.DefaultWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO default_wages (year, wage)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Year, d.Wage).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return wage.DefaultWage{}, wage.ErrDefaultWageExists
		}
		return wage.DefaultWage{}, fmt.Errorf("failed to create default wage: %w", err)
	}
	return d, nil
}

// ListDefaults implements wage.WageRepository.
func (r *wageRepository) ListDefaults(ctx context.Context) ([]wage.DefaultWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, year, wage, created_at, updated_at
		FROM default_wages
		ORDER BY year DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list default wages: %w", err)
	}
	defer rows.Close()

	var defaults []wage.DefaultWage
	for rows.Next() {
		var d wage.DefaultWage
		if err := rows.Scan(&d.ID, &d.Year, &d.Wage, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan default wage: %w", err)
		}
		defaults = append(defaults, d)
	}
	return defaults, rows.Err()
}

// GetDefaultByYear implements wage.WageRepository.
func (r *wageRepository) GetDefaultByYear(ctx context.Context, year int) (*wage.DefaultWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, year, wage, created_at, updated_at
		FROM default_wages
		WHERE year = $1
	`

	var d wage.DefaultWage
	err := q.QueryRow(ctx, query, year).Scan(&d.ID, &d.Year, &d.Wage, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default wage by year: %w", err)
	}
	return &d, nil
}
