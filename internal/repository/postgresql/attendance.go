package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// clockToPg converts a time-of-day to a Postgres TIME value.
func clockToPg(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	micros := int64(t.Hour())*3600_000_000 +
		int64(t.Minute())*60_000_000 +
		int64(t.Second())*1_000_000 +
		int64(t.Nanosecond())/1000
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// pgToClock converts a Postgres TIME value back to a time-of-day.
func pgToClock(t pgtype.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	secs := t.Microseconds / 1_000_000
	clock := time.Date(0, time.January, 1,
		int(secs/3600), int(secs%3600/60), int(secs%60),
		int(t.Microseconds%1_000_000)*1000, time.UTC)
	return &clock
}

type attendanceRow struct {
	att        attendance.Attendance
	checkIn    pgtype.Time
	breakStart pgtype.Time
	breakEnd   pgtype.Time
	checkOut   pgtype.Time
}

func (r *attendanceRow) scan(row pgx.Row) (attendance.Attendance, error) {
	err := row.Scan(
		&r.att.ID, &r.att.WorkerID, &r.att.WorkDate,
		&r.checkIn, &r.breakStart, &r.breakEnd, &r.checkOut,
		&r.att.TotalWorkMinutes, &r.att.TotalBreakMinutes,
		&r.att.CreatedAt, &r.att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	r.att.CheckIn = pgToClock(r.checkIn)
	r.att.BreakStart = pgToClock(r.breakStart)
	r.att.BreakEnd = pgToClock(r.breakEnd)
	r.att.CheckOut = pgToClock(r.checkOut)
	return r.att, nil
}

const attendanceColumns = `
	id, worker_id, work_date, check_in, break_start, break_end, check_out,
	total_work_minutes, total_break_minutes, created_at, updated_at`

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			worker_id, work_date, check_in, break_start, break_end, check_out,
			total_work_minutes, total_break_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.WorkerID, att.WorkDate,
		clockToPg(att.CheckIn), clockToPg(att.BreakStart),
		clockToPg(att.BreakEnd), clockToPg(att.CheckOut),
		att.TotalWorkMinutes, att.TotalBreakMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

func (a *attendanceRepository) getByWorkerAndDate(ctx context.Context, workerID int64, date time.Time, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE worker_id = $1 AND work_date = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row attendanceRow
	att, err := row.scan(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &att, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) (*attendance.Attendance, error) {
	return a.getByWorkerAndDate(ctx, workerID, date, false)
}

// GetByWorkerAndDateForUpdate implements attendance.AttendanceRepository.
// Callers must run it inside a transaction for the row lock to matter.
func (a *attendanceRepository) GetByWorkerAndDateForUpdate(ctx context.Context, workerID int64, date time.Time) (*attendance.Attendance, error) {
	return a.getByWorkerAndDate(ctx, workerID, date, true)
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $2, break_start = $3, break_end = $4, check_out = $5,
		    total_work_minutes = $6, total_break_minutes = $7,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		clockToPg(att.CheckIn), clockToPg(att.BreakStart),
		clockToPg(att.BreakEnd), clockToPg(att.CheckOut),
		att.TotalWorkMinutes, att.TotalBreakMinutes,
	).Scan(&att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return att, nil
}

// Upsert implements attendance.AttendanceRepository. The unique key on
// (worker_id, work_date) makes this exactly-once per day per worker.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			worker_id, work_date, check_in, break_start, break_end, check_out,
			total_work_minutes, total_break_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (worker_id, work_date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
		    break_start = EXCLUDED.break_start,
		    break_end = EXCLUDED.break_end,
		    check_out = EXCLUDED.check_out,
		    total_work_minutes = EXCLUDED.total_work_minutes,
		    total_break_minutes = EXCLUDED.total_break_minutes,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.WorkerID, att.WorkDate,
		clockToPg(att.CheckIn), clockToPg(att.BreakStart),
		clockToPg(att.BreakEnd), clockToPg(att.CheckOut),
		att.TotalWorkMinutes, att.TotalBreakMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return att, nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByWorker(ctx context.Context, workerID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE worker_id = $1
		ORDER BY work_date DESC`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByWorkerAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByWorkerAndRange(ctx context.Context, workerID int64, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE worker_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by range: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var row attendanceRow
		att, err := row.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
