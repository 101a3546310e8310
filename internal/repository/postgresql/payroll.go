package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const monthlyColumns = `
	id, worker_id, year, month, hourly_wage, total_hours, weekly_hours,
	night_hours, holiday_hours, break_hours, total_salary,
	insurance_health, insurance_employment, insurance_pension, insurance_care,
	total_deduction, net_salary, created_at, updated_at`

func scanMonthly(row pgx.Row) (payroll.MonthlyPayroll, error) {
	var p payroll.MonthlyPayroll
	err := row.Scan(
		&p.ID, &p.WorkerID, &p.Year, &p.Month, &p.HourlyWage,
		&p.TotalHours, &p.WeeklyHours, &p.NightHours, &p.HolidayHours,
		&p.BreakHours, &p.TotalSalary,
		&p.InsuranceHealth, &p.InsuranceEmployment, &p.InsurancePension,
		&p.InsuranceCare, &p.TotalDeduction, &p.NetSalary,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// UpsertMonthly implements payroll.PayrollRepository. The unique key on
// (worker_id, year, month) guarantees a single row per period even when
// two recomputations race.
func (r *payrollRepository) UpsertMonthly(ctx context.Context, p payroll.MonthlyPayroll) (payroll.MonthlyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_payrolls (
			worker_id, year, month, hourly_wage, total_hours, weekly_hours,
			night_hours, holiday_hours, break_hours, total_salary,
			insurance_health, insurance_employment, insurance_pension,
			insurance_care, total_deduction, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (worker_id, year, month) DO UPDATE
		SET hourly_wage = EXCLUDED.hourly_wage,
		    total_hours = EXCLUDED.total_hours,
		    weekly_hours = EXCLUDED.weekly_hours,
		    night_hours = EXCLUDED.night_hours,
		    holiday_hours = EXCLUDED.holiday_hours,
		    break_hours = EXCLUDED.break_hours,
		    total_salary = EXCLUDED.total_salary,
		    insurance_health = EXCLUDED.insurance_health,
		    insurance_employment = EXCLUDED.insurance_employment,
		    insurance_pension = EXCLUDED.insurance_pension,
		    insurance_care = EXCLUDED.insurance_care,
		    total_deduction = EXCLUDED.total_deduction,
		    net_salary = EXCLUDED.net_salary,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.WorkerID, p.Year, p.Month, p.HourlyWage, p.TotalHours, p.WeeklyHours,
		p.NightHours, p.HolidayHours, p.BreakHours, p.TotalSalary,
		p.InsuranceHealth, p.InsuranceEmployment, p.InsurancePension,
		p.InsuranceCare, p.TotalDeduction, p.NetSalary,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.MonthlyPayroll{}, fmt.Errorf("failed to upsert monthly payroll: %w", err)
	}

	return p, nil
}

// UpsertWeekly implements payroll.PayrollRepository.
func (r *payrollRepository) UpsertWeekly(ctx context.Context, p payroll.WeeklyPayroll) (payroll.WeeklyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_payrolls (worker_id, year, month, total_work_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (worker_id, year, month) DO UPDATE
		SET total_work_hours = EXCLUDED.total_work_hours,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.WorkerID, p.Year, p.Month, p.TotalWorkHours).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.WeeklyPayroll{}, fmt.Errorf("failed to upsert weekly payroll: %w", err)
	}

	return p, nil
}

// GetMonthly implements payroll.PayrollRepository.
func (r *payrollRepository) GetMonthly(ctx context.Context, workerID int64, year, month int) (*payroll.MonthlyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + monthlyColumns + `
		FROM monthly_payrolls
		WHERE worker_id = $1 AND year = $2 AND month = $3`

	p, err := scanMonthly(q.QueryRow(ctx, query, workerID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly payroll: %w", err)
	}
	return &p, nil
}

// ListMonthlyByWorker implements payroll.PayrollRepository.
func (r *payrollRepository) ListMonthlyByWorker(ctx context.Context, workerID int64) ([]payroll.MonthlyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + monthlyColumns + `
		FROM monthly_payrolls
		WHERE worker_id = $1
		ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly payrolls: %w", err)
	}
	defer rows.Close()

	return collectMonthly(rows)
}

// ListMonthlyAll implements payroll.PayrollRepository.
func (r *payrollRepository) ListMonthlyAll(ctx context.Context) ([]payroll.MonthlyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + monthlyColumns + `
		FROM monthly_payrolls
		ORDER BY year DESC, month DESC, worker_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly payrolls: %w", err)
	}
	defer rows.Close()

	return collectMonthly(rows)
}

func collectMonthly(rows pgx.Rows) ([]payroll.MonthlyPayroll, error) {
	var payrolls []payroll.MonthlyPayroll
	for rows.Next() {
		p, err := scanMonthly(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}

// ListWeeklyByWorker implements payroll.PayrollRepository.
func (r *payrollRepository) ListWeeklyByWorker(ctx context.Context, workerID int64) ([]payroll.WeeklyPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, year, month, total_work_hours, created_at, updated_at
		FROM weekly_payrolls
		WHERE worker_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.WeeklyPayroll
	for rows.Next() {
		var p payroll.WeeklyPayroll
		if err := rows.Scan(&p.ID, &p.WorkerID, &p.Year, &p.Month, &p.TotalWorkHours, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weekly payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}
