package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPayroll is the per-(worker, year, month) rollup, upserted in place
// after every attendance mutation. Hour figures are 2-place decimals;
// monetary figures are integers in the smallest currency unit.
type MonthlyPayroll struct {
	ID       int64
	WorkerID int64
	Year     int
	Month    int

	// HourlyWage is the minute-weighted average wage across the period's
	// records, zero when no minutes were worked.
	HourlyWage int

	TotalHours   decimal.Decimal
	WeeklyHours  decimal.Decimal
	NightHours   decimal.Decimal
	HolidayHours decimal.Decimal
	BreakHours   decimal.Decimal

	TotalSalary int

	// Insurance deductions are reserved; all zero until the deduction
	// engine lands, so NetSalary mirrors TotalSalary.
	InsuranceHealth     int
	InsuranceEmployment int
	InsurancePension    int
	InsuranceCare       int
	TotalDeduction      int
	NetSalary           int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyPayroll holds the current Monday-Sunday running total, keyed by the
// (worker, year, month) the week falls in.
type WeeklyPayroll struct {
	ID             int64
	WorkerID       int64
	Year           int
	Month          int
	TotalWorkHours decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
