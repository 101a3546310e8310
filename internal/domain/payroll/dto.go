package payroll

import "github.com/shopspring/decimal"

type MonthlyPayrollResponse struct {
	ID           int64           `json:"id"`
	WorkerID     int64           `json:"worker_id"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	HourlyWage   int             `json:"hourly_wage"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	WeeklyHours  decimal.Decimal `json:"weekly_hours"`
	NightHours   decimal.Decimal `json:"night_hours"`
	HolidayHours decimal.Decimal `json:"holiday_hours"`
	BreakHours   decimal.Decimal `json:"break_hours"`
	TotalSalary  int             `json:"total_salary"`
	NetSalary    int             `json:"net_salary"`
}

func NewMonthlyPayrollResponse(p MonthlyPayroll) MonthlyPayrollResponse {
	return MonthlyPayrollResponse{
		ID:           p.ID,
		WorkerID:     p.WorkerID,
		Year:         p.Year,
		Month:        p.Month,
		HourlyWage:   p.HourlyWage,
		TotalHours:   p.TotalHours,
		WeeklyHours:  p.WeeklyHours,
		NightHours:   p.NightHours,
		HolidayHours: p.HolidayHours,
		BreakHours:   p.BreakHours,
		TotalSalary:  p.TotalSalary,
		NetSalary:    p.NetSalary,
	}
}

type WeeklyPayrollResponse struct {
	ID             int64           `json:"id"`
	WorkerID       int64           `json:"worker_id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalWorkHours decimal.Decimal `json:"total_work_hours"`
}

func NewWeeklyPayrollResponse(p WeeklyPayroll) WeeklyPayrollResponse {
	return WeeklyPayrollResponse{
		ID:             p.ID,
		WorkerID:       p.WorkerID,
		Year:           p.Year,
		Month:          p.Month,
		TotalWorkHours: p.TotalWorkHours,
	}
}

type RecalculateAllResponse struct {
	WorkersProcessed int    `json:"workers_processed"`
	Status           string `json:"status"`
}
