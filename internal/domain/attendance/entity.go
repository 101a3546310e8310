package attendance

import "time"

// Attendance is one worker's clock record for one work date.
// Clock fields hold a time of day only; their date parts are meaningless.
// The (WorkerID, WorkDate) pair is unique.
type Attendance struct {
	ID                int64
	WorkerID          int64
	WorkDate          time.Time
	CheckIn           *time.Time
	BreakStart        *time.Time
	BreakEnd          *time.Time
	CheckOut          *time.Time
	TotalWorkMinutes  int
	TotalBreakMinutes int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// State is the derived position of a record in the daily clock cycle.
type State string

const (
	StateNotStarted State = "not_started"
	StateWorking    State = "working"
	StateOnBreak    State = "on_break"
	StateFinished   State = "finished"
)

// State derives the record's place in the NotStarted -> Working -> OnBreak
// -> Working -> Finished cycle.
func (a *Attendance) State() State {
	switch {
	case a == nil || a.CheckIn == nil:
		return StateNotStarted
	case a.CheckOut != nil:
		return StateFinished
	case a.BreakStart != nil && a.BreakEnd == nil:
		return StateOnBreak
	default:
		return StateWorking
	}
}
