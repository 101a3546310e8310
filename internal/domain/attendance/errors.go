package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn     = errors.New("already clocked in today")
	ErrNotClockedIn         = errors.New("no clock-in record for today")
	ErrAlreadyClockedOut    = errors.New("already clocked out today")
	ErrBreakAlreadyOpen     = errors.New("a break is already in progress")
	ErrOnBreakCannotClockOut = errors.New("cannot clock out while on break")

	// ErrIncompleteRecord is returned by the minute calculator when a record
	// is finalized without both a check-in and a check-out.
	ErrIncompleteRecord = errors.New("attendance record is missing check-in or check-out")
)
