package attendance

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
)

// fallbackBreak is assumed when a break was opened but never closed by the
// time the day is finalized, and when a break is closed that was never
// opened.
const fallbackBreak = 30 * time.Minute

// combine anchors a time-of-day on a calendar date.
func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		date.Location())
}

// ComputeMinutes derives worked and break minutes for one day's record.
//
// Each clock field is a time of day anchored on workDate. A pair whose
// second member reads earlier than its first is treated as crossing
// midnight: check-in 22:00 / check-out 06:00 is an 8 hour shift. The work
// pair and the break pair roll over independently. A break that was opened
// but never closed counts as exactly 30 minutes. Minutes are truncated.
//
// Pure function: no clock access, no side effects, idempotent for
// identical inputs.
func ComputeMinutes(workDate time.Time, checkIn, breakStart, breakEnd, checkOut *time.Time) (workedMinutes, breakMinutes int, err error) {
	if checkIn == nil || checkOut == nil {
		return 0, 0, attendance.ErrIncompleteRecord
	}

	in := combine(workDate, *checkIn)
	out := combine(workDate, *checkOut)
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	gross := out.Sub(in)

	if breakStart != nil && breakEnd == nil {
		closed := breakStart.Add(fallbackBreak)
		breakEnd = &closed
	}

	var brk time.Duration
	if breakStart != nil && breakEnd != nil {
		bStart := combine(workDate, *breakStart)
		bEnd := combine(workDate, *breakEnd)
		if bEnd.Before(bStart) {
			bEnd = bEnd.Add(24 * time.Hour)
		}
		brk = bEnd.Sub(bStart)
	}

	workedMinutes = int((gross - brk) / time.Minute)
	breakMinutes = int(brk / time.Minute)
	return workedMinutes, breakMinutes, nil
}
