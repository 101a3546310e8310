package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
)

func clockAt(hour, minute int) *time.Time {
	t := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestComputeMinutes(t *testing.T) {
	workDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		checkIn     *time.Time
		breakStart  *time.Time
		breakEnd    *time.Time
		checkOut    *time.Time
		wantWorked  int
		wantBreak   int
	}{
		{
			name:       "full day with closed break",
			checkIn:    clockAt(9, 0),
			breakStart: clockAt(13, 0),
			breakEnd:   clockAt(13, 30),
			checkOut:   clockAt(18, 0),
			wantWorked: 510,
			wantBreak:  30,
		},
		{
			name:       "no break",
			checkIn:    clockAt(9, 0),
			checkOut:   clockAt(17, 0),
			wantWorked: 480,
		},
		{
			name:       "night shift crossing midnight",
			checkIn:    clockAt(22, 0),
			checkOut:   clockAt(6, 0),
			wantWorked: 480,
		},
		{
			name:       "break crossing midnight independently",
			checkIn:    clockAt(22, 0),
			breakStart: clockAt(23, 30),
			breakEnd:   clockAt(0, 30),
			checkOut:   clockAt(6, 0),
			wantWorked: 420,
			wantBreak:  60,
		},
		{
			name:       "unclosed break falls back to 30 minutes",
			checkIn:    clockAt(9, 0),
			breakStart: clockAt(12, 0),
			checkOut:   clockAt(17, 0),
			wantWorked: 450,
			wantBreak:  30,
		},
		{
			name:       "seconds are truncated",
			checkIn:    clockAt(9, 0),
			checkOut:   timePtr(time.Date(0, time.January, 1, 17, 0, 59, 0, time.UTC)),
			wantWorked: 480,
		},
		{
			name:       "zero-length day",
			checkIn:    clockAt(9, 0),
			checkOut:   clockAt(9, 0),
			wantWorked: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worked, brk, err := ComputeMinutes(workDate, tt.checkIn, tt.breakStart, tt.breakEnd, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWorked, worked)
			assert.Equal(t, tt.wantBreak, brk)
		})
	}
}

func TestComputeMinutesIncomplete(t *testing.T) {
	workDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, _, err := ComputeMinutes(workDate, nil, nil, nil, clockAt(17, 0))
	assert.ErrorIs(t, err, attendance.ErrIncompleteRecord)

	_, _, err = ComputeMinutes(workDate, clockAt(9, 0), nil, nil, nil)
	assert.ErrorIs(t, err, attendance.ErrIncompleteRecord)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
