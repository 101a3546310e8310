package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/clock"
)

type testEnv struct {
	attendanceRepo *memAttendanceRepo
	workerRepo     *memWorkerRepo
	payrollStub    *stubPayrollService
}

func newTestEnv() *testEnv {
	return &testEnv{
		attendanceRepo: newMemAttendanceRepo(),
		workerRepo: newMemWorkerRepo(worker.Worker{
			ID:       1,
			Username: "crew1",
			Name:     "Crew One",
			Position: worker.PositionCrew,
			IsActive: true,
		}),
		payrollStub: &stubPayrollService{},
	}
}

// serviceAt builds the service with the wall clock pinned to the given
// instant, so one test can step through a day.
func (e *testEnv) serviceAt(at time.Time) attendance.AttendanceService {
	return NewAttendanceService(nil, e.attendanceRepo, e.workerRepo, e.payrollStub, clock.Fixed(at))
}

func dayAt(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestClockIn(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	resp, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.WorkDate)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:00:00", *resp.CheckIn)
	assert.Equal(t, string(attendance.StateWorking), resp.State)
}

func TestClockInTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)

	_, err = env.serviceAt(dayAt(9, 5)).ClockIn(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInUnknownWorker(t *testing.T) {
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(context.Background(), 99)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestBreakStartWithoutClockIn(t *testing.T) {
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(12, 0)).BreakStart(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestBreakCycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)

	resp, err := env.serviceAt(dayAt(13, 0)).BreakStart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateOnBreak), resp.State)

	_, err = env.serviceAt(dayAt(13, 5)).BreakStart(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyOpen)

	resp, err = env.serviceAt(dayAt(13, 30)).BreakEnd(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateWorking), resp.State)
	require.NotNil(t, resp.BreakEnd)
	assert.Equal(t, "13:30:00", *resp.BreakEnd)
}

func TestBreakEndHealsMissingStart(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)

	resp, err := env.serviceAt(dayAt(13, 30)).BreakEnd(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.BreakStart)
	assert.Equal(t, "13:00:00", *resp.BreakStart)
	assert.Equal(t, "13:30:00", *resp.BreakEnd)
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(13, 0)).BreakStart(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(13, 30)).BreakEnd(ctx, 1)
	require.NoError(t, err)

	resp, err := env.serviceAt(dayAt(18, 0)).ClockOut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateFinished), resp.State)
	assert.Equal(t, 510, resp.TotalWorkMinutes)
	assert.Equal(t, 30, resp.TotalBreakMinutes)
	assert.Contains(t, env.payrollStub.recomputed, int64(1))
}

func TestClockOutWhileOnBreak(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(13, 0)).BreakStart(ctx, 1)
	require.NoError(t, err)

	_, err = env.serviceAt(dayAt(14, 0)).ClockOut(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrOnBreakCannotClockOut)
}

func TestClockOutTwice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(17, 0)).ClockOut(ctx, 1)
	require.NoError(t, err)

	_, err = env.serviceAt(dayAt(18, 0)).ClockOut(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestBreakStartAfterClockOut(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(17, 0)).ClockOut(ctx, 1)
	require.NoError(t, err)

	_, err = env.serviceAt(dayAt(17, 30)).BreakStart(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestPayrollFailureDoesNotFailClockOut(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.payrollStub.err = errors.New("payroll backend down")

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)

	_, err = env.serviceAt(dayAt(17, 0)).ClockOut(ctx, 1)
	assert.NoError(t, err)
}

func TestManualUpsertOvernight(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	checkIn := "22:00:00"
	checkOut := "06:00:00"
	resp, err := env.serviceAt(dayAt(10, 0)).ManualUpsert(ctx, 1, attendance.ManualUpsertRequest{
		WorkDate: "2026-03-09",
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	require.NoError(t, err)
	assert.Equal(t, 480, resp.TotalWorkMinutes)
	assert.Equal(t, "2026-03-09", resp.WorkDate)
	assert.Contains(t, env.payrollStub.recomputed, int64(1))
}

func TestManualUpsertReplacesRecord(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.serviceAt(dayAt(9, 0)).ClockIn(ctx, 1)
	require.NoError(t, err)
	_, err = env.serviceAt(dayAt(17, 0)).ClockOut(ctx, 1)
	require.NoError(t, err)

	checkIn := "10:00:00"
	checkOut := "15:00:00"
	resp, err := env.serviceAt(dayAt(19, 0)).ManualUpsert(ctx, 1, attendance.ManualUpsertRequest{
		WorkDate: "2026-03-10",
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	require.NoError(t, err)
	assert.Equal(t, 300, resp.TotalWorkMinutes)
	assert.Nil(t, resp.BreakStart)
}

func TestManualUpsertPartialRecord(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	checkIn := "09:00:00"
	resp, err := env.serviceAt(dayAt(10, 0)).ManualUpsert(ctx, 1, attendance.ManualUpsertRequest{
		WorkDate: "2026-03-10",
		CheckIn:  &checkIn,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalWorkMinutes)
	assert.Equal(t, string(attendance.StateWorking), resp.State)
}

func TestManualUpsertValidation(t *testing.T) {
	env := newTestEnv()

	badTime := "25:99"
	_, err := env.serviceAt(dayAt(10, 0)).ManualUpsert(context.Background(), 1, attendance.ManualUpsertRequest{
		WorkDate: "2026-03-10",
		CheckIn:  &badTime,
	})
	assert.Error(t, err)
}
