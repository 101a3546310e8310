package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)
