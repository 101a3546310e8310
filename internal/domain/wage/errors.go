package wage

import "errors"

var (
	ErrDefaultWageExists   = errors.New("a default wage for that year already exists")
	ErrWageWindowNotFound  = errors.New("wage window not found")
	ErrDefaultWageNotFound = errors.New("default wage not found")
)
