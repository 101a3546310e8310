package insurance

import "errors"

var (
	ErrRateNotFound = errors.New("insurance rate not found")
)
