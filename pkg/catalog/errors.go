package catalog

import "errors"

var (
	ErrNilSource       = errors.New("catalog: source is not provided")
	ErrInvalidSchedule = errors.New("catalog: invalid reload schedule")
	ErrWatchFailed     = errors.New("catalog: cannot watch document")
)
