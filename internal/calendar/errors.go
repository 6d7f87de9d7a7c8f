package calendar

import "errors"

// Calendar errors.
var (
	ErrInvalidComposition = errors.New("calendar cannot represent date")
	ErrInvalidCell        = errors.New("grid cell index must not be negative")
	ErrUnsupportedWeekday = errors.New("calendar weekday outside 1-7")
	ErrPageOutOfRange     = errors.New("page index out of range")
)
