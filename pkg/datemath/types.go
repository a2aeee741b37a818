package datemath

import (
	"errors"
	"regexp"
)

// Clock is a wall-clock time of day, e.g. "09:00".
type Clock struct {
	Hour   int
	Minute int
}

// ISODate is the calendar-date layout accepted by ParseDate.
const ISODate = "2006-01-02"

// ErrUnknownExpression is returned by Parse for input it does not recognise.
var ErrUnknownExpression = errors.New("unknown date expression")

var reClock = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)
