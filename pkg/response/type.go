package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the envelope every handler writes. ErrorCode 0 means success.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Day is a calendar day written as DateFormat in the zone it already carries.
// Schedule days are local to the work calendar, so no conversion is applied.
type Day time.Time

func (d Day) String() string {
	return time.Time(d).Format(DateFormat)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return fmt.Errorf("response: day %q: %w", s, err)
	}
	*d = Day(t)
	return nil
}
