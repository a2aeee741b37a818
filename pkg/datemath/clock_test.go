package datemath_test

import (
	"testing"
	"time"

	"branchboard/pkg/datemath"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    datemath.Clock
		wantErr bool
	}{
		{in: "09:00", want: datemath.Clock{Hour: 9}},
		{in: "7:30", want: datemath.Clock{Hour: 7, Minute: 30}},
		{in: " 18:05 ", want: datemath.Clock{Hour: 18, Minute: 5}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := datemath.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClockAt(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	base := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC) // 01:30 on May 2 in loc
	c := datemath.Clock{Hour: 9}

	got := c.At(base, loc)
	want := time.Date(2024, 5, 2, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("At() got = %v, want %v", got, want)
	}
	if c.String() != "09:00" {
		t.Errorf("String() got = %s", c.String())
	}
}

func TestNextWorkday(t *testing.T) {
	friday := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	if got := datemath.NextWorkday(friday, true); got.Weekday() != time.Monday || got.Day() != 6 {
		t.Errorf("NextWorkday(fri, skip) = %v, want Monday May 6", got)
	}
	if got := datemath.NextWorkday(friday, false); got.Weekday() != time.Saturday {
		t.Errorf("NextWorkday(fri, no skip) = %v, want Saturday", got)
	}

	saturday := friday.AddDate(0, 0, 1)
	if got := datemath.Workday(saturday, true); got.Weekday() != time.Monday {
		t.Errorf("Workday(sat, skip) = %v, want Monday", got)
	}
	if got := datemath.Workday(saturday, false); !got.Equal(saturday) {
		t.Errorf("Workday(sat, no skip) = %v, want unchanged", got)
	}
}

func TestDateOf(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	if got := datemath.DateOf(tm, time.UTC); !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOf() got = %v", got)
	}
	if !datemath.SameDate(tm, tm.Add(time.Hour), time.UTC) {
		t.Errorf("expected same date")
	}
	if datemath.SameDate(tm, tm.Add(9*time.Hour), time.UTC) {
		t.Errorf("expected different dates")
	}
}
