package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reOffset = regexp.MustCompile(`^(\d+) (day|week|month)s?$`)

	keywordOffset = map[string]int{
		"yesterday": -1,
		"today":     0,
		"tomorrow":  1,
	}

	weekdayByName = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// Parser resolves user-supplied day expressions in one timezone.
type Parser struct {
	loc *time.Location
}

func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("datemath: timezone %q: %w", timezone, err)
	}
	return &Parser{loc: loc}, nil
}

func (p *Parser) Location() *time.Location {
	return p.loc
}

// ParseDate resolves s to the start of a day. Empty input is today, an ISO
// date is taken as written, anything else goes through Parse.
func (p *Parser) ParseDate(s string, base time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return p.midnight(base.In(p.loc)), nil
	}
	if t, err := time.ParseInLocation(ISODate, s, p.loc); err == nil {
		return t, nil
	}
	return p.Parse(s, base)
}

// Parse resolves "today", "tomorrow", "yesterday", "in N days|weeks|months"
// and "next <weekday>" against base. The result is midnight in the parser's
// zone. On error base is returned unchanged.
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	local := base.In(p.loc)

	if n, ok := keywordOffset[expr]; ok {
		return p.midnight(local.AddDate(0, 0, n)), nil
	}

	if rest, ok := strings.CutPrefix(expr, "in "); ok {
		m := reOffset.FindStringSubmatch(rest)
		if m == nil {
			return base, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return base, fmt.Errorf("%w: %q: %v", ErrUnknownExpression, expr, err)
		}
		switch m[2] {
		case "week":
			local = local.AddDate(0, 0, 7*n)
		case "month":
			local = local.AddDate(0, n, 0)
		default:
			local = local.AddDate(0, 0, n)
		}
		return p.midnight(local), nil
	}

	if name, ok := strings.CutPrefix(expr, "next "); ok {
		wd, known := weekdayByName[name]
		if !known {
			return base, fmt.Errorf("%w: weekday %q", ErrUnknownExpression, name)
		}
		// 1..7 days ahead; the same weekday means a week later.
		ahead := (int(wd)-int(local.Weekday())+6)%7 + 1
		return p.midnight(local.AddDate(0, 0, ahead)), nil
	}

	return base, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

// EndOfDay is the last second of the day that begins at dayStart.
func (p *Parser) EndOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Second)
}

func (p *Parser) midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.loc)
}
