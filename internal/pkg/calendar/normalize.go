package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
)

// DateKeyLayout is the canonical date-only key used to group events by day
const DateKeyLayout = "2006-01-02"

// TimeOfDayLayout is the display projection of the time component
const TimeOfDayLayout = "15:04"

// slashDate matches the legacy day-first text format the backend still emits
// for some rows: D/M/YYYY or DD/MM/YYYY, optionally followed by a time part.
var slashDate = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*(?:,\s*|\s+)?(.*)$`)

// layouts tried for already-canonical input, most specific first
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// timeOfDayLayouts tried for the trailing time part of slash-shaped input
var timeOfDayLayouts = []string{
	"15:04:05",
	"15:04",
}

// Normalized is a successfully parsed scheduled instant. Date key and
// time-of-day are both projections of the same underlying instant, so the two
// can never drift apart.
type Normalized struct {
	t time.Time
}

// Time returns the parsed instant
func (n Normalized) Time() time.Time {
	return n.t
}

// DateKey returns the date-only key (YYYY-MM-DD) in the instant's location
func (n Normalized) DateKey() string {
	return n.t.Format(DateKeyLayout)
}

// TimeOfDay returns the HH:mm projection of the same instant
func (n Normalized) TimeOfDay() string {
	return n.t.Format(TimeOfDayLayout)
}

// Normalize parses a scheduled-instant value as sent by the backend.
//
// Accepted shapes: ISO-8601 date/times (with or without zone and seconds),
// bare YYYY-MM-DD dates, and legacy slash-shaped text. Slash dates are always
// read day-first: "05/09/2025" is September 5th, never May 9th. That
// convention is fixed here once; no attempt is made to guess per row.
//
// Empty or unparseable input returns apperrors.ErrInvalidDate. Callers must
// treat the owning record as unschedulable and move on.
func Normalize(raw string) (Normalized, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Normalized{}, fmt.Errorf("%w: empty value", apperrors.ErrInvalidDate)
	}

	if m := slashDate.FindStringSubmatch(value); m != nil {
		return normalizeSlash(m)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Normalized{t: t}, nil
		}
	}

	return Normalized{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, raw)
}

// normalizeSlash builds the instant from a day-first match. Components are
// assembled explicitly rather than reparsed, which also rejects impossible
// dates such as 31/02/2025 (time.Date would silently roll them over).
func normalizeSlash(m []string) (Normalized, error) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Normalized{}, fmt.Errorf("%w: %s/%s/%s", apperrors.ErrInvalidDate, m[1], m[2], m[3])
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return Normalized{}, fmt.Errorf("%w: %s/%s/%s is not a real date", apperrors.ErrInvalidDate, m[1], m[2], m[3])
	}

	if rest := strings.TrimSpace(m[4]); rest != "" {
		tod, err := parseTimeOfDay(rest)
		if err != nil {
			return Normalized{}, err
		}
		t = time.Date(year, time.Month(month), day, tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
	}

	return Normalized{t: t}, nil
}

func parseTimeOfDay(rest string) (time.Time, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, rest); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad time part %q", apperrors.ErrInvalidDate, rest)
}
