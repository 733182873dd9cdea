package extract

import (
	"strings"
	"time"
)

// ResolveDueDate turns a model-provided due date into a calendar date.
// ISO dates are taken as-is; a few relative phrases are resolved against
// today as a fallback for models that ignore the date instructions in the
// prompt. Returns nil when the value is absent or unrecognized.
func ResolveDueDate(raw string, today time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}

	return resolveRelative(strings.ToLower(raw), today)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func resolveRelative(phrase string, today time.Time) *time.Time {
	today = truncateToDay(today)

	switch phrase {
	case "today":
		return &today
	case "tomorrow":
		t := today.AddDate(0, 0, 1)
		return &t
	case "next week":
		// Monday of the calendar week following the current one
		t := startOfWeek(today).AddDate(0, 0, 7)
		return &t
	}

	name := strings.TrimPrefix(phrase, "next ")
	name = strings.TrimPrefix(name, "on ")
	if wd, ok := weekdays[name]; ok {
		// nearest strictly-future occurrence
		delta := (int(wd) - int(today.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		t := today.AddDate(0, 0, delta)
		return &t
	}

	return nil
}

func startOfWeek(day time.Time) time.Time {
	// weeks start on Monday
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
