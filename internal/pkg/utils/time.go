package utils

import (
	"time"

	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/exceptions"
)

func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func ParseDateYMD(value string) (time.Time, error) {
	date, err := time.Parse(constvars.CalendarDateLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return date, nil
}

// ParseClockMinutes converts "HH:MM" into minutes since midnight.
func ParseClockMinutes(value string) (int, error) {
	clock, err := time.Parse(constvars.CalendarClockLayout, value)
	if err != nil {
		return 0, exceptions.ErrCannotParseTime(err)
	}
	return clock.Hour()*60 + clock.Minute(), nil
}

// FormatClockMinutes renders minutes since midnight as "HH:MM".
func FormatClockMinutes(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(constvars.CalendarClockLayout)
}

// WeekdayKey returns the lowercase weekday name used as an opening-hours
// map key.
func WeekdayKey(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
