package services

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const calendarDateLayout = "2006-01-02"

// NormalizeToMonday rounds an instant down to 00:00:00 UTC of the Monday of
// its UTC week. Sunday belongs to the week that started the previous Monday.
func NormalizeToMonday(value time.Time) time.Time {
	utc := value.UTC()
	weekday := int(utc.Weekday())
	diff := 1 - weekday
	if weekday == 0 {
		diff = -6
	}
	shifted := utc.AddDate(0, 0, diff)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// LocalCalendarDate returns the "YYYY-MM-DD" date the instant falls on when
// viewed in the given timezone. DST shifts are handled by the location data.
func LocalCalendarDate(instant time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return instant.In(location).Format(calendarDateLayout)
}

// ParseWeekStartString parses "YYYY-MM-DD" as UTC midnight and normalizes the
// result to that week's Monday.
func ParseWeekStartString(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(calendarDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return NormalizeToMonday(parsed), nil
}

func FormatDateUTC(value time.Time) string {
	return value.UTC().Format(calendarDateLayout)
}

// WeekEnd returns the last instant of the week starting at the given Monday.
func WeekEnd(monday time.Time) time.Time {
	sunday := monday.UTC().AddDate(0, 0, 6)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// CurrentWeekMonday is the legacy weekOf grouping key for an instant.
func CurrentWeekMonday(now time.Time) time.Time {
	return NormalizeToMonday(now)
}
