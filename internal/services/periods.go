package services

import (
	"sort"
	"time"
)

// Period is the computed check-in window an instant falls into. Start and End
// are local midnights in the subject's timezone; End is the next scheduled
// weekday strictly after Start, so the window covers [Start, End).
type Period struct {
	Start             time.Time
	End               time.Time
	StartDate         string
	EndDate           string
	ScheduledWeekdays []int
	Label             string
}

// EffectiveScheduleDays picks the cadence for a client: a non-empty client
// override wins over the coach default, and Monday is the hard fallback so
// every client has a cadence even when both are unset.
func EffectiveScheduleDays(coachDays []int, clientOverride []int) []int {
	if normalized := normalizeScheduleDays(clientOverride); len(normalized) > 0 {
		return normalized
	}
	if normalized := normalizeScheduleDays(coachDays); len(normalized) > 0 {
		return normalized
	}
	return []int{1}
}

// normalizeScheduleDays drops out-of-range values, dedupes and sorts.
func normalizeScheduleDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	normalized := make([]int, 0, len(days))
	for _, day := range days {
		if day < 0 || day > 6 || seen[day] {
			continue
		}
		seen[day] = true
		normalized = append(normalized, day)
	}
	sort.Ints(normalized)
	return normalized
}

// ComputeCurrentPeriod resolves the active period for an instant.
//
// Start is the most recent scheduled weekday <= today in local time; End is
// the next scheduled weekday strictly after Start. With a non-empty schedule
// periods tile the timeline without gaps or overlaps.
func ComputeCurrentPeriod(scheduledWeekdays []int, instant time.Time, location *time.Location) Period {
	if location == nil {
		location = time.UTC
	}
	days := normalizeScheduleDays(scheduledWeekdays)
	if len(days) == 0 {
		days = []int{1}
	}
	scheduled := make(map[int]bool, len(days))
	for _, day := range days {
		scheduled[day] = true
	}

	localNow := instant.In(location)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	localWeekday := int(localNow.Weekday())

	startOffset := 0
	for offset := 0; offset <= 6; offset++ {
		candidate := ((localWeekday-offset)%7 + 7) % 7
		if scheduled[candidate] {
			startOffset = offset
			break
		}
	}
	periodStart := today.AddDate(0, 0, -startOffset)

	endOffset := 7
	for offset := 1; offset <= 7; offset++ {
		candidate := (int(periodStart.Weekday()) + offset) % 7
		if scheduled[candidate] {
			endOffset = offset
			break
		}
	}
	periodEnd := periodStart.AddDate(0, 0, endOffset)

	startDate := periodStart.Format(calendarDateLayout)
	endDate := periodEnd.Format(calendarDateLayout)

	return Period{
		Start:             periodStart,
		End:               periodEnd,
		StartDate:         startDate,
		EndDate:           endDate,
		ScheduledWeekdays: days,
		Label:             formatPeriodLabel(startDate, endDate),
	}
}

// formatPeriodLabel renders a short range like "Feb 10 – Feb 17".
func formatPeriodLabel(startDate string, endDate string) string {
	start, err := time.ParseInLocation(calendarDateLayout, startDate, time.UTC)
	if err != nil {
		return startDate
	}
	end, err := time.ParseInLocation(calendarDateLayout, endDate, time.UTC)
	if err != nil {
		return startDate
	}
	return start.Format("Jan 2") + " – " + end.Format("Jan 2")
}
