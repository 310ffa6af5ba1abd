package datemath

import (
	"strings"
	"time"
)

// Canonical times of day for date-only phrases.
const (
	NoonHour    = 12
	EveningHour = 20
)

// At returns t's calendar day at hour:minute:00.000 in t's location.
// Out-of-range values normalize the way time.Date does.
func At(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return At(t, 0, 0)
}

// AddDays moves t by n calendar days keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// NextWeekday returns the first day strictly after now's calendar day that falls on target.
// Asking for today's weekday yields the same weekday one week out.
func NextWeekday(now time.Time, target time.Weekday) time.Time {
	days := int(target) - int(now.Weekday())
	if days <= 0 {
		days += 7
	}
	return AddDays(now, days)
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday maps a full or three-letter English weekday name, any case.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// ChipDates are the canonical one-tap due dates.
type ChipDates struct {
	Today    time.Time
	Tonight  time.Time
	Tomorrow time.Time
	NextWeek time.Time
}

// Chips computes the chip dates from now, in now's location.
func Chips(now time.Time) ChipDates {
	return ChipDates{
		Today:    At(now, NoonHour, 0),
		Tonight:  At(now, EveningHour, 0),
		Tomorrow: At(AddDays(now, 1), NoonHour, 0),
		NextWeek: At(AddDays(now, 7), NoonHour, 0),
	}
}
