// Package timeutil provides the small time helpers profile displays use.
package timeutil

import (
	"fmt"
	"time"
	_ "time/tzdata" // keep IANA lookups working on hosts without a zone database
)

const (
	birthdateLayout = "2006-01-02"
	clockLayout     = "15:04"
)

// ZonedNow returns the current time in the given IANA timezone. An empty or
// unknown zone falls back to local time.
func ZonedNow(zone string) time.Time {
	return zonedAt(zone, time.Now())
}

func zonedAt(zone string, now time.Time) time.Time {
	if zone == "" {
		return now
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return now
	}
	return now.In(loc)
}

// FormatClock renders a time as a 24h wall clock, the way recipient cards
// show "their local time".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// Clock renders the current wall-clock time in the given zone.
func Clock(zone string) string {
	return FormatClock(ZonedNow(zone))
}

// ClockAt renders the wall-clock time in the given zone at a reference time.
func ClockAt(zone string, now time.Time) string {
	return FormatClock(zonedAt(zone, now))
}

// DaysUntilBirthday returns the number of days from now until the next
// occurrence of the birthdate's month and day, and false when the birthdate
// is empty or malformed. A birthday today returns zero.
func DaysUntilBirthday(birthdate string, now time.Time) (int, bool) {
	if birthdate == "" {
		return 0, false
	}
	born, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), born.Month(), born.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	// Round so daylight-saving shifts inside the window cannot skew the count.
	return int(next.Sub(today).Round(24*time.Hour).Hours() / 24), true
}

// FormatBirthdayCountdown renders the countdown for listings; an unknown
// birthdate renders as an empty string.
func FormatBirthdayCountdown(birthdate string, now time.Time) string {
	days, ok := DaysUntilBirthday(birthdate, now)
	if !ok {
		return ""
	}
	switch days {
	case 0:
		return "birthday today!"
	case 1:
		return "birthday tomorrow"
	default:
		return fmt.Sprintf("birthday in %d days", days)
	}
}
