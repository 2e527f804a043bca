// Package dateutil converts calendar dates into the day and year counts the
// calculators take.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the accepted date format.
const Layout = "2006-01-02"

const daysPerYear = 365.25

// ParseDate parses an ISO 8601 calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Age calculates the age in whole years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// HoldingDays counts calendar days from buy to sell. Selling on the buy date
// is zero days; selling before it is an error.
func HoldingDays(buy, sell time.Time) (int, error) {
	b := truncateDay(buy)
	s := truncateDay(sell)
	if s.Before(b) {
		return 0, fmt.Errorf("sell date %s is before buy date %s", s.Format(Layout), b.Format(Layout))
	}
	return int(s.Sub(b).Hours() / 24), nil
}

// YearsUntilDate calculates the number of years between two dates
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / daysPerYear
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
