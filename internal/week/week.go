// Package week resolves week numbers of the current UTC year to
// week-aligned dates. Weeks are Monday-start; week 1 is the week
// containing January 4, matching the ISO 8601 convention.
package week

import "time"

// Resolve returns the Monday (00:00 UTC) of week num in now's UTC year.
//
// Resolution is always anchored to the current year: week 1 asked for in
// late December resolves to January of the same calendar year, not the
// next one. Sprints near a year boundary therefore stay year-local;
// callers that need cross-year history must wait for the year to roll
// over before recording into it.
func Resolve(num int, now time.Time) time.Time {
	year := now.UTC().Year()

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)

	return week1Monday.AddDate(0, 0, (num-1)*7)
}

// RangeEnd returns the last instant of the week starting at monday,
// for use as the inclusive upper bound of a date-range query.
func RangeEnd(monday time.Time) time.Time {
	return monday.AddDate(0, 0, 7).Add(-time.Second)
}
