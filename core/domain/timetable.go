// ABOUTME: Domain types for class timetables extracted from draft workbooks
// ABOUTME: A timetable is a week of day schedules, each a list of period slots

package domain

import "strings"

// Weekdays lists the sheet names a draft workbook is expected to carry,
// in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Slot is a single period on a single day. Value holds the matching class
// entries joined by newlines, each suffixed with its classroom; it is empty
// when the class has no session in that period.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Value string `json:"value"`
}

// DaySchedule holds the slots for one weekday.
type DaySchedule struct {
	Day   string `json:"day"`
	Slots []Slot `json:"slots"`
}

// Timetable is the weekly schedule for one class pattern.
type Timetable struct {
	// Class is the pattern the timetable was extracted for, e.g. "EL 3"
	Class string `json:"class"`

	// Periods are the column headers from the source grid, e.g. "7:00-9:00"
	Periods []string `json:"periods"`

	// Days holds one schedule per weekday, in Weekdays order
	Days []DaySchedule `json:"days"`
}

// CacheKey builds the cache key for a draft/pattern pair. The filename loses
// its extension and the pattern its spaces, so "DRAFT_4.xlsx" + "EL 3"
// becomes "DRAFT_4-EL3".
func CacheKey(filename, classPattern string) string {
	name := strings.SplitN(filename, ".", 2)[0]
	pattern := strings.ReplaceAll(classPattern, " ", "")
	return name + "-" + pattern
}

// SplitPeriod splits a period header like "7:00-9:00" into its start and end
// clock values. Headers without a dash yield the whole header as start and an
// empty end.
func SplitPeriod(period string) (start, end string) {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
