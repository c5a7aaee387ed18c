// Package calendar implements the pure date and grid logic behind the
// appointment views: week-window computation, display-column derivation,
// navigation arithmetic, and cell projection. Everything here is a total
// function over its inputs; no clock is consulted.
package calendar

import (
	"fmt"
	"time"
)

// ViewType identifies the granularity of the calendar view.
type ViewType string

const (
	ViewDay   ViewType = "day"
	ViewWeek  ViewType = "week"
	ViewMonth ViewType = "month"
	ViewYear  ViewType = "year"
)

// ParseViewType maps a request value onto the closed view set.
func ParseViewType(value string) (ViewType, bool) {
	switch ViewType(value) {
	case ViewDay:
		return ViewDay, true
	case ViewWeek:
		return ViewWeek, true
	case ViewMonth:
		return ViewMonth, true
	case ViewYear:
		return ViewYear, true
	}
	return "", false
}

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the short weekday label for a Monday-based day index.
// Out-of-range indexes return an empty string.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return ""
	}
	return dayNames[day]
}

// MondayIndex remaps Go's Sunday-based weekday onto the Monday-based index
// used across appointment records (0=Monday .. 6=Sunday). Every day-view
// lookup depends on this remap.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DisplayColumn is one header column of the rendered grid.
type DisplayColumn struct {
	Date       time.Time
	DayOfMonth int
	DayName    string
	IsToday    bool
}

// Navigator computes navigation targets and display columns around a fixed
// reference date. Reference is the dashboard's notion of "today" (a
// configured constant, not the wall clock).
type Navigator struct {
	Reference time.Time
}

// Today returns the fixed reference date.
func (n Navigator) Today() time.Time {
	return n.Reference
}

// Previous shifts the anchor one step back for the given view. Month and year
// steps use calendar arithmetic; day-of-month rollover on shorter months is
// accepted.
func (n Navigator) Previous(view ViewType, anchor time.Time) time.Time {
	switch view {
	case ViewDay:
		return anchor.AddDate(0, 0, -1)
	case ViewWeek:
		return anchor.AddDate(0, 0, -7)
	case ViewMonth:
		return anchor.AddDate(0, -1, 0)
	case ViewYear:
		return anchor.AddDate(-1, 0, 0)
	}
	return anchor
}

// Next shifts the anchor one step forward for the given view.
func (n Navigator) Next(view ViewType, anchor time.Time) time.Time {
	switch view {
	case ViewDay:
		return anchor.AddDate(0, 0, 1)
	case ViewWeek:
		return anchor.AddDate(0, 0, 7)
	case ViewMonth:
		return anchor.AddDate(0, 1, 0)
	case ViewYear:
		return anchor.AddDate(1, 0, 0)
	}
	return anchor
}

// WeekDates returns the Monday-starting 7-day window containing anchor.
func WeekDates(anchor time.Time) [7]time.Time {
	start := anchor.AddDate(0, 0, -MondayIndex(anchor))
	var week [7]time.Time
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// DisplayColumns derives the header columns for a view and anchor. Day view
// yields the single anchor column; week view yields the Monday-to-Sunday
// window. Month and year views fall back to the week window: their dedicated
// grids are not modeled, and the fallback is deliberate rather than a
// default-case accident.
func (n Navigator) DisplayColumns(view ViewType, anchor time.Time) []DisplayColumn {
	switch view {
	case ViewDay:
		return []DisplayColumn{n.column(anchor, MondayIndex(anchor))}
	case ViewWeek, ViewMonth, ViewYear:
		week := WeekDates(anchor)
		columns := make([]DisplayColumn, 0, len(week))
		for i, date := range week {
			columns = append(columns, n.column(date, i))
		}
		return columns
	}
	return nil
}

func (n Navigator) column(date time.Time, day int) DisplayColumn {
	return DisplayColumn{
		Date:       date,
		DayOfMonth: date.Day(),
		DayName:    DayName(day),
		IsToday:    SameDate(date, n.Reference),
	}
}

// DateRangeLabel formats the header label for a view and anchor.
func (n Navigator) DateRangeLabel(view ViewType, anchor time.Time) string {
	switch view {
	case ViewDay:
		return fmt.Sprintf("%s %d, %d", anchor.Month(), anchor.Day(), anchor.Year())
	case ViewWeek:
		week := WeekDates(anchor)
		start, end := week[0], week[6]
		if start.Month() == end.Month() {
			return fmt.Sprintf("%s %d-%d, %d", start.Month(), start.Day(), end.Day(), anchor.Year())
		}
		return fmt.Sprintf("%s %d - %s %d, %d", start.Month(), start.Day(), end.Month(), end.Day(), anchor.Year())
	case ViewMonth:
		return fmt.Sprintf("%s, %d", anchor.Month(), anchor.Year())
	case ViewYear:
		return fmt.Sprintf("%d", anchor.Year())
	}
	return ""
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
