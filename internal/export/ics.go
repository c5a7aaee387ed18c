// Package export renders calendar data into interchange formats.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/example/admin-dashboard/internal/store"
)

// WeekICS serializes one week of appointments as an iCalendar document.
// Each appointment's weekday index is resolved against the concrete dates
// of the week window; the event start is the appointment's start hour on
// that date and the end follows from its duration (appointments without a
// duration export as one hour).
func WeekICS(appointments []store.Appointment, week [7]time.Time, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, appointment := range appointments {
		if appointment.Day < 0 || appointment.Day >= len(week) {
			continue
		}
		date := week[appointment.Day]
		start := time.Date(date.Year(), date.Month(), date.Day(), appointment.StartHour, 0, 0, 0, date.Location())

		duration := appointment.Duration
		if duration <= 0 {
			duration = 1
		}
		end := start.Add(time.Duration(duration * float64(time.Hour)))

		event := cal.AddEvent(fmt.Sprintf("%s@admin-dashboard", appointment.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(appointment.Title)
		if appointment.Location != "" {
			event.SetLocation(appointment.Location)
		}
		if appointment.Description != "" {
			event.SetDescription(appointment.Description)
		}
	}

	return cal.Serialize(), nil
}
