package application

import (
	"strings"

	"github.com/example/admin-dashboard/internal/store"
)

// matchesFacet reports whether a facet selection accepts the value. The
// "all" sentinel and an empty selection accept everything.
func matchesFacet(selection, value string) bool {
	if selection == "" || selection == FilterAll {
		return true
	}
	return strings.EqualFold(selection, value)
}

// FilterAppointments applies the compound filter to the appointment list.
// The free-text query matches case-insensitively against the title, the
// location, and the names and email addresses of resolved participants. The
// type facet matches the appointment type and the department facet matches
// any participant's department. All active conditions must hold. Order is
// preserved and a zero-value filter returns the input unchanged in a fresh
// slice.
func FilterAppointments(appointments []store.Appointment, employees map[string]store.Employee, filter FilterState) []store.Appointment {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]store.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if !matchesFacet(filter.Type, appointment.Type) {
			continue
		}
		if !matchesDepartment(appointment, employees, filter.Department) {
			continue
		}
		if query != "" && !matchesQuery(appointment, employees, query) {
			continue
		}
		out = append(out, appointment)
	}
	return out
}

func matchesDepartment(appointment store.Appointment, employees map[string]store.Employee, department string) bool {
	if department == "" || department == FilterAll {
		return true
	}
	for _, id := range appointment.ParticipantIDs {
		employee, ok := employees[id]
		if !ok {
			continue
		}
		if strings.EqualFold(employee.Department, department) {
			return true
		}
	}
	return false
}

func matchesQuery(appointment store.Appointment, employees map[string]store.Employee, query string) bool {
	if strings.Contains(strings.ToLower(appointment.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(appointment.Location), query) {
		return true
	}
	for _, id := range appointment.ParticipantIDs {
		employee, ok := employees[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(employee.Name), query) {
			return true
		}
		if strings.Contains(strings.ToLower(employee.Email), query) {
			return true
		}
	}
	return false
}
