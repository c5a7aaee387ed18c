package application

import "github.com/example/admin-dashboard/internal/store"

// previewLimit caps how many resolved participants are surfaced on an
// appointment card; the remainder is reported as an overflow count.
const previewLimit = 3

// ResolveParticipants maps participant identifiers onto employee records,
// preserving reference order and silently dropping identifiers that no
// longer resolve. Deleting an employee must never break the appointments
// that mention them.
func ResolveParticipants(ids []string, employees map[string]store.Employee) []store.Employee {
	if len(ids) == 0 {
		return nil
	}
	resolved := make([]store.Employee, 0, len(ids))
	for _, id := range ids {
		if employee, ok := employees[id]; ok {
			resolved = append(resolved, employee)
		}
	}
	if len(resolved) == 0 {
		return nil
	}
	return resolved
}

// ParticipantPreview trims a resolved participant list to the display
// preview and the count of hidden participants.
func ParticipantPreview(resolved []store.Employee) ([]store.Employee, int) {
	if len(resolved) <= previewLimit {
		return resolved, 0
	}
	return resolved[:previewLimit], len(resolved) - previewLimit
}

// employeeIndex builds an ID keyed lookup over the roster.
func employeeIndex(employees []store.Employee) map[string]store.Employee {
	index := make(map[string]store.Employee, len(employees))
	for _, employee := range employees {
		index[employee.ID] = employee
	}
	return index
}
