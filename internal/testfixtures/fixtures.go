package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/admin-dashboard/internal/store"
)

var (
	appointmentCounter uint64
	employeeCounter    uint64
)

// referenceTime is a Saturday; the Monday-based week containing it runs from
// July 10 through July 16.
var referenceTime = time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// -------------------------- Appointment fixtures --------------------------

// AppointmentOption configures the generated appointment fixture.
type AppointmentOption func(*store.Appointment)

// NewAppointmentFixture returns a deterministic appointment with optional
// overrides. Defaults land on Monday at 9 within the standard hour window.
func NewAppointmentFixture(opts ...AppointmentOption) store.Appointment {
	idx := atomic.AddUint64(&appointmentCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := store.Appointment{
		ID:             fmt.Sprintf("appointment-%03d", idx),
		Title:          fmt.Sprintf("Appointment %03d", idx),
		ParticipantIDs: nil,
		TimeLabel:      "9am - 10am",
		Duration:       1,
		Day:            0,
		StartHour:      9,
		Type:           "meeting",
		Status:         store.StatusScheduled,
		Color:          "blue",
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithAppointmentID overrides the generated identifier.
func WithAppointmentID(id string) AppointmentOption {
	return func(f *store.Appointment) {
		f.ID = id
	}
}

// WithAppointmentTitle overrides the generated title.
func WithAppointmentTitle(title string) AppointmentOption {
	return func(f *store.Appointment) {
		f.Title = title
	}
}

// WithAppointmentSlot places the appointment on a weekday and start hour.
func WithAppointmentSlot(day, startHour int) AppointmentOption {
	return func(f *store.Appointment) {
		f.Day = day
		f.StartHour = startHour
	}
}

// WithAppointmentParticipants sets the participant references.
func WithAppointmentParticipants(ids ...string) AppointmentOption {
	return func(f *store.Appointment) {
		f.ParticipantIDs = append([]string(nil), ids...)
	}
}

// WithAppointmentType overrides the appointment type.
func WithAppointmentType(appointmentType string) AppointmentOption {
	return func(f *store.Appointment) {
		f.Type = appointmentType
	}
}

// WithAppointmentLocation sets the location.
func WithAppointmentLocation(location string) AppointmentOption {
	return func(f *store.Appointment) {
		f.Location = location
	}
}

// WithAppointmentDuration sets the display duration in hours.
func WithAppointmentDuration(duration float64) AppointmentOption {
	return func(f *store.Appointment) {
		f.Duration = duration
	}
}

// ---------------------------- Employee fixtures ---------------------------

// EmployeeOption configures the generated employee fixture.
type EmployeeOption func(*store.Employee)

// NewEmployeeFixture returns a deterministic employee with optional overrides.
func NewEmployeeFixture(opts ...EmployeeOption) store.Employee {
	idx := atomic.AddUint64(&employeeCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := store.Employee{
		ID:         fmt.Sprintf("employee-%03d", idx),
		Name:       fmt.Sprintf("Employee %03d", idx),
		Email:      fmt.Sprintf("employee-%03d@example.com", idx),
		Category:   "Label",
		Department: "Sales",
		Status:     store.EmployeeActive,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithEmployeeID overrides the generated identifier.
func WithEmployeeID(id string) EmployeeOption {
	return func(f *store.Employee) {
		f.ID = id
	}
}

// WithEmployeeName overrides the generated name.
func WithEmployeeName(name string) EmployeeOption {
	return func(f *store.Employee) {
		f.Name = name
	}
}

// WithEmployeeEmail overrides the generated email address.
func WithEmployeeEmail(email string) EmployeeOption {
	return func(f *store.Employee) {
		f.Email = email
	}
}

// WithEmployeeDepartment overrides the department.
func WithEmployeeDepartment(department string) EmployeeOption {
	return func(f *store.Employee) {
		f.Department = department
	}
}

// WithEmployeeReportTo overrides the manager reference.
func WithEmployeeReportTo(reportTo string) EmployeeOption {
	return func(f *store.Employee) {
		f.ReportTo = reportTo
	}
}
