package store

import "time"

// AppointmentStatus enumerates the lifecycle states an appointment can carry.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// KnownAppointmentStatus reports whether the value is one of the closed set of
// appointment statuses. The empty value is accepted because status is optional.
func KnownAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case "", StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Appointment is a calendar entry pinned to a weekday and start hour.
//
// Day is a Monday-based weekday index (0=Monday .. 6=Sunday). Duration is in
// hours and is display metadata only: grid occupancy is decided by Day and
// StartHour alone, so StartHour+Duration exceeding 24 is tolerated.
// ParticipantIDs are weak references into the employee collection; dangling
// entries are dropped at display time, never treated as errors.
type Appointment struct {
	ID             string
	Title          string
	ParticipantIDs []string
	TimeLabel      string
	Duration       float64
	Day            int
	StartHour      int
	Location       string
	Type           string
	Description    string
	Status         AppointmentStatus
	Color          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmployeeStatus enumerates roster states for an employee record.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeOnLeave  EmployeeStatus = "on-leave"
)

// KnownEmployeeStatus reports whether the value is one of the closed set of
// employee statuses. The empty value is accepted because status is optional.
func KnownEmployeeStatus(status EmployeeStatus) bool {
	switch status {
	case "", EmployeeActive, EmployeeInactive, EmployeeOnLeave:
		return true
	}
	return false
}

// Employee is a roster entry. ReportTo is an informal manager reference and is
// not validated against the collection.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Category   string
	ReportTo   string
	Avatar     string
	Department string
	Position   string
	Phone      string
	Status     EmployeeStatus
	JoinedDate string
	Salary     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// User is a dashboard account used by the demo authentication layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is an issued bearer session for a user.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}
