package application

import (
	"time"

	"github.com/example/admin-dashboard/internal/calendar"
	"github.com/example/admin-dashboard/internal/store"
)

// Principal represents the authenticated account invoking an operation.
type Principal struct {
	UserID string
	Name   string
	Email  string
}

// FilterAll is the sentinel select-box value that disables a filter facet.
const FilterAll = "all"

// FilterState carries the compound appointment filter: a free-text query plus
// the type and department facets. A zero value (empty query, "all" facets)
// passes every appointment.
type FilterState struct {
	Query      string
	Type       string
	Department string
}

// AppointmentInput captures caller-provided appointment fields. ID is
// optional; when empty a fresh identifier is assigned on create.
type AppointmentInput struct {
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
	Status         store.AppointmentStatus
	Color          string
}

// EmployeeInput captures caller-provided employee fields.
type EmployeeInput struct {
	ID         string
	Name       string
	Email      string
	Category   string
	ReportTo   string
	Avatar     string
	Department string
	Position   string
	Phone      string
	Status     store.EmployeeStatus
	JoinedDate string
	Salary     float64
}

// RosterFilter narrows employee listings: free text over name, email, and
// identifier plus an exact manager match. Empty fields (or "all" for
// ReportTo) pass everyone.
type RosterFilter struct {
	Query    string
	ReportTo string
}

// GridParams identifies one rendered calendar view.
type GridParams struct {
	View   calendar.ViewType
	Anchor time.Time
	Filter FilterState
}

// GridAppointment is an appointment enriched for rendering: the resolved
// participant preview (at most three employees) and the overflow count.
type GridAppointment struct {
	Appointment store.Appointment
	Preview     []store.Employee
	Overflow    int
}

// GridCell is one occupied slot of the projected grid.
type GridCell struct {
	Column       int
	Hour         int
	Appointments []GridAppointment
}

// GridView is the complete, render-ready projection of the calendar for one
// combination of view type, anchor date, and filter state.
type GridView struct {
	View           calendar.ViewType
	Anchor         time.Time
	RangeLabel     string
	Columns        []calendar.DisplayColumn
	Hours          []int
	Cells          []GridCell
	FilteredCount  int
	TotalCount     int
	PreviousAnchor time.Time
	NextAnchor     time.Time
	TodayAnchor    time.Time
}

// AuthenticateParams captures the data required to authenticate a user.
type AuthenticateParams struct {
	Email    string
	Password string
}

// AuthenticateResult captures the outcome of a successful login.
type AuthenticateResult struct {
	User    store.User
	Session store.Session
}
