// Package store holds the canonical in-memory entity collections for the
// dashboard. A Memory store is constructed explicitly at application start
// and handed to every consuming service; there is no package-level instance.
package store

import (
	"context"
	"sync"
	"time"
)

// Memory owns the appointment, employee, user, and session collections.
// All mutations are atomic under a single mutex and bump an observable
// version counter so derived views can detect staleness. List operations
// return copies in insertion order.
type Memory struct {
	mu      sync.Mutex
	version uint64

	appointments []Appointment
	employees    []Employee
	users        []User
	sessions     []Session
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// Version returns the number of mutations applied since construction.
func (m *Memory) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Reset drops every collection. Intended for tests.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments = nil
	m.employees = nil
	m.users = nil
	m.sessions = nil
	m.version++
}

// ----------------------------- Appointments -----------------------------

// CreateAppointment appends a new appointment record.
func (m *Memory) CreateAppointment(ctx context.Context, appointment Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.appointments {
		if existing.ID == appointment.ID {
			return ErrDuplicate
		}
	}
	m.appointments = append(m.appointments, cloneAppointment(appointment))
	m.version++
	return nil
}

// UpdateAppointment replaces the record with the matching identifier.
func (m *Memory) UpdateAppointment(ctx context.Context, appointment Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.appointments {
		if existing.ID == appointment.ID {
			m.appointments[i] = cloneAppointment(appointment)
			m.version++
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAppointment removes the record with the matching identifier.
func (m *Memory) DeleteAppointment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.appointments {
		if existing.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			m.version++
			return nil
		}
	}
	return ErrNotFound
}

// GetAppointment returns the record with the matching identifier.
func (m *Memory) GetAppointment(ctx context.Context, id string) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.appointments {
		if existing.ID == id {
			return cloneAppointment(existing), nil
		}
	}
	return Appointment{}, ErrNotFound
}

// ListAppointments returns all appointments in insertion order.
func (m *Memory) ListAppointments(ctx context.Context) ([]Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.appointments) == 0 {
		return nil, nil
	}
	out := make([]Appointment, 0, len(m.appointments))
	for _, appointment := range m.appointments {
		out = append(out, cloneAppointment(appointment))
	}
	return out, nil
}

// ------------------------------ Employees -------------------------------

// CreateEmployee appends a new employee record.
func (m *Memory) CreateEmployee(ctx context.Context, employee Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.employees {
		if existing.ID == employee.ID {
			return ErrDuplicate
		}
	}
	m.employees = append(m.employees, employee)
	m.version++
	return nil
}

// UpdateEmployee replaces the record with the matching identifier.
func (m *Memory) UpdateEmployee(ctx context.Context, employee Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.employees {
		if existing.ID == employee.ID {
			m.employees[i] = employee
			m.version++
			return nil
		}
	}
	return ErrNotFound
}

// DeleteEmployee removes the record with the matching identifier. Appointments
// referencing the employee are left untouched; their participant lists dangle
// by design and resolve to nothing at display time.
func (m *Memory) DeleteEmployee(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.employees {
		if existing.ID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			m.version++
			return nil
		}
	}
	return ErrNotFound
}

// GetEmployee returns the record with the matching identifier.
func (m *Memory) GetEmployee(ctx context.Context, id string) (Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.employees {
		if existing.ID == id {
			return existing, nil
		}
	}
	return Employee{}, ErrNotFound
}

// ListEmployees returns all employees in insertion order.
func (m *Memory) ListEmployees(ctx context.Context) ([]Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.employees) == 0 {
		return nil, nil
	}
	out := make([]Employee, len(m.employees))
	copy(out, m.employees)
	return out, nil
}

// -------------------------------- Users ---------------------------------

// CreateUser appends a new dashboard account.
func (m *Memory) CreateUser(ctx context.Context, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.ID == user.ID || existing.Email == user.Email {
			return ErrDuplicate
		}
	}
	m.users = append(m.users, user)
	m.version++
	return nil
}

// GetUser returns the account with the matching identifier.
func (m *Memory) GetUser(ctx context.Context, id string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return User{}, ErrNotFound
}

// GetUserByEmail returns the account with the matching email address.
func (m *Memory) GetUserByEmail(ctx context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return User{}, ErrNotFound
}

// ------------------------------- Sessions -------------------------------

// CreateSession stores a newly issued session.
func (m *Memory) CreateSession(ctx context.Context, session Session) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sessions {
		if existing.Token == session.Token {
			return Session{}, ErrDuplicate
		}
	}
	m.sessions = append(m.sessions, cloneSession(session))
	m.version++
	return cloneSession(session), nil
}

// GetSession returns the session with the matching token.
func (m *Memory) GetSession(ctx context.Context, token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sessions {
		if existing.Token == token {
			return cloneSession(existing), nil
		}
	}
	return Session{}, ErrNotFound
}

// RevokeSession marks the session with the matching token as revoked.
func (m *Memory) RevokeSession(ctx context.Context, token string, revokedAt time.Time) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.sessions {
		if existing.Token == token {
			stamp := revokedAt
			m.sessions[i].RevokedAt = &stamp
			m.sessions[i].UpdatedAt = revokedAt
			m.version++
			return cloneSession(m.sessions[i]), nil
		}
	}
	return Session{}, ErrNotFound
}

// DeleteExpiredSessions drops sessions that expired at or before reference.
func (m *Memory) DeleteExpiredSessions(ctx context.Context, reference time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.sessions[:0]
	removed := false
	for _, existing := range m.sessions {
		if existing.ExpiresAt.After(reference) {
			kept = append(kept, existing)
			continue
		}
		removed = true
	}
	m.sessions = kept
	if removed {
		m.version++
	}
	return nil
}

func cloneAppointment(appointment Appointment) Appointment {
	out := appointment
	out.ParticipantIDs = append([]string(nil), appointment.ParticipantIDs...)
	return out
}

func cloneSession(session Session) Session {
	out := session
	if session.RevokedAt != nil {
		stamp := *session.RevokedAt
		out.RevokedAt = &stamp
	}
	return out
}
