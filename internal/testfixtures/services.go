package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/admin-dashboard/internal/application"
	"github.com/example/admin-dashboard/internal/calendar"
	"github.com/example/admin-dashboard/internal/store"
)

// ServiceFactory assists tests with constructing application services over a
// shared in-memory store using deterministic identifiers and clocks.
type ServiceFactory struct {
	Store       *store.Memory
	Clock       *Clock
	IDGenerator *IDGenerator
	Logger      *slog.Logger
	Hours       calendar.HourRange
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults: an empty
// store, a clock pinned to ReferenceTime, sequential identifiers, and the
// standard 8 to 17 hour window.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Store:       store.NewMemory(),
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
		Hours:       calendar.HourRange{First: 8, Last: 17},
	}
	for _, opt := range opts {
		opt(factory)
	}
	return factory
}

// WithFactoryStore substitutes the backing store.
func WithFactoryStore(memory *store.Memory) ServiceFactoryOption {
	return func(f *ServiceFactory) {
		f.Store = memory
	}
}

// WithFactoryClock substitutes the clock.
func WithFactoryClock(clock *Clock) ServiceFactoryOption {
	return func(f *ServiceFactory) {
		f.Clock = clock
	}
}

// WithFactoryLogger substitutes the base logger.
func WithFactoryLogger(logger *slog.Logger) ServiceFactoryOption {
	return func(f *ServiceFactory) {
		f.Logger = logger
	}
}

// Appointments builds an AppointmentService wired to the factory store.
func (f *ServiceFactory) Appointments() *application.AppointmentService {
	return application.NewAppointmentServiceWithLogger(f.Store, f.IDGenerator.NextFunc(), f.Clock.NowFunc(), f.Logger)
}

// Employees builds an EmployeeService wired to the factory store.
func (f *ServiceFactory) Employees() *application.EmployeeService {
	return application.NewEmployeeServiceWithLogger(f.Store, f.IDGenerator.NextFunc(), f.Clock.NowFunc(), f.Logger)
}

// Calendar builds a CalendarService anchored at the reference date.
func (f *ServiceFactory) Calendar() *application.CalendarService {
	return application.NewCalendarServiceWithLogger(f.Store, ReferenceTime(), f.Hours, f.Logger)
}

// Auth builds an AuthService with a 24 hour session lifetime.
func (f *ServiceFactory) Auth() *application.AuthService {
	return application.NewAuthServiceWithLogger(f.Store, f.IDGenerator.NextFunc(), f.Clock.NowFunc(), 24*time.Hour, f.Logger)
}
