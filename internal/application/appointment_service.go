package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/admin-dashboard/internal/store"
)

// AppointmentService owns appointment lifecycle operations on top of the
// in-memory store.
type AppointmentService struct {
	store       *store.Memory
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewAppointmentService constructs an AppointmentService.
func NewAppointmentService(memory *store.Memory, idGenerator func() string, now func() time.Time) *AppointmentService {
	return NewAppointmentServiceWithLogger(memory, idGenerator, now, nil)
}

// NewAppointmentServiceWithLogger constructs an AppointmentService with an
// explicit base logger.
func NewAppointmentServiceWithLogger(memory *store.Memory, idGenerator func() string, now func() time.Time, logger *slog.Logger) *AppointmentService {
	return &AppointmentService{
		store:       memory,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *AppointmentService) loggerWith(ctx context.Context, operation string) *slog.Logger {
	return serviceLogger(ctx, s.logger, "appointment_service", operation)
}

// Create validates the input, assigns an identifier when none is supplied,
// and stores the appointment.
func (s *AppointmentService) Create(ctx context.Context, input AppointmentInput) (appointment store.Appointment, err error) {
	logger := s.loggerWith(ctx, "create")
	defer func() {
		if err != nil {
			logger.Warn("appointment creation failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("appointment created", "appointment_id", appointment.ID)
	}()

	if err = validateAppointmentInput(input); err != nil {
		return store.Appointment{}, err
	}

	now := s.now()
	appointment = appointmentFromInput(input, now)
	if appointment.ID == "" {
		appointment.ID = s.idGenerator()
	}
	if appointment.Status == "" {
		appointment.Status = store.StatusScheduled
	}

	if createErr := s.store.CreateAppointment(ctx, appointment); createErr != nil {
		if errors.Is(createErr, store.ErrDuplicate) {
			return store.Appointment{}, fmt.Errorf("appointment %q: %w", appointment.ID, ErrAlreadyExists)
		}
		return store.Appointment{}, fmt.Errorf("create appointment: %w", createErr)
	}
	return appointment, nil
}

// Update replaces the stored appointment with the matching identifier,
// preserving its creation timestamp.
func (s *AppointmentService) Update(ctx context.Context, input AppointmentInput) (appointment store.Appointment, err error) {
	logger := s.loggerWith(ctx, "update")
	defer func() {
		if err != nil {
			logger.Warn("appointment update failed", "appointment_id", input.ID, "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("appointment updated", "appointment_id", appointment.ID)
	}()

	if strings.TrimSpace(input.ID) == "" {
		vErr := &ValidationError{}
		vErr.add("id", "id is required")
		return store.Appointment{}, vErr
	}
	if err = validateAppointmentInput(input); err != nil {
		return store.Appointment{}, err
	}

	current, getErr := s.store.GetAppointment(ctx, input.ID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return store.Appointment{}, fmt.Errorf("appointment %q: %w", input.ID, ErrNotFound)
		}
		return store.Appointment{}, fmt.Errorf("load appointment: %w", getErr)
	}

	appointment = appointmentFromInput(input, s.now())
	appointment.CreatedAt = current.CreatedAt
	if appointment.Status == "" {
		appointment.Status = current.Status
	}

	if updateErr := s.store.UpdateAppointment(ctx, appointment); updateErr != nil {
		if errors.Is(updateErr, store.ErrNotFound) {
			return store.Appointment{}, fmt.Errorf("appointment %q: %w", input.ID, ErrNotFound)
		}
		return store.Appointment{}, fmt.Errorf("update appointment: %w", updateErr)
	}
	return appointment, nil
}

// Delete removes the appointment with the matching identifier. Deleting an
// unknown identifier is not an error: the end state is the same, so the miss
// is only logged.
func (s *AppointmentService) Delete(ctx context.Context, id string) (err error) {
	logger := s.loggerWith(ctx, "delete")
	defer func() {
		if err != nil {
			logger.Warn("appointment deletion failed", "appointment_id", id, "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("appointment deleted", "appointment_id", id)
	}()

	if deleteErr := s.store.DeleteAppointment(ctx, id); deleteErr != nil {
		if errors.Is(deleteErr, store.ErrNotFound) {
			logger.Info("appointment already absent", "appointment_id", id)
			return nil
		}
		return fmt.Errorf("delete appointment: %w", deleteErr)
	}
	return nil
}

// Get returns the appointment with the matching identifier.
func (s *AppointmentService) Get(ctx context.Context, id string) (store.Appointment, error) {
	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Appointment{}, fmt.Errorf("appointment %q: %w", id, ErrNotFound)
		}
		return store.Appointment{}, fmt.Errorf("load appointment: %w", err)
	}
	return appointment, nil
}

// List returns appointments in insertion order, narrowed by the filter.
func (s *AppointmentService) List(ctx context.Context, filter FilterState) ([]store.Appointment, error) {
	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return FilterAppointments(appointments, employeeIndex(employees), filter), nil
}

func appointmentFromInput(input AppointmentInput, now time.Time) store.Appointment {
	return store.Appointment{
		ID:             strings.TrimSpace(input.ID),
		Title:          strings.TrimSpace(input.Title),
		ParticipantIDs: append([]string(nil), input.ParticipantIDs...),
		TimeLabel:      strings.TrimSpace(input.TimeLabel),
		Duration:       input.Duration,
		Day:            input.Day,
		StartHour:      input.StartHour,
		Location:       strings.TrimSpace(input.Location),
		Type:           strings.TrimSpace(input.Type),
		Description:    strings.TrimSpace(input.Description),
		Status:         input.Status,
		Color:          input.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func validateAppointmentInput(input AppointmentInput) error {
	vErr := &ValidationError{}
	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if input.Day < 0 || input.Day > 6 {
		vErr.add("day", "day must be between 0 (Monday) and 6 (Sunday)")
	}
	if input.StartHour < 0 || input.StartHour > 23 {
		vErr.add("start_hour", "start hour must be between 0 and 23")
	}
	if input.Duration < 0 {
		vErr.add("duration", "duration must not be negative")
	}
	if input.Status != "" && !store.KnownAppointmentStatus(input.Status) {
		vErr.add("status", "unknown status")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
