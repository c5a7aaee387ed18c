package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/example/admin-dashboard/internal/store"
)

// EmployeeService owns roster lifecycle operations on top of the in-memory
// store.
type EmployeeService struct {
	store       *store.Memory
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(memory *store.Memory, idGenerator func() string, now func() time.Time) *EmployeeService {
	return NewEmployeeServiceWithLogger(memory, idGenerator, now, nil)
}

// NewEmployeeServiceWithLogger constructs an EmployeeService with an explicit
// base logger.
func NewEmployeeServiceWithLogger(memory *store.Memory, idGenerator func() string, now func() time.Time, logger *slog.Logger) *EmployeeService {
	return &EmployeeService{
		store:       memory,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *EmployeeService) loggerWith(ctx context.Context, operation string) *slog.Logger {
	return serviceLogger(ctx, s.logger, "employee_service", operation)
}

// Create validates the input, assigns an identifier when none is supplied,
// and stores the employee.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (employee store.Employee, err error) {
	logger := s.loggerWith(ctx, "create")
	defer func() {
		if err != nil {
			logger.Warn("employee creation failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("employee created", "employee_id", employee.ID)
	}()

	if err = validateEmployeeInput(input); err != nil {
		return store.Employee{}, err
	}

	now := s.now()
	employee = employeeFromInput(input, now)
	if employee.ID == "" {
		employee.ID = s.idGenerator()
	}
	if employee.Status == "" {
		employee.Status = store.EmployeeActive
	}

	if createErr := s.store.CreateEmployee(ctx, employee); createErr != nil {
		if errors.Is(createErr, store.ErrDuplicate) {
			return store.Employee{}, fmt.Errorf("employee %q: %w", employee.ID, ErrAlreadyExists)
		}
		return store.Employee{}, fmt.Errorf("create employee: %w", createErr)
	}
	return employee, nil
}

// Update replaces the stored employee with the matching identifier,
// preserving its creation timestamp.
func (s *EmployeeService) Update(ctx context.Context, input EmployeeInput) (employee store.Employee, err error) {
	logger := s.loggerWith(ctx, "update")
	defer func() {
		if err != nil {
			logger.Warn("employee update failed", "employee_id", input.ID, "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("employee updated", "employee_id", employee.ID)
	}()

	if strings.TrimSpace(input.ID) == "" {
		vErr := &ValidationError{}
		vErr.add("id", "id is required")
		return store.Employee{}, vErr
	}
	if err = validateEmployeeInput(input); err != nil {
		return store.Employee{}, err
	}

	current, getErr := s.store.GetEmployee(ctx, input.ID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return store.Employee{}, fmt.Errorf("employee %q: %w", input.ID, ErrNotFound)
		}
		return store.Employee{}, fmt.Errorf("load employee: %w", getErr)
	}

	employee = employeeFromInput(input, s.now())
	employee.CreatedAt = current.CreatedAt
	if employee.Status == "" {
		employee.Status = current.Status
	}

	if updateErr := s.store.UpdateEmployee(ctx, employee); updateErr != nil {
		if errors.Is(updateErr, store.ErrNotFound) {
			return store.Employee{}, fmt.Errorf("employee %q: %w", input.ID, ErrNotFound)
		}
		return store.Employee{}, fmt.Errorf("update employee: %w", updateErr)
	}
	return employee, nil
}

// Delete removes the employee with the matching identifier. Appointments
// that reference the employee keep their participant entries; those entries
// simply stop resolving. Deleting an unknown identifier is logged, not
// failed.
func (s *EmployeeService) Delete(ctx context.Context, id string) (err error) {
	logger := s.loggerWith(ctx, "delete")
	defer func() {
		if err != nil {
			logger.Warn("employee deletion failed", "employee_id", id, "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("employee deleted", "employee_id", id)
	}()

	if deleteErr := s.store.DeleteEmployee(ctx, id); deleteErr != nil {
		if errors.Is(deleteErr, store.ErrNotFound) {
			logger.Info("employee already absent", "employee_id", id)
			return nil
		}
		return fmt.Errorf("delete employee: %w", deleteErr)
	}
	return nil
}

// Get returns the employee with the matching identifier.
func (s *EmployeeService) Get(ctx context.Context, id string) (store.Employee, error) {
	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Employee{}, fmt.Errorf("employee %q: %w", id, ErrNotFound)
		}
		return store.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

// List returns employees in insertion order, narrowed by the roster filter.
func (s *EmployeeService) List(ctx context.Context, filter RosterFilter) ([]store.Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	reportTo := strings.TrimSpace(filter.ReportTo)

	out := make([]store.Employee, 0, len(employees))
	for _, employee := range employees {
		if reportTo != "" && reportTo != FilterAll && !strings.EqualFold(employee.ReportTo, reportTo) {
			continue
		}
		if query != "" && !employeeMatchesQuery(employee, query) {
			continue
		}
		out = append(out, employee)
	}
	return out, nil
}

// ListDepartments returns the distinct departments present on the roster in
// alphabetical order.
func (s *EmployeeService) ListDepartments(ctx context.Context) ([]string, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	seen := make(map[string]struct{})
	departments := make([]string, 0)
	for _, employee := range employees {
		department := strings.TrimSpace(employee.Department)
		if department == "" {
			continue
		}
		if _, ok := seen[department]; ok {
			continue
		}
		seen[department] = struct{}{}
		departments = append(departments, department)
	}
	sort.Strings(departments)
	return departments, nil
}

// RosterCSV renders the filtered roster as a CSV export.
func (s *EmployeeService) RosterCSV(ctx context.Context, filter RosterFilter) ([]byte, error) {
	employees, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Name", "ID", "Email", "Category", "Report to"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, employee := range employees {
		record := []string{employee.Name, employee.ID, employee.Email, employee.Category, employee.ReportTo}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func employeeMatchesQuery(employee store.Employee, query string) bool {
	return strings.Contains(strings.ToLower(employee.Name), query) ||
		strings.Contains(strings.ToLower(employee.Email), query) ||
		strings.Contains(strings.ToLower(employee.ID), query)
}

func employeeFromInput(input EmployeeInput, now time.Time) store.Employee {
	return store.Employee{
		ID:         strings.TrimSpace(input.ID),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Category:   strings.TrimSpace(input.Category),
		ReportTo:   strings.TrimSpace(input.ReportTo),
		Avatar:     strings.TrimSpace(input.Avatar),
		Department: strings.TrimSpace(input.Department),
		Position:   strings.TrimSpace(input.Position),
		Phone:      strings.TrimSpace(input.Phone),
		Status:     input.Status,
		JoinedDate: strings.TrimSpace(input.JoinedDate),
		Salary:     input.Salary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func validateEmployeeInput(input EmployeeInput) error {
	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		vErr.add("email", "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		vErr.add("email", "email is invalid")
	}
	if input.Status != "" && !store.KnownEmployeeStatus(input.Status) {
		vErr.add("status", "unknown status")
	}
	if input.Salary < 0 {
		vErr.add("salary", "salary must not be negative")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
