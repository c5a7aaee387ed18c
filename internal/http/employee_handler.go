package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/admin-dashboard/internal/application"
	"github.com/example/admin-dashboard/internal/store"
)

type employeeService interface {
	Create(ctx context.Context, input application.EmployeeInput) (store.Employee, error)
	Update(ctx context.Context, input application.EmployeeInput) (store.Employee, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (store.Employee, error)
	List(ctx context.Context, filter application.RosterFilter) ([]store.Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
	RosterCSV(ctx context.Context, filter application.RosterFilter) ([]byte, error)
}

type EmployeeHandler struct {
	service   employeeService
	responder responder
}

func NewEmployeeHandler(service employeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, responder: newResponder(logger)}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	employee, err := h.service.Create(r.Context(), req.toInput(""))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, employeeResponse{Employee: toEmployeeDTO(employee)})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidResourceID)
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	employee, err := h.service.Update(r.Context(), req.toInput(id))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, employeeResponse{Employee: toEmployeeDTO(employee)})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidResourceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidResourceID)
		return
	}

	employee, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, employeeResponse{Employee: toEmployeeDTO(employee)})
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	employees, err := h.service.List(r.Context(), rosterFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEmployeesResponse{Employees: toEmployeeDTOs(employees)})
}

func (h *EmployeeHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listDepartmentsResponse{Departments: departments})
}

func (h *EmployeeHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data, err := h.service.RosterCSV(r.Context(), rosterFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to write csv export", "error", err)
	}
}

func rosterFilterFromQuery(values url.Values) application.RosterFilter {
	return application.RosterFilter{
		Query:    strings.TrimSpace(values.Get("q")),
		ReportTo: strings.TrimSpace(values.Get("report_to")),
	}
}

type employeeRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Category   string  `json:"category"`
	ReportTo   string  `json:"report_to"`
	Avatar     string  `json:"avatar"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Phone      string  `json:"phone"`
	Status     string  `json:"status"`
	JoinedDate string  `json:"joined_date"`
	Salary     float64 `json:"salary"`
}

func (r employeeRequest) toInput(pathID string) application.EmployeeInput {
	id := strings.TrimSpace(pathID)
	if id == "" {
		id = strings.TrimSpace(r.ID)
	}
	return application.EmployeeInput{
		ID:         id,
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.TrimSpace(r.Email),
		Category:   strings.TrimSpace(r.Category),
		ReportTo:   strings.TrimSpace(r.ReportTo),
		Avatar:     strings.TrimSpace(r.Avatar),
		Department: strings.TrimSpace(r.Department),
		Position:   strings.TrimSpace(r.Position),
		Phone:      strings.TrimSpace(r.Phone),
		Status:     store.EmployeeStatus(strings.TrimSpace(r.Status)),
		JoinedDate: strings.TrimSpace(r.JoinedDate),
		Salary:     r.Salary,
	}
}

type employeeResponse struct {
	Employee employeeDTO `json:"employee"`
}

type listEmployeesResponse struct {
	Employees []employeeDTO `json:"employees"`
}

type listDepartmentsResponse struct {
	Departments []string `json:"departments"`
}

type employeeDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Category   string  `json:"category,omitempty"`
	ReportTo   string  `json:"report_to,omitempty"`
	Avatar     string  `json:"avatar,omitempty"`
	Department string  `json:"department,omitempty"`
	Position   string  `json:"position,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Status     string  `json:"status,omitempty"`
	JoinedDate string  `json:"joined_date,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func toEmployeeDTO(employee store.Employee) employeeDTO {
	return employeeDTO{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Category:   employee.Category,
		ReportTo:   employee.ReportTo,
		Avatar:     employee.Avatar,
		Department: employee.Department,
		Position:   employee.Position,
		Phone:      employee.Phone,
		Status:     string(employee.Status),
		JoinedDate: employee.JoinedDate,
		Salary:     employee.Salary,
		CreatedAt:  employee.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  employee.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toEmployeeDTOs(employees []store.Employee) []employeeDTO {
	if len(employees) == 0 {
		return nil
	}
	out := make([]employeeDTO, 0, len(employees))
	for _, employee := range employees {
		out = append(out, toEmployeeDTO(employee))
	}
	return out
}
