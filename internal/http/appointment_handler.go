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

type appointmentService interface {
	Create(ctx context.Context, input application.AppointmentInput) (store.Appointment, error)
	Update(ctx context.Context, input application.AppointmentInput) (store.Appointment, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (store.Appointment, error)
	List(ctx context.Context, filter application.FilterState) ([]store.Appointment, error)
}

type AppointmentHandler struct {
	service   appointmentService
	responder responder
}

func NewAppointmentHandler(service appointmentService, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{service: service, responder: newResponder(logger)}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	appointment, err := h.service.Create(r.Context(), req.toInput(""))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, appointmentResponse{Appointment: toAppointmentDTO(appointment)})
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidResourceID)
		return
	}

	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	appointment, err := h.service.Update(r.Context(), req.toInput(id))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, appointmentResponse{Appointment: toAppointmentDTO(appointment)})
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidResourceID)
		return
	}

	appointment, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, appointmentResponse{Appointment: toAppointmentDTO(appointment)})
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	appointments, err := h.service.List(r.Context(), filterFromQuery(r.URL.Query()))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAppointmentsResponse{Appointments: toAppointmentDTOs(appointments)})
}

func filterFromQuery(values url.Values) application.FilterState {
	filter := application.FilterState{
		Query:      strings.TrimSpace(values.Get("q")),
		Type:       strings.TrimSpace(values.Get("type")),
		Department: strings.TrimSpace(values.Get("department")),
	}
	if filter.Type == "" {
		filter.Type = application.FilterAll
	}
	if filter.Department == "" {
		filter.Department = application.FilterAll
	}
	return filter
}

type appointmentRequest struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	ParticipantIDs []string `json:"participant_ids"`
	TimeLabel      string   `json:"time_label"`
	Duration       float64  `json:"duration"`
	Day            int      `json:"day"`
	StartHour      int      `json:"start_hour"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Color          string   `json:"color"`
}

func (r appointmentRequest) toInput(pathID string) application.AppointmentInput {
	id := strings.TrimSpace(pathID)
	if id == "" {
		id = strings.TrimSpace(r.ID)
	}
	return application.AppointmentInput{
		ID:             id,
		Title:          strings.TrimSpace(r.Title),
		ParticipantIDs: append([]string(nil), r.ParticipantIDs...),
		TimeLabel:      strings.TrimSpace(r.TimeLabel),
		Duration:       r.Duration,
		Day:            r.Day,
		StartHour:      r.StartHour,
		Location:       strings.TrimSpace(r.Location),
		Type:           strings.TrimSpace(r.Type),
		Description:    r.Description,
		Status:         store.AppointmentStatus(strings.TrimSpace(r.Status)),
		Color:          strings.TrimSpace(r.Color),
	}
}

type appointmentResponse struct {
	Appointment appointmentDTO `json:"appointment"`
}

type listAppointmentsResponse struct {
	Appointments []appointmentDTO `json:"appointments"`
}

type appointmentDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	ParticipantIDs []string `json:"participant_ids"`
	TimeLabel      string   `json:"time_label,omitempty"`
	Duration       float64  `json:"duration,omitempty"`
	Day            int      `json:"day"`
	StartHour      int      `json:"start_hour"`
	Location       string   `json:"location,omitempty"`
	Type           string   `json:"type,omitempty"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status,omitempty"`
	Color          string   `json:"color,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func toAppointmentDTO(appointment store.Appointment) appointmentDTO {
	return appointmentDTO{
		ID:             appointment.ID,
		Title:          appointment.Title,
		ParticipantIDs: append([]string(nil), appointment.ParticipantIDs...),
		TimeLabel:      appointment.TimeLabel,
		Duration:       appointment.Duration,
		Day:            appointment.Day,
		StartHour:      appointment.StartHour,
		Location:       appointment.Location,
		Type:           appointment.Type,
		Description:    appointment.Description,
		Status:         string(appointment.Status),
		Color:          appointment.Color,
		CreatedAt:      appointment.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      appointment.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toAppointmentDTOs(appointments []store.Appointment) []appointmentDTO {
	if len(appointments) == 0 {
		return nil
	}
	out := make([]appointmentDTO, 0, len(appointments))
	for _, appointment := range appointments {
		out = append(out, toAppointmentDTO(appointment))
	}
	return out
}
