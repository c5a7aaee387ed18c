package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/admin-dashboard/internal/application"
	"github.com/example/admin-dashboard/internal/calendar"
	"github.com/example/admin-dashboard/internal/export"
	"github.com/example/admin-dashboard/internal/store"
)

type calendarService interface {
	BuildGrid(ctx context.Context, params application.GridParams) (application.GridView, error)
	WeekAppointments(ctx context.Context, anchor time.Time, filter application.FilterState) ([]store.Appointment, [7]time.Time, error)
}

type CalendarHandler struct {
	service   calendarService
	now       func() time.Time
	responder responder
}

func NewCalendarHandler(service calendarService, now func() time.Time, logger *slog.Logger) *CalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &CalendarHandler{service: service, now: now, responder: newResponder(logger)}
}

// Grid renders the calendar for the requested view, anchor, and filter.
func (h *CalendarHandler) Grid(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	params, err := gridParamsFromQuery(r.URL.Query())
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	view, buildErr := h.service.BuildGrid(r.Context(), params)
	if buildErr != nil {
		h.responder.handleServiceError(r.Context(), w, buildErr)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toGridDTO(view))
}

// ExportICS serializes the week containing the anchor as an iCalendar feed.
func (h *CalendarHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	params, err := gridParamsFromQuery(r.URL.Query())
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	appointments, week, listErr := h.service.WeekAppointments(r.Context(), params.Anchor, params.Filter)
	if listErr != nil {
		h.responder.handleServiceError(r.Context(), w, listErr)
		return
	}

	document, icsErr := export.WeekICS(appointments, week, h.now())
	if icsErr != nil {
		h.responder.handleServiceError(r.Context(), w, icsErr)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, writeErr := w.Write([]byte(document)); writeErr != nil {
		h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to write ics export", "error", writeErr)
	}
}

func gridParamsFromQuery(values url.Values) (application.GridParams, error) {
	params := application.GridParams{
		View:   calendar.ViewWeek,
		Filter: filterFromQuery(values),
	}

	if viewValue := strings.TrimSpace(values.Get("view")); viewValue != "" {
		view, ok := calendar.ParseViewType(viewValue)
		if !ok {
			return application.GridParams{}, errInvalidViewType
		}
		params.View = view
	}

	if anchorValue := strings.TrimSpace(values.Get("anchor")); anchorValue != "" {
		anchor, err := time.Parse("2006-01-02", anchorValue)
		if err != nil {
			return application.GridParams{}, errInvalidAnchorDate
		}
		params.Anchor = anchor
	}

	return params, nil
}

type gridColumnDTO struct {
	Date       string `json:"date"`
	DayOfMonth int    `json:"day_of_month"`
	DayName    string `json:"day_name"`
	IsToday    bool   `json:"is_today"`
}

type gridAppointmentDTO struct {
	Appointment appointmentDTO `json:"appointment"`
	Preview     []employeeDTO  `json:"preview,omitempty"`
	Overflow    int            `json:"overflow,omitempty"`
}

type gridCellDTO struct {
	Column       int                  `json:"column"`
	Hour         int                  `json:"hour"`
	Appointments []gridAppointmentDTO `json:"appointments"`
}

type gridResponse struct {
	View           string          `json:"view"`
	Anchor         string          `json:"anchor"`
	RangeLabel     string          `json:"range_label"`
	Columns        []gridColumnDTO `json:"columns"`
	Hours          []int           `json:"hours"`
	Cells          []gridCellDTO   `json:"cells"`
	FilteredCount  int             `json:"filtered_count"`
	TotalCount     int             `json:"total_count"`
	PreviousAnchor string          `json:"previous_anchor"`
	NextAnchor     string          `json:"next_anchor"`
	TodayAnchor    string          `json:"today_anchor"`
}

func toGridDTO(view application.GridView) gridResponse {
	columns := make([]gridColumnDTO, 0, len(view.Columns))
	for _, column := range view.Columns {
		columns = append(columns, gridColumnDTO{
			Date:       column.Date.Format("2006-01-02"),
			DayOfMonth: column.DayOfMonth,
			DayName:    column.DayName,
			IsToday:    column.IsToday,
		})
	}

	cells := make([]gridCellDTO, 0, len(view.Cells))
	for _, cell := range view.Cells {
		entries := make([]gridAppointmentDTO, 0, len(cell.Appointments))
		for _, entry := range cell.Appointments {
			entries = append(entries, gridAppointmentDTO{
				Appointment: toAppointmentDTO(entry.Appointment),
				Preview:     toEmployeeDTOs(entry.Preview),
				Overflow:    entry.Overflow,
			})
		}
		cells = append(cells, gridCellDTO{Column: cell.Column, Hour: cell.Hour, Appointments: entries})
	}

	return gridResponse{
		View:           string(view.View),
		Anchor:         view.Anchor.Format("2006-01-02"),
		RangeLabel:     view.RangeLabel,
		Columns:        columns,
		Hours:          view.Hours,
		Cells:          cells,
		FilteredCount:  view.FilteredCount,
		TotalCount:     view.TotalCount,
		PreviousAnchor: view.PreviousAnchor.Format("2006-01-02"),
		NextAnchor:     view.NextAnchor.Format("2006-01-02"),
		TodayAnchor:    view.TodayAnchor.Format("2006-01-02"),
	}
}
