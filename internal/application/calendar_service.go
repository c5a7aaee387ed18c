package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/example/admin-dashboard/internal/calendar"
	"github.com/example/admin-dashboard/internal/store"
)

// CalendarService assembles render-ready grid views: it lists and filters
// appointments, projects them into cells, resolves participant previews,
// and computes the navigation anchors around a fixed reference date.
type CalendarService struct {
	store     *store.Memory
	navigator calendar.Navigator
	hours     calendar.HourRange
	cache     *gridCache
	logger    *slog.Logger
}

// NewCalendarService constructs a CalendarService.
func NewCalendarService(memory *store.Memory, reference time.Time, hours calendar.HourRange) *CalendarService {
	return NewCalendarServiceWithLogger(memory, reference, hours, nil)
}

// NewCalendarServiceWithLogger constructs a CalendarService with an explicit
// base logger.
func NewCalendarServiceWithLogger(memory *store.Memory, reference time.Time, hours calendar.HourRange, logger *slog.Logger) *CalendarService {
	return &CalendarService{
		store:     memory,
		navigator: calendar.Navigator{Reference: reference},
		hours:     hours,
		cache:     newGridCache(0, 0, nil),
		logger:    defaultLogger(logger),
	}
}

// Navigator exposes the service's navigator for callers that only need
// anchor arithmetic.
func (s *CalendarService) Navigator() calendar.Navigator {
	return s.navigator
}

// BuildGrid produces the grid view for the given parameters. Results are
// cached per store version, so repeated renders of an unchanged calendar
// skip the projection work.
func (s *CalendarService) BuildGrid(ctx context.Context, params GridParams) (view GridView, err error) {
	logger := serviceLogger(ctx, s.logger, "calendar_service", "build_grid",
		"view", string(params.View), "anchor", params.Anchor.Format("2006-01-02"))
	defer func() {
		if err != nil {
			logger.Warn("grid build failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("grid built", "cells", len(view.Cells), "filtered", view.FilteredCount, "total", view.TotalCount)
	}()

	if params.Anchor.IsZero() {
		params.Anchor = s.navigator.Today()
	}

	key := buildGridCacheKey(s.store.Version(), params)
	if cached, ok := s.cache.Get(key); ok {
		logger.Debug("grid cache hit")
		return cached, nil
	}

	appointments, listErr := s.store.ListAppointments(ctx)
	if listErr != nil {
		return GridView{}, fmt.Errorf("list appointments: %w", listErr)
	}
	employees, listErr := s.store.ListEmployees(ctx)
	if listErr != nil {
		return GridView{}, fmt.Errorf("list employees: %w", listErr)
	}

	index := employeeIndex(employees)
	filtered := FilterAppointments(appointments, index, params.Filter)

	view = s.assemble(params, filtered, index, len(appointments))
	s.cache.Store(key, view)
	return view, nil
}

func (s *CalendarService) assemble(params GridParams, filtered []store.Appointment, index map[string]store.Employee, total int) GridView {
	columns := s.navigator.DisplayColumns(params.View, params.Anchor)

	events := make([]calendar.Event, 0, len(filtered))
	byID := make(map[string]store.Appointment, len(filtered))
	for _, appointment := range filtered {
		events = append(events, calendar.Event{
			ID:        appointment.ID,
			Day:       appointment.Day,
			StartHour: appointment.StartHour,
		})
		byID[appointment.ID] = appointment
	}

	projected := calendar.Project(events, params.View, calendar.MondayIndex(params.Anchor), len(columns), s.hours)

	cells := make([]GridCell, 0, len(projected))
	for cell, ids := range projected {
		entries := make([]GridAppointment, 0, len(ids))
		for _, id := range ids {
			appointment := byID[id]
			resolved := ResolveParticipants(appointment.ParticipantIDs, index)
			preview, overflow := ParticipantPreview(resolved)
			entries = append(entries, GridAppointment{
				Appointment: appointment,
				Preview:     preview,
				Overflow:    overflow,
			})
		}
		cells = append(cells, GridCell{Column: cell.Column, Hour: cell.Hour, Appointments: entries})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Column != cells[j].Column {
			return cells[i].Column < cells[j].Column
		}
		return cells[i].Hour < cells[j].Hour
	})

	return GridView{
		View:           params.View,
		Anchor:         params.Anchor,
		RangeLabel:     s.navigator.DateRangeLabel(params.View, params.Anchor),
		Columns:        columns,
		Hours:          s.hours.Hours(),
		Cells:          cells,
		FilteredCount:  len(filtered),
		TotalCount:     total,
		PreviousAnchor: s.navigator.Previous(params.View, params.Anchor),
		NextAnchor:     s.navigator.Next(params.View, params.Anchor),
		TodayAnchor:    s.navigator.Today(),
	}
}

// WeekAppointments returns the filtered appointments for the week containing
// anchor together with the concrete dates of that week. Export formats that
// need real instants (rather than weekday indexes) start here.
func (s *CalendarService) WeekAppointments(ctx context.Context, anchor time.Time, filter FilterState) ([]store.Appointment, [7]time.Time, error) {
	if anchor.IsZero() {
		anchor = s.navigator.Today()
	}

	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, [7]time.Time{}, fmt.Errorf("list appointments: %w", err)
	}
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, [7]time.Time{}, fmt.Errorf("list employees: %w", err)
	}

	filtered := FilterAppointments(appointments, employeeIndex(employees), filter)
	return filtered, calendar.WeekDates(anchor), nil
}
