// Package http provides HTTP handlers and middleware for the dashboard API.
//
// The router exposes the following endpoints:
//   - POST /sessions: issues a session token. Body: {"email","password"}. Response:
//     {"token","expires_at","user"} with the token also surfaced via the
//     `X-Session-Token` header and a `session_token` cookie.
//   - DELETE /sessions/current: revokes the current session token extracted from
//     the Authorization header or session cookie. Returns 204 No Content and
//     clears the cookie.
//   - GET /appointments, POST /appointments, GET/PUT/DELETE /appointments/{id}:
//     appointment management endpoints exchanging the `appointmentDTO` payload
//     defined in appointment_handler.go. Listing accepts the q, type, and
//     department filter parameters.
//   - GET /employees, POST /employees, GET/PUT/DELETE /employees/{id}: roster
//     management endpoints exchanging the `employeeDTO` payload defined in
//     employee_handler.go. Listing accepts the q and report_to parameters.
//   - GET /employees/export.csv: the filtered roster as a CSV attachment.
//   - GET /departments: the distinct departments present on the roster.
//   - GET /calendar: the projected grid for a view ("day", "week", "month",
//     "year"), an anchor date, and the appointment filter parameters.
//   - GET /calendar/export.ics: the anchor's week as an iCalendar feed.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
