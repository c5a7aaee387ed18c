package application

import (
	"testing"

	"github.com/example/admin-dashboard/internal/store"
)

func filterFixtures() ([]store.Appointment, map[string]store.Employee) {
	employees := map[string]store.Employee{
		"e1": {ID: "e1", Name: "Megan Willow", Email: "meganwillow@gmail.com", Department: "Marketing"},
		"e2": {ID: "e2", Name: "King Fisher", Email: "kingfisher@gmail.com", Department: "IT"},
	}
	appointments := []store.Appointment{
		{ID: "a1", Title: "Campaign Review", Location: "Main Hall", Type: "meeting", ParticipantIDs: []string{"e1"}},
		{ID: "a2", Title: "Server Upgrade", Location: "Remote", Type: "appointment", ParticipantIDs: []string{"e2"}},
		{ID: "a3", Title: "Client Call", Location: "Room 2", Type: "consultation", ParticipantIDs: []string{"e1", "e2"}},
	}
	return appointments, employees
}

func TestFilterIdentityLaw(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()
	got := FilterAppointments(appointments, employees, FilterState{Type: FilterAll, Department: FilterAll})

	if len(got) != len(appointments) {
		t.Fatalf("identity filter dropped appointments: got %d, want %d", len(got), len(appointments))
	}
	for i := range got {
		if got[i].ID != appointments[i].ID {
			t.Fatalf("identity filter reordered appointments at %d: %s != %s", i, got[i].ID, appointments[i].ID)
		}
	}
}

func TestFilterFreeTextMatchesFields(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title", query: "campaign", want: []string{"a1"}},
		{name: "location", query: "main hall", want: []string{"a1"}},
		{name: "participant name", query: "king", want: []string{"a2", "a3"}},
		{name: "participant email", query: "meganwillow@", want: []string{"a1", "a3"}},
		{name: "case insensitive", query: "CAMPAIGN", want: []string{"a1"}},
		{name: "no match", query: "zzz", want: nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FilterAppointments(appointments, employees, FilterState{Query: tc.query, Type: FilterAll, Department: FilterAll})
			if len(got) != len(tc.want) {
				t.Fatalf("query %q matched %d appointments, want %d", tc.query, len(got), len(tc.want))
			}
			for i := range got {
				if got[i].ID != tc.want[i] {
					t.Fatalf("query %q result %d = %s, want %s", tc.query, i, got[i].ID, tc.want[i])
				}
			}
		})
	}
}

func TestFilterTypeFacet(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()

	got := FilterAppointments(appointments, employees, FilterState{Type: "meeting", Department: FilterAll})
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("type facet returned %+v, want [a1]", got)
	}
}

func TestFilterDepartmentFacetMatchesAnyParticipant(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()

	got := FilterAppointments(appointments, employees, FilterState{Type: FilterAll, Department: "IT"})
	if len(got) != 2 || got[0].ID != "a2" || got[1].ID != "a3" {
		t.Fatalf("department facet returned %+v, want [a2 a3]", got)
	}
}

func TestFilterUnmatchedDepartmentReturnsEmptyList(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()

	got := FilterAppointments(appointments, employees, FilterState{Type: FilterAll, Department: "Legal"})
	if len(got) != 0 {
		t.Fatalf("unmatched department returned %+v, want empty", got)
	}
}

func TestFilterConditionsCombineWithAnd(t *testing.T) {
	t.Parallel()

	appointments, employees := filterFixtures()

	got := FilterAppointments(appointments, employees, FilterState{Query: "king", Type: "consultation", Department: FilterAll})
	if len(got) != 1 || got[0].ID != "a3" {
		t.Fatalf("combined filter returned %+v, want [a3]", got)
	}

	got = FilterAppointments(appointments, employees, FilterState{Query: "king", Type: "meeting", Department: FilterAll})
	if len(got) != 0 {
		t.Fatalf("contradictory filter returned %+v, want empty", got)
	}
}

func TestFilterIgnoresDanglingParticipants(t *testing.T) {
	t.Parallel()

	employees := map[string]store.Employee{}
	appointments := []store.Appointment{
		{ID: "a1", Title: "Orphan", Type: "meeting", ParticipantIDs: []string{"gone"}},
	}

	got := FilterAppointments(appointments, employees, FilterState{Query: "orphan", Type: FilterAll, Department: FilterAll})
	if len(got) != 1 {
		t.Fatalf("dangling participant broke title matching: %+v", got)
	}

	got = FilterAppointments(appointments, employees, FilterState{Type: FilterAll, Department: "IT"})
	if len(got) != 0 {
		t.Fatalf("dangling participant matched a department: %+v", got)
	}
}
