package application

import (
	"testing"

	"github.com/example/admin-dashboard/internal/store"
)

func TestResolveParticipantsDropsUnknownIDs(t *testing.T) {
	t.Parallel()

	employees := map[string]store.Employee{
		"e1": {ID: "e1", Name: "First"},
		"e2": {ID: "e2", Name: "Second"},
	}

	resolved := ResolveParticipants([]string{"e1", "missing", "e2"}, employees)

	if len(resolved) != 2 || resolved[0].ID != "e1" || resolved[1].ID != "e2" {
		t.Fatalf("resolved = %+v, want [e1 e2]", resolved)
	}
}

func TestResolveParticipantsAllUnknownReturnsNil(t *testing.T) {
	t.Parallel()

	resolved := ResolveParticipants([]string{"a", "b"}, map[string]store.Employee{})
	if resolved != nil {
		t.Fatalf("resolved = %+v, want nil", resolved)
	}
}

func TestResolveParticipantsPreservesReferenceOrder(t *testing.T) {
	t.Parallel()

	employees := map[string]store.Employee{
		"e1": {ID: "e1"},
		"e2": {ID: "e2"},
		"e3": {ID: "e3"},
	}

	resolved := ResolveParticipants([]string{"e3", "e1", "e2"}, employees)
	if resolved[0].ID != "e3" || resolved[1].ID != "e1" || resolved[2].ID != "e2" {
		t.Fatalf("order not preserved: %+v", resolved)
	}
}

func TestParticipantPreviewCapsAtThree(t *testing.T) {
	t.Parallel()

	resolved := []store.Employee{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}

	preview, overflow := ParticipantPreview(resolved)
	if len(preview) != 3 || overflow != 2 {
		t.Fatalf("preview = %d entries with overflow %d, want 3 and 2", len(preview), overflow)
	}
	if preview[0].ID != "a" || preview[2].ID != "c" {
		t.Fatalf("preview took wrong entries: %+v", preview)
	}
}

func TestParticipantPreviewSmallListHasNoOverflow(t *testing.T) {
	t.Parallel()

	resolved := []store.Employee{{ID: "a"}, {ID: "b"}}
	preview, overflow := ParticipantPreview(resolved)
	if len(preview) != 2 || overflow != 0 {
		t.Fatalf("preview = %d entries with overflow %d, want 2 and 0", len(preview), overflow)
	}
}
