package application

import (
	"testing"
	"time"

	"github.com/example/admin-dashboard/internal/calendar"
)

func TestGridCacheStoreAndGet(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, time.July, 15, 12, 0, 0, 0, time.UTC)
	cache := newGridCache(time.Minute, 8, func() time.Time { return now })

	view := GridView{RangeLabel: "July 10-16, 2023"}
	cache.Store("key", view)

	got, ok := cache.Get("key")
	if !ok || got.RangeLabel != view.RangeLabel {
		t.Fatalf("Get = (%+v, %v), want stored view", got, ok)
	}
	if _, ok := cache.Get("other"); ok {
		t.Fatal("Get returned a value for an unknown key")
	}
}

func TestGridCacheExpiresEntries(t *testing.T) {
	t.Parallel()

	current := time.Date(2023, time.July, 15, 12, 0, 0, 0, time.UTC)
	cache := newGridCache(time.Minute, 8, func() time.Time { return current })

	cache.Store("key", GridView{})
	current = current.Add(2 * time.Minute)

	if _, ok := cache.Get("key"); ok {
		t.Fatal("expired entry was returned")
	}
}

func TestGridCacheEvictsAtCapacity(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, time.July, 15, 12, 0, 0, 0, time.UTC)
	cache := newGridCache(time.Minute, 2, func() time.Time { return now })

	cache.Store("a", GridView{})
	cache.Store("b", GridView{})
	cache.Store("c", GridView{})

	hits := 0
	for _, key := range []string{"a", "b", "c"} {
		if _, ok := cache.Get(key); ok {
			hits++
		}
	}
	if hits > 2 {
		t.Fatalf("cache holds %d entries beyond its capacity of 2", hits)
	}
}

func TestGridCacheKeyIncludesVersionAndParams(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)
	base := GridParams{View: calendar.ViewWeek, Anchor: anchor, Filter: FilterState{Type: "all", Department: "all"}}

	baseKey := buildGridCacheKey(1, base)

	if buildGridCacheKey(2, base) == baseKey {
		t.Fatal("key ignores the store version")
	}

	filtered := base
	filtered.Filter.Query = "standup"
	if buildGridCacheKey(1, filtered) == baseKey {
		t.Fatal("key ignores the filter query")
	}

	dayView := base
	dayView.View = calendar.ViewDay
	if buildGridCacheKey(1, dayView) == baseKey {
		t.Fatal("key ignores the view type")
	}

	shifted := base
	shifted.Anchor = anchor.AddDate(0, 0, 7)
	if buildGridCacheKey(1, shifted) == baseKey {
		t.Fatal("key ignores the anchor date")
	}
}
