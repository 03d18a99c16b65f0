package service

import (
	"testing"

	"restboard/internal/model"
)

func restaurants(revenues ...model.Amount) []model.Restaurant {
	rs := make([]model.Restaurant, len(revenues))
	for i, rev := range revenues {
		rs[i] = model.Restaurant{ID: string(rune('a' + i)), Revenue: rev}
	}
	return rs
}

func ids(rs []model.Restaurant) string {
	var s string
	for _, r := range rs {
		s += r.ID
	}
	return s
}

func TestApplySortRevenueIsNumeric(t *testing.T) {
	// "100" < "9" lexically; numeric ordering must win.
	rs := restaurants("100", "9")
	view := ApplySort(rs, model.SortState{Key: model.SortByRevenue, Direction: model.SortAsc})
	if view[0].Revenue != "9" || view[1].Revenue != "100" {
		t.Errorf("ascending revenue = [%s %s], want [9 100]", view[0].Revenue, view[1].Revenue)
	}
}

func TestApplySortDescendingNegates(t *testing.T) {
	rs := restaurants("20", "100", "9")
	view := ApplySort(rs, model.SortState{Key: model.SortByRevenue, Direction: model.SortDesc})
	if got := ids(view); got != "bac" {
		t.Errorf("descending revenue order = %s, want bac", got)
	}
}

func TestApplySortStability(t *testing.T) {
	// Equal keys keep their canonical relative order.
	rs := []model.Restaurant{
		{ID: "a", Revenue: "50"},
		{ID: "b", Revenue: "50"},
		{ID: "c", Revenue: "10"},
		{ID: "d", Revenue: "50"},
	}
	view := ApplySort(rs, model.SortState{Key: model.SortByRevenue, Direction: model.SortAsc})
	if got := ids(view); got != "cabd" {
		t.Errorf("stable sort order = %s, want cabd", got)
	}
}

func TestApplySortStringsCaseInsensitive(t *testing.T) {
	rs := []model.Restaurant{
		{ID: "a", Name: "zebra"},
		{ID: "b", Name: "Apple"},
		{ID: "c", Name: "mango"},
	}
	view := ApplySort(rs, model.SortState{Key: model.SortByName, Direction: model.SortAsc})
	if got := ids(view); got != "bca" {
		t.Errorf("name order = %s, want bca", got)
	}
}

func TestApplySortLocationKey(t *testing.T) {
	rs := []model.Restaurant{
		{ID: "a", Location: "Pune"},
		{ID: "b", Location: "delhi"},
	}
	view := ApplySort(rs, model.SortState{Key: model.SortByLocation, Direction: model.SortAsc})
	if got := ids(view); got != "ba" {
		t.Errorf("location order = %s, want ba", got)
	}
}

func TestApplySortNoKeyPreservesOrder(t *testing.T) {
	rs := restaurants("3", "1", "2")
	view := ApplySort(rs, model.SortState{})
	if got := ids(view); got != "abc" {
		t.Errorf("no-key order = %s, want abc", got)
	}
}

func TestApplySortDoesNotMutateInput(t *testing.T) {
	rs := restaurants("3", "1", "2")
	view := ApplySort(rs, model.SortState{Key: model.SortByRevenue, Direction: model.SortAsc})
	if got := ids(rs); got != "abc" {
		t.Errorf("canonical order mutated to %s", got)
	}
	view[0].Name = "changed"
	if rs[0].Name == "changed" || rs[1].Name == "changed" {
		t.Error("sorted view shares elements with canonical slice")
	}
}

func TestCompareEqualValuesAnyDirection(t *testing.T) {
	a := model.Restaurant{Name: "Same", Revenue: "10"}
	b := model.Restaurant{Name: "same", Revenue: "10.0"}
	for _, dir := range []model.SortDirection{model.SortAsc, model.SortDesc} {
		if c := Compare(a, b, model.SortState{Key: model.SortByName, Direction: dir}); c != 0 {
			t.Errorf("Compare(name, %s) = %d, want 0", dir, c)
		}
		if c := Compare(a, b, model.SortState{Key: model.SortByRevenue, Direction: dir}); c != 0 {
			t.Errorf("Compare(revenue, %s) = %d, want 0", dir, c)
		}
	}
}
