package service

import (
	"sort"
	"strings"

	"restboard/internal/model"
)

// Compare orders two restaurants under the given sort state: -1, 0 or 1.
// Revenue compares numerically (the backend may ship it as a decimal string,
// "9" must sort below "100"), name and location compare case-folded. A zero
// key compares everything equal so the canonical order survives.
func Compare(a, b model.Restaurant, st model.SortState) int {
	if st.Key == "" {
		return 0
	}

	var c int
	switch st.Key {
	case model.SortByRevenue:
		av, bv := a.Revenue.Float(), b.Revenue.Float()
		switch {
		case av < bv:
			c = -1
		case av > bv:
			c = 1
		}
	default:
		av := strings.ToLower(stringKey(a, st.Key))
		bv := strings.ToLower(stringKey(b, st.Key))
		c = strings.Compare(av, bv)
	}

	if st.Direction == model.SortDesc {
		c = -c
	}
	return c
}

func stringKey(r model.Restaurant, key model.SortKey) string {
	if key == model.SortByLocation {
		return r.Location
	}
	return r.Name
}

// ApplySort returns a sorted copy of the collection. The canonical order is
// never touched; equal keys keep their relative canonical positions.
func ApplySort(collection []model.Restaurant, st model.SortState) []model.Restaurant {
	view := make([]model.Restaurant, len(collection))
	copy(view, collection)
	if st.Key == "" {
		return view
	}

	sort.SliceStable(view, func(i, j int) bool {
		return Compare(view[i], view[j], st) < 0
	})
	return view
}
