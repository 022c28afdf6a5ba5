// Package listview derives the filtered, sorted subset of a record
// collection for display. It is shared by every list screen in the console;
// the per-screen configuration is a View with the screen's searchable field
// set and a field accessor.
package listview

import (
	"sort"
	"strings"
	"time"
)

// FilterAll is the sentinel filter value that matches every record.
const FilterAll = "all"

type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// Next cycles the sort direction the way a repeated click on the same
// column control does: ascending, then descending, then back to unsorted.
func (d Direction) Next() Direction {
	switch d {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

// Params are the user-controlled view parameters for one list screen.
type Params struct {
	Search  string
	Filters map[string]string
	SortKey string
	SortDir Direction
}

// View configures the engine for one record type. Field returns the value
// of a named field and whether the record has it; a record missing a field
// is a non-match for search and sorts last.
type View[T any] struct {
	SearchFields []string
	Field        func(rec T, name string) (any, bool)
}

// Apply produces a new derived slice: records matching the search string and
// every active filter dimension, in the requested order. The input is never
// mutated; with empty params the output equals the input in original order.
func (v View[T]) Apply(records []T, p Params) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if v.matchesSearch(rec, p.Search) && v.matchesFilters(rec, p.Filters) {
			out = append(out, rec)
		}
	}

	if p.SortKey != "" && p.SortDir != Unsorted {
		sort.SliceStable(out, func(i, j int) bool {
			a, aok := v.Field(out[i], p.SortKey)
			b, bok := v.Field(out[j], p.SortKey)
			c := compare(a, aok, b, bok)
			if p.SortDir == Descending {
				// Missing values stay last regardless of direction, so a
				// present/absent pair is not flipped.
				if !aok || !bok {
					return c < 0
				}
				return c > 0
			}
			return c < 0
		})
	}

	return out
}

func (v View[T]) matchesSearch(rec T, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, name := range v.SearchFields {
		val, ok := v.Field(rec, name)
		if !ok {
			continue
		}
		s, ok := val.(string)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// matchesFilters is conjunctive: every dimension that is not the "all"
// sentinel must match the record's field value exactly.
func (v View[T]) matchesFilters(rec T, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		val, ok := v.Field(rec, name)
		if !ok {
			return false
		}
		s, ok := val.(string)
		if !ok || s != want {
			return false
		}
	}
	return true
}

// compare is the explicit total order for sort values: numbers compare
// numerically, times chronologically, strings case-insensitively. In a
// mixed column numbers and times order before strings. A missing value
// orders after any present value.
func compare(a any, aok bool, b any, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	an, aIsNum := numeric(a)
	bn, bIsNum := numeric(b)
	switch {
	case aIsNum && bIsNum:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	}

	return strings.Compare(strings.ToLower(stringify(a)), strings.ToLower(stringify(b)))
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case time.Time:
		return float64(n.UnixNano()), true
	}
	return 0, false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
