package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type device struct {
	Name     string
	Brand    string
	Cost     float64
	Received time.Time
	HasCost  bool
}

var deviceView = View[device]{
	SearchFields: []string{"name", "brand"},
	Field: func(d device, name string) (any, bool) {
		switch name {
		case "name":
			return d.Name, true
		case "brand":
			return d.Brand, true
		case "cost":
			if !d.HasCost {
				return nil, false
			}
			return d.Cost, true
		case "received":
			return d.Received, true
		default:
			return nil, false
		}
	},
}

func day(n int) time.Time {
	return time.Date(2025, 3, n, 0, 0, 0, 0, time.UTC)
}

func testDevices() []device {
	return []device{
		{Name: "Latitude 5400", Brand: "Dell", Cost: 120, HasCost: true, Received: day(3)},
		{Name: "ThinkPad X1", Brand: "Lenovo", Cost: 340, HasCost: true, Received: day(1)},
		{Name: "MacBook Air", Brand: "Apple", Received: day(5)},
		{Name: "Aspire 3", Brand: "Acer", Cost: 80, HasCost: true, Received: day(2)},
	}
}

func names(devices []device) []string {
	out := make([]string, len(devices))
	for i, d := range devices {
		out[i] = d.Name
	}
	return out
}

func TestApplyEmptyParamsIsIdentity(t *testing.T) {
	in := testDevices()
	out := deviceView.Apply(in, Params{})

	assert.Equal(t, names(in), names(out))
}

func TestApplyNeverMutatesInput(t *testing.T) {
	in := testDevices()
	want := names(in)

	deviceView.Apply(in, Params{SortKey: "cost", SortDir: Ascending})

	assert.Equal(t, want, names(in), "input slice order must survive a sorted Apply")
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "case insensitive substring", search: "thinkpad", want: []string{"ThinkPad X1"}},
		{name: "matches any search field", search: "dell", want: []string{"Latitude 5400"}},
		{name: "no match", search: "chromebook", want: []string{}},
		{name: "empty matches all", search: "", want: []string{"Latitude 5400", "ThinkPad X1", "MacBook Air", "Aspire 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := deviceView.Apply(testDevices(), Params{Search: tt.search})
			assert.Equal(t, tt.want, names(out))
		})
	}
}

func TestFiltersAreConjunctive(t *testing.T) {
	in := []device{
		{Name: "A", Brand: "Dell"},
		{Name: "B", Brand: "Dell"},
		{Name: "C", Brand: "Apple"},
	}
	view := View[device]{
		SearchFields: []string{"name"},
		Field: func(d device, name string) (any, bool) {
			switch name {
			case "name":
				return d.Name, true
			case "brand":
				return d.Brand, true
			}
			return nil, false
		},
	}

	out := view.Apply(in, Params{Filters: map[string]string{"brand": "Dell", "name": "B"}})
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Name)
}

func TestFilterAllSentinelMatchesEverything(t *testing.T) {
	in := testDevices()
	out := deviceView.Apply(in, Params{Filters: map[string]string{"brand": FilterAll}})
	assert.Len(t, out, len(in))
}

func TestFilterOnMissingFieldExcludesRecord(t *testing.T) {
	in := testDevices()
	out := deviceView.Apply(in, Params{Filters: map[string]string{"nonexistent": "x"}})
	assert.Empty(t, out)
}

func TestFilterNeverGrowsResult(t *testing.T) {
	in := testDevices()
	base := deviceView.Apply(in, Params{})

	for _, filter := range []map[string]string{
		{"brand": "Dell"},
		{"brand": "Apple"},
		{"brand": "all"},
	} {
		out := deviceView.Apply(in, Params{Filters: filter})
		assert.LessOrEqual(t, len(out), len(base))
	}
}

func TestSortNumericAscending(t *testing.T) {
	out := deviceView.Apply(testDevices(), Params{SortKey: "cost", SortDir: Ascending})

	// Missing cost sorts last.
	assert.Equal(t, []string{"Aspire 3", "Latitude 5400", "ThinkPad X1", "MacBook Air"}, names(out))
}

func TestSortDescendingKeepsMissingLast(t *testing.T) {
	out := deviceView.Apply(testDevices(), Params{SortKey: "cost", SortDir: Descending})

	assert.Equal(t, []string{"ThinkPad X1", "Latitude 5400", "Aspire 3", "MacBook Air"}, names(out))
}

func TestSortByTime(t *testing.T) {
	out := deviceView.Apply(testDevices(), Params{SortKey: "received", SortDir: Ascending})

	assert.Equal(t, []string{"ThinkPad X1", "Aspire 3", "Latitude 5400", "MacBook Air"}, names(out))
}

func TestSortStringCaseInsensitive(t *testing.T) {
	in := []device{
		{Name: "b", Brand: "beta"},
		{Name: "A", Brand: "Alpha"},
		{Name: "c", Brand: "charlie"},
	}
	out := deviceView.Apply(in, Params{SortKey: "brand", SortDir: Ascending})
	assert.Equal(t, []string{"A", "b", "c"}, names(out))
}

func TestSortIsStable(t *testing.T) {
	in := []device{
		{Name: "first", Brand: "Dell", Cost: 100, HasCost: true},
		{Name: "second", Brand: "Dell", Cost: 100, HasCost: true},
		{Name: "third", Brand: "Dell", Cost: 100, HasCost: true},
	}
	out := deviceView.Apply(in, Params{SortKey: "cost", SortDir: Ascending})
	assert.Equal(t, []string{"first", "second", "third"}, names(out))
}

func TestSortReversalFlipsPresentValues(t *testing.T) {
	in := testDevices()
	asc := deviceView.Apply(in, Params{SortKey: "received", SortDir: Ascending})
	desc := deviceView.Apply(in, Params{SortKey: "received", SortDir: Descending})

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestUnsortedPreservesFilteredOrder(t *testing.T) {
	in := testDevices()
	out := deviceView.Apply(in, Params{Search: "a", SortKey: "cost", SortDir: Unsorted})

	filtered := deviceView.Apply(in, Params{Search: "a"})
	assert.Equal(t, names(filtered), names(out))
}

func TestDirectionCycle(t *testing.T) {
	d := Unsorted
	d = d.Next()
	assert.Equal(t, Ascending, d)
	d = d.Next()
	assert.Equal(t, Descending, d)
	d = d.Next()
	assert.Equal(t, Unsorted, d)
}

func TestSearchAndFilterAndSortCompose(t *testing.T) {
	in := []device{
		{Name: "Latitude 5400", Brand: "Dell", Cost: 120, HasCost: true},
		{Name: "Latitude 7420", Brand: "Dell", Cost: 90, HasCost: true},
		{Name: "ThinkPad X1", Brand: "Lenovo", Cost: 340, HasCost: true},
		{Name: "Latitude 3510", Brand: "Dell"},
	}

	out := deviceView.Apply(in, Params{
		Search:  "latitude",
		Filters: map[string]string{"brand": "Dell"},
		SortKey: "cost",
		SortDir: Ascending,
	})

	assert.Equal(t, []string{"Latitude 7420", "Latitude 5400", "Latitude 3510"}, names(out))
}
