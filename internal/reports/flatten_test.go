package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNestedObject(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"a": {"b": 1, "c": {"d": 2}}}`), &v))

	leaves := Flatten(v)

	assert.Equal(t, []Leaf{
		{Path: "a.b", Value: "1"},
		{Path: "a.c.d", Value: "2"},
	}, leaves)
}

func TestFlattenArrays(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"items": [{"n": "x"}, {"n": "y"}]}`), &v))

	leaves := Flatten(v)

	assert.Equal(t, []Leaf{
		{Path: "items.0.n", Value: "x"},
		{Path: "items.1.n", Value: "y"},
	}, leaves)
}

func TestFlattenScalars(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"s": "hi", "b": true, "missing": null, "whole": 10, "frac": 2.5}`), &v))

	leaves := Flatten(v)

	assert.Equal(t, []Leaf{
		{Path: "b", Value: "true"},
		{Path: "frac", Value: "2.5"},
		{Path: "missing", Value: "N/A"},
		{Path: "s", Value: "hi"},
		{Path: "whole", Value: "10"},
	}, leaves)
}

func TestFlattenLeafCountMatchesScalarCount(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": {"c": 2, "d": [3, 4, 5]}}`), &v))

	leaves := Flatten(v)
	assert.Len(t, leaves, 5)
}

func TestFlattenSortedByPath(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "a": 2, "m": {"q": 3, "b": 4}}`), &v))

	leaves := Flatten(v)
	for i := 1; i < len(leaves); i++ {
		assert.Less(t, leaves[i-1].Path, leaves[i].Path)
	}
}
