package reports

import (
	"sort"
	"strconv"
)

// Leaf is one flattened (dotted-path, stringified-value) pair.
type Leaf struct {
	Path  string
	Value string
}

// Flatten walks an arbitrarily nested JSON-decoded value depth-first and
// emits one Leaf per scalar. Objects contribute key segments, arrays
// contribute index segments; the result is sorted by path so the generic
// report renderer is deterministic. This is the fallback for report kinds
// the console does not recognize.
func Flatten(v any) []Leaf {
	var leaves []Leaf
	flattenInto(&leaves, "", v)
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Path < leaves[j].Path })
	return leaves
}

func flattenInto(out *[]Leaf, path string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			flattenInto(out, joinPath(path, key), child)
		}
	case []any:
		for i, child := range val {
			flattenInto(out, joinPath(path, strconv.Itoa(i)), child)
		}
	default:
		*out = append(*out, Leaf{Path: path, Value: stringifyScalar(val)})
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

func stringifyScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; format without trailing zeros so
		// integer values render as integers.
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return "N/A"
	}
}
