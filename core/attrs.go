// Package core: attribute dictionaries.
//
// A single Attrs type serves graph-level, node-level, and edge-level
// metadata. Values are untyped; algorithms that expect a numeric key
// (most commonly "weight") read it through Float with a caller-supplied
// default instead of failing on absence.

package core

// Attrs stores arbitrary key/value metadata.
//
// Attrs is an ordinary Go map, so it is a reference type: undirected
// graphs deliberately store the same Attrs object under both (u,v) and
// (v,u), and mutations made through either adjacency row are visible
// from the other.
type Attrs map[string]any

// Get returns the value stored under key, or def when absent.
// Complexity: O(1).
func (a Attrs) Get(key string, def any) any {
	if v, ok := a[key]; ok {
		return v
	}
	return def
}

// Float returns the value under key coerced to float64, or def when the
// key is absent or holds a non-numeric value. This is the lookup used by
// weighted algorithms ("weight" defaulting to 1). Complexity: O(1).
func (a Attrs) Float(key string, def float64) float64 {
	v, ok := a[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return def
	}
}

// Update merges src into a, last write wins. Complexity: O(len(src)).
func (a Attrs) Update(src Attrs) {
	for k, v := range src {
		a[k] = v
	}
}

// Clone returns an independent shallow copy (fresh map, same values).
// Complexity: O(n).
func (a Attrs) Clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// mergeAttrs folds a variadic attrs argument into dst, in order.
// Mutation methods accept `attrs ...Attrs` so the zero-argument call
// stays clean while still allowing metadata at insertion time.
func mergeAttrs(dst Attrs, attrs []Attrs) {
	for _, a := range attrs {
		dst.Update(a)
	}
}
