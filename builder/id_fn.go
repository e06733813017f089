package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// Implementations must be pure and deterministic: the same index always
// yields the same string.
type IDFn func(idx int) string

// DefaultIDFn renders the decimal string of idx: 0 -> "0", 42 -> "42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn that prepends prefix to the decimal index:
// PrefixIDFn("v") yields "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn renders idx as a spreadsheet column name:
// 0 -> "A", 25 -> "Z", 26 -> "AA". Negative indices render as "A".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		idx = 0
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
