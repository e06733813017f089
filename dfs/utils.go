// Package dfs: helpers shared by cycle detection, including Booth's
// minimal-rotation algorithm used to canonicalize cycles.
package dfs

import (
	"fmt"
	"strings"
)

// indexOf returns the first index of val in s, or -1 if not found.
// Complexity: O(n).
func indexOf[N comparable](s []N, val N) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reverseOf returns a new slice with the elements of s in reverse order.
// Complexity: O(n).
func reverseOf[N comparable](s []N) []N {
	out := make([]N, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// sigKeys renders each element with fmt.Sprint; the string forms give
// cycles a total order independent of the node type.
func sigKeys[N comparable](s []N) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = fmt.Sprint(x)
	}

	return out
}

// joinSig concatenates the rendered elements of c with commas, producing
// a single string signature. Complexity: O(total length).
func joinSig[N comparable](c []N) string {
	return strings.Join(sigKeys(c), ",")
}

// compareKeys lexicographically compares two equal-length key slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b. Complexity: O(n).
func compareKeys(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// rotate returns s rotated so that index k comes first. Complexity: O(n).
func rotate[N comparable](s []N, k int) []N {
	n := len(s)
	out := make([]N, 0, n)
	out = append(out, s[k:]...)
	out = append(out, s[:k]...)

	return out
}

// minimalRotationIndex implements Booth's algorithm over the rendered
// keys of s, returning the start index of the lexicographically minimal
// rotation. Complexity: O(n).
func minimalRotationIndex[N comparable](s []N) int {
	keys := sigKeys(s)
	doubled := append(keys, keys...)
	n := len(keys)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return k
}
