// Package builder provides internal helper functions and types
// for configuring valve-name schemes in network constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a valve name from its zero‐based index.
// It must be pure and deterministic, and distinct indices must map to
// distinct names.
type IDFn func(idx int) string

// valveAlphabet is the number of letters per name position.
const valveAlphabet = 26

// ValveIDFn returns two uppercase letters for idx in [0, 676): 0→"AA",
// 1→"AB", 26→"BA", 675→"ZZ". Larger indices continue as "X" followed by an
// Excel-style column, which never collides with a two-letter name.
// Panics if idx < 0.
func ValveIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ValveIDFn: idx must be ≥ 0, got %d", idx))
	}
	if idx < valveAlphabet*valveAlphabet {
		return string([]rune{'A' + rune(idx/valveAlphabet), 'A' + rune(idx%valveAlphabet)})
	}

	return "X" + ExcelColumnIDFn(idx)
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/valveAlphabet - 1 {
		runes = append(runes, rune('A'+(i%valveAlphabet)))
	}
	// reverse in-place to correct order
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
