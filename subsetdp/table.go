package subsetdp

import "fmt"

// Table is the finished [t][mask][v] table. It is read-only after Build and
// safe for concurrent readers.
type Table struct {
	budget int
	n      int
	masks  int
	cells  []int32
}

// Budget returns T, the highest layer.
func (tb *Table) Budget() int { return tb.budget }

// Len returns n, the number of active positions.
func (tb *Table) Len() int { return tb.n }

// Masks returns 2ⁿ, the number of masks per layer.
func (tb *Table) Masks() int { return tb.masks }

func (tb *Table) offset(t int, mask Mask, v int) int {
	return (t*tb.masks+int(mask))*tb.n + v
}

// At returns T[t][mask][v] with bounds checking.
func (tb *Table) At(t int, mask Mask, v int) (int, error) {
	if t < 0 || t > tb.budget || int(mask) >= tb.masks || v < 0 || v >= tb.n {
		return 0, fmt.Errorf("Table.At(%d,%#x,%d): %w", t, mask, v, ErrOutOfRange)
	}

	return int(tb.cells[tb.offset(t, mask, v)]), nil
}

// Value returns T[t][mask][v], or 0 when t < 1: an actor arriving with no
// time left releases nothing. Other indices are not checked.
func (tb *Table) Value(t int, mask Mask, v int) int {
	if t < 1 {
		return 0
	}

	return int(tb.cells[tb.offset(t, mask, v)])
}
