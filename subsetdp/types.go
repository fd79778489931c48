package subsetdp

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/valveflow/matrix"
)

var (
	// ErrCapacityExceeded is returned when the active universe has more than
	// MaskBits valves.
	ErrCapacityExceeded = errors.New("subsetdp: too many active valves for mask width")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("subsetdp: negative time budget")

	// ErrNegativeValue is returned when a valve value is below zero.
	ErrNegativeValue = errors.New("subsetdp: negative valve value")

	// ErrDimensionMismatch is returned when Values and Dist disagree on n.
	ErrDimensionMismatch = errors.New("subsetdp: values and distances differ in size")

	// ErrValueOverflow is returned when a table cell could exceed int32.
	ErrValueOverflow = errors.New("subsetdp: table values overflow int32")

	// ErrOutOfRange is returned by Table.At for indices outside the table.
	ErrOutOfRange = errors.New("subsetdp: index out of range")
)

// MaskBits is the number of valves a Mask can hold.
const MaskBits = 16

// Mask is a set of active positions; bit i stands for position i.
type Mask uint16

// Bit returns the singleton mask {pos}.
func Bit(pos int) Mask { return Mask(1) << uint(pos) }

// Has reports whether pos is in m.
func (m Mask) Has(pos int) bool { return m&Bit(pos) != 0 }

// Full returns the mask holding positions 0..n-1.
func Full(n int) Mask { return Mask(uint32(1)<<uint(n) - 1) }

// Complement returns the positions of 0..n-1 not in m.
func (m Mask) Complement(n int) Mask { return ^m & Full(n) }

// Input is the compact problem the table is built over: values and
// distances of the active valves, by dense position.
type Input struct {
	// Values[i] is the flow rate of position i.
	Values []int
	// Dist is the n×n active-only distance table. It may be nil when Values
	// is empty.
	Dist *matrix.Distances
}

// Option customizes Build.
type Option func(*options)

type options struct {
	workers   int
	layerHook func(t int)
}

func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of goroutines per layer. Values below 1
// fall back to one worker.
func WithWorkers(k int) Option {
	return func(o *options) {
		if k < 1 {
			k = 1
		}
		o.workers = k
	}
}

// WithLayerHook registers fn to be called after each finished layer t, on
// the goroutine running Build.
func WithLayerHook(fn func(t int)) Option {
	return func(o *options) {
		o.layerHook = fn
	}
}
