package planner

import (
	"errors"
	"runtime"
)

// Reference values of the puzzle this package was built for.
const (
	DefaultStart        = "AA"
	DefaultSingleBudget = 30
	DefaultPairBudget   = 26
)

var (
	// ErrNilGraph is returned when Prepare receives a nil graph.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrUnknownStart is returned when the start valve is not in the graph.
	ErrUnknownStart = errors.New("planner: unknown start valve")
)

// Stop is one opened valve on a route.
type Stop struct {
	Valve string
	Flow  int
	// Remaining is how many minutes the valve flows after it opens.
	Remaining int
}

// Route is the ordered list of valves one actor opens.
type Route struct {
	Stops []Stop
}

// Released returns the pressure released by the route: Σ Flow·Remaining.
func (r Route) Released() int {
	total := 0
	for _, s := range r.Stops {
		total += s.Flow * s.Remaining
	}

	return total
}

// Result is a solver answer. Value equals the sum of Released over Routes.
type Result struct {
	Value  int
	Routes []Route
}

// Request bundles the inputs of Solve.
type Request struct {
	Start        string
	SingleBudget int
	PairBudget   int
}

// Answer holds both solver results.
type Answer struct {
	// Active is the number of valves left after pruning.
	Active int
	Single Result
	Pair   Result
}

// Option customizes the solvers.
type Option func(*settings)

type settings struct {
	workers   int
	layerHook func(t int)
}

func newSettings(opts ...Option) settings {
	s := settings{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithWorkers bounds the goroutines used for table layers and the two-actor
// reduction. Values below 1 mean one worker.
func WithWorkers(k int) Option {
	return func(s *settings) {
		s.workers = max(k, 1)
	}
}

// WithLayerHook is called after each finished table layer.
func WithLayerHook(fn func(t int)) Option {
	return func(s *settings) {
		s.layerHook = fn
	}
}
