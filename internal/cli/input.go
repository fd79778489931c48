package cli

// Input contains the flag values of the valveflow commands.
type Input struct {
	configPath string
	envFile    string
	verbose    bool
	logFormat  string

	// solve
	start        string
	singleBudget int
	pairBudget   int
	workers      int
	tunnels      string
	routes       bool
	format       string

	// generate
	valves    int
	topology  string
	density   float64
	cols      int
	seed      int64
	minFlow   int
	maxFlow   int
	dryRatio  float64
	outFormat string
	output    string
}
