package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/planner"
	"github.com/katalvlaran/valveflow/scan"
)

func newSolveCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input file]",
		Short: "Print the best single-actor and two-actor pressure for a network",
		Long: "Reads a valve network (text or YAML; standard input when no file is given)\n" +
			"and prints two lines: the single-actor answer, then the two-actor answer.",
		Args: cobra.MaximumNArgs(1),
		RunE: newSolveAction(ctx, input),
	}
	cmd.Flags().StringVar(&input.start, "start", planner.DefaultStart, "start valve")
	cmd.Flags().IntVar(&input.singleBudget, "single-budget", planner.DefaultSingleBudget, "minutes for the single actor")
	cmd.Flags().IntVar(&input.pairBudget, "pair-budget", planner.DefaultPairBudget, "minutes for the two actors")
	cmd.Flags().IntVar(&input.workers, "workers", 0, "solver goroutines (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&input.tunnels, "tunnels", core.Directed.String(), "tunnel policy: directed, strict or mirror")
	cmd.Flags().BoolVar(&input.routes, "routes", false, "print the route behind each answer")
	cmd.Flags().StringVar(&input.format, "format", "", "input format for standard input: text or yaml")

	return cmd
}

func newSolveAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cfg, err := loadConfig(ctx, cmd, input)
		if err != nil {
			return err
		}
		if err = applySolveFlags(cmd.Flags(), input, cfg, args); err != nil {
			return err
		}
		log := Logger(ctx)

		recs, err := readRecords(cmd, input, cfg.Input)
		if err != nil {
			return err
		}
		sym, err := cfg.Symmetry()
		if err != nil {
			return err
		}
		g, err := core.NewGraph(recs, core.WithSymmetry(sym))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"valves":  g.Order(),
			"tunnels": g.TunnelCount(),
			"policy":  sym,
		}).Debug("network loaded")

		opts := append(cfg.SolverOptions(), planner.WithLayerHook(func(t int) {
			log.WithField("layer", t).Trace("table layer done")
		}))
		started := time.Now()
		ans, err := planner.Solve(ctx, g, cfg.Request(), opts...)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"active":  ans.Active,
			"elapsed": time.Since(started),
		}).Debug("solved")

		out := cmd.OutOrStdout()
		printResult(out, ans.Single, cfg.Routes)
		printResult(out, ans.Pair, cfg.Routes)

		return nil
	}
}

// applySolveFlags lays explicitly set flags and the input argument over cfg.
func applySolveFlags(flags *pflag.FlagSet, input *Input, cfg *config.Config, args []string) error {
	if flags.Changed("start") {
		cfg.Start = input.start
	}
	if flags.Changed("single-budget") {
		cfg.SingleBudget = input.singleBudget
	}
	if flags.Changed("pair-budget") {
		cfg.PairBudget = input.pairBudget
	}
	if flags.Changed("workers") {
		cfg.Workers = input.workers
	}
	if flags.Changed("tunnels") {
		cfg.Tunnels = input.tunnels
	}
	if flags.Changed("routes") {
		cfg.Routes = input.routes
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg.Validate()
}

func readRecords(cmd *cobra.Command, input *Input, path string) ([]core.Record, error) {
	if path != "" && path != "-" {
		return scan.ParseFile(path)
	}
	f, err := scan.ParseFormat(input.format)
	if err != nil {
		return nil, err
	}

	return scan.Parse(cmd.InOrStdin(), f)
}

func printResult(w io.Writer, res planner.Result, routes bool) {
	fmt.Fprintln(w, res.Value)
	if !routes {
		return
	}
	for i, r := range res.Routes {
		stops := make([]string, len(r.Stops))
		for j, s := range r.Stops {
			stops[j] = fmt.Sprintf("%s@%d", s.Valve, s.Remaining)
		}
		fmt.Fprintf(w, "  actor %d (%d): %s\n", i+1, r.Released(), strings.Join(stops, " "))
	}
}
