package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/scan"
)

func newGenerateCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random connected valve network",
		Args:  cobra.NoArgs,
		RunE:  newGenerateAction(ctx, input),
	}
	cmd.Flags().IntVarP(&input.valves, "valves", "n", 12, "number of valves, start included")
	cmd.Flags().StringVar(&input.topology, "topology", "random", "random, cycle, path, star, complete or grid")
	cmd.Flags().Float64Var(&input.density, "density", 0.15, "extra tunnel probability for the random topology")
	cmd.Flags().IntVar(&input.cols, "cols", 4, "columns of the grid topology")
	cmd.Flags().Int64Var(&input.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&input.minFlow, "min-flow", 1, "smallest non-zero flow rate")
	cmd.Flags().IntVar(&input.maxFlow, "max-flow", 25, "largest flow rate")
	cmd.Flags().Float64Var(&input.dryRatio, "dry", 0.4, "probability that a valve has zero flow")
	cmd.Flags().StringVar(&input.outFormat, "format", "text", "output format: text or yaml")
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "output file (default standard output)")

	return cmd
}

func newGenerateAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, _, err := loadConfig(ctx, cmd, input)
		if err != nil {
			return err
		}
		format, err := scan.ParseFormat(input.outFormat)
		if err != nil {
			return err
		}
		if input.minFlow < 0 || input.maxFlow < input.minFlow {
			return fmt.Errorf("flow range [%d,%d] is invalid", input.minFlow, input.maxFlow)
		}
		if input.dryRatio < 0 || input.dryRatio > 1 {
			return fmt.Errorf("dry ratio %g is not in [0,1]", input.dryRatio)
		}
		con, err := topology(input)
		if err != nil {
			return err
		}

		recs, err := builder.BuildRecords([]builder.BuilderOption{
			builder.WithSeed(input.seed),
			builder.WithFlowFn(builder.SparseFlowFn(input.dryRatio, input.minFlow, input.maxFlow)),
		}, con)
		if err != nil {
			return err
		}
		Logger(ctx).WithFields(logrus.Fields{
			"valves":   len(recs),
			"topology": input.topology,
			"seed":     input.seed,
		}).Debug("network generated")

		out := cmd.OutOrStdout()
		if input.output != "" {
			f, err := os.Create(input.output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return scan.Write(out, recs, format)
	}
}

func topology(input *Input) (builder.Constructor, error) {
	n := input.valves
	switch input.topology {
	case "random":
		return builder.RandomSparse(n, input.density), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		if input.cols < 1 {
			return nil, fmt.Errorf("grid needs at least one column, got %d", input.cols)
		}
		return builder.Grid(n/input.cols, input.cols), nil
	}

	return nil, fmt.Errorf("unknown topology %q", input.topology)
}
