package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/builder"
)

// ErrUnknownKind is returned for a --kind that names no generator.
var ErrUnknownKind = errors.New("unknown grid kind")

const (
	rowsFlagName   = "rows"
	colsFlagName   = "cols"
	kindFlagName   = "kind"
	seedFlagName   = "seed"
	spreadFlagName = "spread"
	rankFlagName   = "rank"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated grid",
		Long: `Print a generated grid in the input format, ready to pipe into path,
shortest or solve. S is placed top-left and E bottom-right.

Kinds:
  flat    every cell at --rank
  slope   ranks rise toward E by at most one per step
  random  uniform ranks in [0, --spread), reproducible with --seed`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	flags := cmd.Flags()
	flags.Int(rowsFlagName, 5, "number of rows")
	flags.Int(colsFlagName, 8, "number of columns")
	flags.String(kindFlagName, "random", "grid kind: flat, slope or random")
	flags.Int64(seedFlagName, 1, "random seed")
	flags.Int(spreadFlagName, 26, "distinct ranks for the random kind (1-26)")
	flags.Int(rankFlagName, 0, "rank for the flat kind (0-25)")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	rows, _ := flags.GetInt(rowsFlagName)
	cols, _ := flags.GetInt(colsFlagName)
	kind, _ := flags.GetString(kindFlagName)
	seed, _ := flags.GetInt64(seedFlagName)
	spread, _ := flags.GetInt(spreadFlagName)
	rank, _ := flags.GetInt(rankFlagName)

	con, ok := builder.ByName(kind, rank)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if spread < 1 || spread > 26 {
		return fmt.Errorf("--%s must be in [1,26], got %d", spreadFlagName, spread)
	}

	began := time.Now()
	hm, err := builder.Build(rows, cols, con,
		builder.WithSeed(seed),
		builder.WithSpread(spread),
	)
	if err != nil {
		return err
	}
	slog.Debug("grid generated",
		"kind", kind, "rows", rows, "cols", cols, "seed", seed,
		"elapsed", time.Since(began))

	_, err = fmt.Fprint(cmd.OutOrStdout(), hm.String())

	return err
}
