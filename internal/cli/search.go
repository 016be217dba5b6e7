package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/report"
)

// ErrVerifyFailed is returned when --verify finds a result that disagrees
// with breadth-first search.
var ErrVerifyFailed = errors.New("verification failed")

type searchKind string

const (
	searchPath     searchKind = "path"
	searchShortest searchKind = "shortest"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [FILE|-]",
		Short: "Fewest steps from S to E",
		Long:  "Find the fewest steps from the start marker S to the goal E.\n\n" + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearches(cmd, args, searchPath)
		},
	}
}

func newShortestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortest [FILE|-]",
		Short: "Fewest steps to E from any lowest cell",
		Long:  "Find the fewest steps to the goal E from S or any cell of the lowest rank.\n\n" + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearches(cmd, args, searchShortest)
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [FILE|-]",
		Short: "Run both the path and the shortest search",
		Long:  "Report the single-source and the multi-source answer for one grid.\n\n" + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearches(cmd, args, searchPath, searchShortest)
		},
	}
}

// searchSettings is the resolved flag/config/env view of a search run.
type searchSettings struct {
	format   report.Format
	policy   gridgraph.Policy
	strategy astar.Strategy
	workers  int
	budget   int
	verify   bool
}

func loadSearchSettings() (searchSettings, error) {
	format, err := report.ParseFormat(viper.GetString(formatKey))
	if err != nil {
		return searchSettings{}, err
	}
	strategy, err := astar.ParseStrategy(viper.GetString(strategyKey))
	if err != nil {
		return searchSettings{}, err
	}
	climb := viper.GetInt(maxClimbKey)
	if climb < 0 {
		return searchSettings{}, fmt.Errorf("%s cannot be negative (%d)", maxClimbFlagName, climb)
	}

	return searchSettings{
		format:   format,
		policy:   gridgraph.ClimbPolicy{MaxClimb: climb},
		strategy: strategy,
		workers:  viper.GetInt(workersKey),
		budget:   viper.GetInt(maxExpansionsKey),
		verify:   viper.GetBool(verifyKey),
	}, nil
}

func (s searchSettings) options(cmd *cobra.Command) []astar.Option {
	return []astar.Option{
		astar.WithContext(cmd.Context()),
		astar.WithPolicy(s.policy),
		astar.WithStrategy(s.strategy),
		astar.WithWorkers(s.workers),
		astar.WithMaxExpansions(s.budget),
	}
}

// readHeightMap parses the grid named by args, or standard input.
func readHeightMap(cmd *cobra.Command, args []string) (*gridgraph.HeightMap, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	hm, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return hm, nil
}

func runSearches(cmd *cobra.Command, args []string, kinds ...searchKind) error {
	settings, err := loadSearchSettings()
	if err != nil {
		return err
	}
	hm, err := readHeightMap(cmd, args)
	if err != nil {
		return err
	}
	slog.Debug("Grid loaded", "width", hm.Width, "height", hm.Height, "start", hm.Start(), "end", hm.End())

	summary := report.Summary{Width: hm.Width, Height: hm.Height, Strategy: settings.strategy.String()}
	opts := settings.options(cmd)
	began := time.Now()
	for _, kind := range kinds {
		entry, err := runSearch(hm, kind, opts)
		if err != nil {
			return err
		}
		summary.Entries = append(summary.Entries, entry)
	}
	summary.ElapsedMs = float64(time.Since(began).Microseconds()) / 1000.0

	var verifyErr error
	if settings.verify {
		verifyErr = verify(cmd, hm, settings.policy, summary.Entries)
	}

	if err := report.Render(cmd.OutOrStdout(), summary, settings.format); err != nil {
		return err
	}

	return verifyErr
}

// runSearch returns an entry for ErrNoPath and an error for everything else.
func runSearch(hm *gridgraph.HeightMap, kind searchKind, opts []astar.Option) (report.Entry, error) {
	var (
		res astar.Result
		err error
	)
	start := time.Now()
	switch kind {
	case searchPath:
		res, err = astar.FindPath(hm, hm.Start(), hm.End(), opts...)
	case searchShortest:
		res, err = astar.FindShortestPath(hm, hm.Candidates(), hm.End(), opts...)
	}
	slog.Info("Search finished",
		"search", string(kind),
		"found", err == nil,
		"steps", res.Steps(),
		"expanded", res.Expanded,
		"elapsed", time.Since(start),
	)
	if err != nil && !errors.Is(err, astar.ErrNoPath) {
		return report.Entry{}, fmt.Errorf("%s search: %w", kind, err)
	}

	return report.NewEntry(string(kind), hm.End(), res, err), nil
}

// verify runs one breadth-first search from the goal over reversed steps and
// checks every entry against it: the depth of a cell is its step count to E.
func verify(cmd *cobra.Command, hm *gridgraph.HeightMap, policy gridgraph.Policy, entries []report.Entry) error {
	oracle, err := bfs.BFS(hm, hm.End(),
		bfs.WithContext(cmd.Context()),
		bfs.WithPolicy(gridgraph.Reversed(policy)),
	)
	if err != nil {
		return err
	}

	var failed []string
	for i := range entries {
		e := &entries[i]
		var sources []gridgraph.Position
		switch searchKind(e.Search) {
		case searchPath:
			sources = []gridgraph.Position{hm.Start()}
		case searchShortest:
			sources = hm.Candidates()
		}

		want := -1
		for _, p := range sources {
			if d, ok := oracle.Depth[p]; ok && (want < 0 || d < want) {
				want = d
			}
		}
		ok := e.Found == (want >= 0) && (!e.Found || e.Steps == want)
		e.Verified = &ok
		if !ok {
			failed = append(failed, fmt.Sprintf("%s: got %d steps, breadth-first search found %d", e.Search, e.Steps, want))
			slog.Error("Verification mismatch", "search", e.Search, "steps", e.Steps, "want", want)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, failed)
	}

	return nil
}
