package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tableau/simplex"
)

type solveFlags struct {
	objective        string
	constraints      []string
	example          string
	minimize         bool
	maxIterations    int
	allowNegativeRHS bool
	strictBasis      bool
	asJSON           bool
	float            bool
	decimals         int
}

var errNoProblem = errors.New("simplex: give --objective and --constraint, or --example")

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem and print its step history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.objective, "objective", "o", "", `objective, e.g. "5x1 + 2x2"`)
	fl.StringArrayVarP(&f.constraints, "constraint", "c", nil, `constraint, e.g. "10x1 + 12x2 <= 60" (repeatable)`)
	fl.StringVar(&f.example, "example", "", "solve a bundled example (see 'simplex examples')")
	fl.BoolVar(&f.minimize, "min", false, "minimize instead of maximize")
	fl.IntVar(&f.maxIterations, "max-iterations", simplex.DefaultMaxIterations, "pivot limit")
	fl.BoolVar(&f.allowNegativeRHS, "allow-negative-rhs", false, "accept negative right-hand sides without checking feasibility")
	fl.BoolVar(&f.strictBasis, "strict-basis", false, "fail on ambiguous basic columns instead of reading them as 0")
	fl.BoolVar(&f.asJSON, "json", false, "print the history and solution as JSON")
	fl.BoolVar(&f.float, "float", false, "also print the final tableau as floats")
	fl.IntVar(&f.decimals, "decimals", -1, "round non-integers to this many decimals (-1 prints exact fractions)")
	cmd.MarkFlagsMutuallyExclusive("example", "objective")

	return cmd
}

func (f solveFlags) options() ([]simplex.Option, error) {
	if f.maxIterations <= 0 {
		return nil, fmt.Errorf("--max-iterations must be positive, got %d", f.maxIterations)
	}
	opts := []simplex.Option{simplex.WithMaxIterations(f.maxIterations)}
	if f.minimize {
		opts = append(opts, simplex.WithDirection(simplex.Minimize))
	}
	if f.allowNegativeRHS {
		opts = append(opts, simplex.WithAllowNegativeRHS())
	}
	if f.strictBasis {
		opts = append(opts, simplex.WithStrictBasis())
	}
	return opts, nil
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	opts, err := f.options()
	if err != nil {
		return err
	}

	var res *simplex.Result
	switch {
	case f.example != "":
		e, ok := simplex.LookupExample(f.example)
		if !ok {
			return fmt.Errorf("unknown example %q", f.example)
		}
		slog.Debug("solving example", "name", e.Name)
		res, err = e.Solve(opts...)
	case f.objective != "" && len(f.constraints) > 0:
		res, err = simplex.SolveStrings(f.objective, f.constraints, opts...)
	default:
		return errNoProblem
	}
	if err != nil {
		return err
	}
	slog.Info("solved", "pivots", res.Iterations, "records", res.History.Len())

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Iterations int               `json:"iterations"`
			Solution   *simplex.Solution `json:"solution"`
			History    *simplex.History  `json:"history"`
		}{res.Iterations, res.Solution, res.History})
	}

	if err := res.History.Walk(newTextRenderer(out, f.decimals)); err != nil {
		return err
	}
	if f.float {
		final, _ := res.History.Final()
		return writeFloat(out, final)
	}
	return nil
}
