package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/urschrei/cocktails"
	"github.com/urschrei/cocktails/catalog"
	"github.com/urschrei/cocktails/solver"
)

type solveFlags struct {
	ingredients int
	maxCalls    int
	format      string
	data        string
	bounds      []string
	verbose     bool
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the optimal ingredient set for a single budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.ingredients, "ingredients", "i", 12, "number of ingredients to shop for")
	cmd.Flags().IntVarP(&flags.maxCalls, "max-calls", "m", 8_000_000, "iteration cap for the search")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "output format: table, json or simple")
	cmd.Flags().StringVarP(&flags.data, "data", "d", "cocktails.csv", "catalog location: path, s3://bucket/key or minio://endpoint/bucket/key")
	cmd.Flags().StringSliceVar(&flags.bounds, "bounds", nil, "pruning bounds to use: total, singleton, concentration (default all)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log search progress to stderr")

	return cmd
}

func runSolve(cmd *cobra.Command, flags solveFlags) error {
	ctx := cmd.Context()

	cat, err := loadCatalog(ctx, flags.data)
	if err != nil {
		return err
	}

	opts := []cocktails.Option{
		cocktails.WithBudget(flags.ingredients),
		cocktails.WithMaxCalls(flags.maxCalls),
	}
	if flags.verbose {
		opts = append(opts, cocktails.WithLogger(cocktails.NewTextLogger(slog.LevelDebug)))
	}
	if flags.bounds != nil {
		bounds, err := parseBounds(flags.bounds)
		if err != nil {
			return err
		}
		opts = append(opts, cocktails.WithBounds(bounds...))
	}

	start := time.Now()

	sol, err := cocktails.Solve(ctx, cat.Problem(), opts...)
	if err != nil {
		return err
	}

	res := newResult(cat, sol, flags.ingredients, time.Since(start))

	out, err := formatResult(res, flags.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

// parseBounds maps bound names from the command line onto the solver's
// pruning bounds. An empty name list disables pruning entirely.
func parseBounds(names []string) ([]solver.Bound, error) {
	available := map[string]solver.Bound{}
	for _, b := range solver.DefaultBounds() {
		available[b.Name()] = b
	}

	var bounds []solver.Bound
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "none" {
			continue
		}
		b, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unknown bound %q (available: total, singleton, concentration)", name)
		}
		bounds = append(bounds, b)
	}

	return bounds, nil
}

// result is the presentation-layer view of a solve run.
type result struct {
	TargetIngredients int      `json:"target_ingredients"`
	SearchIterations  int      `json:"search_iterations"`
	ExecutionTimeMS   float64  `json:"execution_time_ms"`
	Exhausted         bool     `json:"exhausted"`
	OptimalCocktails  int      `json:"optimal_cocktails"`
	IngredientsUsed   int      `json:"ingredients_used"`
	Ingredients       []string `json:"ingredients"`
	Cocktails         []string `json:"cocktails"`
}

func newResult(cat *catalog.Catalog, sol *solver.Solution, budget int, elapsed time.Duration) result {
	return result{
		TargetIngredients: budget,
		SearchIterations:  sol.Iterations,
		ExecutionTimeMS:   float64(elapsed.Microseconds()) / 1000.0,
		Exhausted:         sol.Exhausted,
		OptimalCocktails:  sol.Score,
		IngredientsUsed:   sol.Ingredients.Count(),
		Ingredients:       cat.IngredientNames(sol),
		Cocktails:         cat.CocktailNames(sol),
	}
}
