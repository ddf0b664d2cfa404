package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/urschrei/cocktails"
)

type sweepFlags struct {
	from     int
	to       int
	maxCalls int
	format   string
	data     string
}

func newSweepCmd() *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve a range of ingredient budgets in parallel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.from, "from", 2, "smallest ingredient budget")
	cmd.Flags().IntVar(&flags.to, "to", 12, "largest ingredient budget")
	cmd.Flags().IntVarP(&flags.maxCalls, "max-calls", "m", 8_000_000, "iteration cap per budget")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "output format: table, json or simple")
	cmd.Flags().StringVarP(&flags.data, "data", "d", "cocktails.csv", "catalog location: path, s3://bucket/key or minio://endpoint/bucket/key")

	return cmd
}

// sweepRow is one budget's outcome within a sweep.
type sweepRow struct {
	Budget          int     `json:"budget"`
	Cocktails       int     `json:"cocktails"`
	Ingredients     int     `json:"ingredients_used"`
	Iterations      int     `json:"iterations"`
	Exhausted       bool    `json:"exhausted"`
	ExecutionTimeMS float64 `json:"execution_time_ms"`
}

func runSweep(cmd *cobra.Command, flags sweepFlags) error {
	ctx := cmd.Context()

	if flags.from < 2 || flags.to < flags.from {
		return fmt.Errorf("invalid budget range [%d, %d]", flags.from, flags.to)
	}

	cat, err := loadCatalog(ctx, flags.data)
	if err != nil {
		return err
	}

	rows := make([]sweepRow, flags.to-flags.from+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for budget := flags.from; budget <= flags.to; budget++ {
		g.Go(func() error {
			start := time.Now()

			sol, err := cocktails.Solve(ctx, cat.Problem(),
				cocktails.WithBudget(budget),
				cocktails.WithMaxCalls(flags.maxCalls),
			)
			if err != nil {
				return fmt.Errorf("budget %d: %w", budget, err)
			}

			rows[budget-flags.from] = sweepRow{
				Budget:          budget,
				Cocktails:       sol.Score,
				Ingredients:     sol.Ingredients.Count(),
				Iterations:      sol.Iterations,
				Exhausted:       sol.Exhausted,
				ExecutionTimeMS: float64(time.Since(start).Microseconds()) / 1000.0,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out, err := formatSweep(rows, flags.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

func formatSweep(rows []sweepRow, format string) (string, error) {
	switch format {
	case "table":
		return formatSweepTable(rows), nil
	case "json":
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "simple":
		var b strings.Builder
		for i, row := range rows {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "budget=%d cocktails=%d ingredients=%d iterations=%d exhausted=%t time_ms=%.2f",
				row.Budget, row.Cocktails, row.Ingredients, row.Iterations, row.Exhausted, row.ExecutionTimeMS)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q (available: table, json, simple)", format)
	}
}

func formatSweepTable(rows []sweepRow) string {
	header := fmt.Sprintf("%-8s %-10s %-12s %-12s %-10s %s",
		"Budget", "Cocktails", "Ingredients", "Iterations", "Exhausted", "Time")

	lines := []string{titleStyle.Render(header)}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-8d %-10d %-12d %-12d %-10t %.2f ms",
			row.Budget, row.Cocktails, row.Ingredients, row.Iterations, row.Exhausted, row.ExecutionTimeMS))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
