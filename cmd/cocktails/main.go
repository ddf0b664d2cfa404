// Command cocktails finds the ingredient shopping list that maximizes the
// number of makeable cocktails.
//
// The catalog is headerless CSV (cocktail name, then its ingredients) and
// may live on the local filesystem, in S3 (s3://bucket/key) or behind a
// MinIO endpoint (minio://endpoint/bucket/key), optionally compressed
// (.zst, .lz4).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cocktails",
		Short:         "Cocktail ingredients optimizer",
		Long:          "Find the set of n ingredients that allows you to make the highest number of different cocktails.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Running the binary without a subcommand behaves like `cocktails solve`.
	solve := newSolveCmd()
	cmd.Flags().AddFlagSet(solve.Flags())
	cmd.RunE = solve.RunE

	cmd.AddCommand(solve)
	cmd.AddCommand(newSweepCmd())
	return cmd
}
