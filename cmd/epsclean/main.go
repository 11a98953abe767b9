// Package main provides the CLI entry point for epsclean, a post-processor
// for fragmented Encapsulated PostScript output.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epsclean"
	"github.com/katalvlaran/epsclean/xlog"
)

func main() {
	var (
		removeBoxes  bool
		groupSoft    bool
		combineAreas bool
		outFile      string
	)

	logCfg := xlog.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "epsclean [flags] <file.eps | ->",
		Short: "Reconstruct fragmented EPS path output",
		Long: `epsclean rewrites an EPS file whose vector output is pathologically
fragmented - thousands of one-segment paths and one-polygon fills, each its
own gsave/grestore block - into a file with far fewer blocks, continuous
polylines, and optionally merged fill regions, while leaving everything it
does not understand byte-for-byte untouched.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))

			opts := []epsclean.Option{
				epsclean.WithRemoveBoxes(removeBoxes),
				epsclean.WithGroupSoft(groupSoft),
				epsclean.WithCombineAreas(combineAreas),
			}
			if outFile != "" {
				opts = append(opts, epsclean.WithOutFile(outFile))
			}

			return run(args[0], opts)
		},
	}

	rootCmd.Flags().BoolVar(&removeBoxes, "remove-boxes", false, "discard blocks containing a rectangle (re) operator")
	rootCmd.Flags().BoolVar(&groupSoft, "group-soft", false, "flush the block registry on every prefix change, preserving Z-order")
	rootCmd.Flags().BoolVar(&combineAreas, "combine-areas", false, "merge adjacent fill polygons that share an edge")
	rootCmd.Flags().StringVar(&outFile, "out", "", "destination path (default: overwrite the input in place)")
	logCfg.RegisterFlags(rootCmd.Flags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts []epsclean.Option) error {
	if path == "-" {
		return epsclean.Clean(os.Stdin, os.Stdout, opts...)
	}

	return epsclean.CleanFile(path, opts...)
}
