package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdva/binfloat"
	"github.com/avdva/binfloat/roundtrip"
)

var errSelftest = errors.New("selftest failed")

func newSelftestCmd(root *rootOptions) *cobra.Command {
	var sweep bool
	var workers int
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in conversion checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			results, err := roundtrip.Run(ctx, roundtrip.DefaultCases(), workers)
			if err != nil {
				return err
			}
			report := roundtrip.Summarize(results)
			root.logger.Info().Int("total", report.Total).Int("failed", report.Failed).Msg("default cases")

			if sweep {
				for _, pair := range []struct{ narrow, wide binfloat.Format }{
					{binfloat.Half, binfloat.Single},
					{binfloat.BFloat16, binfloat.Single},
				} {
					swept, err := roundtrip.Sweep(ctx, pair.narrow, pair.wide, workers)
					if err != nil {
						return err
					}
					root.logger.Info().
						Stringer("narrow", pair.narrow).
						Stringer("wide", pair.wide).
						Int("total", swept.Total).
						Int("failed", swept.Failed).
						Msg("sweep")
					report.Merge(swept)
				}
			}

			for _, f := range report.Failures {
				fmt.Fprintln(cmd.OutOrStdout(), f.Describe())
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			if !report.Passed() {
				return errSelftest
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sweep, "sweep", false, "Also check every half and bfloat16 pattern")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of workers, 0 for GOMAXPROCS")
	return cmd
}
