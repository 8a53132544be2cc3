package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avdva/binfloat"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert [flags] BITS...",
		Short: "Convert bit patterns, like 0x7c07 or 0b0011110000000000",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := binfloat.ParseFormat(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			dst, err := binfloat.ParseFormat(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			for _, arg := range args {
				bits, err := strconv.ParseUint(arg, 0, src.TotalBits())
				if err != nil {
					return fmt.Errorf("bad %v bit pattern %q: %w", src, arg, err)
				}
				out, outcome := binfloat.Convert(bits, src, dst)
				root.logger.Debug().
					Stringer("from", src).
					Stringer("to", dst).
					Stringer("class", src.Classify(bits).Class).
					Uint64("in", bits).
					Uint64("out", out).
					Stringer("outcome", outcome).
					Msg("converted")
				fmt.Fprintf(cmd.OutOrStdout(), "%#0*x %s -> %#0*x %s %v\n",
					hexDigits(src), bits, src.BitString(bits),
					hexDigits(dst), out, dst.BitString(out), outcome)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "half", "Source format: half, single, double, bfloat16 or eXmY")
	cmd.Flags().StringVar(&to, "to", "single", "Target format: half, single, double, bfloat16 or eXmY")
	return cmd
}

func hexDigits(f binfloat.Format) int {
	return (f.TotalBits() + 3) / 4
}
