package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/primesquares"
	"github.com/alexshd/primesquares/bigint"
)

func newProfileCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile N1 N2 [N...]",
		Short: "Time the computation at several bounds and fit its growth exponent",
		Long: `Runs the computation once per bound and fits t(N) ≈ C·N^K to the
timings. The method is expected to land near K ≈ 2/3 for large N.`,
		Args: boundArgs(2, -1),
		RunE: o.runProfile,
	}
}

func (o *options) runProfile(cmd *cobra.Command, args []string) error {
	levels := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := bigint.ParseNatural(arg)
		if err != nil {
			return err
		}
		levels = append(levels, n)
	}

	samples, err := primesquares.Profile(levels, o.config())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range samples {
		fmt.Fprintf(out, "N=%-20d %-14v queries=%-10d sweep=%d\n",
			s.N, s.Duration, s.Stats.Queries, s.Stats.SweepLength)
	}

	exp, err := primesquares.FitExponent(samples)
	if err != nil {
		o.logger.Warn("no growth fit", "err", err)
		return nil
	}
	fmt.Fprintf(out, "t(N) ≈ %.3g · N^%.3f (R² = %.4f)\n", exp.C, exp.K, exp.RSquared)
	return nil
}
