// Command primesum prints the sum of the squares of all primes up to N.
//
// Usage:
//
//	primesum [--config file.toml] [--log-level level] [--threshold k] N
//	primesum profile N1 N2 [N3 ...]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexshd/primesquares"
	"github.com/alexshd/primesquares/bigint"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "primesum: %v\n", err)
		os.Exit(1)
	}
}

// options carries flag values and the state built from them in setup.
type options struct {
	configPath string
	logLevel   string
	threshold  uint64
	noColor    bool

	settings settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "primesum N",
		Short: "Sum the squares of all primes up to N",
		Long: `Computes Σ p² over every prime p ≤ N exactly, in roughly N^(2/3) time.
N is a non-negative decimal integer that fits in 64 bits.`,
		Args:              boundArgs(1, 1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
		RunE:              o.runSum,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "TOML config file")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error, off")
	flags.Uint64Var(&o.threshold, "threshold", 0, "sweep bound multiplier, y = threshold·√N")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newProfileCmd(o))
	return root
}

// boundArgs accepts between lo and hi decimal bounds (hi < 0: unbounded).
func boundArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || (hi >= 0 && len(args) > hi) {
			return fmt.Errorf("usage: %s", cmd.UseLine())
		}
		for _, arg := range args {
			if _, err := bigint.ParseNatural(arg); err != nil {
				return fmt.Errorf("usage: %s: %w", cmd.UseLine(), err)
			}
		}
		return nil
	}
}

// setup resolves settings from defaults, the config file and flags, in
// increasing priority, and builds the logger.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	s := defaultSettings()
	if o.configPath != "" {
		loaded, err := loadSettings(o.configPath)
		if err != nil {
			return err
		}
		s = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		lvl, err := parseLevel(o.logLevel)
		if err != nil {
			return err
		}
		s.LogLevel = lvl
	}
	if flags.Changed("threshold") {
		s.Threshold = o.threshold
	}
	if flags.Changed("no-color") {
		s.NoColor = o.noColor
	}

	o.settings = s
	o.logger = newLogger(cmd.ErrOrStderr(), s)
	return nil
}

func (o *options) config() primesquares.Config {
	cfg := primesquares.DefaultConfig()
	cfg.Threshold = o.settings.Threshold
	cfg.Logger = o.logger
	return cfg
}

func (o *options) runSum(cmd *cobra.Command, args []string) error {
	n, err := bigint.ParseNatural(args[0])
	if err != nil {
		return err
	}

	res, err := primesquares.Compute(n, o.config())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sum of squares of primes ≤ %d is %s\n", n, res.Sum.String())
	o.logger.Info("computed",
		"n", n,
		"elapsed", res.Stats.Total(),
		"queries", res.Stats.Queries,
		"sweep", res.Stats.SweepLength,
	)
	return nil
}
