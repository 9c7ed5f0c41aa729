package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eykd/hpvdraw/internal/config"
	"github.com/eykd/hpvdraw/internal/logging"
)

// errNoFactory is returned by commands built without a SessionFactory.
var errNoFactory = errors.New("command is not wired to a draw service")

// settings holds the draw flags shared by every command.
type settings struct {
	configPath string
	extract    int
	pick       int
	sim        int
	input      string
	outDir     string
	seed       string
	timezone   string
}

// bindSettings registers the draw flags as persistent flags on cmd.
func bindSettings(cmd *cobra.Command) *settings {
	s := &settings{}
	f := cmd.PersistentFlags()
	f.IntVarP(&s.extract, "extract", "e", config.DefaultExtract, "How many numbers to sample from the pool")
	f.IntVarP(&s.pick, "pick", "p", config.DefaultPick, "How many eligible numbers to keep")
	f.IntVarP(&s.sim, "sim", "s", config.DefaultSim, "How many numbers to simulate when no input file is given")
	f.StringVarP(&s.input, "input", "i", "", "Read the pool from a newline-delimited file instead of simulating")
	f.StringVar(&s.outDir, "out-dir", config.DefaultOutDir, "Directory for ids.txt and last_ids.txt")
	f.StringVar(&s.seed, "seed", "", "Random seed as pcg:<hex>:<hex> (random when empty)")
	f.StringVar(&s.timezone, "timezone", "", "Time zone used to sample birth dates (local when empty)")
	f.StringVar(&s.configPath, "config", "", "YAML file with draw settings")
	return s
}

// resolve layers explicitly set flags over the config file over defaults.
func (s *settings) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		cfg, err = config.Load(s.configPath)
		if err != nil {
			return config.Config{}, &UsageError{Err: err}
		}
	}

	flags := cmd.Flags()
	if flags.Changed("extract") {
		cfg.Extract = s.extract
	}
	if flags.Changed("pick") {
		cfg.Pick = s.pick
	}
	if flags.Changed("sim") {
		cfg.Sim = s.sim
	}
	if flags.Changed("input") {
		cfg.Input = s.input
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = s.outDir
	}
	if flags.Changed("seed") {
		cfg.Seed = s.seed
	}
	if flags.Changed("timezone") {
		cfg.Timezone = s.timezone
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, &UsageError{Err: err}
	}
	return cfg, nil
}

// openSession builds a Session for cfg with a logger on the command's stderr.
func openSession(cmd *cobra.Command, cfg config.Config, factory SessionFactory) (*Session, error) {
	if factory == nil {
		return nil, errNoFactory
	}
	return factory(cfg, newLogger(cmd))
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), GetVerbose())
}
