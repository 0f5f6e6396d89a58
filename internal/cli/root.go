// Package cli implements the condex command line.
package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/condex/pattern"
)

// NewRootCommand builds the condex command tree around its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "condex",
		Short: "Capture text with condex patterns",
		Long: `condex scans text one character at a time against a table of condex
patterns, grouped by category, and prints the captured text of every match.

Patterns come from a config file (condex.yaml) under the "categories" key,
or from --pattern category=pattern flags.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (default is ./condex.yaml or $HOME/.config/condex/condex.yaml)")
	root.PersistentFlags().StringArrayP("pattern", "p", nil, "category=pattern, may be repeated")
	root.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newScanCommand(v), newCheckCommand(v))
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) (*Config, error) {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := Load(v, file)
	if err != nil {
		return nil, err
	}

	specs, err := cmd.Flags().GetStringArray("pattern")
	if err != nil {
		return nil, err
	}
	if err := cfg.AddPatterns(specs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScanCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Scan files, or stdin, and print one JSON result per input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			logger := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			scanner, err := NewScanner(cfg, logger)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, name := range args {
				src, err := readInput(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				res, err := scanner.Scan(name, src)
				if err != nil {
					return err
				}
				if err := enc.Encode(res); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("parallelism", 0, "maximum goroutines per fan-out (default GOMAXPROCS)")
	flags.Int("parallel-threshold", 0, "minimum number of patterns before fanning out (default 64)")
	flags.Bool("prefilter", true, "skip input no pattern can react to")
	flags.Bool("spans", false, "print byte offsets instead of text")
	_ = v.BindPFlag("parallelism", flags.Lookup("parallelism"))
	_ = v.BindPFlag("parallel_threshold", flags.Lookup("parallel-threshold"))
	_ = v.BindPFlag("prefilter", flags.Lookup("prefilter"))
	_ = v.BindPFlag("spans", flags.Lookup("spans"))

	return cmd
}

func newCheckCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configured patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tPATTERN\tCAPTURES\tTRIGGER")
			bad := 0
			for _, name := range cfg.CategoryNames() {
				for _, src := range cfg.Categories[name] {
					p, err := pattern.Compile(src)
					if err != nil {
						bad++
						fmt.Fprintf(tw, "%s\t%q\t-\t%v\n", name, src, err)
						continue
					}
					fmt.Fprintf(tw, "%s\t%q\t%d\t%v\n", name, src, p.Captures(), p.Trigger())
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if bad > 0 {
				return fmt.Errorf("%d malformed pattern(s)", bad)
			}
			return nil
		},
	}
}
