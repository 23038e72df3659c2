// Package cli wires the casseroll commands: the interactive table and the
// one-shot roll, pool and catalog reports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/config"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Quiet       bool
	Format      string // "json" | "text"
	CatalogPath string
	Seed        int64
	LogFile     string

	// EnvFiles are the .env files read before flags apply. Nil means ".env".
	EnvFiles []string

	cfg config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the casseroll CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casseroll",
		Short: "CasseROLL - the casserole dice roller",
		Long: `Roll random casseroles from five categories (starch, protein, vegetables,
binder, topper) flavored by a cuisine profile, or go full chaos.

Run "casseroll play" for the interactive table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose/debug logging")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "disable all logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "ingredient catalog file, YAML or JSON (default: built-in)")
	cmd.PersistentFlags().Int64Var(&opts.Seed, "seed", 0, "seed for reproducible rolls")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", config.DefaultLogFile, `file to write logs to (use "stderr" to log to the console)`)

	// Add subcommands
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewRollCommand(opts))
	cmd.AddCommand(NewPoolCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))

	return cmd
}

// resolve merges .env and environment settings with the flags the user
// actually passed.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.EnvFiles...)
	if err != nil {
		return WrapExitError(ExitUsage, "configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = o.CatalogPath
	}
	if flags.Changed("seed") {
		cfg.Seed = o.Seed
		cfg.HasSeed = true
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.LogFile
	}
	if o.Verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if o.Quiet {
		cfg.LogLevel = logger.LevelOff
	}

	o.cfg = cfg
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
