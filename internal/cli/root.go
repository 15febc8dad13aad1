// Package cli provides the Cobra command structure for pep257.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gopep257/internal/logging"
	"github.com/yaklabco/gopep257/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pep257 command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug, verbose bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "pep257",
		Short: "Check Rust doc comments against PEP 257 conventions",
		Long: `pep257 checks the documentation comments of Rust source files against a
fixed set of docstring conventions adapted from Python's PEP 257: missing
docs on public items, blank-line layout, summary punctuation, imperative
mood, and rustdoc link hygiene.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !config.ColorMode(color).IsValid() {
				return fmt.Errorf("%w: invalid --color %q; must be one of: auto, always, never", ErrInvalidUsage, color)
			}

			logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.LevelFor(debug, verbose))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable informational logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
