// Package cli provides the Cobra command structure for notedown.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/notefold/notedown/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root notedown command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "notedown",
		Short: "Markdown engine for Notefold memos",
		Long: `notedown is the markdown engine behind the Notefold note-taking app.

It parses a memo body into a structured document (headings, lists, tables,
checklists, quotes, fenced code, inline styling, links, and image
references) and renders it either as styled terminal output or as a JSON
dump of the parsed structure.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if flags.debug {
				level = "debug"
				logging.SetLevel("debug")
			}

			// Per-invocation logger on the command context, writing to the
			// command's error stream so engine collaborators follow
			// redirection in tests and pipelines.
			logger := logging.New(level)
			logger.SetOutput(cmd.ErrOrStderr())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
