package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notefold/notedown/pkg/parse"
	"github.com/notefold/notedown/pkg/render"
)

func newInspectCommand(flags *rootFlags) *cobra.Command {
	var emitIR bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Dump the parsed document as JSON",
		Long: `Inspect parses a memo body and prints the block structure as JSON,
for debugging the engine. With --ir it prints the render intermediate form
instead, with every text unit resolved into literal and inline segments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			text, _, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			doc := parse.Parse(text)

			var payload any = doc
			if emitIR {
				emitter := render.NewEmitter(render.Options{
					MaxHeadingLevel: cfg.MaxHeadingLevel,
					DetectLanguage:  cfg.DetectLanguage,
				})
				payload = emitter.Emit(doc)
			}

			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return &ExitError{Code: ExitInternalError, Err: fmt.Errorf("encode document: %w", err)}
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&emitIR, "ir", false, "dump the render intermediate form")

	return cmd
}
