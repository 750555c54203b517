package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notefold/notedown/internal/logging"
	"github.com/notefold/notedown/internal/ui/term"
	"github.com/notefold/notedown/pkg/config"
	"github.com/notefold/notedown/pkg/imagecache"
	"github.com/notefold/notedown/pkg/parse"
	"github.com/notefold/notedown/pkg/render"
)

func newRenderCommand(flags *rootFlags) *cobra.Command {
	var width int
	var assetsDir string
	var noDetect bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a memo as styled terminal output",
		Long: `Render parses a memo body and prints it as styled terminal output.
Reads from stdin when the file argument is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if width > 0 {
				cfg.Width = width
			}
			if assetsDir != "" {
				cfg.AssetsDir = assetsDir
			}
			if noDetect {
				cfg.DetectLanguage = false
			}
			if flags.color != "auto" {
				cfg.Color = flags.color
			}

			text, path, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return runRender(cmd, cfg, text, path)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "layout width in cells (0 = terminal width)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "attachments directory for image:// references")
	cmd.Flags().BoolVar(&noDetect, "no-detect-lang", false, "disable language detection for untagged code blocks")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, text, path string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	doc := parse.Parse(text)
	logger.Debug("parsed memo", logging.FieldPath, path, logging.FieldBlocks, len(doc.Blocks))

	emitter := render.NewEmitter(render.Options{
		MaxHeadingLevel: cfg.MaxHeadingLevel,
		DetectLanguage:  cfg.DetectLanguage,
	})
	ir := emitter.Emit(doc)

	var resolver *imagecache.Resolver
	if cfg.AssetsDir != "" {
		resolver = imagecache.NewResolver(imagecache.NewDirStore(cfg.AssetsDir),
			imagecache.WithLogger(logger))

		// Kick off every fetch, then wait so the one-shot render sees
		// settled states instead of placeholders.
		for _, ref := range ir.ImageRefs() {
			resolver.Lookup(ctx, ref)
		}
		if err := resolver.Wait(ctx); err != nil {
			return &ExitError{Code: ExitInternalError, Err: err}
		}
	}

	out := cmd.OutOrStdout()
	renderer := term.New(term.Options{
		Width:          term.Width(cfg.Width, out, term.DefaultWidth),
		ColorEnabled:   term.IsColorEnabled(cfg.Color, out),
		Resolver:       resolver,
		CheckedGlyph:   cfg.CheckedGlyph,
		UncheckedGlyph: cfg.UncheckedGlyph,
	})

	fmt.Fprint(out, renderer.Render(ctx, ir))
	return nil
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(explicitPath string) (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	cfg, err := config.Load(explicitPath, workDir)
	if err != nil {
		return nil, &ExitError{Code: ExitConfigError, Err: err}
	}
	return cfg, nil
}

// readInput returns the memo body from the named file, or from stdin when
// the argument is "-" or omitted.
func readInput(stdin io.Reader, args []string) (text, path string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, readErr := io.ReadAll(stdin)
		if readErr != nil {
			return "", "", &ExitError{Code: ExitIOError, Err: fmt.Errorf("read stdin: %w", readErr)}
		}
		return string(data), "<stdin>", nil
	}

	path = filepath.Clean(args[0])
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return "", "", &ExitError{Code: ExitIOError, Err: fmt.Errorf("read memo: %w", readErr)}
	}
	return string(data), path, nil
}
