package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/more/internal/config"
	"github.com/rshade/more/internal/pager"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Options holds the command-line flags of the root command.
type Options struct {
	Lines   int
	Prompt  string
	Summary bool
	Debug   bool
}

// NewRootCmd creates the root Cobra command for the more CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "more [file]",
		Short: "Page text one screenful at a time",
		Long: `Displays a file, or standard input when no file is given, in chunks of
lines. After each chunk that is followed by more text it prompts "More?" and
continues only when the answer is "y" or "Y".`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMore(cmd, args, opts, lookupEnv)
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", config.DefaultPageSize,
		"number of lines per page (overrides "+config.EnvPageSize+")")
	cmd.Flags().StringVar(&opts.Prompt, "prompt", config.DefaultPrompt,
		"text shown between pages (overrides "+config.EnvPrompt+")")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false,
		"print how many lines were displayed to stderr when done")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	return cmd
}

const rootCmdExample = `  # Page a file 15 lines at a time
  more notes.txt

  # Page the output of another command 40 lines at a time
  ls -l /usr/bin | more -n 40

  # Read standard input explicitly
  more - < notes.txt`

// runMore resolves configuration and the text source, then runs the pager.
func runMore(cmd *cobra.Command, args []string, opts Options, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.NewWithEnv(lookupEnv)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	applyFlags(cmd, cfg, opts)
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	setupLogging(cmd, cfg.Logging)
	ctx := cmd.Context()

	src, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	logger.Debug().Ctx(ctx).
		Str("source", src.Name).
		Int("bytes", len(src.Text)).
		Int("page_size", cfg.PageSize).
		Msg("input read")

	responses, closeResponses := promptInput(cmd.InOrStdin(), src.FromStdin)
	defer closeResponses()

	out := cmd.OutOrStdout()
	p, err := pager.New(
		pager.WithOutput(out),
		pager.WithInput(responses),
		pager.WithPageSize(cfg.PageSize),
		pager.WithPrompt(renderPrompt(cfg.Prompt, isTerminal(out))),
	)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	res, err := p.Page(ctx, src.Text)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("paging %s: %w", src.Name, err)}
	}
	logger.Debug().Ctx(ctx).
		Stringer("reason", res.Reason).
		Int("shown", res.LinesShown).
		Int("total", res.TotalLines).
		Int("prompts", res.Prompts).
		Msg("paging finished")

	if opts.Summary {
		printSummary(cmd.ErrOrStderr(), res)
	}
	return nil
}

// applyFlags overrides environment-derived settings with flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts Options) {
	if cmd.Flags().Changed("lines") {
		cfg.PageSize = opts.Lines
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = opts.Prompt
	}
	if opts.Debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = config.FormatConsole
	}
}

// printSummary writes a one-line count of displayed lines.
func printSummary(w io.Writer, res pager.Result) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "Displayed %d of %d lines\n", res.LinesShown, res.TotalLines)
}
