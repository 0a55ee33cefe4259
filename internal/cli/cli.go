package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/indigo-web/headercount/catalog"
	"github.com/indigo-web/headercount/config"
	"github.com/indigo-web/headercount/counter"
	"github.com/indigo-web/headercount/errors"
	"github.com/indigo-web/headercount/internal/logging"
	"github.com/indigo-web/headercount/report"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const exampleUsage = `  # Count headers in a capture.
  headercount headers.txt

  # Treat "accept" and "Accept" as the same header.
  headercount --fold-case headers.txt

  # Emit the counts along with run stats as JSON.
  headercount -f json headers.txt

  # Take the settings from a file, overriding the format.
  headercount -c headercount.yaml -f yaml headers.txt
`

type options struct {
	configPath  string
	format      string
	foldCase    bool
	logLevel    string
	maxLineSize int
}

// NewCommand returns the root command. The report goes to stdout, the diagnostics and
// the usage go to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "headercount [flags] <input-file>",
		Short:   "Count occurrences of well-known HTTP header names in a text file",
		Example: exampleUsage,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w, got %d arguments", errors.ErrUsage, len(args))
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cfg, args[0], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errors.ErrUsage, err)
	})

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.format, "format", "f", defaults.Output.Format, "report format: text, json or yaml")
	flags.BoolVar(&opts.foldCase, "fold-case", defaults.Match.FoldCase, "compare header names case-insensitively")
	flags.StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "diagnostics level: debug, info, warn or error")
	flags.IntVar(&opts.maxLineSize, "max-line-size", defaults.Input.MaxLineSize, "longest acceptable input line, in bytes")

	return cmd
}

// config loads the config file, if any, and applies the flags explicitly set on top of it.
func (o options) config(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("fold-case") {
		cfg.Match.FoldCase = o.foldCase
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("max-line-size") {
		cfg.Input.MaxLineSize = o.maxLineSize
		cfg.Input.InitialBufferSize = min(cfg.Input.InitialBufferSize, o.maxLineSize)
	}

	return cfg, cfg.Validate()
}

func run(cfg *config.Config, path string, stdout, stderr io.Writer) error {
	logger, err := logging.New(cfg.Log.Level, stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrBadConfig, err)
	}
	defer func() { _ = logger.Sync() }()

	reporter, err := report.New(cfg.Output.Format)
	if err != nil {
		return err
	}

	cat := catalog.New()
	c := counter.New(cat, cfg, logger)
	if err = c.ProcessFile(path); err != nil {
		return err
	}

	// render completely before writing anything, so a failure never leaves a partial report
	var buff bytes.Buffer
	if err = reporter.Report(&buff, report.Collect(cat, c)); err != nil {
		return err
	}

	_, err = buff.WriteTo(stdout)
	return err
}

// Execute runs the command with the arguments (excluding the program name) and returns
// the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	if stderrors.Is(err, errors.ErrUsage) {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n%s", err, cmd.UsageString())
		return ExitUsage
	}

	logger, lerr := logging.New(config.Default().Log.Level, stderr)
	if lerr != nil {
		logger = zap.NewNop()
	}

	logger.Error("cannot count headers", zap.Error(err))
	_ = logger.Sync()

	return ExitFailure
}
