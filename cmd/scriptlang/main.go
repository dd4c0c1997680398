// scriptlang - scriptlang front end tool
//
// Tokenizes and parses scriptlang source files, dumps token streams and
// syntax trees, and reports syntax errors with source excerpts.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/scriptlang"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errReported means diagnostics were already written to stderr.
var errReported = errors.New("errors reported")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errReported) {
			os.Exit(1)
		}
		errorExit(err)
	}
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "scriptlang: %v\n", err)
	os.Exit(1)
}

// options holds state shared by all subcommands.
type options struct {
	configPath string
	verbose    bool
	color      bool

	config *scriptlang.Config
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "scriptlang",
		Short: "scriptlang lexer and parser",
		Long: `scriptlang tokenizes and parses scriptlang programs.

Examples:
  scriptlang lex main.sl                  # list tokens
  scriptlang lex --match '^[a-z]+$' -     # tokens from stdin matching a regex
  scriptlang parse --format yaml main.sl  # dump the syntax tree as YAML
  scriptlang check *.sl                   # report syntax errors`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.color, "color", false, "colored diagnostics")

	root.AddCommand(
		newLexCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

// setup initializes logging and loads the configuration.
func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	o.config = &scriptlang.Config{}
	if o.configPath != "" {
		config, err := scriptlang.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.config = config
		o.log.Debug("config loaded", "path", o.configPath, "format", config.Format)
	}
	if cmd.Flags().Changed("color") {
		o.config.Color = o.color
	}
	return nil
}

// source is one input file.
type source struct {
	name string
	text string
}

// readSource reads the named file, or stdin for "-".
func (o *options) readSource(cmd *cobra.Command, name string) (source, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		name = "<stdin>"
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return source{}, fmt.Errorf("cannot read %s: %w", name, err)
	}
	o.log.Debug("source read", "file", name, "bytes", len(data))
	return source{name: name, text: string(data)}, nil
}

// configFor returns the config to use for src. A filename from the
// config file takes precedence over the path on the command line.
func (o *options) configFor(src source) *scriptlang.Config {
	c := *o.config
	if c.Filename == "" {
		c.Filename = src.name
	}
	return &c
}

// report writes a diagnostic for err to stderr. Syntax errors are
// reported as errReported so main exits without printing them twice.
func (o *options) report(cmd *cobra.Command, err error, src source) error {
	var se *scriptlang.SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), scriptlang.Diagnose(err, src.text, o.configFor(src)))
	return errReported
}
