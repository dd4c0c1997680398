package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/coregx/coregex"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/scriptlang"
)

func newLexCmd(opts *options) *cobra.Command {
	var (
		format string
		match  string
	)

	cmd := &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the tokens of a file",
		Long: `Prints one token per line as line:column, kind and source text.
FILE may be - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var re *coregex.Regexp
			if match != "" {
				var err error
				if re, err = coregex.Compile(match); err != nil {
					return fmt.Errorf("invalid --match pattern: %w", err)
				}
			}

			src, err := opts.readSource(cmd, args[0])
			if err != nil {
				return err
			}
			toks, err := scriptlang.Tokenize(src.text, opts.configFor(src))
			if err != nil {
				return opts.report(cmd, err, src)
			}
			opts.log.Debug("tokenized", "file", src.name, "tokens", len(toks))

			if re != nil {
				kept := toks[:0]
				for _, tok := range toks {
					if re.MatchString(tok.Text) {
						kept = append(kept, tok)
					}
				}
				toks = kept
			}
			return writeTokens(cmd.OutOrStdout(), toks, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, yaml or json")
	cmd.Flags().StringVar(&match, "match", "", "only print tokens whose text matches this regular expression")
	return cmd
}

// tokenRecord is the serialized form of a token.
type tokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
	Span   [2]int `json:"span" yaml:"span,flow"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func writeTokens(w io.Writer, toks []scriptlang.Token, format string) error {
	if format == "text" {
		for _, tok := range toks {
			if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Text); err != nil {
				return err
			}
		}
		return nil
	}

	records := make([]tokenRecord, len(toks))
	for i, tok := range toks {
		records[i] = tokenRecord{
			Kind:   tok.Kind,
			Text:   tok.Text,
			Value:  tok.Value,
			Span:   [2]int{tok.Span.Start, tok.Span.End},
			Line:   tok.Line,
			Column: tok.Column,
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

func newParseCmd(opts *options) *cobra.Command {
	var (
		format string
		stats  bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Long: `Parses FILE and prints its syntax tree. The default format is taken
from the config file, or sexpr. FILE may be - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.config.Format
			if format != "" {
				var err error
				if f, err = scriptlang.ParseFormat(format); err != nil {
					return err
				}
			}

			src, err := opts.readSource(cmd, args[0])
			if err != nil {
				return err
			}
			prog, err := scriptlang.Parse(src.text, opts.configFor(src))
			if err != nil {
				return opts.report(cmd, err, src)
			}
			opts.log.Debug("parsed", "file", src.name, "statements", prog.Len())

			w := cmd.OutOrStdout()
			if err := prog.Dump(w, f); err != nil {
				return err
			}
			if stats {
				return writeStats(w, prog.Stats())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: sexpr, yaml or json")
	cmd.Flags().BoolVar(&stats, "stats", false, "print node counts after the tree")
	return cmd
}

func writeStats(w io.Writer, s scriptlang.Stats) error {
	rows := []struct {
		name string
		n    int
	}{
		{"statements", s.Statements},
		{"expressions", s.Expressions},
		{"literals", s.Literals},
		{"identifiers", s.Identifiers},
		{"calls", s.Calls},
		{"functions", s.Functions},
		{"loops", s.Loops},
		{"branches", s.Branches},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-12s %d\n", r.name+":", r.n); err != nil {
			return err
		}
	}
	return nil
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report syntax errors",
		Long: `Parses every FILE and prints a diagnostic for each one that fails.
Exits with status 1 if any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				src, err := opts.readSource(cmd, name)
				if err != nil {
					return err
				}
				if _, err := scriptlang.Parse(src.text, opts.configFor(src)); err != nil {
					if err := opts.report(cmd, err, src); !errors.Is(err, errReported) {
						return err
					}
					failed++
					continue
				}
				opts.log.Debug("ok", "file", src.name)
			}
			if failed > 0 {
				opts.log.Debug("check failed", "files", len(args), "failed", failed)
				return errReported
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "scriptlang %s (library %s, commit %s, built %s)\n",
				version, scriptlang.Version, commit, date)
			return err
		},
	}
}
