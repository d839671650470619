// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/jstate"
	"github.com/creachadair/jstate/cursor"
	"github.com/creachadair/jstate/jpath"
	"github.com/creachadair/jstate/jwcc"
	"github.com/creachadair/jstate/query"
	"github.com/spf13/cobra"
)

type options struct {
	indent   bool
	path     string
	jpath    string
	jwcc     bool
	quiet    bool
	maxDepth int
}

func newCLI() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "jcheck [flags] [file ...]",
		Short: "Check and print JSON values",
		Long: `Parse each named file (or standard input) as a single JSON value.
Invalid inputs are reported with the offset and line:column of the error.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(os.Getenv)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-depth") {
				opts.maxDepth = cfg.MaxDepth
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Debug)
			return run(cmd, log, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.indent, "indent", "i", false, "Pretty-print output values")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Print only the value at this dotted path (e.g. list.0.name)")
	cmd.Flags().StringVar(&opts.jpath, "jpath", "", "Print only the values selected by this JSONPath expression (e.g. $.list[*].name)")
	cmd.MarkFlagsMutuallyExclusive("path", "jpath")
	cmd.Flags().BoolVar(&opts.jwcc, "jwcc", false, "Accept comments and trailing commas (JWCC)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Check inputs without printing values")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum nesting depth of arrays and objects (0 for the default)")
	return cmd
}

func run(cmd *cobra.Command, log *slog.Logger, opts options, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var p jstate.Parser
	p.SetMaxDepth(opts.maxDepth)

	var q query.Query
	if opts.jpath != "" {
		var err error
		q, err = jpath.Compile(opts.jpath)
		if err != nil {
			return fmt.Errorf("jpath %q: %w", opts.jpath, err)
		}
		log.Debug("compiled query", "jpath", opts.jpath)
	}

	var nerr int
	for _, name := range args {
		out, err := check(cmd, &p, q, opts, name)
		if err != nil {
			nerr++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)

			var serr *jstate.SyntaxError
			if errors.As(err, &serr) {
				log.Debug("syntax error", "input", name, "kind", serr.Kind, "offset", serr.Offset)
			}
			continue
		}
		log.Debug("valid input", "input", name)
		if !opts.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
	}
	if nerr != 0 {
		return fmt.Errorf("%d of %d inputs failed", nerr, len(args))
	}
	return nil
}

// check parses the named input and returns its rendering.
// If q != nil, it is evaluated against the value and its result is rendered.
func check(cmd *cobra.Command, p *jstate.Parser, q query.Query, opts options, name string) (string, error) {
	data, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return "", err
	}

	var v jstate.Value
	if opts.jwcc {
		v, err = jwcc.ParseWith(p, data)
	} else {
		v, err = p.ParseBytes(data)
	}
	if err != nil {
		return "", err
	}

	if opts.path != "" {
		c := cursor.New(v).Down(parsePath(opts.path)...)
		if err := c.Err(); err != nil {
			return "", fmt.Errorf("path %q: %w", opts.path, err)
		}
		v = c.Value()
	} else if q != nil {
		v, err = query.Eval(v, q)
		if err != nil {
			return "", fmt.Errorf("jpath %q: %w", opts.jpath, err)
		}
	} else if opts.jwcc && opts.indent {
		// Reformat the source, keeping its comments.
		out, err := jwcc.Format(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(out), "\n"), nil
	}

	if opts.indent {
		return jwcc.Formatter{Strict: !opts.jwcc}.String(v), nil
	}
	return v.JSON(), nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// parsePath splits a dotted path into cursor path elements. Elements that
// are decimal integers select array offsets; all others are object keys.
func parsePath(s string) []any {
	var path []any
	for _, elt := range strings.Split(s, ".") {
		if n, err := strconv.Atoi(elt); err == nil {
			path = append(path, n)
		} else {
			path = append(path, elt)
		}
	}
	return path
}
