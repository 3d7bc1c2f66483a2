package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/martinemde/markupdom/domparser"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file|->",
	Short: "Parse markup and report lint diagnostics",
	Long:  "Parse a markup file (or stdin with -) and run the built-in lint rules. Exits non-zero on error-severity findings.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], loadOptions())
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(stdin io.Reader, out, errOut io.Writer, path string, opts cliOptions) error {
	if err := opts.check(); err != nil {
		return err
	}

	root, err := loadDocument(stdin, errOut, path, opts)
	if err != nil {
		return err
	}

	diags, err := domparser.ValidateOrError(root)
	for _, d := range diags {
		fmt.Fprintln(out, d)
	}
	opts.logf(errOut, "%d diagnostic(s)", len(diags))
	return err
}
