package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/markupdom/domprint"
)

var errMinifyFormat = errors.New("--minify requires --format html")

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse markup and print the node tree",
	Long:  "Parse a markup file (or stdin with -) and print its node tree as an outline, JSON, YAML, or re-rendered markup.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := loadOptions()
		opts.Format = viper.GetString("format")
		opts.Minify = viper.GetBool("minify")
		return runParse(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
	},
}

func init() {
	parseCmd.Flags().StringP("format", "f", "tree", "Output format: tree, json, yaml, or html")
	parseCmd.Flags().Bool("minify", false, "Minify the rendered markup (html format only)")

	_ = viper.BindPFlag("format", parseCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("minify", parseCmd.Flags().Lookup("minify"))

	rootCmd.AddCommand(parseCmd)
}

func runParse(stdin io.Reader, out, errOut io.Writer, path string, opts cliOptions) error {
	if err := opts.check(); err != nil {
		return err
	}
	if opts.Minify && opts.Format != "html" {
		return errMinifyFormat
	}

	root, err := loadDocument(stdin, errOut, path, opts)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "json":
		return domprint.JSON(out, root)
	case "yaml":
		return domprint.YAML(out, root)
	case "html":
		if opts.Minify {
			return renderMinified(out, errOut, root, opts)
		}
		if err := domprint.Render(out, root); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	default:
		return domprint.Pretty(out, root)
	}
}
