package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/martinemde/markupdom/domparser"
	"github.com/martinemde/markupdom/domprint"
)

// errNoRoot reports input that parsed but did not reduce to one top-level node.
var errNoRoot = errors.New("no single root node")

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns the HTML minifier applied to rendered output. Nothing
// reads its output back, so it never runs ahead of the parser.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepComments:        true,
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
		})
	})
	return minifier
}

// readSource reads path, or stdin when path is "-".
func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// loadDocument reads and parses the input at path.
func loadDocument(stdin io.Reader, logw io.Writer, path string, opts cliOptions) (*domparser.Node, error) {
	src, err := readSource(stdin, path)
	if err != nil {
		return nil, err
	}

	opts.logf(logw, "parsing %s (%d bytes)", path, len(src))
	root, err := domparser.ParseWithOptions(src, opts.parserOptions())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if root == nil {
		return nil, errNoRoot
	}
	opts.logf(logw, "root: %s", root)
	return root, nil
}

// renderMinified writes root as markup run through the minifier.
func renderMinified(out, logw io.Writer, root *domparser.Node, opts cliOptions) error {
	rendered, err := domprint.RenderString(root)
	if err != nil {
		return err
	}
	minified, err := getMinifier().String("text/html", rendered)
	if err != nil {
		return fmt.Errorf("minifying output: %w", err)
	}
	opts.logf(logw, "minified %d bytes to %d", len(rendered), len(minified))
	_, err = fmt.Fprintln(out, minified)
	return err
}
