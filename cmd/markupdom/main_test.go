package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/markupdom/domparser"
)

const sampleDoc = `<body>
  <!-- header -->
  <div class='greeting' id='hello'>Hello,   world!</div>
</body>`

func parseStdin(t *testing.T, src string, opts cliOptions) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := runParse(strings.NewReader(src), &out, &errOut, "-", opts)
	return out.String(), errOut.String(), err
}

func TestRunParseTree(t *testing.T) {
	out, _, err := parseStdin(t, sampleDoc, cliOptions{Format: "tree"})
	require.NoError(t, err)
	assert.Equal(t, "<body>\n  <div class=\"greeting\" id=\"hello\">\n    Hello, world!\n  </div>\n</body>\n", out)
}

func TestRunParseDefaultsToTree(t *testing.T) {
	out, _, err := parseStdin(t, "<p>x</p>", cliOptions{})
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  x\n</p>\n", out)
}

func TestRunParseJSON(t *testing.T) {
	out, _, err := parseStdin(t, sampleDoc, cliOptions{Format: "json"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "element", doc["kind"])
	assert.Equal(t, "body", doc["tag"])
	assert.Len(t, doc["children"], 2)
}

func TestRunParseYAML(t *testing.T) {
	out, _, err := parseStdin(t, "<p id='x'>hi</p>", cliOptions{Format: "yaml"})
	require.NoError(t, err)
	assert.Contains(t, out, "kind: element")
	assert.Contains(t, out, "tag: p")
	assert.Contains(t, out, "id: x")
}

func TestRunParseHTML(t *testing.T) {
	out, _, err := parseStdin(t, sampleDoc, cliOptions{Format: "html"})
	require.NoError(t, err)
	assert.Equal(t, `<body><!--header--><div class="greeting" id="hello">Hello, world!</div></body>`+"\n", out)
}

func TestRunParseNoRoot(t *testing.T) {
	_, _, err := parseStdin(t, "<a></a><b></b>", cliOptions{Format: "tree"})
	require.ErrorIs(t, err, errNoRoot)

	_, _, err = parseStdin(t, "<!-- c --><a></a>", cliOptions{Format: "tree"})
	require.ErrorIs(t, err, errNoRoot)
}

func TestRunParseIgnoreRootComments(t *testing.T) {
	out, _, err := parseStdin(t, "<!-- c --><a></a>", cliOptions{Format: "tree", IgnoreRootComments: true})
	require.NoError(t, err)
	assert.Equal(t, "<a>\n</a>\n", out)
}

func TestRunParseWrapsParseErrors(t *testing.T) {
	_, _, err := parseStdin(t, "<div></span>", cliOptions{Format: "tree"})
	require.Error(t, err)
	var tm *domparser.TagMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Contains(t, err.Error(), "parsing -: ")
}

func TestRunParseMaxDepth(t *testing.T) {
	_, _, err := parseStdin(t, "<a><b></b></a>", cliOptions{Format: "tree", MaxDepth: 1})
	var nd *domparser.NestingTooDeepError
	require.ErrorAs(t, err, &nd)
}

func TestRunParseRejectsInvalidOptions(t *testing.T) {
	_, _, err := parseStdin(t, "<p></p>", cliOptions{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format: invalid value xml (oneof tree json yaml html)")

	_, _, err = parseStdin(t, "<p></p>", cliOptions{Format: "tree", MaxDepth: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-depth: invalid value -1 (gte 0)")
}

func TestRunParseVerbose(t *testing.T) {
	_, logs, err := parseStdin(t, "<p>x</p>", cliOptions{Format: "tree", Verbose: true})
	require.NoError(t, err)
	assert.Contains(t, logs, "[markupdom] parsing - (8 bytes)")
	assert.Contains(t, logs, "[markupdom] root: element(p, 0 attrs, 1 children)")
}

func TestRunParseMinifiesRenderedMarkup(t *testing.T) {
	src := "<div class='a'>\n  <p title=\"\">a &amp; b</p>\n</div>"
	out, logs, err := parseStdin(t, src, cliOptions{Format: "html", Minify: true, Verbose: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="a"><p title`), out)
	assert.True(t, strings.HasSuffix(out, "</p></div>\n"), out)
	assert.Contains(t, logs, "[markupdom] minified")
}

func TestRunParseMinifyLeavesSourceAlone(t *testing.T) {
	src := `<p title="">a &amp; b</p>`

	plain, _, err := parseStdin(t, src, cliOptions{Format: "html"})
	require.NoError(t, err)
	minified, _, err := parseStdin(t, src, cliOptions{Format: "html", Minify: true})
	require.NoError(t, err)
	assert.NotEmpty(t, minified)

	// the tree comes from the raw source either way
	encoded, _, err := parseStdin(t, src, cliOptions{Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, encoded, `"value": ""`)
	assert.Contains(t, encoded, `"text": "a &amp; b"`)
	assert.Contains(t, plain, `title=""`)
}

func TestRunParseMinifyRequiresHTML(t *testing.T) {
	for _, format := range []string{"", "tree", "json", "yaml"} {
		_, _, err := parseStdin(t, `<p title="">x</p>`, cliOptions{Format: format, Minify: true})
		require.ErrorIs(t, err, errMinifyFormat, "format %q", format)
	}
}

func TestRunParseReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>from file</p>"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runParse(strings.NewReader(""), &out, &bytes.Buffer{}, path, cliOptions{Format: "tree"}))
	assert.Equal(t, "<p>\n  from file\n</p>\n", out.String())
}

func TestRunParseMissingFile(t *testing.T) {
	err := runParse(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.html"), cliOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file")
}

func TestRunLintClean(t *testing.T) {
	var out bytes.Buffer
	err := runLint(strings.NewReader(sampleDoc), &out, &bytes.Buffer{}, "-", cliOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunLintReportsFindings(t *testing.T) {
	src := "<div><p id='x'></p><p id='x'><br>no</br></p></div>"
	var out bytes.Buffer
	err := runLint(strings.NewReader(src), &out, &bytes.Buffer{}, "-", cliOptions{})

	var ve *domparser.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, out.String(), "[ERROR] duplicate_id")
	assert.Contains(t, out.String(), "[WARNING] void_element_content")
}

func TestParseCommandExecutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte("<p a='1'>cli</p>"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"parse", "--format", "json", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"tag": "p"`)
	assert.Contains(t, out.String(), `"text": "cli"`)
}
