package domprint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/martinemde/markupdom/domparser"
)

var treeOpts = cmp.Options{
	cmpopts.IgnoreFields(domparser.Node{}, "Pos"),
	cmp.Comparer(func(a, b domparser.Attributes) bool { return a.Equal(b) }),
}

func TestToHTML(t *testing.T) {
	root := mustParse(t, `<div class='a' id="b"><p>hi</p><!-- note --></div>`)
	h := ToHTML(root)

	assert.Equal(t, html.ElementNode, h.Type)
	assert.Equal(t, atom.Div, h.DataAtom)
	assert.Equal(t, []html.Attribute{{Key: "class", Val: "a"}, {Key: "id", Val: "b"}}, h.Attr)

	require.NotNil(t, h.FirstChild)
	assert.Equal(t, "p", h.FirstChild.Data)
	assert.Equal(t, "hi", h.FirstChild.FirstChild.Data)
	assert.Equal(t, html.CommentNode, h.LastChild.Type)
	assert.Equal(t, "note", h.LastChild.Data)
}

func TestRender(t *testing.T) {
	got, err := RenderString(mustParse(t, `<div class='a' id="b"><p>hi</p><!-- note --></div>`))
	require.NoError(t, err)
	assert.Equal(t, `<div class="a" id="b"><p>hi</p><!--note--></div>`, got)
}

func TestRenderEscapesText(t *testing.T) {
	got, err := RenderString(mustParse(t, `<p title='say "hi"'>a & b</p>`))
	require.NoError(t, err)
	assert.Equal(t, `<p title="say &#34;hi&#34;">a &amp; b</p>`, got)
}

func TestRenderVoidElementWithChildren(t *testing.T) {
	_, err := RenderString(mustParse(t, "<br>text</br>"))
	require.Error(t, err)
}

func TestRenderNil(t *testing.T) {
	_, err := RenderString(nil)
	require.Error(t, err)
}

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"<div></div>",
		"<div class='outer'><div class='inner'>Content</div></div>",
		"<ul id='list'>\n  <li>one</li>\n  <li>two <b>bold</b></li>\n  <!-- tail -->\n</ul>",
		"<section a='1' b='2' c='3'><span>x</span>y<em>z</em></section>",
	}
	for _, src := range inputs {
		first := mustParse(t, src)
		rendered, err := RenderString(first)
		require.NoError(t, err, "input: %s", src)

		second := mustParse(t, rendered)
		if diff := cmp.Diff(first, second, treeOpts); diff != "" {
			t.Errorf("round trip of %q changed the tree (-first +second):\n%s", src, diff)
		}
	}
}
