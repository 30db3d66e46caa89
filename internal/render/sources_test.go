package render

import (
	"bytes"
	"testing"

	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func findLinks(node *html.Node) []string {
	var links []string
	if node.Type == html.ElementNode && node.Data == "a" {
		for _, attr := range node.Attr {
			if attr.Key == "href" {
				links = append(links, attr.Val)
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		links = append(links, findLinks(child)...)
	}
	return links
}

func TestSourceIndex(t *testing.T) {
	t.Parallel()
	project := &model.Project{Reflection: model.Reflection{
		Name: "my-project",
		Kind: model.KindProject,
		Children: []*model.Reflection{
			{
				Name: "Foo",
				Kind: model.KindClass,
				Sources: []*model.SourceReference{
					{FileName: "src/foo.ts", Line: 42, URL: "https://example.org/src/foo.ts#L-42&x=<y>"},
					{FileName: "src/foo.d.ts", Line: 1},
					{FileName: "", Line: 7, URL: "ignored"},
				},
			},
			{
				Name: "noSources",
				Kind: model.KindVariable,
			},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, SourceIndex(project, []byte(`<script src="analytics.js"></script>`), &buf))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>my-project sources</title>")
	assert.Contains(t, out, `<script src="analytics.js"></script></head>`)
	assert.Contains(t, out, `<li class="kind-Class"><code>Foo</code>`)
	assert.Contains(t, out, "<span>src/foo.d.ts:1</span>")
	assert.NotContains(t, out, "noSources")
	assert.NotContains(t, out, "ignored")

	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org/src/foo.ts#L-42&x=<y>"}, findLinks(doc))
}

func TestSourceIndexEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, SourceIndex(&model.Project{}, nil, &buf))
	assert.Contains(t, buf.String(), "<ul></ul>")
}
