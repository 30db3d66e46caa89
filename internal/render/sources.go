// Package render writes an HTML index of every documented symbol's source links
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SourceIndex renders an HTML page listing each reflection with sources.
// Source references with a URL are rendered as links, others as plain text.
// includeInHead is parsed as HTML and added to the page's <head>.
func SourceIndex(project *model.Project, includeInHead []byte, w io.Writer) error {
	title := project.Name + " sources"
	list := element(atom.Ul, nil)
	for _, reflection := range project.Reflections() {
		item := reflectionItem(reflection)
		if item != nil {
			list.AppendChild(item)
		}
	}

	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
		element(atom.Title, nil, text(title)),
	)
	if len(includeInHead) > 0 {
		nodes, err := html.ParseFragment(bytes.NewReader(includeInHead), element(atom.Head, nil))
		if err != nil {
			return errors.Wrap(err, "Failed to parse HTML to include in head")
		}
		for _, node := range nodes {
			head.AppendChild(node)
		}
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, nil,
		head,
		element(atom.Body, nil,
			element(atom.H1, nil, text(title)),
			list,
		),
	))
	return html.Render(w, doc)
}

func reflectionItem(reflection *model.Reflection) *html.Node {
	var sources []*html.Node
	for _, source := range reflection.Sources {
		if source == nil || source.FileName == "" {
			continue
		}
		label := fmt.Sprintf("%s:%d", source.FileName, source.Line)
		var node *html.Node
		if source.URL != "" {
			node = element(atom.A, []html.Attribute{{Key: "href", Val: source.URL}}, text(label))
		} else {
			node = element(atom.Span, nil, text(label))
		}
		sources = append(sources, element(atom.Li, nil, node))
	}
	if len(sources) == 0 {
		return nil
	}
	return element(atom.Li, []html.Attribute{{Key: "class", Val: "kind-" + reflection.Kind.String()}},
		element(atom.Code, nil, text(reflection.Name)),
		element(atom.Ul, nil, sources...),
	)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
