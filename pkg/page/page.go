// Package page assembles complete HTML documents from the element
// catalog. A Page describes the document head declaratively; the body
// is any element tree. Rendering produces a full document with the
// HTML5 doctype.
package page

import (
	"io"

	"github.com/weft-dev/weft/el"
	"github.com/weft-dev/weft/pkg/ht"
)

// Meta is one meta tag. Set Name for standard metadata or Property for
// Open Graph style metadata; Content is required either way.
type Meta struct {
	Name     string
	Property string
	Content  string
}

// Link is one link tag in the document head.
type Link struct {
	Rel  string
	Href string
	Type string
}

// Script is one script tag in the document head. Src references an
// external script; Inline carries script source emitted verbatim.
type Script struct {
	Src    string
	Inline string
	Defer  bool
	Async  bool
}

// Page describes a complete HTML document. Empty fields contribute
// nothing to the output; a nil Body yields an empty body element.
type Page struct {
	Lang    string
	Title   string
	Meta    []Meta
	Links   []Link
	Scripts []Script
	Styles  []string
	Body    *ht.Element
}

// node builds the document tree. The charset meta is always the first
// head entry so it lands inside the first 1024 bytes.
func (p Page) node() *ht.Element {
	head := []any{
		el.Meta(el.Charset("utf-8")),
	}
	if p.Title != "" {
		head = append(head, el.Title(p.Title))
	}
	for _, m := range p.Meta {
		switch {
		case m.Name != "":
			head = append(head, el.Meta(el.Name(m.Name), el.Content(m.Content)))
		case m.Property != "":
			head = append(head, el.Meta(el.Property(m.Property), el.Content(m.Content)))
		}
	}
	for _, l := range p.Links {
		args := []any{el.Rel(l.Rel), el.Href(l.Href)}
		if l.Type != "" {
			args = append(args, el.Type(l.Type))
		}
		head = append(head, el.Link(args...))
	}
	for _, css := range p.Styles {
		if css != "" {
			// Style sheets are emitted verbatim; HTML escaping would
			// mangle child selectors.
			head = append(head, el.Style(ht.Raw(css)))
		}
	}
	for _, s := range p.Scripts {
		var args []any
		if s.Src != "" {
			args = append(args, el.Src(s.Src))
		}
		if s.Defer {
			args = append(args, el.Defer_())
		}
		if s.Async {
			args = append(args, el.Async())
		}
		if s.Src == "" && s.Inline != "" {
			args = append(args, ht.Raw(s.Inline))
		}
		if len(args) == 0 {
			continue
		}
		head = append(head, el.Script(args...))
	}

	var root []any
	if p.Lang != "" {
		root = append(root, el.Lang(p.Lang))
	}
	root = append(root, el.Head(head...), el.Body(p.Body))
	return el.Html(root...)
}

// Render returns the page as a complete HTML document.
func (p Page) Render() (string, error) {
	return ht.Document(p.node())
}

// WriteTo renders the page and writes it to w.
func (p Page) WriteTo(w io.Writer) (int64, error) {
	html, err := p.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, html)
	return int64(n), err
}
