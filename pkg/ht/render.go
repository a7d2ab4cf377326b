package ht

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Render serializes the element to HTML. The first successful render is
// memoized on the node, so subsequent calls return the identical string
// without recomputation; memoization is sound because the node and its
// subtree are immutable. A failed render caches nothing and returns no
// partial output.
//
// Concurrent first renders are safe: the cache is published with a
// compare-and-swap and the first stored value wins, so every caller sees
// the same string.
func (e *Element) Render() (string, error) {
	if e == nil {
		return "", nil
	}
	if e.err != nil {
		return "", e.err
	}
	if s := e.rendered.Load(); s != nil {
		return *s, nil
	}

	var b strings.Builder
	if err := e.render(&b); err != nil {
		return "", err
	}
	out := b.String()
	e.rendered.CompareAndSwap(nil, &out)
	return *e.rendered.Load(), nil
}

// render walks the tree depth-first into b. Child node caches are left
// untouched: each render is a structural traversal, which keeps eager
// and streaming output identical.
func (e *Element) render(b *strings.Builder) error {
	if e.err != nil {
		return e.err
	}
	if e.tag == "" {
		// Transparent group: children only.
		return renderItems(b, e.children)
	}

	b.WriteByte('<')
	b.WriteString(e.tag)
	attrs, err := e.attrBlock()
	if err != nil {
		return err
	}
	b.WriteString(attrs)
	b.WriteByte('>')

	// Void elements carry no children and no closing tag, regardless of
	// what was supplied at construction.
	if IsVoidElement(e.tag) {
		return nil
	}

	if err := renderItems(b, e.children); err != nil {
		return err
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
	return nil
}

// renderItems writes a child sequence: text escapes, raw passes through,
// nodes recurse.
func renderItems(b *strings.Builder, items []Child) error {
	for _, c := range items {
		switch c.Kind {
		case KindText:
			b.WriteString(Escape(c.Text))
		case KindRaw:
			b.WriteString(c.Text)
		case KindNode:
			if c.Node == nil {
				continue
			}
			if err := c.Node.render(b); err != nil {
				return err
			}
		}
	}
	return nil
}

// attrBlock renders the attribute sequence in insertion order. Each
// emitted attribute is preceded by one space; an empty set contributes
// nothing.
func (e *Element) attrBlock() (string, error) {
	if len(e.attrs) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, a := range e.attrs {
		frag, err := renderAttr(a.Key, a.Value)
		if err != nil {
			return "", err
		}
		if frag == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(frag)
	}
	return b.String(), nil
}

// renderAttr produces one `name="value"` fragment, a bare name for
// truthy boolean attributes, or the empty string for values the contract
// omits. URL attributes are checked against the scheme blocklist here,
// the one render-time validation.
func renderAttr(key string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	if v, ok := value.(bool); ok && !v {
		return "", nil
	}

	if isBooleanAttr(key) {
		if truthy(value) {
			return key, nil
		}
		return "", nil
	}

	switch strings.ToLower(key) {
	case "style":
		if m, ok := value.(map[string]string); ok {
			s := styleString(m)
			if s == "" {
				return "", nil
			}
			return key + `="` + Escape(s) + `"`, nil
		}
	case "class":
		if list, ok := value.([]string); ok {
			s := classString(list)
			if s == "" {
				return "", nil
			}
			return key + `="` + Escape(s) + `"`, nil
		}
	}

	s := attrString(value)
	if isURLAttr(key) {
		if err := checkURL(key, s); err != nil {
			return "", err
		}
	}
	return key + `="` + Escape(s) + `"`, nil
}

// truthy reports whether a boolean attribute's value switches it on:
// true, a non-empty string, a non-zero number, or any other non-nil
// value.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return value != nil
	}
}

// attrString converts an attribute value to a string.
func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return strings.Join(v, " ")
	default:
		return fmt.Sprint(v)
	}
}

// styleString converts a style map into a ;-joined declaration string in
// sorted property order. Entries with an invalid property name or an
// empty value are dropped.
func styleString(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if !validStyleProperty(k) || m[k] == "" {
			continue
		}
		parts = append(parts, k+":"+m[k])
	}
	return strings.Join(parts, ";")
}

// classString joins class names with single spaces, dropping empties.
func classString(list []string) string {
	parts := make([]string, 0, len(list))
	for _, c := range list {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// dangerousSchemes is the URL blocklist for href, src, action and
// formaction values, matched as a case-insensitive prefix after
// trimming surrounding whitespace.
var dangerousSchemes = []string{"javascript:", "data:text/html", "vbscript:"}

func checkURL(attr, value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(v, scheme) {
			return &Error{Kind: DangerousURLScheme, Attr: attr, Subject: value}
		}
	}
	return nil
}

// Document renders node prefixed with the HTML5 doctype and a newline.
func Document(node *Element) (string, error) {
	s, err := node.Render()
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n" + s, nil
}

// Fragment renders mixed children with no wrapper tag, applying the same
// normalization and escaping rules as child content. Nested slices
// flatten; nil and false vanish.
func Fragment(args ...any) (string, error) {
	var items []Child
	for _, arg := range args {
		items = appendChildren(items, arg)
	}
	var b strings.Builder
	if err := renderItems(&b, items); err != nil {
		return "", err
	}
	return b.String(), nil
}
