package ht

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Kind is the child item discriminator.
type Kind uint8

const (
	KindNode Kind = iota // nested element
	KindText             // plain text, escaped at render
	KindRaw              // pre-rendered markup, emitted verbatim
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Child is one renderable item in an element's flattened child sequence.
type Child struct {
	Kind Kind
	Text string   // for KindText and KindRaw
	Node *Element // for KindNode
}

// Raw marks a string as already-valid HTML that must bypass escaping.
// Callers are solely responsible for the safety of content wrapped this
// way; user-provided input inside a Raw is an XSS waiting to happen.
type Raw string

// String returns the wrapped markup unchanged.
func (r Raw) String() string { return string(r) }

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attrs is a bulk attribute argument. Keys are applied in sorted order so
// the resulting node renders deterministically.
type Attrs map[string]any

// Element is one immutable HTML element: a tag name, attributes in
// insertion order, and a flattened child sequence. A nil *Element renders
// as nothing. The zero tag marks a transparent group that renders only
// its children.
type Element struct {
	tag      string
	attrs    []Attr // insertion order, unique keys
	children []Child

	// err is the first construction error, if any. A node carrying an
	// error renders nothing; Render and Stream surface it.
	err error

	// rendered is the memoized output of the first successful Render.
	rendered atomic.Pointer[string]
}

// New builds an element from a tag name and a mixed argument bag, failing
// immediately on an invalid tag name, an invalid attribute name, or an
// event handler attribute. Attr, []Attr, and Attrs arguments become
// attributes; everything else is child content (see the package docs for
// the normalization rules).
func New(tag string, args ...any) (*Element, error) {
	e := newElement(tag, args)
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

// El is New for composable call sites: instead of a second return value,
// a failed construction yields a node that carries the error. Rendering
// such a node, or any ancestor containing it, returns the error and
// produces no output. Err exposes the carried error directly.
//
// Every per-tag constructor in the el package forwards here.
func El(tag string, args ...any) *Element {
	return newElement(tag, args)
}

// Group bundles children without a wrapper tag. It renders transparently
// and can be placed anywhere an element can.
func Group(args ...any) *Element {
	e := &Element{}
	e.applyArgs(args)
	return e
}

// Text returns a node rendering s as escaped text.
func Text(s string) *Element {
	return &Element{children: []Child{{Kind: KindText, Text: s}}}
}

// Textf returns a node rendering the formatted string as escaped text.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

func newElement(tag string, args []any) *Element {
	e := &Element{tag: tag}
	if !validTag(tag) {
		e.err = &Error{Kind: InvalidTag, Subject: tag}
		return e
	}
	e.applyArgs(args)
	return e
}

// applyArgs partitions a mixed argument bag: attribute-shaped values
// merge into the attribute sequence, everything else is normalized into
// child content in argument order.
func (e *Element) applyArgs(args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			e.setAttr(v.Key, v.Value)
		case []Attr:
			for _, a := range v {
				e.setAttr(a.Key, a.Value)
			}
		case Attrs:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				e.setAttr(k, v[k])
			}
		default:
			e.children = appendChildren(e.children, arg)
		}
	}
}

// setAttr records one attribute, validating its name. A later entry for
// an existing key overrides the value in place, keeping the original
// position. Empty keys are skipped so conditional helpers can return a
// zero Attr.
func (e *Element) setAttr(key string, value any) {
	if key == "" {
		return
	}
	if err := validAttrName(key); err != nil && e.err == nil {
		e.err = err
	}
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
}

// WithChildren returns a new element with the given arguments appended,
// interpreted exactly as in New. The receiver is untouched; unchanged
// children are shared structurally.
func (e *Element) WithChildren(args ...any) *Element {
	n := e.clone()
	n.applyArgs(args)
	return n
}

// WithAttributes returns a new element with attrs shallow-merged over the
// receiver's attributes: existing keys keep their position with the new
// value, new keys append in sorted order. Merged names are re-validated.
// The receiver is untouched.
func (e *Element) WithAttributes(attrs Attrs) *Element {
	n := e.clone()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.setAttr(k, attrs[k])
	}
	return n
}

// clone copies the node identity without the render cache, so a derived
// node renders fresh while the receiver's cache stays intact.
func (e *Element) clone() *Element {
	n := &Element{tag: e.tag, err: e.err}
	if len(e.attrs) > 0 {
		n.attrs = append([]Attr(nil), e.attrs...)
	}
	if len(e.children) > 0 {
		n.children = append([]Child(nil), e.children...)
	}
	return n
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.tag
}

// Err returns the construction error carried by this node, if any.
// It does not search the subtree; a poisoned descendant surfaces its
// error through Render or Stream instead.
func (e *Element) Err() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Attributes returns a copy of the attribute sequence in insertion order.
func (e *Element) Attributes() []Attr {
	if e == nil || len(e.attrs) == 0 {
		return nil
	}
	return append([]Attr(nil), e.attrs...)
}

// Children returns a copy of the flattened child sequence.
func (e *Element) Children() []Child {
	if e == nil || len(e.children) == 0 {
		return nil
	}
	return append([]Child(nil), e.children...)
}
