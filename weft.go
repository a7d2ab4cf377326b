// Package weft provides the public API for the weft HTML construction
// library.
//
// This is the recommended import for most applications:
//
//	import "github.com/weft-dev/weft"
//
// Usage:
//
//	html, err := weft.Render(func(b el.Builder) any {
//	    return b.Div(b.H1("Hello"), b.P("World"))
//	})
//
// Elements are immutable values built once and rendered as often as
// needed; text content is escaped automatically and validation happens
// at construction time. See pkg/ht for the core model and package el
// for the per-tag constructors and attribute helpers.
package weft

import (
	"fmt"

	"github.com/weft-dev/weft/el"
	"github.com/weft-dev/weft/pkg/ht"
)

// =============================================================================
// Core types (pkg/ht exposed at the root)
// =============================================================================

// Element is an immutable HTML element node.
type Element = ht.Element

// Child is one renderable item in an element's child sequence.
type Child = ht.Child

// Kind discriminates child items.
type Kind = ht.Kind

// Attr is a single attribute.
type Attr = ht.Attr

// Attrs is a bulk attribute argument applied in sorted key order.
type Attrs = ht.Attrs

// Raw marks a string as already-valid HTML that bypasses escaping.
type Raw = ht.Raw

// Builder is the tag factory passed to one-argument Render callbacks.
type Builder = el.Builder

// Error is the structured validation error carried by failed nodes.
type Error = ht.Error

// ErrorKind classifies validation errors.
type ErrorKind = ht.ErrorKind

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidTag            = ht.ErrInvalidTag
	ErrInvalidAttributeName  = ht.ErrInvalidAttributeName
	ErrForbiddenEventHandler = ht.ErrForbiddenEventHandler
	ErrDangerousURLScheme    = ht.ErrDangerousURLScheme
)

// =============================================================================
// Construction (re-export from pkg/ht)
// =============================================================================

// New builds an element, failing immediately on invalid input.
func New(tag string, args ...any) (*Element, error) {
	return ht.New(tag, args...)
}

// El builds an element; a failed construction yields a node carrying
// the error instead of a second return value.
func El(tag string, args ...any) *Element {
	return ht.El(tag, args...)
}

// Text creates an escaped text node.
func Text(content string) *Element {
	return ht.Text(content)
}

// Textf creates a formatted escaped text node.
func Textf(format string, args ...any) *Element {
	return ht.Textf(format, args...)
}

// Group bundles children without a wrapper tag.
func Group(args ...any) *Element {
	return ht.Group(args...)
}

// =============================================================================
// Rendering
// =============================================================================

// Render runs a view callback and finalizes its result into HTML.
//
// The callback must have one of four signatures:
//
//	func() any
//	func(el.Builder) any
//	func() *ht.Element
//	func(el.Builder) *ht.Element
//
// One-argument forms receive a Builder whose methods mirror the el
// package. The returned value is interpreted as follows: an *Element is
// rendered, a Raw is unwrapped verbatim, nil produces an empty string,
// and any other value is stringified without escaping. Any other
// callback shape is an error.
func Render(callback any) (string, error) {
	var out any
	switch fn := callback.(type) {
	case func() any:
		out = fn()
	case func(el.Builder) any:
		out = fn(el.Builder{})
	case func() *ht.Element:
		out = fn()
	case func(el.Builder) *ht.Element:
		out = fn(el.Builder{})
	default:
		return "", fmt.Errorf("weft: unsupported callback type %T", callback)
	}
	return finalize(out)
}

// finalize turns a callback result into its HTML string.
func finalize(out any) (string, error) {
	switch v := out.(type) {
	case nil:
		return "", nil
	case *ht.Element:
		return v.Render()
	case ht.Raw:
		return string(v), nil
	case string:
		return v, nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Document renders a node as a complete HTML document with the HTML5
// doctype prefix.
func Document(node *Element) (string, error) {
	return ht.Document(node)
}

// Fragment renders loose content without a wrapper element.
func Fragment(args ...any) (string, error) {
	return ht.Fragment(args...)
}
