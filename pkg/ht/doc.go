// Package ht is the core element tree of weft: an immutable HTML node
// representation with construction-time validation, automatic escaping,
// memoized eager rendering, and lazy streaming.
//
// Elements are built with New or El (or the per-tag constructors in the
// el package), never mutated. Deriving operations such as WithChildren
// and WithAttributes return new nodes and may share unchanged subtrees,
// which is what makes the per-node render cache sound.
//
// Typical usage:
//
//	node := ht.El("div", ht.Attr{Key: "class", Value: "card"},
//	    ht.El("h1", "Hello"),
//	    ht.El("p", "World"),
//	)
//	html, err := node.Render()
//
// Strings become escaped text, Raw values bypass escaping, nil and false
// children disappear, and nested slices flatten. See the el package for
// the ergonomic per-tag DSL on top of this package.
package ht
