// Package el is the HTML DSL for weft.
//
// It provides one constructor per HTML tag, typed attribute helpers,
// small composition helpers, and the Builder tag factory handed to
// render callbacks. Everything here is a thin wrapper over the element
// tree in pkg/ht.
//
// Typical usage:
//
//	import (
//	    "github.com/weft-dev/weft/el"
//	)
//
//	card := el.Div(el.Class("card"),
//	    el.H1("Hello"),
//	    el.P("World"),
//	)
//
// Constructors whose natural name collides with another identifier carry
// a trailing underscore (Time_, Map_) or a suffix (DataElement,
// StyleAttr, TitleAttr).
package el
