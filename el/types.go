package el

import "github.com/weft-dev/weft/pkg/ht"

// Type aliases for the tree primitives used by the DSL.
type Element = ht.Element
type Child = ht.Child
type Kind = ht.Kind
type Attr = ht.Attr
type Attrs = ht.Attrs
type Raw = ht.Raw
