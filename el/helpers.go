package el

import "github.com/weft-dev/weft/pkg/ht"

// Text creates a text node. The content is escaped at render time.
func Text(content string) *Element {
	return ht.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Element {
	return ht.Textf(format, args...)
}

// Group groups children without a wrapper element. The children render
// in sequence as if spliced into the parent.
func Group(args ...any) *Element {
	return ht.Group(args...)
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Element) *Element {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Element) *Element {
	if !condition {
		return node
	}
	return nil
}

// Case represents a case in a Switch statement.
type Case[T comparable] struct {
	Value     T
	Node      *Element
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, node *Element) Case[T] {
	return Case[T]{Value: value, Node: node}
}

// Default creates a default case for Switch.
func Default[T comparable](node *Element) Case[T] {
	return Case[T]{Node: node, IsDefault: true}
}

// Switch returns the node for the matching case value.
// If no case matches and there's a default, the default node is returned.
func Switch[T comparable](value T, cases ...Case[T]) *Element {
	// First pass: look for matching value
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return c.Node
		}
	}
	// Second pass: look for default
	for _, c := range cases {
		if c.IsDefault {
			return c.Node
		}
	}
	return nil
}

// Range maps a slice to elements.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// RangeMap maps a map to elements.
// Note: map iteration order is not guaranteed.
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) *Element) []*Element {
	result := make([]*Element, 0, len(m))
	for k, v := range m {
		node := fn(k, v)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Element) []*Element {
	if n <= 0 {
		return nil
	}
	result := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *Element {
	return nil
}

// Show returns the node if condition is true, otherwise Nothing.
// Alias for If for semantic clarity.
func Show(condition bool, node *Element) *Element {
	return If(condition, node)
}

// Hide returns the node if condition is false, otherwise Nothing.
// Alias for Unless for semantic clarity.
func Hide(condition bool, node *Element) *Element {
	return Unless(condition, node)
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *Element) *Element {
	if first != nil {
		return first
	}
	return second
}
