package ht

import (
	"fmt"
	"strconv"
)

// appendChildren normalizes one child-producing argument into dst. The
// policy, applied in order: elements and Raw values pass through as
// single items, slices flatten recursively to one level, nil and false
// vanish, and anything else becomes its string form, escaped at render.
// The function is total: every input value maps to zero or more child
// items, never an error.
func appendChildren(dst []Child, arg any) []Child {
	switch v := arg.(type) {
	case nil:
		return dst
	case *Element:
		if v == nil {
			return dst
		}
		return append(dst, Child{Kind: KindNode, Node: v})
	case Raw:
		return append(dst, Child{Kind: KindRaw, Text: string(v)})
	case Child:
		return append(dst, v)
	case []Child:
		return append(dst, v...)
	case []any:
		for _, item := range v {
			dst = appendChildren(dst, item)
		}
		return dst
	case []*Element:
		for _, item := range v {
			if item != nil {
				dst = append(dst, Child{Kind: KindNode, Node: item})
			}
		}
		return dst
	case []string:
		for _, s := range v {
			dst = append(dst, Child{Kind: KindText, Text: s})
		}
		return dst
	case bool:
		if !v {
			return dst
		}
		return append(dst, Child{Kind: KindText, Text: "true"})
	case string:
		return append(dst, Child{Kind: KindText, Text: v})
	case int:
		return append(dst, Child{Kind: KindText, Text: strconv.Itoa(v)})
	case int64:
		return append(dst, Child{Kind: KindText, Text: strconv.FormatInt(v, 10)})
	case float64:
		return append(dst, Child{Kind: KindText, Text: strconv.FormatFloat(v, 'g', -1, 64)})
	default:
		return append(dst, Child{Kind: KindText, Text: fmt.Sprint(v)})
	}
}
