package ht

import "strings"

// voidElements are elements that cannot have children and have no closing
// tag. Children supplied to one of these are accepted at construction and
// silently never rendered.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element. The match is
// case-insensitive.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// booleanAttrs are attributes rendered as a bare name when truthy and
// omitted entirely otherwise.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// isBooleanAttr returns true if the attribute is a boolean attribute.
func isBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// urlAttrs are attributes whose values are checked against the dangerous
// scheme blocklist at render time.
var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
}

// isURLAttr returns true if the attribute carries a navigable URL.
func isURLAttr(name string) bool {
	return urlAttrs[strings.ToLower(name)]
}
