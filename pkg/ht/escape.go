package ht

import "strings"

// Escape escapes text for safe inclusion in HTML content or attribute
// values. It converts special characters to their HTML entity
// equivalents to prevent XSS attacks. The same entity set serves both
// contexts.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#039;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
