package ht

import "fmt"

// ErrorKind classifies a construction or render failure.
type ErrorKind uint8

const (
	InvalidTag            ErrorKind = iota // tag name fails the tag-name pattern
	InvalidAttributeName                   // attribute key fails the attribute-name pattern
	ForbiddenEventHandler                  // attribute key begins with "on"
	DangerousURLScheme                     // URL attribute begins with a blocklisted scheme
)

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidTag:
		return "InvalidTag"
	case InvalidAttributeName:
		return "InvalidAttributeName"
	case ForbiddenEventHandler:
		return "ForbiddenEventHandler"
	case DangerousURLScheme:
		return "DangerousURLScheme"
	default:
		return "Unknown"
	}
}

// Error is a validation failure. All four kinds are deterministic input
// errors: the same construction always fails the same way, and the node
// being built produces no output.
type Error struct {
	Kind    ErrorKind
	Subject string // the offending tag name, attribute name, or URL value
	Attr    string // for DangerousURLScheme, the attribute carrying the URL
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidTag:
		if e.Subject == "" {
			return "ht: invalid tag name"
		}
		return fmt.Sprintf("ht: invalid tag name %q", e.Subject)
	case InvalidAttributeName:
		if e.Subject == "" {
			return "ht: invalid attribute name"
		}
		return fmt.Sprintf("ht: invalid attribute name %q", e.Subject)
	case ForbiddenEventHandler:
		if e.Subject == "" {
			return "ht: inline event handler attributes are not allowed"
		}
		return fmt.Sprintf("ht: inline event handler attribute %q is not allowed", e.Subject)
	case DangerousURLScheme:
		if e.Attr == "" {
			return "ht: dangerous URL scheme"
		}
		return fmt.Sprintf("ht: dangerous URL scheme in %s=%q", e.Attr, e.Subject)
	default:
		return "ht: validation error"
	}
}

// Is matches errors by kind, so errors.Is(err, ht.ErrInvalidTag) works
// regardless of the subject carried by the concrete error. A target with
// a subject or attribute set must match those too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Subject != "" && t.Subject != e.Subject {
		return false
	}
	if t.Attr != "" && t.Attr != e.Attr {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel values for errors.Is matching.
var (
	ErrInvalidTag            = &Error{Kind: InvalidTag}
	ErrInvalidAttributeName  = &Error{Kind: InvalidAttributeName}
	ErrForbiddenEventHandler = &Error{Kind: ForbiddenEventHandler}
	ErrDangerousURLScheme    = &Error{Kind: DangerousURLScheme}
)
