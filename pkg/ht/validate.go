package ht

// validTag reports whether tag matches ^[a-z][a-z0-9]*(-[a-z0-9]+)*$
// case-insensitively: a leading letter, then letters and digits, with
// single hyphens separating non-empty groups (custom elements).
func validTag(tag string) bool {
	if tag == "" || !isAlpha(tag[0]) {
		return false
	}
	prevHyphen := false
	for i := 1; i < len(tag); i++ {
		switch c := tag[i]; {
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case isAlnum(c):
			prevHyphen = false
		default:
			return false
		}
	}
	return !prevHyphen
}

// validAttrName rejects event handler names (anything beginning with
// "on", case-insensitively) and names outside ^[a-z][a-z0-9_:-]*$
// (case-insensitive). The handler check runs first: "onclick" is a
// well-formed name, but it is still forbidden.
func validAttrName(name string) error {
	if len(name) >= 2 && (name[0] == 'o' || name[0] == 'O') && (name[1] == 'n' || name[1] == 'N') {
		return &Error{Kind: ForbiddenEventHandler, Subject: name}
	}
	if name == "" || !isAlpha(name[0]) {
		return &Error{Kind: InvalidAttributeName, Subject: name}
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isAlnum(c) && c != '_' && c != ':' && c != '-' {
			return &Error{Kind: InvalidAttributeName, Subject: name}
		}
	}
	return nil
}

// validStyleProperty reports whether prop matches ^[a-z-]+$
// case-insensitively. Entries failing this are dropped from style maps,
// never an error.
func validStyleProperty(prop string) bool {
	if prop == "" {
		return false
	}
	for i := 0; i < len(prop); i++ {
		if !isAlpha(prop[i]) && prop[i] != '-' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
