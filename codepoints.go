package whatwgurl

const eof rune = -1

func isASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }

func isASCIIHexDigit(c rune) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCIIAlpha(c rune) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isASCIIAlphanumeric(c rune) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func toASCIILower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isC0ControlOrSpace(c rune) bool { return c >= 0 && c <= 0x20 }

func isASCIITabOrNewline(c rune) bool { return c == '\t' || c == '\n' || c == '\r' }

func isForbiddenHostCodePoint(c rune) bool {
	switch c {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

func isForbiddenDomainCodePoint(c rune) bool {
	return isForbiddenHostCodePoint(c) || (c >= 0 && c <= 0x1f) || c == '%' || c == 0x7f
}

// isURLCodePoint reports whether c is permitted (unescaped) in a URL, used
// only to detect validation errors.
func isURLCodePoint(c rune) bool {
	if isASCIIAlphanumeric(c) {
		return true
	}
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', ':', ';', '=', '?', '@', '_', '~':
		return true
	}
	if c < 0xa0 || c > 0x10fffd {
		return false
	}
	if c >= 0xd800 && c <= 0xdfff {
		return false
	}
	// noncharacters
	if (c >= 0xfdd0 && c <= 0xfdef) || c&0xfffe == 0xfffe {
		return false
	}
	return true
}

// isWindowsDriveLetter matches two code points, an ASCII alpha followed by
// ":" or "|" (normalized requires ":").
func isWindowsDriveLetter(s string, normalized bool) bool {
	if len(s) != 2 || !isASCIIAlpha(rune(s[0])) {
		return false
	}
	return s[1] == ':' || (!normalized && s[1] == '|')
}

// startsWithWindowsDriveLetter implements the "starts with a Windows drive
// letter" check, against the code points remaining from the pointer.
func startsWithWindowsDriveLetter(s []rune) bool {
	if len(s) < 2 || !isASCIIAlpha(s[0]) || (s[1] != ':' && s[1] != '|') {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

func isSingleDotSegment(s string) bool {
	return s == `.` || equalFoldASCII(s, `%2e`)
}

func isDoubleDotSegment(s string) bool {
	switch len(s) {
	case 2:
		return s == `..`
	case 4:
		return equalFoldASCII(s, `.%2e`) || equalFoldASCII(s, `%2e.`)
	case 6:
		return equalFoldASCII(s, `%2e%2e`)
	}
	return false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toASCIILower(rune(a[i])) != toASCIILower(rune(b[i])) {
			return false
		}
	}
	return true
}
