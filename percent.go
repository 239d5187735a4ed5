package whatwgurl

import (
	"strings"
	"unicode/utf8"
)

// encodeSet is a percent-encode set. From query onwards, each is a superset
// of the previous, excluding special query (which only adds "'").
type encodeSet uint8

const (
	encodeC0Control encodeSet = iota
	encodeFragment
	encodeQuery
	encodeSpecialQuery
	encodePath
	encodeUserinfo
	encodeComponent
	encodeForm
	encodeSetCount
)

const upperhex = "0123456789ABCDEF"

// encodeTables is indexed by set then ASCII byte, with true meaning the
// byte must be percent-encoded. All non-ASCII is always encoded.
var encodeTables = func() (tables [encodeSetCount][utf8.RuneSelf]bool) {
	add := func(t *[utf8.RuneSelf]bool, chars string) {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] = true
		}
	}
	for c := 0; c < utf8.RuneSelf; c++ {
		tables[encodeC0Control][c] = c < 0x20 || c == 0x7f
	}
	tables[encodeFragment] = tables[encodeC0Control]
	add(&tables[encodeFragment], " \"<>`")
	tables[encodeQuery] = tables[encodeC0Control]
	add(&tables[encodeQuery], " \"#<>")
	tables[encodeSpecialQuery] = tables[encodeQuery]
	add(&tables[encodeSpecialQuery], "'")
	tables[encodePath] = tables[encodeQuery]
	add(&tables[encodePath], "?`{}")
	tables[encodeUserinfo] = tables[encodePath]
	add(&tables[encodeUserinfo], "/:;=@[\\]^|")
	tables[encodeComponent] = tables[encodeUserinfo]
	add(&tables[encodeComponent], "$%&+,")
	tables[encodeForm] = tables[encodeComponent]
	add(&tables[encodeForm], "!'()~")
	return
}()

func (x encodeSet) contains(c rune) bool {
	return c >= utf8.RuneSelf || c < 0 || encodeTables[x][c]
}

func appendPercentByte(dst []byte, b byte) []byte {
	return append(dst, '%', upperhex[b>>4], upperhex[b&0xf])
}

// appendPercentEncodeRune implements UTF-8 percent-encode for a single code
// point.
func appendPercentEncodeRune(dst []byte, c rune, set encodeSet) []byte {
	if !set.contains(c) {
		return append(dst, byte(c))
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	for _, b := range buf[:n] {
		dst = appendPercentByte(dst, b)
	}
	return dst
}

// percentEncodeString implements UTF-8 percent-encode for a string, with
// spaceAsPlus used for application/x-www-form-urlencoded.
func percentEncodeString(s string, set encodeSet, spaceAsPlus bool) string {
	i := 0
	for ; i < len(s); i++ {
		if b := s[i]; b >= utf8.RuneSelf || encodeTables[set][b] {
			break
		}
	}
	if i == len(s) {
		return s
	}
	dst := make([]byte, 0, len(s)+(len(s)-i)*2)
	dst = append(dst, s[:i]...)
	for _, c := range s[i:] {
		if spaceAsPlus && c == ' ' {
			dst = append(dst, '+')
			continue
		}
		dst = appendPercentEncodeRune(dst, c, set)
	}
	return string(dst)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// percentDecodeBytes implements percent-decode, where malformed sequences
// are passed through unchanged.
func percentDecodeBytes(s string) []byte {
	if strings.IndexByte(s, '%') < 0 {
		return []byte(s)
	}
	dst := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				dst = append(dst, hi<<4|lo)
				i += 2
				continue
			}
		}
		dst = append(dst, s[i])
	}
	return dst
}

// PercentDecode percent-decodes s, then decodes the result as UTF-8, with
// invalid sequences replaced by U+FFFD. Malformed percent sequences are
// preserved, as-is.
func PercentDecode(s string) string {
	return decodeUTF8(percentDecodeBytes(s))
}

// decodeUTF8 implements "UTF-8 decode without BOM", with replacement
// semantics, where each maximal subpart of an invalid sequence becomes a
// single U+FFFD.
func decodeUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) != 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			size = invalidSequenceLen(b)
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// invalidSequenceLen returns the length of the maximal subpart of the
// invalid sequence at the start of b, i.e. the lead byte plus any valid
// continuation bytes, prior to the error.
func invalidSequenceLen(b []byte) int {
	n, lo, hi := 0, byte(0x80), byte(0xBF)
	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		n = 2
	case lead == 0xE0:
		n, lo = 3, 0xA0
	case lead == 0xED:
		n, hi = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		n = 3
	case lead == 0xF0:
		n, lo = 4, 0x90
	case lead >= 0xF1 && lead <= 0xF3:
		n = 4
	case lead == 0xF4:
		n, hi = 4, 0x8F
	default:
		return 1
	}
	i := 1
	for ; i < n && i < len(b) && b[i] >= lo && b[i] <= hi; i++ {
		lo, hi = 0x80, 0xBF
	}
	return i
}
