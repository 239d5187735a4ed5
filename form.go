package whatwgurl

import (
	"strings"
)

// ParseQuery implements the application/x-www-form-urlencoded parser,
// returning the name-value pairs in order. A leading "?" is not stripped.
func ParseQuery(query string) [][2]string {
	var pairs [][2]string
	for query != `` {
		var sequence string
		sequence, query, _ = strings.Cut(query, `&`)
		if sequence == `` {
			continue
		}
		name, value, _ := strings.Cut(sequence, `=`)
		pairs = append(pairs, [2]string{decodeFormComponent(name), decodeFormComponent(value)})
	}
	return pairs
}

func decodeFormComponent(s string) string {
	return PercentDecode(strings.ReplaceAll(s, `+`, ` `))
}

// EncodeQuery implements the application/x-www-form-urlencoded serializer.
// Everything other than ASCII alphanumerics and "*-._" is percent-encoded,
// except for spaces, which are written as "+".
func EncodeQuery(pairs [][2]string) string {
	var b strings.Builder
	for i, pair := range pairs {
		if i != 0 {
			b.WriteByte('&')
		}
		b.WriteString(percentEncodeString(pair[0], encodeForm, true))
		b.WriteByte('=')
		b.WriteString(percentEncodeString(pair[1], encodeForm, true))
	}
	return b.String()
}
