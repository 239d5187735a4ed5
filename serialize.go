package whatwgurl

import (
	"strconv"
	"strings"
)

// serialize implements the URL serializer.
func (x *URL) serialize(excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(x.scheme)
	b.WriteByte(':')

	if !x.host.isNull() {
		b.WriteString(`//`)
		if x.IncludesCredentials() {
			b.WriteString(x.username)
			if x.password != `` {
				b.WriteByte(':')
				b.WriteString(x.password)
			}
			b.WriteByte('@')
		}
		b.WriteString(x.host.String())
		if x.hasPort {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(x.port)))
		}
	} else if !x.cannotBeABase && len(x.path) > 1 && x.path[0] == `` {
		// without this, the path would be reparsed as an authority
		b.WriteString(`/.`)
	}

	x.writePath(&b)

	if x.hasQuery {
		b.WriteByte('?')
		b.WriteString(x.query)
	}

	if !excludeFragment && x.hasFragment {
		b.WriteByte('#')
		b.WriteString(x.fragment)
	}

	return b.String()
}

func (x *URL) serializePath() string {
	var b strings.Builder
	x.writePath(&b)
	return b.String()
}

func (x *URL) writePath(b *strings.Builder) {
	if x.cannotBeABase {
		if len(x.path) != 0 {
			b.WriteString(x.path[0])
		}
		return
	}
	for _, segment := range x.path {
		b.WriteByte('/')
		b.WriteString(segment)
	}
}
