package whatwgurl

import (
	"strconv"
)

// Origin returns the ASCII serialization of the URL's origin. Only http,
// https, ws, wss and ftp URLs have a tuple origin, e.g.
// "https://example.com:8443". A blob URL has the origin of the http(s) URL
// it wraps. All other URLs have an opaque origin, serialized as "null".
func (x *URL) Origin() string {
	switch x.scheme {
	case `http`, `https`, `ws`, `wss`, `ftp`:
		origin := x.scheme + `://` + x.host.String()
		if x.hasPort {
			origin += `:` + strconv.Itoa(int(x.port))
		}
		return origin

	case `blob`:
		inner, err := x.config().basicParse(x.serializePath(), nil, nil, stateNone)
		if err == nil && (inner.scheme == `http` || inner.scheme == `https`) {
			return inner.Origin()
		}
	}

	return `null`
}
