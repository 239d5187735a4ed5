package whatwgurl

import (
	"strings"
)

// SetHref replaces the entire URL with the result of parsing href, which
// must be an absolute URL. Unlike the other setters it reports failure,
// in which case the URL is unchanged. The bound [SearchParams] (if any)
// remains bound.
func (x *URL) SetHref(href string) error {
	u, err := x.config().basicParse(href, nil, nil, stateNone)
	if err != nil {
		return &ParseError{Kind: err, Input: href}
	}
	params := x.params
	*x = *u
	x.params = params
	x.syncSearchParams()
	return nil
}

// SetProtocol sets the scheme. The trailing ":" is optional, and anything
// after it is ignored. Switching between special and non-special schemes
// is not permitted, and is silently ignored.
func (x *URL) SetProtocol(protocol string) {
	x.override(protocol+`:`, stateSchemeStart)
}

// SetUsername sets the username, percent-encoding it as necessary. It has
// no effect if the URL has no host, an empty host, or is a file URL.
func (x *URL) SetUsername(username string) {
	if x.cannotHaveUsernamePasswordPort() {
		return
	}
	x.username = percentEncodeString(username, encodeUserinfo, false)
}

// SetPassword sets the password, see also [URL.SetUsername].
func (x *URL) SetPassword(password string) {
	if x.cannotHaveUsernamePasswordPort() {
		return
	}
	x.password = percentEncodeString(password, encodeUserinfo, false)
}

// SetHost sets the host and (optionally) the port. It has no effect on
// URLs that cannot be a base.
//
// Failures are ignored, but note that the host may be modified even when
// the port is invalid, e.g. "example.com:99999" sets only the hostname.
func (x *URL) SetHost(host string) {
	if x.cannotBeABase {
		return
	}
	x.override(host, stateHost)
}

// SetHostname sets the host, leaving the port unchanged. Values containing
// a ":" (outside of IPv6 brackets) are ignored.
func (x *URL) SetHostname(hostname string) {
	if x.cannotBeABase {
		return
	}
	x.override(hostname, stateHostname)
}

// SetPort sets the port, where the empty string sets it to null. Leading
// digits are used, e.g. "8080abc" is 8080. The default port of the scheme
// is normalized to null.
func (x *URL) SetPort(port string) {
	if x.cannotHaveUsernamePasswordPort() {
		return
	}
	if port == `` {
		x.port, x.hasPort = 0, false
		x.syncSearchParams()
		return
	}
	x.override(port, statePort)
}

// SetPathname replaces the path. It has no effect on URLs that cannot be a
// base.
func (x *URL) SetPathname(pathname string) {
	if x.cannotBeABase {
		return
	}
	x.path = nil
	x.override(pathname, statePathStart)
}

// SetSearch sets the query, where a leading "?" is optional. The empty
// string sets the query to null.
func (x *URL) SetSearch(search string) {
	if search == `` {
		x.query, x.hasQuery = ``, false
		x.stripTrailingSpacesFromOpaquePath()
		x.syncSearchParams()
		return
	}
	x.query, x.hasQuery = ``, true
	x.override(strings.TrimPrefix(search, `?`), stateQuery)
}

// SetHash sets the fragment, where a leading "#" is optional. The empty
// string sets the fragment to null.
func (x *URL) SetHash(hash string) {
	if hash == `` {
		x.fragment, x.hasFragment = ``, false
		x.stripTrailingSpacesFromOpaquePath()
		return
	}
	x.fragment, x.hasFragment = ``, true
	x.override(strings.TrimPrefix(hash, `#`), stateFragment)
}

// override runs the parser against the receiver, starting at the given
// state, discarding any failure.
func (x *URL) override(input string, override state) {
	_, _ = x.config().basicParse(input, nil, x, override)
	x.syncSearchParams()
}

func (x *URL) stripTrailingSpacesFromOpaquePath() {
	if !x.cannotBeABase || x.hasFragment || x.hasQuery || len(x.path) == 0 {
		return
	}
	x.path[0] = strings.TrimRight(x.path[0], ` `)
}
