package whatwgurl

import (
	"slices"
	"strconv"
)

// URL is a parsed URL record, with the accessors of the URL API.
//
// The zero value is not a valid URL, use [Parse] or similar.
type URL struct {
	cfg      *config
	params   *SearchParams
	scheme   string
	username string
	password string
	query    string
	fragment string
	// path holds a single opaque string if cannotBeABase is set
	path          []string
	host          Host
	port          uint16
	hasPort       bool
	hasQuery      bool
	hasFragment   bool
	cannotBeABase bool
}

var specialSchemes = map[string]struct {
	port    uint16
	hasPort bool
}{
	`ftp`:   {21, true},
	`file`:  {},
	`http`:  {80, true},
	`https`: {443, true},
	`ws`:    {80, true},
	`wss`:   {443, true},
}

// IsSpecialScheme reports whether scheme is one of ftp, file, http, https,
// ws, or wss.
func IsSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

// DefaultPort returns the default port of a special scheme. Note that file
// is special but has no default port.
func DefaultPort(scheme string) (uint16, bool) {
	v := specialSchemes[scheme]
	return v.port, v.hasPort
}

// Parse parses input as an absolute URL. Options, if any, are resolved per
// call, see [NewParser] to avoid that.
func Parse(input string, opts ...Option) (*URL, error) {
	p, err := parserFor(opts)
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// ParseWithBase parses input, resolving it against base, which must itself
// be an absolute URL.
func ParseWithBase(input, base string, opts ...Option) (*URL, error) {
	p, err := parserFor(opts)
	if err != nil {
		return nil, err
	}
	return p.ParseWithBase(input, base)
}

func parserFor(opts []Option) (*Parser, error) {
	if len(opts) == 0 {
		return defaultParser, nil
	}
	return NewParser(opts...)
}

// CanParse reports whether input (resolved against base, if provided) is
// a valid URL.
func CanParse(input string, base ...string) bool {
	var err error
	if len(base) != 0 {
		_, err = ParseWithBase(input, base[0])
	} else {
		_, err = Parse(input)
	}
	return err == nil
}

// Parse resolves ref against the receiver, as a base URL.
func (x *URL) Parse(ref string) (*URL, error) {
	u, err := x.config().basicParse(ref, x, nil, stateNone)
	if err != nil {
		return nil, &ParseError{Kind: err, Input: ref}
	}
	return u, nil
}

// Clone returns a deep copy of the URL, with a new (unbound from the
// receiver) [SearchParams].
func (x *URL) Clone() *URL {
	u := *x
	u.params = nil
	u.path = slices.Clone(x.path)
	return &u
}

func (x *URL) config() *config {
	if x.cfg == nil {
		return defaultConfig
	}
	return x.cfg
}

// Scheme returns the scheme, without the trailing ":".
func (x *URL) Scheme() string { return x.scheme }

// IsSpecial reports whether the URL's scheme is special.
func (x *URL) IsSpecial() bool { return IsSpecialScheme(x.scheme) }

// HostValue returns the host, which will be false if the host is null.
func (x *URL) HostValue() (Host, bool) { return x.host, !x.host.isNull() }

// PortNumber returns the port, which will be false if the port is null,
// including when it was elided as the scheme's default.
func (x *URL) PortNumber() (uint16, bool) { return x.port, x.hasPort }

// PathSegments returns a copy of the path segments, or a single element
// holding the opaque path, see [URL.CannotBeABase].
func (x *URL) PathSegments() []string { return slices.Clone(x.path) }

// CannotBeABase reports whether the URL has an opaque path, e.g.
// "mailto:user@example.com", in which case it cannot be used as a base for
// relative references (other than fragments).
func (x *URL) CannotBeABase() bool { return x.cannotBeABase }

// Query returns the query, without the leading "?", false if null.
func (x *URL) Query() (string, bool) { return x.query, x.hasQuery }

// Fragment returns the fragment, without the leading "#", false if null.
func (x *URL) Fragment() (string, bool) { return x.fragment, x.hasFragment }

// IncludesCredentials reports whether the username or password is
// non-empty.
func (x *URL) IncludesCredentials() bool { return x.username != `` || x.password != `` }

func (x *URL) cannotHaveUsernamePasswordPort() bool {
	return x.host.isNull() || x.host.isEmpty() || x.scheme == `file`
}

func (x *URL) shortenPath() {
	if x.scheme == `file` && len(x.path) == 1 && isWindowsDriveLetter(x.path[0], true) {
		return
	}
	if len(x.path) != 0 {
		x.path = x.path[:len(x.path)-1]
	}
}

// Href returns the serialization of the URL.
func (x *URL) Href() string { return x.serialize(false) }

// String implements [fmt.Stringer], and is identical to [URL.Href].
func (x *URL) String() string { return x.serialize(false) }

// ToJSON is identical to [URL.Href], see also [URL.MarshalJSON].
func (x *URL) ToJSON() string { return x.serialize(false) }

// Protocol returns the scheme followed by ":".
func (x *URL) Protocol() string { return x.scheme + `:` }

// Username returns the (percent-encoded) username.
func (x *URL) Username() string { return x.username }

// Password returns the (percent-encoded) password.
func (x *URL) Password() string { return x.password }

// Host returns the serialized host and port, if any.
func (x *URL) Host() string {
	if x.host.isNull() {
		return ``
	}
	if !x.hasPort {
		return x.host.String()
	}
	return x.host.String() + `:` + strconv.Itoa(int(x.port))
}

// Hostname returns the serialized host, or the empty string if null.
func (x *URL) Hostname() string { return x.host.String() }

// Port returns the port as a decimal string, or the empty string if null.
func (x *URL) Port() string {
	if !x.hasPort {
		return ``
	}
	return strconv.Itoa(int(x.port))
}

// Pathname returns the serialized path.
func (x *URL) Pathname() string { return x.serializePath() }

// Search returns the query prefixed by "?", or the empty string if the
// query is null or empty.
func (x *URL) Search() string {
	if x.query == `` {
		return ``
	}
	return `?` + x.query
}

// Hash returns the fragment prefixed by "#", or the empty string if the
// fragment is null or empty.
func (x *URL) Hash() string {
	if x.fragment == `` {
		return ``
	}
	return `#` + x.fragment
}

// SearchParams returns the [SearchParams] bound to this URL. The same
// instance is returned on every call. Mutating it updates the URL's query,
// and the URL's setters update it.
func (x *URL) SearchParams() *SearchParams {
	if x.params == nil {
		x.params = &SearchParams{url: x}
		x.params.reset(x.query, x.hasQuery)
	}
	return x.params
}

// syncSearchParams re-parses the query into the bound search params,
// called after every successful mutation of the URL.
func (x *URL) syncSearchParams() {
	if x.params != nil {
		x.params.reset(x.query, x.hasQuery)
	}
}
