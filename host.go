package whatwgurl

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// HostKind identifies the variant held by a [Host].
type HostKind uint8

const (
	// HostNone is the zero value, and represents a null host.
	HostNone HostKind = iota
	// HostDomain is an ASCII (possibly punycode) domain.
	HostDomain
	// HostIPv4 is a 32-bit IPv4 address.
	HostIPv4
	// HostIPv6 is a 128-bit IPv6 address, as eight 16-bit pieces.
	HostIPv6
	// HostOpaque is a percent-encoded host, of a non-special URL.
	HostOpaque
	// HostEmpty is the empty host, e.g. of "file:///".
	HostEmpty
)

func (x HostKind) String() string {
	switch x {
	case HostNone:
		return `none`
	case HostDomain:
		return `domain`
	case HostIPv4:
		return `ipv4`
	case HostIPv6:
		return `ipv6`
	case HostOpaque:
		return `opaque`
	case HostEmpty:
		return `empty`
	default:
		return `HostKind(` + strconv.Itoa(int(x)) + `)`
	}
}

// Host models the host of a URL. The zero value is the null host.
type Host struct {
	name string
	ipv6 [8]uint16
	ipv4 uint32
	kind HostKind
}

// Kind returns the variant of the host.
func (x Host) Kind() HostKind { return x.kind }

// IPv4 returns the address, if the host is an IPv4 address.
func (x Host) IPv4() (uint32, bool) { return x.ipv4, x.kind == HostIPv4 }

// IPv6 returns the address, if the host is an IPv6 address.
func (x Host) IPv6() ([8]uint16, bool) { return x.ipv6, x.kind == HostIPv6 }

// String implements the host serializer, e.g. IPv6 addresses are bracketed
// and compressed.
func (x Host) String() string {
	switch x.kind {
	case HostDomain, HostOpaque:
		return x.name
	case HostIPv4:
		return serializeIPv4(x.ipv4)
	case HostIPv6:
		return `[` + serializeIPv6(x.ipv6) + `]`
	default:
		return ``
	}
}

func (x Host) isNull() bool { return x.kind == HostNone }

func (x Host) isEmpty() bool { return x.kind == HostEmpty }

// parseHost implements the host parser.
func (p *parser) parseHost(input string, isOpaque bool) (Host, error) {
	if strings.HasPrefix(input, `[`) {
		if !strings.HasSuffix(input, `]`) || len(input) < 2 {
			p.validation(ValidationIPv6Unclosed)
			return Host{}, ErrInvalidHost
		}
		addr, ok := p.parseIPv6([]rune(input[1 : len(input)-1]))
		if !ok {
			return Host{}, ErrInvalidHost
		}
		return Host{kind: HostIPv6, ipv6: addr}, nil
	}

	if isOpaque {
		return p.parseOpaqueHost(input)
	}

	domain := decodeUTF8(percentDecodeBytes(input))

	asciiDomain, ok := p.domainToASCII(domain)
	if !ok {
		return Host{}, ErrInvalidHost
	}

	for _, c := range asciiDomain {
		if isForbiddenDomainCodePoint(c) {
			p.validation(ValidationDomainInvalidCodePoint)
			return Host{}, ErrInvalidHost
		}
	}

	if endsInANumber(asciiDomain) {
		addr, ok := p.parseIPv4(asciiDomain)
		if !ok {
			return Host{}, ErrInvalidHost
		}
		return Host{kind: HostIPv4, ipv4: addr}, nil
	}

	return Host{kind: HostDomain, name: asciiDomain}, nil
}

func (p *parser) parseOpaqueHost(input string) (Host, error) {
	for _, c := range input {
		if isForbiddenHostCodePoint(c) {
			p.validation(ValidationHostInvalidCodePoint)
			return Host{}, ErrInvalidHost
		}
	}
	if input == `` {
		return Host{kind: HostEmpty}, nil
	}
	return Host{kind: HostOpaque, name: percentEncodeString(input, encodeC0Control, false)}, nil
}

// domainToASCII lowercases pure ASCII domains, deferring to the configured
// IDNA profile for anything containing non-ASCII or punycode labels.
func (p *parser) domainToASCII(domain string) (string, bool) {
	if !needsIDNA(domain) {
		return strings.ToLower(domain), true
	}
	result, err := p.cfg.idna.ToASCII(domain)
	if err != nil || result == `` {
		p.validation(ValidationDomainToASCII)
		return ``, false
	}
	return result, true
}

func needsIDNA(domain string) bool {
	for i := 0; i < len(domain); i++ {
		if domain[i] >= utf8.RuneSelf {
			return true
		}
	}
	lower := strings.ToLower(domain)
	return strings.HasPrefix(lower, `xn--`) || strings.Contains(lower, `.xn--`)
}
