package whatwgurl

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Parser parses URLs using a particular configuration. It is immutable,
// and safe for concurrent use. URLs retain the configuration of the parser
// that created them, which is used by their setters.
type Parser struct {
	cfg *config
}

var defaultParser = &Parser{cfg: defaultConfig}

// NewParser initializes a [Parser], returning an error if any option is
// invalid.
func NewParser(opts ...Option) (*Parser, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg}, nil
}

// Parse parses input as an absolute URL.
func (x *Parser) Parse(input string) (*URL, error) {
	u, err := x.config().basicParse(input, nil, nil, stateNone)
	if err != nil {
		return nil, &ParseError{Kind: err, Input: input}
	}
	return u, nil
}

// ParseWithBase parses input relative to base. If base fails to parse, the
// returned error wraps [ErrInvalidBase].
func (x *Parser) ParseWithBase(input, base string) (*URL, error) {
	b, err := x.config().basicParse(base, nil, nil, stateNone)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidBase, Input: base}
	}
	u, err := x.config().basicParse(input, b, nil, stateNone)
	if err != nil {
		return nil, &ParseError{Kind: err, Input: input}
	}
	return u, nil
}

func (x *Parser) config() *config {
	if x == nil || x.cfg == nil {
		return defaultConfig
	}
	return x.cfg
}

type parser struct {
	cfg   *config
	base  *URL
	url   *URL
	input []rune
	// buffer holds UTF-8, which may or may not be percent-encoded already,
	// depending on the state
	buffer            []byte
	pointer           int
	state             state
	override          state
	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool
}

type stateHandler func(p *parser, c rune) (next state, advance int, err error)

var stateHandlers = [...]stateHandler{
	stateSchemeStart:                   (*parser).schemeStart,
	stateScheme:                        (*parser).scheme,
	stateNoScheme:                      (*parser).noScheme,
	stateSpecialRelativeOrAuthority:    (*parser).specialRelativeOrAuthority,
	statePathOrAuthority:               (*parser).pathOrAuthority,
	stateRelative:                      (*parser).relative,
	stateRelativeSlash:                 (*parser).relativeSlash,
	stateSpecialAuthoritySlashes:       (*parser).specialAuthoritySlashes,
	stateSpecialAuthorityIgnoreSlashes: (*parser).specialAuthorityIgnoreSlashes,
	stateAuthority:                     (*parser).authority,
	stateHost:                          (*parser).hostState,
	stateHostname:                      (*parser).hostState,
	statePort:                          (*parser).portState,
	stateFile:                          (*parser).file,
	stateFileSlash:                     (*parser).fileSlash,
	stateFileHost:                      (*parser).fileHost,
	statePathStart:                     (*parser).pathStart,
	statePath:                          (*parser).pathState,
	stateCannotBeABaseURLPath:          (*parser).cannotBeABaseURLPath,
	stateQuery:                         (*parser).queryState,
	stateFragment:                      (*parser).fragmentState,
}

// basicParse implements the basic URL parser. If u is nil a new URL is
// created, otherwise u is modified in place, starting from the override
// state. Returned errors are one of the ErrInvalid* sentinels.
func (x *config) basicParse(input string, base *URL, u *URL, override state) (*URL, error) {
	p := parser{
		cfg:      x,
		base:     base,
		url:      u,
		override: override,
		state:    override,
	}

	input = strings.ToValidUTF8(input, "�")

	if p.url == nil {
		p.url = &URL{cfg: x}
		if trimmed := strings.TrimFunc(input, isC0ControlOrSpace); len(trimmed) != len(input) {
			p.validation(ValidationInvalidURLUnit)
			input = trimmed
		}
	}

	if strings.ContainsAny(input, "\t\n\r") {
		p.validation(ValidationInvalidURLUnit)
		input = strings.Map(func(r rune) rune {
			if isASCIITabOrNewline(r) {
				return -1
			}
			return r
		}, input)
	}

	if p.state == stateNone {
		p.state = stateSchemeStart
	}

	p.input = []rune(input)

	if err := p.run(); err != nil {
		x.logger.Debug().
			Err(err).
			Str(`state`, p.state.String()).
			Log(`url parse failed`)
		return nil, err
	}

	return p.url, nil
}

// run drives the state machine, applying each handler's pointer advance,
// until the input is exhausted or a handler terminates.
func (p *parser) run() error {
	for {
		c := p.at(p.pointer)
		next, advance, err := stateHandlers[p.state](p, c)
		if err != nil {
			return err
		}
		if next == stateDone {
			return nil
		}
		p.state = next
		p.pointer += advance
		if p.pointer > len(p.input) {
			return nil
		}
	}
}

func (p *parser) at(i int) rune {
	if i >= 0 && i < len(p.input) {
		return p.input[i]
	}
	return eof
}

// remainingStartsWith compares s against the code points after the pointer.
func (p *parser) remainingStartsWith(s string) bool {
	i := p.pointer + 1
	for _, c := range s {
		if p.at(i) != c {
			return false
		}
		i++
	}
	return true
}

func (p *parser) validation(kind ValidationError) {
	b := p.cfg.logger.Debug()
	if !b.Enabled() {
		return
	}
	if _, ok := p.cfg.limiter.Allow(kind); !ok {
		b.Release()
		return
	}
	b.Str(`validation`, kind.String()).
		Str(`state`, p.state.String()).
		Log(`url validation error`)
}

// checkURLUnit reports invalid-URL-unit for c, which is about to be
// appended to a path, query, or fragment.
func (p *parser) checkURLUnit(c rune) {
	if c == '%' {
		if !isASCIIHexDigit(p.at(p.pointer+1)) || !isASCIIHexDigit(p.at(p.pointer+2)) {
			p.validation(ValidationInvalidURLUnit)
		}
		return
	}
	if !isURLCodePoint(c) {
		p.validation(ValidationInvalidURLUnit)
	}
}

func (p *parser) resetBuffer() { p.buffer = p.buffer[:0] }

func (p *parser) schemeStart(c rune) (state, int, error) {
	switch {
	case isASCIIAlpha(c):
		p.buffer = append(p.buffer, byte(toASCIILower(c)))
		return stateScheme, consume, nil
	case p.override == stateNone:
		return stateNoScheme, reprocess, nil
	default:
		return stateNone, 0, ErrInvalidScheme
	}
}

func (p *parser) scheme(c rune) (state, int, error) {
	if isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.' {
		p.buffer = append(p.buffer, byte(toASCIILower(c)))
		return stateScheme, consume, nil
	}

	if c != ':' {
		if p.override == stateNone {
			// start over, from the beginning of the input
			p.resetBuffer()
			return stateNoScheme, -p.pointer, nil
		}
		return stateNone, 0, ErrInvalidScheme
	}

	buffer := string(p.buffer)

	if p.override != stateNone {
		switch {
		case p.url.IsSpecial() != IsSpecialScheme(buffer),
			(p.url.IncludesCredentials() || p.url.hasPort) && buffer == `file`,
			p.url.scheme == `file` && p.url.host.isEmpty():
			return stateDone, 0, nil
		}
	}

	p.url.scheme = buffer

	if p.override != stateNone {
		if port, ok := DefaultPort(p.url.scheme); ok && p.url.hasPort && p.url.port == port {
			p.url.hasPort = false
		}
		return stateDone, 0, nil
	}

	p.resetBuffer()

	switch {
	case p.url.scheme == `file`:
		if !p.remainingStartsWith(`//`) {
			p.validation(ValidationSpecialSchemeMissingFollowingSolidus)
		}
		return stateFile, consume, nil
	case p.url.IsSpecial() && p.base != nil && p.base.scheme == p.url.scheme:
		return stateSpecialRelativeOrAuthority, consume, nil
	case p.url.IsSpecial():
		return stateSpecialAuthoritySlashes, consume, nil
	case p.remainingStartsWith(`/`):
		return statePathOrAuthority, consume + 1, nil
	default:
		p.url.path = []string{``}
		p.url.cannotBeABase = true
		return stateCannotBeABaseURLPath, consume, nil
	}
}

func (p *parser) noScheme(c rune) (state, int, error) {
	switch {
	case p.base == nil || (p.base.cannotBeABase && c != '#'):
		p.validation(ValidationMissingSchemeNonRelativeURL)
		return stateNone, 0, ErrInvalidScheme
	case p.base.cannotBeABase:
		p.url.scheme = p.base.scheme
		p.url.path = slices.Clone(p.base.path)
		p.url.cannotBeABase = true
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	case p.base.scheme != `file`:
		return stateRelative, reprocess, nil
	default:
		return stateFile, reprocess, nil
	}
}

func (p *parser) specialRelativeOrAuthority(c rune) (state, int, error) {
	if c == '/' && p.remainingStartsWith(`/`) {
		return stateSpecialAuthorityIgnoreSlashes, consume + 1, nil
	}
	p.validation(ValidationSpecialSchemeMissingFollowingSolidus)
	return stateRelative, reprocess, nil
}

func (p *parser) pathOrAuthority(c rune) (state, int, error) {
	if c == '/' {
		return stateAuthority, consume, nil
	}
	return statePath, reprocess, nil
}

func (p *parser) copyAuthorityFromBase() {
	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.host = p.base.host
	p.url.port, p.url.hasPort = p.base.port, p.base.hasPort
}

func (p *parser) relative(c rune) (state, int, error) {
	p.url.scheme = p.base.scheme

	switch {
	case c == '/':
		return stateRelativeSlash, consume, nil
	case p.url.IsSpecial() && c == '\\':
		p.validation(ValidationInvalidReverseSolidus)
		return stateRelativeSlash, consume, nil
	}

	p.copyAuthorityFromBase()
	p.url.path = slices.Clone(p.base.path)
	p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery

	switch c {
	case '?':
		p.url.query, p.url.hasQuery = ``, true
		return stateQuery, consume, nil
	case '#':
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	case eof:
		return stateRelative, consume, nil
	}

	p.url.query, p.url.hasQuery = ``, false
	p.url.shortenPath()
	return statePath, reprocess, nil
}

func (p *parser) relativeSlash(c rune) (state, int, error) {
	if p.url.IsSpecial() && (c == '/' || c == '\\') {
		if c == '\\' {
			p.validation(ValidationInvalidReverseSolidus)
		}
		return stateSpecialAuthorityIgnoreSlashes, consume, nil
	}
	if c == '/' {
		return stateAuthority, consume, nil
	}
	p.copyAuthorityFromBase()
	return statePath, reprocess, nil
}

func (p *parser) specialAuthoritySlashes(c rune) (state, int, error) {
	if c == '/' && p.remainingStartsWith(`/`) {
		return stateSpecialAuthorityIgnoreSlashes, consume + 1, nil
	}
	p.validation(ValidationSpecialSchemeMissingFollowingSolidus)
	return stateSpecialAuthorityIgnoreSlashes, reprocess, nil
}

func (p *parser) specialAuthorityIgnoreSlashes(c rune) (state, int, error) {
	if c != '/' && c != '\\' {
		return stateAuthority, reprocess, nil
	}
	p.validation(ValidationSpecialSchemeMissingFollowingSolidus)
	return stateSpecialAuthorityIgnoreSlashes, consume, nil
}

func (p *parser) authority(c rune) (state, int, error) {
	if c == '@' {
		p.validation(ValidationInvalidCredentials)
		if p.atSignSeen {
			p.buffer = append([]byte(`%40`), p.buffer...)
		}
		p.atSignSeen = true
		var username, password []byte
		for _, cp := range string(p.buffer) {
			if cp == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				continue
			}
			if p.passwordTokenSeen {
				password = appendPercentEncodeRune(password, cp, encodeUserinfo)
			} else {
				username = appendPercentEncodeRune(username, cp, encodeUserinfo)
			}
		}
		p.url.username += string(username)
		p.url.password += string(password)
		p.resetBuffer()
		return stateAuthority, consume, nil
	}

	if c == eof || c == '/' || c == '?' || c == '#' || (p.url.IsSpecial() && c == '\\') {
		if p.atSignSeen && len(p.buffer) == 0 {
			p.validation(ValidationHostMissing)
			return stateNone, 0, ErrInvalidAuthority
		}
		// rewind to the start of the buffer, which is the host
		advance := -utf8.RuneCount(p.buffer)
		p.resetBuffer()
		return stateHost, advance, nil
	}

	p.buffer = utf8.AppendRune(p.buffer, c)
	return stateAuthority, consume, nil
}

func (p *parser) hostState(c rune) (state, int, error) {
	if p.override != stateNone && p.url.scheme == `file` {
		return stateFileHost, reprocess, nil
	}

	if c == ':' && !p.insideBrackets {
		if len(p.buffer) == 0 {
			p.validation(ValidationHostMissing)
			return stateNone, 0, ErrInvalidHost
		}
		if p.override == stateHostname {
			return stateNone, 0, ErrInvalidHost
		}
		host, err := p.parseHost(string(p.buffer), !p.url.IsSpecial())
		if err != nil {
			return stateNone, 0, err
		}
		p.url.host = host
		p.resetBuffer()
		return statePort, consume, nil
	}

	if c == eof || c == '/' || c == '?' || c == '#' || (p.url.IsSpecial() && c == '\\') {
		if p.url.IsSpecial() && len(p.buffer) == 0 {
			p.validation(ValidationHostMissing)
			return stateNone, 0, ErrInvalidHost
		}
		if p.override != stateNone && len(p.buffer) == 0 && (p.url.IncludesCredentials() || p.url.hasPort) {
			return stateNone, 0, ErrInvalidHost
		}
		host, err := p.parseHost(string(p.buffer), !p.url.IsSpecial())
		if err != nil {
			return stateNone, 0, err
		}
		p.url.host = host
		p.resetBuffer()
		if p.override != stateNone {
			return stateDone, 0, nil
		}
		return statePathStart, reprocess, nil
	}

	switch c {
	case '[':
		p.insideBrackets = true
	case ']':
		p.insideBrackets = false
	}
	p.buffer = utf8.AppendRune(p.buffer, c)
	return p.state, consume, nil
}

func (p *parser) portState(c rune) (state, int, error) {
	if isASCIIDigit(c) {
		p.buffer = append(p.buffer, byte(c))
		return statePort, consume, nil
	}

	if c == eof || c == '/' || c == '?' || c == '#' || (p.url.IsSpecial() && c == '\\') || p.override != stateNone {
		if len(p.buffer) != 0 {
			var port int
			for _, d := range p.buffer {
				port = port*10 + int(d-'0')
				if port > 0xffff {
					p.validation(ValidationPortOutOfRange)
					return stateNone, 0, ErrInvalidPort
				}
			}
			if def, ok := DefaultPort(p.url.scheme); ok && uint16(port) == def {
				p.url.port, p.url.hasPort = 0, false
			} else {
				p.url.port, p.url.hasPort = uint16(port), true
			}
			p.resetBuffer()
			if p.override != stateNone {
				return stateDone, 0, nil
			}
		}
		if p.override != stateNone {
			return stateNone, 0, ErrInvalidPort
		}
		return statePathStart, reprocess, nil
	}

	p.validation(ValidationPortInvalid)
	return stateNone, 0, ErrInvalidPort
}

func (p *parser) file(c rune) (state, int, error) {
	p.url.scheme = `file`
	p.url.host = Host{kind: HostEmpty}

	if c == '/' || c == '\\' {
		if c == '\\' {
			p.validation(ValidationInvalidReverseSolidus)
		}
		return stateFileSlash, consume, nil
	}

	if p.base == nil || p.base.scheme != `file` {
		return statePath, reprocess, nil
	}

	p.url.host = p.base.host
	p.url.path = slices.Clone(p.base.path)
	p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery

	switch c {
	case '?':
		p.url.query, p.url.hasQuery = ``, true
		return stateQuery, consume, nil
	case '#':
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	case eof:
		return stateFile, consume, nil
	}

	p.url.query, p.url.hasQuery = ``, false
	if !startsWithWindowsDriveLetter(p.input[p.pointer:]) {
		p.url.shortenPath()
	} else {
		p.validation(ValidationFileInvalidWindowsDriveLetter)
		p.url.path = nil
	}
	return statePath, reprocess, nil
}

func (p *parser) fileSlash(c rune) (state, int, error) {
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.validation(ValidationInvalidReverseSolidus)
		}
		return stateFileHost, consume, nil
	}
	if p.base != nil && p.base.scheme == `file` {
		p.url.host = p.base.host
		if !startsWithWindowsDriveLetter(p.input[p.pointer:]) &&
			len(p.base.path) != 0 &&
			isWindowsDriveLetter(p.base.path[0], true) {
			p.url.path = append(p.url.path, p.base.path[0])
		}
	}
	return statePath, reprocess, nil
}

func (p *parser) fileHost(c rune) (state, int, error) {
	if c != eof && c != '/' && c != '\\' && c != '?' && c != '#' {
		p.buffer = utf8.AppendRune(p.buffer, c)
		return stateFileHost, consume, nil
	}

	if p.override == stateNone && isWindowsDriveLetter(string(p.buffer), false) {
		// the buffer is retained, and becomes the first segment
		p.validation(ValidationFileInvalidWindowsDriveLetterHost)
		return statePath, reprocess, nil
	}

	if len(p.buffer) == 0 {
		p.url.host = Host{kind: HostEmpty}
		if p.override != stateNone {
			return stateDone, 0, nil
		}
		return statePathStart, reprocess, nil
	}

	host, err := p.parseHost(string(p.buffer), !p.url.IsSpecial())
	if err != nil {
		return stateNone, 0, err
	}
	if host.kind == HostDomain && host.name == `localhost` {
		host = Host{kind: HostEmpty}
	}
	p.url.host = host
	if p.override != stateNone {
		return stateDone, 0, nil
	}
	p.resetBuffer()
	return statePathStart, reprocess, nil
}

func (p *parser) pathStart(c rune) (state, int, error) {
	switch {
	case p.url.IsSpecial():
		if c == '\\' {
			p.validation(ValidationInvalidReverseSolidus)
		}
		if c != '/' && c != '\\' {
			return statePath, reprocess, nil
		}
		return statePath, consume, nil
	case p.override == stateNone && c == '?':
		p.url.query, p.url.hasQuery = ``, true
		return stateQuery, consume, nil
	case p.override == stateNone && c == '#':
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	case c != eof:
		if c != '/' {
			return statePath, reprocess, nil
		}
		return statePath, consume, nil
	case p.override != stateNone && p.url.host.isNull():
		p.url.path = append(p.url.path, ``)
	}
	return statePathStart, consume, nil
}

func (p *parser) pathState(c rune) (state, int, error) {
	special := p.url.IsSpecial()
	slash := c == '/' || (special && c == '\\')

	if !(c == eof || slash || (p.override == stateNone && (c == '?' || c == '#'))) {
		p.checkURLUnit(c)
		p.buffer = appendPercentEncodeRune(p.buffer, c, encodePath)
		return statePath, consume, nil
	}

	if special && c == '\\' {
		p.validation(ValidationInvalidReverseSolidus)
	}

	buffer := string(p.buffer)
	switch {
	case isDoubleDotSegment(buffer):
		p.url.shortenPath()
		if !slash {
			p.url.path = append(p.url.path, ``)
		}
	case isSingleDotSegment(buffer):
		if !slash {
			p.url.path = append(p.url.path, ``)
		}
	default:
		if p.url.scheme == `file` && len(p.url.path) == 0 && isWindowsDriveLetter(buffer, false) {
			buffer = buffer[:1] + `:`
		}
		p.url.path = append(p.url.path, buffer)
	}
	p.resetBuffer()

	switch c {
	case '?':
		p.url.query, p.url.hasQuery = ``, true
		return stateQuery, consume, nil
	case '#':
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	}
	return statePath, consume, nil
}

func (p *parser) cannotBeABaseURLPath(c rune) (state, int, error) {
	switch c {
	case '?', '#', eof:
		p.url.path[0] += string(p.buffer)
		p.resetBuffer()
	default:
		p.checkURLUnit(c)
		p.buffer = appendPercentEncodeRune(p.buffer, c, encodeC0Control)
		return stateCannotBeABaseURLPath, consume, nil
	}
	switch c {
	case '?':
		p.url.query, p.url.hasQuery = ``, true
		return stateQuery, consume, nil
	case '#':
		p.url.fragment, p.url.hasFragment = ``, true
		return stateFragment, consume, nil
	}
	return stateCannotBeABaseURLPath, consume, nil
}

func (p *parser) queryState(c rune) (state, int, error) {
	if (p.override == stateNone && c == '#') || c == eof {
		set := encodeQuery
		if p.url.IsSpecial() {
			set = encodeSpecialQuery
		}
		p.url.query += percentEncodeString(string(p.buffer), set, false)
		p.resetBuffer()
		if c == '#' {
			p.url.fragment, p.url.hasFragment = ``, true
			return stateFragment, consume, nil
		}
		return stateQuery, consume, nil
	}
	p.checkURLUnit(c)
	p.buffer = utf8.AppendRune(p.buffer, c)
	return stateQuery, consume, nil
}

func (p *parser) fragmentState(c rune) (state, int, error) {
	if c == eof {
		p.url.fragment += string(p.buffer)
		p.resetBuffer()
		return stateFragment, consume, nil
	}
	p.checkURLUnit(c)
	p.buffer = appendPercentEncodeRune(p.buffer, c, encodeFragment)
	return stateFragment, consume, nil
}
