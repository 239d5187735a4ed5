package whatwgurl

// state is a state of the basic URL parser.
type state uint8

const (
	stateNone state = iota
	stateSchemeStart
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
	// stateDone terminates the parser early, successfully, and is used by
	// state override parsing (setters).
	stateDone
)

var stateNames = [...]string{
	stateNone:                          `none`,
	stateSchemeStart:                   `scheme-start`,
	stateScheme:                        `scheme`,
	stateNoScheme:                      `no-scheme`,
	stateSpecialRelativeOrAuthority:    `special-relative-or-authority`,
	statePathOrAuthority:               `path-or-authority`,
	stateRelative:                      `relative`,
	stateRelativeSlash:                 `relative-slash`,
	stateSpecialAuthoritySlashes:       `special-authority-slashes`,
	stateSpecialAuthorityIgnoreSlashes: `special-authority-ignore-slashes`,
	stateAuthority:                     `authority`,
	stateHost:                          `host`,
	stateHostname:                      `hostname`,
	statePort:                          `port`,
	stateFile:                          `file`,
	stateFileSlash:                     `file-slash`,
	stateFileHost:                      `file-host`,
	statePathStart:                     `path-start`,
	statePath:                          `path`,
	stateCannotBeABaseURLPath:          `cannot-be-a-base-url-path`,
	stateQuery:                         `query`,
	stateFragment:                      `fragment`,
	stateDone:                          `done`,
}

func (x state) String() string {
	if int(x) < len(stateNames) {
		return stateNames[x]
	}
	return `unknown`
}

// Advance values returned by state handlers, applied to the pointer by the
// driver loop. Rewinds (e.g. authority to host) return a negative delta.
const (
	reprocess = 0
	consume   = 1
)
