package whatwgurl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScheme indicates the input had no valid scheme, and could
	// not be resolved against a base URL.
	ErrInvalidScheme = errors.New(`Invalid scheme`)
	// ErrInvalidHost indicates a missing or malformed host.
	ErrInvalidHost = errors.New(`Invalid host`)
	// ErrInvalidPort indicates a non-numeric or out of range port.
	ErrInvalidPort = errors.New(`Invalid port`)
	// ErrInvalidAuthority indicates credentials were present without a host.
	ErrInvalidAuthority = errors.New(`Invalid authority`)
	// ErrInvalidBase indicates the base URL passed alongside the input
	// failed to parse.
	ErrInvalidBase = errors.New(`Invalid base URL`)
)

// ParseError is returned by the parsing functions. Kind is always one of the
// ErrInvalid* sentinel values, and is exposed via Unwrap.
type ParseError struct {
	Kind  error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(`whatwgurl: parse %q: %s`, e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ValidationError identifies a non-fatal (or, when it accompanies a failure,
// fatal) condition detected by the parser, named per the standard.
type ValidationError int

const (
	_ ValidationError = iota
	ValidationDomainToASCII
	ValidationDomainInvalidCodePoint
	ValidationHostInvalidCodePoint
	ValidationIPv4EmptyPart
	ValidationIPv4TooManyParts
	ValidationIPv4NonNumericPart
	ValidationIPv4NonDecimalPart
	ValidationIPv4OutOfRangePart
	ValidationIPv6Unclosed
	ValidationIPv6InvalidCompression
	ValidationIPv6TooManyPieces
	ValidationIPv6MultipleCompression
	ValidationIPv6InvalidCodePoint
	ValidationIPv6TooFewPieces
	ValidationIPv4InIPv6TooManyPieces
	ValidationIPv4InIPv6InvalidCodePoint
	ValidationIPv4InIPv6OutOfRangePart
	ValidationIPv4InIPv6TooFewParts
	ValidationInvalidURLUnit
	ValidationSpecialSchemeMissingFollowingSolidus
	ValidationMissingSchemeNonRelativeURL
	ValidationInvalidReverseSolidus
	ValidationInvalidCredentials
	ValidationHostMissing
	ValidationPortOutOfRange
	ValidationPortInvalid
	ValidationFileInvalidWindowsDriveLetter
	ValidationFileInvalidWindowsDriveLetterHost
)

var validationErrorNames = [...]string{
	ValidationDomainToASCII:                        `domain-to-ASCII`,
	ValidationDomainInvalidCodePoint:               `domain-invalid-code-point`,
	ValidationHostInvalidCodePoint:                 `host-invalid-code-point`,
	ValidationIPv4EmptyPart:                        `IPv4-empty-part`,
	ValidationIPv4TooManyParts:                     `IPv4-too-many-parts`,
	ValidationIPv4NonNumericPart:                   `IPv4-non-numeric-part`,
	ValidationIPv4NonDecimalPart:                   `IPv4-non-decimal-part`,
	ValidationIPv4OutOfRangePart:                   `IPv4-out-of-range-part`,
	ValidationIPv6Unclosed:                         `IPv6-unclosed`,
	ValidationIPv6InvalidCompression:               `IPv6-invalid-compression`,
	ValidationIPv6TooManyPieces:                    `IPv6-too-many-pieces`,
	ValidationIPv6MultipleCompression:              `IPv6-multiple-compression`,
	ValidationIPv6InvalidCodePoint:                 `IPv6-invalid-code-point`,
	ValidationIPv6TooFewPieces:                     `IPv6-too-few-pieces`,
	ValidationIPv4InIPv6TooManyPieces:              `IPv4-in-IPv6-too-many-pieces`,
	ValidationIPv4InIPv6InvalidCodePoint:           `IPv4-in-IPv6-invalid-code-point`,
	ValidationIPv4InIPv6OutOfRangePart:             `IPv4-in-IPv6-out-of-range-part`,
	ValidationIPv4InIPv6TooFewParts:                `IPv4-in-IPv6-too-few-parts`,
	ValidationInvalidURLUnit:                       `invalid-URL-unit`,
	ValidationSpecialSchemeMissingFollowingSolidus: `special-scheme-missing-following-solidus`,
	ValidationMissingSchemeNonRelativeURL:          `missing-scheme-non-relative-URL`,
	ValidationInvalidReverseSolidus:                `invalid-reverse-solidus`,
	ValidationInvalidCredentials:                   `invalid-credentials`,
	ValidationHostMissing:                          `host-missing`,
	ValidationPortOutOfRange:                       `port-out-of-range`,
	ValidationPortInvalid:                          `port-invalid`,
	ValidationFileInvalidWindowsDriveLetter:        `file-invalid-Windows-drive-letter`,
	ValidationFileInvalidWindowsDriveLetterHost:    `file-invalid-Windows-drive-letter-host`,
}

func (x ValidationError) String() string {
	if x > 0 && int(x) < len(validationErrorNames) {
		return validationErrorNames[x]
	}
	return fmt.Sprintf(`ValidationError(%d)`, int(x))
}
