package whatwgurl

import (
	"strconv"
	"strings"
)

// endsInANumber reports whether the last (non-empty) label of a domain is
// numeric, in which case the host must parse as IPv4.
func endsInANumber(input string) bool {
	parts := strings.Split(input, `.`)
	if parts[len(parts)-1] == `` {
		if len(parts) == 1 {
			return false
		}
		parts = parts[:len(parts)-1]
	}
	last := parts[len(parts)-1]
	if last != `` && strings.Trim(last, `0123456789`) == `` {
		return true
	}
	_, _, ok := parseIPv4Number(last)
	return ok
}

// parseIPv4Number parses a single part, which may be hex (0x prefix), octal
// (0 prefix), or decimal. Values above 2^32 saturate, as they can never be
// valid.
func parseIPv4Number(input string) (n uint64, validationError bool, ok bool) {
	if input == `` {
		return 0, false, false
	}
	radix := uint64(10)
	if len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X') {
		input, radix, validationError = input[2:], 16, true
	} else if len(input) >= 2 && input[0] == '0' {
		input, radix, validationError = input[1:], 8, true
	}
	if input == `` {
		return 0, validationError, true
	}
	const limit = 1 << 32
	for i := 0; i < len(input); i++ {
		var d uint64
		switch c := input[i]; {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false, false
		}
		if d >= radix {
			return 0, false, false
		}
		if n < limit {
			n = n*radix + d
		}
	}
	if n > limit {
		n = limit
	}
	return n, validationError, true
}

// parseIPv4 implements the IPv4 parser, returning false on failure.
func (p *parser) parseIPv4(input string) (uint32, bool) {
	parts := strings.Split(input, `.`)
	if parts[len(parts)-1] == `` {
		p.validation(ValidationIPv4EmptyPart)
		if len(parts) > 1 {
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) > 4 {
		p.validation(ValidationIPv4TooManyParts)
		return 0, false
	}
	numbers := make([]uint64, 0, 4)
	for _, part := range parts {
		n, nonDecimal, ok := parseIPv4Number(part)
		if !ok {
			p.validation(ValidationIPv4NonNumericPart)
			return 0, false
		}
		if nonDecimal {
			p.validation(ValidationIPv4NonDecimalPart)
		}
		numbers = append(numbers, n)
	}
	for i, n := range numbers {
		if n > 255 {
			p.validation(ValidationIPv4OutOfRangePart)
			if i != len(numbers)-1 {
				return 0, false
			}
		}
	}
	last := numbers[len(numbers)-1]
	if last >= 1<<(8*(5-len(numbers))) {
		return 0, false
	}
	ipv4 := last
	for i, n := range numbers[:len(numbers)-1] {
		ipv4 += n << (8 * (3 - i))
	}
	return uint32(ipv4), true
}

func serializeIPv4(addr uint32) string {
	b := make([]byte, 0, 15)
	for i := 3; i >= 0; i-- {
		b = strconv.AppendUint(b, uint64(addr>>(8*i))&0xff, 10)
		if i != 0 {
			b = append(b, '.')
		}
	}
	return string(b)
}
