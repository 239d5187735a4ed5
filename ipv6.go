package whatwgurl

import (
	"strconv"
)

// parseIPv6 implements the IPv6 parser, for the code points between the
// brackets.
func (p *parser) parseIPv6(input []rune) (address [8]uint16, _ bool) {
	var (
		pieceIndex = 0
		compress   = -1
		pointer    = 0
	)
	at := func(i int) rune {
		if i < len(input) {
			return input[i]
		}
		return eof
	}

	if at(pointer) == ':' {
		if at(pointer+1) != ':' {
			p.validation(ValidationIPv6InvalidCompression)
			return address, false
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for at(pointer) != eof {
		if pieceIndex == 8 {
			p.validation(ValidationIPv6TooManyPieces)
			return address, false
		}

		if at(pointer) == ':' {
			if compress != -1 {
				p.validation(ValidationIPv6MultipleCompression)
				return address, false
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		var value, length int
		for length < 4 && isASCIIHexDigit(at(pointer)) {
			d, _ := unhex(byte(at(pointer)))
			value = value*0x10 + int(d)
			pointer++
			length++
		}

		switch at(pointer) {
		case '.':
			if length == 0 {
				p.validation(ValidationIPv4InIPv6InvalidCodePoint)
				return address, false
			}
			pointer -= length
			if pieceIndex > 6 {
				p.validation(ValidationIPv4InIPv6TooManyPieces)
				return address, false
			}
			numbersSeen := 0
			for at(pointer) != eof {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if at(pointer) == '.' && numbersSeen < 4 {
						pointer++
					} else {
						p.validation(ValidationIPv4InIPv6InvalidCodePoint)
						return address, false
					}
				}
				if !isASCIIDigit(at(pointer)) {
					p.validation(ValidationIPv4InIPv6InvalidCodePoint)
					return address, false
				}
				for isASCIIDigit(at(pointer)) {
					number := int(at(pointer) - '0')
					switch ipv4Piece {
					case -1:
						ipv4Piece = number
					case 0:
						p.validation(ValidationIPv4InIPv6InvalidCodePoint)
						return address, false
					default:
						ipv4Piece = ipv4Piece*10 + number
					}
					if ipv4Piece > 255 {
						p.validation(ValidationIPv4InIPv6OutOfRangePart)
						return address, false
					}
					pointer++
				}
				address[pieceIndex] = address[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				p.validation(ValidationIPv4InIPv6TooFewParts)
				return address, false
			}
			return finishIPv6(address, pieceIndex, compress, p)

		case ':':
			pointer++
			if at(pointer) == eof {
				p.validation(ValidationIPv6InvalidCodePoint)
				return address, false
			}

		case eof:

		default:
			p.validation(ValidationIPv6InvalidCodePoint)
			return address, false
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	return finishIPv6(address, pieceIndex, compress, p)
}

func finishIPv6(address [8]uint16, pieceIndex, compress int, p *parser) ([8]uint16, bool) {
	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			address[pieceIndex], address[compress+swaps-1] = address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		p.validation(ValidationIPv6TooFewPieces)
		return address, false
	}
	return address, true
}

// serializeIPv6 implements the IPv6 serializer (without brackets),
// compressing the first longest run of two or more zero pieces.
func serializeIPv6(address [8]uint16) string {
	compress := -1
	{
		bestLen := 1
		for i := 0; i < 8; {
			if address[i] != 0 {
				i++
				continue
			}
			j := i
			for j < 8 && address[j] == 0 {
				j++
			}
			if j-i > bestLen {
				compress, bestLen = i, j-i
			}
			i = j
		}
	}

	b := make([]byte, 0, 39)
	ignore0 := false
	for i := 0; i < 8; i++ {
		if ignore0 {
			if address[i] == 0 {
				continue
			}
			ignore0 = false
		}
		if compress == i {
			if i == 0 {
				b = append(b, ':', ':')
			} else {
				b = append(b, ':')
			}
			ignore0 = true
			continue
		}
		b = strconv.AppendUint(b, uint64(address[i]), 16)
		if i != 7 {
			b = append(b, ':')
		}
	}
	return string(b)
}
