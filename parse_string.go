package ljson

// parseHex4 reads 4 case-insensitive hex digits starting at p.input[pos]
// and returns the decoded value and the position just past them, or ok ==
// false if any of the 4 bytes is not a hex digit.
func parseHex4(input []byte, pos int) (u rune, next int, ok bool) {
	if pos+4 > len(input) {
		return 0, pos, false
	}
	for i := 0; i < 4; i++ {
		c := input[pos+i]
		u <<= 4
		switch {
		case c >= '0' && c <= '9':
			u |= rune(c - '0')
		case c >= 'A' && c <= 'F':
			u |= rune(c-'A') + 10
		case c >= 'a' && c <= 'f':
			u |= rune(c-'a') + 10
		default:
			return 0, pos, false
		}
	}
	return u, pos + 4, true
}

// encodeUTF8 appends the UTF-8 encoding of code point u onto the scratch
// buffer: 1 byte for U+0000..U+007F, 2 for U+0080..U+07FF, 3 for
// U+0800..U+FFFF, 4 for U+10000..U+10FFFF.
func (p *Parser) encodeUTF8(u rune) {
	switch {
	case u <= 0x7F:
		p.scratch.PushByte(byte(u))
	case u <= 0x7FF:
		p.scratch.PushByte(byte(0xC0 | (u >> 6)))
		p.scratch.PushByte(byte(0x80 | (u & 0x3F)))
	case u <= 0xFFFF:
		p.scratch.PushByte(byte(0xE0 | (u >> 12)))
		p.scratch.PushByte(byte(0x80 | ((u >> 6) & 0x3F)))
		p.scratch.PushByte(byte(0x80 | (u & 0x3F)))
	default:
		p.scratch.PushByte(byte(0xF0 | (u >> 18)))
		p.scratch.PushByte(byte(0x80 | ((u >> 12) & 0x3F)))
		p.scratch.PushByte(byte(0x80 | ((u >> 6) & 0x3F)))
		p.scratch.PushByte(byte(0x80 | (u & 0x3F)))
	}
}

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	lowSurrogateLo  = 0xDC00
	lowSurrogateHi  = 0xDFFF
)

// parseStringRaw decodes the string literal starting at the parser's
// current position (which must be '"') onto the scratch buffer, then pops
// the decoded run back off as the string's owned bytes. On any error the
// scratch buffer is restored to its position on entry, so no partial
// decode leaks into a later retry.
func (p *Parser) parseStringRaw() ([]byte, error) {
	head := p.scratch.Len()
	p.pos++ // consume opening quote

	for {
		if p.pos >= len(p.input) {
			p.scratch.Truncate(head)
			return nil, p.errorf(ErrMissQuotationMark)
		}
		ch := p.input[p.pos]
		switch ch {
		case '"':
			p.pos++
			n := p.scratch.Len() - head
			return append([]byte(nil), p.scratch.Pop(n)...), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				p.scratch.Truncate(head)
				return nil, p.errorf(ErrMissQuotationMark)
			}
			esc := p.input[p.pos]
			p.pos++
			switch esc {
			case '"':
				p.scratch.PushByte('"')
			case '\\':
				p.scratch.PushByte('\\')
			case '/':
				p.scratch.PushByte('/')
			case 'b':
				p.scratch.PushByte('\b')
			case 'f':
				p.scratch.PushByte('\f')
			case 'n':
				p.scratch.PushByte('\n')
			case 'r':
				p.scratch.PushByte('\r')
			case 't':
				p.scratch.PushByte('\t')
			case 'u':
				u, next, ok := parseHex4(p.input, p.pos)
				if !ok {
					p.scratch.Truncate(head)
					return nil, p.errorf(ErrInvalidUnicodeHex)
				}
				p.pos = next
				if u >= highSurrogateLo && u <= highSurrogateHi {
					if p.pos+2 > len(p.input) || p.input[p.pos] != '\\' || p.input[p.pos+1] != 'u' {
						p.scratch.Truncate(head)
						return nil, p.errorf(ErrInvalidUnicodeSurrogate)
					}
					p.pos += 2
					u2, next2, ok := parseHex4(p.input, p.pos)
					if !ok {
						p.scratch.Truncate(head)
						return nil, p.errorf(ErrInvalidUnicodeHex)
					}
					if u2 < lowSurrogateLo || u2 > lowSurrogateHi {
						p.scratch.Truncate(head)
						return nil, p.errorf(ErrInvalidUnicodeSurrogate)
					}
					p.pos = next2
					u = 0x10000 + ((u-highSurrogateLo)<<10 | (u2 - lowSurrogateLo))
				} else if u >= lowSurrogateLo && u <= lowSurrogateHi {
					p.scratch.Truncate(head)
					return nil, p.errorf(ErrInvalidUnicodeSurrogate)
				}
				p.encodeUTF8(u)
			default:
				p.scratch.Truncate(head)
				return nil, p.errorf(ErrInvalidStringEscape)
			}
		default:
			if ch < 0x20 {
				p.scratch.Truncate(head)
				return nil, p.errorf(ErrInvalidStringChar)
			}
			p.scratch.PushByte(ch)
			p.pos++
		}
	}
}

// parseString parses a JSON string literal into v.
func (p *Parser) parseString(v *Value) error {
	s, err := p.parseStringRaw()
	if err != nil {
		return err
	}
	v.typ = TypeString
	v.str = s
	return nil
}
