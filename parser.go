package ljson

// Parser holds the state of a single parse: the input being scanned, the
// current byte offset, and the scratch buffer used to stage decoded string
// bytes and buffered array elements / object members until their final
// size is known.
//
// A Parser is not safe for concurrent use, and is not meant to be reused
// across unrelated inputs (unlike the scratch buffer inside it, which
// NewParser always starts fresh). Parse below constructs one per call,
// which is the common case.
type Parser struct {
	input   []byte
	pos     int
	scratch *scratchBuffer
	cfg     parserConfig
	depth   int
}

// NewParser creates a Parser ready to parse input, applying any options.
func NewParser(input []byte, opts ...ParserOption) *Parser {
	cfg := defaultParserConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		input:   input,
		scratch: newScratchBuffer(cfg.initialScratchCapacity),
		cfg:     cfg,
	}
}

func (p *Parser) errorf(code ErrorCode) error {
	return &ParseError{Code: code, Offset: p.pos}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) parseLiteral(v *Value, literal string, typ ValueType) error {
	if p.pos+len(literal) > len(p.input) || string(p.input[p.pos:p.pos+len(literal)]) != literal {
		return p.errorf(ErrInvalidValue)
	}
	p.pos += len(literal)
	v.typ = typ
	return nil
}

// parseValue dispatches on the current lead byte to the right production,
// exactly the grammar table in the package-level parse contract.
func (p *Parser) parseValue(v *Value) error {
	if p.depth >= p.cfg.maxDepth {
		return p.errorf(ErrInvalidValue)
	}
	switch c := p.peek(); {
	case c == 'n':
		return p.parseLiteral(v, "null", TypeNull)
	case c == 't':
		return p.parseLiteral(v, "true", TypeTrue)
	case c == 'f':
		return p.parseLiteral(v, "false", TypeFalse)
	case c == '"':
		return p.parseString(v)
	case c == '[':
		p.depth++
		err := p.parseArray(v)
		p.depth--
		return err
	case c == '{':
		p.depth++
		err := p.parseObject(v)
		p.depth--
		return err
	case c == 0:
		return p.errorf(ErrExpectValue)
	default:
		return p.parseNumber(v)
	}
}

// parseArray parses the array literal starting at the parser's current
// position (which must be '[') into v.
//
// Each element is parsed into a stack-local Value and then appended, by
// value, onto a slice local to this call frame. The byte-oriented scratch
// buffer is not reused here: append already grows a typed slice by
// amortized doubling and already gives every recursion frame its own
// storage, so routing Value/Member records through the same byte stack
// the string decoder uses would need unsafe reinterpretation for no
// behavioral gain. The invariant that matters is the same either way: no
// pointer into this frame's element storage may survive a sibling's
// reallocation, and none does — each element is copied out of the local
// Value by append before any deeper recursion runs.
func (p *Parser) parseArray(v *Value) error {
	p.pos++ // consume '['
	p.skipWhitespace()
	if p.peek() == ']' {
		p.pos++
		v.SetArray(0)
		return nil
	}

	var elements []Value
	for {
		var e Value
		if err := p.parseValue(&e); err != nil {
			destroyAll(elements)
			return err
		}
		elements = append(elements, e)

		p.skipWhitespace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
		case ']':
			p.pos++
			v.SetArray(len(elements))
			v.arr = append(v.arr, elements...)
			return nil
		default:
			err := p.errorf(ErrMissCommaOrSquareBracket)
			destroyAll(elements)
			return err
		}
	}
}

func destroyAll(values []Value) {
	for i := range values {
		values[i].Destroy()
	}
}

// parseObject parses the object literal starting at the parser's current
// position (which must be '{') into v.
//
// The decoded key bytes are already copied out of the scratch buffer into
// their own owned slice by parseStringRaw before this function ever sees
// them: the member value's own parse may push onto (and reallocate) the
// scratch buffer, which must not invalidate a key decoded earlier.
// Members accumulate on a slice local to this call frame, same rationale
// as parseArray above.
func (p *Parser) parseObject(v *Value) error {
	p.pos++ // consume '{'
	p.skipWhitespace()
	if p.peek() == '}' {
		p.pos++
		v.SetObject(0)
		return nil
	}

	var members []Member
	for {
		if p.peek() != '"' {
			err := p.errorf(ErrMissKey)
			destroyMembers(members)
			return err
		}
		key, err := p.parseStringRaw()
		if err != nil {
			destroyMembers(members)
			return err
		}

		p.skipWhitespace()
		if p.peek() != ':' {
			err := p.errorf(ErrMissColon)
			destroyMembers(members)
			return err
		}
		p.pos++
		p.skipWhitespace()

		var val Value
		if err := p.parseValue(&val); err != nil {
			destroyMembers(members)
			return err
		}

		members = append(members, Member{Key: key, Value: val})

		p.skipWhitespace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
		case '}':
			p.pos++
			v.SetObject(len(members))
			v.obj = append(v.obj, members...)
			return nil
		default:
			err := p.errorf(ErrMissCommaOrCurlyBracket)
			destroyMembers(members)
			return err
		}
	}
}

func destroyMembers(members []Member) {
	for i := range members {
		members[i].Value.Destroy()
	}
}

// Parse parses the whole of p.input as a single JSON value: leading
// whitespace, the value, then trailing whitespace, then nothing. v is
// reset to Null first and is only left populated on success.
func (p *Parser) Parse(v *Value) error {
	v.Destroy()
	p.skipWhitespace()
	if err := p.parseValue(v); err != nil {
		v.Destroy()
		return err
	}
	p.skipWhitespace()
	if p.pos != len(p.input) {
		v.Destroy()
		return p.errorf(ErrRootNotSingular)
	}
	if p.scratch.Len() != 0 {
		panic("ljson: internal error: scratch buffer not empty after a successful parse")
	}
	return nil
}

// Parse parses b as a single JSON value and returns the resulting Value
// tree. It is a convenience wrapper around NewParser(b, opts...).Parse.
func Parse(b []byte, opts ...ParserOption) (*Value, error) {
	v := &Value{}
	p := NewParser(b, opts...)
	if err := p.Parse(v); err != nil {
		return nil, err
	}
	return v, nil
}
