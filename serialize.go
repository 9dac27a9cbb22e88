package ljson

import "strconv"

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// Serializer walks a Value tree and writes its textual JSON form into a
// scratch buffer. A Serializer can be reused across calls to Serialize but,
// like Parser, is not safe for concurrent use.
type Serializer struct {
	scratch *scratchBuffer
	cfg     serializerConfig
}

// NewSerializer creates a Serializer, applying any options.
func NewSerializer(opts ...SerializerOption) *Serializer {
	cfg := defaultSerializerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Serializer{
		scratch: newScratchBuffer(cfg.initialScratchCapacity),
	}
}

// Serialize renders v as textual JSON. The returned slice is owned by the
// caller; s's scratch buffer is reset to empty before (and remains empty
// after) the call, so s may be reused for another Serialize right away.
func (s *Serializer) Serialize(v *Value) []byte {
	s.scratch.Truncate(0)
	s.writeValue(v)
	out := append([]byte(nil), s.scratch.Bytes()...)
	s.scratch.Truncate(0)
	return out
}

// Serialize renders v as textual JSON in one call. It is a convenience
// wrapper around NewSerializer(opts...).Serialize.
func Serialize(v *Value, opts ...SerializerOption) []byte {
	return NewSerializer(opts...).Serialize(v)
}

func (s *Serializer) writeValue(v *Value) {
	switch v.typ {
	case TypeNull:
		s.scratch.PushBytes([]byte("null"))
	case TypeFalse:
		s.scratch.PushBytes([]byte("false"))
	case TypeTrue:
		s.scratch.PushBytes([]byte("true"))
	case TypeNumber:
		s.writeNumber(v.num)
	case TypeString:
		s.writeString(v.str)
	case TypeArray:
		s.scratch.PushByte('[')
		for i := range v.arr {
			if i > 0 {
				s.scratch.PushByte(',')
			}
			s.writeValue(&v.arr[i])
		}
		s.scratch.PushByte(']')
	case TypeObject:
		s.scratch.PushByte('{')
		for i := range v.obj {
			if i > 0 {
				s.scratch.PushByte(',')
			}
			s.writeString(v.obj[i].Key)
			s.scratch.PushByte(':')
			s.writeValue(&v.obj[i].Value)
		}
		s.scratch.PushByte('}')
	default:
		panic("ljson: invalid Value type during serialization")
	}
}

// writeNumber reserves a fixed 32-byte scratch (enough for any float64 in
// 'g' form), formats into it with strconv.AppendFloat's shortest
// round-trip representation, and pops the unused tail.
func (s *Serializer) writeNumber(f float64) {
	const reserve = 32
	dst := s.scratch.Push(reserve)
	// dst's capacity extends to the rest of the scratch buffer's backing
	// array, which Push just guaranteed is at least `reserve` bytes past
	// dst's start — and no float64 in 'g'/-1 form needs more than ~24 of
	// them — so this append always lands in place, never reallocating.
	formatted := strconv.AppendFloat(dst[:0], f, 'g', -1, 64)
	s.scratch.Truncate(s.scratch.Len() - (reserve - len(formatted)))
}

// writeString reserves the worst case (6*len(b) + 2 bytes: every byte
// becomes a \u00XX escape, plus the two quotes) up front so the common case
// of mostly-printable-ASCII input never reallocates mid-string, then pops
// the unused suffix once the actual escaped length is known.
func (s *Serializer) writeString(b []byte) {
	reserve := 6*len(b) + 2
	dst := s.scratch.Push(reserve)
	p := 0
	dst[p] = '"'
	p++
	for _, c := range b {
		switch c {
		case '"':
			dst[p] = '\\'
			dst[p+1] = '"'
			p += 2
		case '\\':
			dst[p] = '\\'
			dst[p+1] = '\\'
			p += 2
		case '\b':
			dst[p] = '\\'
			dst[p+1] = 'b'
			p += 2
		case '\f':
			dst[p] = '\\'
			dst[p+1] = 'f'
			p += 2
		case '\n':
			dst[p] = '\\'
			dst[p+1] = 'n'
			p += 2
		case '\r':
			dst[p] = '\\'
			dst[p+1] = 'r'
			p += 2
		case '\t':
			dst[p] = '\\'
			dst[p+1] = 't'
			p += 2
		default:
			if c < 0x20 {
				dst[p] = '\\'
				dst[p+1] = 'u'
				dst[p+2] = '0'
				dst[p+3] = '0'
				dst[p+4] = hexDigits[c>>4]
				dst[p+5] = hexDigits[c&0xF]
				p += 6
			} else {
				dst[p] = c
				p++
			}
		}
	}
	dst[p] = '"'
	p++
	s.scratch.Truncate(s.scratch.Len() - (reserve - p))
}
