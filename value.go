package ljson

import "bytes"

// ValueType is the tag of a Value.
type ValueType uint8

const (
	TypeNull ValueType = iota
	TypeFalse
	TypeTrue
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeFalse:
		return "false"
	case TypeTrue:
		return "true"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a JSON value: exactly one of null, false, true, a number, a
// string, an array of Values, or an object of Members. A zero Value is
// Null and ready to use.
//
// Only the field matching typ is meaningful; mutators always reset a Value
// to Null before installing a new payload, so a stale payload from a
// previous tag is never observed through a live field.
type Value struct {
	typ ValueType
	num float64
	str []byte
	arr []Value
	obj []Member
}

// Member is a (key, value) pair inside an Object. The key has the same
// byte-sequence semantics as a String: it may contain any byte, including
// 0x00, and its logical length is len(Key).
type Member struct {
	Key   []byte
	Value Value
}

// Type returns v's tag.
func (v *Value) Type() ValueType {
	return v.typ
}

// Destroy releases any storage owned by v and retags it Null. Destroy is
// idempotent: calling it again on an already-Null Value is a no-op.
func (v *Value) Destroy() {
	switch v.typ {
	case TypeArray:
		for i := range v.arr {
			v.arr[i].Destroy()
		}
	case TypeObject:
		for i := range v.obj {
			v.obj[i].Value.Destroy()
		}
	}
	*v = Value{}
}

// SetNull destroys v's current payload and retags it Null. It is exactly
// Destroy under another name, kept so call sites can say what they mean.
func (v *Value) SetNull() {
	v.Destroy()
}

// Bool returns whether v is True. The caller must have already checked
// v.Type() is TypeTrue or TypeFalse; calling Bool on any other tag panics.
func (v *Value) Bool() bool {
	switch v.typ {
	case TypeTrue:
		return true
	case TypeFalse:
		return false
	default:
		panic("ljson: Bool called on a Value that is not a boolean")
	}
}

// SetBool destroys v's current payload and retags it True or False.
func (v *Value) SetBool(b bool) {
	v.Destroy()
	if b {
		v.typ = TypeTrue
	} else {
		v.typ = TypeFalse
	}
}

// Number returns v's float64 payload. Calling Number on a non-Number Value
// panics.
func (v *Value) Number() float64 {
	if v.typ != TypeNumber {
		panic("ljson: Number called on a Value that is not a number")
	}
	return v.num
}

// SetNumber destroys v's current payload and retags it Number.
func (v *Value) SetNumber(n float64) {
	v.Destroy()
	v.typ = TypeNumber
	v.num = n
}

// String returns v's byte payload. Calling String on a non-String Value
// panics. The returned slice must not be mutated by the caller; it is
// owned by v until the next mutator runs.
func (v *Value) String() []byte {
	if v.typ != TypeString {
		panic("ljson: String called on a Value that is not a string")
	}
	return v.str
}

// SetString destroys v's current payload, copies len(s) bytes into a fresh
// owned buffer, and retags v String.
func (v *Value) SetString(s []byte) {
	v.Destroy()
	v.typ = TypeString
	v.str = append([]byte(nil), s...)
}

// Copy performs a deep copy of src into dst: strings, arrays, and objects
// get freshly allocated storage and their children are copied recursively;
// everything else is a plain value copy. dst and src must not be the same
// Value.
func Copy(dst, src *Value) {
	if dst == src {
		panic("ljson: Copy called with dst == src")
	}
	switch src.typ {
	case TypeString:
		dst.SetString(src.str)
	case TypeArray:
		dst.SetArray(len(src.arr))
		dst.arr = dst.arr[:len(src.arr)]
		for i := range src.arr {
			Copy(&dst.arr[i], &src.arr[i])
		}
	case TypeObject:
		// Members are copied positionally, not through SetObjectValue:
		// duplicate keys are legal in the data model and must survive a
		// deep copy.
		dst.SetObject(len(src.obj))
		dst.obj = dst.obj[:len(src.obj)]
		for i := range src.obj {
			dst.obj[i].Key = append([]byte(nil), src.obj[i].Key...)
			Copy(&dst.obj[i].Value, &src.obj[i].Value)
		}
	default:
		dst.Destroy()
		*dst = *src
	}
}

// Move transfers src's payload to dst in O(1) and resets src to Null
// without destroying the now-transferred storage. dst and src must not be
// the same Value.
func Move(dst, src *Value) {
	if dst == src {
		panic("ljson: Move called with dst == src")
	}
	dst.Destroy()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the payloads of lhs and rhs in O(1).
func Swap(lhs, rhs *Value) {
	if lhs != rhs {
		*lhs, *rhs = *rhs, *lhs
	}
}

// IsEqual reports whether lhs and rhs are structurally equal: same tag;
// numbers compared by IEEE equality (so NaN != NaN); strings by byte
// content; arrays by pairwise positional equality; objects by set-of-keys
// equality where every key of lhs must be present in rhs with an equal
// value, regardless of member order.
func IsEqual(lhs, rhs *Value) bool {
	if lhs.typ != rhs.typ {
		return false
	}
	switch lhs.typ {
	case TypeNumber:
		return lhs.num == rhs.num
	case TypeString:
		return bytes.Equal(lhs.str, rhs.str)
	case TypeArray:
		if len(lhs.arr) != len(rhs.arr) {
			return false
		}
		for i := range lhs.arr {
			if !IsEqual(&lhs.arr[i], &rhs.arr[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(lhs.obj) != len(rhs.obj) {
			return false
		}
		for i := range lhs.obj {
			rv, ok := findObjectValue(rhs, lhs.obj[i].Key)
			if !ok || !IsEqual(&lhs.obj[i].Value, rv) {
				return false
			}
		}
		return true
	default:
		// Null, True, False carry no payload: equal tag is enough.
		return true
	}
}
