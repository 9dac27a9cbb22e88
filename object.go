package ljson

import "bytes"

// SetObject destroys v's current payload, retags it Object, and allocates
// backing storage for capacity members (size starts at 0).
func (v *Value) SetObject(capacity int) {
	v.Destroy()
	v.typ = TypeObject
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	} else {
		v.obj = nil
	}
}

// ObjectLen returns the number of members in v.
func (v *Value) ObjectLen() int {
	v.mustBeObject()
	return len(v.obj)
}

// ObjectCap returns the allocated member capacity of v's backing storage.
func (v *Value) ObjectCap() int {
	v.mustBeObject()
	return cap(v.obj)
}

func (v *Value) mustBeObject() {
	if v.typ != TypeObject {
		panic("ljson: called an object operation on a Value that is not an object")
	}
}

// ReserveObject grows v's backing storage to at least capacity members,
// preserving existing members. It never shrinks.
func (v *Value) ReserveObject(capacity int) {
	v.mustBeObject()
	if cap(v.obj) >= capacity {
		return
	}
	grown := make([]Member, len(v.obj), capacity)
	copy(grown, v.obj)
	v.obj = grown
}

// ShrinkObject reallocates v's backing storage down to exactly its current
// size.
func (v *Value) ShrinkObject() {
	v.mustBeObject()
	if cap(v.obj) == len(v.obj) {
		return
	}
	shrunk := make([]Member, len(v.obj))
	copy(shrunk, v.obj)
	v.obj = shrunk
}

// ClearObject destroys every member's key and value and sets v's size to 0
// without changing capacity.
func (v *Value) ClearObject() {
	v.mustBeObject()
	for i := range v.obj {
		v.obj[i].Key = nil
		v.obj[i].Value.Destroy()
	}
	v.obj = v.obj[:0]
}

// ObjectMember returns a pointer to the member at index.
func (v *Value) ObjectMember(index int) *Member {
	v.mustBeObject()
	return &v.obj[index]
}

// FindObjectIndex returns the index of the first member whose key equals
// key (exact byte comparison), and whether it was found. Lookup is linear
// over the member sequence, matching the first-match-in-insertion-order
// semantics duplicate keys are given elsewhere in this package.
func (v *Value) FindObjectIndex(key []byte) (int, bool) {
	v.mustBeObject()
	for i := range v.obj {
		if bytes.Equal(v.obj[i].Key, key) {
			return i, true
		}
	}
	return 0, false
}

// FindObjectValue returns a pointer to the value of the first member whose
// key equals key, or nil if no such member exists.
func (v *Value) FindObjectValue(key []byte) *Value {
	val, ok := findObjectValue(v, key)
	if !ok {
		return nil
	}
	return val
}

func findObjectValue(v *Value, key []byte) (*Value, bool) {
	idx, ok := v.FindObjectIndex(key)
	if !ok {
		return nil, false
	}
	return &v.obj[idx].Value, true
}

// SetObjectValue returns a pointer to the existing value for key if key is
// already present; otherwise it appends a new member with a freshly copied
// key and a fresh Null value (growing like PushBackArray) and returns a
// pointer to the new value.
func (v *Value) SetObjectValue(key []byte) *Value {
	v.mustBeObject()
	if existing, ok := findObjectValue(v, key); ok {
		return existing
	}
	if len(v.obj) == cap(v.obj) {
		next := 1
		if c := cap(v.obj); c > 0 {
			next = 2 * c
		}
		v.ReserveObject(next)
	}
	v.obj = append(v.obj, Member{Key: append([]byte(nil), key...)})
	return &v.obj[len(v.obj)-1].Value
}

// RemoveObjectValue destroys the key and value at index, shifts the tail
// down, and re-initializes the vacated trailing slot to a fresh (Null
// value, nil key) member.
func (v *Value) RemoveObjectValue(index int) {
	v.mustBeObject()
	v.obj[index].Value.Destroy()
	copy(v.obj[index:], v.obj[index+1:])
	last := len(v.obj) - 1
	v.obj[last] = Member{}
	v.obj = v.obj[:last]
}
