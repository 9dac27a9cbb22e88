package ljson

import (
	"math"
	"testing"
)

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		typ  ValueType
		want string
	}{
		{TypeNull, "null"},
		{TypeFalse, "false"},
		{TypeTrue, "true"},
		{TypeNumber, "number"},
		{TypeString, "string"},
		{TypeArray, "array"},
		{TypeObject, "object"},
		{ValueType(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ValueType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	if v.Type() != TypeNull {
		t.Fatalf("zero Value type = %v, want Null", v.Type())
	}
}

func TestSetBool(t *testing.T) {
	var v Value
	v.SetBool(true)
	if v.Type() != TypeTrue || !v.Bool() {
		t.Fatalf("SetBool(true) gave type %v", v.Type())
	}
	v.SetBool(false)
	if v.Type() != TypeFalse || v.Bool() {
		t.Fatalf("SetBool(false) gave type %v", v.Type())
	}
}

func TestSetNumber(t *testing.T) {
	var v Value
	v.SetNumber(3.25)
	if v.Type() != TypeNumber || v.Number() != 3.25 {
		t.Fatalf("SetNumber(3.25) gave %v %v", v.Type(), v.Number())
	}
}

func TestSetString(t *testing.T) {
	var v Value
	v.SetString([]byte("hello"))
	if v.Type() != TypeString || string(v.String()) != "hello" {
		t.Fatalf("SetString got %v %q", v.Type(), v.String())
	}

	// SetString must copy, not alias, its input.
	src := []byte("mutate-me")
	v.SetString(src)
	src[0] = 'X'
	if string(v.String()) != "mutate-me" {
		t.Fatalf("SetString aliased caller's slice: got %q", v.String())
	}
}

func TestDestroyIsIdempotentAndRecursive(t *testing.T) {
	var v Value
	v.SetArray(2)
	e := v.PushBackArray()
	e.SetString([]byte("child"))
	v.Destroy()
	if v.Type() != TypeNull {
		t.Fatalf("after Destroy, type = %v, want Null", v.Type())
	}
	v.Destroy() // idempotent
	if v.Type() != TypeNull {
		t.Fatalf("second Destroy changed type to %v", v.Type())
	}
}

func TestBoolPanicsOnWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bool on a non-boolean Value did not panic")
		}
	}()
	var v Value
	v.SetNumber(1)
	v.Bool()
}

func TestCopyIsDeep(t *testing.T) {
	var src, dst Value
	src.SetArray(1)
	e := src.PushBackArray()
	e.SetString([]byte("shared?"))

	Copy(&dst, &src)
	if !IsEqual(&src, &dst) {
		t.Fatal("copy not equal to source")
	}

	// Mutating the copy's nested string must not affect the source.
	dst.ArrayElement(0).SetString([]byte("changed"))
	if string(src.ArrayElement(0).String()) != "shared?" {
		t.Fatal("Copy shared storage with its source")
	}
}

func TestCopyPreservesDuplicateKeys(t *testing.T) {
	src, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	var dst Value
	Copy(&dst, src)
	if dst.ObjectLen() != 2 {
		t.Fatalf("copy collapsed duplicate keys: ObjectLen = %d, want 2", dst.ObjectLen())
	}
	for i := 0; i < 2; i++ {
		m := dst.ObjectMember(i)
		if string(m.Key) != "a" || m.Value.Number() != float64(i+1) {
			t.Fatalf("member %d = %q:%v, want a:%d", i, m.Key, m.Value.Number(), i+1)
		}
	}
}

func TestCopyPanicsOnSameValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Copy(v, v) did not panic")
		}
	}()
	var v Value
	Copy(&v, &v)
}

func TestMoveTransfersOwnership(t *testing.T) {
	var src, dst Value
	src.SetString([]byte("payload"))
	Move(&dst, &src)
	if dst.Type() != TypeString || string(dst.String()) != "payload" {
		t.Fatalf("Move did not transfer payload, got %v", dst.Type())
	}
	if src.Type() != TypeNull {
		t.Fatalf("Move left src as %v, want Null", src.Type())
	}
}

func TestSwapExchangesPayloads(t *testing.T) {
	var a, b Value
	a.SetNumber(1)
	b.SetString([]byte("two"))
	Swap(&a, &b)
	if a.Type() != TypeString || string(a.String()) != "two" {
		t.Fatalf("Swap: a = %v", a.Type())
	}
	if b.Type() != TypeNumber || b.Number() != 1 {
		t.Fatalf("Swap: b = %v", b.Type())
	}
}

func TestIsEqualNumberNaN(t *testing.T) {
	var nan Value
	nan.SetNumber(math.NaN())
	if IsEqual(&nan, &nan) {
		t.Fatal("IsEqual(NaN, NaN) should be false, matching IEEE equality")
	}
}

func TestIsEqualObjectIgnoresMemberOrder(t *testing.T) {
	a, err := Parse([]byte(`{"x":1,"y":2}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(`{"y":2,"x":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if !IsEqual(a, b) {
		t.Fatal("objects with same members in different order should be equal")
	}
}

func TestIsEqualObjectDifferentSize(t *testing.T) {
	a, err := Parse([]byte(`{"x":1}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(`{"x":1,"y":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if IsEqual(a, b) {
		t.Fatal("objects of different size should not be equal")
	}
}
