package ljson

import "testing"

func TestScratchBufferDefaultCapacity(t *testing.T) {
	b := newScratchBuffer(0)
	if cap(b.buf) != defaultScratchCapacity {
		t.Fatalf("cap = %d, want %d", cap(b.buf), defaultScratchCapacity)
	}
	if b.Len() != 0 {
		t.Fatalf("Len = %d, want 0", b.Len())
	}
}

func TestScratchBufferPushPop(t *testing.T) {
	b := newScratchBuffer(8)
	b.PushBytes([]byte("hello"))
	if b.Len() != 5 {
		t.Fatalf("Len = %d, want 5", b.Len())
	}
	got := b.Pop(5)
	if string(got) != "hello" {
		t.Fatalf("Pop = %q, want hello", got)
	}
	if b.Len() != 0 {
		t.Fatalf("Len after pop = %d, want 0", b.Len())
	}
}

func TestScratchBufferGrowsBy1Point5x(t *testing.T) {
	b := newScratchBuffer(4)
	b.PushBytes([]byte("12345")) // exceeds capacity 4, must grow
	if cap(b.buf) < 5 {
		t.Fatalf("cap after growth = %d, want >= 5", cap(b.buf))
	}
}

func TestScratchBufferTruncate(t *testing.T) {
	b := newScratchBuffer(16)
	b.PushBytes([]byte("keep"))
	head := b.Len()
	b.PushBytes([]byte("discard-me"))
	b.Truncate(head)
	if b.Len() != head {
		t.Fatalf("Len after Truncate = %d, want %d", b.Len(), head)
	}
	if string(b.Bytes()) != "keep" {
		t.Fatalf("Bytes after Truncate = %q, want keep", b.Bytes())
	}
}

func TestScratchBufferPopPanicsOnUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pop beyond current top did not panic")
		}
	}()
	b := newScratchBuffer(8)
	b.Pop(1)
}

func TestScratchBufferTruncatePanicsBeyondTop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Truncate beyond current top did not panic")
		}
	}()
	b := newScratchBuffer(8)
	b.Truncate(1)
}

func TestScratchBufferPushReturnsWritableSpan(t *testing.T) {
	b := newScratchBuffer(8)
	span := b.Push(3)
	span[0], span[1], span[2] = 'a', 'b', 'c'
	if string(b.Bytes()) != "abc" {
		t.Fatalf("Bytes = %q, want abc", b.Bytes())
	}
}
