package song

import "testing"

func TestBytesReadByteAtIsOneBased(t *testing.T) {
	b := Bytes{0xAA, 0xBB, 0xCC}
	if got := b.ReadByteAt(0); got != 0 {
		t.Fatalf("ReadByteAt(0) = %#x, want 0 (sentinel)", got)
	}
	if got := b.ReadByteAt(1); got != 0xAA {
		t.Fatalf("ReadByteAt(1) = %#x, want 0xAA", got)
	}
	if got := b.ReadByteAt(3); got != 0xCC {
		t.Fatalf("ReadByteAt(3) = %#x, want 0xCC", got)
	}
	if got := b.ReadByteAt(4); got != 0 {
		t.Fatalf("ReadByteAt(4) (past end) = %#x, want 0", got)
	}
}

func TestCursorLoadAndReset(t *testing.T) {
	var c Cursor
	c.Load(42)
	if c.Start != 42 || c.Repeat != 42 || c.Pos != 42 {
		t.Fatalf("Load(42) = %+v", c)
	}
	c.Pos = 100
	c.Repeat = 80
	c.Reset()
	if c.Pos != 42 || c.Repeat != 42 {
		t.Fatalf("Reset() = %+v, want Pos/Repeat back to Start", c)
	}
}
