package library

import (
	"testing"

	"github.com/fdischner/chipplayer/internal/song"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "A", Data: song.Bytes{0x01}},
		{Name: "B", Data: song.Bytes{0x02}},
		{Name: "C", Data: song.Bytes{0x03}},
	}
}

func TestNewPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestCurrentStartsAtFirstEntry(t *testing.T) {
	l := New(testEntries())
	if l.Name() != "A" {
		t.Fatalf("Name() = %q, want %q", l.Name(), "A")
	}
	_, addr := l.Current()
	if addr != 1 {
		t.Fatalf("Current() addr = %d, want 1", addr)
	}
}

func TestNextPrevCycle(t *testing.T) {
	l := New(testEntries())

	l.Next()
	if l.Name() != "B" {
		t.Fatalf("after Next(): Name() = %q, want %q", l.Name(), "B")
	}
	l.Next()
	if l.Name() != "C" {
		t.Fatalf("after Next(): Name() = %q, want %q", l.Name(), "C")
	}
	l.Next()
	if l.Name() != "A" {
		t.Fatalf("Next() did not wrap around: Name() = %q", l.Name())
	}

	l.Prev()
	if l.Name() != "C" {
		t.Fatalf("Prev() did not wrap backward: Name() = %q", l.Name())
	}
}

func TestBuiltinLibraryAssembles(t *testing.T) {
	lib, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin(): %v", err)
	}
	if lib.Name() == "" {
		t.Fatalf("Builtin() library has an unnamed first entry")
	}
	data, addr := lib.Current()
	if addr != 1 {
		t.Fatalf("Current() addr = %d, want 1", addr)
	}
	if len(data) == 0 {
		t.Fatalf("Builtin() first entry has no data")
	}
}
