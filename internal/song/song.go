// Package song implements the song byte format and frame sequencer of spec
// §4.3/§6: an opaque byte-addressable stream of delta-time-gated events that
// mutate voice state.
package song

// Reader is a byte-addressable read-only view over song storage. It stands
// in for the original firmware's pgm_read_byte_far program-memory access —
// see spec §9 "Far pointers to program memory" — modeled here as a plain
// integer-offset cursor over a byte slice instead of raw pointer arithmetic.
type Reader interface {
	ReadByteAt(pos uint32) byte
}

// Bytes is the simplest Reader: an in-memory byte slice. Address 0 is
// reserved, matching the original firmware's convention that a far pointer
// value of 0 means "no song loaded" (spec §4.4's `start == 0` check) — real
// program-memory addresses on the original target were never 0. ReadByteAt(1)
// is therefore the first byte of the stream.
type Bytes []byte

// ReadByteAt implements Reader. Reading address 0 or past the end of the
// slice returns 0 rather than panicking. The core does not detect
// end-of-stream: zeros decode as delta-0 step writes to channel 0, so a
// stream that runs off its end keeps RunFrame consuming them within the same
// frame. Well-formed songs end with a jump (OpJump) and never get there.
func (b Bytes) ReadByteAt(pos uint32) byte {
	if pos == 0 || int(pos) > len(b) {
		return 0
	}
	return b[pos-1]
}

// Cursor is the triple of byte offsets spec §3 assigns to a loaded song:
// the fixed start, the current repeat point, and the read position.
type Cursor struct {
	Start  uint32
	Repeat uint32
	Pos    uint32
}

// Load points the cursor at addr, with repeat defaulting to start, per
// spec §4.4's load().
func (c *Cursor) Load(addr uint32) {
	c.Start = addr
	c.Repeat = addr
	c.Pos = addr
}

// Reset returns the cursor to its loaded song's start, as stop() does.
func (c *Cursor) Reset() {
	c.Pos = c.Start
	c.Repeat = c.Start
}
