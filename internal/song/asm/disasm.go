package asm

import (
	"fmt"
	"strings"

	"github.com/fdischner/chipplayer/internal/song"
)

// Disassemble renders a byte-coded song stream back into the DSL source
// Assemble accepts, for debugging and golden-file round-trip tests. It walks
// the stream linearly the way the sequencer does, so malformed streams
// disassemble exactly as far as the sequencer itself could parse them.
func Disassemble(data []byte) (string, error) {
	var b strings.Builder
	pos := 0
	for pos < len(data) {
		delta := data[pos]
		pos++
		fmt.Fprintf(&b, "delay %d\n", delta)

		if pos >= len(data) {
			return b.String(), fmt.Errorf("asm: truncated stream: command byte missing after offset %d", pos-1)
		}
		cmd := data[pos]
		pos++
		op := cmd & 0xF0
		ch := cmd & 0x0F

		switch op {
		case song.OpStep:
			if pos+1 >= len(data) {
				return b.String(), fmt.Errorf("asm: truncated stream: step operand missing at offset %d", pos)
			}
			val := uint16(data[pos]) | uint16(data[pos+1])<<8
			pos += 2
			fmt.Fprintf(&b, "step %d %d\n", ch, val)
		case song.OpVolume:
			if pos >= len(data) {
				return b.String(), fmt.Errorf("asm: truncated stream: volume operand missing at offset %d", pos)
			}
			fmt.Fprintf(&b, "vol %d %d\n", ch, int8(data[pos]))
			pos++
		case song.OpDuty:
			if pos >= len(data) {
				return b.String(), fmt.Errorf("asm: truncated stream: duty operand missing at offset %d", pos)
			}
			fmt.Fprintf(&b, "duty %d %d\n", ch, data[pos])
			pos++
		case song.OpNoise:
			if pos >= len(data) {
				return b.String(), fmt.Errorf("asm: truncated stream: noise operand missing at offset %d", pos)
			}
			fmt.Fprintf(&b, "noise %d\n", data[pos])
			pos++
		case song.OpMark:
			b.WriteString("mark\n")
		case song.OpJump:
			b.WriteString("jump\n")
		default:
			fmt.Fprintf(&b, "; reserved op 0x%02X ch %d (no-op)\n", op, ch)
		}
	}
	return b.String(), nil
}
