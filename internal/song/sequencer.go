package song

import "github.com/fdischner/chipplayer/internal/voice"

// Command high nibbles, spec §6. Exported so internal/song/asm can share
// the same dispatch table when assembling/disassembling.
const (
	OpStep   = 0x00
	OpVolume = 0x10
	OpDuty   = 0x30
	OpNoise  = 0x40
	OpMark   = 0xE0
	OpJump   = 0xF0
)

// RunFrame consumes every event scheduled at clock.Frame from r starting at
// cur.Pos, mutating v and cur, per spec §4.3. It stops at the first event
// whose delta places it in a future frame. last_event_frame is set to the
// current frame after each event consumed; a frame with no events leaves it
// unchanged, matching playback_process_frame's loop.
func RunFrame(r Reader, cur *Cursor, clock *voice.FrameClock, v *voice.State) {
	for {
		delta := r.ReadByteAt(cur.Pos)
		if uint16(delta)+clock.LastEventFrame != clock.Frame {
			break
		}
		cur.Pos++

		cmd := r.ReadByteAt(cur.Pos)
		cur.Pos++
		op := cmd & 0xF0
		ch := cmd & 0x0F

		switch op {
		case OpStep:
			lo := r.ReadByteAt(cur.Pos)
			cur.Pos++
			hi := r.ReadByteAt(cur.Pos)
			cur.Pos++
			v.Step[channelIndex(ch)] = uint16(lo) | uint16(hi)<<8
		case OpVolume:
			val := r.ReadByteAt(cur.Pos)
			cur.Pos++
			v.Volume[channelIndex(ch)] = int8(val)
		case OpDuty:
			val := r.ReadByteAt(cur.Pos)
			cur.Pos++
			if ch < 2 {
				v.Duty[ch] = val
			}
		case OpNoise:
			val := r.ReadByteAt(cur.Pos)
			cur.Pos++
			v.LFSRMode = val != 0
		case OpMark:
			cur.Repeat = cur.Pos
		case OpJump:
			cur.Pos = cur.Repeat
		default:
			// reserved, no operand: no-op per spec §6/§7.
		}

		clock.LastEventFrame = clock.Frame
	}
}

// channelIndex clamps an arbitrary nibble into the 0..3 range State's
// per-channel arrays are sized for. Spec §7: "the core does not validate"
// — out-of-range nibbles write to whichever slot the mask selects rather
// than being rejected.
func channelIndex(ch byte) byte {
	return ch & 0x03
}
