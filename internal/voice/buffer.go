package voice

import (
	"runtime"
	"sync/atomic"
)

// DoubleBuffer implements the frame-aligned handoff of spec §3/§5: the pump
// is the sole reader of buffers[active] and the sole writer of active/vblank;
// the frame producer is the sole writer of buffers[1-active] and the sole
// reader of vblank. active and vblank are atomics so a single-word store in
// the pump is visible to the producer's busy-poll without a lock, mirroring
// the AVR original's reliance on single-byte-write atomicity from an ISR.
type DoubleBuffer struct {
	buffers  [2]FrameBuffer
	active   atomic.Int32
	vblank   atomic.Bool
	cursor   int
	missed   atomic.Uint32
	refilled atomic.Bool // set by the frame producer once Inactive() is filled
}

// NewDoubleBuffer returns a buffer initialized to silence, as required at
// boot.
func NewDoubleBuffer() *DoubleBuffer {
	d := &DoubleBuffer{}
	d.buffers[0].Silence()
	d.buffers[1].Silence()
	d.refilled.Store(true)
	return d
}

// Inactive returns the buffer the frame producer may freely write this
// frame. Must only be called from the foreground / frame-producer side.
func (d *DoubleBuffer) Inactive() *FrameBuffer {
	return &d.buffers[1-d.active.Load()]
}

// MarkRefilled tells the pump the inactive buffer has been filled for this
// frame. Called by the frame producer once per frame after it finishes
// writing. Used only for the optional missed-deadline diagnostic.
func (d *DoubleBuffer) MarkRefilled() {
	d.refilled.Store(true)
}

// PumpSample emits the next sample from the active buffer, advances the
// pump's cursor, and swaps buffers (raising vblank) when the frame is
// exhausted. It never allocates and never blocks, matching spec §4.1's ISR
// contract. It returns the emitted sample.
func (d *DoubleBuffer) PumpSample() byte {
	buf := &d.buffers[d.active.Load()]
	s := buf[d.cursor]
	d.cursor++

	if d.cursor == SamplesPerFrame {
		d.active.Store(1 - d.active.Load())
		d.cursor = 0
		if !d.refilled.Swap(false) {
			// The buffer we just started reading from was never refilled
			// since the last swap: a missed frame deadline, §7.
			d.missed.Add(1)
		}
		d.vblank.Store(true)
	} else {
		d.vblank.Store(false)
	}
	return s
}

// WaitVblank busy-polls for the pump's rising edge, as spec §4.4/§5 require.
// The flag is cleared by the pump itself on the first sample of the next
// frame, so a subsequent call naturally waits for the following swap.
func (d *DoubleBuffer) WaitVblank() {
	for !d.vblank.Load() {
		runtime.Gosched()
	}
}

// MissedFrames returns the number of buffer swaps observed with a stale
// (not-yet-refilled) buffer. Optional diagnostic per spec §7; never
// consulted by the core itself.
func (d *DoubleBuffer) MissedFrames() uint32 {
	return d.missed.Load()
}
