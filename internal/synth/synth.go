// Package synth implements the four-voice fixed-point synthesizer of spec
// §4.2: two pulse channels, a triangle, and an LFSR noise channel, mixed
// into a single unsigned 8-bit sample.
//
// Parts of this algorithm — the phase-accumulator pulse/triangle generation
// and the 15-bit Galois-style noise LFSR — follow the original AVR firmware
// bit-for-bit; see original_source/playback.c's calculate_frame.
package synth

import "github.com/fdischner/chipplayer/internal/voice"

// Sample advances all four voices by one sample tick and returns the mixed,
// unsigned 8-bit output. It only mutates v; it never touches song or buffer
// state.
func Sample(v *voice.State) byte {
	var s int8

	// Pulse A: +volume below duty threshold, -volume at/above.
	v.Phase[voice.ChPulseA] += v.Step[voice.ChPulseA]
	qa := byte(v.Phase[voice.ChPulseA]>>8) & 0xE0
	pa := v.Volume[voice.ChPulseA]
	if qa >= v.Duty[0] {
		pa = -pa
	}
	s += pa

	// Pulse B: sign convention intentionally inverted from pulse A — this
	// mirrors the original firmware's observed (possibly accidental)
	// asymmetry and is preserved bit-exactly rather than "fixed".
	v.Phase[voice.ChPulseB] += v.Step[voice.ChPulseB]
	qb := byte(v.Phase[voice.ChPulseB]>>8) & 0xE0
	if qb >= v.Duty[1] {
		s += v.Volume[voice.ChPulseB]
	} else {
		s -= v.Volume[voice.ChPulseB]
	}

	// Triangle: phase freezes at zero volume to avoid pops; otherwise ramps
	// 0->64->0 rather than sawtoothing, by negating the upper half.
	if v.Volume[voice.ChTriangle] != 0 {
		v.Phase[voice.ChTriangle] += v.Step[voice.ChTriangle]
	}
	t := int8(int16(v.Phase[voice.ChTriangle]) >> 9)
	if t < 0 {
		t = -t
	}
	s += t

	// Noise: LSB of the LFSR selects sign; phase freezes at zero volume.
	if v.Volume[voice.ChNoise] != 0 {
		v.Phase[voice.ChNoise] += v.Step[voice.ChNoise]
	}
	if v.LFSR&1 != 0 {
		s -= v.Volume[voice.ChNoise]
	} else {
		s += v.Volume[voice.ChNoise]
	}
	if v.Phase[voice.ChNoise]&0x8000 != 0 {
		clockLFSR(v)
		v.Phase[voice.ChNoise] ^= 0x8000
	}

	// -32 compensates for the triangle's non-zero average (it never goes
	// negative), 128 recenters to the unsigned midpoint.
	return byte(int(s) + 128 - 32)
}

// clockLFSR advances the 15-bit noise LFSR by one step. Seeded at 1 and
// never zeroed, so it can never lock up (spec §4.2, invariant 7 in §8).
func clockLFSR(v *voice.State) {
	tap1 := v.LFSR & 1
	var tap2 uint16
	if v.LFSRMode {
		tap2 = (v.LFSR >> 6) & 1
	} else {
		tap2 = (v.LFSR >> 1) & 1
	}
	v.LFSR >>= 1
	if tap1^tap2 != 0 {
		v.LFSR |= 1 << 14
	}
}

// Frame fills out with one full frame's worth of samples, advancing voice
// state sample-by-sample.
func Frame(v *voice.State, out *voice.FrameBuffer) {
	for i := range out {
		out[i] = Sample(v)
	}
}
