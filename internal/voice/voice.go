// Package voice holds the synthesizer's mutable register file and the
// frame-aligned double buffer the sample pump and frame producer hand off
// through.
package voice

// CoreSampleHz is the synthesizer's fixed internal sample rate. Bit-exact
// wave generation depends on it; it is never parameterized by the host.
const CoreSampleHz = 40000

// SamplesPerFrame is 40000Hz / 60Hz rounded up to a whole sample.
const SamplesPerFrame = 667

// Silence is the unsigned-8-bit midpoint: zero signal.
const Silence = 0x80

// Channel indices into State's per-voice arrays.
const (
	ChPulseA = iota
	ChPulseB
	ChTriangle
	ChNoise
	numChannels = 4
)

// State is the per-channel oscillator state shared by the synthesizer and
// the frame sequencer. Only the two pulse channels have a Duty entry.
type State struct {
	Phase  [numChannels]uint16
	Step   [numChannels]uint16
	Volume [numChannels]int8
	Duty   [2]uint8 // pulse A, pulse B only

	LFSR     uint16
	LFSRMode bool // false = short tap (bit 1), true = long tap (bit 6)
}

// Reset restores power-on/stop defaults: all voices silent, duty centered,
// LFSR seeded to 1 (never 0, so it can never lock up).
func (s *State) Reset() {
	*s = State{}
	s.Duty[0] = 0x80
	s.Duty[1] = 0x80
	s.LFSR = 1
}

// FrameClock tracks the sequencer's notion of "now" and when the last event
// fired, resolving the song format's relative delta-time encoding.
type FrameClock struct {
	Frame          uint16
	LastEventFrame uint16
}

// Reset zeroes the clock, as happens on stop() and on loading a new song.
func (c *FrameClock) Reset() {
	c.Frame = 0
	c.LastEventFrame = 0
}

// FrameBuffer holds one frame's worth of PCM samples.
type FrameBuffer [SamplesPerFrame]byte

// Silence fills the buffer with the midpoint sample.
func (b *FrameBuffer) Silence() {
	for i := range b {
		b[i] = Silence
	}
}
