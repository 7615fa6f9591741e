package ui

import (
	"encoding/binary"

	"github.com/fdischner/chipplayer/internal/player"
	"github.com/fdischner/chipplayer/internal/voice"
)

// playerStream implements io.Reader by pulling unsigned 8-bit mono PCM from
// a Player's sample pump, fixed at voice.CoreSampleHz, and linearly
// resampling it up or down to outHz (the audio.Context's configured rate)
// before widening to the signed 16-bit stereo little-endian frames ebiten
// requires. Resampling happens only at this host boundary: the core itself
// is never parameterized away from its fixed 40kHz, since bit-exact wave
// generation depends on it.
type playerStream struct {
	p     *player.Player
	outHz int

	ratio  float64 // core samples per output sample
	pos    float64 // fractional offset between prev and cur
	prev   int16
	cur    int16
	filled bool
}

func newPlayerStream(p *player.Player, outHz int) *playerStream {
	return &playerStream{
		p:     p,
		outHz: outHz,
		ratio: float64(voice.CoreSampleHz) / float64(outHz),
	}
}

// Read fills p one stereo frame (4 bytes) at a time. Read is called from
// ebiten's audio goroutine at whatever cadence the player's internal buffer
// needs refilling, so it must never block: PumpSample never blocks either;
// if the frame producer has fallen behind, it replays the stale buffer.
func (s *playerStream) Read(p []byte) (int, error) {
	if !s.filled {
		s.prev = widen(s.p.PumpSample())
		s.cur = widen(s.p.PumpSample())
		s.filled = true
	}

	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		for s.pos >= 1 {
			s.prev = s.cur
			s.cur = widen(s.p.PumpSample())
			s.pos -= 1
		}

		v := lerp(s.prev, s.cur, s.pos)
		binary.LittleEndian.PutUint16(p[i:], uint16(v))
		binary.LittleEndian.PutUint16(p[i+2:], uint16(v))
		s.pos += s.ratio
	}
	return n, nil
}

// widen converts one unsigned 8-bit core sample to signed 16-bit.
func widen(sample byte) int16 {
	return int16(int(sample)-128) << 8
}

// lerp linearly interpolates between two signed 16-bit samples at
// fractional position t in [0,1).
func lerp(a, b int16, t float64) int16 {
	return int16(float64(a) + (float64(b)-float64(a))*t)
}
