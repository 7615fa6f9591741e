// Package player implements the transport controller of spec §4.4: the
// single encapsulated value that owns voice state, song cursor, and the
// double buffer, and paces frame production against the sample pump.
package player

import (
	"github.com/fdischner/chipplayer/internal/song"
	"github.com/fdischner/chipplayer/internal/synth"
	"github.com/fdischner/chipplayer/internal/voice"
)

// State is the transport's play/pause/stop state, spec §3.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Player is the sole owner of all mutable playback state: voices, the song
// cursor, the frame clock, and the double buffer the pump reads from. There
// is never more than one instance in a running program (spec §9).
type Player struct {
	buf   *voice.DoubleBuffer
	voice voice.State
	clock voice.FrameClock
	cur   song.Cursor
	data  song.Reader
	state State
}

// New returns a Player with a silent double buffer and stopped transport.
func New() *Player {
	p := &Player{buf: voice.NewDoubleBuffer()}
	p.voice.Reset()
	return p
}

// Load points the player at a new song without changing PlayState or voice
// state (spec §4.4). Callers wanting a clean slate call Stop first.
func (p *Player) Load(data song.Reader, addr uint32) {
	p.data = data
	p.cur.Load(addr)
}

// Play sets the transport to Playing.
func (p *Player) Play() { p.state = Playing }

// Pause sets the transport to Paused, retaining voice state and cursor so
// playback resumes smoothly (spec §4.4's documented-intentional behavior).
func (p *Player) Pause() { p.state = Paused }

// Stop resets all playback state to power-on defaults: voices silenced,
// LFSR reseeded, frame clock zeroed, song cursor rewound to its start.
func (p *Player) Stop() {
	p.state = Stopped
	p.voice.Reset()
	p.clock.Reset()
	p.cur.Reset()
}

// State returns the current transport state.
func (p *Player) State() State { return p.state }

// MissedFrames returns the number of buffer swaps observed with a stale
// buffer — the optional diagnostic counter of spec §7.
func (p *Player) MissedFrames() uint32 { return p.buf.MissedFrames() }

// WaitVblank blocks until the sample pump raises the vblank flag.
func (p *Player) WaitVblank() { p.buf.WaitVblank() }

// ProcessFrame is the per-frame transport work of spec §4.4: fill the
// inactive buffer with silence unless actively playing a loaded song,
// otherwise run the sequencer for this frame and synthesize into it.
func (p *Player) ProcessFrame() {
	out := p.buf.Inactive()

	if p.state != Playing || p.cur.Start == 0 || p.cur.Pos == 0 {
		out.Silence()
		p.buf.MarkRefilled()
		return
	}

	song.RunFrame(p.data, &p.cur, &p.clock, &p.voice)
	synth.Frame(&p.voice, out)
	p.clock.Frame++
	p.buf.MarkRefilled()
}

// PumpSample is the sample pump of spec §4.1: call once per sample tick
// (from the host audio backend's callback) to emit the next output byte.
func (p *Player) PumpSample() byte {
	return p.buf.PumpSample()
}

// Read implements io.Reader, pulling PCM samples one-for-one into p from the
// pump, so a Player can be wired directly into a host audio stream.
func (p *Player) Read(out []byte) (int, error) {
	for i := range out {
		out[i] = p.PumpSample()
	}
	return len(out), nil
}
