// Package shell is the thin outer-shell glue of spec §4.5/§6's "Control
// surface": it translates abstract button presses into Player/Library calls
// and renders a two-line transport status, standing in for the original
// firmware's controller.c/lcd.c/main.c main loop. None of this is part of
// the audio core; it only calls the core's public operations.
package shell

import (
	"github.com/fdischner/chipplayer/internal/library"
	"github.com/fdischner/chipplayer/internal/player"
	"github.com/fdischner/chipplayer/internal/song"
)

// Button mirrors the original NES controller's bitmask, per
// original_source/controller.h. All eight buttons are named, but only
// Start/Select/Left/Right trigger actions; Up/Down/A/B are accepted and
// ignored, as in main.c.
type Button uint8

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Display is the minimal interface a character LCD driver (or a terminal
// stand-in) must satisfy. Deliberately ignorant of any particular display's
// line-wrap addressing quirks (spec §9's Open Question leaves that to
// whatever concrete Display is plugged in).
type Display interface {
	SetLine(row int, text string)
}

// Transport wires a Player and a Library to button input, mirroring
// main.c's edge-triggered button handling: only newly pressed buttons (not
// held ones) trigger an action.
type Transport struct {
	Player  *player.Player
	Library *library.Library
	Display Display

	prevButtons Button
}

// NewTransport loads the library's current song into p (without starting
// playback) and renders the initial "Stopped" status, mirroring main()'s
// startup sequence.
func NewTransport(p *player.Player, lib *library.Library, disp Display) *Transport {
	t := &Transport{Player: p, Library: lib, Display: disp}
	data, addr := lib.Current()
	p.Load(data, addr)
	t.renderName()
	t.renderState()
	return t
}

// HandleButtons processes one controller read using main.c's
// `changed & buttons` edge detection (buttons held since the last call are
// ignored). At most one action fires per call: if several buttons are newly
// pressed, Start wins over Select, Select over Left, and Left over Right.
func (t *Transport) HandleButtons(buttons Button) {
	pressed := (buttons ^ t.prevButtons) & buttons
	t.prevButtons = buttons

	switch {
	case pressed&ButtonStart != 0:
		if t.Player.State() != player.Playing {
			t.Player.Play()
		} else {
			t.Player.Pause()
		}
		t.renderState()
	case pressed&ButtonSelect != 0:
		t.Player.Stop()
		t.renderState()
	case pressed&ButtonLeft != 0:
		t.changeSong(t.Library.Prev)
	case pressed&ButtonRight != 0:
		t.changeSong(t.Library.Next)
	}
}

// changeSong stops playback, switches song, reloads it, and resumes
// playback only if it was already playing — mirroring main.c's
// prev_song/next_song handlers, which preserve the playing/stopped state
// across a song change.
func (t *Transport) changeSong(advance func() (song.Bytes, uint32)) {
	wasPlaying := t.Player.State() == player.Playing
	t.Player.Stop()
	data, addr := advance()
	t.Player.Load(data, addr)
	t.renderName()
	if wasPlaying {
		t.Player.Play()
	}
	t.renderState()
}

func (t *Transport) renderState() {
	if t.Display != nil {
		t.Display.SetLine(1, t.Player.State().String())
	}
}

func (t *Transport) renderName() {
	if t.Display != nil {
		t.Display.SetLine(0, t.Library.Name())
	}
}
