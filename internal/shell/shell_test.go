package shell

import (
	"testing"

	"github.com/fdischner/chipplayer/internal/library"
	"github.com/fdischner/chipplayer/internal/player"
	"github.com/fdischner/chipplayer/internal/song"
)

type fakeDisplay struct {
	lines [2]string
}

func (d *fakeDisplay) SetLine(row int, text string) {
	if row >= 0 && row < len(d.lines) {
		d.lines[row] = text
	}
}

func testLibrary() *library.Library {
	return library.New([]library.Entry{
		{Name: "Song One", Data: song.Bytes{0x00, song.OpMark}},
		{Name: "Song Two", Data: song.Bytes{0x00, song.OpMark}},
	})
}

func TestNewTransportLoadsCurrentSong(t *testing.T) {
	p := player.New()
	lib := testLibrary()
	disp := &fakeDisplay{}
	NewTransport(p, lib, disp)

	if disp.lines[0] != "Song One" {
		t.Fatalf("line 0 = %q, want %q", disp.lines[0], "Song One")
	}
	if disp.lines[1] != player.Stopped.String() {
		t.Fatalf("line 1 = %q, want %q", disp.lines[1], player.Stopped.String())
	}
}

func TestStartButtonTogglesPlayPause(t *testing.T) {
	p := player.New()
	tr := NewTransport(p, testLibrary(), &fakeDisplay{})

	tr.HandleButtons(ButtonStart)
	if p.State() != player.Playing {
		t.Fatalf("State() = %v, want Playing", p.State())
	}

	// Held button: no repeated action on the same press.
	tr.HandleButtons(ButtonStart)
	if p.State() != player.Playing {
		t.Fatalf("State() changed on a held button press: %v", p.State())
	}

	// Release then press again toggles to Paused.
	tr.HandleButtons(0)
	tr.HandleButtons(ButtonStart)
	if p.State() != player.Paused {
		t.Fatalf("State() = %v, want Paused", p.State())
	}
}

func TestSelectButtonStops(t *testing.T) {
	p := player.New()
	tr := NewTransport(p, testLibrary(), &fakeDisplay{})
	tr.HandleButtons(ButtonStart)
	tr.HandleButtons(0)
	tr.HandleButtons(ButtonSelect)
	if p.State() != player.Stopped {
		t.Fatalf("State() = %v, want Stopped", p.State())
	}
}

func TestLeftRightChangesSong(t *testing.T) {
	p := player.New()
	lib := testLibrary()
	disp := &fakeDisplay{}
	tr := NewTransport(p, lib, disp)

	tr.HandleButtons(ButtonRight)
	if disp.lines[0] != "Song Two" {
		t.Fatalf("after Right: line 0 = %q, want %q", disp.lines[0], "Song Two")
	}
	tr.HandleButtons(0)
	tr.HandleButtons(ButtonLeft)
	if disp.lines[0] != "Song One" {
		t.Fatalf("after Left: line 0 = %q, want %q", disp.lines[0], "Song One")
	}
}

func TestChangeSongPreservesPlayingState(t *testing.T) {
	p := player.New()
	lib := testLibrary()
	tr := NewTransport(p, lib, &fakeDisplay{})

	tr.HandleButtons(ButtonStart) // now Playing
	tr.HandleButtons(0)
	tr.HandleButtons(ButtonRight) // song change should resume playback
	if p.State() != player.Playing {
		t.Fatalf("State() = %v after song change while playing, want Playing", p.State())
	}
}
