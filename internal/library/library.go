// Package library implements the song directory of spec §4.5: a built-in
// table of named songs with cyclic navigation, standing in for the original
// firmware's songs.c.
package library

import "github.com/fdischner/chipplayer/internal/song"

// Entry is one song: its byte-coded data and display name.
type Entry struct {
	Name string
	Data song.Bytes
}

// Library is a fixed, cyclic song directory.
type Library struct {
	entries []Entry
	idx     int
}

// New returns a Library over entries, starting at the first song. Panics if
// entries is empty — a player with no songs is a configuration error, not a
// runtime condition the core needs to tolerate.
func New(entries []Entry) *Library {
	if len(entries) == 0 {
		panic("library: at least one song is required")
	}
	return &Library{entries: entries}
}

// Current returns the currently selected song's data and its opaque
// "song_addr" (spec §4.5). Each entry is its own address space starting at
// 1 (see song.Bytes); the address is always 1 here since every song's data
// begins at the start of its own slice.
func (l *Library) Current() (song.Bytes, uint32) {
	return l.entries[l.idx].Data, 1
}

// Name returns the currently selected song's display name.
func (l *Library) Name() string {
	return l.entries[l.idx].Name
}

// Next cyclically advances to the next song and returns its data/address.
func (l *Library) Next() (song.Bytes, uint32) {
	l.idx = (l.idx + 1) % len(l.entries)
	return l.Current()
}

// Prev cyclically moves to the previous song and returns its data/address.
func (l *Library) Prev() (song.Bytes, uint32) {
	l.idx = (l.idx - 1 + len(l.entries)) % len(l.entries)
	return l.Current()
}
