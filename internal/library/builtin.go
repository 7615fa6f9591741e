package library

import (
	"embed"
	"fmt"

	"github.com/fdischner/chipplayer/internal/song"
	"github.com/fdischner/chipplayer/internal/song/asm"
)

//go:embed assets/*.chip
var builtinAssets embed.FS

// builtinSongs names the compiled-in demo songs, in display order. There is
// no ecosystem asset-bundling library in play here; go:embed is the
// standard-library mechanism for this and has no third-party equivalent.
var builtinSongs = []struct {
	name string
	file string
}{
	{"C Major Scale", "assets/scale.chip"},
	{"Bassline Demo", "assets/bassline.chip"},
}

// Builtin assembles the compiled-in demo songs into a ready Library. It only
// fails if the embedded DSL source itself is malformed, which would be a
// packaging bug rather than a runtime condition.
func Builtin() (*Library, error) {
	entries := make([]Entry, 0, len(builtinSongs))
	for _, s := range builtinSongs {
		src, err := builtinAssets.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("library: read %s: %w", s.file, err)
		}
		data, err := asm.Assemble(string(src))
		if err != nil {
			return nil, fmt.Errorf("library: assemble %s: %w", s.file, err)
		}
		entries = append(entries, Entry{Name: s.name, Data: song.Bytes(data)})
	}
	return New(entries), nil
}
