// Command chipplayer is a playable front end for the synthesizer core: it
// loads the built-in song library, opens a window, and drives playback from
// the keyboard.
package main

import (
	"flag"
	"log"

	"github.com/fdischner/chipplayer/internal/library"
	"github.com/fdischner/chipplayer/internal/player"
	"github.com/fdischner/chipplayer/internal/ui"
)

func parseFlags() ui.Config {
	var cfg ui.Config
	flag.StringVar(&cfg.Title, "title", "chipplayer", "window title")
	flag.IntVar(&cfg.Scale, "scale", 4, "window scale")
	flag.IntVar(&cfg.SampleHz, "samplerate", 40000, "audio output sample rate")
	flag.IntVar(&cfg.BufferMs, "buffer", 40, "audio player buffer size, in milliseconds")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	lib, err := library.Builtin()
	if err != nil {
		log.Fatalf("chipplayer: loading built-in songs: %v", err)
	}

	p := player.New()
	app := ui.NewApp(cfg, p, lib)
	if err := app.Run(); err != nil {
		log.Fatalf("chipplayer: %v", err)
	}
}
