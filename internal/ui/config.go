// Package ui is the ebiten front end: a tiny on-screen transport (song name,
// play state) driven by keyboard input, standing in for the original
// hardware's LCD + button panel.
package ui

// Config holds window/audio settings, filled with reasonable defaults by
// Defaults before use.
type Config struct {
	Title    string // window title
	Scale    int    // integer upscaling factor for the status window
	SampleHz int    // audio.Context output rate; the core stays fixed at voice.CoreSampleHz and is resampled to this at the host boundary
	BufferMs int    // ebiten audio player buffer size, in milliseconds
}

// Defaults fills unset fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "chipplayer"
	}
	if c.Scale <= 0 {
		c.Scale = 4
	}
	if c.SampleHz <= 0 {
		c.SampleHz = 40000
	}
	if c.BufferMs <= 0 {
		c.BufferMs = 40
	}
}
