package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/fdischner/chipplayer/internal/library"
	"github.com/fdischner/chipplayer/internal/player"
	"github.com/fdischner/chipplayer/internal/shell"
)

// App is the ebiten.Game implementation: a window that drives the transport
// from the keyboard and shows the two status lines shell.Transport renders.
type App struct {
	cfg       Config
	player    *player.Player
	transport *shell.Transport
	lines     [2]string

	audioCtx    *audio.Context
	audioPlayer *audio.Player
}

// NewApp wires a Player, a Library and the keyboard into a runnable ebiten
// game. Audio context creation is deferred to the first Update call, as the
// teacher's App does, to avoid blocking window creation.
func NewApp(cfg Config, p *player.Player, lib *library.Library) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(160*cfg.Scale, 40*cfg.Scale)

	a := &App{cfg: cfg, player: p}
	a.transport = shell.NewTransport(p, lib, a)
	return a
}

// SetLine implements shell.Display.
func (a *App) SetLine(row int, text string) {
	if row >= 0 && row < len(a.lines) {
		a.lines[row] = text
	}
}

func (a *App) Update() error {
	if a.audioPlayer == nil {
		a.audioCtx = audio.NewContext(a.cfg.SampleHz)
		src := newPlayerStream(a.player, a.cfg.SampleHz)
		if p, err := a.audioCtx.NewPlayer(src); err == nil {
			p.SetBufferSize(durationMs(a.cfg.BufferMs))
			p.Play()
			a.audioPlayer = p
		}
	}

	// ebiten calls Update 60 times per second by default, the same cadence
	// the original hardware drove frame production from vblank; one
	// ProcessFrame per tick keeps the double buffer fed without a separate
	// pacing goroutine.
	a.player.ProcessFrame()

	var buttons shell.Button
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		buttons |= shell.ButtonStart
	}
	if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
		buttons |= shell.ButtonSelect
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		buttons |= shell.ButtonLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		buttons |= shell.ButtonRight
	}
	a.transport.HandleButtons(buttons)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, a.lines[0], 4, 4)
	ebitenutil.DebugPrintAt(screen, a.lines[1], 4, 18)
	ebitenutil.DebugPrintAt(screen, "Space: play/pause  Backspace: stop  Left/Right: song", 4, 32)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 160 * a.cfg.Scale, 40 * a.cfg.Scale
}

// Run starts the ebiten game loop. It blocks until the window closes.
func (a *App) Run() error { return ebiten.RunGame(a) }

func durationMs(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }
