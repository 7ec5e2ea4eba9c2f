//go:build !headless

// Package ebitenui runs a session in a window.
package ebitenui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

const statusBarHeight = 16

// hostKeys maps the runes of the keypad layout to ebiten keys.
var hostKeys = map[rune]ebiten.Key{
	'1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// Frontend presents a session in a window, the keypad is mapped to the left
// 4x4 block of the keyboard. F1 toggles the status bar, Escape closes the
// window.
type Frontend struct {
	logger *log.Logger
	title  string
	scale  int

	ctx     context.Context
	session *runner.Session

	screen     *ebiten.Image
	pixels     []byte
	frame      chip8.Frame
	showStatus bool
}

// New returns a window frontend with the given pixel scale.
func New(logger *log.Logger, title string, scale int) *Frontend {
	return &Frontend{
		logger:     logger,
		title:      title,
		scale:      max(scale, 1),
		showStatus: true,
	}
}

// Run opens the window and blocks until it is closed, the session halts or
// the context is canceled.
func (f *Frontend) Run(ctx context.Context, session *runner.Session) error {
	f.ctx = ctx
	f.session = session

	w, h := f.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(f.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(runner.FrameRate)

	err := ebiten.RunGame(f)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return session.Err()
}

// Update implements ebiten.Game and runs one frame of the session.
func (f *Frontend) Update() error {
	if f.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		f.showStatus = !f.showStatus
	}

	for _, entry := range frontend.Layout {
		pressed := ebiten.IsKeyPressed(hostKeys[entry.Rune])
		if err := f.session.SetKey(entry.Key, pressed); err != nil {
			return err
		}
	}

	if err := f.session.Step(); err != nil {
		return ebiten.Termination
	}

	if frame, ok := f.session.Frame(); ok {
		f.frame = frame
		f.updateScreen()
	}
	return nil
}

// updateScreen converts the last frame into the screen image. The image is
// recreated when the resolution changes.
func (f *Frontend) updateScreen() {
	size := f.frame.Width * f.frame.Height * 4
	if f.screen == nil || f.screen.Bounds().Dx() != f.frame.Width {
		f.screen = ebiten.NewImage(f.frame.Width, f.frame.Height)
		f.pixels = make([]byte, size)
	}
	frontend.RGBA(f.frame, f.pixels)
	f.screen.WritePixels(f.pixels)
}

// Draw implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(frontend.ColorOff)
	if f.screen != nil {
		factor := float64(chip8.LowResWidth*f.scale) / float64(f.frame.Width)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(factor, factor)
		screen.DrawImage(f.screen, op)
	}
	if f.showStatus {
		f.drawStatusBar(screen)
	}
}

func (f *Frontend) drawStatusBar(screen *ebiten.Image) {
	m := f.session.Machine()
	status := fmt.Sprintf("%s  PC:%04X  I:%04X  DT:%02X  ST:%02X  FPS:%.0f",
		m.Variant(), m.PC(), m.Index(), m.DelayTimer(), m.SoundTimer(), ebiten.ActualFPS())

	y := chip8.LowResHeight * f.scale
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 4, y+statusBarHeight-4, color.White)
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	width := chip8.LowResWidth * f.scale
	height := chip8.LowResHeight * f.scale
	if f.showStatus {
		height += statusBarHeight
	}
	return width, height
}
