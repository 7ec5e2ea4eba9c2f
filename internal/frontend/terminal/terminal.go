// Package terminal renders a session with ANSI escape sequences and reads
// the keypad from a raw mode terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// DefaultHoldFrames is the number of frames a key stays pressed after its
// last input byte. Terminals report no key releases and repeat held keys.
const DefaultHoldFrames = 8

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrNotTerminal is returned if the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Frontend runs a session in the terminal.
type Frontend struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer
	hold   int
}

// New returns a frontend that reads stdin and writes to stdout.
func New(logger *log.Logger) *Frontend {
	return &Frontend{
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
		hold:   DefaultHoldFrames,
	}
}

// Run switches the terminal to raw mode and runs the session at the frame
// rate until it halts, Escape or Ctrl+C is pressed or the context is
// canceled.
func (f *Frontend) Run(ctx context.Context, session *runner.Session) error {
	fd := int(f.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	if width, height, err := term.GetSize(fd); err == nil {
		w, h := session.Machine().Resolution()
		if width < w || height < h/2 {
			f.logger.Warn("Terminal is smaller than the display",
				log.Int("columns", width), log.Int("rows", height))
		}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(f.out, showCursor)
		_ = term.Restore(fd, oldState)
	}()

	input := make(chan byte, 64)
	go readInput(f.in, input)

	_, _ = io.WriteString(f.out, clearScreen+hideCursor)
	return f.loop(ctx, session, input)
}

func (f *Frontend) loop(ctx context.Context, session *runner.Session, input <-chan byte) error {
	ticker := time.NewTicker(time.Second / runner.FrameRate)
	defer ticker.Stop()

	keys := newKeyHold(f.hold)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if quit := f.handleInput(session, keys, input); quit {
			return nil
		}
		for _, key := range keys.tick() {
			_ = session.SetKey(key, false)
		}

		if err := session.Step(); err != nil {
			return session.Err()
		}
		if frame, ok := session.Frame(); ok {
			if _, err := io.WriteString(f.out, render(frame)); err != nil {
				return fmt.Errorf("writing frame: %w", err)
			}
		}
	}
}

// handleInput drains pending input bytes and returns true if the user asked
// to quit.
func (f *Frontend) handleInput(session *runner.Session, keys *keyHold, input <-chan byte) bool {
	for {
		select {
		case b, ok := <-input:
			if !ok || b == keyCtrlC || b == keyEscape {
				return true
			}
			key, found := frontend.KeyForRune(rune(b))
			if !found {
				continue
			}
			keys.press(key)
			_ = session.SetKey(key, true)
		default:
			return false
		}
	}
}

// readInput forwards bytes from r until it fails. The channel is closed on
// end of input.
func readInput(r io.Reader, input chan<- byte) {
	defer close(input)
	reader := bufio.NewReader(r)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		input <- b
	}
}

// render returns the escape sequences that redraw the frame from the top
// left corner. Raw mode needs explicit carriage returns.
func render(frame chip8.Frame) string {
	text := frontend.Text(frame)
	return cursorHome + strings.ReplaceAll(text, "\n", "\r\n")
}

// keyHold releases keys a number of frames after their last press.
type keyHold struct {
	frames    int
	remaining [chip8.KeyCount]int
}

func newKeyHold(frames int) *keyHold {
	return &keyHold{frames: frames}
}

func (k *keyHold) press(key int) {
	k.remaining[key] = k.frames
}

// tick advances one frame and returns the keys to release.
func (k *keyHold) tick() []int {
	var released []int
	for key, left := range k.remaining {
		if left == 0 {
			continue
		}
		left--
		k.remaining[key] = left
		if left == 0 {
			released = append(released, key)
		}
	}
	return released
}
