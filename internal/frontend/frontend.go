// Package frontend contains the shared parts of the presentation layers:
// the keyboard layout and frame rendering helpers.
package frontend

import (
	"context"
	"image/color"
	"strings"
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Frontend presents a session and feeds it with input until the context is
// canceled, the window is closed or the session halts.
type Frontend interface {
	Run(ctx context.Context, session *runner.Session) error
}

// Default colors of lit and unlit pixels.
var (
	ColorOn  = color.RGBA{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF}
	ColorOff = color.RGBA{R: 0x08, G: 0x18, B: 0x20, A: 0xFF}
)

// Layout lists the host keys of the keypad row by row. The left 4x4 block
// of a QWERTY keyboard is mapped to the COSMAC VIP keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var Layout = [chip8.KeyCount]struct {
	Rune rune
	Key  int
}{
	{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
	{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xD},
	{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xE},
	{'z', 0xA}, {'x', 0x0}, {'c', 0xB}, {'v', 0xF},
}

// KeyForRune returns the keypad index of a host key.
func KeyForRune(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for _, entry := range Layout {
		if entry.Rune == r {
			return entry.Key, true
		}
	}
	return 0, false
}

// RGBA renders the frame with the scroll offset applied into dst, which
// must hold Width*Height*4 bytes.
func RGBA(frame chip8.Frame, dst []byte) {
	for y := range frame.Height {
		for x := range frame.Width {
			c := ColorOff
			if frame.At(x, y) {
				c = ColorOn
			}
			i := (y*frame.Width + x) * 4
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
		}
	}
}

// Text renders the frame with unicode half blocks, two pixel rows per text
// line.
func Text(frame chip8.Frame) string {
	var sb strings.Builder
	sb.Grow((frame.Width*3 + 1) * (frame.Height + 1) / 2)

	for y := 0; y < frame.Height; y += 2 {
		for x := range frame.Width {
			top := frame.At(x, y)
			bottom := y+1 < frame.Height && frame.At(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
