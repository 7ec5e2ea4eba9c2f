package frontend

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r    rune
		key  int
		want bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'Q', 0x4, true},
		{'x', 0x0, true},
		{'v', 0xF, true},
		{'p', 0, false},
	}

	for _, tt := range tests {
		key, ok := KeyForRune(tt.r)
		assert.Equal(t, tt.want, ok)
		assert.Equal(t, tt.key, key)
	}

	seen := map[int]bool{}
	for _, entry := range Layout {
		seen[entry.Key] = true
	}
	assert.Equal(t, chip8.KeyCount, len(seen))
}

func testFrame() chip8.Frame {
	frame := chip8.Frame{
		Width:  4,
		Height: 3,
		Pixels: make([]bool, 12),
	}
	frame.Pixels[0] = true  // (0,0)
	frame.Pixels[5] = true  // (1,1)
	frame.Pixels[4] = true  // (0,1)
	frame.Pixels[11] = true // (3,2)
	return frame
}

func TestText(t *testing.T) {
	lines := strings.Split(Text(testFrame()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "█▄  ", lines[0])
	assert.Equal(t, "   ▀", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestRGBA(t *testing.T) {
	frame := testFrame()
	frame.ScrollX = 1

	dst := make([]byte, frame.Width*frame.Height*4)
	RGBA(frame, dst)

	// the pixel at (0,0) is shown at (1,0)
	assert.Equal(t, ColorOff.R, dst[0])
	assert.Equal(t, ColorOn.R, dst[4])
	assert.Equal(t, ColorOn.A, dst[7])
}
