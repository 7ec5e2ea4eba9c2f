package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// drawGlyphZero draws the font glyph 0 at the origin.
var drawGlyphZero = []uint16{
	0x6000, // LD V0, $00
	0xA000, // LD I, $000
	0xD005, // DRW V0, V0, $5
}

func TestDisplay_Clear(t *testing.T) {
	m := newTestMachine(t, append(drawGlyphZero, 0x00E0)...)
	steps(t, m, 4)

	frame := takeFrame(t, m)
	assert.Equal(t, 0, countPixels(frame))
	assert.Equal(t, 0, frame.RowStart)
	assert.Equal(t, LowResHeight-1, frame.RowEnd)
}

func TestDisplay_TakeFrame(t *testing.T) {
	m := newTestMachine(t, append(drawGlyphZero, 0x1206)...)
	steps(t, m, 3)

	frame, ok := m.TakeFrame()
	assert.True(t, ok)
	assert.Equal(t, 14, countPixels(frame))

	_, ok = m.TakeFrame()
	assert.False(t, ok)

	// the frame is a copy
	frame.Pixels[1] = false
	assert.True(t, m.display.pixels[1])

	steps(t, m, 1)
	_, ok = m.TakeFrame()
	assert.False(t, ok, "a jump must not request a redraw")
}

func TestDisplay_DirtyRows(t *testing.T) {
	m := newTestMachine(t,
		0x6000, // LD V0, 0
		0x610A, // LD V1, 10
		0xA000, // LD I, $000
		0xD015, // DRW V0, V1, $5
	)
	steps(t, m, 4)

	frame := takeFrame(t, m)
	assert.Equal(t, 10, frame.RowStart)
	assert.Equal(t, 14, frame.RowEnd)
}

func TestDisplay_ScrollVertical(t *testing.T) {
	t.Run("down", func(t *testing.T) {
		m := newTestMachine(t, append(drawGlyphZero, 0x00C2)...)
		steps(t, m, 4)

		frame := takeFrame(t, m)
		assert.Equal(t, 14, countPixels(frame))
		assert.False(t, frame.At(0, 0))
		assert.False(t, frame.At(0, 1))
		assert.True(t, frame.At(0, 2))
		assert.True(t, frame.At(3, 6))
		assert.Equal(t, 0, frame.RowStart)
		assert.Equal(t, LowResHeight-1, frame.RowEnd)
	})

	t.Run("up", func(t *testing.T) {
		m := newTestMachine(t, append(drawGlyphZero, 0x00D1)...)
		steps(t, m, 4)

		frame := takeFrame(t, m)
		// the top row is scrolled out
		assert.Equal(t, 10, countPixels(frame))
		assert.True(t, frame.At(0, 0))
		assert.False(t, frame.At(1, 0))
		assert.True(t, frame.At(1, 3))
		assert.False(t, frame.At(0, 4))
	})

	t.Run("down past the bottom clears", func(t *testing.T) {
		m := newTestMachine(t,
			0x6000, // LD V0, 0
			0x611E, // LD V1, 30
			0xA000, // LD I, $000
			0xD015, // DRW V0, V1, $5
			0x00CF, // SCD $F
		)
		steps(t, m, 5)

		frame := takeFrame(t, m)
		// rows 0-2 of the glyph wrapped to the top and now sit at 15-17
		assert.Equal(t, 8, countPixels(frame))
		assert.True(t, frame.At(0, 15))
		assert.False(t, frame.At(0, 30))
	})
}

func TestDisplay_ScrollHorizontal(t *testing.T) {
	t.Run("right", func(t *testing.T) {
		m := newTestMachine(t, append(drawGlyphZero, 0x00FB)...)
		steps(t, m, 4)

		frame := takeFrame(t, m)
		assert.Equal(t, horizontalScrollStep, frame.ScrollX)
		assert.False(t, frame.At(0, 0))
		assert.True(t, frame.At(4, 0))
		assert.True(t, frame.At(7, 1))
		assert.False(t, frame.At(8, 0))
	})

	t.Run("left wraps", func(t *testing.T) {
		m := newTestMachine(t, append(drawGlyphZero, 0x00FC)...)
		steps(t, m, 4)

		frame := takeFrame(t, m)
		assert.Equal(t, LowResWidth-horizontalScrollStep, frame.ScrollX)
		assert.True(t, frame.At(60, 0))
		assert.True(t, frame.At(63, 4))
		assert.False(t, frame.At(0, 0))
	})
}

func TestDisplay_Resolution(t *testing.T) {
	m := newTestMachine(t, append(drawGlyphZero, 0x00FF, 0x00FB, 0x00FE)...)
	steps(t, m, 3)

	steps(t, m, 1) // HIGH
	assert.True(t, m.HiRes())
	w, h := m.Resolution()
	assert.Equal(t, HighResWidth, w)
	assert.Equal(t, HighResHeight, h)

	frame := takeFrame(t, m)
	assert.Equal(t, HighResWidth*HighResHeight, len(frame.Pixels))
	assert.Equal(t, 14, countPixels(frame))
	assert.True(t, frame.At(0, 0))
	assert.True(t, frame.At(3, 4))
	assert.False(t, frame.At(1, 1))
	assert.Equal(t, 0, frame.RowStart)
	assert.Equal(t, HighResHeight-1, frame.RowEnd)

	steps(t, m, 1) // SCR
	assert.Equal(t, horizontalScrollStep, takeFrame(t, m).ScrollX)

	steps(t, m, 1) // LOW
	assert.False(t, m.HiRes())
	frame = takeFrame(t, m)
	assert.Equal(t, LowResWidth, frame.Width)
	assert.Equal(t, horizontalScrollStep, frame.ScrollX)
	assert.Equal(t, LowResWidth*LowResHeight, len(frame.Pixels))
	assert.Equal(t, 14, countPixels(frame))
	assert.True(t, frame.At(horizontalScrollStep+3, 4))
}

func TestDisplay_ResolutionDropsOutsidePixels(t *testing.T) {
	m := newTestMachine(t,
		0x00FF, // HIGH
		0x6050, // LD V0, $50
		0x6110, // LD V1, $10
		0xA000, // LD I, $000
		0xD005, // DRW V0, V0, $5
		0xD115, // DRW V1, V1, $5
		0x00FE, // LOW
	)
	steps(t, m, 6)
	assert.Equal(t, 28, countPixels(takeFrame(t, m)))

	steps(t, m, 1)
	frame := takeFrame(t, m)
	assert.Equal(t, 14, countPixels(frame))
	assert.True(t, frame.At(0x10, 0x10))
}
