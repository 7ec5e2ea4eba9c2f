package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	m := newTestMachine(t,
		0x00FF, // HIGH
		0x6A0A, // LD VA, $0A
		0xA000, // LD I, $000
		0xDAA5, // DRW VA, VA, $5
		0x2210, // CALL $210
	)
	m.memory[0x210] = 0xC0 // RND V0, $FF
	m.memory[0x211] = 0xFF
	m.memory[0x212] = 0x12 // JP $210
	m.memory[0x213] = 0x10
	m.SetSeed(1234)
	steps(t, m, 5)

	state, err := m.Snapshot()
	assert.NoError(t, err)
	assert.True(t, state.Seeded)
	assert.Equal(t, uint64(1234), state.Seed)
	assert.Equal(t, 1, int(state.SP))

	var want []byte
	for range 4 {
		steps(t, m, 2)
		want = append(want, m.Registers()[0])
	}

	// the snapshot does not share memory with the machine
	m.memory[0x300] = 0x55
	assert.Equal(t, byte(0), state.Memory[0x300])

	restored := New(WithVariant(Classic))
	assert.NoError(t, restored.Restore(state))
	assert.Equal(t, SuperChip, restored.Variant())
	assert.Equal(t, ExtendedMemorySize, len(restored.memory))
	assert.Equal(t, uint16(0x210), restored.PC())
	assert.Equal(t, 1, restored.SP())
	assert.True(t, restored.HiRes())

	var got []byte
	for range 4 {
		steps(t, restored, 2)
		got = append(got, restored.Registers()[0])
	}
	assert.Equal(t, want, got)

	frame := takeFrame(t, restored)
	assert.Equal(t, HighResWidth, frame.Width)
	assert.Equal(t, 14, countPixels(frame))
	assert.True(t, frame.At(10, 10))
	assert.Equal(t, 0, frame.RowStart)
	assert.Equal(t, HighResHeight-1, frame.RowEnd)
}

func TestSnapshot_Unseeded(t *testing.T) {
	m := newTestMachine(t, 0x6001)
	steps(t, m, 1)

	state, err := m.Snapshot()
	assert.NoError(t, err)
	assert.False(t, state.Seeded)
	assert.Equal(t, 0, len(state.RandState))

	m.SetSeed(5)
	assert.NoError(t, m.Restore(state))
	assert.True(t, m.rng == nil)
	assert.Equal(t, byte(1), m.Registers()[0])
}

func TestRestore_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*State)
	}{
		{"unknown variant", func(s *State) { s.Variant = "xochip" }},
		{"memory size", func(s *State) { s.Memory = s.Memory[:ClassicMemorySize] }},
		{"framebuffer size", func(s *State) { s.Pixels = s.Pixels[:10] }},
		{"stack pointer", func(s *State) { s.SP = StackSize + 1 }},
		{"tick rate", func(s *State) { s.TickRate = 0 }},
		{"random state", func(s *State) {
			s.Seeded = true
			s.RandState = []byte("bogus")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newTestMachine(t, 0x6A01)
			state, err := source.Snapshot()
			assert.NoError(t, err)
			tt.modify(&state)

			m := newTestMachine(t, 0x6B02)
			steps(t, m, 1)

			err = m.Restore(state)
			assert.True(t, errors.Is(err, ErrInvalidState))
			assert.Equal(t, byte(2), m.Registers()[0xB])
			assert.Equal(t, uint16(ProgramStart+2), m.PC())
		})
	}
}
