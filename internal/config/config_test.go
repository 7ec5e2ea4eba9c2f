package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestMachineOptions(t *testing.T) {
	opts := options.Program{
		Flags: options.Flags{TickRate: 42},
	}

	m := chip8.New(MachineOptions(opts, chip8.Classic)...)
	assert.Equal(t, chip8.Classic, m.Variant())
	assert.Equal(t, 42, m.TickRate())

	opts.KeyCode = true
	m = chip8.New(MachineOptions(opts, chip8.SuperChip)...)
	assert.NoError(t, m.Load([]byte{0xF0, 0x0A}, 0)) // LD V0, K
	assert.NoError(t, m.SetKey(9, true))
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(9), m.Registers()[0])
}
