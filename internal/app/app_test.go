package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "retrochip8"},
		{"pong.ch8", "retrochip8 - pong.ch8"},
		{"/roms/chip8/maze.ch8", "retrochip8 - maze.ch8"},
		{`C:\roms\car.sc8`, "retrochip8 - car.sc8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WindowTitle(tt.input))
	}
}

func TestPrint(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Flags: options.Flags{Halt: options.HaltContinue},
	}

	PrintBanner(logger, opts, "dev", "0123456789", "")
	PrintInfo(logger, opts, runner.New(logger, chip8.New()))

	opts.Quiet = true
	PrintBanner(logger, opts, "dev", "", "")
}
