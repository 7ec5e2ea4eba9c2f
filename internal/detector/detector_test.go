package detector

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name        string
		systemOpt   string
		inputFile   string
		wantVariant chip8.Variant
	}{
		{
			name:        "explicit classic option",
			systemOpt:   "chip8",
			inputFile:   "game.sc8",
			wantVariant: chip8.Classic,
		},
		{
			name:        "explicit extended option",
			systemOpt:   "schip",
			inputFile:   "game.ch8",
			wantVariant: chip8.SuperChip,
		},
		{
			name:        "detect from .ch8 extension",
			systemOpt:   "",
			inputFile:   "game.ch8",
			wantVariant: chip8.Classic,
		},
		{
			name:        "detect from .sc8 extension",
			systemOpt:   "",
			inputFile:   "game.sc8",
			wantVariant: chip8.SuperChip,
		},
		{
			name:        "unknown extension defaults to extended",
			systemOpt:   "",
			inputFile:   "game.bin",
			wantVariant: chip8.SuperChip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{System: tt.systemOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantVariant, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name        string
		filename    string
		wantVariant chip8.Variant
	}{
		{".ch8 extension", "pong.ch8", chip8.Classic},
		{".CH8 extension (uppercase)", "PONG.CH8", chip8.Classic},
		{".sc8 extension", "car.sc8", chip8.SuperChip},
		{".schip extension", "blinky.schip", chip8.SuperChip},
		{"no extension", "game", chip8.SuperChip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantVariant, got)
		})
	}
}
