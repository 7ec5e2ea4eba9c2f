package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		rom, err := loader.Load(opts, chip8.Classic)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, rom)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
		}

		_, err := loader.Load(opts, chip8.Classic)
		assert.Error(t, err)
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		_, err := loader.Load(opts, chip8.SuperChip)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})
}

func TestLoadFromReader_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		variant chip8.Variant
		size    int
		wantErr bool
	}{
		{"classic maximum", chip8.Classic, chip8.ClassicMemorySize - chip8.ProgramStart, false},
		{"classic oversized", chip8.Classic, chip8.ClassicMemorySize - chip8.ProgramStart + 1, true},
		{"extended fits large ROM", chip8.SuperChip, 0x4000, false},
		{"extended oversized", chip8.SuperChip, chip8.ExtendedMemorySize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := New()
			rom, err := loader.LoadFromReader(bytes.NewReader(make([]byte, tt.size)), tt.variant)
			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Equal(t, tt.size, len(rom))
				return
			}

			assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
			var sizeErr *chip8.ROMSizeError
			assert.True(t, errors.As(err, &sizeErr))
			assert.Equal(t, tt.variant.MaxROMSize(), sizeErr.Capacity)
		})
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
