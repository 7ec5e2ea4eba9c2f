// Package snapshot persists machine states to disk.
//
// A snapshot file starts with a 4 byte magic and a little-endian uint32
// format version, followed by the gzip compressed gob encoding of a
// chip8.State.
package snapshot

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	magic   = "RC8S"
	version = 1
)

var (
	// ErrInvalidMagic is returned for files that are not snapshots.
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrUnsupportedVersion is returned for snapshots of another format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Write encodes the state to the writer.
func Write(w io.Writer, state chip8.State) error {
	var header bytes.Buffer
	header.WriteString(magic)
	if err := binary.Write(&header, binary.LittleEndian, uint32(version)); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	gz := gzip.NewWriter(w)
	if err := gob.NewEncoder(gz).Encode(state); err != nil {
		_ = gz.Close()
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("closing gzip: %w", err)
	}
	return nil
}

// Read decodes a state from the reader.
func Read(r io.Reader) (chip8.State, error) {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return chip8.State{}, fmt.Errorf("reading magic: %w", err)
	}
	if string(header) != magic {
		return chip8.State{}, fmt.Errorf("%w: %q", ErrInvalidMagic, string(header))
	}

	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return chip8.State{}, fmt.Errorf("reading version: %w", err)
	}
	if v != version {
		return chip8.State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return chip8.State{}, fmt.Errorf("opening gzip reader: %w", err)
	}
	defer func() { _ = gz.Close() }()

	var state chip8.State
	if err := gob.NewDecoder(gz).Decode(&state); err != nil {
		return chip8.State{}, fmt.Errorf("decoding state: %w", err)
	}
	return state, nil
}

// Save writes the machine state to the named file.
func Save(m *chip8.Machine, path string) error {
	state, err := m.Snapshot()
	if err != nil {
		return fmt.Errorf("taking snapshot: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file %s: %w", path, err)
	}
	if err := Write(file, state); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing snapshot file %s: %w", path, err)
	}
	return nil
}

// Load restores the machine state from the named file.
func Load(m *chip8.Machine, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	state, err := Read(file)
	if err != nil {
		return fmt.Errorf("reading snapshot file %s: %w", path, err)
	}
	if err := m.Restore(state); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}
	return nil
}
