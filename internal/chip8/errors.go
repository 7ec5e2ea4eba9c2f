package chip8

import (
	"errors"
	"fmt"
)

// Errors returned by the machine. Detail errors unwrap to these so that
// callers can match them with errors.Is.
var (
	ErrStackOverflow       = errors.New("stack overflow")
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrUnknownOpcode       = errors.New("unknown opcode")
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	ErrROMTooLarge         = errors.New("rom does not fit into memory")
	ErrAddressOutOfRange   = errors.New("address out of range")
	ErrExit                = errors.New("program requested exit")
	ErrInvalidKey          = errors.New("invalid key index")
	ErrInvalidState        = errors.New("invalid machine state")
)

// OpcodeError is returned for opcodes that are unknown or recognized but not
// implemented. Offset is the program counter relative to ProgramStart.
type OpcodeError struct {
	Err    error
	Opcode uint16
	Offset int
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s $%04X at offset %#04x", e.Err, e.Opcode, e.Offset)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

// AddressError is returned when an instruction accesses memory outside of
// the machine capacity.
type AddressError struct {
	Address  int
	Length   int
	Capacity int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s: %d bytes at $%04X, capacity $%04X",
		ErrAddressOutOfRange, e.Length, e.Address, e.Capacity)
}

func (e *AddressError) Unwrap() error {
	return ErrAddressOutOfRange
}

// ROMSizeError is returned by Load for programs that exceed the memory
// available after ProgramStart.
type ROMSizeError struct {
	Size     int
	Capacity int
}

func (e *ROMSizeError) Error() string {
	return fmt.Sprintf("%s: %d bytes, %d available", ErrROMTooLarge, e.Size, e.Capacity)
}

func (e *ROMSizeError) Unwrap() error {
	return ErrROMTooLarge
}
