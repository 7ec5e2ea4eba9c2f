package chip8

// Font table locations.
const (
	FontAddress    = 0x000
	BigFontAddress = 0x050

	fontGlyphSize    = 5
	bigFontGlyphSize = 10

	maxAddress = 0xFFFF
)

// font contains the 16 standard hexadecimal glyphs, 4x5 pixels each.
var font = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// bigFont contains the 16 SUPER-CHIP hexadecimal glyphs, 8x10 pixels each.
var bigFont = [16 * bigFontGlyphSize]byte{
	0xFF, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, // 0
	0x18, 0x78, 0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0xFF, 0xFF, // 1
	0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // 2
	0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 3
	0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0x03, 0x03, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 5
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 6
	0xFF, 0xFF, 0x03, 0x03, 0x06, 0x0C, 0x18, 0x18, 0x18, 0x18, // 7
	0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 8
	0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 9
	0x7E, 0xFF, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, // A
	0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, // B
	0x3C, 0xFF, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0xFF, 0x3C, // C
	0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // E
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xC0, 0xC0, // F
}

// Load copies the program bytes to ProgramStart and writes both font tables.
// A tickRate above 0 overrides the number of instructions per Update call.
// Programs that do not fit into memory are rejected without modifying it.
func (m *Machine) Load(rom []byte, tickRate int) error {
	capacity := len(m.memory) - ProgramStart
	if len(rom) > capacity {
		return &ROMSizeError{Size: len(rom), Capacity: capacity}
	}

	copy(m.memory[ProgramStart:], rom)
	copy(m.memory[FontAddress:], font[:])
	copy(m.memory[BigFontAddress:], bigFont[:])

	if tickRate > 0 {
		m.tickRate = tickRate
	}
	return nil
}

// ReadOpcode returns the big-endian 16-bit word at the given address.
func (m *Machine) ReadOpcode(address uint16) (uint16, error) {
	if err := m.checkRange(int(address), 2); err != nil {
		return 0, err
	}
	return uint16(m.memory[address])<<8 | uint16(m.memory[address+1]), nil
}

// checkRange verifies that length bytes starting at address are inside
// memory.
func (m *Machine) checkRange(address, length int) error {
	if address < 0 || length < 0 || address+length > len(m.memory) {
		return &AddressError{Address: address, Length: length, Capacity: len(m.memory)}
	}
	return nil
}
