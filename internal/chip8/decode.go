package chip8

// Op identifies a decoded instruction.
type Op uint8

// Decoded instructions. OpInvalid marks an opcode that matches no known
// encoding.
const (
	OpInvalid Op = iota

	OpCls       // 00E0
	OpRet       // 00EE
	OpScd       // 00CN
	OpScu       // 00DN
	OpScr       // 00FB
	OpScl       // 00FC
	OpExit      // 00FD
	OpLow       // 00FE
	OpHigh      // 00FF
	OpJp        // 1NNN
	OpCall      // 2NNN
	OpSeVxByte  // 3XKK
	OpSneVxByte // 4XKK
	OpSeVxVy    // 5XY0
	OpLdVxByte  // 6XKK
	OpAddVxByte // 7XKK
	OpLdVxVy    // 8XY0
	OpOr        // 8XY1
	OpAnd       // 8XY2
	OpXor       // 8XY3
	OpAddVxVy   // 8XY4
	OpSub       // 8XY5
	OpShr       // 8XY6
	OpSubn      // 8XY7
	OpShl       // 8XYE
	OpSneVxVy   // 9XY0
	OpLdIAddr   // ANNN
	OpJpV0      // BNNN
	OpRnd       // CXKK
	OpDrw       // DXYN
	OpSkp       // EX9E
	OpSknp      // EXA1
	OpLdVxDt    // FX07
	OpLdVxK     // FX0A
	OpLdDtVx    // FX15
	OpLdStVx    // FX18
	OpAddIVx    // FX1E
	OpLdFVx     // FX29
	OpLdHfVx    // FX30
	OpLdBVx     // FX33
	OpLdIVx     // FX55
	OpLdVxI     // FX65
	OpLdRVx     // FX75
	OpLdVxR     // FX85

	// recognized encodings without an implementation
	OpSaveVxVy  // 5XY2
	OpLoadVxVy  // 5XY3
	OpLdILong   // F000 NNNN
	OpPlane     // FN01
	OpAudio     // F002
	OpPitch     // FX3A
	opLastValid // sentinel for tests
)

// Extended returns whether the instruction belongs to the SUPER-CHIP or
// XO-CHIP extensions and is unavailable in the Classic variant.
func (o Op) Extended() bool {
	switch o {
	case OpScd, OpScu, OpScr, OpScl, OpExit, OpLow, OpHigh,
		OpLdHfVx, OpLdRVx, OpLdVxR,
		OpSaveVxVy, OpLoadVxVy, OpLdILong, OpPlane, OpAudio, OpPitch:
		return true
	default:
		return false
	}
}

// fallsThrough returns whether execution can continue with the instruction
// that follows. Jumps, returns and exit set the program counter themselves.
func (o Op) fallsThrough() bool {
	switch o {
	case OpJp, OpJpV0, OpRet, OpExit:
		return false
	default:
		return true
	}
}

// Implemented returns whether the machine can execute the instruction.
func (o Op) Implemented() bool {
	switch o {
	case OpInvalid, OpSaveVxVy, OpLoadVxVy, OpLdILong, OpPlane, OpAudio, OpPitch:
		return false
	default:
		return true
	}
}

// Instruction is a decoded opcode with all operand fields extracted.
type Instruction struct {
	Op     Op
	Opcode uint16

	X   uint8  // register index, bits 8-11
	Y   uint8  // register index, bits 4-7
	N   uint8  // immediate nibble, bits 0-3
	KK  uint8  // immediate byte, bits 0-7
	NNN uint16 // immediate address, bits 0-11
}

// Nibbles returns the four nibbles of the opcode, most significant first.
func (ins Instruction) Nibbles() [4]uint8 {
	return nibbles(ins.Opcode)
}

func nibbles(opcode uint16) [4]uint8 {
	return [4]uint8{
		uint8(opcode >> 12),
		uint8(opcode>>8) & 0x0F,
		uint8(opcode>>4) & 0x0F,
		uint8(opcode) & 0x0F,
	}
}

// Decode extracts the operand fields of an opcode and identifies the
// instruction. Unknown encodings return an instruction with OpInvalid.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}
	ins.Op = decodeOp(nibbles(opcode))
	return ins
}

// decodeOp matches the nibble tuple against the opcode table. Order matters
// where encodings overlap, for example 5XY2 before 5XYN. The low nibble of
// 5XYN and 9XYN is ignored apart from the XO-CHIP range encodings.
func decodeOp(n [4]uint8) Op {
	switch n[0] {
	case 0x0:
		return decodeSystem(n)
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeVxByte
	case 0x4:
		return OpSneVxByte
	case 0x5:
		switch n[3] {
		case 0x2:
			return OpSaveVxVy
		case 0x3:
			return OpLoadVxVy
		default:
			return OpSeVxVy
		}
	case 0x6:
		return OpLdVxByte
	case 0x7:
		return OpAddVxByte
	case 0x8:
		return decodeArithmetic(n[3])
	case 0x9:
		return OpSneVxVy
	case 0xA:
		return OpLdIAddr
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch {
		case n[2] == 0x9 && n[3] == 0xE:
			return OpSkp
		case n[2] == 0xA && n[3] == 0x1:
			return OpSknp
		}
	case 0xF:
		return decodeMisc(n)
	}
	return OpInvalid
}

func decodeSystem(n [4]uint8) Op {
	if n[1] != 0 {
		return OpInvalid
	}
	switch n[2] {
	case 0xC:
		return OpScd
	case 0xD:
		return OpScu
	case 0xE:
		switch n[3] {
		case 0x0:
			return OpCls
		case 0xE:
			return OpRet
		}
	case 0xF:
		switch n[3] {
		case 0xB:
			return OpScr
		case 0xC:
			return OpScl
		case 0xD:
			return OpExit
		case 0xE:
			return OpLow
		case 0xF:
			return OpHigh
		}
	}
	return OpInvalid
}

func decodeArithmetic(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdVxVy
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddVxVy
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpInvalid
	}
}

func decodeMisc(n [4]uint8) Op {
	// encodings with a fixed X nibble come first
	if n[1] == 0 {
		switch {
		case n[2] == 0x0 && n[3] == 0x0:
			return OpLdILong
		case n[2] == 0x0 && n[3] == 0x2:
			return OpAudio
		}
	}

	switch n[2]<<4 | n[3] {
	case 0x01:
		return OpPlane
	case 0x07:
		return OpLdVxDt
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDtVx
	case 0x18:
		return OpLdStVx
	case 0x1E:
		return OpAddIVx
	case 0x29:
		return OpLdFVx
	case 0x30:
		return OpLdHfVx
	case 0x33:
		return OpLdBVx
	case 0x3A:
		return OpPitch
	case 0x55:
		return OpLdIVx
	case 0x65:
		return OpLdVxI
	case 0x75:
		return OpLdRVx
	case 0x85:
		return OpLdVxR
	default:
		return OpInvalid
	}
}
