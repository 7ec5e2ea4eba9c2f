package chip8

// KeyWaitSentinel is stored into VX by the key wait instruction once any key
// is pressed, unless the machine was created with WithKeyCodeOnWait.
const KeyWaitSentinel = 1

// Step fetches, decodes and executes a single instruction.
func (m *Machine) Step() error {
	opcode, err := m.ReadOpcode(m.pc)
	if err != nil {
		return err
	}

	ins := Decode(opcode)
	if m.tracer != nil {
		m.tracer(m.pc, ins)
	}
	return m.execute(ins)
}

// SkipInstruction advances the program counter past the current instruction
// without executing it.
func (m *Machine) SkipInstruction() error {
	if err := m.checkAdvance(2); err != nil {
		return err
	}
	m.pc += 2
	return nil
}

// checkAdvance verifies that the program counter can move n bytes forward
// without wrapping around the 16-bit address space.
func (m *Machine) checkAdvance(n int) error {
	next := int(m.pc) + n
	if next > maxAddress {
		return &AddressError{Address: next, Length: 2, Capacity: len(m.memory)}
	}
	return nil
}

// execute applies the instruction to the machine state. Every instruction
// either sets the program counter explicitly or advances it.
func (m *Machine) execute(ins Instruction) error {
	if ins.Op == OpInvalid || (ins.Op.Extended() && m.variant == Classic) {
		return m.opcodeError(ErrUnknownOpcode, ins)
	}
	if !ins.Op.Implemented() {
		return m.opcodeError(ErrUnimplementedOpcode, ins)
	}
	if ins.Op.fallsThrough() {
		if err := m.checkAdvance(2); err != nil {
			return err
		}
	}

	switch ins.Op {
	case OpCls, OpScd, OpScu, OpScr, OpScl, OpLow, OpHigh:
		m.executeScreen(ins)
		return nil

	case OpRet:
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = address + 2
		return nil

	case OpExit:
		return ErrExit

	case OpJp:
		m.pc = ins.NNN
		return nil

	case OpJpV0:
		m.pc = ins.NNN + uint16(m.v[0])
		return nil

	case OpCall:
		if err := m.push(m.pc); err != nil {
			return err
		}
		m.pc = ins.NNN
		return nil

	case OpSeVxByte, OpSneVxByte, OpSeVxVy, OpSneVxVy, OpSkp, OpSknp:
		return m.executeSkip(ins)

	case OpLdVxByte, OpAddVxByte, OpLdVxVy, OpOr, OpAnd, OpXor,
		OpAddVxVy, OpSub, OpShr, OpSubn, OpShl, OpRnd:
		m.executeArithmetic(ins)
		return nil

	case OpDrw:
		return m.draw(ins)

	case OpLdVxK:
		m.waitKey(ins)
		return nil

	default:
		return m.executeMisc(ins)
	}
}

// opcodeError wraps err with the opcode and the offset of the program
// counter from the program start.
func (m *Machine) opcodeError(err error, ins Instruction) error {
	return &OpcodeError{
		Err:    err,
		Opcode: ins.Opcode,
		Offset: int(m.pc) - ProgramStart,
	}
}

// executeScreen handles the display control instructions.
func (m *Machine) executeScreen(ins Instruction) {
	switch ins.Op {
	case OpCls:
		m.display.clear()
	case OpScd:
		m.display.scrollDown(int(ins.N))
	case OpScu:
		m.display.scrollUp(int(ins.N))
	case OpScr:
		m.display.scrollHorizontal(horizontalScrollStep)
	case OpScl:
		m.display.scrollHorizontal(-horizontalScrollStep)
	case OpLow:
		m.display.setHiRes(false)
	case OpHigh:
		m.display.setHiRes(true)
	}
	m.pc += 2
}

// executeSkip handles the conditional skip instructions, a taken branch
// advances the program counter by 4.
func (m *Machine) executeSkip(ins Instruction) error {
	vx, vy := m.v[ins.X], m.v[ins.Y]

	var skip bool
	switch ins.Op {
	case OpSeVxByte:
		skip = vx == ins.KK
	case OpSneVxByte:
		skip = vx != ins.KK
	case OpSeVxVy:
		skip = vx == vy
	case OpSneVxVy:
		skip = vx != vy
	case OpSkp:
		skip = m.keyPressed(vx)
	case OpSknp:
		skip = !m.keyPressed(vx)
	}

	if !skip {
		m.pc += 2
		return nil
	}
	if err := m.checkAdvance(4); err != nil {
		return err
	}
	m.pc += 4
	return nil
}

// keyPressed returns the state of the key with the given code. Codes outside
// of the keypad are never pressed.
func (m *Machine) keyPressed(code byte) bool {
	if int(code) >= KeyCount {
		return false
	}
	return m.keys[code]
}

// executeArithmetic handles register loads and the ALU instructions. The
// flag is always computed from the operands before the update and written
// last, so VF as destination holds the flag.
func (m *Machine) executeArithmetic(ins Instruction) {
	vx, vy := m.v[ins.X], m.v[ins.Y]

	switch ins.Op {
	case OpLdVxByte:
		m.v[ins.X] = ins.KK
	case OpAddVxByte:
		m.v[ins.X] = vx + ins.KK
	case OpLdVxVy:
		m.v[ins.X] = vy
	case OpOr:
		m.v[ins.X] = vx | vy
	case OpAnd:
		m.v[ins.X] = vx & vy
	case OpXor:
		m.v[ins.X] = vx ^ vy
	case OpAddVxVy:
		sum := uint16(vx) + uint16(vy)
		m.v[ins.X] = byte(sum)
		m.v[flagRegister] = boolToByte(sum > 0xFF)
	case OpSub:
		m.v[ins.X] = vx - vy
		m.v[flagRegister] = boolToByte(vx >= vy)
	case OpShr:
		m.v[ins.X] = vx >> 1
		m.v[flagRegister] = vx & 0x01
	case OpSubn:
		m.v[ins.X] = vy - vx
		m.v[flagRegister] = boolToByte(vy >= vx)
	case OpShl:
		m.v[ins.X] = vx << 1
		m.v[flagRegister] = vx >> 7
	case OpRnd:
		m.v[ins.X] = m.nextRandomByte() & ins.KK
	}
	m.pc += 2
}

// waitKey handles FX0A. Without a pressed key the program counter is not
// advanced and the instruction runs again on the next step.
func (m *Machine) waitKey(ins Instruction) {
	for code, pressed := range m.keys {
		if !pressed {
			continue
		}
		if m.storeKeyCode {
			m.v[ins.X] = byte(code)
		} else {
			m.v[ins.X] = KeyWaitSentinel
		}
		m.pc += 2
		return
	}
}

// executeMisc handles the timer, index and memory transfer instructions.
func (m *Machine) executeMisc(ins Instruction) error {
	vx := m.v[ins.X]
	count := int(ins.X) + 1

	switch ins.Op {
	case OpLdIAddr:
		m.i = ins.NNN
	case OpLdVxDt:
		m.v[ins.X] = m.dt
	case OpLdDtVx:
		m.dt = vx
	case OpLdStVx:
		m.st = vx
	case OpAddIVx:
		sum := int(m.i) + int(vx)
		m.i = uint16(sum)
		m.v[flagRegister] = boolToByte(sum > 0xFFF)
	case OpLdFVx:
		m.i = FontAddress + uint16(vx)*fontGlyphSize
	case OpLdHfVx:
		m.i = BigFontAddress + uint16(vx)*bigFontGlyphSize

	case OpLdBVx:
		if err := m.checkRange(int(m.i), 3); err != nil {
			return err
		}
		m.memory[m.i] = vx / 100
		m.memory[m.i+1] = (vx / 10) % 10
		m.memory[m.i+2] = vx % 10

	case OpLdIVx:
		if err := m.checkRange(int(m.i), count); err != nil {
			return err
		}
		copy(m.memory[m.i:], m.v[:count])
		m.i += uint16(count)

	case OpLdVxI:
		if err := m.checkRange(int(m.i), count); err != nil {
			return err
		}
		copy(m.v[:count], m.memory[m.i:])
		m.i += uint16(count)

	case OpLdRVx:
		copy(m.flags[:count], m.v[:count])
	case OpLdVxR:
		copy(m.v[:count], m.flags[:count])

	default:
		return m.opcodeError(ErrUnknownOpcode, ins)
	}

	m.pc += 2
	return nil
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
