package chip8

// bigSpriteSize is the width and height of a SUPER-CHIP 16x16 sprite.
const bigSpriteSize = 16

// draw executes DXYN. The sprite is read from memory at I, one byte per row
// or two bytes for 16 pixel wide sprites, and XOR drawn at (VX, VY) with
// wraparound. VF reports whether any set pixel was erased.
func (m *Machine) draw(ins Instruction) error {
	width, height := 8, int(ins.N)
	if ins.N == 0 {
		height = bigSpriteSize
		if m.display.hiRes {
			width = bigSpriteSize
		}
	}
	bytesPerRow := width / 8

	if err := m.checkRange(int(m.i), height*bytesPerRow); err != nil {
		return err
	}

	x0 := int(m.v[ins.X])
	y0 := int(m.v[ins.Y])
	m.v[flagRegister] = 0

	var collision bool
	sprite := m.memory[m.i:]
	for row := range height {
		var bits uint16
		if bytesPerRow == 2 {
			bits = uint16(sprite[row*2])<<8 | uint16(sprite[row*2+1])
		} else {
			bits = uint16(sprite[row])
		}

		for col := range width {
			mask := uint16(1) << (width - 1 - col)
			if bits&mask == 0 {
				continue
			}
			if m.display.toggle(x0+col, y0+row) {
				collision = true
			}
		}
	}

	if collision {
		m.v[flagRegister] = 1
	}
	// an empty sprite still requests a redraw
	m.display.redraw = true
	m.pc += 2
	return nil
}
