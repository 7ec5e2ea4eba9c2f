package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0xD12A)

	assert.Equal(t, OpDrw, ins.Op)
	assert.Equal(t, uint16(0xD12A), ins.Opcode)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xA), ins.N)
	assert.Equal(t, uint8(0x2A), ins.KK)
	assert.Equal(t, uint16(0x12A), ins.NNN)
	assert.Equal(t, [4]uint8{0xD, 0x1, 0x2, 0xA}, ins.Nibbles())
}

func TestDecode_Ops(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
	}{
		{0x00E0, OpCls},
		{0x00EE, OpRet},
		{0x00C4, OpScd},
		{0x00D4, OpScu},
		{0x00FB, OpScr},
		{0x00FC, OpScl},
		{0x00FD, OpExit},
		{0x00FE, OpLow},
		{0x00FF, OpHigh},
		{0x0123, OpInvalid},
		{0x01E0, OpInvalid},
		{0x1ABC, OpJp},
		{0x2ABC, OpCall},
		{0x3A12, OpSeVxByte},
		{0x4A12, OpSneVxByte},
		{0x5AB0, OpSeVxVy},
		{0x5AB1, OpSeVxVy},
		{0x5ABF, OpSeVxVy},
		{0x5AB2, OpSaveVxVy},
		{0x5AB3, OpLoadVxVy},
		{0x6A12, OpLdVxByte},
		{0x7A12, OpAddVxByte},
		{0x8AB0, OpLdVxVy},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddVxVy},
		{0x8AB5, OpSub},
		{0x8AB6, OpShr},
		{0x8AB7, OpSubn},
		{0x8ABE, OpShl},
		{0x8AB8, OpInvalid},
		{0x9AB0, OpSneVxVy},
		{0x9AB1, OpSneVxVy},
		{0xA123, OpLdIAddr},
		{0xB123, OpJpV0},
		{0xC1FF, OpRnd},
		{0xD125, OpDrw},
		{0xE19E, OpSkp},
		{0xE1A1, OpSknp},
		{0xE1A2, OpInvalid},
		{0xF000, OpLdILong},
		{0xF002, OpAudio},
		{0xF101, OpPlane},
		{0xF107, OpLdVxDt},
		{0xF10A, OpLdVxK},
		{0xF115, OpLdDtVx},
		{0xF118, OpLdStVx},
		{0xF11E, OpAddIVx},
		{0xF129, OpLdFVx},
		{0xF130, OpLdHfVx},
		{0xF133, OpLdBVx},
		{0xF13A, OpPitch},
		{0xF155, OpLdIVx},
		{0xF165, OpLdVxI},
		{0xF175, OpLdRVx},
		{0xF185, OpLdVxR},
		{0xF199, OpInvalid},
	}

	for _, tt := range tests {
		ins := Decode(tt.opcode)
		assert.Equal(t, tt.op, ins.Op, "opcode $%04X", tt.opcode)
	}
}

func TestOp_Classification(t *testing.T) {
	for op := OpCls; op < opLastValid; op++ {
		name := Instruction{Op: op}.Name()
		assert.True(t, name != "", "op %d has no name", op)
	}

	assert.False(t, OpCls.Extended())
	assert.False(t, OpLdVxI.Extended())
	assert.True(t, OpHigh.Extended())
	assert.True(t, OpLdRVx.Extended())

	assert.True(t, OpDrw.Implemented())
	assert.True(t, OpExit.Implemented())
	assert.False(t, OpInvalid.Implemented())
	assert.False(t, OpPlane.Implemented())
	assert.False(t, OpSaveVxVy.Implemented())
}

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		opcode uint16
		name   string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1ABC, "JP"},
		{0x2ABC, "CALL"},
		{0x6A12, "LD"},
		{0x8AB4, "ADD"},
		{0xD125, "DRW"},
		{0xE19E, "SKP"},
		{0x5AB0, "SE"},
		{0x5AB1, "SE"},
		{0x9AB1, "SNE"},
		{0x00FF, "HIGH"},
		{0x00FD, "EXIT"},
		{0xF130, "LD"},
		{0xF002, "AUDIO"},
		{0x0123, "???"},
	}

	for _, tt := range tests {
		ins := Decode(tt.opcode)
		assert.Equal(t, tt.name, ins.Name())
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{0x00C3, "SCD $3"},
		{0x00FE, "LOW"},
		{0xF130, "LD HF, V1"},
		{0xF275, "LD R, V2"},
		{0xF385, "LD V3, R"},
		{0x5122, "SAVE V1, V2"},
		{0xF43A, "PITCH V4"},
		{0xF000, "LD I, $NNNN"},
		{0x0123, "??? $0123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.opcode).String())
	}
}
