package chip8

import (
	"fmt"
	"strings"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// extendedNames contains the mnemonics of instructions that are not part of
// the classic opcode table.
var extendedNames = map[Op]string{
	OpScd:      "SCD",
	OpScu:      "SCU",
	OpScr:      "SCR",
	OpScl:      "SCL",
	OpExit:     "EXIT",
	OpLow:      "LOW",
	OpHigh:     "HIGH",
	OpLdHfVx:   "LD",
	OpLdRVx:    "LD",
	OpLdVxR:    "LD",
	OpSaveVxVy: "SAVE",
	OpLoadVxVy: "LOAD",
	OpLdILong:  "LD",
	OpPlane:    "PLANE",
	OpAudio:    "AUDIO",
	OpPitch:    "PITCH",
}

// registerCompareNames covers 5XYN and 9XYN encodings with a non-zero low
// nibble, which the opcode table does not match.
var registerCompareNames = map[Op]string{
	OpSeVxVy:  "SE",
	OpSneVxVy: "SNE",
}

// Name returns the mnemonic of the instruction. Classic instructions are
// looked up in the CHIP-8 opcode table by mask and value.
func (ins Instruction) Name() string {
	if ins.Op == OpInvalid {
		return "???"
	}
	if name, ok := extendedNames[ins.Op]; ok {
		return name
	}

	opcodes := chip8cpu.Opcodes[int(ins.Opcode>>12)]
	for _, op := range opcodes {
		if op.Instruction != nil && op.Info.Mask&ins.Opcode == op.Info.Value {
			return strings.ToUpper(op.Instruction.Name)
		}
	}
	if name, ok := registerCompareNames[ins.Op]; ok {
		return name
	}
	return "???"
}

// String returns the instruction in assembly notation, for example
// "DRW V0, V1, $5".
func (ins Instruction) String() string {
	name := ins.Name()
	if ins.Op == OpInvalid {
		return fmt.Sprintf("%s $%04X", name, ins.Opcode)
	}
	if params := ins.operands(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// operands formats the instruction parameters.
func (ins Instruction) operands() string {
	switch ins.Op {
	case OpScd, OpScu:
		return fmt.Sprintf("$%X", ins.N)
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case OpLdIAddr:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case OpSeVxByte, OpSneVxByte, OpLdVxByte, OpAddVxByte, OpRnd:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
	case OpSeVxVy, OpSneVxVy, OpLdVxVy, OpOr, OpAnd, OpXor, OpAddVxVy, OpSub, OpSubn,
		OpSaveVxVy, OpLoadVxVy:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case OpShr, OpShl, OpSkp, OpSknp, OpPlane, OpPitch:
		return fmt.Sprintf("V%X", ins.X)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	default:
		return ins.loadOperands()
	}
}

// loadOperands formats the FX load variants that share the LD mnemonic.
func (ins Instruction) loadOperands() string {
	switch ins.Op {
	case OpLdVxDt:
		return fmt.Sprintf("V%X, DT", ins.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", ins.X)
	case OpLdDtVx:
		return fmt.Sprintf("DT, V%X", ins.X)
	case OpLdStVx:
		return fmt.Sprintf("ST, V%X", ins.X)
	case OpAddIVx:
		return fmt.Sprintf("I, V%X", ins.X)
	case OpLdFVx:
		return fmt.Sprintf("F, V%X", ins.X)
	case OpLdHfVx:
		return fmt.Sprintf("HF, V%X", ins.X)
	case OpLdBVx:
		return fmt.Sprintf("B, V%X", ins.X)
	case OpLdIVx:
		return fmt.Sprintf("[I], V%X", ins.X)
	case OpLdVxI:
		return fmt.Sprintf("V%X, [I]", ins.X)
	case OpLdRVx:
		return fmt.Sprintf("R, V%X", ins.X)
	case OpLdVxR:
		return fmt.Sprintf("V%X, R", ins.X)
	case OpLdILong:
		return "I, $NNNN"
	default:
		return ""
	}
}
