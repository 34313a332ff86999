package cpu

import (
	"fmt"
	"strings"
)

// Code is a single Hack instruction word.
type Code uint16

//go:generate go tool stringer -linecomment -type=CodeClass

// CodeClass is the instruction class, selected by the top bit.
type CodeClass int

const (
	OP_ADDRESS = CodeClass(0) // @
	OP_COMPUTE = CodeClass(1) // c
)

// CodeComp is a six bit ALU control code.
type CodeComp uint16

// CodeDest is the destination mask of a compute instruction.
type CodeDest uint16

const (
	DEST_M = CodeDest(1 << 0) // RAM[A]
	DEST_D = CodeDest(1 << 1) // D
	DEST_A = CodeDest(1 << 2) // A
)

// CodeJump is the jump condition mask of a compute instruction.
type CodeJump uint16

const (
	JUMP_GT = CodeJump(1 << 0) // Jump if output > 0
	JUMP_EQ = CodeJump(1 << 1) // Jump if output == 0
	JUMP_LT = CodeJump(1 << 2) // Jump if output < 0
)

const (
	CODE_CLASS    = 1 << 15
	CODE_LITERAL  = 0x7fff
	CODE_SOURCE_M = 1 << 12
)

// MakeCodeAddress creates an A instruction loading a 15 bit literal.
func MakeCodeAddress(literal uint16) Code {
	return Code(literal & CODE_LITERAL)
}

// MakeCodeCompute creates a C instruction. When memory is set the ALU y
// input is RAM[A] instead of A.
func MakeCodeCompute(memory bool, comp CodeComp, dest CodeDest, jump CodeJump) Code {
	word := uint16(0xe000)
	if memory {
		word |= CODE_SOURCE_M
	}
	word |= uint16(comp&ALU_MASK) << 6
	word |= uint16(dest&7) << 3
	word |= uint16(jump & 7)
	return Code(word)
}

// Word returns the raw instruction word.
func (code Code) Word() uint16 {
	return uint16(code)
}

// Class returns the instruction class.
func (code Code) Class() CodeClass {
	return CodeClass(code >> 15)
}

// Literal returns the low 15 bits of an A instruction.
func (code Code) Literal() uint16 {
	return uint16(code) & CODE_LITERAL
}

// Memory returns true if the ALU y input is RAM[A].
func (code Code) Memory() bool {
	return uint16(code)&CODE_SOURCE_M != 0
}

// Comp returns the ALU control code.
func (code Code) Comp() CodeComp {
	return CodeComp(code>>6) & ALU_MASK
}

// Dest returns the destination mask.
func (code Code) Dest() CodeDest {
	return CodeDest(code>>3) & 7
}

// Jump returns the jump condition mask.
func (code Code) Jump() CodeJump {
	return CodeJump(code) & 7
}

// Valid returns false for C instructions that write RAM[A] while jumping
// to A, as both would have to use the same A.
func (code Code) Valid() bool {
	if code.Class() == OP_ADDRESS {
		return true
	}
	return !(code.Dest()&DEST_M != 0 && code.Jump() != 0)
}

// Taken returns true if the jump condition matches the ALU output,
// compared as a signed 16 bit value.
func (jump CodeJump) Taken(out uint16) bool {
	value := int16(out)
	switch {
	case value < 0:
		return jump&JUMP_LT != 0
	case value == 0:
		return jump&JUMP_EQ != 0
	default:
		return jump&JUMP_GT != 0
	}
}

var jumpName = [8]string{
	"",
	"JGT",
	"JEQ",
	"JGE",
	"JLT",
	"JNE",
	"JLE",
	"JMP",
}

func (jump CodeJump) String() string {
	return jumpName[jump&7]
}

func (dest CodeDest) String() string {
	var sb strings.Builder
	if dest&DEST_A != 0 {
		sb.WriteByte('A')
	}
	if dest&DEST_D != 0 {
		sb.WriteByte('D')
	}
	if dest&DEST_M != 0 {
		sb.WriteByte('M')
	}
	return sb.String()
}

// compName maps the a-bit and control code (7 bits) to assembly text.
var compName = map[uint16]string{
	0b0_101010: "0",
	0b0_111111: "1",
	0b0_111010: "-1",
	0b0_001100: "D",
	0b0_110000: "A",
	0b0_001101: "!D",
	0b0_110001: "!A",
	0b0_001111: "-D",
	0b0_110011: "-A",
	0b0_011111: "D+1",
	0b0_110111: "A+1",
	0b0_001110: "D-1",
	0b0_110010: "A-1",
	0b0_000010: "D+A",
	0b0_010011: "D-A",
	0b0_000111: "A-D",
	0b0_000000: "D&A",
	0b0_010101: "D|A",
	0b1_110000: "M",
	0b1_110001: "!M",
	0b1_110011: "-M",
	0b1_110111: "M+1",
	0b1_110010: "M-1",
	0b1_000010: "D+M",
	0b1_010011: "D-M",
	0b1_000111: "M-D",
	0b1_000000: "D&M",
	0b1_010101: "D|M",
}

// compString returns the assembly text of the computation. Control codes
// outside of the documented set are shown as '?' and the 7 bit pattern.
func (code Code) compString() string {
	key := uint16(code>>6) & 0x7f
	name, ok := compName[key]
	if !ok {
		return fmt.Sprintf("?%02x", key)
	}
	return name
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	if code.Class() == OP_ADDRESS {
		return fmt.Sprintf("@%04x", code.Literal())
	}

	if dest := code.Dest(); dest != 0 {
		out = dest.String() + "="
	}

	out += code.compString()

	if jump := code.Jump(); jump != 0 {
		out += ";" + jump.String()
	}

	return
}

// Disassemble returns the assembly language text of an instruction word.
func Disassemble(word uint16) string {
	return Code(word).String()
}
