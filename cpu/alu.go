package cpu

// ALU control bits, applied in the order listed.
const (
	ALU_ZX = CodeComp(1 << 5) // Zero the x input.
	ALU_NX = CodeComp(1 << 4) // Negate the x input.
	ALU_ZY = CodeComp(1 << 3) // Zero the y input.
	ALU_NY = CodeComp(1 << 2) // Negate the y input.
	ALU_F  = CodeComp(1 << 1) // Set for x+y, clear for x&y.
	ALU_NO = CodeComp(1 << 0) // Negate the output.

	ALU_MASK = CodeComp(0x3f)
)

// The eighteen documented control codes. x is always D, y is A or M.
const (
	COMP_ZERO        = CodeComp(0x2a) // 0
	COMP_ONE         = CodeComp(0x3f) // 1
	COMP_MINUS_ONE   = CodeComp(0x3a) // -1
	COMP_X           = CodeComp(0x0c) // x
	COMP_Y           = CodeComp(0x30) // y
	COMP_NOT_X       = CodeComp(0x0d) // !x
	COMP_NOT_Y       = CodeComp(0x31) // !y
	COMP_NEG_X       = CodeComp(0x0f) // -x
	COMP_NEG_Y       = CodeComp(0x33) // -y
	COMP_X_PLUS_ONE  = CodeComp(0x1f) // x+1
	COMP_Y_PLUS_ONE  = CodeComp(0x37) // y+1
	COMP_X_MINUS_ONE = CodeComp(0x0e) // x-1
	COMP_Y_MINUS_ONE = CodeComp(0x32) // y-1
	COMP_X_PLUS_Y    = CodeComp(0x02) // x+y
	COMP_X_MINUS_Y   = CodeComp(0x13) // x-y
	COMP_Y_MINUS_X   = CodeComp(0x07) // y-x
	COMP_X_AND_Y     = CodeComp(0x00) // x&y
	COMP_X_OR_Y      = CodeComp(0x15) // x|y
)

// Alu computes the ALU output for inputs x and y under a control code.
// Only the low six bits of comp are used.
func Alu(x, y uint16, comp CodeComp) (out uint16) {
	if comp&ALU_ZX != 0 {
		x = 0
	}
	if comp&ALU_NX != 0 {
		x = ^x
	}
	if comp&ALU_ZY != 0 {
		y = 0
	}
	if comp&ALU_NY != 0 {
		y = ^y
	}

	if comp&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if comp&ALU_NO != 0 {
		out = ^out
	}

	return
}
