package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// aluTable is the expected result of each documented control code.
var aluTable = [](struct {
	name string
	comp CodeComp
	want func(x, y uint16) uint16
}){
	{"0", COMP_ZERO, func(x, y uint16) uint16 { return 0 }},
	{"1", COMP_ONE, func(x, y uint16) uint16 { return 1 }},
	{"-1", COMP_MINUS_ONE, func(x, y uint16) uint16 { return 0xffff }},
	{"x", COMP_X, func(x, y uint16) uint16 { return x }},
	{"y", COMP_Y, func(x, y uint16) uint16 { return y }},
	{"!x", COMP_NOT_X, func(x, y uint16) uint16 { return ^x }},
	{"!y", COMP_NOT_Y, func(x, y uint16) uint16 { return ^y }},
	{"-x", COMP_NEG_X, func(x, y uint16) uint16 { return 0 - x }},
	{"-y", COMP_NEG_Y, func(x, y uint16) uint16 { return 0 - y }},
	{"x+1", COMP_X_PLUS_ONE, func(x, y uint16) uint16 { return x + 1 }},
	{"y+1", COMP_Y_PLUS_ONE, func(x, y uint16) uint16 { return y + 1 }},
	{"x-1", COMP_X_MINUS_ONE, func(x, y uint16) uint16 { return x - 1 }},
	{"y-1", COMP_Y_MINUS_ONE, func(x, y uint16) uint16 { return y - 1 }},
	{"x+y", COMP_X_PLUS_Y, func(x, y uint16) uint16 { return x + y }},
	{"x-y", COMP_X_MINUS_Y, func(x, y uint16) uint16 { return x - y }},
	{"y-x", COMP_Y_MINUS_X, func(x, y uint16) uint16 { return y - x }},
	{"x&y", COMP_X_AND_Y, func(x, y uint16) uint16 { return x & y }},
	{"x|y", COMP_X_OR_Y, func(x, y uint16) uint16 { return x | y }},
}

func checkAlu(t *testing.T, x, y uint16) bool {
	for _, entry := range aluTable {
		got := Alu(x, y, entry.comp)
		if got != entry.want(x, y) {
			t.Errorf("%v: x=%04x y=%04x got %04x want %04x", entry.name, x, y, got, entry.want(x, y))
			return false
		}
	}
	return true
}

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	edges := []uint16{0, 1, 2, 0x7ffe, 0x7fff, 0x8000, 0x8001, 0xfffe, 0xffff, 0x1234, 0xa5a5}

	for x := range 0x10000 {
		for _, y := range edges {
			if !checkAlu(t, uint16(x), y) || !checkAlu(t, y, uint16(x)) {
				t.FailNow()
			}
		}
	}

	// Wraparound.
	assert.Equal(uint16(0), Alu(0xffff, 0, COMP_X_PLUS_ONE))
	assert.Equal(uint16(0xffff), Alu(0, 0, COMP_X_MINUS_ONE))
	assert.Equal(uint16(0x8000), Alu(0x8000, 0, COMP_NEG_X))
	assert.Equal(uint16(0x0001), Alu(0x8000, 0x7fff, COMP_X_MINUS_Y))
	assert.Equal(uint16(0xfffe), Alu(0x7fff, 0x7fff, COMP_X_PLUS_Y))
}

func TestAluIgnoresHighBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Alu(3, 5, COMP_X_PLUS_Y), Alu(3, 5, COMP_X_PLUS_Y|0x40))
}

func FuzzAlu(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(0xffff), uint16(1))
	f.Add(uint16(0x8000), uint16(0x7fff))

	f.Fuzz(func(t *testing.T, x uint16, y uint16) {
		checkAlu(t, x, y)
	})
}
