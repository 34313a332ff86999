package io

import (
	"iter"
	"strings"

	"github.com/ezrec/hackem/cpu"
)

const (
	SCREEN_COLUMNS = cpu.SCREEN_WIDTH / 16 // Words per screen row.
)

// Screen is a view of the screen bitmap in RAM. Bit i of a word is the
// pixel at column (word column * 16 + i); a set bit is black.
type Screen struct {
	Ram *[cpu.MEMORY_SIZE]uint16
}

var _ Device = (*Screen)(nil)

// NewScreen creates a screen view of the CPU's RAM.
func NewScreen(cp *cpu.Cpu) (scr *Screen) {
	scr = &Screen{Ram: &cp.Ram}
	return
}

func (scr *Screen) index(x, y int) (address int, bit uint, ok bool) {
	if x < 0 || x >= cpu.SCREEN_WIDTH || y < 0 || y >= cpu.SCREEN_ROWS {
		return
	}

	address = cpu.SCREEN_BASE + y*SCREEN_COLUMNS + x/16
	bit = uint(x % 16)
	ok = true
	return
}

// Pixel returns true if the pixel is black. Pixels off the screen are white.
func (scr *Screen) Pixel(x, y int) bool {
	address, bit, ok := scr.index(x, y)
	if !ok {
		return false
	}
	return (scr.Ram[address]>>bit)&1 != 0
}

// SetPixel sets or clears a pixel.
func (scr *Screen) SetPixel(x, y int, black bool) (err error) {
	address, bit, ok := scr.index(x, y)
	if !ok {
		err = ErrPixelRange
		return
	}

	if black {
		scr.Ram[address] |= 1 << bit
	} else {
		scr.Ram[address] &^= 1 << bit
	}
	return
}

// Rewind clears the screen.
func (scr *Screen) Rewind() {
	clear(scr.Ram[cpu.SCREEN_BASE:cpu.SCREEN_END])
}

// Blank returns true if no pixel is set.
func (scr *Screen) Blank() bool {
	for _, word := range scr.Ram[cpu.SCREEN_BASE:cpu.SCREEN_END] {
		if word != 0 {
			return false
		}
	}
	return true
}

// Rows iterates over the screen rows as text, '#' for black and '.' for
// white pixels.
func (scr *Screen) Rows() iter.Seq2[int, string] {
	return func(yield func(y int, row string) bool) {
		var sb strings.Builder
		for y := range cpu.SCREEN_ROWS {
			sb.Reset()
			for x := range cpu.SCREEN_WIDTH {
				if scr.Pixel(x, y) {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			if !yield(y, sb.String()) {
				return
			}
		}
	}
}

// String returns the whole screen as text rows.
func (scr *Screen) String() string {
	var sb strings.Builder
	for _, row := range scr.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
