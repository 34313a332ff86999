package cpu

import (
	"log"
)

// Memory map.
const (
	MEMORY_SIZE  = 0x8000 // Words of RAM, and of ROM.
	SCREEN_BASE  = 0x4000 // Screen bitmap, 512x256 pixels, 16 pixels per word.
	SCREEN_END   = 0x6000 // End of the screen bitmap.
	KEYBOARD     = 0x6000 // Current key, supplied by the Keyboard.
	SCREEN_WIDTH = 512    // Screen width in pixels.
	SCREEN_ROWS  = 256    // Screen height in pixels.
)

// Keyboard supplies the key currently held down, or 0 for none.
type Keyboard interface {
	Key() uint8
}

// Read returns the RAM word at address. The keyboard address always
// returns the Keyboard's current key, never stored state.
func (cpu *Cpu) Read(address uint16) (value uint16, err error) {
	if address >= MEMORY_SIZE {
		if cpu.Verbose {
			log.Printf("cpu: invalid read address %04x at %04x", address, cpu.Pc)
		}
		err = &ErrMemory{Address: address}
		return
	}

	switch {
	case address == KEYBOARD:
		if cpu.Keyboard != nil {
			value = uint16(cpu.Keyboard.Key())
		}
	default:
		value = cpu.Ram[address]
	}

	return
}

// Write stores a RAM word. Screen writes are only stored; rendering them
// is left to the owner of the Cpu.
func (cpu *Cpu) Write(address uint16, value uint16) (err error) {
	if address >= MEMORY_SIZE {
		if cpu.Verbose {
			log.Printf("cpu: invalid write address %04x at %04x", address, cpu.Pc)
		}
		err = &ErrMemory{Address: address, Write: true}
		return
	}

	cpu.Ram[address] = value

	return
}
