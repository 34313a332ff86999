// Package io provides the memory mapped devices of the Hack computer:
// the keyboard, a tape that types a byte stream into the keyboard, and a
// view of the screen bitmap.
//
// Devices are owned by the caller, not by the CPU, and hold no state
// inside CPU memory other than the screen bitmap itself.
package io

import (
	"github.com/ezrec/hackem/cpu"
)

// Device defines the interface for the memory mapped devices.
type Device interface {
	// Rewind resets the device to its initial state.
	Rewind()
}

// KeyDevice is a device that supplies the keyboard word.
type KeyDevice interface {
	Device
	cpu.Keyboard
}

// Rewind resets all of the devices.
func Rewind(devices ...Device) {
	for _, dev := range devices {
		dev.Rewind()
	}
}
