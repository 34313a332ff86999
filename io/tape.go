package io

import (
	"io"
)

// Tape types a byte stream into the keyboard. Each byte is held down
// until Advance is called, and is converted with KeyOf.
type Tape struct {
	Input io.Reader

	hasInput  bool
	lastInput byte
	done      bool
}

var _ KeyDevice = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Key returns the key of the current byte, reading it if needed.
// At the end of input the key is KEY_NONE.
func (tc *Tape) Key() uint8 {
	if !tc.hasInput && !tc.done {
		tc.read()
	}
	if tc.done {
		return KEY_NONE
	}
	return KeyOf(tc.lastInput)
}

// Advance moves to the next byte of the input.
func (tc *Tape) Advance() {
	if tc.done {
		return
	}
	tc.read()
}

// Done returns true once the input is exhausted.
func (tc *Tape) Done() bool {
	return tc.done
}

func (tc *Tape) read() {
	tc.hasInput = false
	if tc.Input == nil {
		tc.done = true
		return
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Input, one[:])
	if err != nil {
		tc.done = true
		return
	}

	tc.lastInput = one[0]
	tc.hasInput = true
}
