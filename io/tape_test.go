package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Key(t *testing.T) {
	assert := assert.New(t)

	input := bytes.NewBufferString("hi\n")
	tape := &Tape{Input: input}

	assert.False(tape.Done())
	assert.Equal(uint8('h'), tape.Key())
	assert.Equal(uint8('h'), tape.Key())

	tape.Advance()
	assert.Equal(uint8('i'), tape.Key())

	tape.Advance()
	assert.Equal(KEY_NEWLINE, tape.Key())
	assert.False(tape.Done())

	tape.Advance()
	assert.Equal(KEY_NONE, tape.Key())
	assert.True(tape.Done())

	tape.Advance()
	assert.Equal(KEY_NONE, tape.Key())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewBufferString("ab")}
	tape.Advance()
	tape.Advance()
	assert.False(tape.Done())
	tape.Advance()
	assert.True(tape.Done())

	// Rewind is not possible on a tape.
	tape.Rewind()
	assert.True(tape.Done())
	assert.Equal(KEY_NONE, tape.Key())
}

func TestTape_Advance_First(t *testing.T) {
	assert := assert.New(t)

	// Advancing before the first Key skips nothing.
	tape := &Tape{Input: bytes.NewBufferString("xy")}
	tape.Advance()
	assert.Equal(uint8('x'), tape.Key())
}

type errorReader struct{}

func (errorReader) Read(p []byte) (int, error) {
	return 0, errors.New("read error")
}

func TestTape_ReadError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: errorReader{}}
	assert.Equal(KEY_NONE, tape.Key())
	assert.True(tape.Done())

	tape = &Tape{}
	assert.Equal(KEY_NONE, tape.Key())
	assert.True(tape.Done())
}
