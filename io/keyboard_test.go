package io

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hackem/cpu"
)

func TestKeyOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ch  byte
		key uint8
	}){
		{'a', 'a'},
		{'Z', 'Z'},
		{' ', ' '},
		{'~', '~'},
		{'\n', KEY_NEWLINE},
		{'\r', KEY_NEWLINE},
		{'\b', KEY_BACKSPACE},
		{0x7f, KEY_BACKSPACE},
		{0x1b, KEY_ESCAPE},
		{0x00, KEY_NONE},
		{'\t', KEY_NONE},
		{0x80, KEY_NONE},
		{0xff, KEY_NONE},
	}

	for _, entry := range table {
		assert.Equal(entry.key, KeyOf(entry.ch), "%02x", entry.ch)
	}
}

func TestKeyboard(t *testing.T) {
	assert := assert.New(t)

	kb := &Keyboard{}
	assert.Equal(KEY_NONE, kb.Key())

	kb.Press('q')
	assert.Equal(uint8('q'), kb.Key())

	kb.Press(KEY_F1 + 2)
	assert.Equal(uint8(143), kb.Key())

	kb.Release()
	assert.Equal(KEY_NONE, kb.Key())

	kb.Press(KEY_UP)
	Rewind(kb)
	assert.Equal(KEY_NONE, kb.Key())
}

func TestKeyboard_Cpu(t *testing.T) {
	assert := assert.New(t)

	kb := &Keyboard{}
	cp := cpu.NewCpu()
	cp.Keyboard = kb
	cp.Ram[cpu.KEYBOARD] = 0x1234

	value, err := cp.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(uint16(0), value)

	kb.Press(KEY_NEWLINE)
	value, err = cp.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(uint16(128), value)
}
