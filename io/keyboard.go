package io

// Hack key codes for keys that are not printable ASCII.
const (
	KEY_NONE      = uint8(0)
	KEY_NEWLINE   = uint8(128)
	KEY_BACKSPACE = uint8(129)
	KEY_LEFT      = uint8(130)
	KEY_UP        = uint8(131)
	KEY_RIGHT     = uint8(132)
	KEY_DOWN      = uint8(133)
	KEY_HOME      = uint8(134)
	KEY_END       = uint8(135)
	KEY_PAGE_UP   = uint8(136)
	KEY_PAGE_DOWN = uint8(137)
	KEY_INSERT    = uint8(138)
	KEY_DELETE    = uint8(139)
	KEY_ESCAPE    = uint8(140)
	KEY_F1        = uint8(141) // F2 to F12 follow.
)

// KeyOf returns the Hack key code of an ASCII byte.
// Control characters without a Hack key code are KEY_NONE.
func KeyOf(ch byte) (key uint8) {
	switch {
	case ch == '\n' || ch == '\r':
		key = KEY_NEWLINE
	case ch == '\b' || ch == 0x7f:
		key = KEY_BACKSPACE
	case ch == 0x1b:
		key = KEY_ESCAPE
	case ch >= ' ' && ch < 0x7f:
		key = ch
	}
	return
}

// Keyboard holds the key currently pressed.
type Keyboard struct {
	key uint8
}

var _ KeyDevice = (*Keyboard)(nil)

// Press sets the current key.
func (kb *Keyboard) Press(key uint8) {
	kb.key = key
}

// Release clears the current key.
func (kb *Keyboard) Release() {
	kb.key = KEY_NONE
}

// Key returns the current key, KEY_NONE if no key is pressed.
func (kb *Keyboard) Key() uint8 {
	return kb.key
}

// Rewind releases the current key.
func (kb *Keyboard) Rewind() {
	kb.Release()
}
