package pdb

import (
	"strconv"
	"strings"
)

// Resolve converts address text to an address.
//
// Text prefixed with '$', '0x' or '0X' is hexadecimal, text starting with
// a decimal digit is decimal, and anything else is a symbol name. name is
// the symbol name when the text resolved through a symbol.
func (db *Database) Resolve(text string) (address uint16, name string, err error) {
	var digits string
	base := 0

	switch {
	case text == "":
		err = ErrAddressSyntax(text)
		return
	case strings.HasPrefix(text, "$"):
		digits, base = text[1:], 16
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		digits, base = text[2:], 16
	case text[0] >= '0' && text[0] <= '9':
		digits, base = text, 10
	}

	if base != 0 {
		var value uint64
		value, err = strconv.ParseUint(digits, base, 16)
		if err != nil {
			err = ErrAddressSyntax(text)
			return
		}
		address = uint16(value)
		return
	}

	sym, err := db.Lookup(text)
	if err != nil {
		return
	}

	address = sym.Address
	name = sym.Name
	return
}
