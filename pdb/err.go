package pdb

import (
	"errors"

	"github.com/ezrec/hackem/translate"
)

var f = translate.From

var (
	// ErrResolve is the category of all address resolution errors.
	ErrResolve = errors.New(f("address resolution"))

	ErrDatabaseFormat = errors.New(f("program database format"))
)

// ErrSymbolNotFound is a symbol name with no matches.
type ErrSymbolNotFound string

func (err ErrSymbolNotFound) Error() string {
	return f("symbol '%v' not found", string(err))
}

func (err ErrSymbolNotFound) Unwrap() error {
	return ErrResolve
}

// ErrSymbolAmbiguous is a symbol name with more than one match.
type ErrSymbolAmbiguous string

func (err ErrSymbolAmbiguous) Error() string {
	return f("symbol '%v' is ambiguous", string(err))
}

func (err ErrSymbolAmbiguous) Unwrap() error {
	return ErrResolve
}

// ErrAddressSyntax is a malformed numeric address.
type ErrAddressSyntax string

func (err ErrAddressSyntax) Error() string {
	return f("'%v' is not a valid address", string(err))
}

func (err ErrAddressSyntax) Unwrap() error {
	return ErrResolve
}
