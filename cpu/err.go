package cpu

import (
	"errors"

	"github.com/ezrec/hackem/translate"
)

var f = translate.From

var (
	// Error categories
	ErrLoad    = errors.New(f("load"))
	ErrRuntime = errors.New(f("runtime"))

	// Runtime errors
	ErrInvalidAddress     = errors.New(f("invalid address"))
	ErrInvalidInstruction = errors.New(f("invalid instruction"))
	ErrInvalidPc          = errors.New(f("invalid pc"))

	// Loader errors
	ErrHeaderSyntax   = errors.New(f("header syntax"))
	ErrVersion        = errors.New(f("version unsupported"))
	ErrSectionMissing = errors.New(f("data before RAM@ or ROM@"))
	ErrLiteral        = errors.New(f("literal invalid"))
	ErrAddressRange   = errors.New(f("address out of range"))

	// Breakpoint errors
	ErrBreakpointMissing = errors.New(f("breakpoint missing"))
)

// ErrMemory is a RAM access outside of the address space.
type ErrMemory struct {
	Address uint16
	Write   bool
}

func (err *ErrMemory) Error() string {
	if err.Write {
		return f("invalid write address 0x%04x", err.Address)
	}
	return f("invalid read address 0x%04x", err.Address)
}

func (err *ErrMemory) Unwrap() []error {
	return []error{ErrRuntime, ErrInvalidAddress}
}

// ErrPc is a program counter outside of ROM.
type ErrPc uint16

func (err ErrPc) Error() string {
	return f("invalid pc 0x%04x", uint16(err))
}

func (err ErrPc) Unwrap() []error {
	return []error{ErrRuntime, ErrInvalidPc}
}

// ErrOpcode is an instruction that cannot be executed.
type ErrOpcode struct {
	Pc   uint16
	Code Code
}

func (err *ErrOpcode) Error() string {
	return f("bad instruction 0x%04x '%v' at 0x%04x", err.Code.Word(), err.Code.String(), err.Pc)
}

func (err *ErrOpcode) Unwrap() []error {
	return []error{ErrRuntime, ErrInvalidInstruction}
}

// ErrSyntax is a load failure on a specific line of a program image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() []error {
	return []error{ErrLoad, err.Err}
}

// ErrParseNumber is a malformed number or address.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrLiteral
}
