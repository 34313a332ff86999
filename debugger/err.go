package debugger

import (
	"errors"

	"github.com/ezrec/hackem/pdb"
	"github.com/ezrec/hackem/translate"
)

var f = translate.From

var (
	// ErrEvaluate is the category of all expression errors.
	ErrEvaluate = errors.New(f("expression evaluation"))

	ErrNotInteger   = errors.New(f("result is not an integer"))
	ErrDerefRange   = errors.New(f("dereference out of range"))
	ErrDerefArgs    = errors.New(f("@() takes one integer"))
	ErrStatement    = errors.New(f("only a single expression is permitted"))
	ErrUnresolved   = errors.New(f("unresolved identifier"))
	ErrEmptyAddress = errors.New(f("empty address"))
)

// ErrExpression is a failed expression evaluation.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("'%v': %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() []error {
	return []error{ErrEvaluate, err.Err}
}

// ErrRuntime indicates the program location of a runtime error.
type ErrRuntime struct {
	Pc       uint16
	Location pdb.Location
	File     string // Path of the source file, if known.
	Err      error
}

func (err *ErrRuntime) Error() string {
	if err.Location.Known() {
		return f("%v:%d: pc %04x: %v", err.File, err.Location.Line, err.Pc, err.Err)
	}
	return f("pc %04x: %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
