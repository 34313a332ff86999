package debugger

import (
	"fmt"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Words of an expression that need resolving. Words starting with a digit
// are numeric literals, left for the evaluator.
var exprWord = regexp.MustCompile(`\$[0-9A-Za-z_]*|[0-9][0-9A-Za-z_]*|[A-Za-z_.][0-9A-Za-z_.$]*`)

// C style operators and their Starlark forms.
var exprOperator = regexp.MustCompile(`//|/|&&|\|\||!=|!`)

var exprOperatorName = map[string]string{
	"/":  "//",
	"&&": " and ",
	"||": " or ",
	"!":  " not ",
}

const exprDeref = "_deref"

// register returns the value of a register variable.
func (dbg *Debugger) register(name string) (value uint16, ok bool) {
	pc, a, d := dbg.Cpu.Registers()
	switch name {
	case ".pc":
		value, ok = pc, true
	case ".a":
		value, ok = a, true
	case ".d":
		value, ok = d, true
	}
	return
}

// deref is the @() builtin, reading a word through the CPU memory policy.
func (dbg *Debugger) deref(fail *error) *starlark.Builtin {
	return starlark.NewBuiltin("@", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) != 1 || len(kwargs) != 0 {
			*fail = ErrDerefArgs
			return nil, *fail
		}

		st_int, ok := args[0].(starlark.Int)
		if !ok {
			*fail = ErrDerefArgs
			return nil, *fail
		}

		address, ok := st_int.Int64()
		if !ok || address < 0 || address > 0xffff {
			*fail = fmt.Errorf("%w: %v", ErrDerefRange, st_int)
			return nil, *fail
		}

		value, err := dbg.Cpu.Read(uint16(address))
		if err != nil {
			*fail = err
			return nil, err
		}

		return starlark.MakeInt(int(value)), nil
	})
}

// Evaluate an integer expression, truncating the result to 16 bits.
//
// The registers are the variables .pc, .a and .d, every other identifier
// is resolved with ConvertAddr, and @(x) reads the RAM word at x.
// Operators and builtins (min, max, abs) are those of Starlark, except
// that / is integer division and &&, || and ! are and, or and not.
// As in Starlark, ! binds looser than comparisons. Booleans are 1 or 0.
func (dbg *Debugger) Evaluate(expr string) (value uint16, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	if strings.ContainsAny(expr, ";\n\r") {
		err = ErrStatement
		return
	}

	var fail error

	pred := starlark.StringDict{
		exprDeref: dbg.deref(&fail),
	}

	// Replace each resolvable word with a predeclared variable.
	text := exprWord.ReplaceAllStringFunc(expr, func(word string) string {
		if word[0] >= '0' && word[0] <= '9' {
			return word
		}

		address, ok := dbg.register(word)
		if !ok {
			var _err error
			address, _, _err = dbg.ConvertAddr(word)
			if _err != nil {
				if _, ok := starlark.Universe[word]; ok {
					return word
				}
				if fail == nil {
					fail = fmt.Errorf("%w: %w", ErrUnresolved, _err)
				}
				return word
			}
		}

		name := fmt.Sprintf("_v%d", len(pred))
		pred[name] = starlark.MakeInt(int(address))
		return name
	})
	if fail != nil {
		err = fail
		return
	}

	text = exprOperator.ReplaceAllStringFunc(text, func(op string) string {
		name, ok := exprOperatorName[op]
		if !ok {
			return op
		}
		return name
	})
	text = strings.ReplaceAll(text, "@", exprDeref)

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + text + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if fail != nil {
		err = fail
		return
	}
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrNotInteger
		return
	}
	var st_int starlark.Int
	switch rc := st_rc.(type) {
	case starlark.Int:
		st_int = rc
	case starlark.Bool:
		if rc {
			st_int = starlark.MakeInt(1)
		} else {
			st_int = starlark.MakeInt(0)
		}
	case starlark.Float:
		st_int, err = starlark.NumberToInt(rc)
		if err != nil {
			err = ErrNotInteger
			return
		}
	default:
		err = ErrNotInteger
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrNotInteger
		return
	}

	value = uint16(st_int64)
	return
}
