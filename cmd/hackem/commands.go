package main

import (
	"errors"
	"fmt"
	stdio "io"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/ezrec/hackem/cpu"
	"github.com/ezrec/hackem/debugger"
	"github.com/ezrec/hackem/io"
	"github.com/ezrec/hackem/pdb"
)

var errUsage = errors.New("missing arguments")

// newDebugger creates a debugger with the code file and program database
// named on the command line.
func newDebugger(c *cli.Context, code string) (dbg *debugger.Debugger, err error) {
	dbg = debugger.NewDebugger()
	dbg.Verbose = c.GlobalBool("verbose")

	if code != "" {
		err = loadFile(code, dbg.LoadCode)
		if err != nil {
			return
		}
		slog.Debug("loaded code", "file", code, "halt", debugger.FormatAddress(dbg.Cpu.HaltAddr))
	}

	pdbPath := c.String("pdb")
	if pdbPath != "" {
		read := pdb.ReaderFor(pdbPath)
		err = loadFile(pdbPath, func(input stdio.Reader) (err error) {
			in, err := read(input)
			if err != nil {
				return
			}
			dbg.LoadDatabase(in)
			return
		})
		if err != nil {
			return
		}
		slog.Debug("loaded program database", "file", pdbPath, "symbols", dbg.Database.Len())
	}

	return
}

func loadFile(path string, load func(input stdio.Reader) error) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = load(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

func printEvals(dbg *debugger.Debugger, exprs []string) {
	for _, expr := range exprs {
		value, err := dbg.Evaluate(expr)
		if err != nil {
			slog.Error("evaluate", "error", err)
			continue
		}
		fmt.Printf("%v = %v (%d)\n", expr, debugger.FormatAddress(value), value)
	}
}

func runProgram(c *cli.Context) (err error) {
	if c.NArg() != 1 {
		cli.ShowCommandHelp(c, "run")
		return errUsage
	}

	dbg, err := newDebugger(c, c.Args().Get(0))
	if err != nil {
		return
	}

	for _, text := range c.StringSlice("break") {
		_, err = dbg.Break(text)
		if err != nil {
			return
		}
	}

	var devices []io.Device
	var tape *io.Tape
	if keys := c.String("keys"); keys != "" {
		var inf *os.File
		inf, err = os.Open(keys)
		if err != nil {
			return
		}
		defer inf.Close()
		tape = &io.Tape{Input: inf}
		dbg.Cpu.Keyboard = tape
		devices = append(devices, tape)
	} else {
		kb := &io.Keyboard{}
		dbg.Cpu.Keyboard = kb
		devices = append(devices, kb)
	}
	screen := io.NewScreen(dbg.Cpu)
	devices = append(devices, screen)
	io.Rewind(devices...)

	budget := c.Duration("budget")
	maxSlices := c.Int("max-slices")

	var stop cpu.StopReason
	for slices := 1; ; slices++ {
		stop, err = dbg.Continue(budget)
		if err != nil {
			return
		}
		if stop != cpu.STOP_BUDGET {
			break
		}

		slog.Debug("slice", "pc", debugger.FormatAddress(dbg.Cpu.Pc), "speed", dbg.Cpu.Speed)
		if tape != nil {
			tape.Advance()
		}
		if maxSlices > 0 && slices >= maxSlices {
			break
		}
	}

	loc := dbg.Location()
	if loc.Known() {
		slog.Info("stopped", "reason", stop, "pc", debugger.FormatAddress(dbg.Cpu.Pc), "file", dbg.FileName(loc), "line", loc.Line)
	} else {
		slog.Info("stopped", "reason", stop, "pc", debugger.FormatAddress(dbg.Cpu.Pc))
	}

	fmt.Print(dbg.Cpu.String())
	printEvals(dbg, c.StringSlice("eval"))

	if c.Bool("screen") && !screen.Blank() {
		fmt.Print(screen.String())
	}

	return
}

func disassemble(c *cli.Context) (err error) {
	if c.NArg() != 1 {
		cli.ShowCommandHelp(c, "dis")
		return errUsage
	}

	dbg, err := newDebugger(c, c.Args().Get(0))
	if err != nil {
		return
	}

	if c.Bool("symbols") {
		for sym := range dbg.Database.List(c.String("match")) {
			fmt.Printf("%v %v %v\n", debugger.FormatAddress(sym.Address), sym.Kind, sym.Name)
		}
		return
	}

	start, err := dbg.Address(c.String("start"))
	if err != nil {
		return
	}

	for _, line := range dbg.Disassemble(start, c.Int("count")) {
		fmt.Println(line)
	}

	return
}

func evaluate(c *cli.Context) (err error) {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "eval")
		return errUsage
	}

	dbg, err := newDebugger(c, c.String("code"))
	if err != nil {
		return
	}

	for _, expr := range c.Args() {
		var value uint16
		value, err = dbg.Address(expr)
		if err != nil {
			return
		}
		fmt.Printf("%v = %v (%d)\n", expr, debugger.FormatAddress(value), value)
	}

	return
}

func convert(c *cli.Context) (err error) {
	if c.NArg() < 1 || c.NArg() > 2 {
		cli.ShowCommandHelp(c, "convert")
		return errUsage
	}

	input := c.Args().Get(0)
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	ld := &cpu.Loader{Verbose: c.GlobalBool("verbose")}
	img, err := ld.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}

	var ouf stdio.Writer = os.Stdout
	if c.NArg() == 2 && c.Args().Get(1) != "-" {
		var file *os.File
		file, err = os.Create(c.Args().Get(1))
		if err != nil {
			return
		}
		defer file.Close()
		ouf = file
	}

	_, err = img.WriteTo(ouf)
	slog.Debug("converted", "input", input, "format", img.Format, "segments", len(img.Segments))
	return
}
