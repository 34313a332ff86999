// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package debugger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/ezrec/hackem/cpu"
	"github.com/ezrec/hackem/pdb"
)

// Debugger state. CPU + program database.
type Debugger struct {
	Verbose  bool          // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Database *pdb.Database // Program database of the loaded code.
}

// Line is one line of a disassembly listing.
type Line struct {
	Address  uint16
	Word     uint16
	Text     string       // Disassembled instruction.
	Labels   []string     // Symbols at this address.
	Location pdb.Location // Source location of the address.
}

// NewDebugger creates a new debugger with an empty program database.
func NewDebugger() (dbg *Debugger) {
	dbg = &Debugger{
		Cpu:      cpu.NewCpu(),
		Database: pdb.New(),
	}

	return
}

// LoadCode parses and loads a program image, then resets the CPU.
func (dbg *Debugger) LoadCode(input io.Reader) (err error) {
	dbg.Cpu.Verbose = dbg.Verbose

	err = dbg.Cpu.LoadFile(input)
	if err != nil {
		return
	}

	dbg.Cpu.Reset()
	return
}

// LoadDatabase replaces the program database.
func (dbg *Debugger) LoadDatabase(in *pdb.Input) {
	dbg.Database.Load(in)

	if dbg.Verbose {
		log.Printf("debugger: %d symbols, %d source lines, %d files", len(in.Symbols), len(in.SourceMap), len(in.Files))
	}
}

// ReadDatabase reads a JSON program database and replaces the current one.
func (dbg *Debugger) ReadDatabase(input io.Reader) (err error) {
	in, err := pdb.ReadJSON(input)
	if err != nil {
		return
	}

	dbg.LoadDatabase(in)
	return
}

// ConvertAddr resolves address text, a number or a symbol name.
func (dbg *Debugger) ConvertAddr(text string) (address uint16, name string, err error) {
	return dbg.Database.Resolve(text)
}

// WhereAreWe returns the source location of an address.
func (dbg *Debugger) WhereAreWe(address uint16) pdb.Location {
	return dbg.Database.WhereAreWe(address)
}

// Location returns the source location of the PC.
func (dbg *Debugger) Location() pdb.Location {
	return dbg.WhereAreWe(dbg.Cpu.Pc)
}

// FileName returns the source file path of a location, or "" if unknown.
func (dbg *Debugger) FileName(loc pdb.Location) (path string) {
	info, ok := dbg.Database.File(loc.File)
	if ok {
		path = info.Path
	}
	return
}

// Address converts an address argument. Text starting with '=' is an
// expression, anything else goes through ConvertAddr.
func (dbg *Debugger) Address(text string) (address uint16, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		err = ErrEmptyAddress
		return
	}

	expr, ok := strings.CutPrefix(text, "=")
	if ok {
		address, err = dbg.Evaluate(expr)
		return
	}

	address, _, err = dbg.ConvertAddr(text)
	return
}

// FormatAddress formats an address the way Address accepts it.
func FormatAddress(address uint16) string {
	return fmt.Sprintf("$%x", address)
}

// Break sets a breakpoint at an address argument.
func (dbg *Debugger) Break(text string) (address uint16, err error) {
	address, err = dbg.Address(text)
	if err != nil {
		return
	}

	dbg.Cpu.AddBreakpoint(address)
	if dbg.Verbose {
		log.Printf("debugger: breakpoint %v at %04x", text, address)
	}
	return
}

// wrap tags a runtime error with the location of the faulting PC.
func (dbg *Debugger) wrap(err error) error {
	if err == nil || !errors.Is(err, cpu.ErrRuntime) {
		return err
	}

	loc := dbg.Location()
	return &ErrRuntime{
		Pc:       dbg.Cpu.Pc,
		Location: loc,
		File:     dbg.FileName(loc),
		Err:      err,
	}
}

// Run executes for one time slice. See cpu.Cpu.ExecuteInstructions.
func (dbg *Debugger) Run(budget time.Duration) (stop cpu.StopReason, err error) {
	dbg.Cpu.Verbose = dbg.Verbose

	stop, err = dbg.Cpu.ExecuteInstructions(budget)
	err = dbg.wrap(err)

	if dbg.Verbose && stop != cpu.STOP_BUDGET {
		log.Printf("debugger: stop %v at %04x", stop, dbg.Cpu.Pc)
	}
	return
}

// Step executes exactly one instruction, ignoring breakpoints.
func (dbg *Debugger) Step() (stop cpu.StopReason, err error) {
	return dbg.Run(0)
}

// Continue resumes a run. When stopped on a breakpoint, the instruction
// under it is executed before the time sliced run resumes.
func (dbg *Debugger) Continue(budget time.Duration) (stop cpu.StopReason, err error) {
	for bp := range dbg.Cpu.Breakpoints() {
		if bp.Enabled && bp.Address == dbg.Cpu.Pc {
			stop, err = dbg.Step()
			if err != nil || stop.Done() {
				return
			}
			break
		}
	}

	return dbg.Run(budget)
}

// Disassemble lists count instructions of ROM starting at address.
func (dbg *Debugger) Disassemble(address uint16, count int) (lines []Line) {
	labels := map[uint16][]string{}
	for sym := range dbg.Database.List("") {
		labels[sym.Address] = append(labels[sym.Address], sym.Name)
	}

	for n := range count {
		here := int(address) + n
		if here >= cpu.MEMORY_SIZE {
			break
		}
		word := dbg.Cpu.Rom[here]
		lines = append(lines, Line{
			Address:  uint16(here),
			Word:     word,
			Text:     cpu.Disassemble(word),
			Labels:   labels[uint16(here)],
			Location: dbg.WhereAreWe(uint16(here)),
		})
	}

	return
}

// String formats a listing line.
func (line Line) String() string {
	text := fmt.Sprintf("%04x  %04x  %-12s", line.Address, line.Word, line.Text)
	if len(line.Labels) > 0 {
		text += " ; " + strings.Join(line.Labels, ", ")
	}
	if line.Location.Known() && line.Location.Address == line.Address {
		text += fmt.Sprintf(" ; %d: %v", line.Location.Line, line.Location.Text)
	}
	return strings.TrimRight(text, " ")
}
