package pdb

import (
	"cmp"
	"errors"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/hackem/internal"
)

// SymbolKind is the kind of a symbol.
type SymbolKind int

const (
	KIND_UNKNOWN  = SymbolKind(0) // ?
	KIND_FUNCTION = SymbolKind(1) // F
	KIND_LABEL    = SymbolKind(2) // L
	KIND_VARIABLE = SymbolKind(3) // V
)

var kindName = map[SymbolKind]string{
	KIND_UNKNOWN:  "?",
	KIND_FUNCTION: "F",
	KIND_LABEL:    "L",
	KIND_VARIABLE: "V",
}

func (kind SymbolKind) String() string {
	name, ok := kindName[kind]
	if !ok {
		name = kindName[KIND_UNKNOWN]
	}
	return name
}

// Symbol is a named address.
type Symbol struct {
	Name    string     `json:"name" yaml:"name"`
	Address uint16     `json:"address" yaml:"address"`
	Kind    SymbolKind `json:"kind" yaml:"kind"`
}

// SourceLine maps an instruction address to a line of a source file.
type SourceLine struct {
	File    int    `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Address uint16 `json:"address" yaml:"address"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

// FileInfo describes a source file. Its id is its index in Input.Files.
type FileInfo struct {
	Path string `json:"path" yaml:"path"`
}

// Input is the deserialized program database.
type Input struct {
	Symbols   []Symbol     `json:"symbols" yaml:"symbols"`
	SourceMap []SourceLine `json:"source_map" yaml:"source_map"`
	Files     []FileInfo   `json:"files" yaml:"files"`
}

// validate checks that every source line refers to a file.
func (in *Input) validate() (err error) {
	for _, line := range in.SourceMap {
		if line.File < 0 || line.File >= len(in.Files) {
			err = errors.Join(ErrDatabaseFormat, errors.New(f("file id %v out of range", line.File)))
			return
		}
	}
	return
}

// NO_FILE is the file id of an unknown Location.
const NO_FILE = -1

// Location is the source location of an address.
type Location struct {
	File    int    // File id, NO_FILE if unknown.
	Line    int    // Line number, 0 if unknown.
	Text    string // Source text, if known.
	Address uint16 // Address of the start of the line, or the queried address if unknown.
}

// Known returns true if the location has a source file.
func (loc Location) Known() bool {
	return loc.File != NO_FILE
}

// Database is an indexed program database.
type Database struct {
	symbols []Symbol
	byName  map[string][]int
	lines   []SourceLine // Address ordered, one per address.
	files   []FileInfo
}

// New creates an empty program database.
func New() (db *Database) {
	db = &Database{}
	db.Load(&Input{})
	return
}

// Load replaces the whole database with the input.
func (db *Database) Load(in *Input) {
	db.symbols = slices.Clone(in.Symbols)
	db.files = slices.Clone(in.Files)

	db.byName = make(map[string][]int, len(db.symbols))
	for n, sym := range db.symbols {
		db.byName[sym.Name] = append(db.byName[sym.Name], n)
	}

	lines := slices.Clone(in.SourceMap)
	slices.SortStableFunc(lines, func(a, b SourceLine) int {
		return cmp.Compare(a.Address, b.Address)
	})

	// The last entry for an address wins.
	db.lines = lines[:0]
	for _, line := range lines {
		if n := len(db.lines); n > 0 && db.lines[n-1].Address == line.Address {
			db.lines[n-1] = line
			continue
		}
		db.lines = append(db.lines, line)
	}
}

// Len returns the number of symbols.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.symbols)
}

// Symbols returns all symbols with exactly the given name.
func (db *Database) Symbols(name string) (syms []Symbol) {
	if db == nil {
		return
	}
	for _, n := range db.byName[name] {
		syms = append(syms, db.symbols[n])
	}
	return
}

// Lookup returns the one symbol with the given name.
func (db *Database) Lookup(name string) (sym Symbol, err error) {
	syms := db.Symbols(name)
	switch len(syms) {
	case 0:
		err = ErrSymbolNotFound(name)
	case 1:
		sym = syms[0]
	default:
		err = ErrSymbolAmbiguous(name)
	}
	return
}

// List iterates over the symbols whose name contains match, in load order.
func (db *Database) List(match string) iter.Seq[Symbol] {
	if db == nil {
		return slices.Values([]Symbol(nil))
	}
	return internal.IterSeqFilter(slices.Values(db.symbols), func(sym Symbol) bool {
		return strings.Contains(sym.Name, match)
	})
}

// File returns the file info for a file id.
func (db *Database) File(id int) (info FileInfo, ok bool) {
	if db == nil || id < 0 || id >= len(db.files) {
		return
	}
	return db.files[id], true
}

// WhereAreWe returns the source location with the greatest address that is
// less than or equal to address.
func (db *Database) WhereAreWe(address uint16) (loc Location) {
	loc = Location{File: NO_FILE, Address: address}
	if db == nil {
		return
	}

	n, found := slices.BinarySearchFunc(db.lines, address, func(line SourceLine, address uint16) int {
		return cmp.Compare(line.Address, address)
	})
	if !found {
		if n == 0 {
			return
		}
		n--
	}

	line := db.lines[n]
	loc = Location{
		File:    line.File,
		Line:    line.Line,
		Text:    line.Text,
		Address: line.Address,
	}
	return
}
