package pdb

import (
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var kindText = map[string]SymbolKind{
	"f":        KIND_FUNCTION,
	"func":     KIND_FUNCTION,
	"function": KIND_FUNCTION,
	"l":        KIND_LABEL,
	"label":    KIND_LABEL,
	"v":        KIND_VARIABLE,
	"var":      KIND_VARIABLE,
	"variable": KIND_VARIABLE,
}

// UnmarshalText accepts the short and long kind names in any case.
// Unrecognized names are KIND_UNKNOWN.
func (kind *SymbolKind) UnmarshalText(text []byte) error {
	*kind = kindText[strings.ToLower(string(text))]
	return nil
}

// MarshalText writes the long kind name.
func (kind SymbolKind) MarshalText() ([]byte, error) {
	switch kind {
	case KIND_FUNCTION:
		return []byte("function"), nil
	case KIND_LABEL:
		return []byte("label"), nil
	case KIND_VARIABLE:
		return []byte("variable"), nil
	}
	return []byte("unknown"), nil
}

// Reader deserializes a program database.
type Reader func(input io.Reader) (*Input, error)

// ReaderFor returns the reader for a database file name: YAML for
// .yaml and .yml files, JSON for anything else.
func ReaderFor(path string) Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML
	}
	return ReadJSON
}

// ReadJSON deserializes a JSON program database.
func ReadJSON(input io.Reader) (in *Input, err error) {
	in = &Input{}

	dec := json.NewDecoder(input)
	err = dec.Decode(in)
	if err != nil {
		in = nil
		err = errors.Join(ErrDatabaseFormat, err)
		return
	}

	err = in.validate()
	if err != nil {
		in = nil
	}

	return
}

// WriteJSON serializes a program database input.
func WriteJSON(w io.Writer, in *Input) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(in)
	return
}
