package pdb

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML deserializes a YAML program database. The document has the
// same fields as the JSON form.
func ReadYAML(input io.Reader) (in *Input, err error) {
	in = &Input{}

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
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
