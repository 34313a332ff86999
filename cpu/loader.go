// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Loader parses program images. The format is chosen by the first
// non-blank line: a "hackem" header selects the hackem format, anything
// else is read as the legacy format of 16 digit binary words.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	image   *Image
	segment int // Index of the current segment, -1 if none.
	cursor  int // Next address to write in the current segment.
}

// Parse parses an input stream into an Image. The whole parse fails on
// the first malformed line.
func (ld *Loader) Parse(input io.Reader) (img *Image, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			img = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.image = &Image{}
	ld.segment = -1
	ld.cursor = 0

	first := true
	for scanner.Scan() {
		lineno += 1
		line = strings.TrimSpace(scanner.Text())

		if ld.Verbose {
			log.Printf("loader: %v: %v", lineno, line)
		}

		if len(line) == 0 {
			continue
		}

		if first {
			first = false
			if strings.HasPrefix(line, "hackem") {
				err = ld.parseHeader(line)
				if err != nil {
					return
				}
				continue
			}
			ld.image.Format = FORMAT_BINARY
			ld.startSegment(lineno, TARGET_ROM, 0)
		}

		if strings.HasPrefix(line, "//") {
			continue
		}

		switch ld.image.Format {
		case FORMAT_HACKEM:
			err = ld.parseHackem(line, lineno)
		default:
			err = ld.parseBinary(line)
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	img = ld.image
	ld.image = nil

	return
}

// parseHeader parses 'hackem v1.0 0xHALT'.
func (ld *Loader) parseHeader(line string) (err error) {
	words := strings.Fields(line)
	if len(words) != 3 || words[0] != "hackem" {
		err = ErrHeaderSyntax
		return
	}

	if words[1] != HACKEM_VERSION {
		err = ErrVersion
		return
	}

	halt, ok := strings.CutPrefix(words[2], "0x")
	if !ok {
		halt, ok = strings.CutPrefix(words[2], "0X")
	}
	if !ok {
		err = ErrParseNumber(words[2])
		return
	}

	address, err := ld.parseAddress(halt)
	if err != nil {
		return
	}

	ld.image.Format = FORMAT_HACKEM
	ld.image.Version = words[1]
	ld.image.HaltAddr = address

	return
}

// parseAddress parses a hex memory address.
func (ld *Loader) parseAddress(word string) (address uint16, err error) {
	value, err := strconv.ParseUint(word, 16, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if value >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	address = uint16(value)
	return
}

// parseHackem parses a section header or data line of a hackem image.
func (ld *Loader) parseHackem(line string, lineno int) (err error) {
	for _, target := range []Target{TARGET_RAM, TARGET_ROM} {
		hex, ok := strings.CutPrefix(line, target.String()+"@")
		if !ok {
			continue
		}
		var address uint16
		address, err = ld.parseAddress(hex)
		if err != nil {
			return
		}
		ld.startSegment(lineno, target, address)
		return
	}

	if ld.segment < 0 {
		err = ErrSectionMissing
		return
	}

	if len(line) != 4 {
		err = ErrParseNumber(line)
		return
	}

	value, err := strconv.ParseUint(line, 16, 16)
	if err != nil {
		err = ErrParseNumber(line)
		return
	}

	err = ld.emit(uint16(value))
	return
}

// parseBinary parses a line of a legacy binary image.
func (ld *Loader) parseBinary(line string) (err error) {
	if len(line) != 16 {
		err = ErrParseNumber(line)
		return
	}

	value, err := strconv.ParseUint(line, 2, 16)
	if err != nil {
		err = ErrParseNumber(line)
		return
	}

	err = ld.emit(uint16(value))
	return
}

// startSegment moves the write cursor to a new segment.
func (ld *Loader) startSegment(lineno int, target Target, address uint16) {
	ld.image.Segments = append(ld.image.Segments, Segment{
		LineNo:  lineno,
		Target:  target,
		Address: address,
	})
	ld.segment = len(ld.image.Segments) - 1
	ld.cursor = int(address)
}

// emit writes a word at the cursor and advances it.
func (ld *Loader) emit(value uint16) (err error) {
	if ld.cursor >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	seg := &ld.image.Segments[ld.segment]
	seg.Words = append(seg.Words, value)
	ld.cursor++

	return
}
