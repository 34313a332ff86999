package cpu

import (
	"fmt"
	"io"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/hackem/internal"
)

// Format is a program image text format.
type Format int

const (
	FORMAT_BINARY = Format(0) // binary
	FORMAT_HACKEM = Format(1) // hackem
)

// Target is the memory a segment is loaded into.
type Target int

const (
	TARGET_ROM = Target(0) // ROM
	TARGET_RAM = Target(1) // RAM
)

func (format Format) String() string {
	if format == FORMAT_HACKEM {
		return "hackem"
	}
	return "binary"
}

func (target Target) String() string {
	if target == TARGET_RAM {
		return "RAM"
	}
	return "ROM"
}

// HACKEM_VERSION is the only supported hackem image version.
const HACKEM_VERSION = "v1.0"

// Segment is a run of consecutive words loaded at Address.
type Segment struct {
	LineNo  int      // Line number of the section header.
	Target  Target   // ROM or RAM.
	Address uint16   // Load address of the first word.
	Words   []uint16 // Words to load.
}

// Cells iterates over the address and value of every word in the segment.
func (seg *Segment) Cells() iter.Seq2[uint16, uint16] {
	return func(yield func(address uint16, value uint16) bool) {
		for n, word := range seg.Words {
			if !yield(seg.Address+uint16(n), word) {
				return
			}
		}
	}
}

// Image is a parsed program image.
type Image struct {
	Format   Format
	Version  string
	HaltAddr uint16
	Segments []Segment
}

// Cells iterates over every word destined for target, in file order.
func (img *Image) Cells(target Target) iter.Seq2[uint16, uint16] {
	var seqs []iter.Seq2[uint16, uint16]
	for n := range img.Segments {
		seg := &img.Segments[n]
		if seg.Target == target {
			seqs = append(seqs, seg.Cells())
		}
	}
	return internal.IterSeq2Concat(seqs...)
}

// WriteTo writes the image in hackem format.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "hackem %v 0x%04x\n", HACKEM_VERSION, img.HaltAddr)
	for _, seg := range img.Segments {
		fmt.Fprintf(&sb, "%v@%04x\n", seg.Target, seg.Address)
		for _, word := range seg.Words {
			fmt.Fprintf(&sb, "%04x\n", word)
		}
	}

	written, err := io.WriteString(w, sb.String())
	n = int64(written)
	return
}

// Load copies an image into ROM and RAM and sets the halt address.
// Memory not covered by the image is left unchanged.
func (cpu *Cpu) Load(img *Image) (err error) {
	for _, seg := range img.Segments {
		if int(seg.Address)+len(seg.Words) > MEMORY_SIZE {
			err = &ErrSyntax{LineNo: seg.LineNo, Line: fmt.Sprintf("%v@%04x", seg.Target, seg.Address), Err: ErrAddressRange}
			return
		}
	}

	for address, value := range img.Cells(TARGET_ROM) {
		cpu.Rom[address] = value
	}
	for address, value := range img.Cells(TARGET_RAM) {
		cpu.Ram[address] = value
	}

	cpu.HaltAddr = img.HaltAddr

	if cpu.Verbose {
		log.Printf("cpu: loaded %v image, %d segments, halt %04x", img.Format, len(img.Segments), img.HaltAddr)
	}

	return
}

// LoadFile parses a program image and loads it.
// Nothing is loaded if the image does not parse.
func (cpu *Cpu) LoadFile(input io.Reader) (err error) {
	ld := &Loader{Verbose: cpu.Verbose}

	img, err := ld.Parse(input)
	if err != nil {
		return
	}

	err = cpu.Load(img)
	return
}
