package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoaderHackem(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"hackem v1.0 0x0000",
		"ROM@0000",
	}
	for _, word := range storeProgram {
		program = append(program, fmt.Sprintf("%04x", word))
	}
	program = append(program,
		"RAM@0000",
		"1234",
		"2345",
		"",
		"// comment",
		"RAM@3333",
		"abcd",
		"FFFF",
	)

	cpu := NewCpu()
	err := cpu.LoadFile(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	for n, word := range storeProgram {
		assert.Equal(word, cpu.Rom[n])
	}
	assert.Equal(uint16(0x1234), cpu.Ram[0])
	assert.Equal(uint16(0x2345), cpu.Ram[1])
	assert.Equal(uint16(0xabcd), cpu.Ram[0x3333])
	assert.Equal(uint16(0xffff), cpu.Ram[0x3334])
	assert.Equal(uint16(0), cpu.HaltAddr)

	for n := len(storeProgram); n < MEMORY_SIZE; n++ {
		if cpu.Rom[n] != 0 {
			t.Fatalf("rom %04x is %04x", n, cpu.Rom[n])
		}
	}
	for n := range MEMORY_SIZE {
		switch n {
		case 0, 1, 0x3333, 0x3334:
			continue
		}
		if cpu.Ram[n] != 0 {
			t.Fatalf("ram %04x is %04x", n, cpu.Ram[n])
		}
	}

	runToLoop(t, cpu)
	assert.Equal(uint16(3), cpu.Ram[16])
	assert.Equal(uint16(2), cpu.Ram[17])
}

func TestLoaderImage(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"",
		"  hackem   v1.0   0X01aF  ",
		"ROM@0010",
		"0001",
		"RAM@7fff",
		"0002",
		"ROM@0010",
		"0003",
	}

	ld := &Loader{}
	img, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(FORMAT_HACKEM, img.Format)
	assert.Equal("v1.0", img.Version)
	assert.Equal(uint16(0x1af), img.HaltAddr)
	assert.Equal([]Segment{
		{LineNo: 3, Target: TARGET_ROM, Address: 0x10, Words: []uint16{1}},
		{LineNo: 5, Target: TARGET_RAM, Address: 0x7fff, Words: []uint16{2}},
		{LineNo: 7, Target: TARGET_ROM, Address: 0x10, Words: []uint16{3}},
	}, img.Segments)

	// Later segments overwrite earlier ones.
	cpu := NewCpu()
	assert.NoError(cpu.Load(img))
	assert.Equal(uint16(3), cpu.Rom[0x10])
	assert.Equal(uint16(2), cpu.Ram[0x7fff])
	assert.Equal(uint16(0x1af), cpu.HaltAddr)
}

func TestLoaderBinary(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// store program",
		"0000000000000010",
		"1000110000010000",
		"",
		"   0000000000010001   ",
		"// trailing",
	}

	ld := &Loader{}
	img, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(FORMAT_BINARY, img.Format)
	assert.Equal(uint16(0), img.HaltAddr)
	assert.Equal([]Segment{
		{LineNo: 1, Target: TARGET_ROM, Address: 0, Words: []uint16{0x0002, 0x8c10, 0x0011}},
	}, img.Segments)

	cpu := NewCpu()
	assert.NoError(cpu.Load(img))
	assert.Equal([]uint16{0x0002, 0x8c10, 0x0011, 0}, cpu.Rom[:4])
}

func TestLoaderEmpty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	img, err := ld.Parse(strings.NewReader("\n\n   \n"))
	assert.NoError(err)
	assert.Equal(FORMAT_BINARY, img.Format)
	assert.Empty(img.Segments)
}

func TestLoaderErrors(t *testing.T) {
	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"version", []string{"hackem v2.0 0x0000"}, 1, ErrVersion},
		{"header fields", []string{"hackem v1.0"}, 1, ErrHeaderSyntax},
		{"header name", []string{"hackemx v1.0 0x0000"}, 1, ErrHeaderSyntax},
		{"halt prefix", []string{"hackem v1.0 0000"}, 1, ErrLiteral},
		{"halt hex", []string{"hackem v1.0 0xzz"}, 1, ErrLiteral},
		{"halt range", []string{"hackem v1.0 0x8000"}, 1, ErrAddressRange},
		{"no section", []string{"hackem v1.0 0x0000", "// c", "1234"}, 3, ErrSectionMissing},
		{"section hex", []string{"hackem v1.0 0x0000", "ROM@xyz"}, 2, ErrLiteral},
		{"section range", []string{"hackem v1.0 0x0000", "RAM@8000"}, 2, ErrAddressRange},
		{"word short", []string{"hackem v1.0 0x0000", "ROM@0000", "123"}, 3, ErrLiteral},
		{"word hex", []string{"hackem v1.0 0x0000", "ROM@0000", "12g4"}, 3, ErrLiteral},
		{"word overflow", []string{"hackem v1.0 0x0000", "ROM@7fff", "0001", "0002"}, 4, ErrAddressRange},
		{"binary length", []string{"000000000000001"}, 1, ErrLiteral},
		{"binary digit", []string{"0000000000000021"}, 1, ErrLiteral},
		{"binary hackem late", []string{"0000000000000001", "hackem v1.0 0x0000"}, 2, ErrLiteral},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			ld := &Loader{}
			img, err := ld.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
			assert.Nil(img)
			assert.ErrorIs(err, entry.err)
			assert.ErrorIs(err, ErrLoad)

			var errSyntax *ErrSyntax
			if assert.True(errors.As(err, &errSyntax)) {
				assert.Equal(entry.lineno, errSyntax.LineNo)
				assert.Equal(strings.TrimSpace(entry.program[entry.lineno-1]), errSyntax.Line)
			}
		})
	}
}

func TestLoadFileFailureLoadsNothing(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.LoadFile(strings.NewReader("hackem v1.0 0x0010\nROM@0000\n1234\nbogus\n"))
	assert.ErrorIs(err, ErrLoad)
	assert.Equal(uint16(0), cpu.Rom[0])
	assert.Equal(uint16(0), cpu.HaltAddr)
}

func TestLoadRange(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Segments: []Segment{
		{LineNo: 1, Target: TARGET_RAM, Address: 0x7fff, Words: []uint16{1, 2}},
	}}

	cpu := NewCpu()
	err := cpu.Load(img)
	assert.ErrorIs(err, ErrAddressRange)
	assert.Equal(uint16(0), cpu.Ram[0x7fff])
}
