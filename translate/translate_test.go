package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("symbol 'x' not found", From("symbol '%v' not found", "x"))
	assert.Equal("pc 00ff", From("pc %04x", 0xff))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter()
	assert.NotNil(p)
	assert.Equal("1,234", p.Sprintf("%d", 1234))

	p = NewPrinter("en-US", "fr-FR")
	assert.Equal("a=7", p.Sprintf("a=%v", 7))
}
