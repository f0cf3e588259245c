package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAddWithSpacesInsertsSingleSpace(t *testing.T) {
	b := newBuffer("  ")
	b.addWithSpaces("SELECT")
	b.addWithSpaces("1")
	assert.Equal(t, "SELECT 1", b.String())
}

func TestBufferNewlineUsesIndent(t *testing.T) {
	b := newBuffer("  ")
	b.addWithSpaces("SELECT")
	b.incTopLevel()
	b.addNewline()
	b.addWithSpaces("1")
	assert.Equal(t, "SELECT\n  1", b.String())
}

func TestBufferCollapsesConsecutiveNewlines(t *testing.T) {
	b := newBuffer("  ")
	b.addWithSpaces("SELECT")
	b.addNewline()
	b.addNewline()
	b.addNewline()
	b.addWithSpaces("1")
	assert.Equal(t, "SELECT\n1", b.String())
}

func TestBufferAddWithoutSpacesGluesBothSides(t *testing.T) {
	b := newBuffer("  ")
	b.addWithSpaces("a")
	b.addWithoutSpaces(".")
	b.addWithSpaces("b")
	assert.Equal(t, "a.b", b.String())
}

func TestBufferTopLevelClampsAtZero(t *testing.T) {
	b := newBuffer("  ")
	b.decTopLevel()
	b.decTopLevel()
	assert.Equal(t, 0, b.topLevel)
}

func TestBufferBlockLevelClampsAtZero(t *testing.T) {
	b := newBuffer("  ")
	b.decBlockLevel()
	assert.Equal(t, 0, b.blockLevel)
}
