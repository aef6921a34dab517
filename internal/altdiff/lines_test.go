package altdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a\n", "b"}, Lines("a\nb"))
	assert.Equal(t, []string{"a\n", "\n"}, Lines("a\n\n"))
	assert.Equal(t, []string{"a\r\n", "b\r\n"}, Lines("a\r\nb\r\n"))
	assert.Equal(t, [][]byte{[]byte("x\n"), []byte("y")}, Lines([]byte("x\ny")))
}

func TestTrimEOL(t *testing.T) {
	assert.Equal(t, "a", trimEOL("a\n"))
	assert.Equal(t, "a", trimEOL("a\r\n"))
	assert.Equal(t, "a\r", trimEOL("a\r"))
	assert.Equal(t, "a", trimEOL("a"))
	assert.Equal(t, "", trimEOL("\n"))
	assert.Equal(t, "", trimEOL(""))
}
