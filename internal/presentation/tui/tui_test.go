package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A bytes.Buffer is not a terminal, so termenv falls back to plain ASCII.

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, "1.2.3")

	assert.Contains(t, buf.String(), "v1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestStyledHeader(t *testing.T) {
	lines := StyledHeader(&bytes.Buffer{})("Menu")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Menu")
	assert.Equal(t, "────────", lines[1])
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()

	out, err := render("**bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "text")
}
