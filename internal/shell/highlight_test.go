package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	reg := testRegistry(t, "/ban <player>", "/tp -> teleport", "/teleport <destination>")

	// Recognized heads keep the full line text; unrecognized lines pass
	// through untouched.
	assert.Contains(t, Highlight(reg, "/ban <player>"), "<player>")
	assert.Contains(t, Highlight(reg, "/tp Steve"), "Steve")
	assert.Equal(t, "/unknown <arg>", Highlight(reg, "/unknown <arg>"))
	assert.Equal(t, "plain prose", Highlight(reg, "plain prose"))
	assert.Equal(t, "", Highlight(reg, ""))
	assert.Equal(t, "/ban x", Highlight(nil, "/ban x"))
}

func TestHighlight_PreservesLeadingWhitespace(t *testing.T) {
	reg := testRegistry(t, "/seed")

	out := Highlight(reg, "  /seed")
	assert.True(t, len(out) >= len("  /seed"))
	assert.Equal(t, "  ", out[:2])
}

func TestBanner(t *testing.T) {
	out := Banner("localhost:25575", 42)
	assert.Contains(t, out, "craftcon")
	assert.Contains(t, out, "localhost:25575")
	assert.Contains(t, out, "42")
}
