package shell

import (
	"strings"

	"github.com/craftcon/craftcon/internal/grammar"
	"github.com/craftcon/craftcon/internal/help"
)

// errorPrefixes are server error messages that arrive glued to their detail
// text; they read better broken onto their own line.
var errorPrefixes = []string{
	"Unknown or incomplete command, see below for error",
	"Incorrect argument for command",
}

// FormatResponse prepares a server response for display. Help responses are
// reflowed to one command per line with recognized command heads
// highlighted; known error prefixes are split from their detail text and
// colorized. Everything else passes through untouched.
func FormatResponse(reg *grammar.Registry, cmd, body string) string {
	name := strings.TrimPrefix(cmd, "/")
	if name == "help" || strings.HasPrefix(name, "help ") {
		return formatHelp(reg, body)
	}
	for _, prefix := range errorPrefixes {
		if strings.HasPrefix(body, prefix) {
			detail := strings.TrimLeft(body[len(prefix):], " ")
			return errorStyle.Render(prefix) + "\n" + detail
		}
	}
	return body
}

func formatHelp(reg *grammar.Registry, body string) string {
	lines := help.Lines(body)
	for i, line := range lines {
		lines[i] = Highlight(reg, line)
	}
	return strings.Join(lines, "\n")
}
