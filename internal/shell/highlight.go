package shell

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craftcon/craftcon/internal/grammar"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Banner renders the connection banner shown when the shell starts.
func Banner(addr string, commands int) string {
	return promptStyle.Render("craftcon") +
		subtleStyle.Render(" connected to "+addr) + "\n" +
		subtleStyle.Render("Derived grammar for "+strconv.Itoa(commands)+" commands. Tab completes; 'exit' quits.")
}

// Highlight colorizes the leading command token of a line when the registry
// recognizes it. The rest of the line is left untouched. A nil registry
// leaves the line as is.
func Highlight(reg *grammar.Registry, line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if reg == nil || trimmed == "" {
		return line
	}
	head := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		head = trimmed[:i]
	}
	if _, ok := reg.Resolve(head); !ok {
		return line
	}
	lead := line[:len(line)-len(trimmed)]
	return lead + commandStyle.Render(head) + trimmed[len(head):]
}
