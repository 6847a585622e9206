package help

import "strings"

// Reflow normalizes a raw help response. Servers commonly return the whole
// dump as one run-on string with command entries glued together; Reflow
// inserts a line break before each '/' that does not already start a line,
// then trims surrounding whitespace.
func Reflow(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	prev := byte(0)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '/' && i > 0 && prev != '\n' {
			b.WriteByte('\n')
		}
		b.WriteByte(c)
		prev = c
	}
	return strings.TrimSpace(b.String())
}

// Lines reflows a raw help response and returns its non-empty lines, one per
// command entry, in server order.
func Lines(body string) []string {
	var lines []string
	for _, line := range strings.Split(Reflow(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
