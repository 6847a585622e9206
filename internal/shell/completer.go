package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/craftcon/craftcon/internal/complete"
)

// completer adapts the completion engine to readline's AutoCompleter. A
// single match is inserted directly; multiple matches are listed above the
// prompt in grammar declaration order with the shared remainder inserted;
// a free-form argument is announced by its placeholder name.
type completer struct {
	engine *complete.Engine
	out    io.Writer
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	if pos < 0 || pos > len(line) {
		return nil, 0
	}
	text := string(line[:pos])
	res := c.engine.Complete(text, len(text))
	partial := activeToken(text)

	if len(res.Candidates) == 0 {
		if res.Hint != "" {
			fmt.Fprintln(c.out, placeholderStyle.Render("  <"+res.Hint+">"))
		}
		return nil, 0
	}

	// Candidates never carry the typed command prefix; the partial may.
	base := partial
	if !strings.HasPrefix(res.Candidates[0], base) {
		base = strings.TrimPrefix(base, "/")
	}

	if len(res.Candidates) == 1 {
		suffix := strings.TrimPrefix(res.Candidates[0], base)
		return [][]rune{[]rune(suffix + " ")}, utf8.RuneCountInString(partial)
	}

	writeCandidates(c.out, res.Candidates)
	common := commonRemainder(res.Candidates, base)
	if common == "" {
		return nil, 0
	}
	return [][]rune{[]rune(common)}, utf8.RuneCountInString(partial)
}

// activeToken returns the token under the cursor, empty after whitespace.
func activeToken(text string) string {
	if text == "" {
		return ""
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if unicode.IsSpace(last) {
		return ""
	}
	fields := strings.Fields(text)
	return fields[len(fields)-1]
}

// writeCandidates prints completion candidates above the prompt, keeping the
// grammar's declaration order. The whole block is written in one call so the
// line editor refreshes only once.
func writeCandidates(w io.Writer, candidates []string) {
	var sb strings.Builder
	sb.WriteString(subtleStyle.Render("Possible completions:"))
	sb.WriteByte('\n')
	for _, c := range candidates {
		sb.WriteString("  ")
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	_, _ = io.WriteString(w, sb.String())
}

// commonRemainder returns the prefix shared by all candidates beyond what is
// already typed.
func commonRemainder(candidates []string, typed string) string {
	common := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, common) {
			common = common[:len(common)-1]
			if common == "" {
				return ""
			}
		}
	}
	return strings.TrimPrefix(common, typed)
}
