// Package complete answers, for any partial input line and cursor position,
// which tokens are valid next and what to show as an inline hint. It performs
// no I/O: each query is a bounded walk over the immutable command registry.
package complete

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/craftcon/craftcon/internal/grammar"
)

// Result is the transient value returned per query: candidate completions in
// discovery order (deduplicated) and at most one inline hint. The hint is the
// remaining characters of the single best match, or a placeholder's name when
// the grammar expects a free-form argument, or empty when ambiguous.
type Result struct {
	Candidates []string
	Hint       string
}

// Engine walks the registry's syntax trees to answer completion queries.
// It is a pure reader and safe for concurrent use.
type Engine struct {
	reg *grammar.Registry
}

// New creates a completion engine over a built registry.
func New(reg *grammar.Registry) *Engine {
	return &Engine{reg: reg}
}

// Complete splits line[:cursor] into committed tokens plus the active token
// under the cursor and returns what may complete the active token. Unknown
// commands and failed grammar walks yield an empty result, never an error.
// The cursor is a byte offset; one inside a multi-byte rune is moved back to
// the rune's start.
func (e *Engine) Complete(line string, cursor int) Result {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	for cursor > 0 && cursor < len(line) && !utf8.RuneStart(line[cursor]) {
		cursor--
	}
	committed, active := splitInput(line[:cursor])

	if len(committed) == 0 {
		return e.completeName(active)
	}

	canonical, ok := e.reg.Resolve(committed[0])
	if !ok {
		return Result{}
	}
	spec := e.reg.Lookup(canonical)
	frontier, ok := matchSeq(spec.Root.Children, committed[1:])
	if !ok {
		return Result{}
	}
	return resultFrom(frontier, active)
}

// splitInput separates fully typed tokens from the token being typed. An
// input ending in whitespace (or empty) has an empty active token.
func splitInput(input string) (committed []string, active string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, ""
	}
	last, _ := utf8.DecodeLastRuneInString(input)
	if unicode.IsSpace(last) {
		return fields, ""
	}
	return fields[:len(fields)-1], fields[len(fields)-1]
}

// completeName matches the active token as a prefix against every command
// name and alias, tolerating a typed command prefix.
func (e *Engine) completeName(active string) Result {
	typed := e.reg.TrimPrefix(active)
	var candidates []string
	for _, name := range e.reg.Names() {
		if strings.HasPrefix(name, typed) {
			candidates = append(candidates, name)
		}
	}
	return Result{Candidates: candidates, Hint: remainderHint(candidates, typed)}
}

// resultFrom turns the grammar frontier at the active-token position into a
// Result. Literal candidates keep discovery order; a lone placeholder
// contributes its name as the hint instead of enumerable values.
func resultFrom(frontier []*grammar.Node, active string) Result {
	var candidates []string
	var placeholders []string
	seen := make(map[string]bool)
	for _, n := range frontier {
		switch n.Kind {
		case grammar.Literal:
			if strings.HasPrefix(n.Text, active) && !seen["lit:"+n.Text] {
				seen["lit:"+n.Text] = true
				candidates = append(candidates, n.Text)
			}
		case grammar.Placeholder:
			if !seen["ph:"+n.Text] {
				seen["ph:"+n.Text] = true
				placeholders = append(placeholders, n.Text)
			}
		}
	}
	if len(candidates) > 0 {
		return Result{Candidates: candidates, Hint: remainderHint(candidates, active)}
	}
	if len(placeholders) == 1 {
		return Result{Hint: placeholders[0]}
	}
	return Result{}
}

// remainderHint returns the rest of the one candidate matching the typed
// prefix. More than one match is ambiguous and yields no hint, as does an
// empty prefix.
func remainderHint(candidates []string, typed string) string {
	if len(candidates) != 1 || typed == "" {
		return ""
	}
	match := candidates[0]
	if len(match) <= len(typed) {
		return ""
	}
	return match[len(typed):]
}

// --- grammar walk ---

// matchSeq consumes one committed token per sequence step and returns the
// atomic nodes valid at the active-token position. A committed token that
// matches no branch fails the whole walk, as do leftover committed tokens
// once the tree is exhausted.
func matchSeq(seq []*grammar.Node, toks []string) ([]*grammar.Node, bool) {
	if len(toks) == 0 {
		return expandFirst(seq), true
	}
	if len(seq) == 0 {
		return nil, false
	}
	head, rest := seq[0], seq[1:]
	switch head.Kind {
	case grammar.Literal:
		if head.Text != toks[0] {
			return nil, false
		}
		return matchSeq(rest, toks[1:])
	case grammar.Placeholder:
		return matchSeq(rest, toks[1:])
	case grammar.Seq:
		return matchSeq(concat(head.Children, rest), toks)
	case grammar.Choice:
		var frontier []*grammar.Node
		matched := false
		for _, branch := range head.Children {
			if f, ok := matchSeq(concat([]*grammar.Node{branch}, rest), toks); ok {
				matched = true
				frontier = append(frontier, f...)
			}
		}
		return frontier, matched
	case grammar.Optional:
		var frontier []*grammar.Node
		matched := false
		// Consume inside the optional...
		if f, ok := matchSeq(concat(head.Children, rest), toks); ok {
			matched = true
			frontier = append(frontier, f...)
		}
		// ...or skip it as unconsumed.
		if f, ok := matchSeq(rest, toks); ok {
			matched = true
			frontier = append(frontier, f...)
		}
		return frontier, matched
	}
	return nil, false
}

// expandFirst returns the atomic nodes reachable at the head of the
// sequence: the literal or placeholder itself, every Choice branch head, and
// for an Optional both its content and whatever follows it.
func expandFirst(seq []*grammar.Node) []*grammar.Node {
	if len(seq) == 0 {
		return nil
	}
	head, rest := seq[0], seq[1:]
	switch head.Kind {
	case grammar.Literal, grammar.Placeholder:
		return []*grammar.Node{head}
	case grammar.Seq:
		return expandFirst(concat(head.Children, rest))
	case grammar.Choice:
		var out []*grammar.Node
		for _, branch := range head.Children {
			out = append(out, expandFirst(concat([]*grammar.Node{branch}, rest))...)
		}
		return out
	case grammar.Optional:
		out := expandFirst(concat(head.Children, rest))
		return append(out, expandFirst(rest)...)
	}
	return nil
}

func concat(a, b []*grammar.Node) []*grammar.Node {
	out := make([]*grammar.Node, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
