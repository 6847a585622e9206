// Package help parses server help output: it reflows the raw help dump into
// one line per command and tokenizes each line's argument syntax.
package help

// TokenKind identifies one atomic unit of a help-line grammar
type TokenKind int

const (
	// Literal is a bare keyword that must match exactly
	Literal TokenKind = iota
	// Placeholder is a named free-form argument slot, written <name>
	Placeholder
	// GroupOpen marks the start of a required choice group, written (
	GroupOpen
	// GroupClose marks the end of a required choice group, written )
	GroupClose
	// OptionalOpen marks the start of an optional group, written [
	OptionalOpen
	// OptionalClose marks the end of an optional group, written ]
	OptionalClose
	// Alternation separates alternatives inside a group, written |
	Alternation
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	case GroupOpen:
		return "group-open"
	case GroupClose:
		return "group-close"
	case OptionalOpen:
		return "optional-open"
	case OptionalClose:
		return "optional-close"
	case Alternation:
		return "alternation"
	default:
		return "unknown"
	}
}

// Token is one unit of a tokenized help line. Text is set for Literal and
// Placeholder tokens; marker tokens carry no text.
type Token struct {
	Kind TokenKind
	Text string
}
