package help

import (
	"fmt"
	"strings"

	"github.com/craftcon/craftcon/internal/cerrors"
)

// literal terminators: whitespace and any grammar marker
const delimiters = " \t<>[]()|"

// Tokenize splits one help line's argument syntax into an ordered token
// stream. The leading command name must already be stripped by the caller.
//
// Recognized forms:
//
//	word       bare literal keyword
//	<name>     placeholder argument
//	<a|b>      required choice between literal keywords
//	[ ... ]    optional group (nesting allowed)
//	( ... )    required choice group
//	|          alternation inside a group
//
// Unbalanced brackets yield a *cerrors.HelpParseError.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var open []byte // stack of unclosed group brackets

	i := 0
	for i < len(line) {
		switch c := line[i]; c {
		case ' ', '\t':
			i++
		case '<':
			end := strings.IndexByte(line[i+1:], '>')
			if end < 0 {
				return nil, cerrors.NewHelpParseError(line, "unterminated placeholder")
			}
			name := strings.TrimSpace(line[i+1 : i+1+end])
			if name == "" {
				return nil, cerrors.NewHelpParseError(line, "empty placeholder")
			}
			// Some servers write enumerable alternatives in angle brackets.
			if strings.ContainsRune(name, '|') {
				choice, err := choiceTokens(line, name)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, choice...)
			} else {
				tokens = append(tokens, Token{Kind: Placeholder, Text: name})
			}
			i += end + 2
		case '>':
			return nil, cerrors.NewHelpParseError(line, "unexpected '>'")
		case '[':
			tokens = append(tokens, Token{Kind: OptionalOpen})
			open = append(open, '[')
			i++
		case '(':
			tokens = append(tokens, Token{Kind: GroupOpen})
			open = append(open, '(')
			i++
		case ']', ')':
			want := byte('[')
			kind := OptionalClose
			if c == ')' {
				want = '('
				kind = GroupClose
			}
			if len(open) == 0 || open[len(open)-1] != want {
				return nil, cerrors.NewHelpParseError(line, fmt.Sprintf("unbalanced '%c'", c))
			}
			open = open[:len(open)-1]
			tokens = append(tokens, Token{Kind: kind})
			i++
		case '|':
			tokens = append(tokens, Token{Kind: Alternation})
			i++
		default:
			end := strings.IndexAny(line[i:], delimiters)
			if end < 0 {
				end = len(line) - i
			}
			tokens = append(tokens, Token{Kind: Literal, Text: line[i : i+end]})
			i += end
		}
	}

	if len(open) > 0 {
		return nil, cerrors.NewHelpParseError(line, fmt.Sprintf("unclosed '%c'", open[len(open)-1]))
	}
	return tokens, nil
}

// choiceTokens expands inner angle-bracket alternation into an explicit
// required choice group of literal keywords.
func choiceTokens(line, inner string) ([]Token, error) {
	tokens := []Token{{Kind: GroupOpen}}
	for i, part := range strings.Split(inner, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, cerrors.NewHelpParseError(line, "empty alternative in placeholder")
		}
		if i > 0 {
			tokens = append(tokens, Token{Kind: Alternation})
		}
		tokens = append(tokens, Token{Kind: Literal, Text: part})
	}
	return append(tokens, Token{Kind: GroupClose}), nil
}
