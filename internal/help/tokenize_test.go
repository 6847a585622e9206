package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftcon/craftcon/internal/cerrors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "single placeholder",
			line: "<mode>",
			want: []Token{{Kind: Placeholder, Text: "mode"}},
		},
		{
			name: "optional with alternation and nested placeholder",
			line: "[<mode>|under]",
			want: []Token{
				{Kind: OptionalOpen},
				{Kind: Placeholder, Text: "mode"},
				{Kind: Alternation},
				{Kind: Literal, Text: "under"},
				{Kind: OptionalClose},
			},
		},
		{
			name: "literals and placeholder",
			line: "doDaylightCycle <value>",
			want: []Token{
				{Kind: Literal, Text: "doDaylightCycle"},
				{Kind: Placeholder, Text: "value"},
			},
		},
		{
			name: "required choice group",
			line: "(add|remove|list)",
			want: []Token{
				{Kind: GroupOpen},
				{Kind: Literal, Text: "add"},
				{Kind: Alternation},
				{Kind: Literal, Text: "remove"},
				{Kind: Alternation},
				{Kind: Literal, Text: "list"},
				{Kind: GroupClose},
			},
		},
		{
			name: "angle-bracket alternatives become a choice group",
			line: "<add|remove|list> <player>",
			want: []Token{
				{Kind: GroupOpen},
				{Kind: Literal, Text: "add"},
				{Kind: Alternation},
				{Kind: Literal, Text: "remove"},
				{Kind: Alternation},
				{Kind: Literal, Text: "list"},
				{Kind: GroupClose},
				{Kind: Placeholder, Text: "player"},
			},
		},
		{
			name: "nested optional inside optional",
			line: "[clear [<duration>]]",
			want: []Token{
				{Kind: OptionalOpen},
				{Kind: Literal, Text: "clear"},
				{Kind: OptionalOpen},
				{Kind: Placeholder, Text: "duration"},
				{Kind: OptionalClose},
				{Kind: OptionalClose},
			},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "whitespace only",
			line: "   \t ",
			want: nil,
		},
		{
			name: "hyphenated literal",
			line: "save-all flush",
			want: []Token{
				{Kind: Literal, Text: "save-all"},
				{Kind: Literal, Text: "flush"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "unterminated placeholder", line: "<bar"},
		{name: "unclosed optional", line: "[a|b"},
		{name: "stray optional close", line: "a]"},
		{name: "mismatched group close", line: "[a)"},
		{name: "stray angle close", line: "foo>"},
		{name: "empty placeholder", line: "<>"},
		{name: "empty alternative in placeholder", line: "<add|>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.line)
			require.Error(t, err)
			var parseErr *cerrors.HelpParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "HELP_PARSE", parseErr.Code())
		})
	}
}
