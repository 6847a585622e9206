package grammar

import (
	"fmt"
	"strings"

	"github.com/craftcon/craftcon/internal/cerrors"
	"github.com/craftcon/craftcon/internal/help"
)

// DefaultPrefix is the command-prefix character used by Minecraft-family
// servers in their help output.
const DefaultPrefix = "/"

// AliasRule inspects one help line and reports whether it declares an alias.
// The returned names keep whatever prefix the server printed; the builder
// strips it. Alias conventions are server-specific, so the rule is pluggable.
type AliasRule func(line string) (alias, target string, ok bool)

// ArrowAliasRule parses the "/name -> target" alias convention.
func ArrowAliasRule(line string) (string, string, bool) {
	before, after, found := strings.Cut(line, "->")
	if !found {
		return "", "", false
	}
	alias := strings.TrimSpace(before)
	target := strings.TrimSpace(after)
	if alias == "" || target == "" || strings.ContainsAny(alias, " \t") || strings.ContainsAny(target, " \t") {
		return "", "", false
	}
	return alias, target, true
}

// Warning records a help line the builder could not fully use. The build
// still succeeds; one bad line never prevents deriving the rest.
type Warning struct {
	Line string
	Err  error
}

// Builder folds help lines into per-command syntax trees and finalizes them
// into an immutable Registry. The zero value is not usable; call NewBuilder.
type Builder struct {
	prefix    string
	aliasRule AliasRule

	names      []string // canonical names, first-seen order
	specs      map[string]*CommandSpec
	aliasNames []string          // alias names, first-seen order
	aliases    map[string]string // alias -> target as written
	warnings   []Warning
}

// Option configures a Builder
type Option func(*Builder)

// WithPrefix sets the command-prefix character stripped from command names.
// An empty prefix disables stripping and prose filtering.
func WithPrefix(prefix string) Option {
	return func(b *Builder) { b.prefix = prefix }
}

// WithAliasRule sets the alias-detection rule. A nil rule disables alias
// detection: every distinct leading token becomes its own command.
func WithAliasRule(rule AliasRule) Option {
	return func(b *Builder) { b.aliasRule = rule }
}

// NewBuilder creates a builder with the default prefix and arrow alias rule.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		prefix:    DefaultPrefix,
		aliasRule: ArrowAliasRule,
		specs:     make(map[string]*CommandSpec),
		aliases:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddDump reflows a raw help response and adds every line.
func (b *Builder) AddDump(body string) {
	for _, line := range help.Lines(body) {
		b.AddLine(line)
	}
}

// AddLine folds one help line into the grammar under construction. Lines that
// do not start with the command prefix are ignored as prose. Malformed lines
// and unmergeable variants are recorded as warnings and skipped.
func (b *Builder) AddLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if b.aliasRule != nil {
		if alias, target, ok := b.aliasRule(line); ok {
			b.addAlias(line, b.stripPrefix(alias), b.stripPrefix(target))
			return
		}
	}

	if b.prefix != "" && !strings.HasPrefix(line, b.prefix) {
		return
	}

	name, rest, _ := strings.Cut(b.stripPrefix(line), " ")
	if name == "" {
		return
	}

	tokens, err := help.Tokenize(rest)
	if err != nil {
		b.warnings = append(b.warnings, Warning{Line: line, Err: err})
		return
	}
	tree, err := buildTree(tokens, line)
	if err != nil {
		b.warnings = append(b.warnings, Warning{Line: line, Err: err})
		return
	}

	existing, seen := b.specs[name]
	if !seen {
		b.names = append(b.names, name)
		b.specs[name] = &CommandSpec{Name: name, Root: tree}
		return
	}
	merged, err := mergeSeq(existing.Root, tree, name)
	if err != nil {
		// Keep the first-seen variant, discard the conflicting one.
		b.warnings = append(b.warnings, Warning{Line: line, Err: err})
		return
	}
	existing.Root = merged
}

func (b *Builder) addAlias(line, alias, target string) {
	if _, dup := b.aliases[alias]; dup {
		b.warnings = append(b.warnings, Warning{
			Line: line,
			Err:  cerrors.NewHelpParseError(line, fmt.Sprintf("duplicate alias %q", alias)),
		})
		return
	}
	if _, clash := b.specs[alias]; clash {
		b.warnings = append(b.warnings, Warning{
			Line: line,
			Err:  cerrors.NewHelpParseError(line, fmt.Sprintf("alias %q shadows a command", alias)),
		})
		return
	}
	b.aliasNames = append(b.aliasNames, alias)
	b.aliases[alias] = target
}

func (b *Builder) stripPrefix(s string) string {
	if b.prefix != "" {
		return strings.TrimPrefix(s, b.prefix)
	}
	return s
}

// Build finalizes the accumulated grammar into an immutable Registry.
// Aliases whose target never appeared are dropped with a warning. Building
// the same dump twice yields a structurally identical registry.
func (b *Builder) Build() *Registry {
	reg := &Registry{
		prefix:  b.prefix,
		specs:   make(map[string]*CommandSpec, len(b.specs)),
		aliases: make(map[string]string, len(b.aliases)),
	}
	for _, name := range b.names {
		reg.specs[name] = b.specs[name]
		reg.names = append(reg.names, name)
	}
	for _, alias := range b.aliasNames {
		target := b.aliases[alias]
		spec, ok := reg.specs[target]
		if !ok {
			b.warnings = append(b.warnings, Warning{
				Line: alias,
				Err:  cerrors.NewHelpParseError(alias, fmt.Sprintf("alias %q points to unknown command %q", alias, target)),
			})
			continue
		}
		spec.Aliases = append(spec.Aliases, alias)
		reg.aliases[alias] = target
		reg.names = append(reg.names, alias)
	}
	reg.warnings = append(reg.warnings, b.warnings...)
	return reg
}

// Warnings returns the lines skipped so far and why.
func (b *Builder) Warnings() []Warning {
	return b.warnings
}

// --- token stream -> syntax tree ---

type cursor struct {
	toks []help.Token
	pos  int
}

func (c *cursor) done() bool       { return c.pos >= len(c.toks) }
func (c *cursor) peek() help.Token { return c.toks[c.pos] }
func (c *cursor) next() help.Token { t := c.toks[c.pos]; c.pos++; return t }

// buildTree parses a token stream into a command's syntax tree. The root is
// always a Seq so that variant merging is positional.
func buildTree(tokens []help.Token, line string) (*Node, error) {
	c := &cursor{toks: tokens}
	node, err := parseAlternatives(c, line, nil)
	if err != nil {
		return nil, err
	}
	if !c.done() {
		return nil, cerrors.NewHelpParseError(line, "unbalanced group close")
	}
	switch {
	case node == nil:
		return &Node{Kind: Seq}, nil
	case node.Kind == Seq:
		return node, nil
	default:
		return &Node{Kind: Seq, Children: []*Node{node}}, nil
	}
}

// parseAlternatives parses '|'-separated sequences until the closer token
// (nil means end of input). The closer itself is not consumed.
func parseAlternatives(c *cursor, line string, closer *help.TokenKind) (*Node, error) {
	var branches []*Node
	var seq []*Node
	sawAlt := false

	flush := func() {
		switch len(seq) {
		case 0:
			branches = append(branches, &Node{Kind: Seq})
		case 1:
			branches = append(branches, seq[0])
		default:
			branches = append(branches, &Node{Kind: Seq, Children: seq})
		}
		seq = nil
	}

	for !c.done() {
		t := c.peek()
		switch t.Kind {
		case help.Literal:
			c.next()
			seq = append(seq, &Node{Kind: Literal, Text: t.Text})
		case help.Placeholder:
			c.next()
			seq = append(seq, &Node{Kind: Placeholder, Text: t.Text})
		case help.OptionalOpen:
			c.next()
			want := help.OptionalClose
			inner, err := parseAlternatives(c, line, &want)
			if err != nil {
				return nil, err
			}
			c.next() // consume the close marker
			seq = append(seq, &Node{Kind: Optional, Children: []*Node{inner}})
		case help.GroupOpen:
			c.next()
			want := help.GroupClose
			inner, err := parseAlternatives(c, line, &want)
			if err != nil {
				return nil, err
			}
			c.next()
			seq = append(seq, inner)
		case help.Alternation:
			c.next()
			sawAlt = true
			flush()
		case help.OptionalClose, help.GroupClose:
			if closer == nil || t.Kind != *closer {
				return nil, cerrors.NewHelpParseError(line, "unbalanced group close")
			}
			flush()
			return finishAlternatives(branches, sawAlt), nil
		}
	}
	if closer != nil {
		return nil, cerrors.NewHelpParseError(line, "unclosed group")
	}
	flush()
	return finishAlternatives(branches, sawAlt), nil
}

func finishAlternatives(branches []*Node, sawAlt bool) *Node {
	if !sawAlt {
		branch := branches[0]
		if branch.Kind == Seq && len(branch.Children) == 0 {
			return nil
		}
		return branch
	}
	return &Node{Kind: Choice, Children: branches}
}

// --- positional variant merge ---

// mergeSeq merges two variants of one command by position. Both arguments
// are left untouched; a fresh tree is returned so that a failed merge never
// corrupts the first-seen variant.
func mergeSeq(a, b *Node, cmd string) (*Node, error) {
	if len(a.Children) != len(b.Children) {
		return nil, cerrors.NewGrammarConflictError(cmd,
			fmt.Sprintf("variant token count mismatch: %d vs %d", len(a.Children), len(b.Children)))
	}
	merged := &Node{Kind: Seq, Children: make([]*Node, len(a.Children))}
	for i := range a.Children {
		node, err := mergeNode(a.Children[i], b.Children[i], cmd)
		if err != nil {
			return nil, err
		}
		merged.Children[i] = node
	}
	return merged, nil
}

func mergeNode(a, b *Node, cmd string) (*Node, error) {
	if a.Equal(b) {
		return a, nil
	}
	switch {
	case a.Kind == Seq && b.Kind == Seq:
		return mergeSeq(a, b, cmd)
	case alternative(a) && alternative(b):
		return unionChoice(a, b), nil
	default:
		return nil, cerrors.NewGrammarConflictError(cmd,
			fmt.Sprintf("cannot merge %s %q with %s %q", a.Kind, a.Label(), b.Kind, b.Label()))
	}
}

// alternative reports whether a node can live as a Choice branch.
func alternative(n *Node) bool {
	return n.Kind == Literal || n.Kind == Placeholder || n.Kind == Choice
}

// unionChoice folds two alternative nodes into one Choice, keeping
// first-seen branch order and dropping structural duplicates.
func unionChoice(a, b *Node) *Node {
	var branches []*Node
	add := func(n *Node) {
		for _, have := range branches {
			if have.Equal(n) {
				return
			}
		}
		branches = append(branches, n)
	}
	for _, n := range choiceBranches(a) {
		add(n)
	}
	for _, n := range choiceBranches(b) {
		add(n)
	}
	if len(branches) == 1 {
		return branches[0]
	}
	return &Node{Kind: Choice, Children: branches}
}

func choiceBranches(n *Node) []*Node {
	if n.Kind == Choice {
		return n.Children
	}
	return []*Node{n}
}
