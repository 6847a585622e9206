package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftcon/craftcon/internal/cerrors"
)

func build(t *testing.T, lines ...string) *Registry {
	t.Helper()
	b := NewBuilder()
	for _, line := range lines {
		b.AddLine(line)
	}
	return b.Build()
}

func TestBuilder_SingleCommand(t *testing.T) {
	reg := build(t, "/op <player>")

	spec := reg.Lookup("op")
	require.NotNil(t, spec)
	assert.Equal(t, "op", spec.Name)
	require.Len(t, spec.Root.Children, 1)
	assert.Equal(t, Placeholder, spec.Root.Children[0].Kind)
	assert.Equal(t, "player", spec.Root.Children[0].Text)
}

func TestBuilder_MergesVariantsIntoChoice(t *testing.T) {
	reg := build(t,
		"/gamerule doDaylightCycle <value>",
		"/gamerule keepInventory <value>",
	)

	spec := reg.Lookup("gamerule")
	require.NotNil(t, spec)
	require.Len(t, spec.Root.Children, 2)

	first := spec.Root.Children[0]
	require.Equal(t, Choice, first.Kind)
	require.Len(t, first.Children, 2)
	assert.Equal(t, "doDaylightCycle", first.Children[0].Text)
	assert.Equal(t, "keepInventory", first.Children[1].Text)

	second := spec.Root.Children[1]
	assert.Equal(t, Placeholder, second.Kind)
	assert.Equal(t, "value", second.Text)
}

func TestBuilder_OptionalAndChoiceGroups(t *testing.T) {
	reg := build(t, "/experience <amount> [<player>|under]")

	spec := reg.Lookup("experience")
	require.NotNil(t, spec)
	require.Len(t, spec.Root.Children, 2)

	opt := spec.Root.Children[1]
	require.Equal(t, Optional, opt.Kind)
	require.Len(t, opt.Children, 1)

	choice := opt.Children[0]
	require.Equal(t, Choice, choice.Kind)
	require.Len(t, choice.Children, 2)
	assert.Equal(t, Placeholder, choice.Children[0].Kind)
	assert.Equal(t, "player", choice.Children[0].Text)
	assert.Equal(t, Literal, choice.Children[1].Kind)
	assert.Equal(t, "under", choice.Children[1].Text)
}

func TestBuilder_RequiredChoiceGroup(t *testing.T) {
	reg := build(t, "/whitelist (add|remove|list)")

	spec := reg.Lookup("whitelist")
	require.NotNil(t, spec)
	require.Len(t, spec.Root.Children, 1)

	choice := spec.Root.Children[0]
	require.Equal(t, Choice, choice.Kind)
	require.Len(t, choice.Children, 3)
	assert.Equal(t, "add", choice.Children[0].Text)
	assert.Equal(t, "remove", choice.Children[1].Text)
	assert.Equal(t, "list", choice.Children[2].Text)
}

func TestBuilder_MalformedLineIsSkipped(t *testing.T) {
	reg := build(t,
		"/foo <bar",
		"/seed",
	)

	assert.Nil(t, reg.Lookup("foo"))
	assert.NotNil(t, reg.Lookup("seed"))

	require.Len(t, reg.Warnings(), 1)
	var parseErr *cerrors.HelpParseError
	require.ErrorAs(t, reg.Warnings()[0].Err, &parseErr)
}

func TestBuilder_ConflictKeepsFirstVariant(t *testing.T) {
	reg := build(t,
		"/fill <from> <to>",
		"/fill <from>",
	)

	spec := reg.Lookup("fill")
	require.NotNil(t, spec)
	assert.Len(t, spec.Root.Children, 2)

	require.Len(t, reg.Warnings(), 1)
	var conflict *cerrors.GrammarConflictError
	require.ErrorAs(t, reg.Warnings()[0].Err, &conflict)
	assert.Equal(t, "fill", conflict.Command)
}

func TestBuilder_ProseLinesAreIgnored(t *testing.T) {
	reg := build(t,
		"Showing help page 1 of 10 (/help <page>)",
		"/seed",
	)

	assert.Equal(t, 1, reg.Len())
	assert.Empty(t, reg.Warnings())
}

func TestBuilder_Alias(t *testing.T) {
	reg := build(t,
		"/teleport <destination>",
		"/tp -> teleport",
	)

	canonical, ok := reg.Resolve("tp")
	require.True(t, ok)
	assert.Equal(t, "teleport", canonical)

	direct, ok := reg.Resolve("teleport")
	require.True(t, ok)
	assert.Equal(t, "teleport", direct)

	// Both resolutions reach the same spec.
	assert.Same(t, reg.Lookup(canonical), reg.Lookup(direct))
	assert.Equal(t, []string{"tp"}, reg.Lookup("teleport").Aliases)
	assert.Equal(t, []string{"teleport", "tp"}, reg.Names())
}

func TestBuilder_AliasToUnknownCommandIsDropped(t *testing.T) {
	reg := build(t, "/tp -> teleport")

	_, ok := reg.Resolve("tp")
	assert.False(t, ok)
	assert.Len(t, reg.Warnings(), 1)
}

func TestBuilder_Deterministic(t *testing.T) {
	lines := []string{
		"/gamemode <mode> [<player>]",
		"/gamerule doDaylightCycle <value>",
		"/gamerule keepInventory <value>",
		"/whitelist (add|remove|list)",
		"/tp -> teleport",
		"/teleport <destination>",
	}

	first := build(t, lines...)
	second := build(t, lines...)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		canonical, ok := first.Resolve(name)
		require.True(t, ok)
		assert.Equal(t, first.Lookup(canonical), second.Lookup(canonical))
	}
}

func TestBuilder_AddDump(t *testing.T) {
	b := NewBuilder()
	b.AddDump("/ban <player>/deop <player>/op <player>")
	reg := b.Build()

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"ban", "deop", "op"}, reg.Names())
}

func TestRegistry_ResolveToleratesPrefix(t *testing.T) {
	reg := build(t, "/seed")

	canonical, ok := reg.Resolve("/seed")
	require.True(t, ok)
	assert.Equal(t, "seed", canonical)

	_, ok = reg.Resolve("unknown")
	assert.False(t, ok)
}

func TestBuilder_NoAliasRule(t *testing.T) {
	b := NewBuilder(WithAliasRule(nil))
	b.AddLine("/tp -> teleport")
	b.AddLine("/teleport <destination>")
	reg := b.Build()

	// Without a rule the arrow line is parsed as grammar and rejected by the
	// tokenizer instead of becoming an alias.
	assert.Nil(t, reg.Lookup("tp"))
	assert.NotNil(t, reg.Lookup("teleport"))
	assert.Len(t, reg.Warnings(), 1)
}
