// Package grammar derives a queryable command grammar from tokenized server
// help lines and exposes it through an immutable registry.
package grammar

// NodeKind identifies the variant of a grammar tree node
type NodeKind int

const (
	// Literal is a fixed keyword that must match exactly (case-sensitive)
	Literal NodeKind = iota
	// Placeholder is a named free-form argument; it matches any token and
	// contributes a hint but no enumerable completion values
	Placeholder
	// Seq is an ordered sequence of child nodes
	Seq
	// Choice is a set of mutually exclusive alternatives at one position
	Choice
	// Optional wraps a single child that may occur zero or one time
	Optional
)

func (k NodeKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	case Seq:
		return "seq"
	case Choice:
		return "choice"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// Node is one node of a command's syntax tree. Text is set for Literal and
// Placeholder nodes. Children hold Seq steps, Choice branches, or the single
// wrapped node of an Optional. Trees are finite and acyclic.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
}

// Label returns the tag used to distinguish Choice branches: the literal
// text, the placeholder name, or the label of the branch's first element.
func (n *Node) Label() string {
	switch n.Kind {
	case Literal, Placeholder:
		return n.Text
	case Seq, Choice, Optional:
		if len(n.Children) > 0 {
			return n.Children[0].Label()
		}
	}
	return ""
}

// Equal reports structural equality of two trees.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text || len(n.Children) != len(other.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// CommandSpec holds one command's canonical name, its merged syntax tree
// (always a Seq, possibly empty), and the aliases that resolve to it.
type CommandSpec struct {
	Name    string
	Root    *Node
	Aliases []string
}
