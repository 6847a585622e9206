package grammar

import "strings"

// Registry is the read-only lookup surface over all derived command grammars.
// It is built once per session and never mutated afterwards, so it may be
// shared by reference across any number of concurrent completion queries.
type Registry struct {
	prefix   string
	names    []string // canonical names then aliases, first-seen order
	specs    map[string]*CommandSpec
	aliases  map[string]string
	warnings []Warning
}

// Resolve maps a canonical name or alias to its canonical name. A leading
// command prefix on the input is tolerated. Unknown names report ok=false;
// an unknown command is a normal completion case, not an error.
func (r *Registry) Resolve(name string) (string, bool) {
	if r.prefix != "" {
		name = strings.TrimPrefix(name, r.prefix)
	}
	if _, ok := r.specs[name]; ok {
		return name, true
	}
	if target, ok := r.aliases[name]; ok {
		return target, true
	}
	return "", false
}

// TrimPrefix strips the command prefix from s if present, so that typed
// input like "/gamerule" matches the bare registered name.
func (r *Registry) TrimPrefix(s string) string {
	if r.prefix != "" {
		return strings.TrimPrefix(s, r.prefix)
	}
	return s
}

// Lookup returns the spec for a canonical name, or nil if unknown.
func (r *Registry) Lookup(canonical string) *CommandSpec {
	return r.specs[canonical]
}

// Names returns all completable first tokens: canonical command names
// followed by aliases, in the order they first appeared in the help dump.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of canonical commands.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Warnings returns the lines that were skipped during the build and why.
func (r *Registry) Warnings() []Warning {
	return r.warnings
}
