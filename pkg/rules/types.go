package rules

// Document represents a single rule document loaded from a ruleset.
// Documents are immutable after load; the body is opaque text that is
// rendered for humans but never interpreted.
type Document struct {
	// ID is the document's identity: its path relative to the ruleset root
	ID string

	// Name is the short name used to reference the document (base name
	// without extension unless the frontmatter overrides it)
	Name string

	// Description is an optional one-line summary from the frontmatter
	Description string

	// Globs is the ordered list of glob patterns the document applies to.
	// Patterns prefixed with "!" exclude otherwise-matching paths.
	// An empty list means the document applies to every path.
	Globs []string

	// AlwaysApply forces the document to match regardless of Globs
	AlwaysApply bool

	// Body is the Markdown content after the frontmatter
	Body string
}

// Unconditional reports whether the document matches every path without
// consulting its include patterns. Negated patterns still apply.
func (d Document) Unconditional() bool {
	if d.AlwaysApply {
		return true
	}
	for _, g := range d.Globs {
		if len(g) > 0 && g[0] != '!' {
			return false
		}
	}
	return true
}
