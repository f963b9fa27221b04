package rules

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/logging"
)

// Selector holds a compiled, immutable rule table. Compile once at load,
// then query per path; concurrent Select calls need no locking because
// nothing mutates after NewSelector returns.
type Selector struct {
	entries []entry
	logger  zerolog.Logger
}

type entry struct {
	doc      Document
	includes []Pattern
	excludes []Pattern
}

// NewSelector compiles the given rule table. Every pattern is validated up
// front; a malformed pattern fails construction with INVALID_PATTERN rather
// than surfacing later during a query.
func NewSelector(docs []Document) (*Selector, error) {
	s := &Selector{
		entries: make([]entry, 0, len(docs)),
		logger:  logging.GetLogger("rules.selector"),
	}

	for _, doc := range docs {
		e := entry{doc: doc}
		for _, glob := range doc.Globs {
			pattern, err := CompilePattern(glob)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidPattern,
					"rule %s has an invalid pattern", doc.ID).
					WithDetail("rule", doc.ID)
			}
			if pattern.Negated() {
				e.excludes = append(e.excludes, pattern)
			} else {
				e.includes = append(e.includes, pattern)
			}
		}
		s.entries = append(s.entries, e)
	}

	s.logger.Debug().Int("ruleCount", len(s.entries)).Msg("Compiled rule table")
	return s, nil
}

// Select returns the documents that apply to the given path, in
// registration order. No match is not an error; the result is simply empty.
func (s *Selector) Select(path string) ([]Document, error) {
	candidate, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	var matched []Document
	for _, e := range s.entries {
		if e.matches(candidate) {
			matched = append(matched, e.doc)
		}
	}

	s.logger.Debug().
		Str("path", candidate).
		Int("matched", len(matched)).
		Msg("Selected rules for path")

	return matched, nil
}

// Documents returns the rule table in registration order
func (s *Selector) Documents() []Document {
	docs := make([]Document, 0, len(s.entries))
	for _, e := range s.entries {
		docs = append(docs, e.doc)
	}
	return docs
}

// Len returns the number of registered documents
func (s *Selector) Len() int {
	return len(s.entries)
}

func (e entry) matches(candidate string) bool {
	// Exclusions win over everything, AlwaysApply included
	for _, pattern := range e.excludes {
		if pattern.Match(candidate) {
			return false
		}
	}

	if e.doc.AlwaysApply || len(e.includes) == 0 {
		return true
	}

	for _, pattern := range e.includes {
		if pattern.Match(candidate) {
			return true
		}
	}
	return false
}

// Select is the one-shot form: it compiles the rule table and evaluates a
// single path. Callers issuing repeated queries should build a Selector
// once instead.
func Select(path string, docs []Document) ([]Document, error) {
	selector, err := NewSelector(docs)
	if err != nil {
		return nil, err
	}
	return selector.Select(path)
}
