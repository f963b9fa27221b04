// Package rules implements rulebook's core selection logic: deciding which
// rule documents apply to a given file path.
//
// A rule document carries an ordered list of glob patterns. A document
// matches a path when any of its include patterns matches and none of its
// negated ("!"-prefixed) patterns do. A document with no patterns, or with
// AlwaysApply set, matches every path.
//
// Selection is pure and deterministic: the same path and rule table always
// produce the same result, in the rule table's registration order. A
// compiled Selector is immutable and safe for concurrent use.
package rules
