package rules

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/rulebook/pkg/errors"
)

// Pattern is a compiled glob pattern. Supported syntax follows doublestar:
// "*" matches within a path segment, "**" matches across segments, and
// "{a,b}" alternation covers extension lists like "*.{ts,tsx}".
type Pattern struct {
	raw      string
	expr     string
	negated  bool
	baseOnly bool
}

// CompilePattern validates and compiles a single glob pattern.
// A leading "!" marks the pattern as an exclusion. Patterns without a "/"
// match against the path's base name; patterns containing "/" match the
// full slash-normalized path.
func CompilePattern(raw string) (Pattern, error) {
	expr := strings.TrimSpace(raw)
	negated := false
	if strings.HasPrefix(expr, "!") {
		negated = true
		expr = strings.TrimPrefix(expr, "!")
	}
	expr = strings.TrimPrefix(expr, "./")

	if expr == "" {
		return Pattern{}, errors.New(errors.ErrInvalidPattern, "empty pattern").
			WithDetail("pattern", raw)
	}
	if !doublestar.ValidatePattern(expr) {
		return Pattern{}, errors.Newf(errors.ErrInvalidPattern, "malformed pattern %q", raw).
			WithDetail("pattern", raw)
	}

	return Pattern{
		raw:      raw,
		expr:     expr,
		negated:  negated,
		baseOnly: !strings.Contains(expr, "/"),
	}, nil
}

// Negated reports whether this pattern excludes matching paths
func (p Pattern) Negated() bool {
	return p.negated
}

// String returns the pattern as written
func (p Pattern) String() string {
	return p.raw
}

// Match tests the pattern against a slash-normalized path.
// The pattern is validated at compile time, so matching cannot fail.
func (p Pattern) Match(candidate string) bool {
	if p.baseOnly {
		return doublestar.MatchUnvalidated(p.expr, path.Base(candidate))
	}

	if doublestar.MatchUnvalidated(p.expr, candidate) {
		return true
	}

	// A relative pattern should also hit absolute paths by suffix, so
	// "src/**/*.ts" matches "/repo/src/a.ts".
	if !strings.HasPrefix(p.expr, "/") && strings.HasPrefix(candidate, "/") {
		return doublestar.MatchUnvalidated("**/"+p.expr, candidate)
	}

	return false
}

// normalizePath prepares a candidate path for matching. Empty paths are
// rejected; backslashes are normalized and any leading "./" stripped.
func normalizePath(candidate string) (string, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", errors.New(errors.ErrInvalidPath, "path must not be empty")
	}
	normalized := strings.ReplaceAll(trimmed, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "./")
	return normalized, nil
}
