package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	t.Run("full_frontmatter", func(t *testing.T) {
		content := `---
description: TypeScript style guide
globs:
  - "src/**/*.{ts,tsx}"
  - "!src/vendor/**"
---

# TypeScript style

Prefer named exports.
`
		doc, err := parseDocument("lang/typescript.md", []byte(content))
		require.NoError(t, err)

		assert.Equal(t, "lang/typescript.md", doc.ID)
		assert.Equal(t, "typescript", doc.Name)
		assert.Equal(t, "TypeScript style guide", doc.Description)
		assert.Equal(t, []string{"src/**/*.{ts,tsx}", "!src/vendor/**"}, doc.Globs)
		assert.False(t, doc.AlwaysApply)
		assert.Contains(t, doc.Body, "# TypeScript style")
		assert.NotContains(t, doc.Body, "---")
	})

	t.Run("globs_as_comma_separated_scalar", func(t *testing.T) {
		content := "---\nglobs: src/**/*.ts, test/**\n---\nbody\n"

		doc, err := parseDocument("style.md", []byte(content))
		require.NoError(t, err)
		assert.Equal(t, []string{"src/**/*.ts", "test/**"}, doc.Globs)
	})

	t.Run("no_frontmatter_means_unconditional", func(t *testing.T) {
		content := "# Git workflow\n\nAlways rebase.\n"

		doc, err := parseDocument("git-workflow.md", []byte(content))
		require.NoError(t, err)
		assert.Equal(t, "git-workflow", doc.Name)
		assert.Empty(t, doc.Globs)
		assert.True(t, doc.Unconditional())
		assert.Equal(t, content, doc.Body)
	})

	t.Run("always_apply", func(t *testing.T) {
		content := "---\nalwaysApply: true\n---\nbody\n"

		doc, err := parseDocument("base.md", []byte(content))
		require.NoError(t, err)
		assert.True(t, doc.AlwaysApply)
		assert.True(t, doc.Unconditional())
	})

	t.Run("name_override", func(t *testing.T) {
		content := "---\nname: security-baseline\n---\nbody\n"

		doc, err := parseDocument("rules/sec.md", []byte(content))
		require.NoError(t, err)
		assert.Equal(t, "security-baseline", doc.Name)
	})

	t.Run("invalid_yaml_surfaces_parse_error", func(t *testing.T) {
		content := "---\nglobs: [unclosed\n---\nbody\n"

		_, err := parseDocument("bad.md", []byte(content))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFrontmatterParse))
	})

	t.Run("globs_with_wrong_type", func(t *testing.T) {
		content := "---\nglobs:\n  key: value\n---\nbody\n"

		_, err := parseDocument("bad.md", []byte(content))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFrontmatterParse))
	})

	t.Run("unterminated_frontmatter_is_treated_as_body", func(t *testing.T) {
		content := "---\ndescription: oops\nno closing fence\n"

		doc, err := parseDocument("odd.md", []byte(content))
		require.NoError(t, err)
		assert.Empty(t, doc.Globs)
		assert.Contains(t, doc.Body, "description: oops")
	})

	t.Run("crlf_content", func(t *testing.T) {
		content := "---\r\ndescription: windows\r\n---\r\nbody\r\n"

		doc, err := parseDocument("win.md", []byte(content))
		require.NoError(t, err)
		assert.Equal(t, "windows", doc.Description)
	})
}

func TestSplitFrontmatter(t *testing.T) {
	t.Run("fence_must_start_on_first_line", func(t *testing.T) {
		_, _, ok := splitFrontmatter("\n---\na: b\n---\n")
		assert.False(t, ok)
	})

	t.Run("closing_fence_must_be_a_whole_line", func(t *testing.T) {
		_, _, ok := splitFrontmatter("---\na: b\n----oops")
		assert.False(t, ok)
	})
}
