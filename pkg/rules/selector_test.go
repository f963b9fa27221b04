// Test Type: Unit Test
// Description: Tests for the rules package - selecting rule documents by path

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/rules"
)

func names(docs []rules.Document) []string {
	var out []string
	for _, doc := range docs {
		out = append(out, doc.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Run("both_rules_match_in_registration_order", func(t *testing.T) {
		table := []rules.Document{
			{ID: "code-style.md", Name: "code-style", Globs: []string{"src/**/*.{ts,tsx}"}},
			{ID: "testing.md", Name: "testing", Globs: []string{"**/*.test.ts"}},
		}

		matched, err := rules.Select("src/app.test.ts", table)
		require.NoError(t, err)
		assert.Equal(t, []string{"code-style", "testing"}, names(matched))
	})

	t.Run("document_without_globs_matches_everything", func(t *testing.T) {
		table := []rules.Document{
			{ID: "git-workflow.md", Name: "git-workflow"},
		}

		matched, err := rules.Select("README.md", table)
		require.NoError(t, err)
		assert.Equal(t, []string{"git-workflow"}, names(matched))
	})

	t.Run("empty_path_is_rejected", func(t *testing.T) {
		_, err := rules.Select("", []rules.Document{{Name: "any"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
	})

	t.Run("whitespace_path_is_rejected", func(t *testing.T) {
		_, err := rules.Select("   ", []rules.Document{{Name: "any"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
	})

	t.Run("empty_table_yields_empty_result", func(t *testing.T) {
		matched, err := rules.Select("src/main.go", nil)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("no_match_is_not_an_error", func(t *testing.T) {
		table := []rules.Document{
			{Name: "ts", Globs: []string{"src/**/*.ts"}},
		}

		matched, err := rules.Select("docs/guide.md", table)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("malformed_pattern_fails_selection", func(t *testing.T) {
		table := []rules.Document{
			{ID: "broken.md", Name: "broken", Globs: []string{"src/[*.ts"}},
		}

		_, err := rules.Select("src/a.ts", table)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	})

	t.Run("doublestar_crosses_segments", func(t *testing.T) {
		table := []rules.Document{
			{Name: "ts", Globs: []string{"src/**/*.ts"}},
		}

		matched, err := rules.Select("src/a/b/c.ts", table)
		require.NoError(t, err)
		assert.Equal(t, []string{"ts"}, names(matched))

		matched, err = rules.Select("test/a.ts", table)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("each_document_appears_at_most_once", func(t *testing.T) {
		table := []rules.Document{
			{Name: "multi", Globs: []string{"*.ts", "src/**", "**/*.ts"}},
		}

		matched, err := rules.Select("src/app.ts", table)
		require.NoError(t, err)
		assert.Len(t, matched, 1)
	})
}

func TestSelector(t *testing.T) {
	t.Run("repeated_queries_are_deterministic", func(t *testing.T) {
		table := []rules.Document{
			{Name: "a", Globs: []string{"**/*.go"}},
			{Name: "b", Globs: []string{"pkg/**"}},
			{Name: "c"},
		}

		selector, err := rules.NewSelector(table)
		require.NoError(t, err)

		first, err := selector.Select("pkg/rules/selector.go")
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			again, err := selector.Select("pkg/rules/selector.go")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}

		assert.Equal(t, []string{"a", "b", "c"}, names(first))
	})

	t.Run("invalid_pattern_fails_at_construction", func(t *testing.T) {
		_, err := rules.NewSelector([]rules.Document{
			{ID: "bad.md", Name: "bad", Globs: []string{"{unclosed"}},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	})

	t.Run("negated_pattern_excludes_matching_paths", func(t *testing.T) {
		table := []rules.Document{
			{Name: "src", Globs: []string{"src/**", "!src/vendor/**"}},
		}

		selector, err := rules.NewSelector(table)
		require.NoError(t, err)

		matched, err := selector.Select("src/app.ts")
		require.NoError(t, err)
		assert.Len(t, matched, 1)

		matched, err = selector.Select("src/vendor/lib.ts")
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("exclusion_wins_over_always_apply", func(t *testing.T) {
		table := []rules.Document{
			{Name: "global", AlwaysApply: true, Globs: []string{"!generated/**"}},
		}

		selector, err := rules.NewSelector(table)
		require.NoError(t, err)

		matched, err := selector.Select("generated/api.ts")
		require.NoError(t, err)
		assert.Empty(t, matched)

		matched, err = selector.Select("src/api.ts")
		require.NoError(t, err)
		assert.Len(t, matched, 1)
	})

	t.Run("documents_preserves_registration_order", func(t *testing.T) {
		table := []rules.Document{
			{Name: "z"},
			{Name: "a"},
			{Name: "m"},
		}

		selector, err := rules.NewSelector(table)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, names(selector.Documents()))
		assert.Equal(t, 3, selector.Len())
	})

	t.Run("absolute_path_matches_relative_pattern_by_suffix", func(t *testing.T) {
		table := []rules.Document{
			{Name: "ts", Globs: []string{"src/**/*.ts"}},
		}

		selector, err := rules.NewSelector(table)
		require.NoError(t, err)

		matched, err := selector.Select("/home/user/repo/src/app.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"ts"}, names(matched))
	})
}
