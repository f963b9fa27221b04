package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/config"
	"github.com/arthur-debert/rulebook/pkg/testutil"
)

func TestLoadFrom(t *testing.T) {
	t.Run("defaults_apply_without_user_config", func(t *testing.T) {
		cfg, err := config.LoadFrom("", "")
		require.NoError(t, err)

		assert.Equal(t, ".rulebook", cfg.Rules.Dir)
		assert.Equal(t, "auto", cfg.Output.Format)
	})

	t.Run("missing_user_config_is_not_an_error", func(t *testing.T) {
		cfg, err := config.LoadFrom("/nonexistent/config.toml", "")
		require.NoError(t, err)
		assert.Equal(t, ".rulebook", cfg.Rules.Dir)
	})

	t.Run("user_config_overrides_defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.CreateFile(t, dir, "config.toml",
			"[rules]\ndir = \"guidance\"\n")

		cfg, err := config.LoadFrom(path, "")
		require.NoError(t, err)

		assert.Equal(t, "guidance", cfg.Rules.Dir)
		// Untouched keys keep their defaults
		assert.Equal(t, "auto", cfg.Output.Format)
	})

	t.Run("malformed_user_config_fails", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.CreateFile(t, dir, "config.toml", "not toml [[[")

		_, err := config.LoadFrom(path, "")
		require.Error(t, err)
	})
}

func TestLoadFromRepoLocal(t *testing.T) {
	t.Run("repo_config_overrides_defaults", func(t *testing.T) {
		repo := t.TempDir()
		testutil.CreateFile(t, repo, ".rulebook.toml",
			"[output]\nformat = \"json\"\n")

		cfg, err := config.LoadFrom("", repo)
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, ".rulebook", cfg.Rules.Dir)
	})

	t.Run("repo_config_overrides_user_config", func(t *testing.T) {
		userDir := t.TempDir()
		userConfig := testutil.CreateFile(t, userDir, "config.toml",
			"[output]\nformat = \"text\"\n[rules]\ndir = \"guidance\"\n")

		repo := t.TempDir()
		testutil.CreateFile(t, repo, "rulebook.toml",
			"[output]\nformat = \"json\"\n")

		cfg, err := config.LoadFrom(userConfig, repo)
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Output.Format)
		// Keys the repo config does not set fall through to the user layer
		assert.Equal(t, "guidance", cfg.Rules.Dir)
	})

	t.Run("dotted_name_wins_over_plain", func(t *testing.T) {
		repo := t.TempDir()
		testutil.CreateFile(t, repo, ".rulebook.toml",
			"[output]\nformat = \"text\"\n")
		testutil.CreateFile(t, repo, "rulebook.toml",
			"[output]\nformat = \"json\"\n")

		cfg, err := config.LoadFrom("", repo)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output.Format)
	})

	t.Run("repo_without_config_keeps_defaults", func(t *testing.T) {
		cfg, err := config.LoadFrom("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Output.Format)
	})

	t.Run("malformed_repo_config_fails", func(t *testing.T) {
		repo := t.TempDir()
		testutil.CreateFile(t, repo, ".rulebook.toml", "not toml [[[")

		_, err := config.LoadFrom("", repo)
		require.Error(t, err)
	})
}
