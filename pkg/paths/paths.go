// Package paths provides centralized path handling for rulebook.
// It implements XDG Base Directory specification compliance and
// resolves where the ruleset directory lives for a given project.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/filesystem"
)

// Environment variable names
const (
	// EnvRulesDir overrides ruleset discovery entirely
	EnvRulesDir = "RULEBOOK_RULES_DIR"

	// EnvConfigDir overrides the XDG config directory for rulebook
	EnvConfigDir = "RULEBOOK_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "rulebook"

	// DefaultRulesDirName is the default ruleset directory in a project
	DefaultRulesDirName = ".rulebook"

	// ConfigFileName is the user-level configuration file name
	ConfigFileName = "config.toml"
)

// ConfigDir returns the directory holding user-level configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the user-level configuration file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// FindRulesRoot locates the ruleset directory for a project by walking up
// from start until a directory containing dirName is found. The
// RULEBOOK_RULES_DIR environment variable short-circuits discovery.
func FindRulesRoot(fsys filesystem.FS, start, dirName string) (string, error) {
	if dir := os.Getenv(EnvRulesDir); dir != "" {
		return dir, nil
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot resolve start directory %s", start)
	}

	for {
		candidate := filepath.Join(current, dirName)
		if info, err := fsys.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", errors.Newf(errors.ErrRulesetNotFound,
		"no %s directory found from %s upward", dirName, start)
}
