package ruleset

import (
	goerrors "errors"
	"io/fs"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/filesystem"
)

// SettingsFile is the name of the optional per-ruleset configuration file
const SettingsFile = "rulebook.toml"

// Settings holds per-ruleset loader configuration from rulebook.toml
type Settings struct {
	// Ignore lists glob patterns for files and directories the loader
	// skips, relative to the ruleset root
	Ignore []string `toml:"ignore"`

	// Extensions adds file extensions (with leading dot) that are
	// treated as rule documents, on top of the defaults
	Extensions []string `toml:"extensions"`
}

// loadSettings reads rulebook.toml from the ruleset root. A missing file
// is not an error; the zero Settings value applies.
func loadSettings(fsys filesystem.FS, root string) (Settings, error) {
	var settings Settings

	configPath := filepath.Join(root, SettingsFile)
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read %s", configPath)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, errors.ErrRulesetConfig,
			"failed to parse %s", configPath)
	}

	return settings, nil
}
