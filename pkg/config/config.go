// Package config loads rulebook's application configuration: embedded
// defaults merged with the user's XDG-level config file and a repo-local
// override in the working tree.
package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Repo-local config file names, tried in order. These live at the root of
// the working tree, outside the ruleset directory.
var repoConfigNames = []string{".rulebook.toml", "rulebook.toml"}

// Config is the typed application configuration. Ruleset-level loader
// settings (ignore globs, extra extensions) are not here; they belong to
// the ruleset's own rulebook.toml, handled by pkg/ruleset.
type Config struct {
	Rules  RulesConfig  `koanf:"rules"`
	Output OutputConfig `koanf:"output"`
}

// RulesConfig controls ruleset discovery
type RulesConfig struct {
	// Dir is the ruleset directory name searched for during discovery
	Dir string `koanf:"dir"`
}

// OutputConfig controls rendering defaults
type OutputConfig struct {
	// Format is the default output format (auto, term, text, json)
	Format string `koanf:"format"`
}

// Load builds the configuration from embedded defaults, the user config
// file and a repo-local override in the working directory.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return LoadFrom(paths.ConfigFile(), cwd)
}

// LoadFrom builds the configuration using explicit locations: userConfig
// is the user-level config file, repoDir is the directory searched for a
// repo-local override. Later layers win; either may be empty to skip
// that layer.
func LoadFrom(userConfig, repoDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if userConfig != "" {
		if _, err := os.Stat(userConfig); err == nil {
			if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", userConfig)
			}
		}
	}

	if repoDir != "" {
		for _, filename := range repoConfigNames {
			path := filepath.Join(repoDir, filename)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, errors.ErrConfigParse,
						"failed to load repo config from %s", path)
				}
				break
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// rawBytesProvider implements koanf's provider interface for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}
