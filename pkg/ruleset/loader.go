package ruleset

import (
	goerrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/filesystem"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/rules"
)

// DefaultExtensions are the file extensions treated as rule documents
var DefaultExtensions = []string{".md", ".mdc"}

// Ruleset is the loaded, read-only rule table for one rules directory
type Ruleset struct {
	// Root is the ruleset directory the documents were loaded from
	Root string

	// Documents holds the rule documents in registration order
	Documents []rules.Document
}

// Selector compiles the ruleset's documents into a rules.Selector
func (r *Ruleset) Selector() (*rules.Selector, error) {
	return rules.NewSelector(r.Documents)
}

// Find returns the document with the given name or ID
func (r *Ruleset) Find(name string) (rules.Document, error) {
	for _, doc := range r.Documents {
		if doc.Name == name || doc.ID == name {
			return doc, nil
		}
	}
	return rules.Document{}, errors.Newf(errors.ErrRuleNotFound,
		"no rule named %q in %s", name, r.Root)
}

// Loader reads rule documents from a ruleset directory
type Loader struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewLoader creates a loader against the OS filesystem
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOS())
}

// NewLoaderWithFS creates a loader against the given filesystem.
// Tests use this with an in-memory filesystem.
func NewLoaderWithFS(fsys filesystem.FS) *Loader {
	return &Loader{
		fs:     fsys,
		logger: logging.GetLogger("ruleset.loader"),
	}
}

// Load walks the ruleset directory in lexical order and parses every rule
// document it finds. The walk order defines the registration order.
func (l *Loader) Load(root string) (*Ruleset, error) {
	defer logging.LogOperationStart(l.logger, "ruleset-load")()

	info, err := l.fs.Stat(root)
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrRulesetNotFound,
				"ruleset directory %s does not exist", root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to stat %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRulesetNotFound,
			"%s is not a directory", root)
	}

	settings, err := loadSettings(l.fs, root)
	if err != nil {
		return nil, err
	}

	ignore, err := compileIgnore(settings.Ignore)
	if err != nil {
		return nil, err
	}

	extensions := append(append([]string{}, DefaultExtensions...), settings.Extensions...)

	ruleset := &Ruleset{Root: root}
	if err := l.walk(root, "", extensions, ignore, ruleset); err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("root", root).
		Int("documents", len(ruleset.Documents)).
		Msg("Loaded ruleset")

	return ruleset, nil
}

func (l *Loader) walk(root, rel string, extensions []string, ignore []rules.Pattern, ruleset *Ruleset) error {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir)
	}

	// os.ReadDir returns entries sorted by name, which makes the
	// registration order deterministic
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == SettingsFile {
			continue
		}

		entryRel := path.Join(rel, name)
		if isIgnored(entryRel, ignore) {
			l.logger.Debug().Str("path", entryRel).Msg("Skipping ignored entry")
			continue
		}

		if entry.IsDir() {
			if err := l.walk(root, entryRel, extensions, ignore, ruleset); err != nil {
				return err
			}
			continue
		}

		if !hasExtension(name, extensions) {
			continue
		}

		content, err := l.fs.ReadFile(filepath.Join(root, filepath.FromSlash(entryRel)))
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", entryRel)
		}

		doc, err := parseDocument(entryRel, content)
		if err != nil {
			return err
		}

		l.logger.Debug().
			Str("rule", doc.ID).
			Strs("globs", doc.Globs).
			Msg("Registered rule document")

		ruleset.Documents = append(ruleset.Documents, doc)
	}

	return nil
}

func compileIgnore(globs []string) ([]rules.Pattern, error) {
	var patterns []rules.Pattern
	for _, glob := range globs {
		pattern, err := rules.CompilePattern(glob)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRulesetConfig,
				"invalid ignore pattern %q", glob)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

func isIgnored(rel string, ignore []rules.Pattern) bool {
	for _, pattern := range ignore {
		if pattern.Match(rel) {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, candidate := range extensions {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
