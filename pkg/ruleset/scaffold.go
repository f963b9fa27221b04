package ruleset

import (
	"embed"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/filesystem"
	"github.com/arthur-debert/rulebook/pkg/logging"
)

//go:embed templates/*.md
var templatesFS embed.FS

// Scaffold creates a new ruleset directory populated with the starter
// templates. It refuses to overwrite existing rule documents.
func Scaffold(fsys filesystem.FS, dir string) ([]string, error) {
	logger := logging.GetLogger("ruleset.scaffold")

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to create ruleset directory %s", dir)
	}

	names, err := fs.Glob(templatesFS, "templates/*.md")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to list templates")
	}

	var created []string
	for _, name := range names {
		content, err := templatesFS.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to read template %s", name)
		}

		target := filepath.Join(dir, filepath.Base(name))
		if _, err := fsys.Stat(target); err == nil {
			logger.Debug().Str("path", target).Msg("Template target exists, skipping")
			continue
		}

		if err := fsys.WriteFile(target, content, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to write %s", target)
		}
		created = append(created, target)
	}

	logger.Info().
		Str("dir", dir).
		Int("created", len(created)).
		Msg("Scaffolded ruleset")

	return created, nil
}
