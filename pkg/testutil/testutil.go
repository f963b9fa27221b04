// Package testutil provides helpers for building rulesets in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/rulebook/pkg/filesystem"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// MemoryRuleset builds an in-memory filesystem holding the given files
// under the returned ruleset root. Keys are slash-relative paths.
func MemoryRuleset(t *testing.T, files map[string]string) (filesystem.FS, string) {
	t.Helper()

	const root = "/rules"
	fsys := filesystem.NewMemory()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create ruleset root: %v", err)
	}

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	return fsys, root
}

// RuleFile builds the content of a rule document with YAML frontmatter
func RuleFile(description string, globs []string, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	if description != "" {
		fmt.Fprintf(&b, "description: %s\n", description)
	}
	if len(globs) > 0 {
		b.WriteString("globs:\n")
		for _, glob := range globs {
			fmt.Fprintf(&b, "  - %q\n", glob)
		}
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}
