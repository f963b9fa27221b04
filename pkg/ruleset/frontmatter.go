package ruleset

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/rules"
)

const frontmatterFence = "---"

// frontmatter is the YAML header of a rule document
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Globs       globList `yaml:"globs"`
	AlwaysApply bool     `yaml:"alwaysApply"`
}

// globList accepts either a YAML sequence or a single scalar, including
// the comma-separated form some editors write ("src/**/*.ts, test/**")
type globList []string

func (g *globList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*g = trimAll(items)
		return nil
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*g = trimAll(strings.Split(raw, ","))
		return nil
	default:
		return errors.New(errors.ErrFrontmatterParse, "globs must be a string or a list of strings")
	}
}

func trimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseDocument splits a rule file into frontmatter and body and builds
// the Document. Files without frontmatter become unconditional documents
// with the whole content as body.
func parseDocument(id string, content []byte) (rules.Document, error) {
	doc := rules.Document{
		ID:   id,
		Name: defaultName(id),
	}

	header, body, ok := splitFrontmatter(string(content))
	if !ok {
		doc.Body = strings.TrimLeft(string(content), "\n")
		return doc, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return rules.Document{}, errors.Wrapf(err, errors.ErrFrontmatterParse,
			"invalid frontmatter in %s", id).
			WithDetail("rule", id)
	}

	if fm.Name != "" {
		doc.Name = fm.Name
	}
	doc.Description = fm.Description
	doc.Globs = fm.Globs
	doc.AlwaysApply = fm.AlwaysApply
	doc.Body = strings.TrimLeft(body, "\n")

	return doc, nil
}

// splitFrontmatter returns the YAML header and the remaining body.
// The header must start on the first line, between "---" fences.
func splitFrontmatter(content string) (header, body string, ok bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterFence+"\n") {
		return "", "", false
	}

	rest := normalized[len(frontmatterFence)+1:]
	end := strings.Index(rest, "\n"+frontmatterFence)
	if end < 0 {
		return "", "", false
	}

	header = rest[:end]
	body = rest[end+1+len(frontmatterFence):]
	// The closing fence must occupy a whole line
	if body != "" && body[0] != '\n' {
		return "", "", false
	}
	return header, body, true
}

// defaultName derives the reference name from the document path:
// the base name without its extension.
func defaultName(id string) string {
	base := id
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
