// Package ui renders rulebook's output: match results, rule listings and
// markdown bodies, in terminal, plain-text or JSON form.
package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/rulebook/pkg/rules"
)

// Renderer renders selection results in a chosen format
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for the given (already resolved) format
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// matchResult is the JSON shape for one queried path
type matchResult struct {
	Path  string      `json:"path"`
	Rules []matchRule `json:"rules"`
}

type matchRule struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Description string   `json:"description,omitempty"`
	Globs       []string `json:"globs,omitempty"`
}

// RenderMatches renders the documents selected for a single path
func (r *Renderer) RenderMatches(path string, docs []rules.Document) string {
	switch r.format {
	case FormatJSON:
		return r.renderMatchesJSON(path, docs)
	case FormatTerminal:
		return r.renderMatchesTerm(path, docs)
	default:
		return r.renderMatchesText(path, docs)
	}
}

func (r *Renderer) renderMatchesTerm(path string, docs []rules.Document) string {
	var result strings.Builder
	result.WriteString(PathStyle.Render(path) + "\n")

	if len(docs) == 0 {
		result.WriteString(Indent(MutedStyle.Render("no rules apply"), 1))
		return result.String()
	}

	for _, doc := range docs {
		line := fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, RuleNameStyle.Render(doc.Name))
		if doc.Description != "" {
			line += " " + MutedStyle.Render(doc.Description)
		}
		result.WriteString(Indent(line, 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

func (r *Renderer) renderMatchesText(path string, docs []rules.Document) string {
	var result strings.Builder
	result.WriteString(path + "\n")
	if len(docs) == 0 {
		result.WriteString("  no rules apply")
		return result.String()
	}
	for _, doc := range docs {
		result.WriteString("  " + doc.Name)
		if doc.Description != "" {
			result.WriteString(" - " + doc.Description)
		}
		result.WriteString("\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *Renderer) renderMatchesJSON(path string, docs []rules.Document) string {
	result := matchResult{Path: path, Rules: []matchRule{}}
	for _, doc := range docs {
		result.Rules = append(result.Rules, matchRule{
			Name:        doc.Name,
			ID:          doc.ID,
			Description: doc.Description,
			Globs:       doc.Globs,
		})
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"path":%q,"error":%q}`, path, err.Error())
	}
	return string(data)
}

// RenderRuleList renders the full rule table
func (r *Renderer) RenderRuleList(docs []rules.Document) string {
	if r.format == FormatJSON {
		return r.renderRuleListJSON(docs)
	}

	if len(docs) == 0 {
		return MutedStyle.Render("No rule documents found")
	}

	if r.format == FormatTerminal {
		return r.renderRuleListTerm(docs)
	}
	return r.renderRuleListText(docs)
}

func (r *Renderer) renderRuleListTerm(docs []rules.Document) string {
	items := make([]pterm.BulletListItem, 0, len(docs)*3)
	for _, doc := range docs {
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  RuleNameStyle.Render(doc.Name),
		})
		items = append(items, pterm.BulletListItem{
			Level:  1,
			Text:   GlobStyle.Render(describeScope(doc)),
			Bullet: " ",
		})
		if doc.Description != "" {
			items = append(items, pterm.BulletListItem{
				Level:  1,
				Text:   MutedStyle.Render(doc.Description),
				Bullet: " ",
			})
		}
	}

	rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return r.renderRuleListText(docs)
	}

	return TitleStyle.Render("Registered rules") + "\n\n" +
		strings.TrimRight(rendered, "\n")
}

func (r *Renderer) renderRuleListText(docs []rules.Document) string {
	var result strings.Builder
	for _, doc := range docs {
		result.WriteString(doc.Name + "\n")
		result.WriteString("  " + describeScope(doc) + "\n")
		if doc.Description != "" {
			result.WriteString("  " + doc.Description + "\n")
		}
		result.WriteString("\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *Renderer) renderRuleListJSON(docs []rules.Document) string {
	items := make([]matchRule, 0, len(docs))
	for _, doc := range docs {
		items = append(items, matchRule{
			Name:        doc.Name,
			ID:          doc.ID,
			Description: doc.Description,
			Globs:       doc.Globs,
		})
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}

func describeScope(doc rules.Document) string {
	if doc.Unconditional() {
		return "applies to all files"
	}
	return strings.Join(doc.Globs, ", ")
}

// RenderMarkdown converts a rule body to terminal output via glamour.
// Plain formats, and any glamour failure, fall back to the raw content.
func (r *Renderer) RenderMarkdown(content string) string {
	if r.format != FormatTerminal {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
