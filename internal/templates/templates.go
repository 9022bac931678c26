package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Description is a short project description.
	Description string

	// Port is the render server port written to markup.json.
	Port int
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"site":    siteTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E140").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create generates a project from the template. It refuses to write into
// a directory that already has a markup.json.
func (t *Template) Create(dir string, cfg Config) error {
	if config.Exists(dir) {
		return errors.New("E141").
			WithDetail(filepath.Join(dir, config.ConfigFileName) + " already exists")
	}
	if cfg.Port == 0 {
		cfg.Port = config.DefaultPort
	}

	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	for _, relPath := range paths {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryConfig, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryConfig, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.New("E113").WithDetail(fullPath).Wrap(err)
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New("E113").WithDetail(fullPath).Wrap(err)
		}
	}
	return nil
}

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A config file and one document",
		Files: map[string]string{
			"markup.json": `{
  "server": {
    "port": {{.Port}},
    "documentsDir": "docs"
  }
}
`,
			"docs/index.yaml": `tag: html
children:
  - tag: head
    children:
      - {tag: title, children: [{{printf "%q" .ProjectName}}]}
  - tag: body
    children:
      - {tag: h1, children: [{{printf "%q" .ProjectName}}]}
`,
		},
	}
}

// siteTemplate returns the site template.
func siteTemplate() *Template {
	return &Template{
		Name:        "site",
		Description: "Several documents with metrics and local publishing",
		Files: map[string]string{
			"markup.json": `{
  "server": {
    "port": {{.Port}},
    "documentsDir": "docs"
  },
  "metrics": {
    "enabled": true
  },
  "publish": {
    "dir": "public",
    "gzip": false
  },
  "document": {
    "sanitizeHTML": true
  }
}
`,
			"docs/index.yaml": `tag: html
children:
  - tag: head
    children:
      - {tag: title, children: [{{printf "%q" .ProjectName}}]}
      - {tag: meta, attrs: {charset: utf-8}}
  - tag: body
    attrs: {class: [page, home]}
    children:
      - tag: header
        children:
          - {tag: h1, children: [{{printf "%q" .ProjectName}}]}
{{- if .Description}}
          - {tag: p, children: [{{printf "%q" .Description}}]}
{{- end}}
      - tag: nav
        children:
          - {tag: a, attrs: {href: /docs/about}, children: [About]}
`,
			"docs/about.json": `{
  "tag": "article",
  "attrs": {"id": "about"},
  "children": [
    {"tag": "h2", "children": ["About"]},
    {"tag": "p", "children": ["Rendered from JSON."]},
    {"raw": "<p><em>Raw HTML</em> passes the sanitizer.</p>"}
  ]
}
`,
		},
	}
}
