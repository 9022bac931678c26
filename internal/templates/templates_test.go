package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/markup/internal/config"
	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/document"
	"github.com/vango-dev/markup/pkg/vtest"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"site", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if !errors.Is(err, markuperrors.Sentinel("E140")) {
					t.Errorf("err = %v, want E140", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	if diff := cmp.Diff([]string{"minimal", "site"}, List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_Create_Minimal(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("minimal")
	if err := tmpl.Create(tmpDir, Config{ProjectName: "Field Notes", Port: 9100}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}

	root, err := document.NewDecoder(document.DefaultOptions()).DecodeFile(filepath.Join(cfg.DocumentsPath(), "index.yaml"))
	if err != nil {
		t.Fatalf("generated document does not decode: %v", err)
	}
	vtest.ExpectHTML(t, root, "<!doctype html>\n<html><head><title>Field Notes</title></head><body><h1>Field Notes</h1></body></html>")
}

func TestTemplate_Create_Site(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("site")
	if err := tmpl.Create(tmpDir, Config{ProjectName: "Docs", Description: `Say "hi"`}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Server.Port != config.DefaultPort || !cfg.Metrics.Enabled || cfg.Publish.Dir != "public" {
		t.Errorf("config = %+v", cfg)
	}

	dec := document.NewDecoder(document.Options{EscapeText: true, SanitizeHTML: cfg.Document.SanitizeHTML})

	index, err := dec.DecodeFile(filepath.Join(tmpDir, "docs", "index.yaml"))
	if err != nil {
		t.Fatalf("index.yaml: %v", err)
	}
	vtest.ExpectAttribute(t, index, "class", "page home")
	vtest.ExpectContains(t, index, `<meta charset="utf-8">`)
	vtest.ExpectContains(t, index, "<p>Say &#34;hi&#34;</p>")
	vtest.ExpectElement(t, index, "nav")

	about, err := dec.DecodeFile(filepath.Join(tmpDir, "docs", "about.json"))
	if err != nil {
		t.Fatalf("about.json: %v", err)
	}
	vtest.ExpectAttribute(t, about, "id", "about")
	vtest.ExpectContains(t, about, "<em>Raw HTML</em>")
}

func TestTemplate_Create_RefusesExistingProject(t *testing.T) {
	tmpDir := t.TempDir()
	existing := []byte(`{"server": {"port": 1234}}`)
	if err := os.WriteFile(filepath.Join(tmpDir, config.ConfigFileName), existing, 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("minimal")
	err := tmpl.Create(tmpDir, Config{ProjectName: "x"})
	if !errors.Is(err, markuperrors.Sentinel("E141")) {
		t.Fatalf("err = %v, want E141", err)
	}

	data, _ := os.ReadFile(filepath.Join(tmpDir, config.ConfigFileName))
	if string(data) != string(existing) {
		t.Error("existing markup.json was overwritten")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "docs")); !os.IsNotExist(err) {
		t.Error("documents were written into an existing project")
	}
}

func TestTemplate_Create_ReportsWriteFailures(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "docs"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("minimal")
	err := tmpl.Create(tmpDir, Config{ProjectName: "x"})
	if !errors.Is(err, markuperrors.Sentinel("E113")) {
		t.Errorf("err = %v, want E113", err)
	}
}
