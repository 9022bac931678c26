package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// project writes a markup.json into a temp dir and returns its path.
func project(t *testing.T, config string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "markup.json")
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRenderCommand(t *testing.T) {
	dir, cfg := project(t, `{}`)
	doc := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(doc, []byte("tag: p\nchildren: [a < b]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("stdout", func(t *testing.T) {
		out, err := execute(t, "", "--config", cfg, "render", doc)
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if want := "<p>a &lt; b</p>"; out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})

	t.Run("output file", func(t *testing.T) {
		target := filepath.Join(dir, "public", "page.html")
		if _, err := execute(t, "", "--config", cfg, "render", doc, "-o", target); err != nil {
			t.Fatalf("render error: %v", err)
		}
		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if want := "<p>a &lt; b</p>"; string(data) != want {
			t.Errorf("got %q, want %q", data, want)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := execute(t, `{"tag": "hr"}`, "--config", cfg, "render", "-")
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if want := "<hr>"; out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})

	t.Run("verbatim text policy", func(t *testing.T) {
		_, raw := project(t, `{"document": {"escapeText": false}}`)
		out, err := execute(t, "", "--config", raw, "render", doc)
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if want := "<p>a < b</p>"; out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})
}

func TestRenderCommandErrors(t *testing.T) {
	dir, cfg := project(t, `{}`)
	target := filepath.Join(dir, "out.html")

	_, err := execute(t, "tag: [", "--config", cfg, "render", "-", "-o", target)
	if !errors.Is(err, markuperrors.Sentinel("E110")) {
		t.Fatalf("err = %v, want E110", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Errorf("output written for a failed document")
	}

	if _, err := execute(t, "", "--config", cfg, "render", filepath.Join(dir, "missing.yaml")); !errors.Is(err, markuperrors.Sentinel("E112")) {
		t.Errorf("missing file: err = %v, want E112", err)
	}
	if _, err := execute(t, "", "--config", filepath.Join(dir, "nope.json"), "render", "-"); !errors.Is(err, markuperrors.Sentinel("E100")) {
		t.Errorf("missing config: err = %v, want E100", err)
	}

	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, `{"tag": "p"}`, "--config", cfg, "render", "-", "-o", filepath.Join(blocked, "out.html")); !errors.Is(err, markuperrors.Sentinel("E113")) {
		t.Errorf("unwritable output: err = %v, want E113", err)
	}
}

func TestPublishCommand(t *testing.T) {
	dir, cfg := project(t, `{"publish": {"dir": "site"}}`)

	if _, err := execute(t, `{"tag": "main"}`, "--config", cfg, "publish", "-", "--key", "docs/index.html"); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "site", "docs", "index.html"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if want := "<main></main>"; string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestPublishCommandWithoutTarget(t *testing.T) {
	_, cfg := project(t, `{}`)
	_, err := execute(t, `{"tag": "main"}`, "--config", cfg, "publish", "-")
	if !errors.Is(err, markuperrors.Sentinel("E120")) {
		t.Errorf("err = %v, want E120", err)
	}
}

func TestVersionCommand(t *testing.T) {
	_, cfg := project(t, `{}`)
	out, err := execute(t, "", "--config", cfg, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if out != version+"\n" {
		t.Errorf("got %q, want %q", out, version+"\n")
	}
}

func TestInitCommand(t *testing.T) {
	_, cfg := project(t, `{}`)
	dir := filepath.Join(t.TempDir(), "notes")

	if _, err := execute(t, "", "--config", cfg, "init", dir, "--template", "site", "--port", "9300"); err != nil {
		t.Fatalf("init error: %v", err)
	}

	out, err := execute(t, "", "--config", filepath.Join(dir, "markup.json"), "render", filepath.Join(dir, "docs", "about.json"))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, `<article id="about">`) {
		t.Errorf("got %q, want the about article", out)
	}

	if _, err := execute(t, "", "--config", cfg, "init", dir); !errors.Is(err, markuperrors.Sentinel("E141")) {
		t.Errorf("second init: err = %v, want E141", err)
	}
	if _, err := execute(t, "", "--config", cfg, "init", t.TempDir(), "--template", "blog"); !errors.Is(err, markuperrors.Sentinel("E140")) {
		t.Errorf("unknown template: err = %v, want E140", err)
	}
}
