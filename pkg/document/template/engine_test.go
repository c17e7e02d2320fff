package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-dealsheet/pkg/document/template"
)

func TestNewRequiresASource(t *testing.T) {
	t.Parallel()

	if _, err := template.New(); err == nil {
		t.Fatal("expected error without a template source")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hola {{ name }}")},
	}
	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Acme"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hola Acme" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"doc.html": &fstest.MapFile{Data: []byte("v{{ version }}")},
	}
	engine, err := template.New(template.WithFS(files), template.WithExtension("html"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := engine.RenderTemplate("doc", map[string]any{"version": 3})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "v3" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderDispatchesInlineContent(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"doc.tmpl": &fstest.MapFile{Data: []byte("from file")},
	}
	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.Render("{{ label }}!", map[string]any{"label": "inline"})
	if err != nil {
		t.Fatalf("Render inline: %v", err)
	}
	if out != "inline!" {
		t.Fatalf("inline out = %q", out)
	}

	out, err = engine.Render("doc", nil)
	if err != nil {
		t.Fatalf("Render file: %v", err)
	}
	if out != "from file" {
		t.Fatalf("file out = %q", out)
	}
}

func TestGlobalContextIsVisibleToEveryRender(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"doc.tmpl": &fstest.MapFile{Data: []byte("{{ brand }}: {{ name }}")},
	}
	engine, err := template.New(
		template.WithFS(files),
		template.WithGlobalData(map[string]any{"brand": "Mono"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("doc", map[string]any{"name": "Acme"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Mono: Acme" {
		t.Fatalf("out = %q", out)
	}
}

func TestMissingTemplateErrors(t *testing.T) {
	t.Parallel()

	engine, err := template.New(template.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Fatalf("expected load error naming the path, got %v", err)
	}
}
