package document_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-dealsheet/pkg/document"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) FileExt() string     { return ".txt" }
func (s stubRenderer) Render(context.Context, document.Document) ([]byte, error) {
	return []byte("ok"), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := document.NewRegistry()
	if err := reg.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "pdf"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r, err := reg.Get("html")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Name() != "html" {
		t.Fatalf("Name = %q", r.Name())
	}

	names := reg.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "pdf" {
		t.Fatalf("List = %v", names)
	}
	if !reg.Has("pdf") || reg.Has("docx") {
		t.Fatal("Has gave wrong answers")
	}
}

func TestRegistryRejectsDuplicatesAndBlanks(t *testing.T) {
	t.Parallel()

	reg := document.NewRegistry()
	if err := reg.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "html"}); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for blank name")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatal("expected error for missing renderer")
	}
}
