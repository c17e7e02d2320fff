// Package dealsheet exposes the high-level entry points of the module:
// a default renderer registry and a one-call generation helper. Callers
// needing finer control import the pkg/ subpackages directly.
package dealsheet

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-dealsheet/pkg/document"
	"github.com/goliatone/go-dealsheet/pkg/document/htmldoc"
	"github.com/goliatone/go-dealsheet/pkg/document/pdfdoc"
	"github.com/goliatone/go-dealsheet/pkg/export"
	"github.com/goliatone/go-dealsheet/pkg/session"
)

// Document aliases the rendered document model.
type Document = document.Document

// Renderer aliases the output renderer contract.
type Renderer = document.Renderer

// Artifact aliases a generated output descriptor.
type Artifact = export.Artifact

// NewSession exposes the session constructor from the top-level module.
func NewSession(opts ...session.Option) *session.Session {
	return session.New(opts...)
}

// DefaultRegistry builds a registry with the built-in HTML and PDF
// renderers. Renderer options apply to their respective renderer.
func DefaultRegistry(htmlOpts []htmldoc.Option, pdfOpts []pdfdoc.Option) (*document.Registry, error) {
	registry := document.NewRegistry()

	html, err := htmldoc.New(htmlOpts...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	pdf, err := pdfdoc.New(pdfOpts...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(pdf); err != nil {
		return nil, err
	}

	return registry, nil
}

// Generate renders the session's current answers in the given format and
// writes the artifact into dir. It is the simplest entry point for callers
// that just want a file on disk.
func Generate(ctx context.Context, sess *session.Session, format, dir string) (Artifact, error) {
	registry, err := DefaultRegistry(nil, nil)
	if err != nil {
		return Artifact{}, err
	}
	gen, err := export.New(sess,
		export.WithRegistry(registry),
		export.WithSurface(export.NewDirSurface(dir)),
	)
	if err != nil {
		return Artifact{}, err
	}
	return gen.Generate(ctx, format)
}

// EmbeddedTemplates exposes the built-in HTML document templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmldoc.TemplatesFS()
}
