// Package export turns a capture session into named artifacts on an output
// surface. Version numbers are consumed only after the surface accepted the
// artifact, so a blocked surface never burns a version.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-dealsheet/pkg/document"
	"github.com/goliatone/go-dealsheet/pkg/session"
)

// ArtifactName derives the base file name for a generation. A blank company
// falls back to the same anonymous label the version counter uses.
func ArtifactName(company string, version int) string {
	name := strings.TrimSpace(company)
	if name == "" {
		name = session.FallbackCompany
	}
	return fmt.Sprintf("Template cierre de negocio - %s_V%d", name, version)
}

// Artifact describes one generated output.
type Artifact struct {
	Name        string
	Version     int
	ContentType string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBuilder swaps the document builder.
func WithBuilder(b *document.Builder) Option {
	return func(g *Generator) {
		if b != nil {
			g.builder = b
		}
	}
}

// WithRegistry sets the renderer registry.
func WithRegistry(r *document.Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithSurface sets the output surface.
func WithSurface(s Surface) Option {
	return func(g *Generator) {
		if s != nil {
			g.surface = s
		}
	}
}

// WithClock overrides the generation timestamp source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator runs the two-phase generation flow over one session.
type Generator struct {
	session  *session.Session
	builder  *document.Builder
	registry *document.Registry
	surface  Surface
	now      func() time.Time
}

func New(sess *session.Session, opts ...Option) (*Generator, error) {
	if sess == nil {
		return nil, fmt.Errorf("export: session is required")
	}
	g := &Generator{
		session: sess,
		builder: document.NewBuilder(),
		surface: NewDirSurface("."),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.registry == nil {
		return nil, fmt.Errorf("export: renderer registry is required")
	}
	return g, nil
}

// Generate renders the current snapshot in the given format and writes it
// to the surface. The per-company version is committed only after the
// artifact landed; any earlier failure leaves the counter untouched.
func (g *Generator) Generate(ctx context.Context, format string) (Artifact, error) {
	renderer, err := g.registry.Get(format)
	if err != nil {
		return Artifact{}, fmt.Errorf("export: %w", err)
	}

	snap := g.session.Snapshot()
	version := g.session.PeekVersion()

	doc, err := g.builder.Build(snap, version, g.now())
	if err != nil {
		return Artifact{}, fmt.Errorf("export: %w", err)
	}

	data, err := renderer.Render(ctx, doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("export: render %s: %w", format, err)
	}

	name := ArtifactName(snap.Company(), version) + renderer.FileExt()
	w, err := g.surface.Create(ctx, name)
	if err != nil {
		return Artifact{}, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return Artifact{}, fmt.Errorf("export: write %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return Artifact{}, fmt.Errorf("export: close %q: %w", name, err)
	}

	g.session.CommitVersion()
	return Artifact{Name: name, Version: version, ContentType: renderer.ContentType()}, nil
}

// GenerateAll renders the snapshot in every requested format and writes all
// artifacts under the same version number, committing once after the last
// one landed. Any failure aborts the batch without consuming the version.
func (g *Generator) GenerateAll(ctx context.Context, formats ...string) ([]Artifact, error) {
	if len(formats) == 0 {
		return nil, fmt.Errorf("export: no formats requested")
	}
	renderers := make([]document.Renderer, 0, len(formats))
	for _, format := range formats {
		renderer, err := g.registry.Get(format)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		renderers = append(renderers, renderer)
	}

	snap := g.session.Snapshot()
	version := g.session.PeekVersion()

	doc, err := g.builder.Build(snap, version, g.now())
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	base := ArtifactName(snap.Company(), version)
	artifacts := make([]Artifact, 0, len(renderers))
	for i, renderer := range renderers {
		data, err := renderer.Render(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("export: render %s: %w", formats[i], err)
		}
		name := base + renderer.FileExt()
		w, err := g.surface.Create(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, fmt.Errorf("export: write %q: %w", name, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("export: close %q: %w", name, err)
		}
		artifacts = append(artifacts, Artifact{Name: name, Version: version, ContentType: renderer.ContentType()})
	}

	g.session.CommitVersion()
	return artifacts, nil
}
