// Package htmldoc renders the deal sheet as a printable single-page HTML
// document from an embedded pongo2 template. Captured free text is passed
// through a strict bluemonday policy before it reaches the markup.
package htmldoc

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dealsheet/pkg/document"
	"github.com/goliatone/go-dealsheet/pkg/document/template"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
)

const rendererName = "html"

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine, e.g. to load a custom
// layout from disk.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTheme picks the palette by name and optional variant.
func WithTheme(name, variant string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(name) != "" {
			r.theme = strings.TrimSpace(name)
		}
		r.variant = strings.TrimSpace(variant)
	}
}

// WithThemeSelector swaps the manifest source.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(r *Renderer) {
		if selector != nil {
			r.selector = selector
		}
	}
}

// Renderer implements document.Renderer for HTML output.
type Renderer struct {
	engine   template.TemplateRenderer
	selector theme.ThemeSelector
	theme    string
	variant  string
	policy   *bluemonday.Policy
}

var _ document.Renderer = (*Renderer)(nil)

func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		selector: newManifestSelector(builtinManifests()...),
		theme:    DefaultTheme,
		policy:   bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := template.New(template.WithFS(embeddedTemplates))
		if err != nil {
			return nil, fmt.Errorf("htmldoc: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return rendererName }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }
func (r *Renderer) FileExt() string     { return ".html" }

// Render produces the printable page.
func (r *Renderer) Render(ctx context.Context, doc document.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("htmldoc: render: %w", err)
	}

	selection, err := r.selector.Select(r.theme, r.variant)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: select theme: %w", err)
	}

	data, err := r.templateData(doc, selection)
	if err != nil {
		return nil, err
	}

	out, err := r.engine.RenderTemplate("templates/document", data)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: render document: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) templateData(doc document.Document, selection *theme.Selection) (map[string]any, error) {
	clean := func(v string) string { return r.policy.Sanitize(v) }

	client, err := r.entries(doc.Client, clean)
	if err != nil {
		return nil, err
	}
	contextEntries, err := r.entries(doc.Context, clean)
	if err != nil {
		return nil, err
	}
	notes, err := r.entries(doc.Notes, clean)
	if err != nil {
		return nil, err
	}

	var blocks []map[string]any
	for _, block := range doc.Config {
		entries, err := r.entries(block.Entries, clean)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, map[string]any{
			"title":   clean(block.Title),
			"entries": entries,
		})
	}

	products := make([]string, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, clean(p))
	}

	return map[string]any{
		"title":        document.Title,
		"process":      document.ProcessLabel,
		"company":      clean(doc.Company),
		"version":      doc.Version,
		"date":         doc.Date(),
		"palette":      paletteCSS(selection),
		"placeholder":  document.Placeholder,
		"products":     products,
		"client":       client,
		"config":       blocks,
		"context":      contextEntries,
		"notes":        notes,
		"completed_by": clean(doc.CompletedBy),
		"completed_at": clean(doc.CompletedAt),
	}, nil
}

func (r *Renderer) entries(in []document.Entry, clean func(string) string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(in))
	for _, e := range in {
		item := map[string]any{
			"label": clean(e.Label),
			"value": clean(e.Value),
			"kind":  string(e.Kind),
		}
		if e.Kind == document.EntryImage {
			src := string(e.Image)
			if !strings.HasPrefix(src, "data:image/") {
				return nil, fmt.Errorf("htmldoc: entry %q: image payload is not a data URI", e.Label)
			}
			item["image"] = src
		}
		out = append(out, item)
	}
	return out, nil
}
