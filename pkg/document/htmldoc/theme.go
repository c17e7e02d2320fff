package htmldoc

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme is the built-in palette matching the printed sheet.
const DefaultTheme = "mono"

// builtinManifests returns the themes shipped with the renderer. "mono" is
// the standard palette; its "dark" variant inverts paper and ink for
// on-screen review.
func builtinManifests() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    DefaultTheme,
			Version: "1.0.0",
			Tokens: map[string]string{
				"ink":            "#111827",
				"muted":          "#6b7280",
				"faint":          "#9ca3af",
				"border":         "#e5e7eb",
				"paper":          "#ffffff",
				"box":            "#f9fafb",
				"note-bg":        "#fffbeb",
				"note-border":    "#fde68a",
				"accent-client":  "#111827",
				"accent-product": "#6366f1",
				"accent-config":  "#f59e0b",
				"accent-context": "#10b981",
				"accent-notes":   "#8b5cf6",
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						"ink":    "#f9fafb",
						"muted":  "#9ca3af",
						"border": "#374151",
						"paper":  "#111827",
						"box":    "#1f2937",
					},
				},
			},
		},
	}
}

// manifestSelector resolves theme selections from a fixed manifest set. It
// satisfies theme.ThemeSelector.
type manifestSelector struct {
	manifests map[string]*theme.Manifest
}

func newManifestSelector(manifests ...*theme.Manifest) *manifestSelector {
	s := &manifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m != nil && m.Name != "" {
			s.manifests[m.Name] = m
		}
	}
	return s
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("htmldoc: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("htmldoc: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// paletteCSS flattens a selection's tokens (base plus variant overlay) into
// a deterministic CSS custom-property declaration list.
func paletteCSS(sel *theme.Selection) string {
	if sel == nil || sel.Manifest == nil {
		return ""
	}

	tokens := make(map[string]string, len(sel.Manifest.Tokens))
	for k, v := range sel.Manifest.Tokens {
		tokens[k] = v
	}
	if sel.Variant != "" {
		if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
			for k, v := range variant.Tokens {
				tokens[k] = v
			}
		}
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString("--")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(tokens[name])
		b.WriteString(";")
	}
	return b.String()
}
