package session

import (
	"fmt"
	"os"

	"github.com/goliatone/go-dealsheet/pkg/catalog"
	"github.com/goliatone/go-dealsheet/pkg/images"
	"gopkg.in/yaml.v3"
)

// Prefill is a deal file: product names, answers, and image paths keyed by
// slot. It seeds a session before interactive capture, or replaces it
// entirely in non-interactive runs.
type Prefill struct {
	Products []string          `yaml:"products"`
	Answers  map[string]any    `yaml:"answers"`
	Images   map[string]string `yaml:"images"`
}

// LoadPrefill parses a YAML deal file.
func LoadPrefill(path string) (Prefill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prefill{}, fmt.Errorf("session: read prefill %q: %w", path, err)
	}
	var p Prefill
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefill{}, fmt.Errorf("session: parse prefill %q: %w", path, err)
	}
	return p, nil
}

// Apply writes the prefill into the session. Product names are validated
// against the catalog; image paths are read and attached to their slots.
func (s *Session) Apply(p Prefill) error {
	known := map[string]bool{}
	for _, name := range catalog.ProductNames() {
		known[name] = true
	}
	for _, name := range p.Products {
		if !known[name] {
			return fmt.Errorf("session: unknown product %q", name)
		}
		s.SelectProduct(name, true)
	}

	for key, value := range p.Answers {
		switch v := value.(type) {
		case string, bool:
			s.SetField(key, v)
		default:
			s.SetField(key, fmt.Sprint(v))
		}
	}

	for slot, path := range p.Images {
		if slot != catalog.SlotPayout && slot != catalog.SlotPayin {
			return fmt.Errorf("session: unknown image slot %q", slot)
		}
		payload, err := images.FromFile(path)
		if err != nil {
			return fmt.Errorf("session: attach %s: %w", slot, err)
		}
		s.SetImage(slot, payload)
	}
	return nil
}
