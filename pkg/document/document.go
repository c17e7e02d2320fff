// Package document defines the intermediate representation of the printable
// deal sheet and the pure builder that projects a capture snapshot into it.
// Renderers turn the IR into concrete formats without re-deciding visibility.
package document

import (
	"context"
	"time"

	"github.com/goliatone/go-dealsheet/pkg/images"
)

// Placeholder stands in for every unanswered value.
const Placeholder = "—"

// Fixed header strings.
const (
	Title          = "Cierre de Negocio"
	ProcessLabel   = "Mono · Sales → Onboarding"
	UnnamedCompany = "Sin nombre"
)

// EntryKind classifies how an entry renders.
type EntryKind string

const (
	EntryValue EntryKind = "value" // label over an underlined value
	EntryTags  EntryKind = "tags"  // pill list (contracted products)
	EntryNote  EntryKind = "note"  // highlighted detail box ("Si otro, detallar")
	EntryImage EntryKind = "image" // embedded pricing screenshot
)

// Entry is one labelled datum in the document.
type Entry struct {
	Label string
	Value string
	Kind  EntryKind
	Tags  []string
	Image images.Payload
}

// Block is one per-product configuration box.
type Block struct {
	Title   string
	Entries []Entry
}

// Document is the fully resolved deal sheet. Every visibility decision has
// already been applied; renderers lay it out verbatim.
type Document struct {
	Company     string
	Version     int
	GeneratedAt time.Time

	Products []string
	Client   []Entry
	Config   []Block
	Context  []Entry
	Notes    []Entry

	CompletedBy string
	CompletedAt string
}

// Date formats the generation date the way the printed sheet shows it
// (day/month/year, es-CO style, no zero padding).
func (d Document) Date() string {
	return d.GeneratedAt.Format("2/1/2006")
}

// Renderer turns a document into one output format.
type Renderer interface {
	Name() string
	ContentType() string
	FileExt() string
	Render(ctx context.Context, doc Document) ([]byte, error)
}
