// Package catalog is the single source of truth for the deal-closing form:
// the product enumeration, every field descriptor (label, kind, options),
// and the governing rule that decides when a field applies. Both the
// interactive walker and the document builder consume the same rules.
package catalog

import (
	"github.com/goliatone/go-dealsheet/pkg/visibility"
)

// Product display names. Rendering and prompting always follow this
// enumeration order, never selection order.
const (
	ProductCuenta   = "Cuenta"
	ProductCore     = "Core"
	ProductTarjetas = "Tarjetas"
	ProductPayouts  = "Payouts"
	ProductPayins   = "Payins"
	ProductWallet   = "Wallet Marca Blanca"
)

// Kind classifies how a field is captured and rendered.
type Kind string

const (
	KindText      Kind = "text"
	KindMultiline Kind = "multiline"
	KindFlag      Kind = "flag"
	KindChoice    Kind = "choice"
	KindImage     Kind = "image"
)

// Choice is a selectable option. Value is what gets stored in the answer
// record; Label is what people see. They differ for coded answers such as
// segment ("mid" / "Mid-market").
type Choice struct {
	Value string
	Label string
}

// Field describes one capturable value.
type Field struct {
	Key         string
	Kind        Kind
	Label       string
	Group       string // cluster heading for adjacent flags ("Adicionales", "Rieles de transferencia")
	Placeholder string
	Options     []Choice
	Rule        string // governing predicate; empty means always applicable
	Slot        string // image attachment slot, only for KindImage
	Required    bool
}

// OptionLabel resolves a stored choice value to its display label. Unknown
// values return the empty string so callers can fall back to a placeholder.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return ""
}

// Product groups the fields owned by one contractable product.
type Product struct {
	Name   string
	Fields []Field
}

// Products returns the fixed product enumeration in rendering order.
func Products() []Product {
	return products
}

// ProductNames returns just the display names, in enumeration order.
func ProductNames() []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

// ClientFields returns the client-information section fields.
func ClientFields() []Field { return clientFields }

// ContextFields returns the deal-context free-text fields.
func ContextFields() []Field { return contextFields }

// NoteFields returns the handoff-notes and sign-off fields.
func NoteFields() []Field { return noteFields }

// Lookup finds a field descriptor by answer key across every section.
func Lookup(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// Visible evaluates the field's governing rule against the current answers.
// Fields without a rule are always visible.
func Visible(f Field, eval visibility.Evaluator, ctx visibility.Context) (bool, error) {
	if f.Rule == "" {
		return true, nil
	}
	return eval.Eval(f.Key, f.Rule, ctx)
}

var fieldIndex = map[string]Field{}

func init() {
	index := func(fields []Field) {
		for _, f := range fields {
			fieldIndex[f.Key] = f
		}
	}
	index(clientFields)
	index(contextFields)
	index(noteFields)
	for _, p := range products {
		index(p.Fields)
	}
}
