package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-dealsheet/pkg/catalog"
	"github.com/goliatone/go-dealsheet/pkg/session"
	"github.com/goliatone/go-dealsheet/pkg/visibility"
	"github.com/goliatone/go-dealsheet/pkg/visibility/expr"
)

// Builder projects a capture snapshot into a Document. It is stateless and
// deterministic: the same snapshot, version, and timestamp always produce
// the same document. Visibility decisions come from the catalog rules via
// the shared evaluator; stale answers behind a toggled-off rule are simply
// not projected.
type Builder struct {
	eval visibility.Evaluator
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEvaluator swaps the rule evaluator, mostly for tests.
func WithEvaluator(eval visibility.Evaluator) BuilderOption {
	return func(b *Builder) {
		if eval != nil {
			b.eval = eval
		}
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{eval: expr.New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles the document for one generation.
func (b *Builder) Build(snap session.Snapshot, version int, generatedAt time.Time) (Document, error) {
	p := &projection{
		snap: snap,
		ctx:  snap.VisibilityContext(),
		eval: b.eval,
	}

	doc := Document{
		Company:     snap.Company(),
		Version:     version,
		GeneratedAt: generatedAt,
		Products:    snap.SelectedProducts(),
		Client:      p.clientEntries(),
		Context:     p.contextEntries(),
		Notes:       p.noteEntries(),
		CompletedBy: p.val("completadoPor"),
		CompletedAt: p.val("fechaCompletado"),
	}
	if doc.Company == "" {
		doc.Company = UnnamedCompany
	}

	blocks := map[string]func() Block{
		catalog.ProductCuenta:   p.cuentaBlock,
		catalog.ProductCore:     p.coreBlock,
		catalog.ProductTarjetas: p.tarjetasBlock,
		catalog.ProductPayouts:  p.payoutsBlock,
		catalog.ProductPayins:   p.payinsBlock,
		catalog.ProductWallet:   p.walletBlock,
	}
	for _, name := range doc.Products {
		build, ok := blocks[name]
		if !ok {
			return Document{}, fmt.Errorf("document: no block for product %q", name)
		}
		doc.Config = append(doc.Config, build())
	}

	if p.err != nil {
		return Document{}, fmt.Errorf("document: build: %w", p.err)
	}
	return doc, nil
}

// projection carries the per-build state. Rule errors are collected rather
// than threaded through every block function; the first one aborts Build.
type projection struct {
	snap session.Snapshot
	ctx  visibility.Context
	eval visibility.Evaluator
	err  error
}

// val returns the answer or the dash placeholder.
func (p *projection) val(key string) string {
	if v := p.snap.String(key); v != "" {
		return v
	}
	return Placeholder
}

// on evaluates the catalog rule governing key.
func (p *projection) on(key string) bool {
	field, ok := catalog.Lookup(key)
	if !ok {
		p.fail(fmt.Errorf("unknown field %q", key))
		return false
	}
	visible, err := catalog.Visible(field, p.eval, p.ctx)
	if err != nil {
		p.fail(err)
		return false
	}
	return visible
}

func (p *projection) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

type flagLabel struct {
	key   string
	label string
}

// joined returns the active flag labels joined with ", ", empty when none.
// Entries with an empty key contribute their label verbatim when non-empty
// (free-text members of a composite, like extra currencies).
func (p *projection) joined(items ...flagLabel) string {
	var active []string
	for _, item := range items {
		if item.key == "" {
			if item.label != "" {
				active = append(active, item.label)
			}
			continue
		}
		if p.snap.Flag(item.key) {
			active = append(active, item.label)
		}
	}
	return strings.Join(active, ", ")
}

func (p *projection) joinedOrDash(items ...flagLabel) string {
	if v := p.joined(items...); v != "" {
		return v
	}
	return Placeholder
}

func (p *projection) choiceLabel(key string) string {
	field, ok := catalog.Lookup(key)
	if !ok {
		return Placeholder
	}
	if label := field.OptionLabel(p.snap.String(key)); label != "" {
		return label
	}
	return Placeholder
}

func (p *projection) clientEntries() []Entry {
	rows := []struct {
		label string
		key   string
	}{
		{"Nombre empresa", "empresa"},
		{"Fecha pago setup fee", "fechaPago"},
		{"Contacto principal", "contacto"},
		{"Correo facturación", "emailFacturacion"},
		{"Facturación", "facturacion"},
		{"Segmento", "segmento"},
		{"Razón Social", "razonSocial"},
		{"NIT", "nit"},
		{"Jurisdicción", "jurisdiccion"},
		{"Dirección, Ciudad", "direccion"},
		{"Representante Legal", "repLegal"},
		{"Documento Rep. Legal", "docRepLegal"},
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		value := p.val(row.key)
		if row.key == "segmento" {
			value = p.choiceLabel("segmento")
		}
		entries = append(entries, Entry{Label: row.label, Value: value, Kind: EntryValue})
	}
	return entries
}

func (p *projection) contextEntries() []Entry {
	return []Entry{
		{Label: "Descripción del cliente", Value: p.val("descripcion"), Kind: EntryValue},
		{Label: "Volumen transaccional", Value: p.val("volumen"), Kind: EntryValue},
		{Label: "Caso de uso", Value: p.val("casoUso"), Kind: EntryValue},
	}
}

func (p *projection) noteEntries() []Entry {
	return []Entry{
		{Value: p.val("notas"), Kind: EntryValue},
	}
}

func (p *projection) cuentaBlock() Block {
	entries := []Entry{
		{Label: "Modelo", Value: p.val("cuentaModelo"), Kind: EntryValue},
		{Label: "Tipo de cuenta", Value: p.val("cuentaTipo"), Kind: EntryValue},
		{Label: "Adicionales", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"cuentaAV", "Acciones y Valores"},
			flagLabel{"cuentaGMF", "Exención GMF"},
			flagLabel{"cuentaH2H", "H2H (BCC)"},
		)},
	}
	if p.on("cuentaGMFNumerales") {
		entries = append(entries, Entry{Label: "Numerales GMF", Value: p.val("cuentaGMFNumerales"), Kind: EntryValue})
	}
	return Block{Title: catalog.ProductCuenta, Entries: entries}
}

func (p *projection) coreBlock() Block {
	entries := []Entry{
		{Label: "Plan", Value: p.val("corePlan"), Kind: EntryValue},
		{Label: "Fondeo", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"coreFondeoCOP", "COP"},
			flagLabel{"coreFondeoUSD", "USD"},
		)},
		{Label: "Monedas", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"coreMonedaCOP", "COP"},
			flagLabel{"coreMonedaUSD", "USD"},
			flagLabel{"", p.snap.String("coreMonedaOtras")},
		)},
		{Label: "Setup fee", Value: p.val("coreSetup"), Kind: EntryValue},
		{Label: "Mensualidad", Value: p.val("coreMensualidad"), Kind: EntryValue},
		{Label: "Markup", Value: p.val("coreMarkup"), Kind: EntryValue},
	}
	return Block{Title: catalog.ProductCore, Entries: entries}
}

func (p *projection) tarjetasBlock() Block {
	entries := []Entry{
		{Label: "Tipo", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"tarjFisicas", "Físicas"},
			flagLabel{"tarjVirtuales", "Virtuales"},
			flagLabel{"tarjToken", "Tokenización"},
		)},
	}
	if p.on("tarjFisicasCant") {
		entries = append(entries,
			Entry{Label: "Tarjetas a emitir", Value: p.val("tarjFisicasCant"), Kind: EntryValue},
			Entry{Label: "Valor plástico", Value: p.val("tarjPlastico"), Kind: EntryValue},
		)
	}
	if p.on("tarjTokenMens") {
		value := p.val("tarjTokenMens")
		if wallets := p.joined(
			flagLabel{"tarjGPay", "Google Pay"},
			flagLabel{"tarjAPay", "Apple Pay"},
		); wallets != "" {
			value += " " + wallets
		}
		entries = append(entries, Entry{Label: "Tokenización mensualidad", Value: value, Kind: EntryValue})
	}
	entries = append(entries, Entry{Label: "Máx. tarjetas/usuario", Value: p.val("tarjMax"), Kind: EntryValue})
	return Block{Title: catalog.ProductTarjetas, Entries: entries}
}

func (p *projection) payoutsBlock() Block {
	entries := []Entry{
		{Label: "Rieles", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"payoutACH", "ACH"},
			flagLabel{"payoutTransfiya", "Transfiya/Turbo"},
			flagLabel{"payoutBreB", "Bre-B"},
		)},
		{Label: "Esquema de costos", Value: p.val("payoutEsquema"), Kind: EntryValue},
	}
	if p.on("payoutEsquemaOtro") {
		entries = append(entries, Entry{Label: "Detalle", Value: p.val("payoutEsquemaOtro"), Kind: EntryNote})
	}
	if p.on("payoutImg") {
		if img, ok := p.snap.Images[catalog.SlotPayout]; ok {
			entries = append(entries, Entry{Label: "Pricing por rango", Image: img, Kind: EntryImage})
		}
	}
	if p.on("payoutCostoACH") {
		entries = append(entries, Entry{Label: "Costo ACH", Value: p.val("payoutCostoACH"), Kind: EntryValue})
	}
	if p.on("payoutCostoBreB") {
		entries = append(entries, Entry{Label: "Costo Bre-B", Value: p.val("payoutCostoBreB"), Kind: EntryValue})
	}
	if p.on("payoutValidLlave") {
		var value string
		switch p.snap.String("payoutValidLlave") {
		case "si":
			value = "Sí · Costo: " + p.val("payoutCostoValidLlave")
		case "no":
			value = "No"
		default:
			value = Placeholder
		}
		entries = append(entries, Entry{Label: "Validación de llave", Value: value, Kind: EntryValue})
	}
	entries = append(entries,
		Entry{Label: "Setup fee", Value: p.val("payoutSetup"), Kind: EntryValue},
		Entry{Label: "Mínimo facturable", Value: p.val("payoutMin"), Kind: EntryValue},
	)
	return Block{Title: catalog.ProductPayouts, Entries: entries}
}

func (p *projection) payinsBlock() Block {
	entries := []Entry{
		{Label: "Métodos", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"payinPSE", "PSE de Mono"},
			flagLabel{"payinAdq", "Adquirencia"},
			flagLabel{"payinBreB", "Bre-B Collections"},
			flagLabel{"payinCodigo", "Gestión Código Recaudo"},
		)},
	}
	if p.on("payinCostoPSE") {
		entries = append(entries, Entry{Label: "Costo PSE", Value: p.val("payinCostoPSE"), Kind: EntryValue})
	}
	if p.on("payinCostoAdq") {
		entries = append(entries, Entry{Label: "Costo adquirencia", Value: p.val("payinCostoAdq"), Kind: EntryValue})
	}
	if p.on("payinBreBPlan") {
		entries = append(entries, Entry{Label: "Plan Bre-B", Value: p.val("payinBreBPlan"), Kind: EntryValue})
		if p.on("payinQR") {
			entries = append(entries, Entry{Label: "Add-ons", Kind: EntryValue, Value: p.joinedOrDash(
				flagLabel{"payinQR", "QR"},
				flagLabel{"payin2Reglas", "2 reglas"},
				flagLabel{"payin4Reglas", "4 reglas"},
			)})
		}
		entries = append(entries, Entry{Label: "Esquema costos Bre-B", Value: p.val("payinEsquema"), Kind: EntryValue})
		if p.on("payinEsquemaOtro") {
			entries = append(entries, Entry{Label: "Detalle", Value: p.val("payinEsquemaOtro"), Kind: EntryNote})
		}
		if p.on("payinImg") {
			if img, ok := p.snap.Images[catalog.SlotPayin]; ok {
				entries = append(entries, Entry{Label: "Pricing por rango", Image: img, Kind: EntryImage})
			}
		}
		if p.on("payinCostoIntento") {
			entries = append(entries, Entry{Label: "Costo por intento", Value: p.val("payinCostoIntento"), Kind: EntryValue})
		}
	}
	entries = append(entries, Entry{Label: "Setup fee", Value: p.val("payinSetup"), Kind: EntryValue})
	if p.on("payinMin") {
		entries = append(entries, Entry{Label: "Mínimo facturable", Value: p.val("payinMin"), Kind: EntryValue})
	}
	return Block{Title: catalog.ProductPayins, Entries: entries}
}

func (p *projection) walletBlock() Block {
	entries := []Entry{
		{Label: "Funcionalidades", Kind: EntryValue, Value: p.joinedOrDash(
			flagLabel{"walletTransf", "Transf. entre wallets"},
			flagLabel{"walletACH", "ACH"},
			flagLabel{"walletTransfiya", "Transfiya/Turbo"},
			flagLabel{"walletTarjetas", "Activación tarjetas"},
			flagLabel{"walletSolicitud", "Solicitud tarjeta usuario"},
		)},
		{Label: "Costo transf. banco", Value: p.val("walletCostoTransf"), Kind: EntryValue},
	}

	var gmf string
	switch p.snap.String("walletGMF") {
	case "cliente":
		gmf = "Cliente/Tenant"
	case "usuario":
		gmf = "Usuario Final"
	default:
		gmf = Placeholder
	}
	entries = append(entries, Entry{Label: "GMF asume", Value: gmf, Kind: EntryValue})

	if p.on("walletComision") {
		entries = append(entries,
			Entry{Label: "A2A FX", Value: "Incluye · Comisión: " + p.val("walletComision"), Kind: EntryValue},
			Entry{Label: "Costos por moneda", Kind: EntryValue, Value: fmt.Sprintf(
				"COP: %s · USD: %s · CLP: %s · MXN: %s · PEN: %s",
				p.val("walletFXCOP"), p.val("walletFXUSD"), p.val("walletFXCLP"),
				p.val("walletFXMXN"), p.val("walletFXPEN"),
			)},
		)
		var endpoint string
		switch p.snap.String("walletEndpoint") {
		case "si":
			endpoint = "Activado"
		case "no":
			endpoint = "No activado"
		default:
			endpoint = Placeholder
		}
		entries = append(entries, Entry{Label: "Endpoint tasas", Value: endpoint, Kind: EntryValue})
	}
	return Block{Title: catalog.ProductWallet, Entries: entries}
}
