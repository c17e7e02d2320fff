package document_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-dealsheet/pkg/catalog"
	"github.com/goliatone/go-dealsheet/pkg/document"
	"github.com/goliatone/go-dealsheet/pkg/images"
	"github.com/goliatone/go-dealsheet/pkg/session"
	"github.com/google/go-cmp/cmp"
)

var buildTime = time.Date(2026, time.March, 9, 15, 4, 0, 0, time.UTC)

func buildDoc(t *testing.T, configure func(*session.Session)) document.Document {
	t.Helper()
	s := session.New()
	if configure != nil {
		configure(s)
	}
	doc, err := document.NewBuilder().Build(s.Snapshot(), 1, buildTime)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func findEntry(entries []document.Entry, label string) (document.Entry, bool) {
	for _, e := range entries {
		if e.Label == label {
			return e, true
		}
	}
	return document.Entry{}, false
}

func findBlock(t *testing.T, doc document.Document, title string) document.Block {
	t.Helper()
	for _, b := range doc.Config {
		if b.Title == title {
			return b
		}
	}
	t.Fatalf("block %q not found in %v", title, doc.Config)
	return document.Block{}
}

func TestEmptyRecordRendersPlaceholders(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, nil)

	if doc.Company != document.UnnamedCompany {
		t.Fatalf("Company = %q, want %q", doc.Company, document.UnnamedCompany)
	}
	if len(doc.Products) != 0 {
		t.Fatalf("Products = %v, want none", doc.Products)
	}
	if len(doc.Config) != 0 {
		t.Fatalf("Config = %v, want none", doc.Config)
	}
	for _, e := range doc.Client {
		if e.Value != document.Placeholder {
			t.Fatalf("client entry %q = %q, want placeholder", e.Label, e.Value)
		}
	}
	if doc.CompletedBy != document.Placeholder || doc.CompletedAt != document.Placeholder {
		t.Fatalf("footer = %q / %q, want placeholders", doc.CompletedBy, doc.CompletedAt)
	}
}

func TestDateFormat(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, nil)
	if got := doc.Date(); got != "9/3/2026" {
		t.Fatalf("Date = %q, want 9/3/2026", got)
	}
}

func TestConfigBlocksFollowEnumerationOrder(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		// select out of order on purpose
		s.ToggleProduct(catalog.ProductWallet)
		s.ToggleProduct(catalog.ProductCuenta)
		s.ToggleProduct(catalog.ProductPayouts)
	})

	var titles []string
	for _, b := range doc.Config {
		titles = append(titles, b.Title)
	}
	want := []string{catalog.ProductCuenta, catalog.ProductPayouts, catalog.ProductWallet}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("block order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, doc.Products); diff != "" {
		t.Fatalf("product tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentMapsToDisplayLabel(t *testing.T) {
	t.Parallel()

	for answer, want := range map[string]string{
		"mid": "Mid-market",
		"ent": "Enterprise",
		"":    document.Placeholder,
		"x":   document.Placeholder,
	} {
		doc := buildDoc(t, func(s *session.Session) {
			if answer != "" {
				s.SetField("segmento", answer)
			}
		})
		entry, ok := findEntry(doc.Client, "Segmento")
		if !ok {
			t.Fatal("Segmento entry missing")
		}
		if entry.Value != want {
			t.Fatalf("segmento %q rendered %q, want %q", answer, entry.Value, want)
		}
	}
}

func TestStaleAnswersAreNotProjected(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductCuenta)
		s.SetField("cuentaGMF", true)
		s.SetField("cuentaGMFNumerales", "3, 7")
		s.SetField("cuentaGMF", false) // numerals stay in the record
	})

	block := findBlock(t, doc, catalog.ProductCuenta)
	if _, ok := findEntry(block.Entries, "Numerales GMF"); ok {
		t.Fatal("Numerales GMF should be hidden when the flag is off")
	}
}

func TestPayoutsPorRangoRendersImageAndOmitsFixedCosts(t *testing.T) {
	t.Parallel()

	payload := images.Payload("data:image/png;base64,AAAA")
	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductPayouts)
		s.SetField("payoutACH", true)
		s.SetField("payoutBreB", true)
		s.SetField("payoutEsquema", "Por rango")
		s.SetField("payoutCostoACH", "$900") // stale from a previous scheme
		s.SetImage(catalog.SlotPayout, payload)
	})

	block := findBlock(t, doc, catalog.ProductPayouts)
	img, ok := findEntry(block.Entries, "Pricing por rango")
	if !ok {
		t.Fatal("pricing image entry missing")
	}
	if img.Kind != document.EntryImage || img.Image != payload {
		t.Fatalf("image entry = %+v", img)
	}
	if _, ok := findEntry(block.Entries, "Costo ACH"); ok {
		t.Fatal("fixed ACH cost should be omitted under Por rango")
	}
	if _, ok := findEntry(block.Entries, "Costo Bre-B"); ok {
		t.Fatal("fixed Bre-B cost should be omitted under Por rango")
	}
}

func TestPayoutsFixedSchemeShowsPerRailCosts(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductPayouts)
		s.SetField("payoutACH", true)
		s.SetField("payoutEsquema", "Fijo por transferencia")
		s.SetField("payoutCostoACH", "$900 + IVA")
	})

	block := findBlock(t, doc, catalog.ProductPayouts)
	entry, ok := findEntry(block.Entries, "Costo ACH")
	if !ok || entry.Value != "$900 + IVA" {
		t.Fatalf("Costo ACH = %+v (ok=%v)", entry, ok)
	}
	// Bre-B rail is off, so its cost stays hidden even under the fixed scheme
	if _, ok := findEntry(block.Entries, "Costo Bre-B"); ok {
		t.Fatal("Costo Bre-B should require the Bre-B rail")
	}
}

func TestPayoutsKeyValidationComposite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		answers map[string]any
		want    string
	}{
		{"yes with cost", map[string]any{"payoutValidLlave": "si", "payoutCostoValidLlave": "$50"}, "Sí · Costo: $50"},
		{"yes without cost", map[string]any{"payoutValidLlave": "si"}, "Sí · Costo: " + document.Placeholder},
		{"no", map[string]any{"payoutValidLlave": "no"}, "No"},
		{"unanswered", nil, document.Placeholder},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := buildDoc(t, func(s *session.Session) {
				s.ToggleProduct(catalog.ProductPayouts)
				s.SetField("payoutBreB", true)
				for k, v := range tc.answers {
					s.SetField(k, v)
				}
			})
			block := findBlock(t, doc, catalog.ProductPayouts)
			entry, ok := findEntry(block.Entries, "Validación de llave")
			if !ok {
				t.Fatal("key validation entry missing")
			}
			if entry.Value != tc.want {
				t.Fatalf("value = %q, want %q", entry.Value, tc.want)
			}
		})
	}
}

func TestPayinsWithoutBreBUsesReducedLayout(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductPayins)
		s.SetField("payinPSE", true)
		s.SetField("payinCostoPSE", "$500")
		s.SetField("payinSetup", "$1.000.000")
		s.SetField("payinMin", "$200.000") // stale, belongs to the Bre-B layout
	})

	block := findBlock(t, doc, catalog.ProductPayins)
	if _, ok := findEntry(block.Entries, "Plan Bre-B"); ok {
		t.Fatal("Bre-B plan should be hidden")
	}
	if _, ok := findEntry(block.Entries, "Mínimo facturable"); ok {
		t.Fatal("minimum billing belongs to the Bre-B layout")
	}
	setup, ok := findEntry(block.Entries, "Setup fee")
	if !ok || setup.Value != "$1.000.000" {
		t.Fatalf("Setup fee = %+v (ok=%v)", setup, ok)
	}
}

func TestPayinsBasicPlanShowsAddOns(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductPayins)
		s.SetField("payinBreB", true)
		s.SetField("payinBreBPlan", "Plan Basic")
		s.SetField("payinQR", true)
		s.SetField("payin4Reglas", true)
		s.SetField("payinEsquema", "Fijo por intento")
		s.SetField("payinCostoIntento", "$120")
	})

	block := findBlock(t, doc, catalog.ProductPayins)
	addons, ok := findEntry(block.Entries, "Add-ons")
	if !ok || addons.Value != "QR, 4 reglas" {
		t.Fatalf("Add-ons = %+v (ok=%v)", addons, ok)
	}
	intento, ok := findEntry(block.Entries, "Costo por intento")
	if !ok || intento.Value != "$120" {
		t.Fatalf("Costo por intento = %+v (ok=%v)", intento, ok)
	}
	if _, ok := findEntry(block.Entries, "Mínimo facturable"); !ok {
		t.Fatal("minimum billing missing from the Bre-B layout")
	}
}

func TestPayinsFullPlanHidesAddOns(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductPayins)
		s.SetField("payinBreB", true)
		s.SetField("payinBreBPlan", "Plan Full")
		s.SetField("payinQR", true) // stale add-on
	})

	block := findBlock(t, doc, catalog.ProductPayins)
	if _, ok := findEntry(block.Entries, "Add-ons"); ok {
		t.Fatal("add-ons are exclusive to Plan Basic")
	}
}

func TestWalletFXBlockRequiresA2A(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductWallet)
		s.SetField("walletA2A", "no")
		s.SetField("walletComision", "1.5%") // stale
	})
	block := findBlock(t, doc, catalog.ProductWallet)
	if _, ok := findEntry(block.Entries, "A2A FX"); ok {
		t.Fatal("FX block should be hidden when A2A is declined")
	}

	doc = buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductWallet)
		s.SetField("walletA2A", "si")
		s.SetField("walletComision", "1.5%")
		s.SetField("walletFXCOP", "$300")
		s.SetField("walletEndpoint", "si")
	})
	block = findBlock(t, doc, catalog.ProductWallet)

	fx, ok := findEntry(block.Entries, "A2A FX")
	if !ok || fx.Value != "Incluye · Comisión: 1.5%" {
		t.Fatalf("A2A FX = %+v (ok=%v)", fx, ok)
	}
	costs, ok := findEntry(block.Entries, "Costos por moneda")
	if !ok {
		t.Fatal("per-currency costs missing")
	}
	wantCosts := "COP: $300 · USD: — · CLP: — · MXN: — · PEN: —"
	if costs.Value != wantCosts {
		t.Fatalf("Costos por moneda = %q, want %q", costs.Value, wantCosts)
	}
	endpoint, ok := findEntry(block.Entries, "Endpoint tasas")
	if !ok || endpoint.Value != "Activado" {
		t.Fatalf("Endpoint tasas = %+v (ok=%v)", endpoint, ok)
	}
}

func TestTokenizationFeeCarriesWalletSuffix(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductTarjetas)
		s.SetField("tarjToken", true)
		s.SetField("tarjTokenMens", "$80.000")
		s.SetField("tarjGPay", true)
		s.SetField("tarjAPay", true)
	})

	block := findBlock(t, doc, catalog.ProductTarjetas)
	entry, ok := findEntry(block.Entries, "Tokenización mensualidad")
	if !ok || entry.Value != "$80.000 Google Pay, Apple Pay" {
		t.Fatalf("tokenization fee = %+v (ok=%v)", entry, ok)
	}
}

func TestCoreCurrenciesAppendFreeText(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, func(s *session.Session) {
		s.ToggleProduct(catalog.ProductCore)
		s.SetField("coreMonedaCOP", true)
		s.SetField("coreMonedaOtras", "GBP, EUR")
	})

	block := findBlock(t, doc, catalog.ProductCore)
	entry, ok := findEntry(block.Entries, "Monedas")
	if !ok || entry.Value != "COP, GBP, EUR" {
		t.Fatalf("Monedas = %+v (ok=%v)", entry, ok)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	s := session.New()
	s.SetField("empresa", "Acme")
	s.ToggleProduct(catalog.ProductCore)
	s.SetField("corePlan", "Premium")
	snap := s.Snapshot()

	b := document.NewBuilder()
	first, err := b.Build(snap, 3, buildTime)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := b.Build(snap, 3, buildTime)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}
