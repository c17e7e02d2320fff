// Package pdfdoc renders the deal sheet straight to PDF via gopdf, the
// artifact the browser print dialog used to produce. A TTF font must be
// supplied by the caller; gopdf cannot lay out text without one.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/goliatone/go-dealsheet/pkg/document"
	"github.com/goliatone/go-dealsheet/pkg/images"
	"github.com/signintech/gopdf"
)

const rendererName = "pdf"

const (
	marginX  = 40.0
	marginY  = 40.0
	maxImgH  = 200.0
	imgSpace = 8.0
)

// Option configures the renderer.
type Option func(*Renderer) error

// WithFont supplies the TTF font bytes used for every run of text.
func WithFont(name string, data []byte) Option {
	return func(r *Renderer) error {
		if strings.TrimSpace(name) == "" || len(data) == 0 {
			return fmt.Errorf("pdfdoc: font name and data are required")
		}
		r.fontName = name
		r.fontData = data
		return nil
	}
}

// WithFontFile reads the TTF font from disk.
func WithFontFile(name, path string) Option {
	return func(r *Renderer) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("pdfdoc: read font %q: %w", path, err)
		}
		return WithFont(name, data)(r)
	}
}

// Renderer implements document.Renderer for PDF output.
type Renderer struct {
	fontName string
	fontData []byte
}

var _ document.Renderer = (*Renderer)(nil)

func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) Name() string        { return rendererName }
func (r *Renderer) ContentType() string { return "application/pdf" }
func (r *Renderer) FileExt() string     { return ".pdf" }

// Render lays the document out on A4 pages and returns the PDF bytes.
func (r *Renderer) Render(ctx context.Context, doc document.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pdfdoc: render: %w", err)
	}
	if len(r.fontData) == 0 {
		return nil, fmt.Errorf("pdfdoc: render: %w", ErrFontRequired)
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		Unit:     gopdf.UnitPT,
		PageSize: *gopdf.PageSizeA4,
	})
	if err := pdf.AddTTFFontByReader(r.fontName, bytes.NewReader(r.fontData)); err != nil {
		return nil, fmt.Errorf("pdfdoc: load font %q: %w", r.fontName, err)
	}
	pdf.AddPage()

	pg := &page{pdf: pdf, font: r.fontName, y: marginY}

	header := fmt.Sprintf("%s — %s  V%d", document.Title, doc.Company, doc.Version)
	if err := pg.text(16, inkColor, header); err != nil {
		return nil, err
	}
	if err := pg.text(9, mutedColor, document.ProcessLabel+" · "+doc.Date()); err != nil {
		return nil, err
	}
	pg.y += 8

	if err := pg.section("1 · Información del cliente"); err != nil {
		return nil, err
	}
	if err := pg.entries(doc.Client); err != nil {
		return nil, err
	}

	if err := pg.section("2 · Productos contratados"); err != nil {
		return nil, err
	}
	productLine := document.Placeholder
	if len(doc.Products) > 0 {
		productLine = strings.Join(doc.Products, " · ")
	}
	if err := pg.text(10, inkColor, productLine); err != nil {
		return nil, err
	}

	if len(doc.Config) > 0 {
		if err := pg.section("3 · Configuración por producto"); err != nil {
			return nil, err
		}
		for _, block := range doc.Config {
			if err := pg.text(11, mutedColor, strings.ToUpper(block.Title)); err != nil {
				return nil, err
			}
			if err := pg.entries(block.Entries); err != nil {
				return nil, err
			}
			pg.y += 6
		}
	}

	if err := pg.section("4 · Contexto del deal"); err != nil {
		return nil, err
	}
	if err := pg.entries(doc.Context); err != nil {
		return nil, err
	}

	if err := pg.section("5 · Notas de handoff"); err != nil {
		return nil, err
	}
	if err := pg.entries(doc.Notes); err != nil {
		return nil, err
	}

	pg.y += 12
	if err := pg.text(9, mutedColor, "Completado por: "+doc.CompletedBy); err != nil {
		return nil, err
	}
	if err := pg.text(9, mutedColor, "Fecha: "+doc.CompletedAt); err != nil {
		return nil, err
	}

	return pdf.GetBytesPdf(), nil
}

type rgb struct{ r, g, b uint8 }

var (
	inkColor   = rgb{17, 24, 39}
	mutedColor = rgb{107, 114, 128}
)

// page tracks the vertical cursor and inserts page breaks as content flows.
type page struct {
	pdf  *gopdf.GoPdf
	font string
	y    float64
}

func (pg *page) ensure(height float64) {
	if pg.y+height > gopdf.PageSizeA4.H-marginY {
		pg.pdf.AddPage()
		pg.y = marginY
	}
}

func (pg *page) text(size float64, color rgb, content string) error {
	pg.ensure(size + 4)
	if err := pg.pdf.SetFont(pg.font, "", size); err != nil {
		return fmt.Errorf("pdfdoc: set font: %w", err)
	}
	pg.pdf.SetTextColor(color.r, color.g, color.b)
	pg.pdf.SetXY(marginX, pg.y)
	if err := pg.pdf.Cell(nil, content); err != nil {
		return fmt.Errorf("pdfdoc: write text: %w", err)
	}
	pg.y += size + 4
	return nil
}

func (pg *page) section(title string) error {
	pg.y += 6
	if err := pg.text(12, inkColor, strings.ToUpper(title)); err != nil {
		return err
	}
	pg.pdf.SetStrokeColor(inkColor.r, inkColor.g, inkColor.b)
	pg.pdf.SetLineWidth(1)
	pg.pdf.Line(marginX, pg.y, gopdf.PageSizeA4.W-marginX, pg.y)
	pg.y += 6
	return nil
}

func (pg *page) entries(entries []document.Entry) error {
	for _, entry := range entries {
		switch entry.Kind {
		case document.EntryImage:
			if err := pg.text(7, mutedColor, strings.ToUpper(entry.Label)); err != nil {
				return err
			}
			if err := pg.image(entry.Image); err != nil {
				return fmt.Errorf("pdfdoc: entry %q: %w", entry.Label, err)
			}
		case document.EntryNote:
			if err := pg.text(9, mutedColor, entry.Label+": "+entry.Value); err != nil {
				return err
			}
		default:
			if entry.Label != "" {
				if err := pg.text(7, mutedColor, strings.ToUpper(entry.Label)); err != nil {
					return err
				}
			}
			if err := pg.text(10, inkColor, entry.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// image re-encodes the attachment as JPEG before embedding, sidestepping
// gopdf's limited source-format support.
func (pg *page) image(payload images.Payload) error {
	_, raw, err := payload.Decode()
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("convert image to JPEG: %w", err)
	}
	holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("create image holder: %w", err)
	}

	contentW := gopdf.PageSizeA4.W - 2*marginX
	drawW, drawH := float64(width), float64(height)
	if drawW > contentW {
		scale := contentW / drawW
		drawW, drawH = contentW, drawH*scale
	}
	if drawH > maxImgH {
		scale := maxImgH / drawH
		drawW, drawH = drawW*scale, maxImgH
	}

	pg.ensure(drawH + imgSpace)
	if err := pg.pdf.ImageByHolder(holder, marginX, pg.y, &gopdf.Rect{W: drawW, H: drawH}); err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	pg.y += drawH + imgSpace
	return nil
}
