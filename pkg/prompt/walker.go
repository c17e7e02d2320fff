package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dealsheet/pkg/catalog"
	"github.com/goliatone/go-dealsheet/pkg/export"
	"github.com/goliatone/go-dealsheet/pkg/images"
	"github.com/goliatone/go-dealsheet/pkg/session"
	"github.com/goliatone/go-dealsheet/pkg/visibility"
	"github.com/goliatone/go-dealsheet/pkg/visibility/expr"
)

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithEvaluator swaps the visibility evaluator.
func WithEvaluator(eval visibility.Evaluator) WalkerOption {
	return func(w *Walker) {
		if eval != nil {
			w.eval = eval
		}
	}
}

// Walker runs the interactive capture flow over a session. Field order and
// visibility come from the catalog; a hidden field is never prompted, and
// visibility is re-evaluated as each answer lands so later fields see
// earlier ones.
type Walker struct {
	driver PromptDriver
	sess   *session.Session
	eval   visibility.Evaluator
}

func NewWalker(driver PromptDriver, sess *session.Session, opts ...WalkerOption) (*Walker, error) {
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}
	if sess == nil {
		return nil, fmt.Errorf("prompt: session is required")
	}
	w := &Walker{
		driver: driver,
		sess:   sess,
		eval:   expr.New(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// Run walks the whole form: client data, product selection, per-product
// configuration, context and notes. It ends with a filename preview and a
// confirm; the returned bool reports whether the user wants to generate.
func (w *Walker) Run(ctx context.Context) (bool, error) {
	if err := w.promptFields(ctx, catalog.ClientFields()); err != nil {
		return false, err
	}
	if err := w.promptProducts(ctx); err != nil {
		return false, err
	}
	for _, product := range catalog.Products() {
		if !w.sess.Selected(product.Name) {
			continue
		}
		if err := w.driver.Info(ctx, fmt.Sprintf("— %s —", product.Name)); err != nil {
			return false, err
		}
		if err := w.promptFields(ctx, product.Fields); err != nil {
			return false, err
		}
	}
	if err := w.promptFields(ctx, catalog.ContextFields()); err != nil {
		return false, err
	}
	if err := w.promptFields(ctx, catalog.NoteFields()); err != nil {
		return false, err
	}

	preview := export.ArtifactName(w.sess.Company(), w.sess.PeekVersion())
	if err := w.driver.Info(ctx, "Siguiente archivo: "+preview); err != nil {
		return false, err
	}
	return w.driver.Confirm(ctx, ConfirmConfig{
		Message: "¿Generar el documento ahora?",
		Default: true,
	})
}

func (w *Walker) promptProducts(ctx context.Context) error {
	names := catalog.ProductNames()
	var defaults []int
	for i, name := range names {
		if w.sess.Selected(name) {
			defaults = append(defaults, i)
		}
	}
	indices, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Productos a incluir",
		Options:  names,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	chosen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		chosen[idx] = struct{}{}
	}
	for i, name := range names {
		_, on := chosen[i]
		w.sess.SelectProduct(name, on)
	}
	return nil
}

func (w *Walker) promptFields(ctx context.Context, fields []catalog.Field) error {
	for _, field := range fields {
		visible, err := catalog.Visible(field, w.eval, w.visibilityContext())
		if err != nil {
			return fmt.Errorf("prompt: rule for %s: %w", field.Key, err)
		}
		if !visible {
			continue
		}
		if err := w.promptField(ctx, field); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) promptField(ctx context.Context, field catalog.Field) error {
	switch field.Kind {
	case catalog.KindFlag:
		return w.promptFlag(ctx, field)
	case catalog.KindChoice:
		return w.promptChoice(ctx, field)
	case catalog.KindMultiline:
		return w.promptMultiline(ctx, field)
	case catalog.KindImage:
		return w.promptImage(ctx, field)
	default:
		return w.promptText(ctx, field)
	}
}

func (w *Walker) promptText(ctx context.Context, field catalog.Field) error {
	out, err := w.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Default: w.currentString(field.Key),
		Help:    field.Placeholder,
	})
	if err != nil {
		return err
	}
	w.sess.SetField(field.Key, out)
	return nil
}

func (w *Walker) promptMultiline(ctx context.Context, field catalog.Field) error {
	out, err := w.driver.TextArea(ctx, TextAreaConfig{
		Message: field.Label,
		Default: w.currentString(field.Key),
		Help:    field.Placeholder,
	})
	if err != nil {
		return err
	}
	w.sess.SetField(field.Key, out)
	return nil
}

func (w *Walker) promptFlag(ctx context.Context, field catalog.Field) error {
	current := false
	if v, ok := w.sess.Field(field.Key); ok {
		if b, ok := v.(bool); ok {
			current = b
		}
	}
	out, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: field.Label,
		Default: current,
	})
	if err != nil {
		return err
	}
	w.sess.SetField(field.Key, out)
	return nil
}

func (w *Walker) promptChoice(ctx context.Context, field catalog.Field) error {
	labels := make([]string, len(field.Options))
	defaultIdx := -1
	current := w.currentString(field.Key)
	for i, opt := range field.Options {
		labels[i] = opt.Label
		if opt.Value == current {
			defaultIdx = i
		}
	}
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      labels,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return fmt.Errorf("prompt: invalid selection for %s", field.Key)
	}
	w.sess.SetField(field.Key, field.Options[idx].Value)
	return nil
}

// promptImage asks for a file path; an empty answer skips the attachment
// without clearing an already staged one.
func (w *Walker) promptImage(ctx context.Context, field catalog.Field) error {
	path, err := w.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Help:    "Ruta de un archivo de imagen; deja vacío para omitir",
	})
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	payload, err := images.FromFile(path)
	if err != nil {
		if infoErr := w.driver.Info(ctx, fmt.Sprintf("No se pudo adjuntar %s: %v", path, err)); infoErr != nil {
			return infoErr
		}
		return nil
	}
	w.sess.SetImage(field.Slot, payload)
	return nil
}

func (w *Walker) currentString(key string) string {
	if v, ok := w.sess.Field(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (w *Walker) visibilityContext() visibility.Context {
	return w.sess.Snapshot().VisibilityContext()
}
