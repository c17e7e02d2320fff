// Package template provides the template-engine seam used by document
// renderers, backed by pongo2.
package template

import "io"

// TemplateRenderer is the contract renderers program against. Render picks
// between a named template and inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
