package htmldoc

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to extend or override the built-in document layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
