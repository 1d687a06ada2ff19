package tzselect

import (
	"io/fs"

	tpl "github.com/goliatone/go-tzselect/pkg/render/template"
)

// EmbeddedTemplates exposes the built-in option and select templates so
// callers can copy them into a directory passed to WithTemplateDir.
func EmbeddedTemplates() fs.FS {
	return tpl.TemplatesFS()
}
