package template

import (
	"io"
)

// TemplateRenderer is the engine contract the option renderer relies on.
// gotemplate.Engine satisfies it; hosts can plug in their own engine.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
