package template

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-tzselect/pkg/render"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const (
	OptionsTemplate = "templates/options"
	SelectTemplate  = "templates/select"
)

// TemplatesFS exposes the built-in templates.
func TemplatesFS() fs.FS {
	return templatesFS
}

// OptionsRenderer implements render.Renderer on top of a TemplateRenderer.
type OptionsRenderer struct {
	engine          TemplateRenderer
	optionsTemplate string
	selectTemplate  string
}

var _ render.Renderer = (*OptionsRenderer)(nil)

// RendererOption customises an OptionsRenderer.
type RendererOption func(*OptionsRenderer)

// WithOptionsTemplate overrides the template used for option tags.
func WithOptionsTemplate(name string) RendererOption {
	return func(r *OptionsRenderer) {
		if name != "" {
			r.optionsTemplate = name
		}
	}
}

// WithSelectTemplate overrides the template used for the select wrapper.
func WithSelectTemplate(name string) RendererOption {
	return func(r *OptionsRenderer) {
		if name != "" {
			r.selectTemplate = name
		}
	}
}

// NewOptionsRenderer returns a renderer executing templates on engine.
func NewOptionsRenderer(engine TemplateRenderer, opts ...RendererOption) *OptionsRenderer {
	r := &OptionsRenderer{
		engine:          engine,
		optionsTemplate: OptionsTemplate,
		selectTemplate:  SelectTemplate,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// RenderOptions renders the option tags, one per line.
func (r *OptionsRenderer) RenderOptions(ctx context.Context, options []zoneselect.Option) (string, error) {
	if err := r.ready(ctx); err != nil {
		return "", err
	}
	out, err := r.engine.RenderTemplate(r.optionsTemplate, map[string]any{
		"options": optionsPayload(options),
	})
	if err != nil {
		return "", fmt.Errorf("template: render options: %w", err)
	}
	return out, nil
}

// RenderSelect renders the option tags wrapped in a select element.
func (r *OptionsRenderer) RenderSelect(ctx context.Context, attrs []render.Attribute, options []zoneselect.Option) (string, error) {
	body, err := r.RenderOptions(ctx, options)
	if err != nil {
		return "", err
	}
	out, err := r.engine.RenderTemplate(r.selectTemplate, map[string]any{
		"attributes": attributesPayload(attrs),
		"options":    body,
	})
	if err != nil {
		return "", fmt.Errorf("template: render select: %w", err)
	}
	return out, nil
}

func (r *OptionsRenderer) ready(ctx context.Context) error {
	if r == nil || r.engine == nil {
		return errors.New("template: renderer not configured")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func optionsPayload(options []zoneselect.Option) []any {
	out := make([]any, 0, len(options))
	for _, opt := range options {
		out = append(out, map[string]any{
			"label":    opt.Label,
			"value":    opt.Value,
			"disabled": opt.Disabled,
			"selected": opt.Selected,
		})
	}
	return out
}

func attributesPayload(attrs []render.Attribute) []any {
	out := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, map[string]any{
			"name":  attr.Name,
			"value": attr.Value,
		})
	}
	return out
}
