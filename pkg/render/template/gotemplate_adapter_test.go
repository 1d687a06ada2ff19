package template_test

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-tzselect/pkg/render/template/gotemplate"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(sub)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("expected writer to receive %q, got %q", result, buf.String())
	}
}

func TestGoTemplateEngine_TemplateFuncsAndOffsetFilter(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"shout": strings.ToUpper,
	}))

	result, err := engine.RenderTemplate("helpers.tpl", map[string]any{"name": "utc", "offset": -12600})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "UTC -03:30" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RenderStringAndStructData(t *testing.T) {
	engine := newEngine(t)

	data := struct {
		Name string `json:"name"`
	}{Name: "Pacific Time (US & Canada)"}

	result, err := engine.Render("{{ name }}", data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Pacific Time (US &amp; Canada)" {
		t.Fatalf("expected autoescaped output, got %q", result)
	}
}

func TestGoTemplateEngine_BaseDirTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	engine := newEngine(t, gotemplate.WithBaseDir(dir))

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi Ada" {
		t.Fatalf("expected override template, got %q", result)
	}

	result, err = engine.RenderTemplate("custom", map[string]any{"option": map[string]any{"value": "UTC", "label": "utc"}})
	if err != nil {
		t.Fatalf("render fallback: %v", err)
	}
	if result != `<option value="UTC">UTC</option>` {
		t.Fatalf("expected embedded fallback, got %q", result)
	}
}

func TestGoTemplateEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderString("{{ name }}", []string{"not", "an", "object"}); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}
