package render

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

// Renderer turns option entries into markup. Hosts inject their own
// implementation to match the form helpers of their framework.
type Renderer interface {
	// RenderOptions emits the <option> tags only.
	RenderOptions(ctx context.Context, options []zoneselect.Option) (string, error)
	// RenderSelect wraps the options in a <select> carrying attrs.
	RenderSelect(ctx context.Context, attrs []Attribute, options []zoneselect.Option) (string, error)
}

// Attribute is a single HTML attribute. Renderers emit them in slice order.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SelectAttributes orders select attributes as name, id, then the remaining
// extras by attribute name. Extras override neither name nor id.
func SelectAttributes(name, id string, extras map[string]string) []Attribute {
	out := make([]Attribute, 0, len(extras)+2)
	if name != "" {
		out = append(out, Attribute{Name: "name", Value: name})
	}
	if id != "" {
		out = append(out, Attribute{Name: "id", Value: id})
	}

	keys := make([]string, 0, len(extras))
	for key := range extras {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" || trimmed == "name" || trimmed == "id" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, Attribute{Name: strings.TrimSpace(key), Value: extras[key]})
	}
	return out
}

// FieldID derives an element id from a form field name the way server-side
// form helpers do: "user[time_zone]" becomes "user_time_zone".
func FieldID(name string) string {
	replacer := strings.NewReplacer("[]", "_", "][", "_", "[", "_", "]", "")
	id := replacer.Replace(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == ':', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimRight(b.String(), "_")
}
