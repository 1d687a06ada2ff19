package tzselect

import (
	"context"
	"strings"
)

// TemplateFuncsConfig names the helpers returned by TemplateFuncs.
type TemplateFuncsConfig struct {
	OptionsFuncName string
	SelectFuncName  string
	LabelFuncName   string
	Settings        Settings
}

// TemplateFuncs returns helpers suitable for template engines (for example
// gotemplate.WithTemplateFunc):
//
//	time_zone_options_for_select(locale, selected, ...priority) string
//	time_zone_select_tag(locale, name, selected, ...priority) string
//	time_zone_label(locale, zone) string
//
// Helpers return markup strings; engines that autoescape need it marked safe.
// Rendering errors produce an empty string.
func (h *Helper) TemplateFuncs(cfg TemplateFuncsConfig) map[string]any {
	optionsName := nameOr(cfg.OptionsFuncName, "time_zone_options_for_select")
	selectName := nameOr(cfg.SelectFuncName, "time_zone_select_tag")
	labelName := nameOr(cfg.LabelFuncName, "time_zone_label")
	settings := cfg.Settings

	return map[string]any{
		optionsName: func(locale, selected string, priority ...string) string {
			out, err := h.OptionsForSelect(context.Background(), locale, selected, priority, settings)
			if err != nil {
				return ""
			}
			return out
		},
		selectName: func(locale, name, selected string, priority ...string) string {
			out, err := h.SelectTag(context.Background(), locale, name, selected, priority, settings, nil)
			if err != nil {
				return ""
			}
			return out
		},
		labelName: func(locale, zone string) string {
			return h.Label(locale, zone)
		},
	}
}

func nameOr(name, fallback string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return fallback
}
