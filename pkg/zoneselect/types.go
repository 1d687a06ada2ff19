package zoneselect

import (
	"errors"

	"github.com/goliatone/go-tzselect/pkg/translations"
)

// Separator is the label of the disabled entry between the priority section
// and the full list.
const Separator = "-------------"

// ErrUnsupportedSelection reports a selected value the builder cannot
// normalize to a zone identifier.
var ErrUnsupportedSelection = errors.New("zoneselect: unsupported selected value")

// Option is one entry of the generated list.
type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// Localization carries the active locale and the lookup used for labels.
type Localization struct {
	Locale     string
	Translator translations.Translator
}

// SortOrder controls the ordering of the full list.
type SortOrder string

const (
	SortByOffset SortOrder = "offset"
	SortByName   SortOrder = "name"
)

// UntranslatedPolicy controls priority entries lacking a translation.
type UntranslatedPolicy string

const (
	// UntranslatedOmit drops the entry, matching the full list.
	UntranslatedOmit UntranslatedPolicy = "omit"
	// UntranslatedBlank keeps the entry with an empty label.
	UntranslatedBlank UntranslatedPolicy = "blank"
)

// Settings tune a single build.
type Settings struct {
	// PriorityLabel, when set, heads the priority section as a disabled entry.
	PriorityLabel string
	SortBy        SortOrder
	Untranslated  UntranslatedPolicy
	// IncludeBlank prepends an empty entry.
	IncludeBlank bool
	// Prompt prepends an empty-valued entry with this label when nothing is
	// selected.
	Prompt string
}

func (s Settings) sortOrder() SortOrder {
	if s.SortBy == "" {
		return SortByOffset
	}
	return s.SortBy
}

func (s Settings) untranslated() UntranslatedPolicy {
	if s.Untranslated == "" {
		return UntranslatedOmit
	}
	return s.Untranslated
}
