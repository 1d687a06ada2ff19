package zoneselect

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/goliatone/go-tzselect/pkg/translations"
	"github.com/goliatone/go-tzselect/pkg/zones"
)

// Builder turns a zone table into option entries.
type Builder struct {
	table *zones.Table
}

// New returns a builder over table. A nil table yields empty lists.
func New(table *zones.Table) *Builder {
	return &Builder{table: table}
}

// Table exposes the zone table backing the builder.
func (b *Builder) Table() *zones.Table {
	if b == nil {
		return nil
	}
	return b.table
}

// FullList returns one entry per translated zone. Untranslated zones are
// skipped. Entries are ordered by ascending offset with ties kept in table
// order, or by label when s.SortBy is SortByName.
func (b *Builder) FullList(l Localization, s Settings) []Option {
	if b == nil || b.table == nil {
		return []Option{}
	}

	type entry struct {
		option Option
		offset int
	}

	all := b.table.All()
	entries := make([]entry, 0, len(all))
	for _, zone := range all {
		label, ok := formatLabel(zone, l)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			option: Option{Label: label, Value: zone.Name},
			offset: zone.Offset,
		})
	}

	if s.sortOrder() == SortByName {
		col := collate.New(localeTag(l.Locale), collate.Loose)
		sort.SliceStable(entries, func(i, j int) bool {
			return col.CompareString(entries[i].option.Label, entries[j].option.Label) < 0
		})
	} else {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].offset < entries[j].offset
		})
	}

	out := make([]Option, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.option)
	}
	return out
}

// PriorityList returns entries for ids in the given order. Identifiers missing
// from the table are dropped. Untranslated ones follow s.Untranslated.
func (b *Builder) PriorityList(ids []string, l Localization, s Settings) []Option {
	out := make([]Option, 0, len(ids))
	if b == nil || b.table == nil {
		return out
	}

	for _, id := range ids {
		zone, ok := b.table.Lookup(strings.TrimSpace(id))
		if !ok {
			continue
		}
		label, ok := formatLabel(zone, l)
		if !ok {
			if s.untranslated() != UntranslatedBlank {
				continue
			}
			label = ""
		}
		out = append(out, Option{Label: label, Value: zone.Name})
	}
	return out
}

// Build composes the complete list: optional prompt and blank entries, optional
// priority heading, priority entries, separator, then the full list. The
// first entry whose value equals selected is flagged.
//
// selected may be nil, a zone identifier, a zones.Zone, a *zones.Zone or a
// *time.Location.
func (b *Builder) Build(selected any, priority []string, l Localization, s Settings) ([]Option, error) {
	value, err := b.Normalize(selected)
	if err != nil {
		return nil, err
	}

	full := b.FullList(l, s)
	out := make([]Option, 0, len(full)+len(priority)+4)

	if s.Prompt != "" && value == "" {
		out = append(out, Option{Label: s.Prompt})
	}
	if s.IncludeBlank {
		out = append(out, Option{})
	}

	if len(priority) > 0 {
		if s.PriorityLabel != "" {
			out = append(out, Option{Label: s.PriorityLabel, Disabled: true})
		}
		out = append(out, b.PriorityList(priority, l, s)...)
		out = append(out, Option{Label: Separator, Disabled: true})
	}
	out = append(out, full...)

	markSelected(out, value)
	return out, nil
}

// Label formats a single zone for display, e.g. "Amsterdam (GMT+01:00)".
// zone accepts the same values as Build's selected argument.
func (b *Builder) Label(zone any, l Localization) (string, bool) {
	if b == nil {
		return "", false
	}
	name, err := b.Normalize(zone)
	if err != nil || name == "" {
		return "", false
	}
	z, ok := b.table.Lookup(name)
	if !ok {
		return "", false
	}
	return formatLabel(z, l)
}

// Normalize reduces a selected value to a zone identifier.
func (b *Builder) Normalize(selected any) (string, error) {
	switch v := selected.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case zones.Zone:
		return v.Name, nil
	case *zones.Zone:
		if v == nil {
			return "", nil
		}
		return v.Name, nil
	case *time.Location:
		if v == nil || b == nil {
			return "", nil
		}
		if zone, ok := b.table.ByLocation(v.String()); ok {
			return zone.Name, nil
		}
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedSelection, selected)
	}
}

func formatLabel(zone zones.Zone, l Localization) (string, bool) {
	name, ok := translations.Lookup(l.Translator, l.Locale, zone.Name)
	if !ok {
		return "", false
	}
	return name + " (GMT" + zone.FormattedOffset() + ")", true
}

func markSelected(options []Option, value string) {
	if value == "" {
		return
	}
	for i := range options {
		if options[i].Disabled || options[i].Value != value {
			continue
		}
		options[i].Selected = true
		return
	}
}

func localeTag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
