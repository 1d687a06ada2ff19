package zoneselect_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tzselect/pkg/translations"
	"github.com/goliatone/go-tzselect/pkg/zones"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func newTable(t *testing.T) *zones.Table {
	t.Helper()

	table, err := zones.NewTable([]zones.Zone{
		{Name: "Amsterdam", Location: "Europe/Amsterdam", Offset: 3600},
		{Name: "Midway Island", Location: "Pacific/Midway", Offset: -39600},
		{Name: "Mexico City", Location: "America/Mexico_City", Offset: -21600},
		{Name: "Guadalajara", Location: "America/Mexico_City", Offset: -21600},
		{Name: "Kathmandu", Location: "Asia/Kathmandu", Offset: 20700},
		{Name: "Atlantis", Location: "Etc/UTC", Offset: 0},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return table
}

func english() zoneselect.Localization {
	return zoneselect.Localization{
		Locale: "en",
		Translator: stubTranslator{
			"time_zones.Amsterdam":     "Amsterdam",
			"time_zones.Midway Island": "Midway Island",
			"time_zones.Mexico City":   "Mexico City",
			"time_zones.Guadalajara":   "Guadalajara",
			"time_zones.Kathmandu":     "Kathmandu",
		},
	}
}

func TestFullList_SkipsUntranslatedAndSortsByOffset(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got := b.FullList(english(), zoneselect.Settings{})
	want := []zoneselect.Option{
		{Label: "Midway Island (GMT-11:00)", Value: "Midway Island"},
		{Label: "Mexico City (GMT-06:00)", Value: "Mexico City"},
		{Label: "Guadalajara (GMT-06:00)", Value: "Guadalajara"},
		{Label: "Amsterdam (GMT+01:00)", Value: "Amsterdam"},
		{Label: "Kathmandu (GMT+05:45)", Value: "Kathmandu"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected full list (-want +got):\n%s", diff)
	}
}

func TestFullList_DefaultTableIsCompleteAndOrdered(t *testing.T) {
	table, err := zones.DefaultTable()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}
	catalog, err := translations.DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	b := zoneselect.New(table)
	for _, locale := range []string{"en", "de"} {
		got := b.FullList(zoneselect.Localization{Locale: locale, Translator: catalog}, zoneselect.Settings{})
		if len(got) != table.Len() {
			t.Fatalf("%s: expected %d entries, got %d", locale, table.Len(), len(got))
		}

		seen := map[string]struct{}{}
		prev := -1 << 31
		for _, opt := range got {
			if _, dup := seen[opt.Value]; dup {
				t.Fatalf("%s: duplicate entry %q", locale, opt.Value)
			}
			seen[opt.Value] = struct{}{}

			zone, ok := table.Lookup(opt.Value)
			if !ok {
				t.Fatalf("%s: entry %q not in table", locale, opt.Value)
			}
			if zone.Offset < prev {
				t.Fatalf("%s: %q breaks offset order", locale, opt.Value)
			}
			prev = zone.Offset
		}
	}
}

func TestFullList_UnknownLocaleIsEmpty(t *testing.T) {
	catalog, err := translations.DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	table, err := zones.DefaultTable()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}

	got := zoneselect.New(table).FullList(zoneselect.Localization{Locale: "xx", Translator: catalog}, zoneselect.Settings{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty, non-nil list, got %#v", got)
	}

	got = zoneselect.New(table).FullList(zoneselect.Localization{Locale: "en"}, zoneselect.Settings{})
	if len(got) != 0 {
		t.Fatalf("expected nil translator to yield no entries, got %d", len(got))
	}
}

func TestFullList_SortByNameUsesCollation(t *testing.T) {
	table, err := zones.NewTable([]zones.Zone{
		{Name: "Zurich", Offset: 3600},
		{Name: "Vienna", Offset: 3600},
		{Name: "Paris", Offset: 3600},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	l := zoneselect.Localization{
		Locale: "de",
		Translator: stubTranslator{
			"time_zones.Zurich": "Zürich",
			"time_zones.Vienna": "Österreich-Wien",
			"time_zones.Paris":  "Paris",
		},
	}

	got := zoneselect.New(table).FullList(l, zoneselect.Settings{SortBy: zoneselect.SortByName})
	var values []string
	for _, opt := range got {
		values = append(values, opt.Value)
	}
	if diff := cmp.Diff([]string{"Vienna", "Paris", "Zurich"}, values); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestPriorityList_PreservesInputOrder(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got := b.PriorityList([]string{"Midway Island", "Mexico City"}, english(), zoneselect.Settings{})
	want := []zoneselect.Option{
		{Label: "Midway Island (GMT-11:00)", Value: "Midway Island"},
		{Label: "Mexico City (GMT-06:00)", Value: "Mexico City"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected priority list (-want +got):\n%s", diff)
	}

	got = b.PriorityList([]string{"Kathmandu", "Midway Island"}, english(), zoneselect.Settings{})
	if got[0].Value != "Kathmandu" || got[1].Value != "Midway Island" {
		t.Fatalf("expected caller order regardless of offsets, got %#v", got)
	}
}

func TestPriorityList_UntranslatedPolicy(t *testing.T) {
	b := zoneselect.New(newTable(t))
	ids := []string{"Atlantis", "Amsterdam", "Nowhere"}

	got := b.PriorityList(ids, english(), zoneselect.Settings{})
	want := []zoneselect.Option{{Label: "Amsterdam (GMT+01:00)", Value: "Amsterdam"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("omit policy (-want +got):\n%s", diff)
	}

	got = b.PriorityList(ids, english(), zoneselect.Settings{Untranslated: zoneselect.UntranslatedBlank})
	want = []zoneselect.Option{
		{Label: "", Value: "Atlantis"},
		{Label: "Amsterdam (GMT+01:00)", Value: "Amsterdam"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blank policy (-want +got):\n%s", diff)
	}
}

func TestBuild_WithoutPriorityEqualsFullList(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got, err := b.Build(nil, nil, english(), zoneselect.Settings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff(b.FullList(english(), zoneselect.Settings{}), got); diff != "" {
		t.Fatalf("expected full list only (-want +got):\n%s", diff)
	}

	got, err = b.Build(nil, []string{}, english(), zoneselect.Settings{PriorityLabel: "Common"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, opt := range got {
		if opt.Disabled {
			t.Fatalf("expected no separators for empty priority list, got %#v", opt)
		}
	}
}

func TestBuild_PrioritySectionLayout(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got, err := b.Build(nil, []string{"Midway Island"}, english(), zoneselect.Settings{PriorityLabel: "Common"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	head := []zoneselect.Option{
		{Label: "Common", Disabled: true},
		{Label: "Midway Island (GMT-11:00)", Value: "Midway Island"},
		{Label: zoneselect.Separator, Disabled: true},
	}
	if diff := cmp.Diff(head, got[:3]); diff != "" {
		t.Fatalf("unexpected priority section (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.FullList(english(), zoneselect.Settings{}), got[3:]); diff != "" {
		t.Fatalf("expected full list after separator (-want +got):\n%s", diff)
	}

	got, err = b.Build(nil, []string{"Midway Island"}, english(), zoneselect.Settings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got[0].Value != "Midway Island" || got[1].Label != zoneselect.Separator {
		t.Fatalf("expected no heading without priority label, got %#v", got[:2])
	}
}

func TestBuild_MarksExactlyOneSelected(t *testing.T) {
	b := zoneselect.New(newTable(t))

	cases := map[string]any{
		"string":   "Mexico City",
		"zone":     zones.Zone{Name: "Mexico City"},
		"zone ptr": &zones.Zone{Name: "Mexico City"},
	}
	for name, selected := range cases {
		got, err := b.Build(selected, []string{"Mexico City", "Amsterdam"}, english(), zoneselect.Settings{})
		if err != nil {
			t.Fatalf("%s: build: %v", name, err)
		}
		count := 0
		for i, opt := range got {
			if !opt.Selected {
				continue
			}
			count++
			if opt.Value != "Mexico City" || i != 0 {
				t.Fatalf("%s: unexpected selected entry %d: %#v", name, i, opt)
			}
		}
		if count != 1 {
			t.Fatalf("%s: expected exactly one selected entry, got %d", name, count)
		}
	}
}

func TestBuild_LocationSelectsFirstZoneForLocation(t *testing.T) {
	b := zoneselect.New(newTable(t))
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	got, err := b.Build(loc, nil, english(), zoneselect.Settings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, opt := range got {
		if opt.Selected && opt.Value != "Mexico City" {
			t.Fatalf("expected Mexico City to be selected, got %q", opt.Value)
		}
	}
}

func TestBuild_UnmatchedSelectionIsNotAnError(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got, err := b.Build("Nowhere", nil, english(), zoneselect.Settings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, opt := range got {
		if opt.Selected {
			t.Fatalf("expected nothing selected, got %#v", opt)
		}
	}
}

func TestBuild_RejectsUnsupportedSelection(t *testing.T) {
	b := zoneselect.New(newTable(t))

	if _, err := b.Build(42, nil, english(), zoneselect.Settings{}); !errors.Is(err, zoneselect.ErrUnsupportedSelection) {
		t.Fatalf("expected ErrUnsupportedSelection, got %v", err)
	}
}

func TestBuild_BlankAndPrompt(t *testing.T) {
	b := zoneselect.New(newTable(t))

	got, err := b.Build(nil, nil, english(), zoneselect.Settings{IncludeBlank: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff(zoneselect.Option{}, got[0]); diff != "" {
		t.Fatalf("expected blank first entry (-want +got):\n%s", diff)
	}

	got, err = b.Build(nil, nil, english(), zoneselect.Settings{Prompt: "Select a time zone"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got[0].Label != "Select a time zone" || got[0].Value != "" {
		t.Fatalf("expected prompt entry, got %#v", got[0])
	}

	got, err = b.Build("Amsterdam", nil, english(), zoneselect.Settings{Prompt: "Select a time zone"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got[0].Label == "Select a time zone" {
		t.Fatalf("expected prompt to be omitted when a value is selected")
	}
}

func TestBuild_PromptBeforeBlank(t *testing.T) {
	b := zoneselect.New(newTable(t))
	settings := zoneselect.Settings{IncludeBlank: true, Prompt: "Select a time zone"}

	got, err := b.Build(nil, nil, english(), settings)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []zoneselect.Option{{Label: "Select a time zone"}, {}}
	if diff := cmp.Diff(want, got[:2]); diff != "" {
		t.Fatalf("head mismatch (-want +got):\n%s", diff)
	}

	got, err = b.Build("Amsterdam", nil, english(), settings)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff(zoneselect.Option{}, got[0]); diff != "" {
		t.Fatalf("expected only the blank entry when selected (-want +got):\n%s", diff)
	}
	if got[1].Value == "" {
		t.Fatalf("expected a single leading empty entry, got %#v", got[:2])
	}
}

func TestLabel(t *testing.T) {
	b := zoneselect.New(newTable(t))

	label, ok := b.Label("Amsterdam", english())
	if !ok || label != "Amsterdam (GMT+01:00)" {
		t.Fatalf("unexpected label %q (ok=%v)", label, ok)
	}
	if _, ok := b.Label("Atlantis", english()); ok {
		t.Fatalf("expected untranslated zone to have no label")
	}
	if _, ok := b.Label(3.14, english()); ok {
		t.Fatalf("expected unsupported value to have no label")
	}
}

func TestBuild_ConcurrentCallsAgree(t *testing.T) {
	b := zoneselect.New(newTable(t))
	priority := []string{"Amsterdam"}

	want, err := b.Build("Amsterdam", priority, english(), zoneselect.Settings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			t.Run("worker", func(t *testing.T) {
				t.Parallel()
				for n := 0; n < 20; n++ {
					got, err := b.Build("Amsterdam", priority, english(), zoneselect.Settings{})
					if err != nil {
						t.Fatalf("build: %v", err)
					}
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("concurrent build mismatch (-want +got):\n%s", diff)
					}
				}
			})
		}
	})
}
