package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

// Search filters entries by a case-insensitive match on label or value.
// Prefix matches come first; otherwise the list order, which is meaningful
// (priority zones, then offset order), is kept. Disabled entries never match.
func Search(entries []zoneselect.Option, query string, limit int, opts Options) []zoneselect.Option {
	query = strings.TrimSpace(query)
	if query == "" {
		switch opts.EmptySearchMode {
		case EmptySearchAll:
			if limit <= 0 {
				return append([]zoneselect.Option{}, entries...)
			}
			return head(entries, clampLimit(limit, opts))
		case EmptySearchTop:
			return head(selectable(entries), clampLimit(limit, opts))
		default:
			return nil
		}
	}

	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedEntry, 0, 32)
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if entry.Disabled || entry.Value == "" {
			continue
		}
		if _, dup := seen[entry.Value]; dup {
			continue
		}
		label := strings.ToLower(entry.Label)
		value := strings.ToLower(entry.Value)
		if !strings.Contains(label, q) && !strings.Contains(value, q) {
			continue
		}
		seen[entry.Value] = struct{}{}
		matches = append(matches, matchedEntry{
			entry:    entry,
			isPrefix: strings.HasPrefix(label, q) || strings.HasPrefix(value, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]zoneselect.Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.entry)
	}
	return out
}

func selectable(entries []zoneselect.Option) []zoneselect.Option {
	out := make([]zoneselect.Option, 0, len(entries))
	for _, entry := range entries {
		if entry.Disabled {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func head(entries []zoneselect.Option, limit int) []zoneselect.Option {
	if limit <= 0 {
		return nil
	}
	if len(entries) <= limit {
		return append([]zoneselect.Option{}, entries...)
	}
	return append([]zoneselect.Option{}, entries[:limit]...)
}

type matchedEntry struct {
	entry    zoneselect.Option
	isPrefix bool
}
