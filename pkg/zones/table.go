package zones

import (
	"fmt"
	"strings"
)

// Table is an immutable, ordered set of zones. It is safe for concurrent use.
type Table struct {
	zones      []Zone
	byName     map[string]int
	byLocation map[string]int
}

// NewTable copies zones into a Table, keeping their order. Names must be
// unique and non-empty.
func NewTable(zones []Zone) (*Table, error) {
	t := &Table{
		zones:      make([]Zone, 0, len(zones)),
		byName:     make(map[string]int, len(zones)),
		byLocation: make(map[string]int, len(zones)),
	}
	for _, zone := range zones {
		zone.Name = strings.TrimSpace(zone.Name)
		zone.Location = strings.TrimSpace(zone.Location)
		if zone.Name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := t.byName[zone.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateZone, zone.Name)
		}
		idx := len(t.zones)
		t.zones = append(t.zones, zone)
		t.byName[zone.Name] = idx
		if zone.Location != "" {
			if _, ok := t.byLocation[zone.Location]; !ok {
				t.byLocation[zone.Location] = idx
			}
		}
	}
	return t, nil
}

// Len reports the number of zones in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.zones)
}

// All returns a copy of the zones in table order.
func (t *Table) All() []Zone {
	if t == nil {
		return nil
	}
	return append([]Zone{}, t.zones...)
}

// Names returns the zone identifiers in table order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.zones))
	for _, zone := range t.zones {
		out = append(out, zone.Name)
	}
	return out
}

// Lookup finds a zone by identifier.
func (t *Table) Lookup(name string) (Zone, bool) {
	if t == nil {
		return Zone{}, false
	}
	idx, ok := t.byName[name]
	if !ok {
		return Zone{}, false
	}
	return t.zones[idx], true
}

// ByLocation returns the first zone, in table order, backed by the given IANA
// location. Several identifiers can share a location ("Edinburgh", "London").
func (t *Table) ByLocation(location string) (Zone, bool) {
	if t == nil {
		return Zone{}, false
	}
	idx, ok := t.byLocation[strings.TrimSpace(location)]
	if !ok {
		return Zone{}, false
	}
	return t.zones[idx], true
}
