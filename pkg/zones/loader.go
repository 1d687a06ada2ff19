package zones

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/zones.yaml
var dataFS embed.FS

const defaultTablePath = "data/zones.yaml"

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// DefaultTable returns the embedded reference table. The table is parsed once
// and shared; it is immutable.
func DefaultTable() (*Table, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultTablePath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		table, err := LoadTable(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTable = table
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultTable, nil
}

type tableRow struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Offset   string `yaml:"offset"`
}

// LoadTable decodes a YAML list of zones. Rows without an offset get the
// standard offset of their IANA location for the current year.
func LoadTable(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, ErrMissingReader
	}

	var rows []tableRow
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if err == io.EOF {
			return NewTable(nil)
		}
		return nil, fmt.Errorf("zones: decode table: %w", err)
	}

	year := time.Now().Year()
	zones := make([]Zone, 0, len(rows))
	for _, row := range rows {
		zone := Zone{
			Name:     strings.TrimSpace(row.Name),
			Location: strings.TrimSpace(row.Location),
		}
		if strings.TrimSpace(row.Offset) != "" {
			offset, err := ParseOffset(row.Offset)
			if err != nil {
				return nil, fmt.Errorf("zones: zone %q: %w", zone.Name, err)
			}
			zone.Offset = offset
		} else {
			loc, err := zone.LoadLocation()
			if err != nil {
				return nil, fmt.Errorf("zones: zone %q: %w", zone.Name, err)
			}
			zone.Offset = StandardOffset(loc, year)
		}
		zones = append(zones, zone)
	}
	return NewTable(zones)
}
