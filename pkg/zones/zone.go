package zones

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

var (
	ErrMissingReader = errors.New("zones: missing reader")
	ErrInvalidOffset = errors.New("zones: invalid offset")
	ErrDuplicateZone = errors.New("zones: duplicate zone")
	ErrEmptyName     = errors.New("zones: empty zone name")
)

// Zone describes a single selectable time zone.
type Zone struct {
	// Name is the identifier submitted by forms, e.g. "Pacific Time (US & Canada)".
	Name string `json:"name"`
	// Location is the IANA zone backing Name.
	Location string `json:"location"`
	// Offset is the standard UTC offset in seconds.
	Offset int `json:"offset"`
}

// FormattedOffset renders the zone offset as ±HH:MM.
func (z Zone) FormattedOffset() string {
	return FormatOffset(z.Offset)
}

// LoadLocation resolves the IANA location of the zone.
func (z Zone) LoadLocation() (*time.Location, error) {
	if strings.TrimSpace(z.Location) == "" {
		return nil, fmt.Errorf("zones: zone %q has no location", z.Name)
	}
	return time.LoadLocation(z.Location)
}

// FormatOffset renders an offset in seconds as a signed, zero padded
// hours:minutes string ("+05:30", "-08:00", "+00:00").
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// ParseOffset is the inverse of FormatOffset. It also accepts the compact
// ±HHMM form and a bare "Z" for UTC.
func ParseOffset(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "Z" || value == "z" {
		return 0, nil
	}
	if len(value) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, raw)
	}

	sign := 1
	switch value[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, raw)
	}
	value = value[1:]

	var hoursPart, minutesPart string
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		hoursPart, minutesPart = value[:idx], value[idx+1:]
	} else if len(value) == 4 {
		hoursPart, minutesPart = value[:2], value[2:]
	} else {
		hoursPart, minutesPart = value, "0"
	}

	hours, err := strconv.Atoi(hoursPart)
	if err != nil || hours < 0 || hours > 14 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, raw)
	}
	minutes, err := strconv.Atoi(minutesPart)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, raw)
	}
	return sign * (hours*3600 + minutes*60), nil
}

// StandardOffset returns the non-DST offset of loc during year. It samples
// both solstice months and keeps the smaller offset, which holds for either
// hemisphere.
func StandardOffset(loc *time.Location, year int) int {
	if loc == nil {
		return 0
	}
	_, january := time.Date(year, time.January, 1, 12, 0, 0, 0, loc).Zone()
	_, july := time.Date(year, time.July, 1, 12, 0, 0, 0, loc).Zone()
	return min(january, july)
}
