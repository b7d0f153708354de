package civiltime

import (
	"fmt"
	"time"
)

const (
	dateLayout      = "01/02/2006"
	timestampLayout = "01/02/2006, 03:04:05 PM"
)

// DefaultZone is the civil time zone used when none is configured
const DefaultZone = "America/New_York"

// Formatter renders instants using one fixed geographic time zone's
// wall-clock rules, independent of the server's local zone
type Formatter struct {
	loc *time.Location
}

// New creates a formatter bound to the named IANA time zone.
// An empty name selects DefaultZone.
func New(zone string) (*Formatter, error) {
	if zone == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}

	return &Formatter{loc: loc}, nil
}

// Date renders an instant as a civil date label, MM/DD/YYYY
func (f *Formatter) Date(t time.Time) string {
	return t.In(f.loc).Format(dateLayout)
}

// Timestamp renders an instant as a civil timestamp label,
// MM/DD/YYYY, hh:mm:ss AM/PM
func (f *Formatter) Timestamp(t time.Time) string {
	return t.In(f.loc).Format(timestampLayout)
}

// Zone returns the formatter's location name
func (f *Formatter) Zone() string {
	return f.loc.String()
}
