// Package geoip resolves approximate locations from request IPs. Discovery
// never searches from a GeoIP position; the lookup only feeds the guidance
// shown to viewers who have not stored a location yet.
package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when the resolver is not initialized.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// Hint is a coarse, city-level position estimate.
type Hint struct {
	City    string
	Country string
	Lat     float64
	Lng     float64
}

// LocationResolver resolves approximate locations from IP addresses.
type LocationResolver interface {
	Locate(ip string) (*Hint, error)
}

// Resolver provides city lookups backed by a MaxMind GeoIP2 database.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the GeoIP database at the given path. When the path is
// empty, nil is returned and callers run without location hints.
func NewResolver(path string) (LocationResolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Locate returns the city-level hint for the provided IP. A parseable IP
// with no record yields a nil hint and nil error.
func (r *Resolver) Locate(ip string) (*Hint, error) {
	if r == nil || r.reader == nil {
		return nil, ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip: lookup city: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	hint := &Hint{
		City:    record.City.Names["en"],
		Country: record.Country.IsoCode,
		Lat:     record.Location.Latitude,
		Lng:     record.Location.Longitude,
	}
	if hint.City == "" && hint.Country == "" {
		return nil, nil
	}
	return hint, nil
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
