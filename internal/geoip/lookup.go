// Package geoip annotates endpoint hostnames with the country their
// resolved address sits in. Entirely optional: without a database file the
// lookups degrade to empty strings.
package geoip

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

type Database struct {
	reader *geoip2.Reader
}

// Open loads a GeoLite2 country database. Callers may use a nil *Database
// safely; every method is a no-op on it.
func Open(path string) (*Database, error) {
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Database{reader: r}, nil
}

// CountryForHost resolves host and returns the ISO country code of its
// first address, or "" when the database is absent or the host does not
// resolve.
func (d *Database) CountryForHost(host string) string {
	if d == nil || d.reader == nil {
		return ""
	}

	addrs, err := net.LookupIP(host)
	if err != nil || len(addrs) == 0 {
		return ""
	}

	record, err := d.reader.Country(addrs[0])
	if err != nil {
		return ""
	}
	return record.Country.IsoCode
}

func (d *Database) Close() {
	if d == nil || d.reader == nil {
		return
	}
	d.reader.Close()
}
