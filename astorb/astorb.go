// Package astorb reads orbital elements from the Lowell Observatory
// astorb.dat catalog, a fixed-width ASCII file with one numbered minor
// planet per line.
//
// The catalog is optional input.  Lookups against a missing file or an
// absent body return ErrNotFound; callers treat minor-body positions as
// best-effort.
package astorb

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/meeus/v3/julian"

	"astrochart/orbit"
)

// ErrNotFound reports that the catalog, or the requested body within
// it, is not available.
var ErrNotFound = errors.New("astorb: no catalog data for body")

// Entry is one catalog record.
type Entry struct {
	Number   int
	Name     string
	Elements orbit.Elements
}

// Catalog reads records from an astorb.dat file.  The file is scanned
// per query; at one lookup per chart the simplicity beats holding a
// quarter-million parsed records resident.
type Catalog struct {
	path string
}

// New returns a catalog reading from path.  The file is not opened
// until the first query.
func New(path string) *Catalog {
	return &Catalog{path: path}
}

// minLine guards against truncated records; full astorb lines run about
// 267 characters but everything we read sits within the first 155.
const minLine = 155

// ParseEntry parses a single astorb.dat line.  Lines shorter than the
// element fields are an error.
func ParseEntry(line string) (Entry, error) {
	if len(line) < minLine {
		return Entry{}, fmt.Errorf("astorb: record too short (%d chars)", len(line))
	}

	num, err := strconv.Atoi(strings.TrimSpace(line[0:6]))
	if err != nil {
		return Entry{}, fmt.Errorf("astorb: invalid number (%s): %v", line[0:6], err)
	}
	name := strings.TrimSpace(line[7:25])

	var el orbit.Elements
	fields := []struct {
		dst      *float64
		lo, hi   int
		what     string
		fallback float64
	}{
		{&el.Eccentricity, 70, 79, "eccentricity", 0},
		{&el.SemiMajorAxis, 92, 103, "semi-major axis", 1},
		{&el.EpochJD, 106, 115, "epoch", 2451545},
		{&el.MeanAnomaly, 115, 125, "mean anomaly", 0},
		{&el.ArgPerihelion, 125, 135, "argument of perihelion", 0},
		{&el.Node, 135, 145, "ascending node", 0},
		{&el.Inclination, 145, 155, "inclination", 0},
	}
	for _, f := range fields {
		s := strings.TrimSpace(line[f.lo:f.hi])
		if s == "" {
			*f.dst = f.fallback
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("astorb: invalid %s (%s): %v", f.what, s, err)
		}
		*f.dst = v
	}

	el.EpochJD = epochJD(el.EpochJD)
	return Entry{Number: num, Name: name, Elements: el}, nil
}

// epochJD resolves the epoch field to a Julian date.  astorb packs the
// osculation epoch as YYYYMMDD; anything in that range is converted,
// anything else is taken as a JD already.
func epochJD(v float64) float64 {
	if v < 15000101 || v > 30001231 {
		return v
	}
	i := int(v)
	y, m, d := i/10000, i/100%100, i%100
	return julian.CalendarGregorianToJD(y, m, float64(d))
}

// Find scans the catalog for a body by number.  A missing file or an
// absent body yields ErrNotFound.
func (c *Catalog) Find(number int) (*Entry, error) {
	var found *Entry
	err := c.scan(func(e Entry) bool {
		if e.Number == number {
			found = &e
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, number)
	}
	return found, nil
}

// Search returns up to limit entries whose names contain the term,
// case-insensitively.
func (c *Catalog) Search(term string, limit int) ([]Entry, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []Entry
	err := c.scan(func(e Entry) bool {
		if strings.Contains(strings.ToLower(e.Name), term) {
			out = append(out, e)
		}
		return limit <= 0 || len(out) < limit
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan streams records to fn until fn returns false or the file ends.
// Malformed lines are skipped, as the catalog carries occasional header
// and continuation noise.
func (c *Catalog) scan(fn func(Entry) bool) error {
	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: catalog %s missing", ErrNotFound, c.path)
		}
		return fmt.Errorf("astorb: open catalog: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < minLine {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			continue
		}
		if !fn(e) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("astorb: read catalog: %w", err)
	}
	return nil
}
