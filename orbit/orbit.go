// Package orbit propagates two-body Keplerian orbits from catalog
// elements to ecliptic longitudes.  It covers minor bodies the
// ephemeris provider has no theory for; results are best-effort and
// callers treat them as optional.
package orbit

import (
	"errors"
	"math"

	"astrochart/zodiac"
)

// K is the Gaussian gravitational constant in AU-day units.
const K = .01720209895

// Newton-Raphson limits for the Kepler solve.  Ten rounds is plenty for
// the near-circular orbits a catalog holds; the tolerance is far below
// any angle the chart layer can distinguish.
const (
	maxIterations = 10
	tolerance     = 1e-8
)

// ErrNoConvergence reports that the Kepler iteration did not settle
// within its budget.  The accompanying value is the best eccentric
// anomaly found and may still be usable for loosely-toleranced work;
// expect this only for high-eccentricity orbits.
var ErrNoConvergence = errors.New("orbit: kepler iteration did not converge")

// Elements are osculating orbital elements for one body, as parsed from
// a catalog.  Angles in degrees, distances in AU.  Immutable after
// parse.
type Elements struct {
	EpochJD       float64
	MeanAnomaly   float64 // at epoch
	ArgPerihelion float64
	Node          float64 // longitude of ascending node
	Inclination   float64
	Eccentricity  float64
	SemiMajorAxis float64
}

// Kepler solves E - e*sin(E) = m for the eccentric anomaly E, both in
// radians, by Newton-Raphson seeded at m.  On non-convergence it
// returns the last iterate together with ErrNoConvergence rather than
// hiding the shortfall.
func Kepler(m, e float64) (float64, error) {
	E := m
	for i := 0; i < maxIterations; i++ {
		dE := (E - e*math.Sin(E) - m) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < tolerance {
			return E, nil
		}
	}
	return E, ErrNoConvergence
}

// LongitudeAt propagates the elements to the given Julian date and
// returns the heliocentric ecliptic longitude in [0,360).  A value is
// returned even alongside ErrNoConvergence; callers decide whether the
// reduced accuracy is acceptable.
func (el *Elements) LongitudeAt(jd float64) (float64, error) {
	m0 := el.MeanAnomaly * math.Pi / 180
	omega := el.ArgPerihelion * math.Pi / 180
	node := el.Node * math.Pi / 180
	incl := el.Inclination * math.Pi / 180
	e := el.Eccentricity
	a := el.SemiMajorAxis

	// Mean motion and mean anomaly at the target date.
	n := math.Sqrt(K * K / (a * a * a))
	m := math.Mod(m0+n*(jd-el.EpochJD), 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}

	E, kerr := Kepler(m, e)

	// True anomaly by the half-angle form, radius from E.
	nu := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2))
	r := a * (1 - e*math.Cos(E))

	// Position in the orbital plane.
	xo := r * math.Cos(nu)
	yo := r * math.Sin(nu)

	// Rotate through argument of perihelion, inclination, and node to
	// ecliptic coordinates.
	so, co := math.Sincos(omega)
	x1 := xo*co - yo*so
	y1 := xo*so + yo*co

	// Inclination tilts y out of the ecliptic; the z component drops
	// out of the longitude.
	y2 := y1 * math.Cos(incl)

	sn, cn := math.Sincos(node)
	x := x1*cn - y2*sn
	y := x1*sn + y2*cn

	lon := zodiac.Normalize(math.Atan2(y, x) * 180 / math.Pi)
	return lon, kerr
}
