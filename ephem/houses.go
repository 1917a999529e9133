package ephem

import (
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"

	"astrochart/chart"
	"astrochart/zodiac"
)

// cuspIterations bounds the Placidus fixed-point iteration.  The
// series settles in a handful of steps away from the polar circles.
const cuspIterations = 30

// Houses computes Placidus house cusps for an instant and location.
// Latitude and east longitude are in degrees.  Near the polar circles
// the Placidus semi-arc division has no solution, so Porphyry cusps
// are substituted.
func Houses(jd, lat, lon float64) *chart.HouseSystem {
	eps := nutation.MeanObliquity(jd).Rad()
	ramc := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	phi := lat * math.Pi / 180

	mc := zodiac.Normalize(math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(eps)) * 180 / math.Pi)
	asc := zodiac.Normalize(math.Atan2(math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps)+math.Tan(phi)*math.Sin(eps))) * 180 / math.Pi)

	h := &chart.HouseSystem{Ascendant: asc, Midheaven: mc}
	h.Cusps[1] = asc
	h.Cusps[10] = mc

	// Intermediate cusps by proportional semi-arc.
	type spec struct {
		house  int
		offset float64 // degrees of RA from the meridian
		f      float64 // fraction of the ascensional difference
	}
	specs := []spec{
		{11, 30, 1. / 3},
		{12, 60, 2. / 3},
		{2, 120, 2. / 3},
		{3, 150, 1. / 3},
	}
	for _, s := range specs {
		lambda, ok := placidusCusp(ramc, eps, phi, s.offset*math.Pi/180, s.f)
		if !ok {
			return porphyry(asc, mc)
		}
		h.Cusps[s.house] = lambda
	}

	for i := 1; i <= 6; i++ {
		h.Cusps[i+6] = zodiac.Normalize(h.Cusps[i] + 180)
	}
	return h
}

// placidusCusp iterates the right ascension of an intermediate cusp to
// a fixed point and returns its ecliptic longitude in degrees.  It
// reports failure when the ascensional difference is undefined, which
// happens within the polar circles.
func placidusCusp(ramc, eps, phi, offset, f float64) (float64, bool) {
	alpha := ramc + offset
	for i := 0; i < cuspIterations; i++ {
		delta := math.Atan(math.Sin(alpha) * math.Tan(eps))
		x := math.Tan(delta) * math.Tan(phi)
		if x < -1 || x > 1 {
			return 0, false
		}
		ad := math.Asin(x)
		next := ramc + offset + f*ad
		if math.Abs(next-alpha) < 1e-10 {
			alpha = next
			break
		}
		alpha = next
	}
	sa, ca := math.Sincos(alpha)
	return zodiac.Normalize(math.Atan2(sa, ca*math.Cos(eps)) * 180 / math.Pi), true
}

// porphyry trisects the ecliptic arcs between the angles.  It serves
// as the fallback where Placidus is undefined.
func porphyry(asc, mc float64) *chart.HouseSystem {
	h := &chart.HouseSystem{Ascendant: asc, Midheaven: mc}
	h.Cusps[1] = asc
	h.Cusps[10] = mc

	arc := zodiac.Normalize(asc - mc) // MC to Ascendant, eastward
	h.Cusps[11] = zodiac.Normalize(mc + arc/3)
	h.Cusps[12] = zodiac.Normalize(mc + 2*arc/3)

	ic := zodiac.Normalize(mc + 180)
	arc = zodiac.Normalize(ic - asc)
	h.Cusps[2] = zodiac.Normalize(asc + arc/3)
	h.Cusps[3] = zodiac.Normalize(asc + 2*arc/3)

	for i := 1; i <= 6; i++ {
		h.Cusps[i+6] = zodiac.Normalize(h.Cusps[i] + 180)
	}
	return h
}
