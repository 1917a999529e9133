// Package zodiac holds the fixed reference tables of sign astrology and
// the angle arithmetic built on them: the twelve signs, their elements,
// modalities and planetary rulers, and shortest-arc separation.
//
// Everything here is pure data or pure functions.  The tables are never
// written after init.
package zodiac

import "math"

// Sign is one of the twelve 30-degree segments of ecliptic longitude,
// Aries at 0.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// SignFromName returns the sign with the given English name.
func SignFromName(name string) (Sign, bool) {
	for i, n := range signNames {
		if n == name {
			return Sign(i), true
		}
	}
	return 0, false
}

// Element is one of the four classical elements.  Every sign belongs to
// exactly one.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Elements lists the elements in their traditional order.  Mode
// tie-breaks elsewhere depend on this order.
var Elements = [4]Element{Fire, Earth, Air, Water}

// Modality is one of the three modes.  Every sign belongs to exactly one.
type Modality string

const (
	Cardinal Modality = "Cardinal"
	Fixed    Modality = "Fixed"
	Mutable  Modality = "Mutable"
)

// Modalities lists the modalities in their traditional order.
var Modalities = [3]Modality{Cardinal, Fixed, Mutable}

// The element repeats every four signs starting at Fire, the modality
// every three starting at Cardinal, so both are index arithmetic.

func (s Sign) Element() Element { return Elements[int(s)%4] }

func (s Sign) Modality() Modality { return Modalities[int(s)%3] }

// rulerships maps a body name to the signs it traditionally rules.
// Modern rulers are included alongside the classical ones isomorphic to
// the content database keys.
var rulerships = map[string][]Sign{
	"Sun":     {Leo},
	"Moon":    {Cancer},
	"Mercury": {Gemini, Virgo},
	"Venus":   {Taurus, Libra},
	"Mars":    {Aries, Scorpio},
	"Jupiter": {Sagittarius, Pisces},
	"Saturn":  {Capricorn, Aquarius},
	"Uranus":  {Aquarius},
	"Neptune": {Pisces},
	"Pluto":   {Scorpio},
}

// Rules reports whether the named body rules the given sign.
func Rules(body string, s Sign) bool {
	for _, r := range rulerships[body] {
		if r == s {
			return true
		}
	}
	return false
}

// Normalize reduces an ecliptic longitude to [0,360).
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// SignFromLongitude maps an ecliptic longitude in degrees to its sign.
// Any real longitude is valid.
func SignFromLongitude(lon float64) Sign {
	return Sign(int(Normalize(lon) / 30))
}

// DegreesIntoSign returns the position within the sign, in [0,30).
func DegreesIntoSign(lon float64) float64 {
	return math.Mod(Normalize(lon), 30)
}

// Separation returns the shortest angular distance between two
// longitudes, in [0,180].  Symmetric in its arguments.
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SabianDegree converts a longitude to its Sabian symbol degree, 1..360.
// Sabian degrees round up; an exact 0 wraps to 360.
func SabianDegree(lon float64) int {
	d := int(math.Ceil(Normalize(lon)))
	if d == 0 {
		d = 360
	}
	return d
}

// Affinity classifies the relationship between two elements.
type Affinity string

const (
	Harmonious  Affinity = "harmonious"
	Challenging Affinity = "challenging"
	Neutral     Affinity = "neutral"
)

// ElementAffinity returns the compatibility type of an element pairing.
// Same element and the Fire/Air and Earth/Water pairs are harmonious;
// Fire/Water and Earth/Air are challenging; the rest are neutral.
func ElementAffinity(a, b Element) Affinity {
	if a == b {
		return Harmonious
	}
	switch {
	case a == Fire && b == Air, a == Air && b == Fire,
		a == Earth && b == Water, a == Water && b == Earth:
		return Harmonious
	case a == Fire && b == Water, a == Water && b == Fire,
		a == Earth && b == Air, a == Air && b == Earth:
		return Challenging
	}
	return Neutral
}
