package chart

import (
	"time"

	"astrochart/zodiac"
)

// LunarPhase is one of the eight traditional phases, keyed the way the
// content database keys them.
type LunarPhase string

const (
	NewMoon       LunarPhase = "new_moon"
	CrescentMoon  LunarPhase = "crescent_moon"
	FirstQuarter  LunarPhase = "first_quarter"
	GibbousMoon   LunarPhase = "gibbous_moon"
	FullMoon      LunarPhase = "full_moon"
	Disseminating LunarPhase = "disseminating_moon"
	LastQuarter   LunarPhase = "last_quarter"
	BalsamicMoon  LunarPhase = "balsamic_moon"
)

var phaseOrder = [8]LunarPhase{
	NewMoon, CrescentMoon, FirstQuarter, GibbousMoon,
	FullMoon, Disseminating, LastQuarter, BalsamicMoon,
}

// LunarPhase returns the phase implied by the Sun-to-Moon angle, with
// the angle itself.  Phases are the eight 45-degree windows starting at
// the new moon.  ok is false when the chart lacks either luminary.
func (c *Chart) LunarPhase() (phase LunarPhase, angle float64, ok bool) {
	sun, okS := c.Positions[Sun]
	moon, okM := c.Positions[Moon]
	if !okS || !okM {
		return "", 0, false
	}
	angle = zodiac.Normalize(moon.Longitude - sun.Longitude)
	return phaseOrder[int(angle/45)%8], angle, true
}

// chaldeanOrder is the traditional planetary speed order used for hour
// rulership.
var chaldeanOrder = [7]Body{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// dayRulers maps weekday to the planet ruling its first hour.
var dayRulers = map[time.Weekday]Body{
	time.Sunday:    Sun,
	time.Monday:    Moon,
	time.Tuesday:   Mars,
	time.Wednesday: Mercury,
	time.Thursday:  Jupiter,
	time.Friday:    Venus,
	time.Saturday:  Saturn,
}

// PlanetaryHour returns the planet ruling the clock hour of t.  The
// first hour of each day belongs to the day's ruler; each following
// hour steps through the Chaldean order.
func PlanetaryHour(t time.Time) Body {
	first := dayRulers[t.Weekday()]
	var fi int
	for i, b := range chaldeanOrder {
		if b == first {
			fi = i
			break
		}
	}
	return chaldeanOrder[(fi+t.Hour())%7]
}
