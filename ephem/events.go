package ephem

import (
	"time"

	"astrochart/chart"
	"astrochart/zodiac"
)

// SolarReturn finds the moment, to the nearest hour, when the Sun
// returns to its natal longitude.  The search covers 48 hours either
// side of the anniversary instant.
func (p *Provider) SolarReturn(natalSunLon float64, anniversary time.Time) (time.Time, error) {
	best := anniversary
	smallest := 360.0
	for h := -48; h <= 48; h++ {
		t := anniversary.Add(time.Duration(h) * time.Hour)
		lon, err := p.Longitude(chart.Sun, JD(t))
		if err != nil {
			return time.Time{}, err
		}
		if d := zodiac.Separation(lon, natalSunLon); d < smallest {
			smallest = d
			best = t
		}
	}
	return best, nil
}

// ProgressedJD maps an instant onto the secondary progression
// timescale, where one day after birth stands for one year of life.
func ProgressedJD(birthJD, targetJD float64) float64 {
	return birthJD + (targetJD-birthJD)/365.25
}

// UpcomingTransit is a forecast hit: a slow mover in tight aspect to a
// natal body on a sampled date.
type UpcomingTransit struct {
	Date       time.Time
	Transiting chart.Body
	Natal      chart.Body
	Type       chart.AspectType
	House      int
}

// slowMovers are the bodies worth forecasting; the rest move too fast
// for a weekly sample to mean anything.
var slowMovers = []chart.Body{chart.Jupiter, chart.Saturn, chart.Uranus, chart.Neptune, chart.Pluto}

// Forecast samples weekly over the coming months for slow movers
// making tight aspects to the natal chart.
func (p *Provider) Forecast(natal *chart.Chart, from time.Time, months int) ([]UpcomingTransit, error) {
	var out []UpcomingTransit
	for day := 0; day < months*30; day += 7 {
		t := from.AddDate(0, 0, day)
		jd := JD(t)
		for _, tb := range slowMovers {
			lon, err := p.Longitude(tb, jd)
			if err != nil {
				return nil, err
			}
			for _, nb := range natal.Bodies {
				sep := zodiac.Separation(lon, natal.Positions[nb].Longitude)
				spec, ok := chart.Classify(sep, chart.TightAspectTable)
				if !ok {
					continue
				}
				house, err := natal.HouseOf(nb)
				if err != nil {
					house = 0
				}
				out = append(out, UpcomingTransit{
					Date:       t,
					Transiting: tb,
					Natal:      nb,
					Type:       spec.Type,
					House:      house,
				})
			}
		}
	}
	return out, nil
}

// VoidStatus describes the Moon's void of course condition.
type VoidStatus struct {
	Void           bool
	LastAspect     time.Time // zero when no aspect was found in the window
	NextSignChange time.Time
}

// voidAspects are the angles that end a void period.
var voidAspects = []float64{0, 60, 90, 120, 180}

const voidOrb = 1.0

// VoidOfCourse reports whether the Moon is void of course: it scans
// back hourly, within the Moon's current sign and at most twelve
// hours, for an exact major aspect from the Moon to another body.  The
// next sign change is projected from the Moon's current daily motion.
func (p *Provider) VoidOfCourse(t time.Time) (VoidStatus, error) {
	jd := JD(t)
	pos, err := p.Position(chart.Moon, jd)
	if err != nil {
		return VoidStatus{}, err
	}

	var st VoidStatus
	if pos.Speed > 0 {
		toNext := 30 - pos.SignDeg
		st.NextSignChange = t.Add(time.Duration(toNext / pos.Speed * 24 * float64(time.Hour)))
	}

	for back := 0; back <= 12; back++ {
		ct := t.Add(-time.Duration(back) * time.Hour)
		cjd := JD(ct)
		moonLon, err := p.Longitude(chart.Moon, cjd)
		if err != nil {
			return VoidStatus{}, err
		}
		if zodiac.SignFromLongitude(moonLon) != pos.Sign {
			break
		}
		for _, b := range chart.Planets {
			if b == chart.Moon {
				continue
			}
			lon, err := p.Longitude(b, cjd)
			if err != nil {
				return VoidStatus{}, err
			}
			sep := zodiac.Separation(moonLon, lon)
			for _, angle := range voidAspects {
				if sep >= angle-voidOrb && sep <= angle+voidOrb {
					if st.LastAspect.IsZero() || ct.After(st.LastAspect) {
						st.LastAspect = ct
					}
				}
			}
		}
	}
	st.Void = !st.LastAspect.IsZero()
	return st, nil
}
