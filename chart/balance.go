package chart

import "astrochart/zodiac"

// BalanceLevel classifies a share of the chart as high, balanced, or
// low relative to fixed thresholds.
type BalanceLevel string

const (
	High     BalanceLevel = "high"
	Balanced BalanceLevel = "balanced"
	Low      BalanceLevel = "low"
)

// Balance is the share of chart bodies in one element or modality.
type Balance struct {
	Count      int
	Percentage float64
	Level      BalanceLevel
}

func level(pct, high, low float64) BalanceLevel {
	switch {
	case pct > high:
		return High
	case pct < low:
		return Low
	}
	return Balanced
}

// ElementBalance counts bodies per element.  Above 40% is high, below
// 15% low.
func (c *Chart) ElementBalance() map[zodiac.Element]Balance {
	counts := map[zodiac.Element]int{}
	for _, b := range c.Bodies {
		counts[c.Positions[b].Sign.Element()]++
	}
	total := len(c.Bodies)
	out := make(map[zodiac.Element]Balance, 4)
	for _, e := range zodiac.Elements {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[e]) / float64(total) * 100
		}
		out[e] = Balance{counts[e], pct, level(pct, 40, 15)}
	}
	return out
}

// ModalityBalance counts bodies per modality.  Above 40% is high, below
// 20% low.
func (c *Chart) ModalityBalance() map[zodiac.Modality]Balance {
	counts := map[zodiac.Modality]int{}
	for _, b := range c.Bodies {
		counts[c.Positions[b].Sign.Modality()]++
	}
	total := len(c.Bodies)
	out := make(map[zodiac.Modality]Balance, 3)
	for _, m := range zodiac.Modalities {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[m]) / float64(total) * 100
		}
		out[m] = Balance{counts[m], pct, level(pct, 40, 20)}
	}
	return out
}

// angularHouses are the houses on the chart angles.
var angularHouses = map[int]bool{1: true, 4: true, 7: true, 10: true}

// DominantBody scores every chart body and returns the strongest with
// its score: +5 for ruling the Ascendant sign, +3 for sitting in an
// angular house, +4 for dignity (occupying an owned sign), +1 per
// aspect the body participates in.  Ties go to the body occurring first
// in chart order; that tie-break is arbitrary, not meaningful.
func (c *Chart) DominantBody() (Body, int) {
	if len(c.Bodies) == 0 {
		return "", 0
	}
	scores := make(map[Body]int, len(c.Bodies))

	var ascSign zodiac.Sign
	haveAsc := false
	if c.Houses != nil {
		ascSign = c.Houses.AscendantSign()
		haveAsc = true
	}

	for _, b := range c.Bodies {
		p := c.Positions[b]
		if haveAsc && zodiac.Rules(string(b), ascSign) {
			scores[b] += 5
		}
		if h, err := c.HouseOf(b); err == nil && angularHouses[h] {
			scores[b] += 3
		}
		if zodiac.Rules(string(b), p.Sign) {
			scores[b] += 4
		}
	}
	for _, a := range c.Aspects() {
		scores[a.A]++
		scores[a.B]++
	}

	best := c.Bodies[0]
	for _, b := range c.Bodies[1:] {
		if scores[b] > scores[best] {
			best = b
		}
	}
	return best, scores[best]
}
