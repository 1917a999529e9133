package reading

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"astrochart/chart"
	"astrochart/zodiac"
)

// Generator assembles readings.  Random phrase selection goes through
// its own source so output is repeatable under a fixed seed.
type Generator struct {
	db  *Database
	rng *rand.Rand
}

// NewGenerator builds a generator over a database.  A zero seed draws
// one from the clock.
func NewGenerator(db *Database, seed uint64) *Generator {
	if db == nil {
		db = Default()
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{db: db, rng: rand.New(rand.NewSource(seed))}
}

// pick selects one phrase, or the fallback from an empty list.
func (g *Generator) pick(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[g.rng.Intn(len(list))]
}

// sample selects up to n distinct phrases.
func (g *Generator) sample(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	idx := g.rng.Perm(len(list))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func lookup(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Daily writes the general horoscope for the day: current Sun and Moon
// signs, their element blend, the house holding the most bodies, and a
// closing line.
func (g *Generator) Daily(current *chart.Chart, natalSun zodiac.Sign) string {
	var b strings.Builder
	sun := current.Positions[chart.Sun].Sign
	moon := current.Positions[chart.Moon].Sign

	fmt.Fprintf(&b, "General Horoscope for %s\n\n", natalSun)

	theme := g.pick(g.db.SunSignThemes[sun.String()], "cosmic energies are at work")
	fmt.Fprintf(&b, "With the Sun in %s, %s. ", sun, lowerFirst(theme))

	influence := lookup(g.db.MoonSignInfluences, moon.String(), "affecting your emotions")
	fmt.Fprintf(&b, "The Moon in %s is %s. ", moon, influence)

	comboKey := fmt.Sprintf("%s_%s", sun.Element(), moon.Element())
	combo := lookup(g.db.ElementCombinations, comboKey, "creating a unique energetic blend")
	fmt.Fprintf(&b, "This combination of %s.\n\n", combo)

	if house, ok := prominentHouse(current); ok {
		focus := lookup(g.db.HouseDailyFocus, fmt.Sprint(house),
			fmt.Sprintf("influencing the %s area", strings.ToLower(HouseMeanings[house].Name)))
		fmt.Fprintf(&b, "Today's cosmic emphasis falls on your house %d, %s. ", house, focus)
	}

	fmt.Fprintf(&b, "%s.", g.pick(g.db.GeneralWisdom, "Trust the cosmic flow"))
	return b.String()
}

// prominentHouse finds the house holding the most bodies.  Lower house
// numbers win ties.  ok is false when the chart has no usable houses.
func prominentHouse(c *chart.Chart) (int, bool) {
	var counts [13]int
	any := false
	for _, body := range c.Bodies {
		h, err := c.HouseOf(body)
		if err != nil {
			continue
		}
		counts[h]++
		any = true
	}
	if !any {
		return 0, false
	}
	best := 1
	for h := 2; h <= 12; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best, true
}

// Natal writes the full natal chart reading: rising sign, core
// placements, natal retrogrades, aspects, patterns, balances, dominant
// body, and the current planetary hour.
func (g *Generator) Natal(natal *chart.Chart, now time.Time) string {
	var b strings.Builder
	nc := g.db.NatalChart

	b.WriteString("NATAL CHART READING\n\n")

	if natal.Houses != nil {
		asc := natal.Houses.AscendantSign()
		fmt.Fprintf(&b, "Rising Sign (Ascendant): %s\n%s\n\n", asc,
			lookup(nc.RisingSign, asc.String(), "Your rising sign shapes how you meet the world."))
	}

	b.WriteString("Core Planetary Placements:\n\n")
	core := []chart.Body{chart.Sun, chart.Moon, chart.Mercury, chart.Venus, chart.Mars}
	for _, body := range core {
		pos, ok := natal.Positions[body]
		if !ok {
			continue
		}
		key := fmt.Sprintf("%s_%s", body, pos.Sign)
		interp := lookup(nc.PlanetInSign, key,
			fmt.Sprintf("Your %s in %s shapes this planetary energy.", body, pos.Sign))
		retro := ""
		if pos.Retrograde {
			retro = " (retrograde)"
		}
		if h, err := natal.HouseOf(body); err == nil {
			fmt.Fprintf(&b, "%s in %s, house %d%s\n  %s\n\n", body, pos.Sign, h, retro, interp)
		} else {
			fmt.Fprintf(&b, "%s in %s%s\n  %s\n\n", body, pos.Sign, retro, interp)
		}
	}

	if retros := natal.Retrogrades(); len(retros) > 0 {
		b.WriteString("Natal Retrograde Planets:\n\n")
		for _, body := range retros {
			fmt.Fprintf(&b, "%s Retrograde: %s\n", body,
				lookup(nc.NatalRetrograde, string(body),
					fmt.Sprintf("%s retrograde at birth indicates internal processing.", body)))
		}
		b.WriteString("\n")
	}

	g.writeAspects(&b, natal)
	g.writePatterns(&b, natal)
	g.writeBalances(&b, natal)

	if dom, score := natal.DominantBody(); dom != "" {
		fmt.Fprintf(&b, "Chart Ruler: %s (influence score %d)\n%s\n\n", dom, score,
			lookup(nc.DominantPlanet, string(dom),
				fmt.Sprintf("%s energy shapes your life significantly.", dom)))
	}

	hour := chart.PlanetaryHour(now)
	fmt.Fprintf(&b, "Current Planetary Hour: %s\n%s\n", hour,
		lookup(nc.PlanetaryHours, string(hour), "This planetary hour influences current activities."))

	return b.String()
}

// aspectOrder ranks aspect types for presentation, tightest first by
// convention.
var aspectOrder = map[chart.AspectType]int{
	chart.Conjunction: 0,
	chart.Opposition:  1,
	chart.Trine:       2,
	chart.Square:      3,
	chart.Sextile:     4,
}

func (g *Generator) writeAspects(b *strings.Builder, natal *chart.Chart) {
	aspects := natal.Aspects()
	if len(aspects) == 0 {
		return
	}
	// Stable ordering by conventional rank, then chart order.
	ranked := make([]chart.Aspect, len(aspects))
	copy(ranked, aspects)
	sort.SliceStable(ranked, func(i, j int) bool {
		return aspectOrder[ranked[i].Type] < aspectOrder[ranked[j].Type]
	})

	b.WriteString("Major Aspects:\n\n")
	for _, a := range ranked {
		interp := g.aspectText(a)
		fmt.Fprintf(b, "%s %s %s (%.1f deg)\n%s\n\n", a.A, a.Type, a.B, a.Angle, interp)
	}
}

// aspectText looks an aspect up under both key orders before falling
// back to generic text.
func (g *Generator) aspectText(a chart.Aspect) string {
	interps := g.db.NatalChart.Aspects
	if m, ok := interps[fmt.Sprintf("%s_%s", a.A, a.B)]; ok {
		if s, ok := m[string(a.Type)]; ok {
			return s
		}
	}
	if m, ok := interps[fmt.Sprintf("%s_%s", a.B, a.A)]; ok {
		if s, ok := m[string(a.Type)]; ok {
			return s
		}
	}
	return fmt.Sprintf("These planetary energies interact through %s.", a.Type)
}

func (g *Generator) writePatterns(b *strings.Builder, natal *chart.Chart) {
	patterns := natal.Patterns()
	if len(patterns) == 0 {
		return
	}
	b.WriteString("Special Chart Patterns:\n\n")
	for _, p := range patterns {
		names := make([]string, len(p.Bodies))
		for i, body := range p.Bodies {
			names[i] = string(body)
		}
		switch p.Type {
		case chart.Stellium:
			fmt.Fprintf(b, "Stellium in %s: %s\n", p.Sign, strings.Join(names, ", "))
		case chart.TSquare:
			fmt.Fprintf(b, "T-Square: %s with apex at %s\n", strings.Join(names, ", "), p.Apex)
		case chart.Yod:
			fmt.Fprintf(b, "Yod: %s pointing to %s\n", strings.Join(names, ", "), p.Apex)
		case chart.GrandTrine:
			fmt.Fprintf(b, "Grand Trine in %s: %s\n", p.Element, strings.Join(names, ", "))
		default:
			fmt.Fprintf(b, "Grand Cross: %s\n", strings.Join(names, ", "))
		}
		if info, ok := g.db.NatalChart.ChartPatterns[string(p.Type)]; ok {
			fmt.Fprintf(b, "%s\n%s\n", info.Description, info.Interpretation)
		}
		b.WriteString("\n")
	}
}

func (g *Generator) writeBalances(b *strings.Builder, natal *chart.Chart) {
	b.WriteString("Elemental Balance:\n\n")
	elems := natal.ElementBalance()
	for _, e := range zodiac.Elements {
		bal := elems[e]
		info := g.db.NatalChart.Elements[string(e)]
		fmt.Fprintf(b, "%s (%d bodies, %.0f%%)", e, bal.Count, bal.Percentage)
		if info.Keywords != "" {
			fmt.Fprintf(b, " - %s", info.Keywords)
		}
		text := info.Level(bal.Level)
		if text == "" {
			text = "This element influences your nature."
		}
		fmt.Fprintf(b, "\n%s\n\n", text)
	}

	b.WriteString("Modality Balance:\n\n")
	mods := natal.ModalityBalance()
	for _, m := range zodiac.Modalities {
		bal := mods[m]
		info := g.db.NatalChart.Modalities[string(m)]
		fmt.Fprintf(b, "%s (%d bodies, %.0f%%)", m, bal.Count, bal.Percentage)
		if info.Keywords != "" {
			fmt.Fprintf(b, " - %s", info.Keywords)
		}
		text := info.Level(bal.Level)
		if text == "" {
			text = "This modality influences your approach."
		}
		fmt.Fprintf(b, "\n%s\n\n", text)
	}
}

// Compatibility writes the sun sign pairing analysis, colored by
// retrograde bodies in the current sky.
func (g *Generator) Compatibility(natalSun, partnerSun zodiac.Sign, current *chart.Chart) string {
	var b strings.Builder
	cc := g.db.Compatibility

	e1, e2 := natalSun.Element(), partnerSun.Element()
	affinity := zodiac.ElementAffinity(e1, e2)

	fmt.Fprintf(&b, "RELATIONSHIP COMPATIBILITY\n%s (%s) and %s (%s)\n\n", natalSun, e1, partnerSun, e2)

	dynamic := lookup(cc.ElementDynamics, fmt.Sprintf("%s_%s", e1, e2),
		"This pairing brings together different energetic qualities that require conscious navigation.")
	fmt.Fprintf(&b, "Elemental Dynamic:\n%s\n\n", dynamic)

	if patterns := g.sample(cc.Patterns, 3); len(patterns) > 0 {
		b.WriteString("Relational Patterns to Consider:\n")
		for _, p := range patterns {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	if advice := cc.Advice[string(affinity)]; len(advice) > 0 {
		fmt.Fprintf(&b, "Astrological Guidance:\n%s\n\n", g.pick(advice, ""))
	}

	notes := g.retrogradeNotes(current)
	if len(notes) == 0 {
		b.WriteString("No major planetary retrogrades currently affecting relationship dynamics.\n")
	} else {
		b.WriteString("Current Cosmic Influences on Relationships:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}
	return b.String()
}

// retrogradeNotes collects relationship transit notes for retrograde
// personal planets in the current sky.
func (g *Generator) retrogradeNotes(current *chart.Chart) []string {
	if current == nil {
		return nil
	}
	keys := []struct {
		body chart.Body
		key  string
	}{
		{chart.Venus, "venus_retrograde"},
		{chart.Mars, "mars_retrograde"},
		{chart.Mercury, "mercury_retrograde"},
	}
	var out []string
	for _, k := range keys {
		pos, ok := current.Positions[k.body]
		if !ok || !pos.Retrograde {
			continue
		}
		if list := g.db.Compatibility.TransitNotes[k.key]; len(list) > 0 {
			out = append(out, fmt.Sprintf("%s Retrograde: %s", k.body, g.pick(list, "")))
		}
	}
	return out
}

// Synastry writes the interaspect analysis between two charts.
func (g *Generator) Synastry(a, b *chart.Chart, nameA, nameB string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SYNASTRY ANALYSIS\n%s and %s\n\n", nameA, nameB)

	inter := chart.Synastry(a, b)
	if len(inter) == 0 {
		sb.WriteString("No major interaspects between these charts.\n")
		return sb.String()
	}

	sb.WriteString("Interaspects, tightest first:\n\n")
	for _, x := range inter {
		mark := ""
		if x.Important {
			mark = " [key pairing]"
		}
		fmt.Fprintf(&sb, "%s's %s %s %s's %s (orb %.1f deg)%s\n",
			nameA, x.A, x.Type, nameB, x.B, x.Orb, mark)
	}
	return sb.String()
}

// Chiron writes the wounded-healer reading for a sign placement.
func (g *Generator) Chiron(sign zodiac.Sign, deg float64) string {
	var b strings.Builder
	cc := g.db.NatalChart.Chiron
	b.WriteString("CHIRON - YOUR WOUND AND HEALING GIFT\n\n")
	if cc.Description != "" {
		b.WriteString(cc.Description + "\n\n")
	}
	fmt.Fprintf(&b, "Chiron in %s (%.1f deg)\n%s\n", sign, deg,
		lookup(cc.InSign, sign.String(),
			"Chiron in this sign indicates a unique wound and healing gift."))
	return b.String()
}

// Stars exposes the database star catalog in chart form.
func (g *Generator) Stars() []chart.FixedStar {
	return g.db.FixedStarList()
}

// Sabian returns the symbol for a longitude's degree.
func (g *Generator) Sabian(lon float64) SabianSymbol {
	deg := zodiac.SabianDegree(lon)
	if s, ok := g.db.NatalChart.SabianSymbols.Symbols[fmt.Sprint(deg)]; ok {
		return s
	}
	sign := zodiac.SignFromLongitude(lon)
	d := int(zodiac.DegreesIntoSign(lon)) + 1
	return SabianSymbol{
		Sign:           sign.String(),
		Degree:         d,
		Symbol:         fmt.Sprintf("Degree %d of %s", d, sign),
		Interpretation: "This degree holds specific meaning in your chart.",
	}
}
