package astro

import "time"

// zodiacInterval maps a half-open ecliptic-longitude interval [from, to)
// to a 3-letter IAU constellation code.
type zodiacInterval struct {
	from, to float64
	code     string
}

// zodiacTable covers [0, 360) with the 13 zodiacal constellations the
// ecliptic actually crosses. Boundaries follow the IAU constellation
// borders projected onto the ecliptic, so the intervals are unevenly
// sized; Pisces appears twice because it straddles the 0° wrap.
var zodiacTable = []zodiacInterval{
	{0, 29, "Psc"},
	{29, 53.5, "Ari"},
	{53.5, 90.5, "Tau"},
	{90.5, 118, "Gem"},
	{118, 138, "Cnc"},
	{138, 174, "Leo"},
	{174, 218, "Vir"},
	{218, 241, "Lib"},
	{241, 248, "Sco"},
	{248, 266.5, "Oph"},
	{266.5, 300, "Sgr"},
	{300, 328, "Cap"},
	{328, 351.5, "Aqr"},
	{351.5, 360, "Psc"},
}

// ZodiacConstellation maps an ecliptic longitude to the 3-letter code of
// the zodiacal constellation containing it. The first matching interval
// wins. The table covers [0, 360) fully, so after normalization the final
// return is a defensive default only.
func ZodiacConstellation(eclipticLon float64) string {
	lon := Normalize360(eclipticLon)
	for _, iv := range zodiacTable {
		if lon >= iv.from && lon < iv.to {
			return iv.code
		}
	}
	return zodiacTable[len(zodiacTable)-1].code
}

// signRange maps a calendar date range to a tropical sign name. Ranges
// that cross the year boundary (Capricorn) set wrap.
type signRange struct {
	fromMonth, fromDay int
	toMonth, toDay     int
	name               string
	wrap               bool
}

var tropicalTable = []signRange{
	{12, 22, 1, 19, "Capricorn", true},
	{1, 20, 2, 18, "Aquarius", false},
	{2, 19, 3, 20, "Pisces", false},
	{3, 21, 4, 19, "Aries", false},
	{4, 20, 5, 20, "Taurus", false},
	{5, 21, 6, 20, "Gemini", false},
	{6, 21, 7, 22, "Cancer", false},
	{7, 23, 8, 22, "Leo", false},
	{8, 23, 9, 22, "Virgo", false},
	{9, 23, 10, 22, "Libra", false},
	{10, 23, 11, 21, "Scorpio", false},
	{11, 22, 12, 21, "Sagittarius", false},
}

// TropicalSign returns the tropical zodiac sign for a calendar date. This
// is a pure date lookup, independent of the Sun's true position.
func TropicalSign(t time.Time) string {
	month := int(t.UTC().Month())
	day := t.UTC().Day()

	for _, r := range tropicalTable {
		if r.wrap {
			// Range crosses the new year: match either tail
			after := month == r.fromMonth && day >= r.fromDay
			before := month == r.toMonth && day <= r.toDay
			if after || before {
				return r.name
			}
			continue
		}
		inFrom := month == r.fromMonth && day >= r.fromDay
		inTo := month == r.toMonth && day <= r.toDay
		if inFrom || inTo {
			return r.name
		}
	}
	return tropicalTable[0].name
}
