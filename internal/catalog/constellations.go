package catalog

// Vertex is one point of a constellation polyline, in J2000 degrees.
type Vertex struct {
	RAdeg  float64
	DecDeg float64
}

// Constellation is one of the 13 zodiacal constellations: a 3-letter IAU
// code plus the stick-figure polylines to draw. Pisces straddles the
// 0°/360° wrap in the zodiac lookup table but is a single record here.
type Constellation struct {
	Code  string
	Name  string
	Lines [][]Vertex
}

// Constellations returns the zodiacal constellation-line catalog.
func Constellations() []Constellation {
	return zodiacLines
}

var zodiacLines = []Constellation{
	{
		Code: "Ari", Name: "Aries",
		Lines: [][]Vertex{
			{{31.793, 23.463}, {28.660, 20.808}, {28.383, 19.294}, {42.496, 27.261}},
		},
	},
	{
		Code: "Tau", Name: "Taurus",
		Lines: [][]Vertex{
			{{81.573, 28.608}, {68.980, 16.509}, {64.948, 15.627}, {60.170, 12.490}},
			{{64.948, 15.627}, {65.734, 17.543}, {67.166, 19.180}},
			{{68.980, 16.509}, {84.411, 21.143}},
		},
	},
	{
		Code: "Gem", Name: "Gemini",
		Lines: [][]Vertex{
			{{113.650, 31.889}, {100.983, 25.131}, {95.740, 22.513}, {93.719, 22.506}},
			{{116.329, 28.026}, {110.031, 21.982}, {99.428, 16.399}},
			{{113.650, 31.889}, {116.329, 28.026}},
		},
	},
	{
		Code: "Cnc", Name: "Cancer",
		Lines: [][]Vertex{
			{{134.622, 11.858}, {131.171, 18.154}, {130.821, 21.469}},
			{{131.171, 18.154}, {124.129, 9.186}},
		},
	},
	{
		Code: "Leo", Name: "Leo",
		Lines: [][]Vertex{
			// Sickle
			{{152.093, 11.967}, {151.833, 16.763}, {146.463, 19.842}, {154.173, 23.417}, {146.463, 26.007}, {139.711, 22.968}},
			// Body and tail
			{{152.093, 11.967}, {168.560, 15.430}, {177.265, 14.572}, {168.527, 20.524}, {146.463, 19.842}},
		},
	},
	{
		Code: "Vir", Name: "Virgo",
		Lines: [][]Vertex{
			{{201.298, -11.161}, {190.415, -1.449}, {184.976, -0.667}, {177.674, 1.765}},
			{{190.415, -1.449}, {192.855, 3.397}, {195.544, 10.959}},
			{{201.298, -11.161}, {203.673, -0.596}, {214.004, -6.001}},
		},
	},
	{
		Code: "Lib", Name: "Libra",
		Lines: [][]Vertex{
			{{229.252, -9.383}, {222.720, -16.042}, {233.882, -25.282}},
			{{222.720, -16.042}, {229.252, -9.383}, {234.664, -14.789}},
		},
	},
	{
		Code: "Sco", Name: "Scorpius",
		Lines: [][]Vertex{
			{{241.359, -19.805}, {240.083, -22.622}, {239.713, -26.114}},
			{{240.083, -22.622}, {247.352, -26.432}, {254.655, -34.293}, {264.330, -42.998}, {263.402, -37.104}, {265.622, -39.030}},
		},
	},
	{
		Code: "Oph", Name: "Ophiuchus",
		Lines: [][]Vertex{
			{{263.734, 12.560}, {266.973, 4.567}, {257.595, -15.725}, {249.290, -10.567}, {243.586, -3.694}, {254.417, 9.375}, {263.734, 12.560}},
		},
	},
	{
		Code: "Sgr", Name: "Sagittarius",
		Lines: [][]Vertex{
			// Teapot body
			{{271.452, -30.424}, {274.407, -29.828}, {276.043, -34.384}, {287.441, -29.880}, {286.171, -27.670}, {283.816, -26.297}, {276.993, -25.421}, {274.407, -29.828}},
			// Lid and spout
			{{276.993, -25.421}, {281.414, -26.991}, {283.816, -26.297}},
		},
	},
	{
		Code: "Cap", Name: "Capricornus",
		Lines: [][]Vertex{
			{{304.513, -12.545}, {305.253, -14.781}, {311.524, -25.271}, {316.487, -25.006}, {325.023, -16.662}, {326.760, -16.127}, {304.513, -12.545}},
		},
	},
	{
		Code: "Aqr", Name: "Aquarius",
		Lines: [][]Vertex{
			{{311.919, -9.496}, {322.890, -5.571}, {331.446, -0.320}, {337.208, -1.387}},
			{{331.446, -0.320}, {343.663, -15.821}},
		},
	},
	{
		Code: "Psc", Name: "Pisces",
		Lines: [][]Vertex{
			// Western fish (circlet)
			{{349.291, 3.282}, {351.992, 6.379}, {354.988, 5.626}, {355.512, 1.780}, {351.733, 1.256}, {349.291, 3.282}},
			// Cords meeting at Alrescha, eastern fish rising
			{{22.871, 15.346}, {26.348, 9.158}, {30.512, 2.764}, {15.736, 7.890}, {12.171, 7.585}, {355.512, 1.780}},
		},
	},
}
