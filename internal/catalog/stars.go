// Package catalog holds the static star and constellation-line catalogs.
// Both are produced by an offline filtering step, baked in as Go slices,
// loaded once, and read-only for the process lifetime.
package catalog

// Star is a catalog entry with J2000 coordinates, apparent visual
// magnitude (lower = brighter), and B-V color index.
type Star struct {
	Name       string
	RAdeg      float64
	DecDeg     float64
	Mag        float64
	ColorIndex float64 // B-V: negative = blue-white, ~1.5+ = red
}

// Stars returns the bright-star catalog, weighted toward the zodiac band.
// Data from the Yale Bright Star Catalog.
func Stars() []Star {
	return brightStars
}

var brightStars = []Star{
	// Exceptionally bright anchors
	{"Sirius", 101.287, -16.716, -1.46, 0.00},
	{"Canopus", 95.988, -52.696, -0.74, 0.15},
	{"Arcturus", 213.915, 19.182, -0.05, 1.23},
	{"Vega", 279.235, 38.784, 0.03, 0.00},
	{"Capella", 79.172, 45.998, 0.08, 0.80},
	{"Rigel", 78.634, -8.202, 0.13, -0.03},
	{"Procyon", 114.826, 5.225, 0.34, 0.42},
	{"Betelgeuse", 88.793, 7.407, 0.50, 1.85},
	{"Altair", 297.696, 8.868, 0.76, 0.22},

	// Zodiac-band first magnitude
	{"Aldebaran", 68.980, 16.509, 0.85, 1.54},
	{"Antares", 247.352, -26.432, 0.96, 1.83},
	{"Spica", 201.298, -11.161, 0.97, -0.23},
	{"Pollux", 116.329, 28.026, 1.14, 1.00},
	{"Fomalhaut", 344.413, -29.622, 1.16, 0.09},
	{"Deneb", 310.358, 45.280, 1.25, 0.09},
	{"Regulus", 152.093, 11.967, 1.35, -0.11},
	{"Castor", 113.650, 31.889, 1.58, 0.03},

	// Second magnitude
	{"Bellatrix", 81.283, 6.350, 1.64, -0.22},
	{"Elnath", 81.573, 28.608, 1.65, -0.13},
	{"Alnilam", 84.053, -1.202, 1.69, -0.18},
	{"Alnitak", 85.190, -1.943, 1.77, -0.20},
	{"Mirfak", 51.081, 49.861, 1.79, 0.48},
	{"Kaus Australis", 276.043, -34.384, 1.85, -0.03},
	{"Sargas", 264.330, -42.998, 1.87, 0.41},
	{"Alhena", 99.428, 16.399, 1.93, 0.00},
	{"Alphard", 141.897, -8.659, 2.00, 1.44},
	{"Hamal", 31.793, 23.463, 2.00, 1.15},
	{"Diphda", 10.897, -17.987, 2.02, 1.02},
	{"Nunki", 283.816, -26.297, 2.02, -0.22},
	{"Polaris", 37.954, 89.264, 2.02, 0.60},
	{"Alpheratz", 2.097, 29.091, 2.06, -0.11},
	{"Algieba", 146.463, 19.842, 2.08, 1.12},
	{"Rasalhague", 263.734, 12.560, 2.08, 0.15},
	{"Algol", 47.042, 40.957, 2.12, -0.05},
	{"Denebola", 177.265, 14.572, 2.13, 0.09},
	{"Mintaka", 83.002, -0.299, 2.23, -0.22},
	{"Alphecca", 233.672, 26.715, 2.23, -0.02},
	{"Schedar", 10.127, 56.537, 2.23, 1.17},
	{"Dschubba", 240.083, -22.622, 2.32, -0.12},
	{"Larawag", 254.655, -34.293, 2.29, 1.15},
	{"Enif", 326.046, 9.875, 2.39, 1.53},
	{"Scheat", 345.944, 28.083, 2.42, 1.67},
	{"Sabik", 257.595, -15.725, 2.43, 0.06},
	{"Girtab", 265.622, -39.030, 2.41, 0.29},
	{"Markab", 346.190, 15.205, 2.49, -0.04},
	{"Shaula", 263.402, -37.104, 1.63, -0.22},

	// Third magnitude, mostly zodiacal figures
	{"Zosma", 168.527, 20.524, 2.56, 0.13},
	{"Arneb", 83.183, -17.822, 2.58, 0.21},
	{"Gienah", 183.952, -17.542, 2.59, -0.11},
	{"Zubeneschamali", 229.252, -9.383, 2.61, -0.07},
	{"Acrab", 241.359, -19.805, 2.62, -0.07},
	{"Sheratan", 28.660, 20.808, 2.64, 0.17},
	{"Unukalhai", 236.067, 6.426, 2.65, 1.17},
	{"Kraz", 188.597, -23.397, 2.65, 0.89},
	{"Tarazed", 296.565, 10.613, 2.72, 1.52},
	{"Porrima", 190.415, -1.449, 2.74, 0.36},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, 0.15},
	{"Yed Prior", 243.586, -3.694, 2.75, 1.59},
	{"Cursa", 76.963, -5.086, 2.79, 0.16},
	{"Nihal", 82.061, -20.759, 2.84, 0.82},
	{"Alcyone", 56.871, 24.105, 2.87, -0.09},
	{"Tejat", 95.740, 22.513, 2.88, 1.64},
	{"Gomeisa", 111.788, 8.289, 2.90, -0.10},
	{"Sadalsuud", 322.890, -5.571, 2.91, 0.83},
	{"Vindemiatrix", 195.544, 10.959, 2.83, 0.93},
	{"Sadalmelik", 331.446, -0.320, 2.96, 0.98},
	{"Minkar", 182.531, -22.620, 3.02, 1.33},
	{"Mebsuta", 100.983, 25.131, 3.06, 1.38},
	{"Ascella", 287.441, -29.880, 2.60, 0.08},
	{"Kaus Media", 274.407, -29.828, 2.70, 1.38},
	{"Kaus Borealis", 276.993, -25.421, 2.81, 1.04},
	{"Albireo", 292.680, 27.960, 3.18, 1.13},
	{"Propus", 93.719, 22.506, 3.28, 1.60},
	{"Adhafera", 154.173, 23.417, 3.43, 0.31},
	{"Chertan", 168.560, 15.430, 3.33, 0.00},
	{"Auva", 192.855, 3.397, 3.38, 1.57},
	{"Heze", 203.673, -0.596, 3.37, 0.11},
	{"Wasat", 110.031, 21.982, 3.53, 0.37},
	{"Zavijava", 177.674, 1.765, 3.61, 0.55},
	{"Alterf", 139.711, 22.968, 4.31, 1.54},
	{"Rasalas", 146.463, 26.007, 3.88, 1.22},
	{"Acubens", 134.622, 11.858, 4.25, 0.14},
	{"Asellus Australis", 131.171, 18.154, 3.94, 1.08},
	{"Asellus Borealis", 130.821, 21.469, 4.66, 0.01},
	{"Algedi", 304.513, -12.545, 3.57, 0.94},
	{"Dabih", 305.253, -14.781, 3.08, 0.79},
	{"Nashira", 325.023, -16.662, 3.68, 0.32},
	{"Deneb Algedi", 326.760, -16.127, 2.87, 0.29},
	{"Skat", 343.663, -15.821, 3.27, 0.05},
	{"Albali", 311.919, -9.496, 3.77, -0.06},
	{"Alrescha", 30.512, 2.764, 3.82, 0.02},
	{"Zaniah", 184.976, -0.667, 3.89, -0.01},
	{"Syrma", 214.004, -6.001, 4.08, 0.51},
	{"Cebalrai", 266.973, 4.567, 2.77, 1.17},
	{"Brachium", 233.882, -25.282, 3.29, 1.70},
}
