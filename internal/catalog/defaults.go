package catalog

// Default returns the embedded bright-star catalog with constellation
// line figures. Coordinates are J2000 epoch, IDs are Hipparcos numbers.
// Data sourced from the Yale Bright Star Catalog and IAU star names.
func Default() *Catalog {
	c, err := New(defaultStars, defaultConstellations)
	if err != nil {
		// The embedded table is validated by tests; reaching this is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

// defaultStars contains bright stars visible from various latitudes.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude below 0.75 (exceptionally bright)
	{32349, "Sirius", 101.287, -16.716, -1.46},
	{30438, "Canopus", 95.988, -52.696, -0.74},
	{69673, "Arcturus", 213.915, 19.182, -0.05},
	{91262, "Vega", 279.235, 38.784, 0.03},
	{24608, "Capella", 79.172, 45.998, 0.08},
	{24436, "Rigel", 78.634, -8.202, 0.13},
	{37279, "Procyon", 114.826, 5.225, 0.34},
	{7588, "Achernar", 24.429, -57.237, 0.46},
	{27989, "Betelgeuse", 88.793, 7.407, 0.50},
	{68702, "Hadar", 210.956, -60.373, 0.61},

	// Magnitude 0.75-1.0
	{97649, "Altair", 297.696, 8.868, 0.76},
	{60718, "Acrux", 186.650, -63.099, 0.76},
	{21421, "Aldebaran", 68.980, 16.509, 0.85},
	{80763, "Antares", 247.352, -26.432, 0.96},
	{65474, "Spica", 201.298, -11.161, 0.97},

	// Magnitude 1.0-1.5
	{37826, "Pollux", 116.329, 28.026, 1.14},
	{113368, "Fomalhaut", 344.413, -29.622, 1.16},
	{102098, "Deneb", 310.358, 45.280, 1.25},
	{62434, "Mimosa", 191.930, -59.689, 1.25},
	{49669, "Regulus", 152.093, 11.967, 1.35},
	{33579, "Adhara", 104.656, -28.972, 1.50},

	// Magnitude 1.5-2.0
	{36850, "Castor", 113.650, 31.889, 1.58},
	{61084, "Gacrux", 187.791, -57.113, 1.63},
	{85927, "Shaula", 263.402, -37.104, 1.63},
	{25336, "Bellatrix", 81.283, 6.350, 1.64},
	{25428, "Elnath", 81.573, 28.608, 1.65},
	{26311, "Alnilam", 84.053, -1.202, 1.69},
	{26727, "Alnitak", 85.190, -1.943, 1.77},
	{62956, "Alioth", 193.507, 55.960, 1.77},
	{54061, "Dubhe", 165.932, 61.751, 1.79},
	{15863, "Mirfak", 51.081, 49.861, 1.79},
	{34444, "Wezen", 107.098, -26.393, 1.84},
	{67301, "Alkaid", 206.885, 49.313, 1.86},
	{28360, "Menkalinan", 89.882, 44.948, 1.90},
	{82273, "Atria", 252.166, -69.028, 1.92},
	{31681, "Alhena", 99.428, 16.399, 1.93},
	{100751, "Peacock", 306.412, -56.735, 1.94},
	{30324, "Mirzam", 95.675, -17.956, 1.98},

	// Magnitude 2.0-2.5
	{46390, "Alphard", 141.897, -8.659, 2.00},
	{9884, "Hamal", 31.793, 23.463, 2.00},
	{3419, "Diphda", 10.897, -17.987, 2.02},
	{92855, "Nunki", 283.816, -26.297, 2.02},
	{11767, "Polaris", 37.954, 89.264, 2.02},
	{65378, "Mizar", 200.981, 54.925, 2.04},
	{5447, "Mirach", 17.433, 35.621, 2.05},
	{677, "Alpheratz", 2.097, 29.091, 2.06},
	{72607, "Kochab", 222.676, 74.156, 2.08},
	{86032, "Rasalhague", 263.734, 12.560, 2.08},
	{27366, "Saiph", 86.939, -9.670, 2.09},
	{14576, "Algol", 47.042, 40.957, 2.12},
	{57632, "Denebola", 177.265, 14.572, 2.13},
	{100453, "Sadr", 305.557, 40.257, 2.23},
	{87833, "Eltanin", 269.152, 51.489, 2.23},
	{3179, "Schedar", 10.127, 56.537, 2.23},
	{25930, "Mintaka", 83.002, -0.299, 2.23},
	{76267, "Alphecca", 233.672, 26.715, 2.23},
	{746, "Caph", 2.295, 59.150, 2.27},
	{78401, "Dschubba", 240.083, -22.622, 2.32},
	{53910, "Merak", 165.460, 56.382, 2.37},
	{107315, "Enif", 326.046, 9.875, 2.39},
	{113881, "Scheat", 345.944, 28.083, 2.42},
	{58001, "Phecda", 178.458, 53.695, 2.44},
	{4427, "Navi", 14.177, 60.717, 2.47},
	{102488, "Aljanah", 311.553, 33.970, 2.48},
	{113963, "Markab", 346.190, 15.205, 2.49},

	// Magnitude 2.5+
	{6686, "Ruchbah", 21.454, 60.235, 2.66},
	{59747, "Imai", 183.786, -58.749, 2.79},
	{97165, "Fawaris", 296.244, 45.131, 2.87},
	{95947, "Albireo", 292.680, 27.960, 3.18},
	{59774, "Megrez", 183.857, 57.033, 3.31},
	{8886, "Segin", 28.599, 63.670, 3.37},
}

// defaultConstellations holds the line figures drawn between catalog
// stars, by Hipparcos ID.
var defaultConstellations = []Constellation{
	{
		Name: "Ursa Major",
		Segments: []Segment{
			{54061, 53910}, // Dubhe - Merak
			{53910, 58001}, // Merak - Phecda
			{58001, 59774}, // Phecda - Megrez
			{59774, 54061}, // Megrez - Dubhe (close the bowl)
			{59774, 62956}, // Megrez - Alioth
			{62956, 65378}, // Alioth - Mizar
			{65378, 67301}, // Mizar - Alkaid
		},
	},
	{
		Name: "Orion",
		Segments: []Segment{
			{27989, 25336}, // Betelgeuse - Bellatrix
			{25336, 25930}, // Bellatrix - Mintaka
			{25930, 26311}, // Mintaka - Alnilam (belt)
			{26311, 26727}, // Alnilam - Alnitak (belt)
			{26727, 27989}, // Alnitak - Betelgeuse
			{25930, 24436}, // Mintaka - Rigel
			{24436, 27366}, // Rigel - Saiph
			{27366, 26727}, // Saiph - Alnitak
		},
	},
	{
		Name: "Cassiopeia",
		Segments: []Segment{
			{746, 3179},  // Caph - Schedar
			{3179, 4427}, // Schedar - Navi
			{4427, 6686}, // Navi - Ruchbah
			{6686, 8886}, // Ruchbah - Segin
		},
	},
	{
		Name: "Cygnus",
		Segments: []Segment{
			{102098, 100453}, // Deneb - Sadr
			{100453, 95947},  // Sadr - Albireo
			{97165, 100453},  // Fawaris - Sadr
			{100453, 102488}, // Sadr - Aljanah
		},
	},
	{
		Name: "Crux",
		Segments: []Segment{
			{60718, 61084}, // Acrux - Gacrux
			{62434, 59747}, // Mimosa - Imai
		},
	},
}
