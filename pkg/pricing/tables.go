package pricing

// Wholesale price tables from the supplier price list. Keys are discrete
// engineering sizes in millimeters; lookups snap to the closest bucket
// and never interpolate.

// RetailMarkup converts a wholesale price to the advertised retail price.
const RetailMarkup = 2.21

// roofTable maps model -> roof material -> depth -> width -> wholesale.
var roofTable = map[string]map[string]map[int]map[int]float64{
	"castor": {
		"polycarbonate": {
			2500: {3000: 995, 4000: 1135, 5000: 1340, 6000: 1560, 7000: 1775},
			3000: {3000: 1075, 4000: 1225, 5000: 1455, 6000: 1690, 7000: 1925},
			3500: {3000: 1165, 4000: 1330, 5000: 1580, 6000: 1835, 7000: 2090},
			4000: {3000: 1260, 4000: 1440, 5000: 1715, 6000: 1990, 7000: 2265},
		},
		"glass": {
			2500: {3000: 1390, 4000: 1595, 5000: 1885, 6000: 2195, 7000: 2500},
			3000: {3000: 1505, 4000: 1720, 5000: 2045, 6000: 2375, 7000: 2705},
			3500: {3000: 1630, 4000: 1865, 5000: 2220, 6000: 2580, 7000: 2935},
			4000: {3000: 1765, 4000: 2020, 5000: 2410, 6000: 2795, 7000: 3185},
		},
	},
	"flora": {
		"polycarbonate": {
			2500: {3000: 1090, 4000: 1245, 5000: 1470, 6000: 1710, 7000: 1945},
			3000: {3000: 1180, 4000: 1345, 5000: 1595, 6000: 1855, 7000: 2110},
			3500: {3000: 1280, 4000: 1460, 5000: 1735, 6000: 2015, 7000: 2295},
			4000: {3000: 1385, 4000: 1580, 5000: 1880, 6000: 2185, 7000: 2485},
		},
		"glass": {
			2500: {3000: 1525, 4000: 1750, 5000: 2070, 6000: 2405, 7000: 2745},
			3000: {3000: 1650, 4000: 1890, 5000: 2245, 6000: 2610, 7000: 2970},
			3500: {3000: 1790, 4000: 2045, 5000: 2435, 6000: 2830, 7000: 3225},
			4000: {3000: 1940, 4000: 2220, 5000: 2645, 6000: 3070, 7000: 3495},
		},
	},
}

// sideTable maps depth -> wholesale price of one enclosure wall. The
// price list carries one side price per depth regardless of wall
// material or glass family.
var sideTable = map[int]float64{
	2500: 325,
	3000: 375,
	3500: 425,
	4000: 475,
}

// lightSetTable maps spot count -> wholesale price. A single spot has
// its own unit price; other counts are sold as sets. Counts without an
// entry are a pricing error, not a nearest match.
var lightSetTable = map[int]float64{
	1:  35,
	2:  55,
	4:  95,
	6:  140,
	8:  170,
	10: 200,
}
