package pricing

import (
	"math"
	"sort"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// Component is one priced line of a quote. Err is set instead of prices
// when the lookup has no answer; erroring components are skipped in the
// total rather than failing the quote.
type Component struct {
	Wholesale float64 `json:"wholesale"`
	Retail    float64 `json:"retail"`
	Err       string  `json:"error,omitempty"`
}

// Enclosures holds the optional per-side wall components.
type Enclosures struct {
	Left  *Component `json:"left,omitempty"`
	Right *Component `json:"right,omitempty"`
}

// Total tracks wholesale and retail sums separately. Retail is the sum
// of pre-rounded component retails, never the wholesale total times the
// markup: rounding is per component so quotes reproduce exactly.
type Total struct {
	Wholesale float64 `json:"wholesale"`
	Retail    float64 `json:"retail"`
}

// Quote is the complete cost breakdown for one configuration.
type Quote struct {
	Roof       Component  `json:"roof"`
	Enclosures Enclosures `json:"enclosures"`
	Lighting   *Component `json:"lighting,omitempty"`
	Total      Total      `json:"total"`
}

// Price computes the cost breakdown for a configuration. Dimensions are
// taken in meters and snapped to the millimeter buckets of the price
// tables.
func Price(cfg config.Configuration) Quote {
	var q Quote

	depthMM := int(math.Round(cfg.Depth * 1000))
	widthMM := int(math.Round(cfg.Width * 1000))

	q.Roof = roofPrice(cfg.Model, string(cfg.RoofType), depthMM, widthMM)
	addComponent(&q.Total, q.Roof)

	if sideEnabled(cfg, config.SideLeft) {
		c := sidePrice(depthMM)
		q.Enclosures.Left = &c
		addComponent(&q.Total, c)
	}
	if sideEnabled(cfg, config.SideRight) {
		c := sidePrice(depthMM)
		q.Enclosures.Right = &c
		addComponent(&q.Total, c)
	}

	if cfg.Lighting.Count > 0 {
		c := lightPrice(cfg.Lighting.Count)
		q.Lighting = &c
		addComponent(&q.Total, c)
	}

	return q
}

// SidePrice returns the wholesale price of one enclosure wall for the
// given depth in millimeters. Exposed for the quote formatter.
func SidePrice(depthMM int) float64 {
	return sideTable[nearestBucket(bucketKeys(sideTable), depthMM)]
}

func roofPrice(model, roofType string, depthMM, widthMM int) Component {
	byRoof, ok := roofTable[model]
	if !ok {
		return Component{Err: "unknown model"}
	}
	byDepth, ok := byRoof[roofType]
	if !ok {
		return Component{Err: "unknown roof type"}
	}
	if len(byDepth) == 0 {
		return Component{Err: "empty price table"}
	}

	// Snap depth first, then width within that depth's row.
	depth := nearestBucket(bucketKeys(byDepth), depthMM)
	row := byDepth[depth]
	width := nearestBucket(bucketKeys(row), widthMM)

	return makeComponent(row[width])
}

func sidePrice(depthMM int) Component {
	if len(sideTable) == 0 {
		return Component{Err: "empty price table"}
	}
	return makeComponent(SidePrice(depthMM))
}

func lightPrice(count int) Component {
	w, ok := lightSetTable[count]
	if !ok {
		return Component{Err: "no price for light count"}
	}
	return makeComponent(w)
}

func makeComponent(wholesale float64) Component {
	return Component{
		Wholesale: wholesale,
		Retail:    round2(wholesale * RetailMarkup),
	}
}

func addComponent(t *Total, c Component) {
	if c.Err != "" {
		return
	}
	t.Wholesale += c.Wholesale
	t.Retail += c.Retail
}

func sideEnabled(cfg config.Configuration, side config.Side) bool {
	return cfg.EnclosureEnabled && cfg.Sides.Get(side).Material != config.WallOpen
}

// nearestBucket snaps target to the closest key. Keys are ascending and
// comparison is strict, so on an exact tie the lower bucket wins.
func nearestBucket(keys []int, target int) int {
	best := keys[0]
	bestDist := abs(target - best)
	for _, k := range keys[1:] {
		if d := abs(target - k); d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}

func bucketKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
