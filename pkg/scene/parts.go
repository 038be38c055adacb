package scene

import "github.com/tuinmax/verandaplanner/pkg/config"

// PartCategory classifies a glazing part within its family. The
// category decides which style sub-rule governs its visibility.
type PartCategory string

const (
	CategoryPanel  PartCategory = "panel"
	CategoryHolder PartCategory = "holder"
	CategoryBorder PartCategory = "border"
	CategorySlider PartCategory = "slider"
	CategoryGrid   PartCategory = "grid"
)

// familyParts lists the base part names of one glazing family. The
// asset carries a front instance under the bare name and mirrored
// left/right instances under the 001/002 suffixes.
type familyParts struct {
	Panels  []string
	Holders []string
	Borders []string
	Sliders []string
	Grids   []string
}

var glassFamilies = map[config.GlassType]familyParts{
	config.GlassDouble: {
		Panels:  []string{"doubleglass1", "doubleglass2"},
		Holders: []string{"doubleholder"},
		Borders: []string{"doubleborder"},
		Sliders: []string{"doubleslider1", "doubleslider2"},
		Grids:   []string{"doublegrid"},
	},
	config.GlassTriple: {
		Panels:  []string{"tripleglass1", "tripleglass2", "tripleglass3"},
		Holders: []string{"tripleholder"},
		Borders: []string{"tripleborder"},
		Sliders: []string{"tripleslider1", "tripleslider2", "tripleslider3"},
		Grids:   []string{"triplegrid"},
	},
	config.GlassFourfold: {
		Panels:  []string{"fourfoldglass1", "fourfoldglass2", "fourfoldglass3", "fourfoldglass4"},
		Holders: []string{"fourfoldholder"},
		Borders: []string{"fourfoldborder"},
		Sliders: []string{"fourfoldslider1", "fourfoldslider2", "fourfoldslider3", "fourfoldslider4"},
		Grids:   []string{"fourfoldgrid"},
	},
	config.GlassFivefold: {
		Panels:  []string{"fivefoldglass1", "fivefoldglass2", "fivefoldglass3", "fivefoldglass4", "fivefoldglass5"},
		Holders: []string{"fivefoldholder"},
		Borders: []string{"fivefoldborder"},
		Sliders: []string{"fivefoldslider1", "fivefoldslider2", "fivefoldslider3", "fivefoldslider4", "fivefoldslider5"},
		Grids:   []string{"fivefoldgrid"},
	},
	config.GlassSixfold: {
		Panels:  []string{"sixfoldglass1", "sixfoldglass2", "sixfoldglass3", "sixfoldglass4", "sixfoldglass5", "sixfoldglass6"},
		Holders: []string{"sixfoldholder"},
		Borders: []string{"sixfoldborder"},
		Sliders: []string{"sixfoldslider1", "sixfoldslider2", "sixfoldslider3", "sixfoldslider4", "sixfoldslider5", "sixfoldslider6"},
		Grids:   []string{"sixfoldgrid"},
	},
}

// glazingPart locates a base name inside the family tables.
type glazingPart struct {
	Family   config.GlassType
	Category PartCategory
}

// glazingParts maps every known glazing base name to its family and
// category, built once from glassFamilies.
var glazingParts = func() map[string]glazingPart {
	m := make(map[string]glazingPart)
	add := func(family config.GlassType, cat PartCategory, names []string) {
		for _, n := range names {
			m[n] = glazingPart{Family: family, Category: cat}
		}
	}
	for family, fp := range glassFamilies {
		add(family, CategoryPanel, fp.Panels)
		add(family, CategoryHolder, fp.Holders)
		add(family, CategoryBorder, fp.Borders)
		add(family, CategorySlider, fp.Sliders)
		add(family, CategoryGrid, fp.Grids)
	}
	return m
}()

// sideWallParts lists the base names of each non-glass wall set.
// These exist only as mirrored left/right instances.
var sideWallParts = map[config.WallMaterial][]string{
	config.WallMetal:  {"metalwall", "metalwalltrim"},
	config.WallWood:   {"woodwall", "woodwallbeam"},
	config.WallWindow: {"windowwall", "windowwallframe", "windowwallsill"},
}

// pillarScale keys the front corner pillar scale by the glazing family
// of the front wall; wider families use thicker pillar meshes.
var pillarScale = map[config.GlassType]float64{
	config.GlassDouble:   1.00,
	config.GlassTriple:   1.05,
	config.GlassFourfold: 1.12,
	config.GlassFivefold: 1.18,
	config.GlassSixfold:  1.25,
}

// pillarScaleDefault covers the open/no-glazing case, the sixth entry
// of the table.
const pillarScaleDefault = 1.0

// roofStretch is the extra horizontal stretch applied to the roof mesh
// and its glass/holder counterparts per glazing family, keeping
// multi-pane roofs visually consistent.
var roofStretch = map[config.GlassType]float64{
	config.GlassDouble:   1.000,
	config.GlassTriple:   1.006,
	config.GlassFourfold: 1.012,
	config.GlassFivefold: 1.020,
	config.GlassSixfold:  1.030,
}

const roofStretchDefault = 1.0

// Fixed structure node names.
const (
	nodeRoot = "veranda"

	nodeBackPillar1 = "backpillar1"
	nodeBackPillar2 = "backpillar2"
	nodeBackGlass   = "backglass"
	nodeBackHolder  = "backholder"

	nodeFrontPillar1 = "frontpillar1"
	nodeFrontPillar2 = "frontpillar2"

	// Flat roof mesh variants: the pitch-capable one is used against a
	// house wall, the normal one when freestanding.
	nodeRoofPitchable = "roofpitchable"
	nodeRoofNormal    = "roofnormal"
	nodeRoofGlass     = "roofglass"
	nodeRoofHolder1   = "roofholder1"
	nodeRoofHolder2   = "roofholder2"

	nodePitchRoof  = "pitchroof"
	nodePitchGlass = "pitchglass"
	nodePitchSide1 = "pitchside1"
	nodePitchSide2 = "pitchside2"
	nodePitchShade = "pitchshade"

	nodeAwningFlat   = "awningflat"
	nodeAwningPitch  = "awningpitch"
	nodeAwningFabric = "awningfabric"

	nodeLightCircle    = "lightcircle"
	nodeLightRectangle = "lightrectangle"
	nodeLightSquare    = "lightsquare"

	nodeFloor = "floor"
	nodeFence = "fence"
)

// backStructureParts always take the frame material when visible, even
// though backglass would otherwise hit the glass exclusion.
var backStructureParts = map[string]bool{
	nodeBackPillar1: true,
	nodeBackPillar2: true,
	nodeBackGlass:   true,
	nodeBackHolder:  true,
}

// houseNodes maps the companion house type to its asset mesh.
var houseNodes = map[config.HouseType]string{
	config.HouseTussenwoning: "housetussenwoning",
	config.HouseHoekwoning:   "househoekwoning",
	config.HouseVrijstaand:   "housevrijstaand",
}

// lightNodes maps the spot shape to its flat-roof mesh.
var lightNodes = map[config.LightShape]string{
	config.LightCircle:    nodeLightCircle,
	config.LightRectangle: nodeLightRectangle,
	config.LightSquare:    nodeLightSquare,
}

// FamilyPillarScale returns the pillar scale factor for a glazing
// family, or the default for the open case.
func FamilyPillarScale(g config.GlassType) float64 {
	if s, ok := pillarScale[g]; ok {
		return s
	}
	return pillarScaleDefault
}

// FamilyRoofStretch returns the roof stretch factor for a glazing
// family.
func FamilyRoofStretch(g config.GlassType) float64 {
	if s, ok := roofStretch[g]; ok {
		return s
	}
	return roofStretchDefault
}
