package scene

import (
	"testing"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// familiesVisibleOnSide counts which glazing families have any visible
// part on the given side.
func familiesVisibleOnSide(states TargetStates, idx *Index, side config.Side) map[config.GlassType]bool {
	out := make(map[config.GlassType]bool)
	for name, pid := range idx.Parts {
		if pid.Side != side {
			continue
		}
		gp, ok := glazingParts[pid.Base]
		if !ok {
			continue
		}
		if st := states[name]; st != nil && st.Visible {
			out[gp.Family] = true
		}
	}
	return out
}

func TestOneFamilyPerSide(t *testing.T) {
	idx := demoIndex()

	cfg := glazedConfig() // front double, left triple, right sixfold
	states := Resolve(cfg, idx)

	cases := []struct {
		side config.Side
		want config.GlassType
	}{
		{config.SideFront, config.GlassDouble},
		{config.SideLeft, config.GlassTriple},
		{config.SideRight, config.GlassSixfold},
	}
	for _, tc := range cases {
		fams := familiesVisibleOnSide(states, idx, tc.side)
		if len(fams) != 1 || !fams[tc.want] {
			t.Errorf("side %s shows families %v, want exactly {%s}", tc.side, fams, tc.want)
		}
	}
}

func TestSuffixDisambiguation(t *testing.T) {
	idx := demoIndex()
	states := Resolve(glazedConfig(), idx)

	// The same logical part name resolves per side: the bare front
	// instance follows the front family, the 001/002 mirrors follow
	// their own sides.
	if !visible(t, states, "doubleglass1") {
		t.Error("front double panel must show")
	}
	if visible(t, states, "doubleglass1"+suffixLeft) {
		t.Error("left double panel must hide: left side is triple")
	}
	if !visible(t, states, "tripleglass1"+suffixLeft) {
		t.Error("left triple panel must show")
	}
	if visible(t, states, "tripleglass1"+suffixRight) {
		t.Error("right triple panel must hide: right side is sixfold")
	}
	if !visible(t, states, "sixfoldglass1"+suffixRight) {
		t.Error("right sixfold panel must show")
	}
}

func TestNonGlassSideHidesAllFamilies(t *testing.T) {
	idx := demoIndex()
	cfg := glazedConfig()
	cfg.Sides.Left.Material = config.WallWood

	states := Resolve(cfg, idx)

	if fams := familiesVisibleOnSide(states, idx, config.SideLeft); len(fams) != 0 {
		t.Errorf("wood side shows glazing families %v, want none", fams)
	}
	for _, base := range sideWallParts[config.WallWood] {
		if !visible(t, states, base+suffixLeft) {
			t.Errorf("wood part %q must show on the left", base)
		}
	}
	for _, base := range sideWallParts[config.WallMetal] {
		if visible(t, states, base+suffixLeft) {
			t.Errorf("metal part %q must hide on the wood side", base)
		}
	}
	// The right side is untouched by the left side's material.
	if fams := familiesVisibleOnSide(states, idx, config.SideRight); !fams[config.GlassSixfold] {
		t.Error("right side glazing must be unaffected")
	}
}

func TestEnclosureGateHidesEverything(t *testing.T) {
	idx := demoIndex()
	cfg := glazedConfig()
	cfg.EnclosureEnabled = false
	cfg.Sides.Left.Material = config.WallMetal

	states := Resolve(cfg, idx)

	for _, side := range []config.Side{config.SideFront, config.SideLeft, config.SideRight} {
		if fams := familiesVisibleOnSide(states, idx, side); len(fams) != 0 {
			t.Errorf("gated side %s shows glazing %v", side, fams)
		}
	}
	for _, base := range sideWallParts[config.WallMetal] {
		if visible(t, states, base+suffixLeft) {
			t.Errorf("gated metal part %q visible", base)
		}
	}
}

func TestStyleSubRules(t *testing.T) {
	idx := demoIndex()

	cfg := glazedConfig()
	cfg.GlassStyle = config.StyleOnlyGlass
	states := Resolve(cfg, idx)
	if visible(t, states, "doubleborder") {
		t.Error("border parts must hide for onlyglass style")
	}
	if visible(t, states, "doublegrid") {
		t.Error("grid parts must hide for onlyglass style")
	}
	if !visible(t, states, "doubleholder") || !visible(t, states, "doubleslider1") {
		t.Error("holder and slider parts always show with their family")
	}

	cfg.GlassStyle = config.StyleWithFrame
	states = Resolve(cfg, idx)
	if !visible(t, states, "doubleborder") {
		t.Error("border parts must show for withframe style")
	}
	if visible(t, states, "doublegrid") {
		t.Error("grid parts must hide for withframe style")
	}

	cfg.GlassStyle = config.StyleGrid
	states = Resolve(cfg, idx)
	if !visible(t, states, "doubleborder") || !visible(t, states, "doublegrid") {
		t.Error("border and grid parts must show for grid style")
	}
}

func TestFrontSideForcedToGlass(t *testing.T) {
	idx := demoIndex()
	cfg := glazedConfig()
	// Raw input with an illegal front material must still render a
	// glazed front.
	cfg.Sides.Front.Material = config.WallWood

	states := Resolve(cfg, idx)
	if fams := familiesVisibleOnSide(states, idx, config.SideFront); !fams[config.GlassDouble] {
		t.Error("front side must stay glazed regardless of patched material")
	}
}

func TestPartIDParsing(t *testing.T) {
	cases := []struct {
		name string
		want PartID
	}{
		{"doubleglass1", PartID{Base: "doubleglass1", Side: config.SideFront}},
		{"doubleglass1001", PartID{Base: "doubleglass1", Side: config.SideLeft}},
		{"doubleglass1002", PartID{Base: "doubleglass1", Side: config.SideRight}},
		{"roofglass", PartID{Base: "roofglass", Side: config.SideFront}},
		{"metalwall002", PartID{Base: "metalwall", Side: config.SideRight}},
	}
	for _, tc := range cases {
		if got := ParsePartID(tc.name); got != tc.want {
			t.Errorf("ParsePartID(%q) = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
