package interpret

import (
	"math"
	"testing"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

func changed(r Result, field string) bool {
	for _, f := range r.Changes {
		if f == field {
			return true
		}
	}
	return false
}

func TestSixGlassRequest(t *testing.T) {
	r := Interpret("I want a six glass veranda", nil)

	if r.Config.Sides.Front.GlassType != config.GlassSixfold {
		t.Errorf("front glass type = %s, want sixfold", r.Config.Sides.Front.GlassType)
	}
	if !r.Config.EnclosureEnabled {
		t.Error("a glazing family request must enable the enclosure")
	}
	if r.Config.SelectedSide != config.SideFront {
		t.Errorf("selected side = %s, want front", r.Config.SelectedSide)
	}
	for _, f := range []string{config.FieldSideGlassTypeFront, config.FieldEnclosureEnabled, config.FieldSelectedSide} {
		if !changed(r, f) {
			t.Errorf("change list missing %s: %v", f, r.Changes)
		}
	}
}

func TestExplicitColorBeatsStyleAssociation(t *testing.T) {
	r := Interpret("modern black 7m wide", nil)

	if r.Config.MetalMaterial != config.MetalBlack {
		t.Errorf("metal = %s, want black (explicit word over modern's default)", r.Config.MetalMaterial)
	}
	if r.Config.Width != 7 {
		t.Errorf("width = %g, want 7", r.Config.Width)
	}
	if !changed(r, config.FieldMetalMaterial) || !changed(r, config.FieldWidth) {
		t.Errorf("change list incomplete: %v", r.Changes)
	}
}

func TestStyleAssociationAlone(t *testing.T) {
	r := Interpret("something modern please", nil)
	if r.Config.MetalMaterial != config.MetalBlack {
		t.Errorf("metal = %s, want black via modern", r.Config.MetalMaterial)
	}
}

func TestNoMatchYieldsDefaults(t *testing.T) {
	r := Interpret("the weather is nice today", nil)

	if len(r.Changes) != 0 {
		t.Errorf("change list = %v, want empty", r.Changes)
	}
	if r.Config != config.Default() {
		t.Errorf("config drifted from defaults: %+v", r.Config)
	}
}

func TestHigherFamilyWinsInOneSentence(t *testing.T) {
	r := Interpret("six fold, not four fold", nil)
	if r.Config.Sides.Front.GlassType != config.GlassSixfold {
		t.Errorf("front glass type = %s, want sixfold", r.Config.Sides.Front.GlassType)
	}
}

func TestBareNumberIsNotAFamily(t *testing.T) {
	r := Interpret("3 meters deep", nil)

	if changed(r, config.FieldSideGlassTypeFront) {
		t.Error("a bare dimension number must not read as a glazing family")
	}
	if r.Config.Depth != 3 {
		t.Errorf("depth = %g, want 3", r.Config.Depth)
	}
}

func TestSlidingImpliesFourfoldOnlyWithoutExplicitFamily(t *testing.T) {
	r := Interpret("with sliding doors", nil)
	if r.Config.Sides.Front.GlassType != config.GlassFourfold {
		t.Errorf("sliding alone: glass type = %s, want fourfold", r.Config.Sides.Front.GlassType)
	}

	r = Interpret("sliding six glass walls", nil)
	if r.Config.Sides.Front.GlassType != config.GlassSixfold {
		t.Errorf("explicit family must win over sliding: got %s", r.Config.Sides.Front.GlassType)
	}
}

func TestCrossDimension(t *testing.T) {
	r := Interpret("make it 5 x 3.5", nil)
	if r.Config.Width != 5 || r.Config.Depth != 3.5 {
		t.Errorf("got %g x %g, want 5 x 3.5", r.Config.Width, r.Config.Depth)
	}
}

func TestOutOfRangeDimensionDiscarded(t *testing.T) {
	r := Interpret("30 meters wide", nil)

	if changed(r, config.FieldWidth) {
		t.Errorf("implausible width must be discarded, not clamped: %v", r.Changes)
	}
	if r.Config.Width != config.Default().Width {
		t.Errorf("width = %g, want untouched default", r.Config.Width)
	}
}

func TestSizeAdjectiveYieldsToExplicitWidth(t *testing.T) {
	r := Interpret("a large veranda", nil)
	if r.Config.Width != 6.0 {
		t.Errorf("large: width = %g, want 6", r.Config.Width)
	}

	r = Interpret("a large veranda, 4m wide", nil)
	if r.Config.Width != 4 {
		t.Errorf("explicit width must beat the adjective: got %g", r.Config.Width)
	}
}

func TestRelativeAdjustmentsUsePreviousTurn(t *testing.T) {
	prev := config.Default()
	prev.Width = 5
	prev.Depth = 4
	prev.Height = 2.7

	r := Interpret("make it bigger and taller", &prev)
	if r.Config.Width != 6 || r.Config.Depth != 5 {
		t.Errorf("bigger: got %g x %g, want 6 x 5", r.Config.Width, r.Config.Depth)
	}
	if math.Abs(r.Config.Height-2.9) > 1e-9 {
		t.Errorf("taller: height = %g, want 2.9", r.Config.Height)
	}
}

func TestExplicitNumberBeatsRelativeWord(t *testing.T) {
	prev := config.Default()
	prev.Width = 5

	r := Interpret("bigger, say 8 meters wide", &prev)
	if r.Config.Width != 8 {
		t.Errorf("width = %g, want the explicit 8", r.Config.Width)
	}
}

func TestRelativeClampsAtRangeEdge(t *testing.T) {
	prev := config.Default()
	prev.Width = 15
	prev.Depth = 15

	r := Interpret("even bigger", &prev)
	if r.Config.Width != 15 || r.Config.Depth != 15 {
		t.Errorf("got %g x %g, want clamped at 15 x 15", r.Config.Width, r.Config.Depth)
	}
}

func TestNightMoodTurnsLightsOn(t *testing.T) {
	r := Interpret("cozy evening atmosphere", nil)

	if !r.Config.Lighting.On {
		t.Error("night mood must switch the lights on")
	}
	if r.Config.Lighting.Mood != config.MoodNight {
		t.Errorf("mood = %s, want night", r.Config.Lighting.Mood)
	}
	if r.Config.Lighting.Count != 4 {
		t.Errorf("count = %d, want the default 4 when none was set", r.Config.Lighting.Count)
	}
}

func TestPitchRequest(t *testing.T) {
	r := Interpret("a sloped roof would be nice", nil)

	if !r.Config.RoofPitchActive {
		t.Error("sloped must activate the roof pitch")
	}
	if r.Config.RoofPitchAngle != 10 {
		t.Errorf("angle = %g, want the default 10", r.Config.RoofPitchAngle)
	}
}

func TestEnclosureWords(t *testing.T) {
	r := Interpret("fully enclosed", nil)
	if !r.Config.EnclosureEnabled {
		t.Error("enclosed must enable the enclosure")
	}

	r = Interpret("keep the sides open", nil)
	if r.Config.EnclosureEnabled {
		t.Error("open must disable the enclosure")
	}
}

func TestDutchSynonyms(t *testing.T) {
	r := Interpret("antraciet frame, 4 meter breed", nil)

	if r.Config.MetalMaterial != config.MetalAnthracite {
		t.Errorf("metal = %s, want anthracite", r.Config.MetalMaterial)
	}
	if r.Config.Width != 4 {
		t.Errorf("width = %g, want 4", r.Config.Width)
	}
}

func TestChangeListDeduplicated(t *testing.T) {
	r := Interpret("six glass, luxury and premium", nil)

	seen := map[string]int{}
	for _, f := range r.Changes {
		seen[f]++
	}
	for f, n := range seen {
		if n > 1 {
			t.Errorf("field %s listed %d times", f, n)
		}
	}
}
