// Package interpret turns free text into a partial configuration with
// a fixed ordered battery of regular-expression detectors. It
// supplements the external AI service: cheap, deterministic, and never
// failing — an input matching nothing yields the defaults with an
// empty change list.
package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// Sane extraction ranges. Values outside are discarded, not clamped:
// a "30 meter" veranda is more likely a transcription artifact than a
// wish.
const (
	minHeight = 2.5
	maxHeight = 6.0
	minSpan   = 3.0
	maxSpan   = 15.0
)

// Result is the interpreted partial configuration: a full value plus
// the list of fields the text actually set.
type Result struct {
	Config  config.Configuration
	Changes []string
}

// Interpret runs the detector battery over the text. prev carries the
// previous turn's configuration for relative adjustments ("bigger",
// "taller"); nil means start from defaults.
func Interpret(text string, prev *config.Configuration) Result {
	cfg := config.Default()
	if prev != nil {
		cfg = *prev
	}
	r := Result{Config: cfg}

	detectColor(text, &r)
	familyMatched := detectFamily(text, &r)
	heightMatched := detectHeight(text, &r)
	widthMatched := detectSpans(text, &r)
	if !widthMatched {
		detectSizeAdjective(text, &r)
	}
	detectStyle(text, &r)
	detectEnclosure(text, &r)
	if !familyMatched {
		detectFamilyImplications(text, &r)
	}
	detectLighting(text, &r)
	detectPitch(text, &r)
	detectRelative(text, heightMatched, widthMatched, &r)

	return r
}

func (r *Result) set(field string) {
	for _, f := range r.Changes {
		if f == field {
			return
		}
	}
	r.Changes = append(r.Changes, field)
}

func (r *Result) setFamily(family config.GlassType) {
	r.Config.Sides.Front.GlassType = family
	r.Config.EnclosureEnabled = true
	r.Config.SelectedSide = config.SideFront
	r.set(config.FieldSelectedSide)
	r.set(config.FieldSideGlassTypeFront)
	r.set(config.FieldEnclosureEnabled)
}

func detectColor(text string, r *Result) {
	for _, p := range colorPatterns {
		if p.re.MatchString(text) {
			r.Config.MetalMaterial = p.color
			r.set(config.FieldMetalMaterial)
			return
		}
	}
	for _, p := range styleColorPatterns {
		if p.re.MatchString(text) {
			r.Config.MetalMaterial = p.color
			r.set(config.FieldMetalMaterial)
			return
		}
	}
}

func detectFamily(text string, r *Result) bool {
	for _, p := range familyPatterns {
		if p.re.MatchString(text) {
			r.setFamily(p.family)
			return true
		}
	}
	return false
}

func detectHeight(text string, r *Result) bool {
	if v, ok := firstNumber(text, heightAfterRe, heightBeforeRe); ok && v >= minHeight && v <= maxHeight {
		r.Config.Height = v
		r.set(config.FieldHeight)
		return true
	}
	return false
}

func detectSpans(text string, r *Result) bool {
	widthSet := false

	if m := crossRe.FindStringSubmatch(text); m != nil {
		w, errW := parseNum(m[1])
		d, errD := parseNum(m[2])
		if errW == nil && errD == nil && inSpan(w) && inSpan(d) {
			r.Config.Width = w
			r.Config.Depth = d
			r.set(config.FieldWidth)
			r.set(config.FieldDepth)
			widthSet = true
		}
	}

	if v, ok := firstNumber(text, widthAfterRe, widthBeforeRe); ok && inSpan(v) {
		r.Config.Width = v
		r.set(config.FieldWidth)
		widthSet = true
	}
	if v, ok := firstNumber(text, depthAfterRe, depthBeforeRe); ok && inSpan(v) {
		r.Config.Depth = v
		r.set(config.FieldDepth)
	}
	return widthSet
}

func detectSizeAdjective(text string, r *Result) {
	for _, p := range sizePatterns {
		if p.re.MatchString(text) {
			r.Config.Width = p.width
			r.Config.Depth = clampSpan(p.width * 0.75)
			r.set(config.FieldWidth)
			r.set(config.FieldDepth)
			return
		}
	}
}

func detectStyle(text string, r *Result) {
	switch {
	case styleGridRe.MatchString(text):
		r.Config.GlassStyle = config.StyleGrid
	case styleFramelessRe.MatchString(text):
		r.Config.GlassStyle = config.StyleOnlyGlass
	case styleFrameRe.MatchString(text):
		r.Config.GlassStyle = config.StyleWithFrame
	default:
		return
	}
	r.set(config.FieldGlassStyle)
}

func detectEnclosure(text string, r *Result) {
	switch {
	case enclosureClosedRe.MatchString(text):
		r.Config.EnclosureEnabled = true
		r.set(config.FieldEnclosureEnabled)
	case enclosureOpenRe.MatchString(text):
		r.Config.EnclosureEnabled = false
		r.set(config.FieldEnclosureEnabled)
	}
}

// detectFamilyImplications maps indirect wishes to a glazing family,
// only when no explicit family already matched.
func detectFamilyImplications(text string, r *Result) {
	switch {
	case slidingRe.MatchString(text):
		r.setFamily(config.GlassFourfold)
	case luxuryRe.MatchString(text):
		r.setFamily(config.GlassSixfold)
	case budgetRe.MatchString(text):
		r.setFamily(config.GlassDouble)
	}
}

func detectLighting(text string, r *Result) {
	if nightRe.MatchString(text) {
		r.Config.Lighting.On = true
		r.Config.Lighting.Mood = config.MoodNight
		if r.Config.Lighting.Count == 0 {
			r.Config.Lighting.Count = 4
			r.set(config.FieldLightCount)
		}
		r.set(config.FieldLightsOn)
		r.set(config.FieldLightMood)
		return
	}
	if dayRe.MatchString(text) {
		r.Config.Lighting.Mood = config.MoodDay
		r.set(config.FieldLightMood)
	}
	if lightsRe.MatchString(text) {
		r.Config.Lighting.On = true
		if r.Config.Lighting.Count == 0 {
			r.Config.Lighting.Count = 4
			r.set(config.FieldLightCount)
		}
		r.set(config.FieldLightsOn)
	}
}

func detectPitch(text string, r *Result) {
	if pitchRe.MatchString(text) {
		r.Config.RoofPitchActive = true
		if r.Config.RoofPitchAngle == 0 {
			r.Config.RoofPitchAngle = 10
			r.set(config.FieldRoofPitchAngle)
		}
		r.set(config.FieldRoofPitchActive)
	}
}

// detectRelative applies history-based adjustments last, bounded to
// the same ranges as absolute detection. Explicit numbers in the same
// sentence win over the relative words.
func detectRelative(text string, heightMatched, widthMatched bool, r *Result) {
	if !widthMatched {
		if biggerRe.MatchString(text) {
			r.Config.Width = clampSpan(r.Config.Width + 1)
			r.Config.Depth = clampSpan(r.Config.Depth + 1)
			r.set(config.FieldWidth)
			r.set(config.FieldDepth)
		} else if smallerRe.MatchString(text) {
			r.Config.Width = clampSpan(r.Config.Width - 1)
			r.Config.Depth = clampSpan(r.Config.Depth - 1)
			r.set(config.FieldWidth)
			r.set(config.FieldDepth)
		}
	}
	if !heightMatched {
		if tallerRe.MatchString(text) {
			r.Config.Height = clampHeight(r.Config.Height + 0.2)
			r.set(config.FieldHeight)
		} else if lowerRe.MatchString(text) {
			r.Config.Height = clampHeight(r.Config.Height - 0.2)
			r.set(config.FieldHeight)
		}
	}
}

func inSpan(v float64) bool {
	return v >= minSpan && v <= maxSpan
}

func clampSpan(v float64) float64 {
	if v < minSpan {
		return minSpan
	}
	if v > maxSpan {
		return maxSpan
	}
	return v
}

func clampHeight(v float64) float64 {
	if v < config.MinHeight {
		return config.MinHeight
	}
	if v > config.MaxHeight {
		return config.MaxHeight
	}
	return v
}

// firstNumber returns the first capture of the first matching pattern.
func firstNumber(text string, patterns ...*regexp.Regexp) (float64, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, err := parseNum(m[1]); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func parseNum(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
