package interpret

import (
	"regexp"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// Explicit frame color names, checked before the style-association
// fallbacks so "modern black" reads as black, not modern's default.
var colorPatterns = []struct {
	re    *regexp.Regexp
	color config.MetalMaterial
}{
	{regexp.MustCompile(`(?i)\b(anthracite|antraciet|charcoal)\b`), config.MetalAnthracite},
	{regexp.MustCompile(`(?i)\b(black|zwart)\b`), config.MetalBlack},
	{regexp.MustCompile(`(?i)\b(gr[ea]y|grijs)\b`), config.MetalGrey},
	{regexp.MustCompile(`(?i)\b(white|wit|cream)\b`), config.MetalWhite},
}

var styleColorPatterns = []struct {
	re    *regexp.Regexp
	color config.MetalMaterial
}{
	{regexp.MustCompile(`(?i)\b(modern|sleek|minimal\w*)\b`), config.MetalBlack},
	{regexp.MustCompile(`(?i)\b(classic|klassiek|traditional)\b`), config.MetalWhite},
	{regexp.MustCompile(`(?i)\b(industrial|rustic)\b`), config.MetalAnthracite},
}

// Glass family detectors. Higher counts are checked first so "four"
// inside a sentence that also says "six" never wins.
var familyPatterns = []struct {
	re     *regexp.Regexp
	family config.GlassType
}{
	{regexp.MustCompile(`(?i)\b(six|6)[ -]?(fold|panels?|panes?|glass|glas)\b`), config.GlassSixfold},
	{regexp.MustCompile(`(?i)\b(five|5)[ -]?(fold|panels?|panes?|glass|glas)\b`), config.GlassFivefold},
	{regexp.MustCompile(`(?i)\b(four|4)[ -]?(fold|panels?|panes?|glass|glas)\b`), config.GlassFourfold},
	{regexp.MustCompile(`(?i)\btriple\b|\b(three|3)[ -]?(fold|panels?|panes?|glass|glas)\b`), config.GlassTriple},
	{regexp.MustCompile(`(?i)\bdouble\b|\b(two|2)[ -]?(fold|panels?|panes?|glass|glas)\b`), config.GlassDouble},
}

// Numeric dimension detectors. Keyword-anchored per axis, so a value
// with the wrong surrounding context words never lands on this axis.
var (
	heightAfterRe  = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:m\b|meters?\b|metres?\b)?\s*(?:high|tall|hoog|in height)`)
	heightBeforeRe = regexp.MustCompile(`(?i)\bheight\s*(?:of|:)?\s*(\d+(?:[.,]\d+)?)`)

	widthAfterRe  = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:m\b|meters?\b|metres?\b)?\s*(?:wide|breed|in width)`)
	widthBeforeRe = regexp.MustCompile(`(?i)\bwidth\s*(?:of|:)?\s*(\d+(?:[.,]\d+)?)`)

	depthAfterRe  = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:m\b|meters?\b|metres?\b)?\s*(?:deep|diep|in depth)`)
	depthBeforeRe = regexp.MustCompile(`(?i)\bdepth\s*(?:of|:)?\s*(\d+(?:[.,]\d+)?)`)

	crossRe = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:m\b|meters?\b)?\s*(?:x|by|×)\s*(\d+(?:[.,]\d+)?)`)
)

// Size adjective fallback, used only without an explicit numeric width.
var sizePatterns = []struct {
	re    *regexp.Regexp
	width float64
}{
	{regexp.MustCompile(`(?i)\b(tiny|mini)\b`), 3.0},
	{regexp.MustCompile(`(?i)\b(small|compact|klein)\b`), 3.5},
	{regexp.MustCompile(`(?i)\b(medium|average)\b`), 4.5},
	{regexp.MustCompile(`(?i)\b(large|big|groot)\b`), 6.0},
	{regexp.MustCompile(`(?i)\b(huge|enormous|massive)\b`), 7.5},
}

var (
	styleFrameRe     = regexp.MustCompile(`(?i)\b(with\s+frames?|framed)\b`)
	styleFramelessRe = regexp.MustCompile(`(?i)\b(frameless|only\s+glass|seamless)\b`)
	styleGridRe      = regexp.MustCompile(`(?i)\b(grid|grille|bars|muntins)\b`)

	enclosureClosedRe = regexp.MustCompile(`(?i)\b(closed|enclosed|glazed|wind\w*proof)\b`)
	enclosureOpenRe   = regexp.MustCompile(`(?i)\bopen\b`)

	slidingRe = regexp.MustCompile(`(?i)\bslid(?:e|es|ing)\b`)
	luxuryRe  = regexp.MustCompile(`(?i)\b(luxur\w*|premium|high[ -]end)\b`)
	budgetRe  = regexp.MustCompile(`(?i)\b(budget|cheap|basic|affordable)\b`)

	nightRe  = regexp.MustCompile(`(?i)\b(night|evening|cou?zy|sfeer\w*|ambiance|mood)\b`)
	dayRe    = regexp.MustCompile(`(?i)\b(day(?:light)?|bright)\b`)
	lightsRe = regexp.MustCompile(`(?i)\b(lights?|lighting|spots?|leds?)\b`)

	pitchRe = regexp.MustCompile(`(?i)\b(pitch\w*|slop\w*|angled|tilted|schuin)\b`)

	biggerRe  = regexp.MustCompile(`(?i)\b(bigger|larger|groter|wider)\b`)
	smallerRe = regexp.MustCompile(`(?i)\b(smaller|kleiner|narrower)\b`)
	tallerRe  = regexp.MustCompile(`(?i)\b(taller|higher|hoger)\b`)
	lowerRe   = regexp.MustCompile(`(?i)\b(lower|shorter|lager)\b`)
)
