package scene

import "github.com/tuinmax/verandaplanner/pkg/config"

// MaterialKind names a resolved material. The rendering adapter maps
// kinds to actual material resources; the engine only decides which
// kind each node should carry.
type MaterialKind string

// MaterialNone leaves the node's authored material untouched.
const MaterialNone MaterialKind = ""

const (
	MaterialFrameAnthracite MaterialKind = "frame_anthracite"
	MaterialFrameBlack      MaterialKind = "frame_black"
	MaterialFrameGrey       MaterialKind = "frame_grey"
	MaterialFrameWhite      MaterialKind = "frame_white"

	MaterialGlassClear  MaterialKind = "glass_clear"
	MaterialGlassBronze MaterialKind = "glass_bronze"
	MaterialGlassGrey   MaterialKind = "glass_grey"
	MaterialGlassBlue   MaterialKind = "glass_blue"
	MaterialGlassGreen  MaterialKind = "glass_green"

	MaterialLightDay   MaterialKind = "light_day"
	MaterialLightNight MaterialKind = "light_night" // emissive
)

// FrameMaterial resolves the frame color. Unknown keys fall back to
// anthracite.
func FrameMaterial(m config.MetalMaterial) MaterialKind {
	switch config.NormalizeMetal(m) {
	case config.MetalBlack:
		return MaterialFrameBlack
	case config.MetalGrey:
		return MaterialFrameGrey
	case config.MetalWhite:
		return MaterialFrameWhite
	default:
		return MaterialFrameAnthracite
	}
}

// GlassMaterial resolves the glazing material, tint-aware. Unknown tint
// keys fall back to clear.
func GlassMaterial(cfg config.Configuration) MaterialKind {
	if !cfg.TintedGlassEnabled {
		return MaterialGlassClear
	}
	switch config.NormalizeTint(cfg.GlassColor) {
	case config.TintBronze:
		return MaterialGlassBronze
	case config.TintGrey:
		return MaterialGlassGrey
	case config.TintBlue:
		return MaterialGlassBlue
	case config.TintGreen:
		return MaterialGlassGreen
	default:
		return MaterialGlassClear
	}
}

// LightMaterial resolves the spot material: emissive at night, matte by
// day.
func LightMaterial(mood config.LightMood) MaterialKind {
	if mood == config.MoodNight {
		return MaterialLightNight
	}
	return MaterialLightDay
}
