package config

import (
	"fmt"

	"github.com/tuinmax/verandaplanner/pkg/validation"
)

// Validate checks a configuration against the schema and business rules.
// It never mutates; callers that want the repaired value use Sanitize.
func Validate(cfg *Configuration) *validation.Report {
	report := validation.NewReport()

	checkRange(report, "width", cfg.Width, MinWidth, MaxWidth)
	checkRange(report, "depth", cfg.Depth, MinDepth, MaxDepth)
	checkRange(report, "height", cfg.Height, MinHeight, MaxHeight)

	if cfg.Width <= 0 || cfg.Depth <= 0 || cfg.Height <= 0 {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "footprint dimensions must all be positive",
			Field:   "width/depth/height",
		})
	}

	switch cfg.VerandaType {
	case VerandaWallMounted, VerandaFreestanding:
	default:
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "unknown veranda type",
			Field:       "veranda_type",
			ActualValue: string(cfg.VerandaType),
			Expected:    "wallmounted or freestanding",
		})
	}

	if cfg.RoofPitchActive {
		checkRange(report, "roof_pitch_angle", cfg.RoofPitchAngle, MinPitchAngle, MaxPitchAngle)
	}

	if cfg.Sides.Front.Material != WallGlass {
		report.AddError(validation.Result{
			Level:       validation.LevelBusiness,
			Message:     "front side can only be glazed",
			Field:       "sides.front.material",
			ActualValue: string(cfg.Sides.Front.Material),
			Expected:    string(WallGlass),
		})
	}

	if cfg.Lighting.Count < 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "light count cannot be negative",
			Field:       "lighting.count",
			ActualValue: cfg.Lighting.Count,
		})
	}

	if NormalizeMetal(cfg.MetalMaterial) != cfg.MetalMaterial {
		report.AddInfo(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "unknown metal material, anthracite will be used",
			Field:       "metal_material",
			ActualValue: string(cfg.MetalMaterial),
		})
	}
	for _, side := range []Side{SideFront, SideLeft, SideRight} {
		enc := cfg.Sides.Get(side)
		if NormalizeGlassType(enc.GlassType) != enc.GlassType {
			report.AddInfo(validation.Result{
				Level:       validation.LevelSchema,
				Message:     "unknown glass family, double will be used",
				Field:       fmt.Sprintf("sides.%s.glass_type", side),
				ActualValue: string(enc.GlassType),
			})
		}
	}
	if NormalizeTint(cfg.GlassColor) != cfg.GlassColor {
		report.AddInfo(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "unknown glass tint, clear will be used",
			Field:       "glass_color",
			ActualValue: string(cfg.GlassColor),
		})
	}

	return report
}

// Sanitize returns a copy of cfg with every out-of-range or unknown
// value replaced by its documented fallback. The engines assume
// sanitized input but survive raw input too.
func Sanitize(cfg Configuration) Configuration {
	cfg.Width = clamp(cfg.Width, MinWidth, MaxWidth)
	cfg.Depth = clamp(cfg.Depth, MinDepth, MaxDepth)
	cfg.Height = clamp(cfg.Height, MinHeight, MaxHeight)
	cfg.RoofPitchAngle = clamp(cfg.RoofPitchAngle, MinPitchAngle, MaxPitchAngle)
	cfg.MetalMaterial = NormalizeMetal(cfg.MetalMaterial)
	cfg.GlassColor = NormalizeTint(cfg.GlassColor)
	cfg.Sides.Front.Material = WallGlass
	cfg.Sides.Front.GlassType = NormalizeGlassType(cfg.Sides.Front.GlassType)
	cfg.Sides.Left.GlassType = NormalizeGlassType(cfg.Sides.Left.GlassType)
	cfg.Sides.Right.GlassType = NormalizeGlassType(cfg.Sides.Right.GlassType)
	if cfg.Lighting.Count < 0 {
		cfg.Lighting.Count = 0
	}
	return cfg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func checkRange(report *validation.Report, field string, v, lo, hi float64) {
	if v < lo || v > hi {
		report.AddWarning(validation.Result{
			Level:       validation.LevelRange,
			Message:     fmt.Sprintf("%s outside buildable range", field),
			Field:       field,
			ActualValue: v,
			Expected:    fmt.Sprintf("[%g, %g]", lo, hi),
		})
	}
}
