package config

import (
	"fmt"

	"github.com/tuinmax/verandaplanner/pkg/validation"
)

// Field names accepted by Merge. A partial configuration is a full
// Configuration value plus the list of fields that actually carry
// information; everything else in the patch is ignored.
const (
	FieldModel              = "model"
	FieldRoofType           = "roofType"
	FieldWidth              = "width"
	FieldDepth              = "depth"
	FieldHeight             = "height"
	FieldVerandaType        = "verandaType"
	FieldMetalMaterial      = "metalMaterial"
	FieldRoofPitchActive    = "roofPitchActive"
	FieldRoofPitchAngle     = "roofPitchAngle"
	FieldAwningPosition     = "roofAwningPosition"
	FieldEnclosureEnabled   = "enclosureEnabled"
	FieldSelectedSide       = "selectedSide"
	FieldGlassType          = "glassType" // family of the selected side
	FieldGlassStyle         = "glassStyle"
	FieldTintedGlass        = "tintedGlassEnabled"
	FieldGlassColor         = "glassColor"
	FieldLightsOn           = "lightsOn"
	FieldLightCount         = "lightCount"
	FieldLightShape         = "lightShape"
	FieldLightColor         = "lightColor"
	FieldLightMood          = "lightMood"
	FieldHouseType          = "houseType"
	FieldSideMaterialLeft   = "sides.left.material"
	FieldSideMaterialRight  = "sides.right.material"
	FieldSideGlassTypeFront = "sides.front.glassType"
	FieldSideGlassTypeLeft  = "sides.left.glassType"
	FieldSideGlassTypeRight = "sides.right.glassType"
)

// Merge applies the named fields of patch over base, clamping numeric
// values and enforcing business rules at the boundary. The returned
// report carries one finding per adjusted value; unknown field names are
// reported and skipped, never fatal.
func Merge(base Configuration, patch Configuration, fields []string) (Configuration, *validation.Report) {
	out := base
	report := validation.NewReport()

	for _, f := range fields {
		switch f {
		case FieldModel:
			out.Model = patch.Model
		case FieldRoofType:
			out.RoofType = patch.RoofType
		case FieldWidth:
			out.Width = clampDim(report, FieldWidth, patch.Width, MinWidth, MaxWidth)
		case FieldDepth:
			out.Depth = clampDim(report, FieldDepth, patch.Depth, MinDepth, MaxDepth)
		case FieldHeight:
			out.Height = clampDim(report, FieldHeight, patch.Height, MinHeight, MaxHeight)
		case FieldVerandaType:
			out.VerandaType = patch.VerandaType
		case FieldMetalMaterial:
			out.MetalMaterial = NormalizeMetal(patch.MetalMaterial)
		case FieldRoofPitchActive:
			out.RoofPitchActive = patch.RoofPitchActive
		case FieldRoofPitchAngle:
			out.RoofPitchAngle = clampDim(report, FieldRoofPitchAngle, patch.RoofPitchAngle, MinPitchAngle, MaxPitchAngle)
		case FieldAwningPosition:
			out.RoofAwningPosition = patch.RoofAwningPosition
		case FieldEnclosureEnabled:
			out.EnclosureEnabled = patch.EnclosureEnabled
		case FieldSelectedSide:
			out.SelectedSide = patch.SelectedSide
		case FieldGlassType:
			side := out.SelectedSide
			if side == SideNone {
				side = SideFront
			}
			enc := out.Sides.Get(side)
			enc.GlassType = NormalizeGlassType(patch.Sides.Get(side).GlassType)
			out.Sides.Set(side, enc)
		case FieldGlassStyle:
			out.GlassStyle = patch.GlassStyle
		case FieldTintedGlass:
			out.TintedGlassEnabled = patch.TintedGlassEnabled
		case FieldGlassColor:
			out.GlassColor = NormalizeTint(patch.GlassColor)
		case FieldLightsOn:
			out.Lighting.On = patch.Lighting.On
		case FieldLightCount:
			out.Lighting.Count = patch.Lighting.Count
			if out.Lighting.Count < 0 {
				out.Lighting.Count = 0
			}
		case FieldLightShape:
			out.Lighting.Shape = patch.Lighting.Shape
		case FieldLightColor:
			out.Lighting.Color = patch.Lighting.Color
		case FieldLightMood:
			out.Lighting.Mood = patch.Lighting.Mood
		case FieldHouseType:
			out = ApplyHousePreset(out, patch.HouseType)
		case FieldSideMaterialLeft:
			out.Sides.Left.Material = patch.Sides.Left.Material
		case FieldSideMaterialRight:
			out.Sides.Right.Material = patch.Sides.Right.Material
		case FieldSideGlassTypeFront:
			out.Sides.Front.GlassType = NormalizeGlassType(patch.Sides.Front.GlassType)
		case FieldSideGlassTypeLeft:
			out.Sides.Left.GlassType = NormalizeGlassType(patch.Sides.Left.GlassType)
		case FieldSideGlassTypeRight:
			out.Sides.Right.GlassType = NormalizeGlassType(patch.Sides.Right.GlassType)
		default:
			report.AddWarning(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("unknown configuration field %q ignored", f),
				Field:   f,
			})
		}
	}

	// The front wall only exists as glazing. Any patch that would put a
	// different material there is rewritten rather than rejected.
	if out.Sides.Front.Material != WallGlass {
		report.AddWarning(validation.Result{
			Level:       validation.LevelBusiness,
			Message:     "front side material forced to glass",
			Field:       "sides.front.material",
			ActualValue: string(out.Sides.Front.Material),
			Expected:    string(WallGlass),
		})
		out.Sides.Front.Material = WallGlass
	}

	return out, report
}

func clampDim(report *validation.Report, field string, v, lo, hi float64) float64 {
	if v < lo || v > hi {
		clamped := v
		if clamped < lo {
			clamped = lo
		}
		if clamped > hi {
			clamped = hi
		}
		report.AddWarning(validation.Result{
			Level:       validation.LevelRange,
			Message:     fmt.Sprintf("%s clamped to [%g, %g]", field, lo, hi),
			Field:       field,
			ActualValue: v,
			Expected:    fmt.Sprintf("[%g, %g]", lo, hi),
		})
		return clamped
	}
	return v
}
