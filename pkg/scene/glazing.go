package scene

import "github.com/tuinmax/verandaplanner/pkg/config"

// effectiveEnclosure returns the wall state actually built for a side:
// the enclosure gate turns every side open, and the front side only
// exists as glazing.
func effectiveEnclosure(cfg config.Configuration, side config.Side) config.SideEnclosure {
	enc := cfg.Sides.Get(side)
	if !cfg.EnclosureEnabled {
		enc.Material = config.WallOpen
		return enc
	}
	if side == config.SideFront {
		enc.Material = config.WallGlass
	}
	return enc
}

// passGlazing resolves glass family visibility per side. Each indexed
// node that belongs to any family is shown only if its own side is
// glazed, its base name belongs to that side's selected family, and its
// category's style sub-rule holds. Everything else in the family tables
// is hidden, which keeps the families mutually exclusive per side.
func passGlazing(cfg config.Configuration, idx *Index, states TargetStates) {
	glassMat := GlassMaterial(cfg)

	for name, pid := range idx.Parts {
		gp, ok := glazingParts[pid.Base]
		if !ok {
			continue
		}

		enc := effectiveEnclosure(cfg, pid.Side)
		if enc.Material != config.WallGlass {
			states.hide(name)
			continue
		}
		if gp.Family != config.NormalizeGlassType(enc.GlassType) {
			states.hide(name)
			continue
		}

		switch gp.Category {
		case CategoryBorder:
			states.setVisible(name, cfg.GlassStyle == config.StyleWithFrame || cfg.GlassStyle == config.StyleGrid)
		case CategoryGrid:
			states.setVisible(name, cfg.GlassStyle == config.StyleGrid)
		case CategoryPanel:
			states.show(name)
			states.setMaterial(name, glassMat)
		default:
			// Holders and sliders always show with their family.
			states.show(name)
		}
	}
}

// passSideWalls resolves the non-glass wall sets for left and right.
// A side with a metal, wood or window wall shows exactly that set; the
// other two sets stay hidden. The front never reaches this pass.
func passSideWalls(cfg config.Configuration, states TargetStates) {
	for _, side := range []config.Side{config.SideLeft, config.SideRight} {
		enc := effectiveEnclosure(cfg, side)
		suffix := sideSuffix(side)

		for material, parts := range sideWallParts {
			visible := enc.Material == material
			for _, base := range parts {
				states.setVisible(base+suffix, visible)
			}
		}
	}
}

func sideSuffix(side config.Side) string {
	switch side {
	case config.SideLeft:
		return suffixLeft
	case config.SideRight:
		return suffixRight
	default:
		return ""
	}
}
