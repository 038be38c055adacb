package config

// HousePreset bundles the smart defaults applied when the companion
// house type changes.
type HousePreset struct {
	Width        float64
	Depth        float64
	VerandaType  VerandaType
	SideMaterial WallMaterial // applied to left and right
	FenceVisible bool
}

// housePresets maps each house type to its bundle. A terraced house
// (tussenwoning) is hemmed in on both sides, a corner house (hoekwoning)
// has one free side, a detached house (vrijstaand) stands alone.
var housePresets = map[HouseType]HousePreset{
	HouseTussenwoning: {
		Width:        4.0,
		Depth:        3.0,
		VerandaType:  VerandaWallMounted,
		SideMaterial: WallOpen,
		FenceVisible: true,
	},
	HouseHoekwoning: {
		Width:        5.0,
		Depth:        3.5,
		VerandaType:  VerandaWallMounted,
		SideMaterial: WallOpen,
		FenceVisible: true,
	},
	HouseVrijstaand: {
		Width:        6.0,
		Depth:        4.0,
		VerandaType:  VerandaFreestanding,
		SideMaterial: WallOpen,
		FenceVisible: false,
	},
}

// PresetFor returns the default bundle for a house type. Unknown types
// get the tussenwoning bundle.
func PresetFor(h HouseType) HousePreset {
	if p, ok := housePresets[h]; ok {
		return p
	}
	return housePresets[HouseTussenwoning]
}

// FenceVisible reports whether the garden fence is shown for the
// configured house type.
func (c Configuration) FenceVisible() bool {
	return PresetFor(c.HouseType).FenceVisible
}

// ApplyHousePreset returns a copy of cfg switched to the given house
// type with the preset bundle applied.
func ApplyHousePreset(cfg Configuration, h HouseType) Configuration {
	p := PresetFor(h)
	cfg.HouseType = h
	cfg.Width = p.Width
	cfg.Depth = p.Depth
	cfg.VerandaType = p.VerandaType
	cfg.Sides.Left.Material = p.SideMaterial
	cfg.Sides.Right.Material = p.SideMaterial
	return cfg
}
