package config

// VerandaType selects the back-structure regime.
type VerandaType string

const (
	VerandaWallMounted  VerandaType = "wallmounted"
	VerandaFreestanding VerandaType = "freestanding"
)

// MetalMaterial is the frame color of the structure.
type MetalMaterial string

const (
	MetalAnthracite MetalMaterial = "anthracite"
	MetalBlack      MetalMaterial = "black"
	MetalGrey       MetalMaterial = "grey"
	MetalWhite      MetalMaterial = "white"
)

// GlassType is a glazing family: how many sliding panels make up a wall.
type GlassType string

const (
	GlassDouble   GlassType = "double"
	GlassTriple   GlassType = "triple"
	GlassFourfold GlassType = "fourfold"
	GlassFivefold GlassType = "fivefold"
	GlassSixfold  GlassType = "sixfold"
)

// GlassTypes lists the glazing families in ascending panel count.
var GlassTypes = []GlassType{GlassDouble, GlassTriple, GlassFourfold, GlassFivefold, GlassSixfold}

// GlassStyle selects the finish of a glazed wall.
type GlassStyle string

const (
	StyleWithFrame GlassStyle = "withframe"
	StyleOnlyGlass GlassStyle = "onlyglass"
	StyleGrid      GlassStyle = "grid"
)

// WallMaterial is the infill of an enclosure side.
type WallMaterial string

const (
	WallOpen   WallMaterial = "open"
	WallGlass  WallMaterial = "glass"
	WallMetal  WallMaterial = "metal"
	WallWood   WallMaterial = "wood"
	WallWindow WallMaterial = "window"
)

// Side addresses one wall position of the enclosure.
type Side string

const (
	SideFront Side = "front"
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideNone  Side = "none"
)

// AwningPosition places the sun awning.
type AwningPosition string

const (
	AwningNone AwningPosition = "none"
	AwningTop  AwningPosition = "top"
)

// GlassColor keys the glass tint table.
type GlassColor string

const (
	TintClear  GlassColor = "clear"
	TintBronze GlassColor = "bronze"
	TintGrey   GlassColor = "grey"
	TintBlue   GlassColor = "blue"
	TintGreen  GlassColor = "green"
)

// LightShape selects the flat-roof spot mesh.
type LightShape string

const (
	LightCircle    LightShape = "circle"
	LightRectangle LightShape = "rectangle"
	LightSquare    LightShape = "square"
)

// LightMood switches the light material between matte and emissive.
type LightMood string

const (
	MoodDay   LightMood = "day"
	MoodNight LightMood = "night"
)

// HouseType selects the companion house asset and its preset bundle.
type HouseType string

const (
	HouseTussenwoning HouseType = "tussenwoning"
	HouseHoekwoning   HouseType = "hoekwoning"
	HouseVrijstaand   HouseType = "vrijstaand"
)

// RoofType is the roof sheet material, used for pricing.
type RoofType string

const (
	RoofPolycarbonate RoofType = "polycarbonate"
	RoofGlass         RoofType = "glass"
)

// SideEnclosure is the per-side wall state.
type SideEnclosure struct {
	Material  WallMaterial `yaml:"material" json:"material"`
	GlassType GlassType    `yaml:"glass_type" json:"glass_type"`
}

// Sides holds the three independently configurable enclosure walls.
type Sides struct {
	Front SideEnclosure `yaml:"front" json:"front"`
	Left  SideEnclosure `yaml:"left" json:"left"`
	Right SideEnclosure `yaml:"right" json:"right"`
}

// Get returns the enclosure state for a side. The front entry is
// returned for any side that is not left or right.
func (s Sides) Get(side Side) SideEnclosure {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	default:
		return s.Front
	}
}

// Set replaces the enclosure state for a side.
func (s *Sides) Set(side Side, enc SideEnclosure) {
	switch side {
	case SideLeft:
		s.Left = enc
	case SideRight:
		s.Right = enc
	case SideFront:
		s.Front = enc
	}
}

// Lighting groups the roof spot settings.
type Lighting struct {
	On    bool       `yaml:"on" json:"on"`
	Count int        `yaml:"count" json:"count"`
	Shape LightShape `yaml:"shape" json:"shape"`
	Color string     `yaml:"color" json:"color"`
	Mood  LightMood  `yaml:"mood" json:"mood"`
}

// Configuration is the canonical description of one buildable structure.
// It is immutable by convention: every change produces a replacement via
// Merge rather than mutating shared state.
type Configuration struct {
	Model    string   `yaml:"model" json:"model"`
	RoofType RoofType `yaml:"roof_type" json:"roof_type"`

	Width  float64 `yaml:"width" json:"width"`   // meters
	Depth  float64 `yaml:"depth" json:"depth"`   // meters
	Height float64 `yaml:"height" json:"height"` // meters

	VerandaType   VerandaType   `yaml:"veranda_type" json:"veranda_type"`
	MetalMaterial MetalMaterial `yaml:"metal_material" json:"metal_material"`

	RoofPitchActive    bool           `yaml:"roof_pitch_active" json:"roof_pitch_active"`
	RoofPitchAngle     float64        `yaml:"roof_pitch_angle" json:"roof_pitch_angle"` // degrees
	RoofAwningPosition AwningPosition `yaml:"roof_awning_position" json:"roof_awning_position"`

	EnclosureEnabled bool  `yaml:"enclosure_enabled" json:"enclosure_enabled"`
	SelectedSide     Side  `yaml:"selected_side" json:"selected_side"`
	Sides            Sides `yaml:"sides" json:"sides"`

	GlassStyle         GlassStyle `yaml:"glass_style" json:"glass_style"`
	TintedGlassEnabled bool       `yaml:"tinted_glass_enabled" json:"tinted_glass_enabled"`
	GlassColor         GlassColor `yaml:"glass_color" json:"glass_color"`

	Lighting Lighting `yaml:"lighting" json:"lighting"`

	HouseType HouseType `yaml:"house_type" json:"house_type"`
}

// Dimension ranges accepted at the input boundary. Values outside are
// clamped, never rejected.
const (
	MinWidth  = 3.0
	MaxWidth  = 15.0
	MinDepth  = 3.0
	MaxDepth  = 15.0
	MinHeight = 2.2
	MaxHeight = 3.5

	MinPitchAngle = 0.0
	MaxPitchAngle = 15.0
)

// Default returns the configuration every session starts from and every
// unknown key falls back to: double glazing, anthracite frame, clear glass.
func Default() Configuration {
	return Configuration{
		Model:    "castor",
		RoofType: RoofPolycarbonate,

		Width:  4.0,
		Depth:  3.0,
		Height: 2.7,

		VerandaType:   VerandaWallMounted,
		MetalMaterial: MetalAnthracite,

		RoofPitchActive:    false,
		RoofPitchAngle:     0,
		RoofAwningPosition: AwningNone,

		EnclosureEnabled: false,
		SelectedSide:     SideNone,
		Sides: Sides{
			Front: SideEnclosure{Material: WallGlass, GlassType: GlassDouble},
			Left:  SideEnclosure{Material: WallOpen, GlassType: GlassDouble},
			Right: SideEnclosure{Material: WallOpen, GlassType: GlassDouble},
		},

		GlassStyle:         StyleWithFrame,
		TintedGlassEnabled: false,
		GlassColor:         TintClear,

		Lighting: Lighting{
			On:    false,
			Count: 0,
			Shape: LightCircle,
			Color: "#ffffff",
			Mood:  MoodDay,
		},

		HouseType: HouseTussenwoning,
	}
}

// NormalizeGlassType maps unknown family keys to the documented default.
func NormalizeGlassType(g GlassType) GlassType {
	switch g {
	case GlassDouble, GlassTriple, GlassFourfold, GlassFivefold, GlassSixfold:
		return g
	default:
		return GlassDouble
	}
}

// NormalizeMetal maps unknown frame colors to the documented default.
func NormalizeMetal(m MetalMaterial) MetalMaterial {
	switch m {
	case MetalAnthracite, MetalBlack, MetalGrey, MetalWhite:
		return m
	default:
		return MetalAnthracite
	}
}

// NormalizeTint maps unknown tint keys to clear.
func NormalizeTint(c GlassColor) GlassColor {
	switch c {
	case TintClear, TintBronze, TintGrey, TintBlue, TintGreen:
		return c
	default:
		return TintClear
	}
}
