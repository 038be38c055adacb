package scene

import (
	"math"
	"strings"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// NodeState is the freshly derived target state for one node.
type NodeState struct {
	Visible   bool         `json:"visible"`
	Material  MaterialKind `json:"material,omitempty"`
	Transform Transform    `json:"transform"`
}

// TargetStates maps node name to its target state. Writes through the
// helper methods are no-ops for names the asset does not carry.
type TargetStates map[string]*NodeState

func (s TargetStates) setVisible(name string, visible bool) {
	if st, ok := s[name]; ok {
		st.Visible = visible
	}
}

func (s TargetStates) show(name string) { s.setVisible(name, true) }
func (s TargetStates) hide(name string) { s.setVisible(name, false) }

func (s TargetStates) setMaterial(name string, m MaterialKind) {
	if st, ok := s[name]; ok {
		st.Material = m
	}
}

func (s TargetStates) mutate(name string, f func(*NodeState)) {
	if st, ok := s[name]; ok {
		f(st)
	}
}

// Reference dimensions of the authored asset in meters. The
// proportional scaling pass stretches the model from these.
const (
	WidthRef  = 3.0
	HeightRef = 3.0
	DepthRef  = 3.0
)

// Angle-driven pitch roof deformation, per degree of pitch.
const (
	pitchGlassScalePerDeg = 0.012
	pitchSideScalePerDeg  = 0.008
)

// Awning placement offsets relative to the authored position.
const (
	awningLiftY      = 0.12
	awningForwardZ   = 0.25
	awningLiftPerDeg = 0.01
)

// Resolve computes the target state of every indexed node from scratch.
// It is pure and memoryless: no state survives between calls, so stale
// state from a previous configuration can never persist. Later passes
// deliberately override earlier ones for the same node.
func Resolve(cfg config.Configuration, idx *Index) TargetStates {
	cfg = config.Sanitize(cfg)

	states := make(TargetStates, len(idx.Names))
	for _, name := range idx.Names {
		states[name] = &NodeState{
			Visible:   true,
			Material:  MaterialNone,
			Transform: idx.Original(name),
		}
	}

	passStructural(cfg, states)
	passPillars(cfg, idx, states)
	passGlazing(cfg, idx, states)
	passSideWalls(cfg, states)
	passRoofPitch(cfg, idx, states)
	passAwning(cfg, idx, states)
	passLighting(cfg, states)
	passRoofTint(cfg, states)
	passHouse(cfg, states)
	passFrameColor(cfg, idx, states)
	passScaling(cfg, idx, states)

	return states
}

// passStructural decides back-wall visibility and the flat roof mesh
// choice purely from the veranda type. Wall-mounted structures lean on
// the house: no physical back, pitch-capable flat roof.
func passStructural(cfg config.Configuration, states TargetStates) {
	wallMounted := cfg.VerandaType == config.VerandaWallMounted

	states.setVisible(nodeBackPillar1, !wallMounted)
	states.setVisible(nodeBackPillar2, !wallMounted)
	states.setVisible(nodeBackGlass, !wallMounted)
	states.setVisible(nodeBackHolder, !wallMounted)

	states.setVisible(nodeRoofPitchable, wallMounted)
	states.setVisible(nodeRoofNormal, !wallMounted)
}

// flatRoofVariant names the flat roof mesh the structural regime uses.
func flatRoofVariant(cfg config.Configuration) (show, hide string) {
	if cfg.VerandaType == config.VerandaWallMounted {
		return nodeRoofPitchable, nodeRoofNormal
	}
	return nodeRoofNormal, nodeRoofPitchable
}

// passPillars scales the front corner pillars by the front wall's
// glazing family; wider families use thicker pillar meshes.
func passPillars(cfg config.Configuration, idx *Index, states TargetStates) {
	factor := pillarScaleDefault
	if enc := effectiveEnclosure(cfg, config.SideFront); enc.Material == config.WallGlass {
		factor = FamilyPillarScale(enc.GlassType)
	}

	for _, name := range []string{nodeFrontPillar1, nodeFrontPillar2} {
		orig := idx.Original(name)
		states.mutate(name, func(st *NodeState) {
			st.Transform.Scale = Vec3{
				X: orig.Scale.X * factor,
				Y: orig.Scale.Y * factor,
				Z: orig.Scale.Z * factor,
			}
		})
	}
}

// passRoofPitch switches between the mutually exclusive pitched and
// flat roof regimes and applies the angle-driven deformation.
func passRoofPitch(cfg config.Configuration, idx *Index, states TargetStates) {
	pitchMeshes := []string{nodePitchRoof, nodePitchGlass, nodePitchSide1, nodePitchSide2, nodePitchShade}

	if !cfg.RoofPitchActive {
		for _, n := range pitchMeshes {
			states.hide(n)
		}
		show, hide := flatRoofVariant(cfg)
		states.show(show)
		states.hide(hide)
		return
	}

	states.hide(nodeRoofPitchable)
	states.hide(nodeRoofNormal)

	angle := cfg.RoofPitchAngle
	rot := -angle * math.Pi / 180

	for _, n := range pitchMeshes {
		orig := idx.Original(n)
		states.mutate(n, func(st *NodeState) {
			st.Visible = true
			st.Transform.Rotation = Vec3{X: rot, Y: orig.Rotation.Y, Z: orig.Rotation.Z}
		})
	}

	states.mutate(nodePitchGlass, func(st *NodeState) {
		orig := idx.Original(nodePitchGlass)
		st.Transform.Scale.Y = orig.Scale.Y * (1 + angle*pitchGlassScalePerDeg)
	})
	for _, n := range []string{nodePitchSide1, nodePitchSide2} {
		orig := idx.Original(n)
		states.mutate(n, func(st *NodeState) {
			st.Transform.Scale.Z = orig.Scale.Z * (1 + angle*pitchSideScalePerDeg)
		})
	}
}

// passAwning shows the awning pair matching the roof regime and offsets
// it from the authored position: fixed lift and forward shift plus an
// angle-proportional extra lift.
func passAwning(cfg config.Configuration, idx *Index, states TargetStates) {
	if cfg.RoofAwningPosition != config.AwningTop {
		states.hide(nodeAwningFlat)
		states.hide(nodeAwningPitch)
		return
	}

	show, hide := nodeAwningFlat, nodeAwningPitch
	if cfg.RoofPitchActive {
		show, hide = nodeAwningPitch, nodeAwningFlat
	}
	states.hide(hide)

	orig := idx.Original(show)
	states.mutate(show, func(st *NodeState) {
		st.Visible = true
		st.Transform.Position = Vec3{
			X: orig.Position.X,
			Y: orig.Position.Y + awningLiftY + cfg.RoofPitchAngle*awningLiftPerDeg,
			Z: orig.Position.Z + awningForwardZ,
		}
	})
}

// passLighting resolves the flat-roof spots. Lights only exist on the
// flat roof; among the shapes exactly the selected one shows, and only
// when switched on.
func passLighting(cfg config.Configuration, states TargetStates) {
	for shape, name := range lightNodes {
		on := !cfg.RoofPitchActive && cfg.Lighting.On && shape == cfg.Lighting.Shape
		states.setVisible(name, on)
		if on {
			states.setMaterial(name, LightMaterial(cfg.Lighting.Mood))
		}
	}
}

// passRoofTint gives the roof's own glass meshes the same resolved
// glass material as the side glazing.
func passRoofTint(cfg config.Configuration, states TargetStates) {
	mat := GlassMaterial(cfg)
	states.setMaterial(nodeRoofGlass, mat)
	states.setMaterial(nodePitchGlass, mat)
}

// passHouse shows the companion house matching the configured type and
// drives the fence from its preset bundle. Freestanding structures show
// no house wall to mount against.
func passHouse(cfg config.Configuration, states TargetStates) {
	wallMounted := cfg.VerandaType == config.VerandaWallMounted
	for h, name := range houseNodes {
		states.setVisible(name, wallMounted && h == cfg.HouseType)
	}
	states.setVisible(nodeFence, cfg.FenceVisible())
}

// passFrameColor paints every visible mesh with the frame material
// unless it is on the fixed exclusion list. Back-structure elements
// always take the frame material, overriding the glass-name exclusion.
func passFrameColor(cfg config.Configuration, idx *Index, states TargetStates) {
	frame := FrameMaterial(cfg.MetalMaterial)

	for name, st := range states {
		if !st.Visible {
			continue
		}
		base := idx.Parts[name].Base
		if backStructureParts[base] {
			st.Material = frame
			continue
		}
		if excludedFromFrame(base) {
			continue
		}
		st.Material = frame
	}
}

// excludedFromFrame is the fixed exclusion list of the frame color
// pass: glass panels, sliders, light meshes, awning fabric, the floor,
// the companion assets, and any part whose stripped name reads as glass
// without being a holder or border.
func excludedFromFrame(base string) bool {
	if gp, ok := glazingParts[base]; ok {
		if gp.Category == CategoryPanel || gp.Category == CategorySlider {
			return true
		}
	}
	switch base {
	case nodeFloor, nodeAwningFabric, nodeFence,
		nodeLightCircle, nodeLightRectangle, nodeLightSquare:
		return true
	}
	for _, house := range houseNodes {
		if base == house {
			return true
		}
	}
	if strings.Contains(base, "glass") &&
		!strings.Contains(base, "holder") &&
		!strings.Contains(base, "border") {
		return true
	}
	return false
}

// passScaling applies the non-uniform whole-asset scale and the two
// compensations: glass holders track depth 1:1, and the roof meshes
// get a per-family horizontal stretch.
func passScaling(cfg config.Configuration, idx *Index, states TargetStates) {
	widthRatio := cfg.Width / WidthRef
	heightRatio := cfg.Height / HeightRef
	depthRatio := cfg.Depth / DepthRef

	rootOrig := idx.Original(nodeRoot)
	states.mutate(nodeRoot, func(st *NodeState) {
		st.Transform.Scale = Vec3{
			X: rootOrig.Scale.X * widthRatio,
			Y: rootOrig.Scale.Y * heightRatio,
			Z: rootOrig.Scale.Z * depthRatio,
		}
	})

	// Holder meshes sit outside the scaled frame group and track depth
	// directly.
	for name, pid := range idx.Parts {
		if gp, ok := glazingParts[pid.Base]; !ok || gp.Category != CategoryHolder {
			continue
		}
		orig := idx.Original(name)
		states.mutate(name, func(st *NodeState) {
			st.Transform.Scale.Z = orig.Scale.Z * depthRatio
		})
	}
	for _, name := range []string{nodeRoofHolder1, nodeRoofHolder2} {
		orig := idx.Original(name)
		states.mutate(name, func(st *NodeState) {
			st.Transform.Scale.Z = orig.Scale.Z * depthRatio
		})
	}

	stretch := roofStretchDefault
	if enc := effectiveEnclosure(cfg, config.SideFront); enc.Material == config.WallGlass {
		stretch = FamilyRoofStretch(enc.GlassType)
	}
	for _, name := range []string{nodeRoofPitchable, nodeRoofNormal, nodeRoofGlass, nodeRoofHolder1, nodeRoofHolder2} {
		orig := idx.Original(name)
		states.mutate(name, func(st *NodeState) {
			st.Transform.Scale.X = orig.Scale.X * stretch
		})
	}
}
