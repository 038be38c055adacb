package scene

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transform is a node's local placement. Rotation is Euler radians.
type Transform struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
	Scale    Vec3 `json:"scale"`
}

// IdentityTransform returns a zeroed transform with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// Node is one named element of the loaded asset. The asset provider
// creates the tree once at load time; the engine only mutates the
// derived fields in place through Apply.
type Node struct {
	Name      string
	Visible   bool
	Material  MaterialKind
	Transform Transform
	Children  []*Node
}

// NewNode creates a node with identity transform, visible.
func NewNode(name string, children ...*Node) *Node {
	return &Node{
		Name:      strings.ToLower(name),
		Visible:   true,
		Transform: IdentityTransform(),
		Children:  children,
	}
}

// PartID is a node's resolved identity: the base part name with any
// left/right mirror suffix stripped, and the side that suffix denotes.
// Nodes without a suffix belong to the front (or are side-less
// structure, which the passes treat the same way).
type PartID struct {
	Base string      `json:"base"`
	Side config.Side `json:"side"`
}

// ParsePartID resolves a node name once. Names ending in the reserved
// numeric suffixes 001 and 002 are the left and right mirror instances
// of the same logical part.
func ParsePartID(name string) PartID {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, suffixLeft):
		return PartID{Base: strings.TrimSuffix(name, suffixLeft), Side: config.SideLeft}
	case strings.HasSuffix(name, suffixRight):
		return PartID{Base: strings.TrimSuffix(name, suffixRight), Side: config.SideRight}
	default:
		return PartID{Base: name, Side: config.SideFront}
	}
}

const (
	suffixLeft  = "001"
	suffixRight = "002"
)

// Index is the static part-identity index built once at tree-attach
// time: node names, their resolved identities, and the authored
// transforms. Resolution reads the index and never the live tree, so
// derived transforms are always original-plus-offset.
type Index struct {
	Names     []string
	Parts     map[string]PartID
	Originals map[string]Transform
}

// BuildIndex resolves identities and captures authored transforms for
// the given nodes.
func BuildIndex(nodes []*Node) *Index {
	idx := &Index{
		Parts:     make(map[string]PartID, len(nodes)),
		Originals: make(map[string]Transform, len(nodes)),
	}
	for _, n := range nodes {
		idx.Names = append(idx.Names, n.Name)
		idx.Parts[n.Name] = ParsePartID(n.Name)
		idx.Originals[n.Name] = n.Transform
	}
	return idx
}

// Original returns the authored transform for a node, or the identity
// transform when the node is unknown.
func (idx *Index) Original(name string) Transform {
	if t, ok := idx.Originals[name]; ok {
		return t
	}
	return IdentityTransform()
}

// Tree wraps the live node tree with its index and a name lookup.
// Logger receives missing-node diagnostics; it defaults to a no-op.
type Tree struct {
	Root   *Node
	Logger zerolog.Logger

	byName map[string]*Node
	index  *Index
}

// NewTree flattens the asset's node hierarchy, builds the part index
// and captures authored transforms.
func NewTree(root *Node) *Tree {
	t := &Tree{
		Root:   root,
		Logger: zerolog.Nop(),
		byName: make(map[string]*Node),
	}
	var flat []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		t.byName[n.Name] = n
		flat = append(flat, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	t.index = BuildIndex(flat)
	return t
}

// Index returns the static part-identity index.
func (t *Tree) Index() *Index {
	return t.index
}

// Lookup returns the live node with the given name, or nil.
func (t *Tree) Lookup(name string) *Node {
	return t.byName[strings.ToLower(name)]
}

// Apply writes the target states onto the live nodes. Names without a
// matching node are skipped with a debug diagnostic; the engine must
// tolerate partial asset variants.
func (t *Tree) Apply(states TargetStates) {
	for name, st := range states {
		n := t.byName[name]
		if n == nil {
			t.Logger.Debug().Str("node", name).Msg("target state for missing scene node")
			continue
		}
		n.Visible = st.Visible
		if st.Material != MaterialNone {
			n.Material = st.Material
		}
		n.Transform = st.Transform
	}
}
