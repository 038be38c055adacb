package scene

// CatalogTree builds the built-in development asset: one node for every
// name the resolver knows, at identity transforms. The production
// renderer attaches a modeled asset instead; the dev server and CLI
// resolve against this catalog so every pass has a node to hit.
func CatalogTree() *Tree {
	var children []*Node
	add := func(names ...string) {
		for _, n := range names {
			children = append(children, NewNode(n))
		}
	}

	add(
		nodeBackPillar1, nodeBackPillar2, nodeBackGlass, nodeBackHolder,
		nodeFrontPillar1, nodeFrontPillar2,
		nodeRoofPitchable, nodeRoofNormal, nodeRoofGlass, nodeRoofHolder1, nodeRoofHolder2,
		nodePitchRoof, nodePitchGlass, nodePitchSide1, nodePitchSide2, nodePitchShade,
		nodeAwningFlat, nodeAwningPitch, nodeAwningFabric,
		nodeLightCircle, nodeLightRectangle, nodeLightSquare,
		nodeFloor, nodeFence,
	)

	// Glazing parts exist as a front instance plus mirrored sides.
	for base := range glazingParts {
		add(base, base+suffixLeft, base+suffixRight)
	}
	// Solid wall sets only exist mirrored.
	for _, bases := range sideWallParts {
		for _, base := range bases {
			add(base+suffixLeft, base+suffixRight)
		}
	}
	for _, name := range houseNodes {
		add(name)
	}

	return NewTree(NewNode(nodeRoot, children...))
}
