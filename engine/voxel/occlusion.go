package voxel

// A face is occluded when the neighbor one resolution step away across it
// exists, is active, and is uniform with this node. Occluded faces emit no
// geometry and mark paint adjacency.

// occludedToward checks the current neighbor state for one face.
func (n *Node) occludedToward(root *Node, face FaceType) bool {
	np := n.pos.Add(face.Offset(n.resolution()))
	neighbor := root.find(np.X, np.Y, np.Z, n.level)
	if neighbor == nil {
		return false
	}
	return neighbor.active && n.uniform(neighbor)
}

// recalcFaces recomputes all six cached flags for this node.
func (n *Node) recalcFaces(root *Node) {
	for face := FaceType(0); face < FaceCount; face++ {
		n.occluded[face] = n.occludedToward(root, face)
	}
}

// recalcOcclusion walks the subtree and recomputes the flags of every
// active node. Flags of inactive nodes are meaningless and left alone.
func (n *Node) recalcOcclusion(root *Node) {
	if n.active {
		n.recalcFaces(root)
	}
	if n.hasChildren {
		for _, child := range n.children {
			child.recalcOcclusion(root)
		}
	}
}

// RecalculateOcclusion recomputes the occlusion flags of every active
// node against the whole tree. Runs after edits, never per frame.
func (t *Tree) RecalculateOcclusion() {
	t.root.recalcOcclusion(t.root)
}

// RecalculateOcclusionFor recomputes flags only for the finest-level
// cells in positions and their face neighbors. A toggle of exactly those
// cells cannot change any flag outside that neighborhood, so the result
// matches a full recompute for the touched cells.
func (t *Tree) RecalculateOcclusionFor(positions []Int3) {
	visited := make(map[Int3]struct{}, len(positions)*(FaceCount+1))
	recalc := func(p Int3) {
		if _, done := visited[p]; done {
			return
		}
		visited[p] = struct{}{}
		if found := t.root.find(p.X, p.Y, p.Z, t.depth); found != nil && found.active {
			found.recalcFaces(t.root)
		}
	}
	for _, position := range positions {
		recalc(position)
		for face := FaceType(0); face < FaceCount; face++ {
			recalc(position.Add(face.Offset(1)))
		}
	}
}
