package voxel

// Node is a single cube of the octree. A node either owns all eight
// children or none. The tree shape is fixed after Decimate: edits only
// flip attributes on existing nodes.
type Node struct {
	pos         Int3
	level       uint32
	depth       uint32
	active      bool
	color       [4]float32
	fluid       int32
	noise       int32
	occluded    [FaceCount]bool
	children    [8]*Node
	hasChildren bool
}

var defaultColor = [4]float32{0.8, 0.8, 0.8, 0.8}

func newRootNode(depth uint32) *Node {
	r := Range(depth)
	return &Node{
		pos:   Int3{-r, -r, -r},
		level: 1,
		depth: depth,
		color: defaultColor,
	}
}

func (n *Node) Position() Int3 {
	return n.pos
}

func (n *Node) Level() uint32 {
	return n.level
}

func (n *Node) IsActive() bool {
	return n.active
}

func (n *Node) Color() [4]float32 {
	return n.color
}

func (n *Node) Fluid() int32 {
	return n.fluid
}

func (n *Node) Noise() int32 {
	return n.noise
}

func (n *Node) Occluded(face FaceType) bool {
	return n.occluded[face]
}

// resolution is the edge length of this node in finest-voxel units.
func (n *Node) resolution() int32 {
	return Resolution(n.depth, n.level)
}

// contains reports whether the query index falls inside this node's
// bounding box. Bounds are half-open so the tree is a strict partition
// and at most one child matches at each level.
func (n *Node) contains(x, y, z int32) bool {
	res := n.resolution()
	return x >= n.pos.X && x < n.pos.X+res &&
		y >= n.pos.Y && y < n.pos.Y+res &&
		z >= n.pos.Z && z < n.pos.Z+res
}

// find descends to the node with the given index at the given level.
// Returns nil if no such node exists. Cost is O(depth).
func (n *Node) find(x, y, z int32, level uint32) *Node {
	if level == n.level {
		if n.pos.X == x && n.pos.Y == y && n.pos.Z == z {
			return n
		}
		return nil
	}
	if !n.contains(x, y, z) || !n.hasChildren {
		return nil
	}
	for _, child := range n.children {
		if child.contains(x, y, z) {
			return child.find(x, y, z, level)
		}
	}
	return nil
}

// subdivide creates the eight children one level below this node.
func (n *Node) subdivide() {
	n.hasChildren = true
	step := Resolution(n.depth, n.level+1)
	offsets := [8]Int3{
		{0, 0, 0},
		{step, 0, 0},
		{0, step, 0},
		{0, 0, step},
		{step, step, 0},
		{0, step, step},
		{step, 0, step},
		{step, step, step},
	}
	for i, offset := range offsets {
		n.children[i] = &Node{
			pos:   n.pos.Add(offset),
			level: n.level + 1,
			depth: n.depth,
			color: n.color,
			fluid: n.fluid,
			noise: n.noise,
		}
	}
}

// decimate recursively subdivides until the requested number of levels
// below this node exists. All created leaves start inactive.
func (n *Node) decimate(levels uint32) {
	if levels <= 1 {
		return
	}
	n.subdivide()
	for _, child := range n.children {
		child.decimate(levels - 1)
	}
}

// activeNodes appends this node and all active descendants to out.
func (n *Node) activeNodes(out []*Node) []*Node {
	if n.active {
		out = append(out, n)
	}
	if n.hasChildren {
		for _, child := range n.children {
			out = child.activeNodes(out)
		}
	}
	return out
}

// clear deactivates this node and every descendant.
func (n *Node) clear() {
	n.active = false
	if !n.hasChildren {
		return
	}
	for _, child := range n.children {
		child.clear()
	}
}

// uniform reports whether two nodes share color and material flags.
// Occlusion flags are derived state and excluded from the comparison.
func (n *Node) uniform(other *Node) bool {
	return n.color == other.color && n.fluid == other.fluid && n.noise == other.noise
}

func (n *Node) toggleVoxels(positions []Int3, value bool, color [4]float32, fluid, noise int32) {
	for _, position := range positions {
		if found := n.find(position.X, position.Y, position.Z, n.depth); found != nil {
			found.active = value
			found.color = color
			found.fluid = fluid
			found.noise = noise
		}
	}
}

func (n *Node) allVoxelsActive(positions []Int3) bool {
	for _, position := range positions {
		found := n.find(position.X, position.Y, position.Z, n.depth)
		if found == nil {
			continue
		}
		if !found.active {
			return false
		}
	}
	return true
}
