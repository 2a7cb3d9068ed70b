package voxel

import "github.com/go-gl/mathgl/mgl32"

// Picking tests an unprojected screen click, given as the near and far
// endpoints of a world-space segment, against every active node.

// intersectsLine tests the line near + t*(far-near) against the six
// bounding planes of this node. A plane hit counts when the intersection
// point lies inside the bounding box on the other two axes.
func (n *Node) intersectsLine(near, far mgl32.Vec3) bool {
	res := float32(n.resolution())
	minVertex := n.pos.ToVec3()
	maxVertex := minVertex.Add(mgl32.Vec3{res, res, res})
	direction := far.Sub(near)

	inBounds := func(p mgl32.Vec3) bool {
		return p.X() >= minVertex.X() && p.X() <= maxVertex.X() &&
			p.Y() >= minVertex.Y() && p.Y() <= maxVertex.Y() &&
			p.Z() >= minVertex.Z() && p.Z() <= maxVertex.Z()
	}

	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			continue
		}
		for _, plane := range [2]float32{minVertex[axis], maxVertex[axis]} {
			t := (plane - near[axis]) / direction[axis]
			if inBounds(near.Add(direction.Mul(t))) {
				return true
			}
		}
	}
	return false
}

// originDistanceSquared measures from a point to this node's index
// origin, not the cube center. Picking keeps this approximation for
// parity with established behavior.
func (n *Node) originDistanceSquared(point mgl32.Vec3) float32 {
	dx := point.X() - float32(n.pos.X)
	dy := point.Y() - float32(n.pos.Y)
	dz := point.Z() - float32(n.pos.Z)
	return dx*dx + dy*dy + dz*dz
}

// FindFirstCollision returns the index and level of the active node hit
// by the click segment that lies closest to near, or ok=false when
// nothing is hit. Ties resolve to the earliest node in tree walk order,
// so repeated calls are deterministic.
func (t *Tree) FindFirstCollision(near, far mgl32.Vec3) (Int3, uint32, bool) {
	var best *Node
	var bestDistance float32
	for _, node := range t.ActiveNodes() {
		if !node.intersectsLine(near, far) {
			continue
		}
		distance := node.originDistanceSquared(near)
		if best == nil || distance < bestDistance {
			best = node
			bestDistance = distance
		}
	}
	if best == nil {
		return Int3{}, 0, false
	}
	return best.pos, best.level, true
}
