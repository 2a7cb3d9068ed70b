package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/voxden/sculpt/engine/util"
)

// Tree is a fixed-depth octree over a cubic voxel volume. New allocates
// the full dense tree up front; after that nodes are never added or
// removed, edits only flip attributes.
type Tree struct {
	root  *Node
	depth uint32

	// LODThreshold enables level-of-detail collapsing during Optimize
	// when set above zero. The useful value depends on scene scale and
	// camera habits, so it ships disabled.
	LODThreshold float32
}

// New builds a dense tree with the given number of subdivision levels.
// All leaves start inactive.
func New(depth uint32) (*Tree, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, errors.Errorf("octree depth %d outside [1, %d]", depth, MaxDepth)
	}
	t := &Tree{
		root:  newRootNode(depth),
		depth: depth,
	}
	t.root.decimate(depth)
	util.LogVoxelDebug(fmt.Sprintf("[Octree] built dense tree, depth %d, range %d", depth, Range(depth)))
	return t, nil
}

func (t *Tree) Depth() uint32 {
	return t.depth
}

// Find returns the node with the given index at the given level, or nil.
func (t *Tree) Find(x, y, z int32, level uint32) *Node {
	return t.root.find(x, y, z, level)
}

// ActiveNodes lists every active node in tree walk order.
func (t *Tree) ActiveNodes() []*Node {
	return t.root.activeNodes(nil)
}

// ToggleVoxels sets the active state and material of the finest-level
// nodes at the given indices. Out-of-range indices are skipped.
// Occlusion flags are not touched here; the caller recomputes them once
// the whole edit is applied.
func (t *Tree) ToggleVoxels(positions []Int3, value bool, color [4]float32, fluid, noise int32) {
	t.root.toggleVoxels(positions, value, color, fluid, noise)
}

// AllVoxelsActive reports whether every finest-level node at the given
// indices is active. The editor uses it to choose the toggle direction.
func (t *Tree) AllVoxelsActive(positions []Int3) bool {
	return t.root.allVoxelsActive(positions)
}

// Optimize collapses a branch into one merged node when its children are
// all active and mutually uniform, or when the branch sits far enough
// from the camera that the detail is wasted. Disabled while LODThreshold
// is zero.
func (t *Tree) Optimize(cameraEye mgl32.Vec3) {
	if t.LODThreshold <= 0 {
		return
	}
	t.root.optimize(cameraEye, t.LODThreshold)
}

// centerDistance measures from the node's center to the camera.
func (n *Node) centerDistance(eye mgl32.Vec3) float32 {
	half := float32(n.resolution()) / 2
	center := n.pos.ToVec3().Add(mgl32.Vec3{half, half, half})
	return center.Sub(eye).Len()
}

func (n *Node) optimize(eye mgl32.Vec3, threshold float32) {
	if !n.hasChildren {
		return
	}
	for _, child := range n.children {
		child.optimize(eye, threshold)
	}

	hasActive := false
	allActive := true
	var merged *Node
	for _, child := range n.children {
		if child.active {
			hasActive = true
			merged = child
		} else {
			allActive = false
		}
	}
	uniform := true
	if merged != nil {
		for _, child := range n.children {
			if !merged.uniform(child) {
				uniform = false
				break
			}
		}
	}

	levelsBelow := n.depth - n.level
	scaledDistance := n.centerDistance(eye) / float32(levelsBelow)

	n.active = (hasActive && scaledDistance > threshold) || (allActive && uniform)
	if n.active && merged != nil {
		n.color = merged.color
		n.fluid = merged.fluid
		n.noise = merged.noise
	}
}
