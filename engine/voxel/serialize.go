package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxden/sculpt/engine/util"
)

// NodeRecord is the serialized form of one active node. The dense tree
// never stores inactive leaves or branches, which keeps scene files
// proportional to the sculpted volume instead of 8^depth.
type NodeRecord struct {
	X        int32           `json:"x"`
	Y        int32           `json:"y"`
	Z        int32           `json:"z"`
	Level    uint32          `json:"level"`
	Active   bool            `json:"active"`
	Color    [4]float32      `json:"color"`
	Fluid    int32           `json:"fluid"`
	Noise    int32           `json:"noise"`
	Occluded [FaceCount]bool `json:"occluded"`
}

// StoredOctree is the flat, ordered scene snapshot handed to storage.
type StoredOctree struct {
	Depth       uint32       `json:"depth"`
	ActiveNodes []NodeRecord `json:"active_nodes"`
}

// Prepare flattens every active node into the stored form.
func (t *Tree) Prepare() StoredOctree {
	nodes := t.ActiveNodes()
	records := make([]NodeRecord, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, NodeRecord{
			X:        node.pos.X,
			Y:        node.pos.Y,
			Z:        node.pos.Z,
			Level:    node.level,
			Active:   node.active,
			Color:    node.color,
			Fluid:    node.fluid,
			Noise:    node.noise,
			Occluded: node.occluded,
		})
	}
	return StoredOctree{Depth: t.depth, ActiveNodes: records}
}

// apply copies a stored record onto the matching node. Reports whether a
// match existed.
func (n *Node) apply(record NodeRecord) bool {
	found := n.find(record.X, record.Y, record.Z, record.Level)
	if found == nil {
		return false
	}
	found.active = record.Active
	found.color = record.Color
	found.fluid = record.Fluid
	found.noise = record.Noise
	found.occluded = record.Occluded
	return true
}

// LoadFromSerial clears the tree and applies the stored records.
// Records whose index or level does not exist in this tree shape, for
// example after a depth change between save and load, are skipped; the
// number skipped is returned so callers can surface it. Finishes with
// an Optimize pass.
func (t *Tree) LoadFromSerial(stored StoredOctree, cameraEye mgl32.Vec3) int {
	t.root.clear()

	dropped := 0
	for _, record := range stored.ActiveNodes {
		if !t.root.apply(record) {
			dropped++
		}
	}
	if dropped > 0 {
		util.LogVoxelInfo(fmt.Sprintf("[Octree] load dropped %d of %d records", dropped, len(stored.ActiveNodes)))
	}
	t.Optimize(cameraEye)
	return dropped
}
