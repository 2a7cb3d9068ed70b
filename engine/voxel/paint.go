package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxden/sculpt/engine/util"
)

type paintTarget struct {
	pos   Int3
	level uint32
}

// PaintConnected recolors the node at the seed index and flood-fills the
// recolor across faces whose occlusion flag is set. The flags were
// derived from neighbor uniformity before this paint began, so the fill
// covers exactly the contiguous uniform region around the seed. The
// visited set bounds the walk by the number of nodes.
func (t *Tree) PaintConnected(seed Int3, level uint32, color [4]float32, noise, fluid int32) {
	visited := make(map[paintTarget]struct{})
	stack := []paintTarget{{seed, level}}

	for len(stack) > 0 {
		target := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := visited[target]; done {
			continue
		}
		visited[target] = struct{}{}

		candidate := t.root.find(target.pos.X, target.pos.Y, target.pos.Z, target.level)
		if candidate == nil {
			util.LogVoxelDebug(fmt.Sprintf("[Paint] no node at %v level %d", target.pos, target.level))
			continue
		}
		candidate.color = color
		candidate.noise = noise
		candidate.fluid = fluid

		step := candidate.resolution()
		for face := FaceType(0); face < FaceCount; face++ {
			if !candidate.occluded[face] {
				continue
			}
			next := paintTarget{target.pos.Add(face.Offset(step)), target.level}
			if _, done := visited[next]; !done {
				stack = append(stack, next)
			}
		}
	}
}

// PaintFirstCollision picks the active node under the click segment and
// paints its connected uniform region. A miss is a no-op.
func (t *Tree) PaintFirstCollision(near, far mgl32.Vec3, color [4]float32, noise, fluid int32) {
	seed, level, hit := t.FindFirstCollision(near, far)
	if !hit {
		return
	}
	t.PaintConnected(seed, level, color, noise, fluid)
}
