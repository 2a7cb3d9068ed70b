package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxden/sculpt/engine/voxel"
)

func TestSelectionVoxelCounts(t *testing.T) {
	center := voxel.Int3{}
	cases := []struct {
		name  string
		shape SelectionShape
		count int
	}{
		{"sphere", SelectionSphere, 27},
		{"cube", SelectionCube, 27},
		{"square xz", SelectionSquareXZ, 9},
		{"square xy", SelectionSquareXY, 9},
		{"square yz", SelectionSquareYZ, 9},
		{"circle xz", SelectionCircleXZ, 9},
		{"circle xy", SelectionCircleXY, 9},
		{"circle yz", SelectionCircleYZ, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			voxels := SelectionVoxels(center, 2, tc.shape, 8)
			assert.Len(t, voxels, tc.count)
		})
	}
}

func TestSelectionFlatShapesStayOnPlane(t *testing.T) {
	center := voxel.Int3{X: 3, Y: -2, Z: 5}
	for _, position := range SelectionVoxels(center, 2, SelectionCircleXZ, 8) {
		assert.Equal(t, center.Y, position.Y)
	}
	for _, position := range SelectionVoxels(center, 2, SelectionSquareXY, 8) {
		assert.Equal(t, center.Z, position.Z)
	}
}

func TestSelectionClampsToVolume(t *testing.T) {
	limit := voxel.Range(2)
	voxels := SelectionVoxels(voxel.Int3{}, 2, SelectionSphere, 2)
	assert.Len(t, voxels, 8)
	for _, position := range voxels {
		assert.GreaterOrEqual(t, position.X, -limit)
		assert.Less(t, position.X, limit)
		assert.GreaterOrEqual(t, position.Y, -limit)
		assert.Less(t, position.Y, limit)
		assert.GreaterOrEqual(t, position.Z, -limit)
		assert.Less(t, position.Z, limit)
	}
}

func TestSelectionZeroRadiusIsEmpty(t *testing.T) {
	assert.Empty(t, SelectionVoxels(voxel.Int3{}, 0, SelectionSphere, 8))
	assert.Empty(t, SelectionVoxels(voxel.Int3{}, 0, SelectionCube, 8))
}
