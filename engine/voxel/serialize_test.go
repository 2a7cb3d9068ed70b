package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareEmptyTree(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	stored := tree.Prepare()
	assert.Equal(t, uint32(3), stored.Depth)
	assert.Empty(t, stored.ActiveNodes)
}

func TestSerialRoundTrip(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	tree.ToggleVoxels([]Int3{{0, 0, 0}, {1, 0, 0}}, true, red, 1, 2)
	tree.ToggleVoxels([]Int3{{-2, 1, -1}}, true, blue, 0, 0)
	tree.RecalculateOcclusion()

	stored := tree.Prepare()
	require.Len(t, stored.ActiveNodes, 3)

	loaded, err := New(3)
	require.NoError(t, err)
	dropped := loaded.LoadFromSerial(stored, mgl32.Vec3{})
	assert.Zero(t, dropped)
	assert.Equal(t, stored, loaded.Prepare())

	// Occlusion flags survive the trip without a recompute.
	node := loaded.Find(0, 0, 0, 3)
	require.NotNil(t, node)
	assert.True(t, node.Occluded(XP))
}

func TestSerialRoundTripLargeScene(t *testing.T) {
	tree, err := New(4)
	require.NoError(t, err)

	var positions []Int3
	for x := int32(-3); x < 2; x++ {
		for y := int32(-3); y < 2; y++ {
			for z := int32(-3); z < 2; z++ {
				positions = append(positions, Int3{X: x, Y: y, Z: z})
			}
		}
	}
	tree.ToggleVoxels(positions, true, red, 0, 0)
	tree.RecalculateOcclusion()

	stored := tree.Prepare()
	require.Len(t, stored.ActiveNodes, 125)

	loaded, err := New(4)
	require.NoError(t, err)
	dropped := loaded.LoadFromSerial(stored, mgl32.Vec3{})
	assert.Zero(t, dropped)
	assert.Equal(t, stored, loaded.Prepare())
}

func TestLoadFromSerialClearsPreviousContent(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)
	tree.ToggleVoxels([]Int3{{0, 0, 0}}, true, red, 0, 0)
	stored := tree.Prepare()

	target, err := New(3)
	require.NoError(t, err)
	target.ToggleVoxels([]Int3{{1, 1, 1}, {-1, -1, -1}}, true, blue, 0, 0)

	target.LoadFromSerial(stored, mgl32.Vec3{})
	active := target.ActiveNodes()
	require.Len(t, active, 1)
	assert.Equal(t, Int3{X: 0, Y: 0, Z: 0}, active[0].Position())
}

func TestLoadFromSerialDropsUnfittingRecords(t *testing.T) {
	stored := StoredOctree{
		Depth: 3,
		ActiveNodes: []NodeRecord{
			{X: 0, Y: 0, Z: 0, Level: 3, Active: true, Color: red},
			// Out of range for depth 3, and one level too deep.
			{X: 3, Y: 0, Z: 0, Level: 3, Active: true, Color: red},
			{X: 0, Y: 1, Z: 0, Level: 4, Active: true, Color: red},
		},
	}

	tree, err := New(3)
	require.NoError(t, err)
	dropped := tree.LoadFromSerial(stored, mgl32.Vec3{})
	assert.Equal(t, 2, dropped)

	active := tree.ActiveNodes()
	require.Len(t, active, 1)
	assert.Equal(t, Int3{X: 0, Y: 0, Z: 0}, active[0].Position())
}
