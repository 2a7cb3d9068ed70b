package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = [4]float32{1, 0, 0, 1}
var blue = [4]float32{0, 0, 1, 1}

func TestNewValidatesDepth(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)

	_, err = New(MaxDepth + 1)
	assert.Error(t, err)

	tree, err := New(MaxDepth)
	require.NoError(t, err)
	assert.Equal(t, MaxDepth, tree.Depth())
}

func TestFreshTreeHasNoActiveNodes(t *testing.T) {
	for depth := uint32(1); depth <= 4; depth++ {
		tree, err := New(depth)
		require.NoError(t, err)
		assert.Empty(t, tree.ActiveNodes(), "depth %d", depth)
	}
}

func TestResolutionAndRange(t *testing.T) {
	assert.Equal(t, int32(1), Resolution(3, 3))
	assert.Equal(t, int32(2), Resolution(3, 2))
	assert.Equal(t, int32(4), Resolution(3, 1))
	assert.Equal(t, int32(2), Range(3))
	assert.Equal(t, int32(64), Range(8))
}

func TestToggleThenFind(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	position := Int3{X: 1, Y: 0, Z: -1}
	tree.ToggleVoxels([]Int3{position}, true, red, 1, 2)

	found := tree.Find(position.X, position.Y, position.Z, 3)
	require.NotNil(t, found)
	assert.True(t, found.IsActive())
	assert.Equal(t, red, found.Color())
	assert.Equal(t, int32(1), found.Fluid())
	assert.Equal(t, int32(2), found.Noise())

	active := tree.ActiveNodes()
	require.Len(t, active, 1)
	assert.Equal(t, position, active[0].Position())

	tree.ToggleVoxels([]Int3{position}, false, red, 0, 0)
	assert.Empty(t, tree.ActiveNodes())
}

func TestToggleOutOfRangeIsNoOp(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	tree.ToggleVoxels([]Int3{{X: 99, Y: 0, Z: 0}}, true, red, 0, 0)
	assert.Empty(t, tree.ActiveNodes())
}

func TestFindAtCoarserLevels(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	root := tree.Find(-2, -2, -2, 1)
	require.NotNil(t, root)
	assert.Equal(t, uint32(1), root.Level())

	branch := tree.Find(0, 0, 0, 2)
	require.NotNil(t, branch)
	assert.Equal(t, int32(2), Resolution(tree.Depth(), branch.Level()))

	// Indices that are not a node origin at the requested level miss.
	assert.Nil(t, tree.Find(1, 0, 0, 2))
	assert.Nil(t, tree.Find(2, 0, 0, 3))
}

func TestAllVoxelsActive(t *testing.T) {
	tree, err := New(3)
	require.NoError(t, err)

	positions := []Int3{{0, 0, 0}, {1, 0, 0}}
	assert.False(t, tree.AllVoxelsActive(positions))

	tree.ToggleVoxels(positions[:1], true, red, 0, 0)
	assert.False(t, tree.AllVoxelsActive(positions))

	tree.ToggleVoxels(positions, true, red, 0, 0)
	assert.True(t, tree.AllVoxelsActive(positions))
}
