package editor

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxden/sculpt/engine/voxel"
	"github.com/voxden/sculpt/storage"
)

var testRed = [4]float32{1, 0, 0, 1}

func TestNewModelValidatesDepth(t *testing.T) {
	_, err := NewModel(0)
	assert.Error(t, err)

	model, err := NewModel(3)
	require.NoError(t, err)
	assert.Empty(t, model.Drawables())
}

func TestToggleSelectionFlipsDirection(t *testing.T) {
	model, err := NewModel(3)
	require.NoError(t, err)

	selection := SelectionVoxels(voxel.Int3{}, 2, SelectionCube, 3)
	require.NotEmpty(t, selection)

	model.ToggleSelection(selection, testRed, mgl32.Vec3{}, 0, 0)
	assert.True(t, model.AllVoxelsActive(selection))

	// Interior voxels got their faces hidden by the same call.
	center := model.Voxels.Find(0, 0, 0, 3)
	require.NotNil(t, center)
	for face := voxel.FaceType(0); face < voxel.FaceCount; face++ {
		assert.True(t, center.Occluded(face))
	}

	model.ToggleSelection(selection, testRed, mgl32.Vec3{}, 0, 0)
	assert.Empty(t, model.Voxels.ActiveNodes())
}

func TestToggleSelectionActivatesWhenPartiallyActive(t *testing.T) {
	model, err := NewModel(3)
	require.NoError(t, err)

	selection := []voxel.Int3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	model.ToggleVoxels(selection[:1], true, testRed, mgl32.Vec3{}, 0, 0)

	model.ToggleSelection(selection, testRed, mgl32.Vec3{}, 0, 0)
	assert.True(t, model.AllVoxelsActive(selection))
}

func TestModelSaveLoadRoundTrip(t *testing.T) {
	model, err := NewModel(3)
	require.NoError(t, err)
	selection := SelectionVoxels(voxel.Int3{}, 2, SelectionSphere, 3)
	model.ToggleSelection(selection, testRed, mgl32.Vec3{}, 1, 2)

	path := filepath.Join(t.TempDir(), "scene.json")
	store, err := storage.ForPath(path)
	require.NoError(t, err)
	require.NoError(t, model.Save(store))

	restored, err := NewModel(3)
	require.NoError(t, err)
	dropped, err := restored.Load(store, mgl32.Vec3{})
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, model.Voxels.Prepare(), restored.Voxels.Prepare())
}

func TestModelLoadMissingFile(t *testing.T) {
	model, err := NewModel(3)
	require.NoError(t, err)

	store, err := storage.ForPath(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	_, err = model.Load(store, mgl32.Vec3{})
	assert.Error(t, err)
}
