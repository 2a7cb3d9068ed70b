package editor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/voxden/sculpt/engine/util"
	"github.com/voxden/sculpt/engine/voxel"
	"github.com/voxden/sculpt/storage"
)

// Model owns the voxel tree for one editing session and forwards editor
// intents to it. The renderer only ever sees the Drawables output.
type Model struct {
	Voxels *voxel.Tree
}

func NewModel(depth uint32) (*Model, error) {
	tree, err := voxel.New(depth)
	if err != nil {
		return nil, err
	}
	return &Model{Voxels: tree}, nil
}

// Drawables builds the render list for the next frame.
func (m *Model) Drawables() []*voxel.Cube {
	return m.Voxels.Drawables()
}

// PaintFirstCollision paints the contiguous uniform region under an
// unprojected click segment.
func (m *Model) PaintFirstCollision(near, far mgl32.Vec3, color [4]float32, noise, fluid int32) {
	m.Voxels.PaintFirstCollision(near, far, color, noise, fluid)
}

// ToggleVoxels applies one toggle edit and re-runs the LOD pass.
func (m *Model) ToggleVoxels(positions []voxel.Int3, value bool, color [4]float32, cameraEye mgl32.Vec3, fluid, noise int32) {
	m.Voxels.ToggleVoxels(positions, value, color, fluid, noise)
	m.Voxels.Optimize(cameraEye)
}

func (m *Model) AllVoxelsActive(positions []voxel.Int3) bool {
	return m.Voxels.AllVoxelsActive(positions)
}

func (m *Model) Optimize(cameraEye mgl32.Vec3) {
	m.Voxels.Optimize(cameraEye)
}

func (m *Model) RecalculateOcclusion() {
	m.Voxels.RecalculateOcclusion()
}

func (m *Model) RecalculateOcclusionForSelections(positions []voxel.Int3) {
	m.Voxels.RecalculateOcclusionFor(positions)
}

// ToggleSelection is the full toggle intent: deactivate when every
// selected voxel is already active, activate otherwise, then bring the
// occlusion flags of the touched neighborhood back in sync.
func (m *Model) ToggleSelection(selection []voxel.Int3, color [4]float32, cameraEye mgl32.Vec3, fluid, noise int32) {
	value := m.AllVoxelsActive(selection)
	util.LogEditorDebug(fmt.Sprintf("[Model] toggle %d voxels, all active %v", len(selection), value))
	m.ToggleVoxels(selection, !value, color, cameraEye, fluid, noise)
	m.RecalculateOcclusionForSelections(selection)
}

// Save serializes the active nodes through the given storage backend.
func (m *Model) Save(store storage.Storage) error {
	if err := store.Save(m.Voxels.Prepare()); err != nil {
		return errors.Wrap(err, "save model")
	}
	return nil
}

// Load replaces the tree contents with a stored scene. Records that no
// longer fit the tree shape are dropped, not fatal; the count is logged
// and returned.
func (m *Model) Load(store storage.Storage, cameraEye mgl32.Vec3) (int, error) {
	stored, err := store.Load()
	if err != nil {
		return 0, errors.Wrap(err, "load model")
	}
	dropped := m.Voxels.LoadFromSerial(stored, cameraEye)
	if dropped > 0 {
		util.LogEditorInfo(fmt.Sprintf("[Model] dropped %d stale records on load", dropped))
	}
	return dropped, nil
}
