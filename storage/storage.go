package storage

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/voxden/sculpt/engine/voxel"
)

// Storage persists scene snapshots. The octree core only defines the
// logical record list; the wire format belongs to the backend.
type Storage interface {
	Save(voxel.StoredOctree) error
	Load() (voxel.StoredOctree, error)
}

// ForPath picks a backend from the file extension: .json for the text
// codec, .nbt for the compressed binary codec.
func ForPath(path string) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &JSONFile{Path: path}, nil
	case ".nbt":
		return &NBTFile{Path: path}, nil
	default:
		return nil, errors.Errorf("no storage codec for %q", path)
	}
}
