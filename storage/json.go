package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/voxden/sculpt/engine/util"
	"github.com/voxden/sculpt/engine/voxel"
)

// JSONFile stores scenes as pretty-printed JSON. Slow and large, but
// diffable and hand-editable.
type JSONFile struct {
	Path string
}

func (s *JSONFile) Save(data voxel.StoredOctree) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode scene")
	}
	if err := os.WriteFile(s.Path, raw, 0644); err != nil {
		return errors.Wrapf(err, "write scene %s", s.Path)
	}
	util.LogIOInfo(fmt.Sprintf("[Storage] saved %d nodes to %s", len(data.ActiveNodes), s.Path))
	return nil
}

func (s *JSONFile) Load() (voxel.StoredOctree, error) {
	var data voxel.StoredOctree
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return data, errors.Wrapf(err, "read scene %s", s.Path)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, errors.Wrap(err, "decode scene")
	}
	util.LogIOInfo(fmt.Sprintf("[Storage] loaded %d nodes from %s", len(data.ActiveNodes), s.Path))
	return data, nil
}
