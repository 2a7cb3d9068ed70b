package storage

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"

	"github.com/voxden/sculpt/engine/util"
	"github.com/voxden/sculpt/engine/voxel"
)

// NBTFile stores scenes as a gzip-compressed NBT compound. NBT has no
// boolean tag, so flags travel as bytes and the six occlusion flags
// pack into one bitmask.
type NBTFile struct {
	Path string
}

type nbtScene struct {
	Depth int32     `nbt:"depth"`
	Nodes []nbtNode `nbt:"active_nodes"`
}

type nbtNode struct {
	X         int32     `nbt:"x"`
	Y         int32     `nbt:"y"`
	Z         int32     `nbt:"z"`
	Level     int32     `nbt:"level"`
	Active    byte      `nbt:"active"`
	Color     []float32 `nbt:"color"`
	Fluid     int32     `nbt:"fluid"`
	Noise     int32     `nbt:"noise"`
	Occlusion byte      `nbt:"occlusion"`
}

func toWire(record voxel.NodeRecord) nbtNode {
	node := nbtNode{
		X:     record.X,
		Y:     record.Y,
		Z:     record.Z,
		Level: int32(record.Level),
		Color: record.Color[:],
		Fluid: record.Fluid,
		Noise: record.Noise,
	}
	if record.Active {
		node.Active = 1
	}
	for face := 0; face < voxel.FaceCount; face++ {
		if record.Occluded[face] {
			node.Occlusion |= 1 << face
		}
	}
	return node
}

func fromWire(node nbtNode) voxel.NodeRecord {
	record := voxel.NodeRecord{
		X:      node.X,
		Y:      node.Y,
		Z:      node.Z,
		Level:  uint32(node.Level),
		Active: node.Active != 0,
		Fluid:  node.Fluid,
		Noise:  node.Noise,
	}
	copy(record.Color[:], node.Color)
	for face := 0; face < voxel.FaceCount; face++ {
		record.Occluded[face] = node.Occlusion&(1<<face) != 0
	}
	return record
}

func (s *NBTFile) Save(data voxel.StoredOctree) error {
	scene := nbtScene{
		Depth: int32(data.Depth),
		Nodes: make([]nbtNode, 0, len(data.ActiveNodes)),
	}
	for _, record := range data.ActiveNodes {
		scene.Nodes = append(scene.Nodes, toWire(record))
	}

	outfile, err := os.Create(s.Path)
	if err != nil {
		return errors.Wrapf(err, "create scene %s", s.Path)
	}
	defer outfile.Close()

	gzipWriter := gzip.NewWriter(outfile)
	if err := nbt.NewEncoder(gzipWriter).Encode(scene, ""); err != nil {
		return errors.Wrap(err, "encode scene")
	}
	if err := gzipWriter.Close(); err != nil {
		return errors.Wrap(err, "flush scene")
	}
	util.LogIOInfo(fmt.Sprintf("[Storage] saved %d nodes to %s", len(scene.Nodes), s.Path))
	return nil
}

func (s *NBTFile) Load() (voxel.StoredOctree, error) {
	var data voxel.StoredOctree

	file, err := os.Open(s.Path)
	if err != nil {
		return data, errors.Wrapf(err, "open scene %s", s.Path)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return data, errors.Wrapf(err, "decompress scene %s", s.Path)
	}
	defer gzipReader.Close()

	var scene nbtScene
	if _, err := nbt.NewDecoder(gzipReader).Decode(&scene); err != nil {
		return data, errors.Wrap(err, "decode scene")
	}

	data.Depth = uint32(scene.Depth)
	data.ActiveNodes = make([]voxel.NodeRecord, 0, len(scene.Nodes))
	for _, node := range scene.Nodes {
		data.ActiveNodes = append(data.ActiveNodes, fromWire(node))
	}
	util.LogIOInfo(fmt.Sprintf("[Storage] loaded %d nodes from %s", len(data.ActiveNodes), s.Path))
	return data, nil
}
