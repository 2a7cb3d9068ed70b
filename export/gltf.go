package export

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxden/sculpt/engine/util"
	"github.com/voxden/sculpt/engine/voxel"
)

// materialKey groups cubes that can share one glTF material.
type materialKey struct {
	color [4]float32
	fluid int32
	noise int32
}

// WriteGLTF writes the emitted cube geometry as a glTF document, one
// primitive per distinct material. Occluded faces were already culled
// by the emitter, so the export stays as sparse as the render list.
func WriteGLTF(cubes []*voxel.Cube, path string) error {
	if len(cubes) == 0 {
		return errors.New("nothing to export")
	}

	buckets := make(map[materialKey][]voxel.Vertex)
	var order []materialKey
	for _, cube := range cubes {
		key := materialKey{color: cube.Color, fluid: cube.Fluid, noise: cube.Noise}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], cube.VerticesWorld()...)
	}

	util.LogMeshDebug(fmt.Sprintf("[Export] %d cubes across %d materials", len(cubes), len(order)))
	doc := gltf.NewDocument()
	mesh := &gltf.Mesh{Name: "sculpt"}

	for _, key := range order {
		vertices := buckets[key]
		positions := make([][3]float32, len(vertices))
		normals := make([][3]float32, len(vertices))
		indices := make([]uint32, len(vertices))
		for i, vertex := range vertices {
			positions[i] = vertex.Position
			normals[i] = vertex.Normal
			indices[i] = uint32(i)
		}

		baseColor := key.color
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: fmt.Sprintf("voxel_%d_%d", key.fluid, key.noise),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &baseColor,
				MetallicFactor:  gltf.Float(0),
			},
		})

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
			Material: gltf.Index(uint32(len(doc.Materials) - 1)),
		})
	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "sculpt", Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	if err := gltf.Save(doc, path); err != nil {
		return errors.Wrapf(err, "write gltf %s", path)
	}
	util.LogIOInfo(fmt.Sprintf("[Export] wrote %d primitives to %s", len(mesh.Primitives), path))
	return nil
}
