package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MaxGridScale bounds the reference grid size.
const MaxGridScale int32 = 200

// Grid is the flat reference overlay drawn under the model: a line list
// with one row and one column line per voxel step on the XZ plane.
type Grid struct {
	Scale       int32
	Translation mgl32.Vec3
	Color       [4]float32
	vertices    []Vertex
}

// NewGrid builds a centered grid spanning scale units per side.
func NewGrid(scale int32) (*Grid, error) {
	if scale < 1 || scale > MaxGridScale {
		return nil, errors.Errorf("grid scale %d outside [1, %d]", scale, MaxGridScale)
	}
	g := &Grid{
		Scale: scale,
		Color: [4]float32{0.5, 0.5, 0.5, 0.1},
	}
	g.build()
	return g, nil
}

func (g *Grid) build() {
	half := float32(g.Scale) / 2
	up := [3]float32{0, 1, 0}
	g.vertices = make([]Vertex, 0, 4*(g.Scale+1))

	for row := int32(0); row <= g.Scale; row++ {
		z := -half + float32(row)
		g.vertices = append(g.vertices,
			Vertex{Position: [3]float32{-half, 0, z}, Normal: up},
			Vertex{Position: [3]float32{half, 0, z}, Normal: up},
		)
	}
	for col := int32(0); col <= g.Scale; col++ {
		x := -half + float32(col)
		g.vertices = append(g.vertices,
			Vertex{Position: [3]float32{x, 0, -half}, Normal: up},
			Vertex{Position: [3]float32{x, 0, half}, Normal: up},
		)
	}
}

// Vertices returns the line list, two vertices per line.
func (g *Grid) Vertices() []Vertex {
	return g.vertices
}

func (g *Grid) VerticesWorld() []Vertex {
	vertices := make([]Vertex, len(g.vertices))
	copy(vertices, g.vertices)
	for i := range vertices {
		vertices[i].Position[0] += g.Translation.X()
		vertices[i].Position[1] += g.Translation.Y()
		vertices[i].Position[2] += g.Translation.Z()
	}
	return vertices
}

func (g *Grid) CountVertices() int {
	return len(g.vertices)
}
