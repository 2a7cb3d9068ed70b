package voxel

import "github.com/go-gl/mathgl/mgl32"

type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Cube is the renderable unit handed to the renderer, one per active
// node. Geometry lives in local space spanning [floorEpsilon, Scale] on
// each axis and is translated to the node's index origin by
// VerticesWorld. Each face is a fan of four triangles through a face
// center point; occluded faces are omitted entirely.
type Cube struct {
	Translation mgl32.Vec3
	Scale       float32
	Color       [4]float32
	Fluid       int32
	Noise       int32
	Occluded    [FaceCount]bool
	Smooth      bool
}

const (
	// cornerBulge is the fraction of the half-edge that exposed points
	// move towards or away from the cube center in smooth mode.
	cornerBulge float32 = 0.6
	// floorEpsilon keeps the lower faces just off the integer grid to
	// avoid z-fighting with coplanar neighbors.
	floorEpsilon float32 = 0.0001
)

// Corner indices: bit 0 set = +X half, bit 1 = +Y, bit 2 = +Z.
const (
	cornerLDF = iota
	cornerRDF
	cornerLUF
	cornerRUF
	cornerLDB
	cornerRDB
	cornerLUB
	cornerRUB
)

// cornerFaces lists the three faces touching each corner.
var cornerFaces = [8][3]FaceType{
	cornerLDF: {XN, YN, ZN},
	cornerRDF: {XP, YN, ZN},
	cornerLUF: {XN, YP, ZN},
	cornerRUF: {XP, YP, ZN},
	cornerLDB: {XN, YN, ZP},
	cornerRDB: {XP, YN, ZP},
	cornerLUB: {XN, YP, ZP},
	cornerRUB: {XP, YP, ZP},
}

// faceTriangles fans each face through its center point. Winding order
// matters: the renderer culls back faces.
var faceTriangles = [FaceCount][4][2]int{
	YN: {{cornerLDF, cornerRDF}, {cornerRDF, cornerRDB}, {cornerRDB, cornerLDB}, {cornerLDB, cornerLDF}},
	XN: {{cornerLDF, cornerLDB}, {cornerLUF, cornerLDF}, {cornerLUB, cornerLUF}, {cornerLDB, cornerLUB}},
	XP: {{cornerRDF, cornerRUF}, {cornerRUF, cornerRUB}, {cornerRUB, cornerRDB}, {cornerRDB, cornerRDF}},
	ZN: {{cornerLDF, cornerLUF}, {cornerLUF, cornerRUF}, {cornerRUF, cornerRDF}, {cornerRDF, cornerLDF}},
	ZP: {{cornerLDB, cornerRDB}, {cornerRDB, cornerRUB}, {cornerRUB, cornerLUB}, {cornerLUB, cornerLDB}},
	YP: {{cornerLUF, cornerLUB}, {cornerLUB, cornerRUB}, {cornerRUB, cornerRUF}, {cornerRUF, cornerLUF}},
}

// faceEmitOrder matches the order the renderer expects faces in.
var faceEmitOrder = [FaceCount]FaceType{YN, XN, XP, ZN, ZP, YP}

// exposed reports whether every listed face is unoccluded.
func (c *Cube) exposed(faces ...FaceType) bool {
	for _, face := range faces {
		if c.Occluded[face] {
			return false
		}
	}
	return true
}

// cornerPoint places one corner. A fully exposed corner, meaning all
// three touching faces are visible, is pulled towards the center in
// smooth mode to round the silhouette. Otherwise it stays on the flat
// cube surface.
func (c *Cube) cornerPoint(corner int) mgl32.Vec3 {
	center := c.Scale / 2
	faces := cornerFaces[corner]
	displaced := c.Smooth && c.exposed(faces[0], faces[1], faces[2])

	var point mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		positive := corner&(1<<axis) != 0
		switch {
		case displaced && positive:
			point[axis] = center + center*cornerBulge
		case displaced:
			point[axis] = center - center*cornerBulge
		case positive:
			point[axis] = c.Scale
		default:
			point[axis] = floorEpsilon
		}
	}
	return point
}

// facePoint places the center point of one face. It bulges outward only
// when the face and all four edge-adjacent faces are visible; the
// opposite face cannot affect this face's surface.
func (c *Cube) facePoint(face FaceType) mgl32.Vec3 {
	center := c.Scale / 2
	adjacent := []FaceType{face}
	for other := FaceType(0); other < FaceCount; other++ {
		if other != face && other != face.Opposite() {
			adjacent = append(adjacent, other)
		}
	}
	displaced := c.Smooth && c.exposed(adjacent...)

	point := mgl32.Vec3{center, center, center}
	axis, positive := faceAxis(face)
	switch {
	case displaced && positive:
		point[axis] = center + center*cornerBulge
	case displaced:
		point[axis] = center - center*cornerBulge
	case positive:
		point[axis] = c.Scale
	default:
		point[axis] = floorEpsilon
	}
	return point
}

func faceAxis(face FaceType) (axis int, positive bool) {
	switch face {
	case XP:
		return 0, true
	case XN:
		return 0, false
	case YP:
		return 1, true
	case YN:
		return 1, false
	case ZP:
		return 2, true
	default:
		return 2, false
	}
}

// Vertices emits the triangle list in local space. Twelve vertices per
// visible face, nothing for occluded ones. Normals are per triangle,
// the cross product of the triangle's own edges, so the creases of the
// smooth variant shade correctly.
func (c *Cube) Vertices() []Vertex {
	var corners [8]mgl32.Vec3
	for corner := range corners {
		corners[corner] = c.cornerPoint(corner)
	}

	vertices := make([]Vertex, 0, FaceCount*12)
	for _, face := range faceEmitOrder {
		if c.Occluded[face] {
			continue
		}
		center := c.facePoint(face)
		for _, triangle := range faceTriangles[face] {
			a := corners[triangle[0]]
			b := corners[triangle[1]]
			normal := a.Sub(center).Cross(b.Sub(center))
			for _, position := range [3]mgl32.Vec3{a, b, center} {
				vertices = append(vertices, Vertex{Position: position, Normal: normal})
			}
		}
	}
	return vertices
}

// VerticesWorld translates the local geometry to the node's position.
func (c *Cube) VerticesWorld() []Vertex {
	vertices := c.Vertices()
	for i := range vertices {
		vertices[i].Position[0] += c.Translation.X()
		vertices[i].Position[1] += c.Translation.Y()
		vertices[i].Position[2] += c.Translation.Z()
	}
	return vertices
}

// CountVertices mirrors the culling done by Vertices.
func (c *Cube) CountVertices() int {
	count := 0
	for face := FaceType(0); face < FaceCount; face++ {
		if !c.Occluded[face] {
			count += 12
		}
	}
	return count
}

// Depth is the camera distance used by the renderer to sort drawables
// back to front for alpha blending.
func (c *Cube) Depth(eye mgl32.Vec3) float32 {
	return c.Translation.Sub(eye).Len()
}

// drawables appends the cube for this node, or descends. An active
// branch covers its whole volume with one merged cube, so its children
// are not visited.
func (n *Node) drawables(out []*Cube) []*Cube {
	if n.active {
		return append(out, &Cube{
			Translation: n.pos.ToVec3(),
			Scale:       float32(n.resolution()),
			Color:       n.color,
			Fluid:       n.fluid,
			Noise:       n.noise,
			Occluded:    n.occluded,
			Smooth:      true,
		})
	}
	if n.hasChildren {
		for _, child := range n.children {
			out = child.drawables(out)
		}
	}
	return out
}

// Drawables flattens the tree into the per-frame render list.
func (t *Tree) Drawables() []*Cube {
	return t.root.drawables(nil)
}
