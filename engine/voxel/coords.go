package voxel

import "github.com/go-gl/mathgl/mgl32"

// MaxDepth is the largest supported number of subdivision levels.
// Node counts grow with 8^depth, so this is a hard cap.
const MaxDepth uint32 = 8

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

const FaceCount = 6

var faceNormals = [FaceCount]Int3{
	XP: {X: 1},
	XN: {X: -1},
	YP: {Y: 1},
	YN: {Y: -1},
	ZP: {Z: 1},
	ZN: {Z: -1},
}

// Offset returns the index delta to the neighbor across this face,
// for a node whose edge length is step.
func (f FaceType) Offset(step int32) Int3 {
	return faceNormals[f].Mul(step)
}

func (f FaceType) Opposite() FaceType {
	switch f {
	case XP:
		return XN
	case XN:
		return XP
	case YP:
		return YN
	case YN:
		return YP
	case ZP:
		return ZN
	default:
		return ZP
	}
}

// Resolution returns the edge length, in finest-voxel units, of a node
// at the given subdivision level of a tree with the given depth.
func Resolution(depth, level uint32) int32 {
	return 1 << (depth - level)
}

// Range returns the half-extent of the index space. The root node sits at
// (-Range, -Range, -Range) and spans Resolution(depth, 1) units, so finest
// level indices run from -Range to Range-1 on each axis.
func Range(depth uint32) int32 {
	return (1 << (depth - 1)) / 2
}
