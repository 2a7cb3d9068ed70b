package editor

import "github.com/voxden/sculpt/engine/voxel"

// SelectionShape picks how the movable selection volume expands around
// its center.
type SelectionShape int

const (
	SelectionSphere SelectionShape = iota
	SelectionCube
	SelectionSquareXZ
	SelectionSquareXY
	SelectionSquareYZ
	SelectionCircleXZ
	SelectionCircleXY
	SelectionCircleYZ
)

func clampMax(value, limit int32) int32 {
	if value > limit {
		return limit
	}
	return value
}

func clampMin(value, limit int32) int32 {
	if value < limit {
		return limit
	}
	return value
}

// SelectionVoxels expands the selection into finest-level voxel indices,
// clamped to the addressable range of a tree with the given depth. The
// square and circle shapes are flat, one voxel thick on the fixed axis.
func SelectionVoxels(center voxel.Int3, radius int32, shape SelectionShape, depth uint32) []voxel.Int3 {
	limit := voxel.Range(depth)
	xmin := clampMin(center.X-radius-1, -limit)
	xmax := clampMax(center.X+radius+1, limit)
	ymin := clampMin(center.Y-radius-1, -limit)
	ymax := clampMax(center.Y+radius+1, limit)
	zmin := clampMin(center.Z-radius-1, -limit)
	zmax := clampMax(center.Z+radius+1, limit)

	radiusSquared := radius * radius
	var voxels []voxel.Int3

	switch shape {
	case SelectionSphere:
		for x := xmin; x < xmax; x++ {
			for y := ymin; y < ymax; y++ {
				for z := zmin; z < zmax; z++ {
					d := center.Sub(voxel.Int3{X: x, Y: y, Z: z})
					if d.X*d.X+d.Y*d.Y+d.Z*d.Z < radiusSquared {
						voxels = append(voxels, voxel.Int3{X: x, Y: y, Z: z})
					}
				}
			}
		}
	case SelectionCube:
		for x := xmin; x < xmax; x++ {
			for y := ymin; y < ymax; y++ {
				for z := zmin; z < zmax; z++ {
					d := center.Sub(voxel.Int3{X: x, Y: y, Z: z})
					if voxel.Abs(d.X) < radius && voxel.Abs(d.Y) < radius && voxel.Abs(d.Z) < radius {
						voxels = append(voxels, voxel.Int3{X: x, Y: y, Z: z})
					}
				}
			}
		}
	case SelectionSquareXZ:
		for x := xmin; x < xmax; x++ {
			for z := zmin; z < zmax; z++ {
				if voxel.Abs(center.X-x) < radius && voxel.Abs(center.Z-z) < radius {
					voxels = append(voxels, voxel.Int3{X: x, Y: center.Y, Z: z})
				}
			}
		}
	case SelectionSquareXY:
		for x := xmin; x < xmax; x++ {
			for y := ymin; y < ymax; y++ {
				if voxel.Abs(center.X-x) < radius && voxel.Abs(center.Y-y) < radius {
					voxels = append(voxels, voxel.Int3{X: x, Y: y, Z: center.Z})
				}
			}
		}
	case SelectionSquareYZ:
		for y := ymin; y < ymax; y++ {
			for z := zmin; z < zmax; z++ {
				if voxel.Abs(center.Y-y) < radius && voxel.Abs(center.Z-z) < radius {
					voxels = append(voxels, voxel.Int3{X: center.X, Y: y, Z: z})
				}
			}
		}
	case SelectionCircleXZ:
		for x := xmin; x < xmax; x++ {
			for z := zmin; z < zmax; z++ {
				dx, dz := center.X-x, center.Z-z
				if dx*dx+dz*dz < radiusSquared {
					voxels = append(voxels, voxel.Int3{X: x, Y: center.Y, Z: z})
				}
			}
		}
	case SelectionCircleXY:
		for x := xmin; x < xmax; x++ {
			for y := ymin; y < ymax; y++ {
				dx, dy := center.X-x, center.Y-y
				if dx*dx+dy*dy < radiusSquared {
					voxels = append(voxels, voxel.Int3{X: x, Y: y, Z: center.Z})
				}
			}
		}
	case SelectionCircleYZ:
		for y := ymin; y < ymax; y++ {
			for z := zmin; z < zmax; z++ {
				dy, dz := center.Y-y, center.Z-z
				if dy*dy+dz*dz < radiusSquared {
					voxels = append(voxels, voxel.Int3{X: center.X, Y: y, Z: z})
				}
			}
		}
	}
	return voxels
}
