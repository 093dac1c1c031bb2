package main

import (
	"math"

	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/model3d/model3d"
)

type VoxelCoord [3]int

// A VoxelSpace maps voxel indices of a cubic grid to
// points in model space.
type VoxelSpace struct {
	Origin   model3d.Coord3D
	Size     float64
	GridSize int
}

// NewVoxelSpace creates a cubic space centered on the
// bounds of b, with the longest side spanning the grid.
func NewVoxelSpace(b model3d.Bounder, gridSize int) *VoxelSpace {
	sizes := b.Max().Sub(b.Min())
	size := math.Max(math.Max(sizes.X, sizes.Y), sizes.Z)
	unit := model3d.Coord3D{X: 1, Y: 1, Z: 1}
	return &VoxelSpace{
		Origin:   sizes.Sub(unit.Scale(size)).Scale(0.5).Add(b.Min()),
		Size:     size,
		GridSize: gridSize,
	}
}

// Coord gets the center of a voxel.
func (v *VoxelSpace) Coord(vc VoxelCoord) model3d.Coord3D {
	cellSize := v.Size / float64(v.GridSize)
	return v.Origin.Add(model3d.Coord3D{
		X: (float64(vc[0]) + 0.5) * cellSize,
		Y: (float64(vc[1]) + 0.5) * cellSize,
		Z: (float64(vc[2]) + 0.5) * cellSize,
	})
}

// NewGrid creates an empty grid covering the space, with
// voxel indices as absolute coordinates.
func (v *VoxelSpace) NewGrid(grain int) *cuboids.VoxelGrid {
	g := cuboids.NewEmptyGrid([3]int{}, v.GridSize, v.GridSize, v.GridSize)
	g.Grain = grain
	return g
}

// NewPaddedGrid is like NewGrid, but with a margin of one
// voxel on every side, so voxel -1 is local index 0.
func (v *VoxelSpace) NewPaddedGrid() *cuboids.VoxelGrid {
	n := v.GridSize + 2
	return cuboids.NewEmptyGrid([3]int{-1, -1, -1}, n, n, n)
}
