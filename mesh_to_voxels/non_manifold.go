package main

import (
	"sort"

	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// ParityVoxels marks every voxel whose center is inside
// the solid. Layers are filled concurrently.
func ParityVoxels(space *VoxelSpace, solid *NonManifoldSolid, grain int) *cuboids.VoxelGrid {
	res := space.NewGrid(grain)
	n := space.GridSize
	essentials.ConcurrentMap(0, n, func(x int) {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if solid.Contains(space.Coord(VoxelCoord{x, y, z})) {
					res.Set(x, y, z, true)
				}
			}
		}
	})
	return res
}

// NonManifoldSolid checks containment in a mesh that may
// have (near-)duplicate triangles, which would otherwise
// count twice when crossing the surface.
type NonManifoldSolid struct {
	model3d.Collider
}

var parityDirections = []model3d.Coord3D{
	{X: -0.40475415, Y: 0.86174632, Z: -0.30588783},
	{X: -0.81025101, Y: 0.38452447, Z: -0.44230559},
	{X: -0.09226702, Y: -0.74875317, Z: -0.65639584},
	{X: -0.99668947, Y: 0.08087344, Z: 0.00834144},
	{X: 0.67074042, Y: -0.60098173, Z: 0.43465877},
}

// Contains requires an odd number of surface crossings
// along every one of a few fixed ray directions.
func (n *NonManifoldSolid) Contains(c model3d.Coord3D) bool {
	if !model3d.InBounds(n, c) {
		return false
	}
	for _, d := range parityDirections {
		if n.crossings(c, d)%2 == 0 {
			return false
		}
	}
	return true
}

// crossings counts ray hits, merging hits whose distances
// along the ray are within a small tolerance.
func (n *NonManifoldSolid) crossings(origin, direction model3d.Coord3D) int {
	var scales []float64
	n.RayCollisions(&model3d.Ray{Origin: origin, Direction: direction}, func(r model3d.RayCollision) {
		scales = append(scales, r.Scale)
	})
	sort.Float64s(scales)

	tolerance := n.Max().Sub(n.Min()).Norm() * 1e-8
	var count int
	for i, s := range scales {
		if i == 0 || s-scales[i-1] > tolerance {
			count++
		}
	}
	return count
}
