package main

import (
	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/model3d/model3d"
)

// ConnectivityVoxels voxelizes a surface by flooding the
// padded grid from its corner, outside the mesh.
//
// A voxel is occupied if the flood cannot reach it, or if
// the flood stopped at a surface right next to it.
func ConnectivityVoxels(space *VoxelSpace, collider model3d.Collider, grain int) *cuboids.VoxelGrid {
	f := &flood{
		Space:     space,
		Collider:  collider,
		Reached:   space.NewPaddedGrid(),
		Bordering: space.NewPaddedGrid(),
	}
	f.Run(VoxelCoord{-1, -1, -1})

	res := space.NewGrid(grain)
	n := space.GridSize
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				vc := VoxelCoord{x, y, z}
				if f.get(f.Bordering, vc) || !f.get(f.Reached, vc) {
					res.Set(x, y, z, true)
				}
			}
		}
	}
	return res
}

type flood struct {
	Space    *VoxelSpace
	Collider model3d.Collider

	// Reached marks voxels connected to the start.
	Reached *cuboids.VoxelGrid

	// Bordering marks reached voxels whose path to a
	// neighbor crosses the surface on their side.
	Bordering *cuboids.VoxelGrid
}

// Run performs a breadth-first flood through every pair of
// neighboring voxels not separated by the surface.
func (f *flood) Run(start VoxelCoord) {
	f.set(f.Reached, start)
	queue := []VoxelCoord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range f.neighbors(cur) {
			blocked, nearCur := f.crossing(cur, next)
			if !blocked {
				if !f.get(f.Reached, next) {
					f.set(f.Reached, next)
					queue = append(queue, next)
				}
			} else if nearCur {
				f.set(f.Bordering, cur)
			}
		}
	}
}

// crossing checks if the segment between two voxel
// centers hits the surface, and if so whether the hit is
// in the half of the segment closer to v1.
func (f *flood) crossing(v1, v2 VoxelCoord) (blocked, nearV1 bool) {
	c1 := f.Space.Coord(v1)
	c2 := f.Space.Coord(v2)

	// A sphere check only looks at a local neighborhood,
	// so it rules out most pairs before casting a ray.
	if !f.Collider.SphereCollision(c1.Mid(c2), c1.Dist(c2)/(2-1e-8)) {
		return false, false
	}
	coll, ok := f.Collider.FirstRayCollision(&model3d.Ray{
		Origin:    c1,
		Direction: c2.Sub(c1),
	})
	if !ok || coll.Scale > 1 {
		return false, false
	}
	return true, coll.Scale < 0.5
}

// neighbors lists the 26 neighbors of a voxel that lie
// in the padded grid.
func (f *flood) neighbors(vc VoxelCoord) []VoxelCoord {
	res := make([]VoxelCoord, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := VoxelCoord{vc[0] + dx, vc[1] + dy, vc[2] + dz}
				if f.inPadding(n) {
					res = append(res, n)
				}
			}
		}
	}
	return res
}

func (f *flood) inPadding(vc VoxelCoord) bool {
	for _, c := range vc {
		if c < -1 || c > f.Space.GridSize {
			return false
		}
	}
	return true
}

func (f *flood) get(g *cuboids.VoxelGrid, vc VoxelCoord) bool {
	return g.Get(vc[0]-g.Origin[0], vc[1]-g.Origin[1], vc[2]-g.Origin[2])
}

func (f *flood) set(g *cuboids.VoxelGrid, vc VoxelCoord) {
	g.Set(vc[0]-g.Origin[0], vc[1]-g.Origin[1], vc[2]-g.Origin[2], true)
}
