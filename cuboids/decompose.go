package cuboids

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var ErrVolumeMismatch = errors.New("extracted volume does not match occupied voxel count")

// A Cuboid is a box of voxels in absolute coordinates.
type Cuboid struct {
	Volume int
	Corner [3]int
	Dims   [3]int
}

// Max gets the last voxel inside the cuboid, inclusive.
func (c Cuboid) Max() [3]int {
	var res [3]int
	for i := range res {
		res[i] = c.Corner[i] + c.Dims[i] - 1
	}
	return res
}

// Contains checks if a voxel is inside the cuboid.
func (c Cuboid) Contains(x, y, z int) bool {
	max := c.Max()
	for i, v := range [3]int{x, y, z} {
		if v < c.Corner[i] || v > max[i] {
			return false
		}
	}
	return true
}

// Rect gets the region covered by the cuboid when every
// voxel is a unit cube centered on its coordinate.
func (c Cuboid) Rect() *model3d.Rect {
	max := c.Max()
	return &model3d.Rect{
		MinVal: model3d.Coord3D{
			X: float64(c.Corner[0]) - 0.5,
			Y: float64(c.Corner[1]) - 0.5,
			Z: float64(c.Corner[2]) - 0.5,
		},
		MaxVal: model3d.Coord3D{
			X: float64(max[0]) + 0.5,
			Y: float64(max[1]) + 0.5,
			Z: float64(max[2]) + 0.5,
		},
	}
}

// A Result is the decomposition of one grain.
type Result struct {
	Grain       int
	Cuboids     []Cuboid
	TotalVolume int
}

// Bounds gets the first and last voxel covered by any of
// the cuboids. It returns false if there are no cuboids.
func (r *Result) Bounds() (min, max [3]int, ok bool) {
	if len(r.Cuboids) == 0 {
		return
	}
	min, max = r.Cuboids[0].Corner, r.Cuboids[0].Max()
	for _, c := range r.Cuboids[1:] {
		cMax := c.Max()
		for i := 0; i < 3; i++ {
			if c.Corner[i] < min[i] {
				min[i] = c.Corner[i]
			}
			if cMax[i] > max[i] {
				max[i] = cMax[i]
			}
		}
	}
	return min, max, true
}

// Decompose repeatedly removes the largest cuboid from the
// grid until no occupied cells remain.
//
// The grid is emptied in the process; use Clone to keep a
// copy. The decomposition is greedy, so the number of
// cuboids is not necessarily minimal.
//
// If the extracted cuboids do not account for exactly the
// occupied cells, an error wrapping ErrVolumeMismatch is
// returned.
func Decompose(g *VoxelGrid) (*Result, error) {
	expected := g.Count()
	res := &Result{Grain: g.Grain}
	for {
		best := FindLargestCuboid(g)
		if best.Volume == 0 {
			break
		}
		var corner [3]int
		for i := range corner {
			corner[i] = best.Corner[i] + g.Origin[i]
		}
		res.Cuboids = append(res.Cuboids, Cuboid{
			Volume: best.Volume,
			Corner: corner,
			Dims:   best.Dims,
		})
		res.TotalVolume += best.Volume
		g.ClearBox(best.Corner, best.Dims)
	}
	if res.TotalVolume != expected || g.Count() != 0 {
		return nil, errors.Wrapf(ErrVolumeMismatch, "decompose grain %d: extracted %d of %d voxels",
			g.Grain, res.TotalVolume, expected)
	}
	return res, nil
}

// GroupByGrain splits records by grain index, in
// ascending order of grain index.
func GroupByGrain(records []VoxelRecord) [][]VoxelRecord {
	indices := map[int]int{}
	var groups [][]VoxelRecord
	for _, r := range records {
		idx, ok := indices[r.Grain]
		if !ok {
			idx = len(groups)
			indices[r.Grain] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], r)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0].Grain < groups[j][0].Grain
	})
	return groups
}

// DecomposeGrains decomposes every grain in the records
// independently.
func DecomposeGrains(records []VoxelRecord) ([]*Result, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "decompose grains")
	}
	var results []*Result
	for _, group := range GroupByGrain(records) {
		grid, err := NewVoxelGrid(group)
		if err != nil {
			return nil, err
		}
		res, err := Decompose(grid)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
