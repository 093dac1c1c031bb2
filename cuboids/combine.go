package cuboids

import "github.com/unixpickle/essentials"

// A BestCuboid is the largest cuboid found by one scan of
// a grid, in local grid indices.
//
// A zero Volume means the grid had no occupied cells.
type BestCuboid struct {
	Corner [3]int
	Dims   [3]int
	Volume int
}

func (b *BestCuboid) consider(x, y, z int, t SizeTuple) {
	if v := t.Volume(); v > b.Volume {
		// Tuples read (xExtent, zLength, yExtent).
		*b = BestCuboid{
			Corner: [3]int{x, y, z},
			Dims:   [3]int{t[0], t[2], t[1]},
			Volume: v,
		}
	}
}

// FindLargestCuboid scans the grid for the largest cuboid
// of occupied cells.
//
// Layers are combined from the last x index down to 0,
// then by ascending y and z. Ties keep the first cuboid
// encountered, and single-layer cuboids at a point are
// visited before cuboids spanning several layers.
//
// The grid is only read.
func FindLargestCuboid(g *VoxelGrid) BestCuboid {
	frontiers := make([][][]SizeTuple, g.width)
	essentials.ConcurrentMap(0, g.width, func(x int) {
		frontiers[x] = layerFrontiers(g, x)
	})

	var best BestCuboid
	for x := g.width - 1; x >= 0; x-- {
		for y := 0; y < g.height; y++ {
			for z := 0; z < g.depth; z++ {
				i := y*g.depth + z
				cur := frontiers[x][i]
				for _, t := range cur {
					best.consider(x, y, z, t)
				}
				if x == g.width-1 || len(cur) == 0 || len(frontiers[x+1][i]) == 0 {
					continue
				}
				candidates := append([]SizeTuple{}, cur...)
				for _, top := range frontiers[x+1][i] {
					for _, c := range cur {
						merged := SizeTuple{
							top[0] + 1,
							essentials.MinInt(c[1], top[1]),
							essentials.MinInt(c[2], top[2]),
						}
						best.consider(x, y, z, merged)
						candidates = append(candidates, merged)
					}
				}
				frontiers[x][i] = ReduceFrontier(candidates)
			}
		}
	}
	return best
}
