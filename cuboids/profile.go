package cuboids

import "github.com/unixpickle/essentials"

// Frontier2D computes the (zLength, yExtent) rectangles
// anchored at row a and column b of a depth layer.
//
// Each entry depth[row][col] is the run length of occupied
// cells starting at (row, col) and extending along the
// columns' axis. Rectangles grow toward increasing rows.
func Frontier2D(depth [][]int, a, b int) []SizeTuple {
	zLen := depth[a][b]
	var candidates []SizeTuple
	for k := a; k < len(depth); k++ {
		zLen = essentials.MinInt(zLen, depth[k][b])
		if zLen == 0 {
			break
		}
		candidates = append(candidates, SizeTuple{zLen, k - a + 1})
	}
	return ReduceFrontier(candidates)
}

// layerDepths computes the z run lengths of every cell in
// the x layer, indexed as [y][z].
func layerDepths(g *VoxelGrid, x int) [][]int {
	depths := make([][]int, g.height)
	for y := range depths {
		depths[y] = RunLengths(g.zLine(x, y))
	}
	return depths
}

// layerFrontiers computes the single-layer frontier of
// every (y, z) point in an x layer. The tuples are given
// an x extent of 1, so they read (1, zLength, yExtent).
func layerFrontiers(g *VoxelGrid, x int) [][]SizeTuple {
	depths := layerDepths(g, x)
	res := make([][]SizeTuple, g.height*g.depth)
	for y := 0; y < g.height; y++ {
		for z := 0; z < g.depth; z++ {
			if depths[y][z] == 0 {
				continue
			}
			frontier := Frontier2D(depths, y, z)
			layer := make([]SizeTuple, len(frontier))
			for i, t := range frontier {
				layer[i] = SizeTuple{1, t[0], t[1]}
			}
			res[y*g.depth+z] = layer
		}
	}
	return res
}
