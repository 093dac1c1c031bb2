package cuboids

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeSingleVoxel(t *testing.T) {
	g, err := NewVoxelGrid([]VoxelRecord{{Grain: 3, X: 5, Y: 5, Z: 5}})
	require.NoError(t, err)
	res, err := Decompose(g)
	require.NoError(t, err)

	expected := []Cuboid{{Volume: 1, Corner: [3]int{5, 5, 5}, Dims: [3]int{1, 1, 1}}}
	if diff := cmp.Diff(expected, res.Cuboids); diff != "" {
		t.Errorf("cuboids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, res.TotalVolume)
	assert.Equal(t, 3, res.Grain)
}

func TestDecomposeBlock(t *testing.T) {
	var records []VoxelRecord
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				records = append(records, VoxelRecord{X: x + 10, Y: y - 2, Z: z + 1})
			}
		}
	}
	g, err := NewVoxelGrid(records)
	require.NoError(t, err)
	res, err := Decompose(g)
	require.NoError(t, err)

	expected := []Cuboid{{Volume: 24, Corner: [3]int{10, -2, 1}, Dims: [3]int{2, 3, 4}}}
	if diff := cmp.Diff(expected, res.Cuboids); diff != "" {
		t.Errorf("cuboids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 24, res.TotalVolume)
}

func TestDecomposeLShape(t *testing.T) {
	var records []VoxelRecord
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 2 && y == 2 {
				continue
			}
			records = append(records, VoxelRecord{X: x, Y: y})
		}
	}
	g, err := NewVoxelGrid(records)
	require.NoError(t, err)
	original := g.Clone()
	res, err := Decompose(g)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(res.Cuboids), 2)
	assert.Equal(t, 8, res.TotalVolume)
	assert.Equal(t, 6, res.Cuboids[0].Volume)
	checkDecomposition(t, original, res)
}

func TestDecomposeDisjointVoxels(t *testing.T) {
	g, err := NewVoxelGrid([]VoxelRecord{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 10}})
	require.NoError(t, err)

	w, h, d := g.Size()
	assert.Equal(t, [3]int{11, 11, 11}, [3]int{w, h, d})
	assert.Equal(t, 2, g.Count())

	res, err := Decompose(g)
	require.NoError(t, err)

	// The last x layer is scanned first, so ties favor it.
	expected := []Cuboid{
		{Volume: 1, Corner: [3]int{10, 10, 10}, Dims: [3]int{1, 1, 1}},
		{Volume: 1, Corner: [3]int{0, 0, 0}, Dims: [3]int{1, 1, 1}},
	}
	if diff := cmp.Diff(expected, res.Cuboids); diff != "" {
		t.Errorf("cuboids mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeEmptyGrid(t *testing.T) {
	res, err := Decompose(NewEmptyGrid([3]int{1, 2, 3}, 2, 2, 2))
	require.NoError(t, err)
	assert.Empty(t, res.Cuboids)
	assert.Equal(t, 0, res.TotalVolume)
	_, _, ok := res.Bounds()
	assert.False(t, ok)
}

func TestDecomposeRandom(t *testing.T) {
	gen := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		g := NewEmptyGrid([3]int{-3, 7, 2}, 1+gen.Intn(6), 1+gen.Intn(5), 1+gen.Intn(4))
		w, h, d := g.Size()
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				for z := 0; z < d; z++ {
					g.Set(x, y, z, gen.Float64() < 0.7)
				}
			}
		}
		original := g.Clone()
		res, err := Decompose(g)
		require.NoError(t, err)
		assert.Zero(t, g.Count())
		checkDecomposition(t, original, res)
	}
}

func TestFindLargestCuboid(t *testing.T) {
	g := NewEmptyGrid([3]int{}, 4, 4, 4)
	for x := 1; x < 3; x++ {
		for y := 1; y < 3; y++ {
			for z := 2; z < 4; z++ {
				g.Set(x, y, z, true)
			}
		}
	}
	g.Set(0, 0, 0, true)
	g.Set(3, 0, 0, true)
	g.Set(3, 0, 1, true)

	best := FindLargestCuboid(g)
	expected := BestCuboid{Corner: [3]int{1, 1, 2}, Dims: [3]int{2, 2, 2}, Volume: 8}
	assert.Equal(t, expected, best)
	assert.Equal(t, 11, g.Count(), "grid should not be modified")
}

func TestDecomposeGrains(t *testing.T) {
	records := []VoxelRecord{
		{Grain: 2, X: 0, Y: 0, Z: 0},
		{Grain: 1, X: 4, Y: 4, Z: 4},
		{Grain: 2, X: 1, Y: 0, Z: 0},
		{Grain: 1, X: 4, Y: 4, Z: 5},
		{Grain: 1, X: 4, Y: 4, Z: 6},
	}
	results, err := DecomposeGrains(records)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 1, results[0].Grain)
	assert.Equal(t, 3, results[0].TotalVolume)
	assert.Equal(t, []Cuboid{{Volume: 3, Corner: [3]int{4, 4, 4}, Dims: [3]int{1, 1, 3}}}, results[0].Cuboids)

	assert.Equal(t, 2, results[1].Grain)
	assert.Equal(t, []Cuboid{{Volume: 2, Corner: [3]int{0, 0, 0}, Dims: [3]int{2, 1, 1}}}, results[1].Cuboids)

	_, err = DecomposeGrains(nil)
	assert.Equal(t, ErrEmptyInput, errors.Cause(err))
}

func TestResultBounds(t *testing.T) {
	res := &Result{Cuboids: []Cuboid{
		{Volume: 4, Corner: [3]int{0, 1, 2}, Dims: [3]int{2, 2, 1}},
		{Volume: 3, Corner: [3]int{-1, 2, 5}, Dims: [3]int{1, 1, 3}},
	}}
	min, max, ok := res.Bounds()
	assert.True(t, ok)
	assert.Equal(t, [3]int{-1, 1, 2}, min)
	assert.Equal(t, [3]int{1, 2, 7}, max)
}

// checkDecomposition verifies that the cuboids of res are
// disjoint and cover exactly the occupied cells of g.
func checkDecomposition(t *testing.T, g *VoxelGrid, res *Result) {
	t.Helper()
	w, h, d := g.Size()
	covered := NewEmptyGrid(g.Origin, w, h, d)
	var volume int
	for _, c := range res.Cuboids {
		assert.Equal(t, c.Dims[0]*c.Dims[1]*c.Dims[2], c.Volume)
		volume += c.Volume
		max := c.Max()
		for x := c.Corner[0]; x <= max[0]; x++ {
			for y := c.Corner[1]; y <= max[1]; y++ {
				for z := c.Corner[2]; z <= max[2]; z++ {
					lx, ly, lz := x-g.Origin[0], y-g.Origin[1], z-g.Origin[2]
					require.True(t, g.Get(lx, ly, lz), "cuboid %v covers empty voxel", c)
					require.False(t, covered.Get(lx, ly, lz), "cuboid %v overlaps another", c)
					covered.Set(lx, ly, lz, true)
				}
			}
		}
	}
	assert.Equal(t, g.Count(), volume)
	assert.Equal(t, volume, res.TotalVolume)
	assert.Equal(t, g.Count(), covered.Count())
}

func TestDecomposeVolumeMismatch(t *testing.T) {
	g := NewEmptyGrid([3]int{}, 2, 1, 1)
	g.Set(0, 0, 0, true)

	// A cell outside the grid's extents is counted as
	// occupied but can never be part of a cuboid.
	g.cells = append(g.cells, true)

	_, err := Decompose(g)
	require.Error(t, err)
	assert.Equal(t, ErrVolumeMismatch, errors.Cause(err))
	assert.Contains(t, err.Error(), "extracted 1 of 2 voxels")
}
