package cuboids

import (
	"github.com/pkg/errors"
)

// MaxGridCells is the largest number of cells that
// NewVoxelGrid will allocate for a bounding box.
const MaxGridCells = 1 << 30

var (
	ErrEmptyInput     = errors.New("no voxels in input")
	ErrMultipleGrains = errors.New("input contains more than one grain index")
	ErrGridTooLarge   = errors.New("bounding box has too many cells")
)

// A VoxelRecord is one occupied voxel of a grain, in
// absolute voxel coordinates.
type VoxelRecord struct {
	Grain int
	X     int
	Y     int
	Z     int
}

// A VoxelGrid is a dense occupancy grid covering the
// bounding box of a grain.
//
// Cells are stored in a flat slice with z varying fastest,
// so every z line is contiguous.
type VoxelGrid struct {
	Grain int

	// Origin is the absolute coordinate of local cell
	// (0, 0, 0).
	Origin [3]int

	width  int
	height int
	depth  int
	cells  []bool
}

// NewEmptyGrid creates an unoccupied grid with the given
// origin and dimensions.
//
// The dimensions are not checked against MaxGridCells.
func NewEmptyGrid(origin [3]int, width, height, depth int) *VoxelGrid {
	return &VoxelGrid{
		Origin: origin,
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]bool, width*height*depth),
	}
}

// NewVoxelGrid builds a grid from the occupied voxels of
// a single grain.
//
// The grain index is taken from the first record, and an
// error wrapping ErrMultipleGrains is returned if any other
// record disagrees with it.
func NewVoxelGrid(records []VoxelRecord) (*VoxelGrid, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "build voxel grid")
	}
	grain := records[0].Grain
	min := [3]int{records[0].X, records[0].Y, records[0].Z}
	max := min
	for i, r := range records {
		if r.Grain != grain {
			return nil, errors.Wrapf(ErrMultipleGrains, "build voxel grid: record %d has grain %d, expected %d",
				i, r.Grain, grain)
		}
		for axis, c := range [3]int{r.X, r.Y, r.Z} {
			if c < min[axis] {
				min[axis] = c
			}
			if c > max[axis] {
				max[axis] = c
			}
		}
	}

	var extents [3]int
	cells := 1
	for axis := range extents {
		// Extents wrap around to negative values when the
		// coordinates span more than the int range.
		extents[axis] = max[axis] - min[axis] + 1
		if extents[axis] <= 0 || extents[axis] > MaxGridCells/cells {
			return nil, errors.Wrapf(ErrGridTooLarge, "build voxel grid: bounds %v to %v", min, max)
		}
		cells *= extents[axis]
	}

	g := NewEmptyGrid(min, extents[0], extents[1], extents[2])
	g.Grain = grain
	for _, r := range records {
		g.Set(r.X-min[0], r.Y-min[1], r.Z-min[2], true)
	}
	return g, nil
}

// Records lists the occupied cells in absolute
// coordinates, ordered by x, then y, then z.
func (v *VoxelGrid) Records() []VoxelRecord {
	var res []VoxelRecord
	for i, c := range v.cells {
		if !c {
			continue
		}
		res = append(res, VoxelRecord{
			Grain: v.Grain,
			X:     v.Origin[0] + i/(v.height*v.depth),
			Y:     v.Origin[1] + (i/v.depth)%v.height,
			Z:     v.Origin[2] + i%v.depth,
		})
	}
	return res
}

// Size gets the local dimensions of the grid.
func (v *VoxelGrid) Size() (width, height, depth int) {
	return v.width, v.height, v.depth
}

// Min gets the absolute coordinate of the first cell.
func (v *VoxelGrid) Min() [3]int {
	return v.Origin
}

// Max gets the absolute coordinate of the last cell.
func (v *VoxelGrid) Max() [3]int {
	return [3]int{
		v.Origin[0] + v.width - 1,
		v.Origin[1] + v.height - 1,
		v.Origin[2] + v.depth - 1,
	}
}

// Get checks if a cell is occupied, using local indices.
// If a coordinate is out of bounds, false is returned.
func (v *VoxelGrid) Get(x, y, z int) bool {
	if !v.inBounds(x, y, z) {
		return false
	}
	return v.cells[v.index(x, y, z)]
}

// Set updates a cell using local indices.
// The coordinates must be within bounds.
func (v *VoxelGrid) Set(x, y, z int, occupied bool) {
	if !v.inBounds(x, y, z) {
		panic("voxel index out of bounds")
	}
	v.cells[v.index(x, y, z)] = occupied
}

// Count gets the number of occupied cells.
func (v *VoxelGrid) Count() int {
	var n int
	for _, c := range v.cells {
		if c {
			n++
		}
	}
	return n
}

// ClearBox marks every cell in a box as unoccupied.
// The corner is given in local indices and dims is the
// (dx, dy, dz) extent of the box.
func (v *VoxelGrid) ClearBox(corner, dims [3]int) {
	for x := corner[0]; x < corner[0]+dims[0]; x++ {
		for y := corner[1]; y < corner[1]+dims[1]; y++ {
			line := v.zLine(x, y)
			for z := corner[2]; z < corner[2]+dims[2]; z++ {
				line[z] = false
			}
		}
	}
}

// Clone creates a deep copy of the grid.
func (v *VoxelGrid) Clone() *VoxelGrid {
	res := *v
	res.cells = append([]bool{}, v.cells...)
	return &res
}

func (v *VoxelGrid) zLine(x, y int) []bool {
	start := v.index(x, y, 0)
	return v.cells[start : start+v.depth]
}

func (v *VoxelGrid) index(x, y, z int) int {
	return (x*v.height+y)*v.depth + z
}

func (v *VoxelGrid) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < v.width && y < v.height && z < v.depth
}
