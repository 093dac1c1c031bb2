package cuboids

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var (
	PixelHeader    = []string{"xmin", "ymin", "zmin", "xmax", "ymax", "zmax"}
	CenteredHeader = []string{"x", "y", "z", "dx", "dy", "dz", "i"}
)

// WriteCSV writes the cuboids of every result as CSV rows,
// in order of extraction.
//
// If centered is false, rows hold the inclusive voxel
// bounds of each cuboid. If centered is true, rows hold
// the center and half-extent of each cuboid's Rect along
// with its grain index.
func WriteCSV(w io.Writer, centered bool, results ...*Result) error {
	cw := csv.NewWriter(w)
	header := PixelHeader
	if centered {
		header = CenteredHeader
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write cuboids")
	}
	for _, res := range results {
		for _, c := range res.Cuboids {
			var row []string
			if centered {
				row = centeredRow(c, res.Grain)
			} else {
				row = pixelRow(c)
			}
			if err := cw.Write(row); err != nil {
				return errors.Wrap(err, "write cuboids")
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "write cuboids")
}

func pixelRow(c Cuboid) []string {
	max := c.Max()
	row := make([]string, 0, 6)
	for _, v := range append(c.Corner[:], max[:]...) {
		row = append(row, strconv.Itoa(v))
	}
	return row
}

func centeredRow(c Cuboid, grain int) []string {
	rect := c.Rect()
	center := rect.MinVal.Mid(rect.MaxVal)
	half := rect.MaxVal.Sub(rect.MinVal).Scale(0.5)
	row := make([]string, 0, 7)
	for _, v := range []float64{center.X, center.Y, center.Z, half.X, half.Y, half.Z} {
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return append(row, strconv.Itoa(grain))
}

// A Box is one row of a centered cuboid file.
type Box struct {
	Rect  *model3d.Rect
	Grain int
}

// ReadCenteredCSV reads cuboids written by WriteCSV in the
// centered layout.
func ReadCenteredCSV(r io.Reader) ([]Box, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CenteredHeader)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read cuboids")
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "read cuboids")
	}
	for i, name := range CenteredHeader {
		if strings.TrimSpace(rows[0][i]) != name {
			return nil, errors.Errorf("read cuboids: unexpected header %v", rows[0])
		}
	}
	var boxes []Box
	for i, row := range rows[1:] {
		var values [6]float64
		for j := range values {
			values[j], err = strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "read cuboids: row %d", i+2)
			}
		}
		grain, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, errors.Wrapf(err, "read cuboids: row %d", i+2)
		}
		center := model3d.Coord3D{X: values[0], Y: values[1], Z: values[2]}
		half := model3d.Coord3D{X: values[3], Y: values[4], Z: values[5]}
		boxes = append(boxes, Box{
			Rect:  &model3d.Rect{MinVal: center.Sub(half), MaxVal: center.Add(half)},
			Grain: grain,
		})
	}
	return boxes, nil
}

// CuboidMesh creates a closed mesh with one box per Rect.
func CuboidMesh(boxes []Box) *model3d.Mesh {
	mesh := model3d.NewMesh()
	for _, b := range boxes {
		mesh.AddMesh(model3d.NewMeshRect(b.Rect.MinVal, b.Rect.MaxVal))
	}
	return mesh
}
