package cuboids

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// VoxelListHeader is the header line written by
// WriteVoxelList.
const VoxelListHeader = "index x y z"

// ReadVoxelList reads whitespace-delimited voxel records.
//
// The first line is a header and is ignored. Every other
// non-blank line must contain four integers: the grain
// index followed by the x, y, and z coordinates.
func ReadVoxelList(r io.Reader) ([]VoxelRecord, error) {
	scanner := bufio.NewScanner(r)
	var records []VoxelRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, errors.Errorf("read voxel list: line %d: expected 4 fields but got %d",
				lineNum, len(fields))
		}
		var values [4]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "read voxel list: line %d", lineNum)
			}
			values[i] = v
		}
		records = append(records, VoxelRecord{
			Grain: values[0],
			X:     values[1],
			Y:     values[2],
			Z:     values[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read voxel list")
	}
	return records, nil
}

// WriteVoxelList writes records in the format read by
// ReadVoxelList.
func WriteVoxelList(w io.Writer, records []VoxelRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, VoxelListHeader); err != nil {
		return errors.Wrap(err, "write voxel list")
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", r.Grain, r.X, r.Y, r.Z); err != nil {
			return errors.Wrap(err, "write voxel list")
		}
	}
	return errors.Wrap(bw.Flush(), "write voxel list")
}
