package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/cuboids/cuboids"
)

func writeVoxelFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "voxels.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDecomposeFile(t *testing.T) {
	inPath := writeVoxelFile(t, "index x y z\n"+
		"1 0 0 0\n1 1 0 0\n1 0 1 0\n1 1 1 0\n1 5 5 5\n")
	records, err := ReadRecords(inPath)
	require.NoError(t, err)

	results, err := DecomposeRecords(records, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].TotalVolume)

	outPath := filepath.Join(t.TempDir(), "cuboids.csv")
	require.NoError(t, SaveResults(outPath, false, results))
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "xmin,ymin,zmin,xmax,ymax,zmax\n"+
		"0,0,0,1,1,0\n"+
		"5,5,5,5,5,5\n", string(data))

	histPath := filepath.Join(t.TempDir(), "volumes.png")
	require.NoError(t, SaveVolumeHistogram(histPath, 5, results))
	info, err := os.Stat(histPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestDecomposeRecordsGrains(t *testing.T) {
	records := []cuboids.VoxelRecord{
		{Grain: 1, X: 0, Y: 0, Z: 0},
		{Grain: 2, X: 3, Y: 0, Z: 0},
	}
	_, err := DecomposeRecords(records, false)
	assert.Equal(t, cuboids.ErrMultipleGrains, errors.Cause(err))

	results, err := DecomposeRecords(records, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Grain)
	assert.Equal(t, 2, results[1].Grain)
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
