// Command decompose splits the voxels of a grain into
// disjoint cuboids and saves them as a CSV file.
//
// The input is a whitespace-delimited voxel list with a
// header line, followed by one "index x y z" row for every
// occupied voxel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/essentials"
)

func main() {
	var centered bool
	var multiGrain bool
	var histogramPath string
	var histogramBins int

	flag.BoolVar(&centered, "centered", false, "write cuboid centers and half-extents instead of voxel bounds")
	flag.BoolVar(&multiGrain, "multi-grain", false, "decompose every grain index separately")
	flag.StringVar(&histogramPath, "histogram", "", "optional PNG path for a histogram of cuboid volumes")
	flag.IntVar(&histogramBins, "histogram-bins", 20, "number of bins in the volume histogram")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input.txt> <output.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}

	inPath := flag.Args()[0]
	outPath := flag.Args()[1]

	log.Println("Reading", inPath, "...")
	records, err := ReadRecords(inPath)
	essentials.Must(err)
	log.Printf("Read %d voxels", len(records))

	results, err := DecomposeRecords(records, multiGrain)
	essentials.Must(err)
	for _, res := range results {
		log.Printf("Grain %d: %d cuboids covering %d voxels", res.Grain, len(res.Cuboids),
			res.TotalVolume)
	}

	log.Println("Writing", outPath, "...")
	essentials.Must(SaveResults(outPath, centered, results))

	if histogramPath != "" {
		log.Println("Saving histogram to", histogramPath, "...")
		essentials.Must(SaveVolumeHistogram(histogramPath, histogramBins, results))
	}
}

func ReadRecords(path string) ([]cuboids.VoxelRecord, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	records, err := cuboids.ReadVoxelList(r)
	return records, essentials.AddCtx(path, err)
}

func DecomposeRecords(records []cuboids.VoxelRecord, multiGrain bool) ([]*cuboids.Result, error) {
	if multiGrain {
		return cuboids.DecomposeGrains(records)
	}
	grid, err := cuboids.NewVoxelGrid(records)
	if err != nil {
		return nil, err
	}
	res, err := cuboids.Decompose(grid)
	if err != nil {
		return nil, err
	}
	return []*cuboids.Result{res}, nil
}

func SaveResults(path string, centered bool, results []*cuboids.Result) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := cuboids.WriteCSV(w, centered, results...); err != nil {
		return err
	}
	return w.Close()
}
