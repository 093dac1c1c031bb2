package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/cuboids/cuboids"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveVolumeHistogram plots the distribution of cuboid
// volumes across all results.
func SaveVolumeHistogram(path string, bins int, results []*cuboids.Result) error {
	var volumes plotter.Values
	var total int
	for _, res := range results {
		for _, c := range res.Cuboids {
			volumes = append(volumes, float64(c.Volume))
		}
		total += res.TotalVolume
	}
	if len(volumes) == 0 {
		return errors.New("save histogram: no cuboids")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d cuboids, %d voxels", len(volumes), total)
	p.X.Label.Text = "Volume (voxels)"
	p.Y.Label.Text = "Count"

	hist, err := plotter.NewHist(volumes, bins)
	if err != nil {
		return errors.Wrap(err, "save histogram")
	}
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrap(err, "save histogram")
	}
	return nil
}
