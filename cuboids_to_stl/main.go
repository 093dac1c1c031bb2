// Command cuboids_to_stl converts a centered cuboid CSV,
// as written by decompose -centered, into an STL file with
// one box per cuboid.
//
// The CSV is read from stdin.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var scale float64
	var outputPath string
	flag.Float64Var(&scale, "scale", 1, "size of one voxel in output units")
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.Parse()

	boxes, err := cuboids.ReadCenteredCSV(os.Stdin)
	essentials.Must(err)

	log.Printf("Creating mesh from %d cuboids ...", len(boxes))
	mesh := cuboids.CuboidMesh(ScaleBoxes(boxes, scale))
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}

// ScaleBoxes scales every box about the origin.
func ScaleBoxes(boxes []cuboids.Box, scale float64) []cuboids.Box {
	res := make([]cuboids.Box, len(boxes))
	for i, b := range boxes {
		res[i] = cuboids.Box{
			Rect: &model3d.Rect{
				MinVal: b.Rect.MinVal.Scale(scale),
				MaxVal: b.Rect.MaxVal.Scale(scale),
			},
			Grain: b.Grain,
		}
	}
	return res
}
