// Command mesh_to_voxels voxelizes an OFF triangle mesh and
// saves the occupied voxels as a voxel list that can be fed
// to decompose.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/cuboids/cuboids"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var opts ConvertOptions

	flag.IntVar(&opts.GridSize, "grid-size", 64, "number of voxels along each dimension")
	flag.IntVar(&opts.Grain, "grain", 0, "grain index to write for every voxel")
	flag.BoolVar(&opts.Rotate, "rotate", false, "randomly rotate the mesh before voxelizing")
	flag.BoolVar(&opts.NonManifold, "non-manifold", false,
		"use ray parity containment, for meshes with duplicate triangles")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input.off> <output.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}

	essentials.Must(ConvertModel(flag.Args()[0], flag.Args()[1], &opts))
}

type ConvertOptions struct {
	GridSize    int
	Grain       int
	Rotate      bool
	NonManifold bool
}

func ConvertModel(inPath, outPath string, opts *ConvertOptions) error {
	log.Println("Converting", inPath, "...")

	r, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer r.Close()
	triangles, err := model3d.ReadOFF(r)
	if err != nil {
		return essentials.AddCtx(inPath, err)
	}
	mesh := model3d.NewMeshTriangles(triangles)
	if opts.Rotate {
		mesh = RandomRotation(mesh)
	}

	grid := VoxelizeMesh(mesh, opts)
	records := grid.Records()
	log.Printf("Found %d occupied voxels", len(records))

	w, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := cuboids.WriteVoxelList(w, records); err != nil {
		return err
	}
	return w.Close()
}

// VoxelizeMesh computes the occupied voxels of a mesh
// scaled to fit in a cube of opts.GridSize voxels.
func VoxelizeMesh(mesh *model3d.Mesh, opts *ConvertOptions) *cuboids.VoxelGrid {
	collider := model3d.MeshToCollider(mesh)
	space := NewVoxelSpace(collider, opts.GridSize)
	if opts.NonManifold {
		return ParityVoxels(space, &NonManifoldSolid{Collider: collider}, opts.Grain)
	}
	return ConnectivityVoxels(space, collider, opts.Grain)
}

// RandomRotation applies a random rotation (without any
// mirroring) to the mesh.
func RandomRotation(mesh *model3d.Mesh) *model3d.Mesh {
	v1 := model3d.NewCoord3DRandUnit()
	v2 := model3d.NewCoord3DRandUnit().ProjectOut(v1).Normalize()
	v3 := model3d.NewCoord3DRandUnit().ProjectOut(v1).ProjectOut(v2).Normalize()
	transform := &model3d.Matrix3Transform{
		Matrix: model3d.NewMatrix3Columns(v1, v2, v3),
	}
	if transform.Matrix.Det() < 0 {
		for i := 0; i < 3; i++ {
			transform.Matrix[i] *= -1
		}
	}
	return mesh.MapCoords(transform.Apply)
}
