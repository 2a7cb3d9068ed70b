package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v2"

	"github.com/voxden/sculpt/engine/voxel"
	"github.com/voxden/sculpt/export"
	"github.com/voxden/sculpt/storage"
)

// sculptconv loads a saved sculpt scene, prints statistics and converts
// it between the storage codecs or to glTF for use in other tools.
func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "sculptconv:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	inFlag := &cli.StringFlag{
		Name:     "in",
		Usage:    "scene file to load (.json or .nbt)",
		Required: true,
	}
	depthFlag := &cli.UintFlag{
		Name:  "depth",
		Usage: "octree subdivision levels of the target tree",
		Value: 8,
	}
	return &cli.App{
		Name:            "sculptconv",
		Usage:           "inspect and convert saved sculpt scenes",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "print statistics for a scene file",
				Flags:  []cli.Flag{inFlag, depthFlag},
				Action: statsAction,
			},
			{
				Name:  "convert",
				Usage: "rewrite a scene with another codec, or export it to glTF",
				Flags: []cli.Flag{
					inFlag,
					&cli.StringFlag{
						Name:     "out",
						Usage:    "output file (.json, .nbt or .gltf)",
						Required: true,
					},
					depthFlag,
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "print scene statistics before writing",
					},
				},
				Action: convertAction,
			},
		},
	}
}

func statsAction(c *cli.Context) error {
	tree, err := loadTree(c.App.Writer, c.String("in"), uint32(c.Uint("depth")))
	if err != nil {
		return err
	}
	printStats(c.App.Writer, tree)
	return nil
}

func convertAction(c *cli.Context) error {
	tree, err := loadTree(c.App.Writer, c.String("in"), uint32(c.Uint("depth")))
	if err != nil {
		return err
	}
	if c.Bool("stats") {
		printStats(c.App.Writer, tree)
	}
	return writeScene(tree, c.String("out"))
}

// loadTree reads a stored scene into a fresh tree of the requested
// depth. Records that no longer fit the tree shape are dropped with a
// warning, not fatal.
func loadTree(w io.Writer, inPath string, depth uint32) (*voxel.Tree, error) {
	store, err := storage.ForPath(inPath)
	if err != nil {
		return nil, err
	}
	stored, err := store.Load()
	if err != nil {
		return nil, err
	}
	tree, err := voxel.New(depth)
	if err != nil {
		return nil, err
	}
	if dropped := tree.LoadFromSerial(stored, mgl32.Vec3{}); dropped > 0 {
		fmt.Fprintf(w, "warning: dropped %d records that do not fit a depth %d tree\n", dropped, depth)
	}
	return tree, nil
}

func writeScene(tree *voxel.Tree, outPath string) error {
	if strings.ToLower(filepath.Ext(outPath)) == ".gltf" {
		return export.WriteGLTF(tree.Drawables(), outPath)
	}
	store, err := storage.ForPath(outPath)
	if err != nil {
		return err
	}
	return store.Save(tree.Prepare())
}

func printStats(w io.Writer, tree *voxel.Tree) {
	drawables := tree.Drawables()
	triangles := 0
	for _, cube := range drawables {
		triangles += cube.CountVertices() / 3
	}
	fmt.Fprintf(w, "depth:        %d\n", tree.Depth())
	fmt.Fprintf(w, "index range:  [%d, %d)\n", -voxel.Range(tree.Depth()), voxel.Range(tree.Depth()))
	fmt.Fprintf(w, "active nodes: %d\n", len(tree.ActiveNodes()))
	fmt.Fprintf(w, "drawables:    %d\n", len(drawables))
	fmt.Fprintf(w, "triangles:    %d\n", triangles)
}
