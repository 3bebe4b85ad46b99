// Command kdtree-print builds a k-d tree from a JSON triangle file and
// dumps it as a Graphviz DOT graph (spec.md §6 "A graphviz dump for
// visualization").
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/kdtrace/internal/triangleio"
	"github.com/katalvlaran/kdtrace/kdtree"
)

func main() {
	input := flag.String("input", "", "path to a JSON triangle file ([[[x,y,z]x3]xN])")
	output := flag.String("output", "", "path to write the DOT graph (default: stdout)")
	maxDepth := flag.Int("max-depth", 20, "maximum build recursion depth")
	flag.Parse()

	if *input == "" {
		log.Fatal("kdtree-print: -input is required")
	}

	triangles, err := triangleio.Load(*input)
	if err != nil {
		log.Fatalf("kdtree-print: %v", err)
	}

	tree, err := kdtree.Build(triangles, kdtree.WithMaxDepth(*maxDepth))
	if err != nil {
		log.Fatalf("kdtree-print: build: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("kdtree-print: create %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}

	if err := kdtree.DumpGraphviz(out, tree); err != nil {
		log.Fatalf("kdtree-print: render: %v", err)
	}
}
