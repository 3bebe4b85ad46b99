// Package triangleio loads the triangle-array input file shared by the
// cmd/kdtree-* wrappers: a JSON array of three [x,y,z] vertex triples
// per triangle, the same shape as the "triangles" field of the
// persisted tree format (spec.md §6). Not part of the core library —
// CLI plumbing only.
package triangleio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// Load reads path and decodes it into a triangle slice.
func Load(path string) ([]triangle.Triangle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("triangleio: read %s: %w", path, err)
	}

	var raw [][3][3]float32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("triangleio: parse %s: %w", path, err)
	}

	triangles := make([]triangle.Triangle, len(raw))
	for i, t := range raw {
		triangles[i] = triangle.New(
			vecmath.New(t[0][0], t[0][1], t[0][2]),
			vecmath.New(t[1][0], t[1][1], t[1][2]),
			vecmath.New(t[2][0], t[2][1], t[2][2]),
		)
	}

	return triangles, nil
}
