package kdtree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/katalvlaran/kdtrace/vecmath"
)

// jsonDoc is the top-level shape of DumpJSON's output (spec.md §6
// persisted formats): triangles as a flat array of three vertices each,
// and the node tree recursively encoded by Node.MarshalJSON.
type jsonDoc struct {
	Triangles [][3][3]float32 `json:"triangles"`
	Root      *Node           `json:"root"`
}

// MarshalJSON renders n as `[i,i,...]` when n is a leaf, or
// `{"axis":"X|Y|Z","distance":f,"left":node,"right":node}` when
// internal (spec.md §6).
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Leaf {
		indices := n.Indices
		if indices == nil {
			indices = []uint32{}
		}

		return json.Marshal(indices)
	}

	return json.Marshal(struct {
		Axis     string `json:"axis"`
		Distance float32 `json:"distance"`
		Left     *Node   `json:"left"`
		Right    *Node   `json:"right"`
	}{
		Axis:     n.Plane.Axis.String(),
		Distance: n.Plane.Distance,
		Left:     n.Left,
		Right:    n.Right,
	})
}

// UnmarshalJSON restores n from either encoding MarshalJSON produces,
// distinguishing them by the leading token ('[' for a leaf, '{' for an
// internal node).
func (n *Node) UnmarshalJSON(data []byte) error {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			var indices []uint32
			if err := json.Unmarshal(data, &indices); err != nil {
				return err
			}
			n.Leaf = true
			n.Indices = indices

			return nil
		case '{':
			var aux struct {
				Axis     string  `json:"axis"`
				Distance float32 `json:"distance"`
				Left     *Node   `json:"left"`
				Right    *Node   `json:"right"`
			}
			if err := json.Unmarshal(data, &aux); err != nil {
				return err
			}
			axis, ok := vecmath.AxisFromString(aux.Axis)
			if !ok {
				return fmt.Errorf("kdtree: invalid axis %q in persisted node", aux.Axis)
			}
			n.Plane.Axis = axis
			n.Plane.Distance = aux.Distance
			n.Left = aux.Left
			n.Right = aux.Right

			return nil
		default:
			return fmt.Errorf("kdtree: malformed node JSON starting with %q", b)
		}
	}

	return fmt.Errorf("kdtree: empty node JSON")
}

// DumpJSON writes tree's persisted JSON form to w (spec.md §6): the
// triangle array followed by the recursively encoded node tree.
// Diagnostic only — not part of the core query contract.
func DumpJSON(w io.Writer, tree *Tree) error {
	doc := jsonDoc{
		Triangles: make([][3][3]float32, len(tree.Triangles)),
		Root:      tree.Root,
	}
	for i, t := range tree.Triangles {
		doc.Triangles[i] = [3][3]float32{
			{t.V0.X, t.V0.Y, t.V0.Z},
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
		}
	}

	enc := json.NewEncoder(w)

	return enc.Encode(doc)
}

// DumpGraphviz renders tree's structure as a Graphviz DOT graph to w:
// internal nodes labeled with their splitting plane, leaves labeled
// with their triangle count (spec.md §6 "graphviz dump for
// visualization"). Diagnostic only.
func DumpGraphviz(w io.Writer, tree *Tree) error {
	gv := graphviz.New()
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("kdtree: new graph: %w", err)
	}
	defer graph.Close()

	id := 0
	var walk func(n *Node) (*cgraph.Node, error)
	walk = func(n *Node) (*cgraph.Node, error) {
		name := fmt.Sprintf("n%d", id)
		id++

		gn, err := graph.CreateNode(name)
		if err != nil {
			return nil, err
		}

		if n.Leaf {
			gn.SetLabel(fmt.Sprintf("leaf(%d)", len(n.Indices)))

			return gn, nil
		}

		gn.SetLabel(fmt.Sprintf("%s=%.4f", n.Plane.Axis, n.Plane.Distance))

		left, err := walk(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := walk(n.Right)
		if err != nil {
			return nil, err
		}

		if _, err := graph.CreateEdge(name+"-L", gn, left); err != nil {
			return nil, err
		}
		if _, err := graph.CreateEdge(name+"-R", gn, right); err != nil {
			return nil, err
		}

		return gn, nil
	}

	if _, err := walk(tree.Root); err != nil {
		return fmt.Errorf("kdtree: build graph: %w", err)
	}

	return gv.Render(graph, graphviz.XDOT, w)
}
